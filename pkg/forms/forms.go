// Package forms is the boundary between flat HTML form submissions and typed
// entities. Flags arrive as sentinel strings ("yes"/"no", "enabled"/"disabled")
// and are converted to native booleans here; nothing past this package sees a
// sentinel value.
package forms

import (
	"net/url"
	"time"
)

// Flag reports whether a "yes"/"no" form field is set to yes.
func Flag(v url.Values, key string) bool {
	return v.Get(key) == "yes"
}

// ActiveFlag reports whether an "enabled"/"disabled" status field is enabled.
func ActiveFlag(v url.Values, key string) bool {
	return v.Get(key) == "enabled"
}

const dateLayout = "2006-01-02"

// parseDate accepts the date-input layout or RFC 3339. Empty input yields a
// nil time and no error.
func parseDate(s string) (*time.Time, bool) {
	if s == "" {
		return nil, true
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return &t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, true
	}
	return nil, false
}

type CategoryForm struct {
	Name             string
	Slug             string
	Description      string
	Icon             string
	IsShowInMenu     bool
	IsFeatured       bool
	IsActive         bool
	SEOTitle         string
	SEODescription   string
	ImageURL         string
	ParentCategoryID string
}

func ParseCategoryForm(v url.Values) CategoryForm {
	return CategoryForm{
		Name:             v.Get("name"),
		Slug:             v.Get("slug"),
		Description:      v.Get("description"),
		Icon:             v.Get("icon"),
		IsShowInMenu:     Flag(v, "isShowInMenu"),
		IsFeatured:       Flag(v, "isFeatured"),
		IsActive:         ActiveFlag(v, "isActive"),
		SEOTitle:         v.Get("seoTitle"),
		SEODescription:   v.Get("seoDescription"),
		ImageURL:         v.Get("imageUrl"),
		ParentCategoryID: v.Get("parentCategoryId"),
	}
}

type StoreForm struct {
	Name           string
	Slug           string
	Description    string
	AffiliateLink  string
	URL            string
	Country        string
	Network        string
	IsFeatured     bool
	IsActive       bool
	HasActiveField bool
	SEOTitle       string
	SEODescription string
	LogoURL        string
}

func ParseStoreForm(v url.Values) StoreForm {
	return StoreForm{
		Name:           v.Get("name"),
		Slug:           v.Get("slug"),
		Description:    v.Get("description"),
		AffiliateLink:  v.Get("affiliateLink"),
		URL:            v.Get("url"),
		Country:        v.Get("country"),
		Network:        v.Get("network"),
		IsFeatured:     Flag(v, "isFeatured"),
		IsActive:       ActiveFlag(v, "isActive"),
		HasActiveField: v.Has("isActive"),
		SEOTitle:       v.Get("seoTitle"),
		SEODescription: v.Get("seoDescription"),
		LogoURL:        v.Get("logoUrl"),
	}
}

type CouponForm struct {
	Title          string
	Code           string
	TagLine        string
	Description    string
	StoreID        string
	CategoryID     string
	SubCategoryID  string
	StartDate      string
	ExpiryDate     string
	TrackingLink   string
	CouponType     string
	IsExclusive    bool
	IsFeatured     bool
	IsVerified     bool
	IsActive       bool
	DiscountValue  string
	SEOTitle       string
	SEODescription string
	ImageURL       string
}

func ParseCouponForm(v url.Values) CouponForm {
	return CouponForm{
		Title:          v.Get("title"),
		Code:           v.Get("code"),
		TagLine:        v.Get("tagLine"),
		Description:    v.Get("description"),
		StoreID:        v.Get("storeId"),
		CategoryID:     v.Get("categoryId"),
		SubCategoryID:  v.Get("subCategoryId"),
		StartDate:      v.Get("startDate"),
		ExpiryDate:     v.Get("expiryDate"),
		TrackingLink:   v.Get("trackingLink"),
		CouponType:     v.Get("couponType"),
		IsExclusive:    Flag(v, "isExclusive"),
		IsFeatured:     Flag(v, "isFeatured"),
		IsVerified:     Flag(v, "isVerified"),
		IsActive:       ActiveFlag(v, "isActive"),
		DiscountValue:  v.Get("discountValue"),
		SEOTitle:       v.Get("seoTitle"),
		SEODescription: v.Get("seoDescription"),
		ImageURL:       v.Get("imageUrl"),
	}
}
