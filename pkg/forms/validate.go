package forms

import (
	"net/url"
	"time"

	"github.com/Haris-56/coupon/pkg/models"
	"github.com/Haris-56/coupon/pkg/slug"
)

// Errors maps a field name to the validation messages for that field. An
// empty map means the form passed.
type Errors map[string][]string

func (e Errors) add(field, message string) {
	e[field] = append(e[field], message)
}

// HasErrors reports whether any field failed validation.
func (e Errors) HasErrors() bool {
	return len(e) > 0
}

func isURL(s string) bool {
	u, err := url.ParseRequestURI(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func (f CategoryForm) Validate() Errors {
	errs := Errors{}
	if f.Name == "" {
		errs.add("name", "Name is required")
	}
	if f.Slug == "" {
		errs.add("slug", "Slug is required")
	} else if !slug.IsValid(f.Slug) {
		errs.add("slug", "Slug must be kebab-case")
	}
	return errs
}

func (f StoreForm) Validate() Errors {
	errs := Errors{}
	if f.Name == "" {
		errs.add("name", "Name is required")
	}
	if f.Slug == "" {
		errs.add("slug", "Slug is required")
	} else if !slug.IsValid(f.Slug) {
		errs.add("slug", "Slug must be kebab-case")
	}
	if f.AffiliateLink != "" && !isURL(f.AffiliateLink) {
		errs.add("affiliateLink", "Invalid URL")
	}
	if f.URL != "" && !isURL(f.URL) {
		errs.add("url", "Invalid URL")
	}
	return errs
}

func (f CouponForm) Validate() Errors {
	errs := Errors{}
	if f.Title == "" {
		errs.add("title", "Title is required")
	}
	if f.StoreID == "" {
		errs.add("storeId", "Store is required")
	}
	if f.CategoryID == "" {
		errs.add("categoryId", "Category is required")
	}
	if f.TrackingLink == "" {
		errs.add("trackingLink", "Tracking Link is required")
	} else if !isURL(f.TrackingLink) {
		errs.add("trackingLink", "Invalid URL")
	}
	switch models.CouponType(f.CouponType) {
	case models.CouponTypeCode, models.CouponTypeDeal:
	default:
		errs.add("couponType", "Coupon type must be Code or Deal")
	}
	if _, ok := parseDate(f.StartDate); !ok {
		errs.add("startDate", "Invalid date")
	}
	if _, ok := parseDate(f.ExpiryDate); !ok {
		errs.add("expiryDate", "Invalid date")
	}
	return errs
}

// Dates returns the parsed start and expiry dates. Validate must have passed.
func (f CouponForm) Dates() (start, expiry *time.Time) {
	start, _ = parseDate(f.StartDate)
	expiry, _ = parseDate(f.ExpiryDate)
	return start, expiry
}
