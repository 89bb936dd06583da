package forms

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFlagParsing(t *testing.T) {
	v := url.Values{}
	v.Set("isFeatured", "yes")
	v.Set("isVerified", "no")
	v.Set("isActive", "enabled")
	v.Set("status", "disabled")

	assert.True(t, Flag(v, "isFeatured"))
	assert.False(t, Flag(v, "isVerified"))
	assert.False(t, Flag(v, "missing"))
	// Only the exact sentinel counts.
	assert.False(t, Flag(v, "isActive"))

	assert.True(t, ActiveFlag(v, "isActive"))
	assert.False(t, ActiveFlag(v, "status"))
	assert.False(t, ActiveFlag(v, "missing"))
}

func TestParseStoreForm(t *testing.T) {
	t.Run("TracksStatusFieldPresence", func(t *testing.T) {
		withStatus := url.Values{}
		withStatus.Set("name", "Nike")
		withStatus.Set("isActive", "disabled")

		form := ParseStoreForm(withStatus)
		assert.True(t, form.HasActiveField)
		assert.False(t, form.IsActive)

		withoutStatus := url.Values{}
		withoutStatus.Set("name", "Nike")

		form = ParseStoreForm(withoutStatus)
		assert.False(t, form.HasActiveField)
	})
}

func TestParseCouponForm(t *testing.T) {
	v := url.Values{}
	v.Set("title", "20% Off Everything")
	v.Set("code", "SAVE20")
	v.Set("storeId", "64f000000000000000000001")
	v.Set("categoryId", "64f000000000000000000002")
	v.Set("trackingLink", "https://example.com/track")
	v.Set("couponType", "Code")
	v.Set("isExclusive", "yes")
	v.Set("isActive", "enabled")
	v.Set("startDate", "2026-01-15")

	form := ParseCouponForm(v)
	assert.Equal(t, "20% Off Everything", form.Title)
	assert.Equal(t, "SAVE20", form.Code)
	assert.True(t, form.IsExclusive)
	assert.False(t, form.IsFeatured)
	assert.True(t, form.IsActive)
	assert.Equal(t, "2026-01-15", form.StartDate)
}

func TestCategoryFormValidate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		form := CategoryForm{Name: "Fashion", Slug: "fashion"}
		errs := form.Validate()
		assert.False(t, errs.HasErrors())
	})

	t.Run("MissingName", func(t *testing.T) {
		form := CategoryForm{Slug: "fashion"}
		errs := form.Validate()
		assert.Contains(t, errs["name"], "Name is required")
	})

	t.Run("BadSlug", func(t *testing.T) {
		form := CategoryForm{Name: "Fashion", Slug: "Fashion Deals!"}
		errs := form.Validate()
		assert.Contains(t, errs["slug"], "Slug must be kebab-case")
	})
}

func TestStoreFormValidate(t *testing.T) {
	valid := StoreForm{
		Name:          "Nike",
		Slug:          "nike",
		AffiliateLink: "https://nike.example.com/aff",
		URL:           "https://nike.com",
	}

	t.Run("Valid", func(t *testing.T) {
		errs := valid.Validate()
		assert.False(t, errs.HasErrors())
	})

	t.Run("BadURL", func(t *testing.T) {
		form := valid
		form.URL = "not-a-url"
		errs := form.Validate()
		assert.Contains(t, errs["url"], "Invalid URL")
	})

	t.Run("FTPSchemeRejected", func(t *testing.T) {
		form := valid
		form.AffiliateLink = "ftp://nike.com/aff"
		errs := form.Validate()
		assert.True(t, errs.HasErrors())
	})
}

func TestCouponFormValidate(t *testing.T) {
	valid := CouponForm{
		Title:        "20% Off",
		StoreID:      "64f000000000000000000001",
		CategoryID:   "64f000000000000000000002",
		TrackingLink: "https://example.com/track",
		CouponType:   "Code",
	}

	t.Run("Valid", func(t *testing.T) {
		errs := valid.Validate()
		assert.False(t, errs.HasErrors())
	})

	t.Run("MissingTrackingLink", func(t *testing.T) {
		form := valid
		form.TrackingLink = ""
		errs := form.Validate()
		assert.Contains(t, errs["trackingLink"], "Tracking Link is required")
	})

	t.Run("BadType", func(t *testing.T) {
		form := valid
		form.CouponType = "Voucher"
		errs := form.Validate()
		assert.Contains(t, errs["couponType"], "Coupon type must be Code or Deal")
	})

	t.Run("BadDate", func(t *testing.T) {
		form := valid
		form.ExpiryDate = "31/12/2026"
		errs := form.Validate()
		assert.Contains(t, errs["expiryDate"], "Invalid date")
	})
}

func TestCouponFormDates(t *testing.T) {
	form := CouponForm{StartDate: "2026-01-15", ExpiryDate: "2026-02-28T00:00:00Z"}
	start, expiry := form.Dates()

	assert.NotNil(t, start)
	assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), *start)
	assert.NotNil(t, expiry)
	assert.Equal(t, time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), *expiry)

	start, expiry = CouponForm{}.Dates()
	assert.Nil(t, start)
	assert.Nil(t, expiry)
}
