package actions

import (
	"context"
	"errors"
	"net/url"

	"github.com/Haris-56/coupon/pkg/auth"
	"github.com/Haris-56/coupon/pkg/cache"
	"github.com/Haris-56/coupon/pkg/forms"
	"github.com/Haris-56/coupon/pkg/models"
	"github.com/Haris-56/coupon/pkg/repository"
	"github.com/Haris-56/coupon/pkg/upload"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CouponActions struct {
	coupons    repository.CouponRepo
	stores     repository.StoreRepo
	categories repository.CategoryRepo
	uploader   upload.Uploader
	views      *cache.ViewCache
}

func NewCouponActions(
	coupons repository.CouponRepo,
	stores repository.StoreRepo,
	categories repository.CategoryRepo,
	uploader upload.Uploader,
	views *cache.ViewCache,
) *CouponActions {
	return &CouponActions{
		coupons:    coupons,
		stores:     stores,
		categories: categories,
		uploader:   uploader,
		views:      views,
	}
}

func (a *CouponActions) Create(ctx context.Context, sess auth.Session, values url.Values, image *upload.File) Result {
	if !auth.CanEdit(sess) {
		return unauthorized()
	}

	form := forms.ParseCouponForm(values)

	if image != nil {
		imageURL, err := a.uploader.Upload(ctx, *image, "coupons")
		if err != nil {
			logrus.WithError(err).Warn("CreateCoupon: image upload failed")
			return failed(err.Error())
		}
		if imageURL != "" {
			form.ImageURL = imageURL
		}
	}

	if errs := form.Validate(); errs.HasErrors() {
		return invalid(errs)
	}

	coupon, res := a.resolve(ctx, form, "Failed to create coupon")
	if res != nil {
		return *res
	}

	if err := a.coupons.Create(ctx, coupon); err != nil {
		logrus.WithError(err).Error("CreateCoupon: failed to persist coupon")
		return serverError("Failed to create coupon")
	}

	a.views.Invalidate("/admin/coupons")
	return redirectTo("/admin/coupons")
}

func (a *CouponActions) Update(ctx context.Context, sess auth.Session, id string, values url.Values, image *upload.File) Result {
	if !auth.CanEdit(sess) {
		return unauthorized()
	}

	couponID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return failed("Invalid coupon id")
	}

	form := forms.ParseCouponForm(values)

	if image != nil {
		imageURL, uploadErr := a.uploader.Upload(ctx, *image, "coupons")
		if uploadErr != nil {
			logrus.WithError(uploadErr).Warn("UpdateCoupon: image upload failed")
			return failed(uploadErr.Error())
		}
		if imageURL != "" {
			form.ImageURL = imageURL
		}
	}

	if errs := form.Validate(); errs.HasErrors() {
		return invalid(errs)
	}

	coupon, res := a.resolve(ctx, form, "Failed to update coupon")
	if res != nil {
		return *res
	}

	updates := bson.M{
		"title":          coupon.Title,
		"code":           coupon.Code,
		"tagLine":        coupon.TagLine,
		"description":    coupon.Description,
		"store":          coupon.Store,
		"category":       coupon.Category,
		"subCategory":    coupon.SubCategory,
		"startDate":      coupon.StartDate,
		"expiryDate":     coupon.ExpiryDate,
		"trackingLink":   coupon.TrackingLink,
		"couponType":     coupon.CouponType,
		"isExclusive":    coupon.IsExclusive,
		"isFeatured":     coupon.IsFeatured,
		"isVerified":     coupon.IsVerified,
		"isActive":       coupon.IsActive,
		"discountValue":  coupon.DiscountValue,
		"seoTitle":       coupon.SEOTitle,
		"seoDescription": coupon.SEODescription,
	}
	if coupon.ImageURL != "" {
		updates["imageUrl"] = coupon.ImageURL
	}

	if err := a.coupons.Update(ctx, couponID, updates); err != nil {
		logrus.WithError(err).Error("UpdateCoupon: failed to persist coupon")
		return serverError("Failed to update coupon")
	}

	a.views.Invalidate("/admin/coupons")
	return redirectTo("/admin/coupons")
}

// resolve verifies the store/category references and assembles the coupon
// document. A non-nil Result short-circuits the mutation.
func (a *CouponActions) resolve(ctx context.Context, form forms.CouponForm, genericMessage string) (*models.Coupon, *Result) {
	storeID, err := primitive.ObjectIDFromHex(form.StoreID)
	if err != nil {
		res := failed("Selected store does not exist")
		return nil, &res
	}
	categoryID, err := primitive.ObjectIDFromHex(form.CategoryID)
	if err != nil {
		res := failed("Selected category does not exist")
		return nil, &res
	}

	if _, err := a.stores.FindByID(ctx, storeID); err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			res := failed("Selected store does not exist")
			return nil, &res
		}
		logrus.WithError(err).Error("CouponAction: store lookup failed")
		res := serverError(genericMessage)
		return nil, &res
	}
	if _, err := a.categories.FindByID(ctx, categoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			res := failed("Selected category does not exist")
			return nil, &res
		}
		logrus.WithError(err).Error("CouponAction: category lookup failed")
		res := serverError(genericMessage)
		return nil, &res
	}

	var subCategory *primitive.ObjectID
	if form.SubCategoryID != "" {
		subID, err := primitive.ObjectIDFromHex(form.SubCategoryID)
		if err != nil {
			res := invalid(forms.Errors{"subCategoryId": {"Invalid sub category"}})
			return nil, &res
		}
		subCategory = &subID
	}

	start, expiry := form.Dates()

	return &models.Coupon{
		Title:          form.Title,
		Code:           form.Code,
		TagLine:        form.TagLine,
		Description:    form.Description,
		Store:          storeID,
		Category:       categoryID,
		SubCategory:    subCategory,
		StartDate:      start,
		ExpiryDate:     expiry,
		TrackingLink:   form.TrackingLink,
		CouponType:     models.CouponType(form.CouponType),
		IsExclusive:    form.IsExclusive,
		IsFeatured:     form.IsFeatured,
		IsVerified:     form.IsVerified,
		IsActive:       form.IsActive,
		DiscountValue:  form.DiscountValue,
		SEOTitle:       form.SEOTitle,
		SEODescription: form.SEODescription,
		ImageURL:       form.ImageURL,
	}, nil
}

func (a *CouponActions) Delete(ctx context.Context, sess auth.Session, id string) Result {
	if !auth.CanDelete(sess) {
		return unauthorized()
	}

	couponID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return failed("Invalid coupon id")
	}

	if err := a.coupons.Delete(ctx, couponID); err != nil {
		logrus.WithError(err).Error("DeleteCoupon: failed to delete coupon")
		return serverError("Error deleting coupon")
	}

	a.views.Invalidate("/admin/coupons")
	return done("Coupon deleted")
}

// Vote bumps a counter; callers treat it as fire-and-forget and the widget
// never rolls the optimistic UI back.
func (a *CouponActions) Vote(ctx context.Context, id string, direction models.VoteDirection) Result {
	couponID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return failed("Invalid coupon id")
	}

	if err := a.coupons.IncrementVote(ctx, couponID, direction); err != nil {
		if errors.Is(err, repository.ErrCouponNotFound) {
			return failed("Coupon not found")
		}
		logrus.WithError(err).Error("VoteCoupon: failed to record vote")
		return serverError("Failed to record vote")
	}

	return done("Vote recorded")
}
