package actions

import (
	"context"
	"net/url"

	"github.com/Haris-56/coupon/pkg/auth"
	"github.com/Haris-56/coupon/pkg/cache"
	"github.com/Haris-56/coupon/pkg/forms"
	"github.com/Haris-56/coupon/pkg/models"
	"github.com/Haris-56/coupon/pkg/repository"
	"github.com/Haris-56/coupon/pkg/slug"
	"github.com/Haris-56/coupon/pkg/upload"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type StoreActions struct {
	stores   repository.StoreRepo
	uploader upload.Uploader
	views    *cache.ViewCache
}

func NewStoreActions(stores repository.StoreRepo, uploader upload.Uploader, views *cache.ViewCache) *StoreActions {
	return &StoreActions{stores: stores, uploader: uploader, views: views}
}

func (a *StoreActions) Create(ctx context.Context, sess auth.Session, values url.Values, logo *upload.File) Result {
	if !auth.CanEdit(sess) {
		return unauthorized()
	}

	form := forms.ParseStoreForm(values)
	if form.Slug == "" && form.Name != "" {
		form.Slug = slug.Make(form.Name)
	}

	if logo != nil {
		logoURL, err := a.uploader.Upload(ctx, *logo, "stores")
		if err != nil {
			logrus.WithError(err).Warn("CreateStore: logo upload failed")
			return failed(err.Error())
		}
		if logoURL != "" {
			form.LogoURL = logoURL
		}
	}

	if errs := form.Validate(); errs.HasErrors() {
		return invalid(errs)
	}

	exists, err := a.stores.SlugExists(ctx, form.Slug, nil)
	if err != nil {
		logrus.WithError(err).Error("CreateStore: slug check failed")
		return serverError("Failed to create store")
	}
	if exists {
		return invalid(forms.Errors{"slug": {"Slug already exists"}})
	}

	// A form that never submitted the status field still yields an active
	// store.
	isActive := form.IsActive
	if !form.HasActiveField {
		isActive = true
	}

	store := &models.Store{
		Name:           form.Name,
		Slug:           form.Slug,
		Description:    form.Description,
		AffiliateLink:  form.AffiliateLink,
		URL:            form.URL,
		Country:        form.Country,
		Network:        form.Network,
		IsFeatured:     form.IsFeatured,
		IsActive:       isActive,
		LogoURL:        form.LogoURL,
		SEOTitle:       form.SEOTitle,
		SEODescription: form.SEODescription,
	}

	if err := a.stores.Create(ctx, store); err != nil {
		logrus.WithError(err).Error("CreateStore: failed to persist store")
		return serverError("Failed to create store")
	}

	a.views.Invalidate("/admin/stores")
	return redirectTo("/admin/stores")
}

func (a *StoreActions) Update(ctx context.Context, sess auth.Session, id string, values url.Values, logo *upload.File) Result {
	if !auth.CanEdit(sess) {
		return unauthorized()
	}

	storeID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return failed("Invalid store id")
	}

	form := forms.ParseStoreForm(values)
	if form.Slug == "" && form.Name != "" {
		form.Slug = slug.Make(form.Name)
	}

	if logo != nil {
		logoURL, err := a.uploader.Upload(ctx, *logo, "stores")
		if err != nil {
			logrus.WithError(err).Warn("UpdateStore: logo upload failed")
			return failed(err.Error())
		}
		if logoURL != "" {
			form.LogoURL = logoURL
		}
	}

	if errs := form.Validate(); errs.HasErrors() {
		return invalid(errs)
	}

	exists, err := a.stores.SlugExists(ctx, form.Slug, &storeID)
	if err != nil {
		logrus.WithError(err).Error("UpdateStore: slug check failed")
		return serverError("Failed to update store")
	}
	if exists {
		return invalid(forms.Errors{"slug": {"Slug already exists"}})
	}

	updates := bson.M{
		"name":           form.Name,
		"slug":           form.Slug,
		"description":    form.Description,
		"affiliateLink":  form.AffiliateLink,
		"url":            form.URL,
		"country":        form.Country,
		"network":        form.Network,
		"isFeatured":     form.IsFeatured,
		"isActive":       form.IsActive,
		"seoTitle":       form.SEOTitle,
		"seoDescription": form.SEODescription,
	}
	if form.LogoURL != "" {
		updates["logoUrl"] = form.LogoURL
	}

	if err := a.stores.Update(ctx, storeID, updates); err != nil {
		logrus.WithError(err).Error("UpdateStore: failed to persist store")
		return serverError("Failed to update store")
	}

	a.views.Invalidate("/admin/stores")
	return redirectTo("/admin/stores")
}

func (a *StoreActions) Delete(ctx context.Context, sess auth.Session, id string) Result {
	if !auth.CanDelete(sess) {
		return unauthorized()
	}

	storeID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return failed("Invalid store id")
	}

	// Coupons referencing the store are left dangling on purpose; there is
	// no cascade.
	if err := a.stores.Delete(ctx, storeID); err != nil {
		logrus.WithError(err).Error("DeleteStore: failed to delete store")
		return serverError("Error deleting store")
	}

	a.views.Invalidate("/admin/stores")
	return done("Store deleted")
}
