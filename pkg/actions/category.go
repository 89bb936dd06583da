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

type CategoryActions struct {
	categories repository.CategoryRepo
	uploader   upload.Uploader
	views      *cache.ViewCache
}

func NewCategoryActions(categories repository.CategoryRepo, uploader upload.Uploader, views *cache.ViewCache) *CategoryActions {
	return &CategoryActions{categories: categories, uploader: uploader, views: views}
}

func (a *CategoryActions) Create(ctx context.Context, sess auth.Session, values url.Values, image *upload.File) Result {
	if !auth.CanEdit(sess) {
		return unauthorized()
	}

	form := forms.ParseCategoryForm(values)
	if form.Slug == "" && form.Name != "" {
		form.Slug = slug.Make(form.Name)
	}

	if image != nil {
		imageURL, err := a.uploader.Upload(ctx, *image, "categories")
		if err != nil {
			logrus.WithError(err).Warn("CreateCategory: image upload failed")
			return failed(err.Error())
		}
		if imageURL != "" {
			form.ImageURL = imageURL
		}
	}

	if errs := form.Validate(); errs.HasErrors() {
		return invalid(errs)
	}

	exists, err := a.categories.SlugExists(ctx, form.Slug, nil)
	if err != nil {
		logrus.WithError(err).Error("CreateCategory: slug check failed")
		return serverError("Failed to create category")
	}
	if exists {
		return invalid(forms.Errors{"slug": {"Slug already exists"}})
	}

	category := &models.Category{
		Name:           form.Name,
		Slug:           form.Slug,
		Description:    form.Description,
		Icon:           form.Icon,
		IsShowInMenu:   form.IsShowInMenu,
		IsFeatured:     form.IsFeatured,
		IsActive:       form.IsActive,
		ImageURL:       form.ImageURL,
		SEOTitle:       form.SEOTitle,
		SEODescription: form.SEODescription,
	}
	if form.ParentCategoryID != "" {
		parentID, err := primitive.ObjectIDFromHex(form.ParentCategoryID)
		if err != nil {
			return invalid(forms.Errors{"parentCategoryId": {"Invalid parent category"}})
		}
		category.ParentCategory = &parentID
	}

	if err := a.categories.Create(ctx, category); err != nil {
		logrus.WithError(err).Error("CreateCategory: failed to persist category")
		return serverError("Failed to create category")
	}

	a.views.Invalidate("/admin/categories")
	return redirectTo("/admin/categories")
}

func (a *CategoryActions) Update(ctx context.Context, sess auth.Session, id string, values url.Values, image *upload.File) Result {
	if !auth.CanEdit(sess) {
		return unauthorized()
	}

	categoryID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return failed("Invalid category id")
	}

	form := forms.ParseCategoryForm(values)
	if form.Slug == "" && form.Name != "" {
		form.Slug = slug.Make(form.Name)
	}

	if image != nil {
		imageURL, err := a.uploader.Upload(ctx, *image, "categories")
		if err != nil {
			logrus.WithError(err).Warn("UpdateCategory: image upload failed")
			return failed(err.Error())
		}
		if imageURL != "" {
			form.ImageURL = imageURL
		}
	}

	if errs := form.Validate(); errs.HasErrors() {
		return invalid(errs)
	}

	exists, err := a.categories.SlugExists(ctx, form.Slug, &categoryID)
	if err != nil {
		logrus.WithError(err).Error("UpdateCategory: slug check failed")
		return serverError("Failed to update category")
	}
	if exists {
		return invalid(forms.Errors{"slug": {"Slug already exists"}})
	}

	updates := bson.M{
		"name":           form.Name,
		"slug":           form.Slug,
		"description":    form.Description,
		"icon":           form.Icon,
		"isShowInMenu":   form.IsShowInMenu,
		"isFeatured":     form.IsFeatured,
		"isActive":       form.IsActive,
		"seoTitle":       form.SEOTitle,
		"seoDescription": form.SEODescription,
	}
	if form.ImageURL != "" {
		updates["imageUrl"] = form.ImageURL
	}

	if err := a.categories.Update(ctx, categoryID, updates); err != nil {
		logrus.WithError(err).Error("UpdateCategory: failed to persist category")
		return serverError("Failed to update category")
	}

	a.views.Invalidate("/admin/categories")
	return redirectTo("/admin/categories")
}

func (a *CategoryActions) Delete(ctx context.Context, sess auth.Session, id string) Result {
	if !auth.CanDelete(sess) {
		return unauthorized()
	}

	categoryID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return failed("Invalid category id")
	}

	if err := a.categories.Delete(ctx, categoryID); err != nil {
		logrus.WithError(err).Error("DeleteCategory: failed to delete category")
		return serverError("Error deleting category")
	}

	a.views.Invalidate("/admin/categories")
	return done("Category deleted")
}
