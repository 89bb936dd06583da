package handlers

import (
	"errors"
	"net/http"

	"github.com/Haris-56/coupon/pkg/actions"
	"github.com/Haris-56/coupon/pkg/auth"
	"github.com/Haris-56/coupon/pkg/cache"
	"github.com/Haris-56/coupon/pkg/middleware"
	"github.com/Haris-56/coupon/pkg/repository"
	"github.com/Haris-56/coupon/pkg/seed"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminHandler serves the back-office: the form mutations behind the admin
// pages and the cached listings those pages render.
type AdminHandler struct {
	categories repository.CategoryRepo
	stores     repository.StoreRepo
	coupons    repository.CouponRepo
	templates  repository.EmailTemplateRepo

	categoryActions *actions.CategoryActions
	storeActions    *actions.StoreActions
	couponActions   *actions.CouponActions

	views *cache.ViewCache
}

func NewAdminHandler(
	categories repository.CategoryRepo,
	stores repository.StoreRepo,
	coupons repository.CouponRepo,
	templates repository.EmailTemplateRepo,
	categoryActions *actions.CategoryActions,
	storeActions *actions.StoreActions,
	couponActions *actions.CouponActions,
	views *cache.ViewCache,
) *AdminHandler {
	return &AdminHandler{
		categories:      categories,
		stores:          stores,
		coupons:         coupons,
		templates:       templates,
		categoryActions: categoryActions,
		storeActions:    storeActions,
		couponActions:   couponActions,
		views:           views,
	}
}

// Categories

func (h *AdminHandler) ListCategories(c *gin.Context) {
	if !auth.CanEdit(middleware.GetSession(c)) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if cached, ok := h.views.Get("/admin/categories"); ok {
		c.JSON(http.StatusOK, gin.H{"categories": cached})
		return
	}

	categories, err := h.categories.FindAll(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("AdminListCategories: Failed to list categories")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list categories"})
		return
	}

	h.views.Set("/admin/categories", categories)
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *AdminHandler) CreateCategory(c *gin.Context) {
	image, err := formFile(c, "image")
	if err != nil {
		logrus.WithField("error", err).Warn("CreateCategory: Bad image field")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image upload"})
		return
	}

	result := h.categoryActions.Create(c.Request.Context(), middleware.GetSession(c), formValues(c), image)
	c.JSON(result.HTTPStatus(), result)
}

func (h *AdminHandler) UpdateCategory(c *gin.Context) {
	image, err := formFile(c, "image")
	if err != nil {
		logrus.WithField("error", err).Warn("UpdateCategory: Bad image field")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image upload"})
		return
	}

	result := h.categoryActions.Update(c.Request.Context(), middleware.GetSession(c), c.Param("id"), formValues(c), image)
	c.JSON(result.HTTPStatus(), result)
}

func (h *AdminHandler) DeleteCategory(c *gin.Context) {
	result := h.categoryActions.Delete(c.Request.Context(), middleware.GetSession(c), c.Param("id"))
	c.JSON(result.HTTPStatus(), result)
}

// Stores

func (h *AdminHandler) ListStores(c *gin.Context) {
	if !auth.CanEdit(middleware.GetSession(c)) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if cached, ok := h.views.Get("/admin/stores"); ok {
		c.JSON(http.StatusOK, gin.H{"stores": cached})
		return
	}

	stores, err := h.stores.FindAll(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("AdminListStores: Failed to list stores")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list stores"})
		return
	}

	h.views.Set("/admin/stores", stores)
	c.JSON(http.StatusOK, gin.H{"stores": stores})
}

func (h *AdminHandler) CreateStore(c *gin.Context) {
	logo, err := formFile(c, "logo")
	if err != nil {
		logrus.WithField("error", err).Warn("CreateStore: Bad logo field")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid logo upload"})
		return
	}

	result := h.storeActions.Create(c.Request.Context(), middleware.GetSession(c), formValues(c), logo)
	c.JSON(result.HTTPStatus(), result)
}

func (h *AdminHandler) UpdateStore(c *gin.Context) {
	logo, err := formFile(c, "logo")
	if err != nil {
		logrus.WithField("error", err).Warn("UpdateStore: Bad logo field")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid logo upload"})
		return
	}

	result := h.storeActions.Update(c.Request.Context(), middleware.GetSession(c), c.Param("id"), formValues(c), logo)
	c.JSON(result.HTTPStatus(), result)
}

func (h *AdminHandler) DeleteStore(c *gin.Context) {
	result := h.storeActions.Delete(c.Request.Context(), middleware.GetSession(c), c.Param("id"))
	c.JSON(result.HTTPStatus(), result)
}

// Coupons

func (h *AdminHandler) ListCoupons(c *gin.Context) {
	if !auth.CanEdit(middleware.GetSession(c)) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if cached, ok := h.views.Get("/admin/coupons"); ok {
		c.JSON(http.StatusOK, gin.H{"coupons": cached})
		return
	}

	// The back-office sees inactive coupons too, unlike public listings.
	coupons, err := h.coupons.Search(c.Request.Context(), bson.M{}, repository.SortByRecency())
	if err != nil {
		logrus.WithError(err).Error("AdminListCoupons: Failed to list coupons")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list coupons"})
		return
	}

	h.views.Set("/admin/coupons", coupons)
	c.JSON(http.StatusOK, gin.H{"coupons": coupons})
}

func (h *AdminHandler) CreateCoupon(c *gin.Context) {
	image, err := formFile(c, "image")
	if err != nil {
		logrus.WithField("error", err).Warn("CreateCoupon: Bad image field")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image upload"})
		return
	}

	result := h.couponActions.Create(c.Request.Context(), middleware.GetSession(c), formValues(c), image)
	c.JSON(result.HTTPStatus(), result)
}

func (h *AdminHandler) UpdateCoupon(c *gin.Context) {
	image, err := formFile(c, "image")
	if err != nil {
		logrus.WithField("error", err).Warn("UpdateCoupon: Bad image field")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image upload"})
		return
	}

	result := h.couponActions.Update(c.Request.Context(), middleware.GetSession(c), c.Param("id"), formValues(c), image)
	c.JSON(result.HTTPStatus(), result)
}

func (h *AdminHandler) DeleteCoupon(c *gin.Context) {
	result := h.couponActions.Delete(c.Request.Context(), middleware.GetSession(c), c.Param("id"))
	c.JSON(result.HTTPStatus(), result)
}

// Email templates

type updateEmailTemplateRequest struct {
	Subject string `json:"subject" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// ListEmailTemplates returns the transactional templates, inserting the
// defaults on first access.
func (h *AdminHandler) ListEmailTemplates(c *gin.Context) {
	if !auth.CanEdit(middleware.GetSession(c)) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := seed.EnsureEmailTemplates(c.Request.Context(), h.templates); err != nil {
		logrus.WithError(err).Error("ListEmailTemplates: Failed to seed templates")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list email templates"})
		return
	}

	templates, err := h.templates.FindAll(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("ListEmailTemplates: Failed to list templates")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list email templates"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"templates": templates})
}

// UpdateEmailTemplate rewrites a template's subject and content. The title
// and slug are fixed; code looks templates up by slug.
func (h *AdminHandler) UpdateEmailTemplate(c *gin.Context) {
	if !auth.CanEdit(middleware.GetSession(c)) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	templateID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid template id"})
		return
	}

	var req updateEmailTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithField("error", err).Warn("UpdateEmailTemplate: Invalid request body")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	updates := bson.M{"subject": req.Subject, "content": req.Content}
	if err := h.templates.Update(c.Request.Context(), templateID, updates); err != nil {
		if errors.Is(err, repository.ErrTemplateNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Email template not found"})
			return
		}
		logrus.WithError(err).Error("UpdateEmailTemplate: Failed to update template")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update email template"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email template updated"})
}
