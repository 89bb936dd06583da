package handlers

import (
	"errors"
	"net/http"

	"github.com/Haris-56/coupon/pkg/repository"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CategoryHandler struct {
	categories repository.CategoryRepo
	coupons    repository.CouponRepo
}

func NewCategoryHandler(categories repository.CategoryRepo, coupons repository.CouponRepo) *CategoryHandler {
	return &CategoryHandler{categories: categories, coupons: coupons}
}

// List returns every active category for the storefront navigation.
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categories.FindActive(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("ListCategories: Failed to list categories")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list categories"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories, "count": len(categories)})
}

// Get returns a category page: the category itself plus its active coupons,
// newest first.
func (h *CategoryHandler) Get(c *gin.Context) {
	category, err := h.categories.FindBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		logrus.WithError(err).Error("GetCategory: Failed to look up category")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load category"})
		return
	}

	filter := repository.BuildCouponFilter(repository.CouponSearch{CategoryID: &category.ID})
	coupons, err := h.coupons.Search(c.Request.Context(), filter, repository.SortByRecency())
	if err != nil {
		logrus.WithError(err).Error("GetCategory: Failed to list category coupons")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load category"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": category, "coupons": coupons})
}
