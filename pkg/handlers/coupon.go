package handlers

import (
	"errors"
	"net/http"

	"github.com/Haris-56/coupon/pkg/actions"
	"github.com/Haris-56/coupon/pkg/models"
	"github.com/Haris-56/coupon/pkg/repository"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CouponHandler struct {
	coupons    repository.CouponRepo
	stores     repository.StoreRepo
	categories repository.CategoryRepo
	actions    *actions.CouponActions
}

func NewCouponHandler(
	coupons repository.CouponRepo,
	stores repository.StoreRepo,
	categories repository.CategoryRepo,
	couponActions *actions.CouponActions,
) *CouponHandler {
	return &CouponHandler{
		coupons:    coupons,
		stores:     stores,
		categories: categories,
		actions:    couponActions,
	}
}

// Search lists active coupons, newest first. Supports free text (q), a type
// facet (exclusive, verified, featured) and category/store slug filters.
func (h *CouponHandler) Search(c *gin.Context) {
	params := repository.CouponSearch{
		Query: c.Query("q"),
		Type:  c.Query("type"),
	}

	if slug := c.Query("category"); slug != "" {
		category, err := h.categories.FindBySlug(c.Request.Context(), slug)
		if err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
				return
			}
			logrus.WithError(err).Error("SearchCoupons: Failed to look up category")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search coupons"})
			return
		}
		params.CategoryID = &category.ID
	}

	if slug := c.Query("store"); slug != "" {
		store, err := h.stores.FindBySlug(c.Request.Context(), slug)
		if err != nil {
			if errors.Is(err, repository.ErrStoreNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Store not found"})
				return
			}
			logrus.WithError(err).Error("SearchCoupons: Failed to look up store")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search coupons"})
			return
		}
		params.StoreID = &store.ID
	}

	coupons, err := h.coupons.Search(c.Request.Context(), repository.BuildCouponFilter(params), repository.SortByRecency())
	if err != nil {
		logrus.WithError(err).Error("SearchCoupons: Failed to search coupons")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search coupons"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"coupons": coupons, "count": len(coupons)})
}

// Featured lists the coupons promoted on the landing page.
func (h *CouponHandler) Featured(c *gin.Context) {
	filter := repository.BuildCouponFilter(repository.CouponSearch{Type: "featured"})
	coupons, err := h.coupons.Search(c.Request.Context(), filter, repository.SortByRecency())
	if err != nil {
		logrus.WithError(err).Error("FeaturedCoupons: Failed to list coupons")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list coupons"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"coupons": coupons, "count": len(coupons)})
}

// Vote records an up or down vote for a coupon. Votes are anonymous and only
// ever increment.
func (h *CouponHandler) Vote(c *gin.Context) {
	var req models.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithField("error", err).Warn("VoteCoupon: Invalid request body")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	result := h.actions.Vote(c.Request.Context(), c.Param("id"), models.VoteDirection(req.Direction))
	c.JSON(result.HTTPStatus(), result)
}
