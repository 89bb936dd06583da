package handlers

import (
	"errors"
	"net/http"

	"github.com/Haris-56/coupon/pkg/repository"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type StoreHandler struct {
	stores  repository.StoreRepo
	coupons repository.CouponRepo
}

func NewStoreHandler(stores repository.StoreRepo, coupons repository.CouponRepo) *StoreHandler {
	return &StoreHandler{stores: stores, coupons: coupons}
}

// List returns every active store for the storefront directory.
func (h *StoreHandler) List(c *gin.Context) {
	stores, err := h.stores.FindActive(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("ListStores: Failed to list stores")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list stores"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"stores": stores, "count": len(stores)})
}

// Get returns a store page: the store itself plus its active coupons with
// featured offers first.
func (h *StoreHandler) Get(c *gin.Context) {
	store, err := h.stores.FindBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Store not found"})
			return
		}
		logrus.WithError(err).Error("GetStore: Failed to look up store")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load store"})
		return
	}

	filter := repository.BuildCouponFilter(repository.CouponSearch{StoreID: &store.ID})
	coupons, err := h.coupons.Search(c.Request.Context(), filter, repository.SortFeaturedFirst())
	if err != nil {
		logrus.WithError(err).Error("GetStore: Failed to list store coupons")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load store"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"store": store, "coupons": coupons})
}
