package handlers

import (
	"fmt"
	"net/http"

	"github.com/Haris-56/coupon/pkg/seed"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type SeedHandler struct {
	seeder *seed.Seeder
}

func NewSeedHandler(seeder *seed.Seeder) *SeedHandler {
	return &SeedHandler{seeder: seeder}
}

// Run populates the demo dataset. Safe to call repeatedly; existing records
// are left untouched.
func (h *SeedHandler) Run(c *gin.Context) {
	summary, err := h.seeder.Run(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("Seed: Failed to seed database")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to seed database"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Seeding complete. Created %d new coupons.", summary.CreatedCoupons),
		"summary": summary,
	})
}
