package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Haris-56/coupon/pkg/actions"
	"github.com/Haris-56/coupon/pkg/auth"
	"github.com/Haris-56/coupon/pkg/cache"
	"github.com/Haris-56/coupon/pkg/config"
	"github.com/Haris-56/coupon/pkg/database"
	"github.com/Haris-56/coupon/pkg/handlers"
	"github.com/Haris-56/coupon/pkg/middleware"
	"github.com/Haris-56/coupon/pkg/repository"
	"github.com/Haris-56/coupon/pkg/seed"
	"github.com/Haris-56/coupon/pkg/upload"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	if err := database.InitDB(ctx, cfg.MongoURL, cfg.DBName); err != nil {
		logrus.WithError(err).Fatal("Failed to initialize database")
	}
	defer database.CloseDB()

	db := database.GetDB()
	if err := database.EnsureIndexes(ctx, db); err != nil {
		logrus.WithError(err).Fatal("Failed to ensure indexes")
	}

	storeRepo := repository.NewStoreRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	couponRepo := repository.NewCouponRepository(db)
	userRepo := repository.NewUserRepository(db)
	templateRepo := repository.NewEmailTemplateRepository(db)

	uploader, err := newUploader(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize uploader")
	}

	views := cache.NewViewCache()
	tokens := auth.NewTokenService(cfg.JWTSecret)

	categoryActions := actions.NewCategoryActions(categoryRepo, uploader, views)
	storeActions := actions.NewStoreActions(storeRepo, uploader, views)
	couponActions := actions.NewCouponActions(couponRepo, storeRepo, categoryRepo, uploader, views)
	seeder := seed.NewSeeder(userRepo, categoryRepo, storeRepo, couponRepo)

	authHandler := handlers.NewAuthHandler(userRepo, tokens)
	couponHandler := handlers.NewCouponHandler(couponRepo, storeRepo, categoryRepo, couponActions)
	storeHandler := handlers.NewStoreHandler(storeRepo, couponRepo)
	categoryHandler := handlers.NewCategoryHandler(categoryRepo, couponRepo)
	adminHandler := handlers.NewAdminHandler(
		categoryRepo, storeRepo, couponRepo, templateRepo,
		categoryActions, storeActions, couponActions, views,
	)
	seedHandler := handlers.NewSeedHandler(seeder)

	router := gin.Default()
	router.Use(middleware.Session(tokens))

	if cfg.UploadBackend == "local" {
		router.Static("/uploads", cfg.UploadDir)
	}

	api := router.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)
		api.GET("/coupons", couponHandler.Search)
		api.GET("/coupons/featured", couponHandler.Featured)
		api.POST("/coupons/:id/vote", couponHandler.Vote)
		api.GET("/categories", categoryHandler.List)
		api.GET("/categories/:slug", categoryHandler.Get)
		api.GET("/stores", storeHandler.List)
		api.GET("/stores/:slug", storeHandler.Get)
		api.GET("/seed", seedHandler.Run)
	}

	admin := router.Group("/api/admin")
	{
		admin.GET("/categories", adminHandler.ListCategories)
		admin.POST("/categories", adminHandler.CreateCategory)
		admin.POST("/categories/:id", adminHandler.UpdateCategory)
		admin.DELETE("/categories/:id", adminHandler.DeleteCategory)

		admin.GET("/stores", adminHandler.ListStores)
		admin.POST("/stores", adminHandler.CreateStore)
		admin.POST("/stores/:id", adminHandler.UpdateStore)
		admin.DELETE("/stores/:id", adminHandler.DeleteStore)

		admin.GET("/coupons", adminHandler.ListCoupons)
		admin.POST("/coupons", adminHandler.CreateCoupon)
		admin.POST("/coupons/:id", adminHandler.UpdateCoupon)
		admin.DELETE("/coupons/:id", adminHandler.DeleteCoupon)

		admin.GET("/email-templates", adminHandler.ListEmailTemplates)
		admin.PUT("/email-templates/:id", adminHandler.UpdateEmailTemplate)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logrus.WithField("port", cfg.Port).Info("Starting service")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("Failed to start service")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down service...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Fatal("Service forced to shutdown")
	}

	logrus.Info("Service exited")
}

func newUploader(cfg *config.Config) (upload.Uploader, error) {
	if cfg.UploadBackend == "cloudinary" {
		return upload.NewCloudinaryUploader(cfg.CloudinaryURL)
	}
	return upload.NewLocalUploader(cfg.UploadDir), nil
}
