// Package seed populates demo data. Every insert is guarded by an existence
// check, so running the seeder repeatedly is safe.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/Haris-56/coupon/pkg/auth"
	"github.com/Haris-56/coupon/pkg/models"
	"github.com/Haris-56/coupon/pkg/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	AdminEmail    = "admin@gmail.com"
	adminPassword = "admin123"
)

type Seeder struct {
	users      repository.UserRepo
	categories repository.CategoryRepo
	stores     repository.StoreRepo
	coupons    repository.CouponRepo
}

func NewSeeder(users repository.UserRepo, categories repository.CategoryRepo, stores repository.StoreRepo, coupons repository.CouponRepo) *Seeder {
	return &Seeder{users: users, categories: categories, stores: stores, coupons: coupons}
}

// Summary reports what a seeding run inserted.
type Summary struct {
	CreatedCoupons int `json:"createdCoupons"`
}

type categorySeed struct {
	name string
	slug string
	icon string
}

type storeSeed struct {
	name     string
	slug     string
	category string
	logo     string
	desc     string
	url      string
}

type couponSeed struct {
	title       string
	code        string
	store       string
	category    string
	desc        string
	isExclusive bool
	isFeatured  bool
	discount    string
}

var (
	categorySeeds = []categorySeed{
		{name: "Fashion", slug: "fashion", icon: "fa-tshirt"},
		{name: "Electronics", slug: "electronics", icon: "fa-laptop"},
		{name: "Travel", slug: "travel", icon: "fa-plane"},
	}

	storeSeeds = []storeSeed{
		{
			name:     "Nike",
			slug:     "nike",
			category: "Fashion",
			logo:     "https://upload.wikimedia.org/wikipedia/commons/thumb/a/a6/Logo_NIKE.svg/1200px-Logo_NIKE.svg.png",
			desc:     "Just Do It. Innovative sportswear and footwear.",
			url:      "https://nike.com",
		},
		{
			name:     "Amazon",
			slug:     "amazon",
			category: "Electronics",
			logo:     "https://upload.wikimedia.org/wikipedia/commons/thumb/a/a9/Amazon_logo.svg/2560px-Amazon_logo.svg.png",
			desc:     "Earth's biggest selection of books, electronics, apparel & more.",
			url:      "https://amazon.com",
		},
		{
			name:     "Expedia",
			slug:     "expedia",
			category: "Travel",
			logo:     "https://upload.wikimedia.org/wikipedia/commons/thumb/3/36/Expedia_2024_logo.svg/2560px-Expedia_2024_logo.svg.png",
			desc:     "Plan your next trip with Expedia.",
			url:      "https://expedia.com",
		},
	}

	couponSeeds = []couponSeed{
		{
			title:       "20% Off All Running Shoes",
			code:        "RUN20",
			store:       "Nike",
			category:    "Fashion",
			desc:        "Get 20% off exclusively on running shoes. Limited time offer.",
			isExclusive: true,
			isFeatured:  true,
			discount:    "20% OFF",
		},
		{
			title:    "Free Shipping on Orders Over $100",
			code:     "SHIPFREE",
			store:    "Nike",
			category: "Fashion",
			desc:     "Enjoy free standard shipping on all qualifying orders.",
			discount: "Free Shipping",
		},
		{
			title:       "$50 Off New Kindle Paperwhite",
			code:        "KINDLE50",
			store:       "Amazon",
			category:    "Electronics",
			desc:        "Save big on the latest e-reader.",
			isExclusive: true,
			isFeatured:  true,
			discount:    "$50 OFF",
		},
		{
			title:      "Lightning Deal: Up to 70% Off Electronics",
			code:       "", // a Deal, no code to copy
			store:      "Amazon",
			category:   "Electronics",
			desc:       "Check out the daily lightning deals section.",
			isFeatured: true,
			discount:   "UP TO 70%",
		},
		{
			title:       "10% Off Hotel Bookings",
			code:        "HOTEL10",
			store:       "Expedia",
			category:    "Travel",
			desc:        "Valid on select hotels worldwide.",
			isExclusive: true,
			isFeatured:  true,
			discount:    "10% OFF",
		},
		{
			title:    "Save $100 on Flight + Hotel Packages",
			code:     "BUNDLE100",
			store:    "Expedia",
			category: "Travel",
			desc:     "Book together and save more on your vacation.",
			discount: "$100 OFF",
		},
	}
)

// Run seeds one admin user, three categories, three stores and six coupons,
// skipping anything already present.
func (s *Seeder) Run(ctx context.Context) (*Summary, error) {
	if err := s.seedAdmin(ctx); err != nil {
		return nil, err
	}

	categoryIDs, err := s.seedCategories(ctx)
	if err != nil {
		return nil, err
	}

	storeIDs, err := s.seedStores(ctx)
	if err != nil {
		return nil, err
	}

	created, err := s.seedCoupons(ctx, categoryIDs, storeIDs)
	if err != nil {
		return nil, err
	}

	return &Summary{CreatedCoupons: created}, nil
}

func (s *Seeder) seedAdmin(ctx context.Context) error {
	_, err := s.users.FindByEmail(ctx, AdminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return fmt.Errorf("failed to look up admin user: %w", err)
	}

	passwordHash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	return s.users.Create(ctx, &models.User{
		Name:         "Admin User",
		Email:        AdminEmail,
		PasswordHash: passwordHash,
		Role:         models.RoleAdmin,
		Verified:     true,
	})
}

func (s *Seeder) seedCategories(ctx context.Context) (map[string]primitive.ObjectID, error) {
	ids := make(map[string]primitive.ObjectID, len(categorySeeds))
	for _, cs := range categorySeeds {
		existing, err := s.categories.FindBySlug(ctx, cs.slug)
		if err == nil {
			ids[cs.name] = existing.ID
			continue
		}
		if !errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, fmt.Errorf("failed to look up category %q: %w", cs.slug, err)
		}

		category := &models.Category{
			Name:        cs.name,
			Slug:        cs.slug,
			Description: "Best deals on " + cs.name,
			Icon:        cs.icon,
			IsActive:    true,
			IsFeatured:  true,
		}
		if err := s.categories.Create(ctx, category); err != nil {
			return nil, err
		}
		ids[cs.name] = category.ID
	}
	return ids, nil
}

func (s *Seeder) seedStores(ctx context.Context) (map[string]primitive.ObjectID, error) {
	ids := make(map[string]primitive.ObjectID, len(storeSeeds))
	for _, ss := range storeSeeds {
		existing, err := s.stores.FindBySlug(ctx, ss.slug)
		if err == nil {
			ids[ss.name] = existing.ID
			continue
		}
		if !errors.Is(err, repository.ErrStoreNotFound) {
			return nil, fmt.Errorf("failed to look up store %q: %w", ss.slug, err)
		}

		store := &models.Store{
			Name:          ss.name,
			Slug:          ss.slug,
			Description:   ss.desc,
			LogoURL:       ss.logo,
			URL:           ss.url,
			AffiliateLink: ss.url + "?ref=demo",
			IsActive:      true,
			IsFeatured:    true,
		}
		if err := s.stores.Create(ctx, store); err != nil {
			return nil, err
		}
		ids[ss.name] = store.ID
	}
	return ids, nil
}

func (s *Seeder) seedCoupons(ctx context.Context, categoryIDs, storeIDs map[string]primitive.ObjectID) (int, error) {
	created := 0
	for _, cs := range couponSeeds {
		storeID, ok := storeIDs[cs.store]
		if !ok {
			return created, fmt.Errorf("seed coupon %q references unknown store %q", cs.title, cs.store)
		}

		_, err := s.coupons.FindByCodeAndStore(ctx, cs.code, storeID)
		if err == nil {
			continue
		}
		if !errors.Is(err, repository.ErrCouponNotFound) {
			return created, fmt.Errorf("failed to look up coupon %q: %w", cs.title, err)
		}

		couponType := models.CouponTypeCode
		if cs.code == "" {
			couponType = models.CouponTypeDeal
		}

		coupon := &models.Coupon{
			Title:         cs.title,
			Code:          cs.code,
			Description:   cs.desc,
			Store:         storeID,
			Category:      categoryIDs[cs.category],
			CouponType:    couponType,
			DiscountValue: cs.discount,
			IsActive:      true,
			IsExclusive:   cs.isExclusive,
			IsFeatured:    cs.isFeatured,
			IsVerified:    true,
		}
		if err := s.coupons.Create(ctx, coupon); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
