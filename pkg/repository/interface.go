package repository

import (
	"context"
	"errors"

	"github.com/Haris-56/coupon/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrStoreNotFound    = errors.New("store not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCouponNotFound   = errors.New("coupon not found")
	ErrUserNotFound     = errors.New("user not found")
)

// StoreRepo defines the operations the mutation and listing layers need for
// stores. Implemented by the mongo-backed StoreRepository; mocked in tests.
type StoreRepo interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Store, error)
	FindBySlug(ctx context.Context, slug string) (*models.Store, error)
	// SlugExists checks for a slug collision, optionally excluding the
	// entity's own id on update.
	SlugExists(ctx context.Context, slug string, excludeID *primitive.ObjectID) (bool, error)
	FindAll(ctx context.Context) ([]models.Store, error)
	FindActive(ctx context.Context) ([]models.Store, error)
	Create(ctx context.Context, store *models.Store) error
	Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

type CategoryRepo interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error)
	FindBySlug(ctx context.Context, slug string) (*models.Category, error)
	SlugExists(ctx context.Context, slug string, excludeID *primitive.ObjectID) (bool, error)
	FindAll(ctx context.Context) ([]models.Category, error)
	FindActive(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

type CouponRepo interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Coupon, error)
	Search(ctx context.Context, filter bson.M, sort bson.D) ([]models.Coupon, error)
	FindByCodeAndStore(ctx context.Context, code string, storeID primitive.ObjectID) (*models.Coupon, error)
	Create(ctx context.Context, coupon *models.Coupon) error
	Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	// IncrementVote bumps votesUp or votesDown by one. Counters only ever
	// grow.
	IncrementVote(ctx context.Context, id primitive.ObjectID, direction models.VoteDirection) error
	Count(ctx context.Context) (int64, error)
}

type UserRepo interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Count(ctx context.Context) (int64, error)
}

type EmailTemplateRepo interface {
	FindAll(ctx context.Context) ([]models.EmailTemplate, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.EmailTemplate, error)
	Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error
	CreateMany(ctx context.Context, templates []models.EmailTemplate) error
	Count(ctx context.Context) (int64, error)
}
