package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Haris-56/coupon/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CouponRepository struct {
	collection *mongo.Collection
}

func NewCouponRepository(db *mongo.Database) *CouponRepository {
	return &CouponRepository{collection: db.Collection("coupons")}
}

func (r *CouponRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Coupon, error) {
	var coupon models.Coupon
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&coupon)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCouponNotFound
		}
		return nil, fmt.Errorf("failed to get coupon: %w", err)
	}
	return &coupon, nil
}

// Search runs a filter built by BuildCouponFilter with the given sort order.
func (r *CouponRepository) Search(ctx context.Context, filter bson.M, sort bson.D) ([]models.Coupon, error) {
	opts := options.Find().SetSort(sort)
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to search coupons: %w", err)
	}
	defer cursor.Close(ctx)

	var coupons []models.Coupon
	if err := cursor.All(ctx, &coupons); err != nil {
		return nil, fmt.Errorf("failed to decode coupons: %w", err)
	}
	return coupons, nil
}

func (r *CouponRepository) FindByCodeAndStore(ctx context.Context, code string, storeID primitive.ObjectID) (*models.Coupon, error) {
	var coupon models.Coupon
	err := r.collection.FindOne(ctx, bson.M{"code": code, "store": storeID}).Decode(&coupon)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCouponNotFound
		}
		return nil, fmt.Errorf("failed to get coupon by code: %w", err)
	}
	return &coupon, nil
}

func (r *CouponRepository) Create(ctx context.Context, coupon *models.Coupon) error {
	now := time.Now().UTC()
	coupon.CreatedAt = now
	coupon.UpdatedAt = now
	res, err := r.collection.InsertOne(ctx, coupon)
	if err != nil {
		return fmt.Errorf("failed to create coupon: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		coupon.ID = oid
	}
	return nil
}

func (r *CouponRepository) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error {
	updates["updatedAt"] = time.Now().UTC()
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		return fmt.Errorf("failed to update coupon: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrCouponNotFound
	}
	return nil
}

func (r *CouponRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete coupon: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrCouponNotFound
	}
	return nil
}

// IncrementVote bumps one of the vote counters. Each increment is a single
// atomic $inc; there is no compare-and-swap and no decrement anywhere.
func (r *CouponRepository) IncrementVote(ctx context.Context, id primitive.ObjectID, direction models.VoteDirection) error {
	field := "votesUp"
	if direction == models.VoteDown {
		field = "votesDown"
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{field: 1}})
	if err != nil {
		return fmt.Errorf("failed to record vote: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrCouponNotFound
	}
	return nil
}

func (r *CouponRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
