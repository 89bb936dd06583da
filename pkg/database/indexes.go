package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureIndexes creates the query-supporting indexes. Slugs deliberately get
// no unique index: uniqueness is enforced by an existence check in the
// mutation pipeline, not by the store.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	couponIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "store", Value: 1}, {Key: "isActive", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}, {Key: "isActive", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	}
	if _, err := db.Collection("coupons").Indexes().CreateMany(ctx, couponIndexes); err != nil {
		return fmt.Errorf("failed to create coupon indexes: %w", err)
	}

	for _, coll := range []string{"stores", "categories"} {
		_, err := db.Collection(coll).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: "slug", Value: 1}},
		})
		if err != nil {
			return fmt.Errorf("failed to create %s slug index: %w", coll, err)
		}
	}

	_, err := db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create user email index: %w", err)
	}

	return nil
}
