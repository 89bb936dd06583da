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

type StoreRepository struct {
	collection *mongo.Collection
}

func NewStoreRepository(db *mongo.Database) *StoreRepository {
	return &StoreRepository{collection: db.Collection("stores")}
}

func (r *StoreRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Store, error) {
	var store models.Store
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&store)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrStoreNotFound
		}
		return nil, fmt.Errorf("failed to get store: %w", err)
	}
	return &store, nil
}

func (r *StoreRepository) FindBySlug(ctx context.Context, slug string) (*models.Store, error) {
	var store models.Store
	err := r.collection.FindOne(ctx, bson.M{"slug": slug}).Decode(&store)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrStoreNotFound
		}
		return nil, fmt.Errorf("failed to get store by slug: %w", err)
	}
	return &store, nil
}

func (r *StoreRepository) SlugExists(ctx context.Context, slug string, excludeID *primitive.ObjectID) (bool, error) {
	filter := bson.M{"slug": slug}
	if excludeID != nil {
		filter["_id"] = bson.M{"$ne": *excludeID}
	}
	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to check store slug: %w", err)
	}
	return count > 0, nil
}

func (r *StoreRepository) FindAll(ctx context.Context) ([]models.Store, error) {
	return r.find(ctx, bson.M{})
}

func (r *StoreRepository) FindActive(ctx context.Context) ([]models.Store, error) {
	return r.find(ctx, bson.M{"isActive": true})
}

func (r *StoreRepository) find(ctx context.Context, filter bson.M) ([]models.Store, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}
	defer cursor.Close(ctx)

	var stores []models.Store
	if err := cursor.All(ctx, &stores); err != nil {
		return nil, fmt.Errorf("failed to decode stores: %w", err)
	}
	return stores, nil
}

func (r *StoreRepository) Create(ctx context.Context, store *models.Store) error {
	now := time.Now().UTC()
	store.CreatedAt = now
	store.UpdatedAt = now
	res, err := r.collection.InsertOne(ctx, store)
	if err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		store.ID = oid
	}
	return nil
}

func (r *StoreRepository) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error {
	updates["updatedAt"] = time.Now().UTC()
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		return fmt.Errorf("failed to update store: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrStoreNotFound
	}
	return nil
}

func (r *StoreRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete store: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrStoreNotFound
	}
	return nil
}

func (r *StoreRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
