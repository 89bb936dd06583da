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

var ErrTemplateNotFound = errors.New("email template not found")

type EmailTemplateRepository struct {
	collection *mongo.Collection
}

func NewEmailTemplateRepository(db *mongo.Database) *EmailTemplateRepository {
	return &EmailTemplateRepository{collection: db.Collection("emailtemplates")}
}

func (r *EmailTemplateRepository) FindAll(ctx context.Context) ([]models.EmailTemplate, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list email templates: %w", err)
	}
	defer cursor.Close(ctx)

	var templates []models.EmailTemplate
	if err := cursor.All(ctx, &templates); err != nil {
		return nil, fmt.Errorf("failed to decode email templates: %w", err)
	}
	return templates, nil
}

func (r *EmailTemplateRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.EmailTemplate, error) {
	var template models.EmailTemplate
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&template)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("failed to get email template: %w", err)
	}
	return &template, nil
}

func (r *EmailTemplateRepository) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error {
	updates["updatedAt"] = time.Now().UTC()
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		return fmt.Errorf("failed to update email template: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrTemplateNotFound
	}
	return nil
}

func (r *EmailTemplateRepository) CreateMany(ctx context.Context, templates []models.EmailTemplate) error {
	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(templates))
	for i := range templates {
		templates[i].CreatedAt = now
		templates[i].UpdatedAt = now
		docs = append(docs, templates[i])
	}
	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to create email templates: %w", err)
	}
	return nil
}

func (r *EmailTemplateRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
