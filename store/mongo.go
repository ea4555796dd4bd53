package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/redsand-dev/real_estate_api/backend/models"
)

// Projection stripping Mongo's own _id so it never reaches a response.
var noObjectID = bson.M{"_id": 0}

type mongoPropertyStore struct {
	col *mongo.Collection
}

func NewPropertyStore(db *mongo.Database) PropertyStore {
	return &mongoPropertyStore{col: db.Collection("properties")}
}

func (s *mongoPropertyStore) Insert(ctx context.Context, p models.Property) error {
	if _, err := s.col.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("inserting property: %w", err)
	}
	return nil
}

func (s *mongoPropertyStore) List(ctx context.Context, f PropertyFilter, opts ListOptions) ([]models.Property, error) {
	// Mongo reads limit 0 as unbounded; the API contract means zero rows.
	if opts.Limit == 0 {
		return []models.Property{}, nil
	}
	findOpts := options.Find().
		SetProjection(noObjectID).
		SetSkip(opts.Skip).
		SetLimit(opts.Limit)

	cursor, err := s.col.Find(ctx, buildFilter(f), findOpts)
	if err != nil {
		return nil, fmt.Errorf("listing properties: %w", err)
	}
	defer cursor.Close(ctx)

	var properties []models.Property
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, fmt.Errorf("decoding properties: %w", err)
	}
	return properties, nil
}

func (s *mongoPropertyStore) Featured(ctx context.Context, limit int64) ([]models.Property, error) {
	if limit == 0 {
		return []models.Property{}, nil
	}
	findOpts := options.Find().
		SetProjection(noObjectID).
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := s.col.Find(ctx, bson.M{"status": models.StatusAvailable}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("listing featured properties: %w", err)
	}
	defer cursor.Close(ctx)

	var properties []models.Property
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, fmt.Errorf("decoding featured properties: %w", err)
	}
	return properties, nil
}

func (s *mongoPropertyStore) GetByID(ctx context.Context, id string) (models.Property, error) {
	var p models.Property
	err := s.col.FindOne(ctx, bson.M{"id": id}, options.FindOne().SetProjection(noObjectID)).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Property{}, ErrNotFound
	}
	if err != nil {
		return models.Property{}, fmt.Errorf("fetching property %s: %w", id, err)
	}
	return p, nil
}

func (s *mongoPropertyStore) Update(ctx context.Context, id string, u models.PropertyUpdate, updatedAt time.Time) error {
	res, err := s.col.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": buildUpdate(u, updatedAt)})
	if err != nil {
		return fmt.Errorf("updating property %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *mongoPropertyStore) Delete(ctx context.Context, id string) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("deleting property %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *mongoPropertyStore) Count(ctx context.Context, f PropertyFilter) (int64, error) {
	count, err := s.col.CountDocuments(ctx, buildFilter(f))
	if err != nil {
		return 0, fmt.Errorf("counting properties: %w", err)
	}
	return count, nil
}

func (s *mongoPropertyStore) DistinctAreas(ctx context.Context) ([]string, error) {
	values, err := s.col.Distinct(ctx, "area", bson.M{})
	if err != nil {
		return nil, fmt.Errorf("fetching distinct areas: %w", err)
	}
	areas := make([]string, 0, len(values))
	for _, v := range values {
		if area, ok := v.(string); ok {
			areas = append(areas, area)
		}
	}
	return areas, nil
}

type mongoInquiryStore struct {
	col *mongo.Collection
}

func NewInquiryStore(db *mongo.Database) InquiryStore {
	return &mongoInquiryStore{col: db.Collection("inquiries")}
}

func (s *mongoInquiryStore) Insert(ctx context.Context, inq models.ContactInquiry) error {
	if _, err := s.col.InsertOne(ctx, inq); err != nil {
		return fmt.Errorf("inserting inquiry: %w", err)
	}
	return nil
}

func (s *mongoInquiryStore) List(ctx context.Context, opts ListOptions) ([]models.ContactInquiry, error) {
	if opts.Limit == 0 {
		return []models.ContactInquiry{}, nil
	}
	findOpts := options.Find().
		SetProjection(noObjectID).
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(opts.Skip).
		SetLimit(opts.Limit)

	cursor, err := s.col.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("listing inquiries: %w", err)
	}
	defer cursor.Close(ctx)

	var inquiries []models.ContactInquiry
	if err := cursor.All(ctx, &inquiries); err != nil {
		return nil, fmt.Errorf("decoding inquiries: %w", err)
	}
	return inquiries, nil
}

func (s *mongoInquiryStore) Delete(ctx context.Context, id string) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("deleting inquiry %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *mongoInquiryStore) Count(ctx context.Context) (int64, error) {
	count, err := s.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("counting inquiries: %w", err)
	}
	return count, nil
}
