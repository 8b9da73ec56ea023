package repository

import (
	"context"
	"os"
	"time"

	"main/model"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type StatsRepo struct {
	MongoCollection *mongo.Collection
}

func GetStatsRepo(client *mongo.Client) *StatsRepo {
	return &StatsRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("stats"),
	}
}

// GetStats returns the singleton stats document, creating the default one
// on first read.
func (r *StatsRepo) GetStats(ctx context.Context) (*model.Stats, error) {
	var stats model.Stats
	err := r.MongoCollection.FindOne(ctx, bson.M{}).Decode(&stats)
	if err == nil {
		return &stats, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	defaults := model.DefaultStats()
	defaults.ID = uuid.New().String()
	now := time.Now()
	defaults.CreatedAt = now
	defaults.UpdatedAt = now

	if _, err := r.MongoCollection.InsertOne(ctx, defaults); err != nil {
		return nil, err
	}
	return defaults, nil
}

// CreateStats inserts the singleton; a second create is rejected with
// ErrSingletonExists.
func (r *StatsRepo) CreateStats(ctx context.Context, stats *model.Stats) error {
	count, err := r.MongoCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrSingletonExists
	}

	if stats.ID == "" {
		stats.ID = uuid.New().String()
	}
	now := time.Now()
	stats.CreatedAt = now
	stats.UpdatedAt = now

	_, err = r.MongoCollection.InsertOne(ctx, stats)
	return err
}

func (r *StatsRepo) UpdateStats(ctx context.Context, fields bson.M) (*model.Stats, error) {
	current, err := r.GetStats(ctx)
	if err != nil {
		return nil, err
	}

	fields["updated_at"] = time.Now()
	_, err = r.MongoCollection.UpdateOne(ctx, bson.M{"_id": current.ID}, bson.M{"$set": fields})
	if err != nil {
		return nil, err
	}

	var stats model.Stats
	if err := r.MongoCollection.FindOne(ctx, bson.M{"_id": current.ID}).Decode(&stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
