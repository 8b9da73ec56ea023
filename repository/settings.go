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

type SettingsRepo struct {
	MongoCollection *mongo.Collection
}

func GetSettingsRepo(client *mongo.Client) *SettingsRepo {
	return &SettingsRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("settings"),
	}
}

// GetSettings returns the singleton settings document, creating the
// default one on first read.
func (r *SettingsRepo) GetSettings(ctx context.Context) (*model.Settings, error) {
	var settings model.Settings
	err := r.MongoCollection.FindOne(ctx, bson.M{}).Decode(&settings)
	if err == nil {
		return &settings, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	defaults := model.DefaultSettings()
	defaults.ID = uuid.New().String()
	now := time.Now()
	defaults.CreatedAt = now
	defaults.UpdatedAt = now

	if _, err := r.MongoCollection.InsertOne(ctx, defaults); err != nil {
		return nil, err
	}
	return defaults, nil
}

// UpdateSettings applies a partial update to the singleton and returns
// the updated document.
func (r *SettingsRepo) UpdateSettings(ctx context.Context, fields bson.M) (*model.Settings, error) {
	current, err := r.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	fields["updated_at"] = time.Now()
	_, err = r.MongoCollection.UpdateOne(ctx, bson.M{"_id": current.ID}, bson.M{"$set": fields})
	if err != nil {
		return nil, err
	}

	var settings model.Settings
	if err := r.MongoCollection.FindOne(ctx, bson.M{"_id": current.ID}).Decode(&settings); err != nil {
		return nil, err
	}
	return &settings, nil
}
