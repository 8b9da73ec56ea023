package repository

import (
	"context"
	"os"
	"time"

	"main/model"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AchievementsRepo struct {
	MongoCollection *mongo.Collection
}

func GetAchievementsRepo(client *mongo.Client) *AchievementsRepo {
	return &AchievementsRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("achievements"),
	}
}

func (r *AchievementsRepo) FindAchievements(ctx context.Context) ([]*model.Achievement, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "created_at", Value: -1}})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var achievements []*model.Achievement
	if err = cursor.All(ctx, &achievements); err != nil {
		return nil, err
	}
	return achievements, nil
}

func (r *AchievementsRepo) GetAchievement(ctx context.Context, id string) (*model.Achievement, error) {
	var achievement model.Achievement
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&achievement)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &achievement, nil
}

func (r *AchievementsRepo) CreateAchievement(ctx context.Context, achievement *model.Achievement) error {
	if achievement.ID == "" {
		achievement.ID = uuid.New().String()
	}
	now := time.Now()
	achievement.CreatedAt = now
	achievement.UpdatedAt = now

	_, err := r.MongoCollection.InsertOne(ctx, achievement)
	return err
}

func (r *AchievementsRepo) UpdateAchievement(ctx context.Context, id string, fields bson.M) error {
	fields["updated_at"] = time.Now()
	result, err := r.MongoCollection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *AchievementsRepo) DeleteAchievement(ctx context.Context, id string) error {
	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
