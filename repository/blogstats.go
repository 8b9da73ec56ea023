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

type BlogStatsRepo struct {
	MongoCollection *mongo.Collection
}

func GetBlogStatsRepo(client *mongo.Client) *BlogStatsRepo {
	return &BlogStatsRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("blog_stats"),
	}
}

// GetOrCreate returns the event log for a blog, creating an empty one on
// first touch.
func (r *BlogStatsRepo) GetOrCreate(ctx context.Context, blogID string) (*model.BlogStats, error) {
	var stats model.BlogStats
	err := r.MongoCollection.FindOne(ctx, bson.M{"blog_id": blogID}).Decode(&stats)
	if err == nil {
		return &stats, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	now := time.Now()
	stats = model.BlogStats{
		ID:        uuid.New().String(),
		BlogID:    blogID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := r.MongoCollection.InsertOne(ctx, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *BlogStatsRepo) AppendView(ctx context.Context, blogID string, event model.ViewEvent) error {
	_, err := r.MongoCollection.UpdateOne(ctx, bson.M{"blog_id": blogID}, bson.M{
		"$push": bson.M{"views": event},
		"$set":  bson.M{"updated_at": time.Now()},
	})
	return err
}

func (r *BlogStatsRepo) AppendLike(ctx context.Context, blogID string, event model.LikeEvent) error {
	_, err := r.MongoCollection.UpdateOne(ctx, bson.M{"blog_id": blogID}, bson.M{
		"$push": bson.M{"likes": event},
		"$set":  bson.M{"updated_at": time.Now()},
	})
	return err
}

func (r *BlogStatsRepo) AppendShare(ctx context.Context, blogID string, event model.ShareEvent) error {
	_, err := r.MongoCollection.UpdateOne(ctx, bson.M{"blog_id": blogID}, bson.M{
		"$push": bson.M{"shares": event},
		"$set":  bson.M{"updated_at": time.Now()},
	})
	return err
}

func (r *BlogStatsRepo) DeleteForBlog(ctx context.Context, blogID string) error {
	_, err := r.MongoCollection.DeleteOne(ctx, bson.M{"blog_id": blogID})
	return err
}
