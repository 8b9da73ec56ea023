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

type ToolsRepo struct {
	MongoCollection *mongo.Collection
}

func GetToolsRepo(client *mongo.Client) *ToolsRepo {
	return &ToolsRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("tools"),
	}
}

func (r *ToolsRepo) FindTools(ctx context.Context) ([]*model.Tool, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tools []*model.Tool
	if err = cursor.All(ctx, &tools); err != nil {
		return nil, err
	}
	return tools, nil
}

func (r *ToolsRepo) GetTool(ctx context.Context, id string) (*model.Tool, error) {
	var tool model.Tool
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&tool)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &tool, nil
}

func (r *ToolsRepo) CreateTool(ctx context.Context, tool *model.Tool) error {
	if tool.ID == "" {
		tool.ID = uuid.New().String()
	}
	now := time.Now()
	tool.CreatedAt = now
	tool.UpdatedAt = now

	_, err := r.MongoCollection.InsertOne(ctx, tool)
	return err
}

func (r *ToolsRepo) UpdateTool(ctx context.Context, id string, fields bson.M) error {
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

func (r *ToolsRepo) DeleteTool(ctx context.Context, id string) error {
	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
