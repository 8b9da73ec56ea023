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

type OutreachTemplatesRepo struct {
	MongoCollection *mongo.Collection
}

func GetOutreachTemplatesRepo(client *mongo.Client) *OutreachTemplatesRepo {
	return &OutreachTemplatesRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("outreach_templates"),
	}
}

func (r *OutreachTemplatesRepo) CreateTemplate(ctx context.Context, template *model.OutreachTemplate) error {
	if template.ID == "" {
		template.ID = uuid.New().String()
	}
	now := time.Now()
	template.CreatedAt = now
	template.UpdatedAt = now

	_, err := r.MongoCollection.InsertOne(ctx, template)
	return err
}

func (r *OutreachTemplatesRepo) FindTemplates(ctx context.Context, tType model.OutreachTemplateType) ([]*model.OutreachTemplate, error) {
	query := bson.M{}
	if tType != "" {
		query["type"] = tType
	}

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.MongoCollection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var templates []*model.OutreachTemplate
	if err = cursor.All(ctx, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

func (r *OutreachTemplatesRepo) GetTemplate(ctx context.Context, id string) (*model.OutreachTemplate, error) {
	var template model.OutreachTemplate
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&template)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &template, nil
}

func (r *OutreachTemplatesRepo) UpdateTemplate(ctx context.Context, id string, fields bson.M) error {
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

func (r *OutreachTemplatesRepo) DeleteTemplate(ctx context.Context, id string) error {
	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
