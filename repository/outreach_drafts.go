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

type OutreachDraftsRepo struct {
	MongoCollection *mongo.Collection
}

func GetOutreachDraftsRepo(client *mongo.Client) *OutreachDraftsRepo {
	return &OutreachDraftsRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("outreach_drafts"),
	}
}

func (r *OutreachDraftsRepo) CreateDraft(ctx context.Context, draft *model.OutreachDraft) error {
	if draft.ID == "" {
		draft.ID = uuid.New().String()
	}
	now := time.Now()
	draft.CreatedAt = now
	draft.UpdatedAt = now

	_, err := r.MongoCollection.InsertOne(ctx, draft)
	return err
}

func (r *OutreachDraftsRepo) FindDrafts(ctx context.Context, contactID string) ([]*model.OutreachDraft, error) {
	query := bson.M{}
	if contactID != "" {
		query["contact_id"] = contactID
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.MongoCollection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var drafts []*model.OutreachDraft
	if err = cursor.All(ctx, &drafts); err != nil {
		return nil, err
	}
	return drafts, nil
}

func (r *OutreachDraftsRepo) GetDraft(ctx context.Context, id string) (*model.OutreachDraft, error) {
	var draft model.OutreachDraft
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&draft)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &draft, nil
}

func (r *OutreachDraftsRepo) UpdateDraft(ctx context.Context, id string, fields bson.M) error {
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

func (r *OutreachDraftsRepo) DeleteDraft(ctx context.Context, id string) error {
	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
