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

type HiringRepo struct {
	MongoCollection *mongo.Collection
}

func GetHiringRepo(client *mongo.Client) *HiringRepo {
	return &HiringRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("hiring_inquiries"),
	}
}

func (r *HiringRepo) CreateInquiry(ctx context.Context, inquiry *model.HiringInquiry) error {
	if inquiry.ID == "" {
		inquiry.ID = uuid.New().String()
	}
	inquiry.Status = model.InquiryNew
	now := time.Now()
	inquiry.CreatedAt = now
	inquiry.UpdatedAt = now

	_, err := r.MongoCollection.InsertOne(ctx, inquiry)
	return err
}

func (r *HiringRepo) FindInquiries(ctx context.Context, status model.HiringInquiryStatus, page, limit int) ([]*model.HiringInquiry, int64, error) {
	query := bson.M{}
	if status != "" {
		query["status"] = status
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		if page < 1 {
			page = 1
		}
		opts.SetSkip(int64((page - 1) * limit)).SetLimit(int64(limit))
	}

	cursor, err := r.MongoCollection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var inquiries []*model.HiringInquiry
	if err = cursor.All(ctx, &inquiries); err != nil {
		return nil, 0, err
	}

	total, err := r.MongoCollection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	return inquiries, total, nil
}

func (r *HiringRepo) GetInquiry(ctx context.Context, id string) (*model.HiringInquiry, error) {
	var inquiry model.HiringInquiry
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&inquiry)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &inquiry, nil
}

func (r *HiringRepo) SetStatus(ctx context.Context, id string, status model.HiringInquiryStatus) (*model.HiringInquiry, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}

	var inquiry model.HiringInquiry
	err := r.MongoCollection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&inquiry)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &inquiry, nil
}

func (r *HiringRepo) DeleteInquiry(ctx context.Context, id string) error {
	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *HiringRepo) GetInquiryStats(ctx context.Context) (*model.HiringInquiryStats, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$status"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
	cursor, err := r.MongoCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Status model.HiringInquiryStatus `bson:"_id"`
		Count  int                       `bson:"count"`
	}
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	stats := &model.HiringInquiryStats{}
	for _, row := range rows {
		stats.Total += row.Count
		switch row.Status {
		case model.InquiryNew:
			stats.New = row.Count
		case model.InquiryReviewed:
			stats.Reviewed = row.Count
		case model.InquiryContacted:
			stats.Contacted = row.Count
		case model.InquiryArchived:
			stats.Archived = row.Count
		}
	}
	return stats, nil
}
