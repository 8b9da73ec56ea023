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

type MessagesRepo struct {
	MongoCollection *mongo.Collection
}

func GetMessagesRepo(client *mongo.Client) *MessagesRepo {
	return &MessagesRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("messages"),
	}
}

type MessageFilter struct {
	Status model.MessageStatus
	Search string
	Page   int
	Limit  int
}

func (r *MessagesRepo) CreateMessage(ctx context.Context, message *model.Message) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	message.Status = model.MessageUnread
	now := time.Now()
	message.CreatedAt = now
	message.UpdatedAt = now

	_, err := r.MongoCollection.InsertOne(ctx, message)
	return err
}

func (r *MessagesRepo) FindMessages(ctx context.Context, filter MessageFilter) ([]*model.Message, int64, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Search != "" {
		query["$or"] = []bson.M{
			{"name": bson.M{"$regex": filter.Search, "$options": "i"}},
			{"email": bson.M{"$regex": filter.Search, "$options": "i"}},
			{"message": bson.M{"$regex": filter.Search, "$options": "i"}},
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if filter.Limit > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		opts.SetSkip(int64((page - 1) * filter.Limit)).SetLimit(int64(filter.Limit))
	}

	cursor, err := r.MongoCollection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var messages []*model.Message
	if err = cursor.All(ctx, &messages); err != nil {
		return nil, 0, err
	}

	total, err := r.MongoCollection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	return messages, total, nil
}

func (r *MessagesRepo) GetMessage(ctx context.Context, id string) (*model.Message, error) {
	var message model.Message
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&message)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &message, nil
}

// SetStatus moves a message to the given status, stamping read_at or
// replied_at the first time the matching status is reached.
func (r *MessagesRepo) SetStatus(ctx context.Context, id string, status model.MessageStatus) (*model.Message, error) {
	now := time.Now()
	set := bson.M{"status": status, "updated_at": now}
	switch status {
	case model.MessageRead:
		set["read_at"] = now
	case model.MessageReplied:
		set["replied_at"] = now
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var message model.Message
	err := r.MongoCollection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&message)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &message, nil
}

// AddReply appends a reply and marks the message replied.
func (r *MessagesRepo) AddReply(ctx context.Context, id string, reply model.Reply) (*model.Message, error) {
	now := time.Now()
	update := bson.M{
		"$push": bson.M{"replies": reply},
		"$set": bson.M{
			"status":     model.MessageReplied,
			"replied_at": now,
			"updated_at": now,
		},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var message model.Message
	err := r.MongoCollection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&message)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &message, nil
}

func (r *MessagesRepo) DeleteMessage(ctx context.Context, id string) error {
	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MessagesRepo) GetMessageStats(ctx context.Context) (*model.MessageStats, error) {
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
		Status model.MessageStatus `bson:"_id"`
		Count  int                 `bson:"count"`
	}
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	stats := &model.MessageStats{}
	for _, row := range rows {
		stats.Total += row.Count
		switch row.Status {
		case model.MessageUnread:
			stats.Unread = row.Count
		case model.MessageReplied:
			stats.Replied = row.Count
		case model.MessageArchived:
			stats.Archived = row.Count
		}
	}
	return stats, nil
}
