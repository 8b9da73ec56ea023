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

type NotificationsRepo struct {
	MongoCollection *mongo.Collection
}

func GetNotificationsRepo(client *mongo.Client) *NotificationsRepo {
	return &NotificationsRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("notifications"),
	}
}

type NotificationFilter struct {
	Type       model.NotificationType
	Priority   model.NotificationPriority
	UnreadOnly bool
	Page       int
	Limit      int
}

func (r *NotificationsRepo) CreateNotification(ctx context.Context, n *model.Notification) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.UserID == "" {
		n.UserID = model.DefaultUserID
	}
	if n.Priority == "" {
		n.Priority = model.PriorityMedium
	}
	now := time.Now()
	n.CreatedAt = now
	n.UpdatedAt = now

	_, err := r.MongoCollection.InsertOne(ctx, n)
	return err
}

func (r *NotificationsRepo) FindNotifications(ctx context.Context, filter NotificationFilter) ([]*model.Notification, int64, error) {
	query := bson.M{"user_id": model.DefaultUserID}
	if filter.Type != "" {
		query["type"] = filter.Type
	}
	if filter.Priority != "" {
		query["priority"] = filter.Priority
	}
	if filter.UnreadOnly {
		query["is_read"] = false
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

	var notifications []*model.Notification
	if err = cursor.All(ctx, &notifications); err != nil {
		return nil, 0, err
	}

	total, err := r.MongoCollection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	return notifications, total, nil
}

func (r *NotificationsRepo) UnreadCount(ctx context.Context) (int64, error) {
	return r.MongoCollection.CountDocuments(ctx, bson.M{
		"user_id": model.DefaultUserID,
		"is_read": false,
	})
}

// SetRead marks the given notifications read or unread. An empty id list
// targets every notification.
func (r *NotificationsRepo) SetRead(ctx context.Context, ids []string, read bool) (int64, error) {
	query := bson.M{"user_id": model.DefaultUserID}
	if len(ids) > 0 {
		query["_id"] = bson.M{"$in": ids}
	}

	now := time.Now()
	set := bson.M{"is_read": read, "updated_at": now}
	if read {
		set["read_at"] = now
	} else {
		set["read_at"] = nil
	}

	result, err := r.MongoCollection.UpdateMany(ctx, query, bson.M{"$set": set})
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

// DeleteMany removes the given notifications. An empty id list removes
// them all.
func (r *NotificationsRepo) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	query := bson.M{"user_id": model.DefaultUserID}
	if len(ids) > 0 {
		query["_id"] = bson.M{"$in": ids}
	}
	result, err := r.MongoCollection.DeleteMany(ctx, query)
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// DeleteOld removes read notifications older than the cutoff.
func (r *NotificationsRepo) DeleteOld(ctx context.Context, olderThan time.Time) (int64, error) {
	result, err := r.MongoCollection.DeleteMany(ctx, bson.M{
		"user_id":    model.DefaultUserID,
		"is_read":    true,
		"created_at": bson.M{"$lt": olderThan},
	})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (r *NotificationsRepo) DeleteNotification(ctx context.Context, id string) error {
	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": id, "user_id": model.DefaultUserID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ExistsRecent reports whether a notification of the given type referencing
// related_id was created inside the window. Used to dedupe follow-up
// reminders.
func (r *NotificationsRepo) ExistsRecent(ctx context.Context, nType model.NotificationType, relatedID string, window time.Duration) (bool, error) {
	count, err := r.MongoCollection.CountDocuments(ctx, bson.M{
		"user_id":    model.DefaultUserID,
		"type":       nType,
		"related_id": relatedID,
		"created_at": bson.M{"$gte": time.Now().Add(-window)},
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
