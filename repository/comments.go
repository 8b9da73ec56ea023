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

type CommentsRepo struct {
	MongoCollection *mongo.Collection
}

func GetCommentsRepo(client *mongo.Client) *CommentsRepo {
	return &CommentsRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("comments"),
	}
}

func (r *CommentsRepo) CreateComment(ctx context.Context, comment *model.Comment) error {
	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}
	if comment.Status == "" {
		comment.Status = model.CommentPending
	}
	now := time.Now()
	comment.CreatedAt = now
	comment.UpdatedAt = now

	_, err := r.MongoCollection.InsertOne(ctx, comment)
	return err
}

// FindByBlog returns a blog's comments, optionally restricted to one
// status, newest first.
func (r *CommentsRepo) FindByBlog(ctx context.Context, blogID string, status model.CommentStatus) ([]*model.Comment, error) {
	query := bson.M{"blog_id": blogID}
	if status != "" {
		query["status"] = status
	}
	return r.find(ctx, query)
}

// FindAll returns comments across all blogs for the dashboard moderation
// view.
func (r *CommentsRepo) FindAll(ctx context.Context, status model.CommentStatus) ([]*model.Comment, error) {
	query := bson.M{}
	if status != "" {
		query["status"] = status
	}
	return r.find(ctx, query)
}

func (r *CommentsRepo) find(ctx context.Context, query bson.M) ([]*model.Comment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.MongoCollection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var comments []*model.Comment
	if err = cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *CommentsRepo) GetComment(ctx context.Context, id string) (*model.Comment, error) {
	var comment model.Comment
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&comment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &comment, nil
}

func (r *CommentsRepo) SetStatus(ctx context.Context, id string, status model.CommentStatus) (*model.Comment, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}

	var comment model.Comment
	err := r.MongoCollection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&comment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &comment, nil
}

func (r *CommentsRepo) DeleteComment(ctx context.Context, id string) (*model.Comment, error) {
	var comment model.Comment
	err := r.MongoCollection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&comment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &comment, nil
}

func (r *CommentsRepo) DeleteForBlog(ctx context.Context, blogID string) error {
	_, err := r.MongoCollection.DeleteMany(ctx, bson.M{"blog_id": blogID})
	return err
}

// CountersForBlog recomputes the per-status counters used on the blog
// document.
func (r *CommentsRepo) CountersForBlog(ctx context.Context, blogID string) (model.BlogCommentCounters, error) {
	counters := model.BlogCommentCounters{}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "blog_id", Value: blogID}}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$status"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
	cursor, err := r.MongoCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return counters, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Status model.CommentStatus `bson:"_id"`
		Count  int                 `bson:"count"`
	}
	if err = cursor.All(ctx, &rows); err != nil {
		return counters, err
	}
	for _, row := range rows {
		counters.Total += row.Count
		switch row.Status {
		case model.CommentApproved:
			counters.Approved = row.Count
		case model.CommentPending:
			counters.Pending = row.Count
		case model.CommentSpam:
			counters.Spam = row.Count
		}
	}
	return counters, nil
}
