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

type BlogsRepo struct {
	MongoCollection *mongo.Collection
}

func GetBlogsRepo(client *mongo.Client) *BlogsRepo {
	return &BlogsRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("blogs"),
	}
}

type BlogFilter struct {
	Status    model.ProjectStatus
	Category  string
	Tag       string
	Featured  *bool
	Search    string
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

func (f BlogFilter) query() bson.M {
	query := bson.M{}
	if f.Status != "" {
		query["status"] = f.Status
	}
	if f.Category != "" {
		query["category"] = f.Category
	}
	if f.Tag != "" {
		query["tags"] = f.Tag
	}
	if f.Featured != nil {
		query["featured"] = *f.Featured
	}
	if f.Search != "" {
		query["$or"] = []bson.M{
			{"title": bson.M{"$regex": f.Search, "$options": "i"}},
			{"excerpt": bson.M{"$regex": f.Search, "$options": "i"}},
			{"tags": bson.M{"$regex": f.Search, "$options": "i"}},
		}
	}
	return query
}

// FindBlogs returns a page of blogs without their content field, plus the
// total match count. Default sort is published_at descending.
func (r *BlogsRepo) FindBlogs(ctx context.Context, filter BlogFilter) ([]*model.Blog, int64, error) {
	query := filter.query()

	sortField := "published_at"
	if filter.SortBy != "" {
		sortField = filter.SortBy
	}
	sortDir := -1
	if filter.SortOrder == "asc" {
		sortDir = 1
	}

	opts := options.Find().
		SetSort(bson.D{{Key: sortField, Value: sortDir}, {Key: "created_at", Value: -1}}).
		SetProjection(bson.M{"content": 0})
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

	var blogs []*model.Blog
	if err = cursor.All(ctx, &blogs); err != nil {
		return nil, 0, err
	}

	total, err := r.MongoCollection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	return blogs, total, nil
}

func (r *BlogsRepo) GetBlog(ctx context.Context, id string) (*model.Blog, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *BlogsRepo) GetBlogBySlug(ctx context.Context, slug string) (*model.Blog, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

// GetPublishedBlogBySlug is the public-facing lookup: drafts stay hidden.
func (r *BlogsRepo) GetPublishedBlogBySlug(ctx context.Context, slug string) (*model.Blog, error) {
	return r.findOne(ctx, bson.M{"slug": slug, "status": model.StatusPublished})
}

func (r *BlogsRepo) findOne(ctx context.Context, query bson.M) (*model.Blog, error) {
	var blog model.Blog
	err := r.MongoCollection.FindOne(ctx, query).Decode(&blog)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &blog, nil
}

// SlugExists reports whether any blog other than excludeID already uses
// the slug. Pass an empty excludeID on create.
func (r *BlogsRepo) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	query := bson.M{"slug": slug}
	if excludeID != "" {
		query["_id"] = bson.M{"$ne": excludeID}
	}
	count, err := r.MongoCollection.CountDocuments(ctx, query)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *BlogsRepo) CreateBlog(ctx context.Context, blog *model.Blog) error {
	if blog.ID == "" {
		blog.ID = uuid.New().String()
	}
	now := time.Now()
	blog.CreatedAt = now
	blog.UpdatedAt = now

	_, err := r.MongoCollection.InsertOne(ctx, blog)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

func (r *BlogsRepo) UpdateBlog(ctx context.Context, id string, fields bson.M) error {
	fields["updated_at"] = time.Now()
	result, err := r.MongoCollection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *BlogsRepo) DeleteBlog(ctx context.Context, id string) error {
	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// IncrementViews bumps the denormalized view counters; uniqueView adds to
// the unique count as well.
func (r *BlogsRepo) IncrementViews(ctx context.Context, id string, uniqueView bool) error {
	inc := bson.M{"stats.views.total": 1}
	if uniqueView {
		inc["stats.views.unique"] = 1
	}
	_, err := r.MongoCollection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": inc})
	return err
}

// AddLike bumps the like counter and records the liker IP on the blog
// document.
func (r *BlogsRepo) AddLike(ctx context.Context, id, ip string) error {
	_, err := r.MongoCollection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$inc":      bson.M{"stats.likes.total": 1},
		"$addToSet": bson.M{"stats.likes.users": ip},
	})
	return err
}

// IncrementShares bumps the total share counter and the per-platform one
// when the platform is known.
func (r *BlogsRepo) IncrementShares(ctx context.Context, id, platform string) error {
	inc := bson.M{"stats.shares.total": 1}
	switch platform {
	case "facebook", "twitter", "linkedin":
		inc["stats.shares.platforms."+platform] = 1
	}
	_, err := r.MongoCollection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": inc})
	return err
}

// SetCommentCounters rewrites the denormalized comment counters after a
// comment changes status.
func (r *BlogsRepo) SetCommentCounters(ctx context.Context, id string, counters model.BlogCommentCounters) error {
	_, err := r.MongoCollection.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"stats.comments": counters}})
	return err
}

// BlogOverview is the aggregate shape behind the admin blog stats endpoint.
type BlogOverview struct {
	Total      int `json:"total"`
	Published  int `json:"published"`
	Drafts     int `json:"drafts"`
	TotalViews int `json:"totalViews"`
	TotalLikes int `json:"totalLikes"`
}

func (r *BlogsRepo) GetOverview(ctx context.Context) (*BlogOverview, error) {
	overview := &BlogOverview{}

	total, err := r.MongoCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	overview.Total = int(total)

	published, err := r.MongoCollection.CountDocuments(ctx, bson.M{"status": model.StatusPublished})
	if err != nil {
		return nil, err
	}
	overview.Published = int(published)
	overview.Drafts = overview.Total - overview.Published

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "views", Value: bson.D{{Key: "$sum", Value: "$stats.views.total"}}},
			{Key: "likes", Value: bson.D{{Key: "$sum", Value: "$stats.likes.total"}}},
		}}},
	}
	cursor, err := r.MongoCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Views int `bson:"views"`
		Likes int `bson:"likes"`
	}
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	if len(rows) > 0 {
		overview.TotalViews = rows[0].Views
		overview.TotalLikes = rows[0].Likes
	}
	return overview, nil
}
