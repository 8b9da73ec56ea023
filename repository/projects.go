package repository

import (
	"context"
	"fmt"
	"os"
	"time"

	"main/model"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProjectsRepo struct {
	MongoCollection *mongo.Collection
	client          *mongo.Client
}

func GetProjectsRepo(client *mongo.Client) *ProjectsRepo {
	return &ProjectsRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("projects"),
		client:          client,
	}
}

// ProjectFilter carries the optional list filters; zero values mean "no
// filter".
type ProjectFilter struct {
	Status    model.ProjectStatus
	Category  string
	Featured  *bool
	Search    string
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

func (f ProjectFilter) query() bson.M {
	query := bson.M{}
	if f.Status != "" {
		query["status"] = f.Status
	}
	if f.Category != "" {
		query["category"] = f.Category
	}
	if f.Featured != nil {
		query["featured"] = *f.Featured
	}
	if f.Search != "" {
		query["$or"] = []bson.M{
			{"title": bson.M{"$regex": f.Search, "$options": "i"}},
			{"short_description": bson.M{"$regex": f.Search, "$options": "i"}},
			{"description": bson.M{"$regex": f.Search, "$options": "i"}},
		}
	}
	return query
}

// FindProjects returns a page of projects plus the total match count.
// Default sort is order ascending.
func (r *ProjectsRepo) FindProjects(ctx context.Context, filter ProjectFilter) ([]*model.Project, int64, error) {
	query := filter.query()

	sortField := "order"
	if filter.SortBy != "" {
		sortField = filter.SortBy
	}
	sortDir := 1
	if filter.SortOrder == "desc" {
		sortDir = -1
	}

	opts := options.Find().SetSort(bson.D{{Key: sortField, Value: sortDir}, {Key: "created_at", Value: -1}})
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

	var projects []*model.Project
	if err = cursor.All(ctx, &projects); err != nil {
		return nil, 0, err
	}

	total, err := r.MongoCollection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	return projects, total, nil
}

func (r *ProjectsRepo) GetProject(ctx context.Context, id string) (*model.Project, error) {
	var project model.Project
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&project)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &project, nil
}

// CreateProject persists a new project. When no order is given the
// project is appended after the current highest order.
func (r *ProjectsRepo) CreateProject(ctx context.Context, project *model.Project) error {
	if project.ID == "" {
		project.ID = uuid.New().String()
	}
	if project.Status == "" {
		project.Status = model.StatusDraft
	}
	if project.Order == 0 {
		last, err := r.maxOrder(ctx)
		if err != nil {
			return err
		}
		project.Order = last + 1
	}

	now := time.Now()
	project.CreatedAt = now
	project.UpdatedAt = now

	_, err := r.MongoCollection.InsertOne(ctx, project)
	return err
}

func (r *ProjectsRepo) maxOrder(ctx context.Context) (int, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "order", Value: -1}})
	var last model.Project
	err := r.MongoCollection.FindOne(ctx, bson.M{}, opts).Decode(&last)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return -1, nil
		}
		return 0, err
	}
	return last.Order, nil
}

func (r *ProjectsRepo) UpdateProject(ctx context.Context, id string, updates *model.Project) error {
	updates.UpdatedAt = time.Now()

	update := bson.M{"$set": bson.M{
		"title":             updates.Title,
		"description":       updates.Description,
		"short_description": updates.ShortDescription,
		"category":          updates.Category,
		"technologies":      updates.Technologies,
		"repositories":      updates.Repositories,
		"demo_urls":         updates.DemoURLs,
		"image":             updates.Image,
		"image_public_id":   updates.ImagePublicID,
		"completion_date":   updates.CompletionDate,
		"featured":          updates.Featured,
		"status":            updates.Status,
		"updated_at":        updates.UpdatedAt,
	}}

	result, err := r.MongoCollection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// PatchProject applies a partial update built from the given fields.
func (r *ProjectsRepo) PatchProject(ctx context.Context, id string, fields bson.M) error {
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

// BulkPatchProjects applies the same field set to every listed project
// and reports how many matched.
func (r *ProjectsRepo) BulkPatchProjects(ctx context.Context, ids []string, fields bson.M) (int64, error) {
	fields["updated_at"] = time.Now()
	result, err := r.MongoCollection.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": ids}},
		bson.M{"$set": fields})
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}

func (r *ProjectsRepo) DeleteProject(ctx context.Context, id string) error {
	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ReorderProjects rewrites each project's order to its index in the
// given id list, inside a transaction: an unknown id aborts the whole
// operation and leaves every order untouched.
func (r *ProjectsRepo) ReorderProjects(ctx context.Context, projectIDs []string) error {
	session, err := r.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		for index, id := range projectIDs {
			result, err := r.MongoCollection.UpdateOne(sc,
				bson.M{"_id": id},
				bson.M{"$set": bson.M{"order": index, "updated_at": time.Now()}})
			if err != nil {
				return nil, err
			}
			if result.MatchedCount == 0 {
				return nil, fmt.Errorf("%w: project %s", ErrInvalidReference, id)
			}
		}
		return nil, nil
	})
	return err
}

// GetProjectStats aggregates counts by status, featured flag and category.
func (r *ProjectsRepo) GetProjectStats(ctx context.Context) (*model.ProjectStats, error) {
	stats := &model.ProjectStats{ByCategory: map[string]int{}}

	total, err := r.MongoCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	stats.Total = int(total)

	published, err := r.MongoCollection.CountDocuments(ctx, bson.M{"status": model.StatusPublished})
	if err != nil {
		return nil, err
	}
	stats.Published = int(published)
	stats.Drafts = stats.Total - stats.Published

	featured, err := r.MongoCollection.CountDocuments(ctx, bson.M{"featured": true})
	if err != nil {
		return nil, err
	}
	stats.Featured = int(featured)

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$category"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
	cursor, err := r.MongoCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ID    string `bson:"_id"`
		Count int    `bson:"count"`
	}
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	for _, row := range rows {
		if row.ID != "" {
			stats.ByCategory[row.ID] = row.Count
		}
	}
	return stats, nil
}
