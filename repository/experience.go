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

type ExperienceRepo struct {
	WorkCollection      *mongo.Collection
	EducationCollection *mongo.Collection
}

func GetExperienceRepo(client *mongo.Client) *ExperienceRepo {
	db := client.Database(os.Getenv("MONGO_DB"))
	return &ExperienceRepo{
		WorkCollection:      db.Collection("work_experience"),
		EducationCollection: db.Collection("education"),
	}
}

// experienceSort orders entries current-first, then newest start date.
func experienceSort() *options.FindOptions {
	return options.Find().SetSort(bson.D{
		{Key: "is_current", Value: -1},
		{Key: "start_date", Value: -1},
	})
}

func experienceQuery(status model.ProjectStatus, featured *bool) bson.M {
	query := bson.M{}
	if status != "" {
		query["status"] = status
	}
	if featured != nil {
		query["featured"] = *featured
	}
	return query
}

func (r *ExperienceRepo) FindWork(ctx context.Context, status model.ProjectStatus, featured *bool) ([]*model.WorkExperience, error) {
	cursor, err := r.WorkCollection.Find(ctx, experienceQuery(status, featured), experienceSort())
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []*model.WorkExperience
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *ExperienceRepo) FindEducation(ctx context.Context, status model.ProjectStatus, featured *bool) ([]*model.Education, error) {
	cursor, err := r.EducationCollection.Find(ctx, experienceQuery(status, featured), experienceSort())
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []*model.Education
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *ExperienceRepo) GetWork(ctx context.Context, id string) (*model.WorkExperience, error) {
	var entry model.WorkExperience
	err := r.WorkCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&entry)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *ExperienceRepo) GetEducation(ctx context.Context, id string) (*model.Education, error) {
	var entry model.Education
	err := r.EducationCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&entry)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *ExperienceRepo) CreateWork(ctx context.Context, entry *model.WorkExperience) error {
	prepareExperience(&entry.BaseExperience, "work")
	_, err := r.WorkCollection.InsertOne(ctx, entry)
	return err
}

func (r *ExperienceRepo) CreateEducation(ctx context.Context, entry *model.Education) error {
	prepareExperience(&entry.BaseExperience, "education")
	_, err := r.EducationCollection.InsertOne(ctx, entry)
	return err
}

func prepareExperience(base *model.BaseExperience, kind string) {
	if base.ID == "" {
		base.ID = uuid.New().String()
	}
	base.Type = kind
	if base.Status == "" {
		base.Status = model.StatusPublished
	}
	if base.IsCurrent {
		base.EndDate = nil
	}
	now := time.Now()
	base.CreatedAt = now
	base.UpdatedAt = now
}

func (r *ExperienceRepo) UpdateWork(ctx context.Context, id string, fields bson.M) error {
	return updateExperience(ctx, r.WorkCollection, id, fields)
}

func (r *ExperienceRepo) UpdateEducation(ctx context.Context, id string, fields bson.M) error {
	return updateExperience(ctx, r.EducationCollection, id, fields)
}

func updateExperience(ctx context.Context, coll *mongo.Collection, id string, fields bson.M) error {
	fields["updated_at"] = time.Now()
	update := bson.M{"$set": fields}
	// A current entry has no end date.
	if current, ok := fields["is_current"].(bool); ok && current {
		delete(fields, "end_date")
		update["$unset"] = bson.M{"end_date": ""}
	}

	result, err := coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ExperienceRepo) DeleteWork(ctx context.Context, id string) error {
	return deleteExperience(ctx, r.WorkCollection, id)
}

func (r *ExperienceRepo) DeleteEducation(ctx context.Context, id string) error {
	return deleteExperience(ctx, r.EducationCollection, id)
}

func deleteExperience(ctx context.Context, coll *mongo.Collection, id string) error {
	result, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
