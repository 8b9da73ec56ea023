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

type SkillsRepo struct {
	MongoCollection *mongo.Collection
}

func GetSkillsRepo(client *mongo.Client) *SkillsRepo {
	return &SkillsRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("skills"),
	}
}

// FindSkills returns skills sorted by category then order.
func (r *SkillsRepo) FindSkills(ctx context.Context, category string, featured *bool) ([]*model.Skill, error) {
	query := bson.M{}
	if category != "" {
		query["category"] = category
	}
	if featured != nil {
		query["featured"] = *featured
	}

	opts := options.Find().SetSort(bson.D{{Key: "category", Value: 1}, {Key: "order", Value: 1}})
	cursor, err := r.MongoCollection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var skills []*model.Skill
	if err = cursor.All(ctx, &skills); err != nil {
		return nil, err
	}
	return skills, nil
}

func (r *SkillsRepo) GetSkill(ctx context.Context, id string) (*model.Skill, error) {
	var skill model.Skill
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&skill)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &skill, nil
}

// CreateSkill appends the skill after the highest order in its category.
func (r *SkillsRepo) CreateSkill(ctx context.Context, skill *model.Skill) error {
	if skill.ID == "" {
		skill.ID = uuid.New().String()
	}
	if skill.Order == 0 {
		opts := options.FindOne().SetSort(bson.D{{Key: "order", Value: -1}})
		var last model.Skill
		err := r.MongoCollection.FindOne(ctx, bson.M{"category": skill.Category}, opts).Decode(&last)
		switch err {
		case nil:
			skill.Order = last.Order + 1
		case mongo.ErrNoDocuments:
			skill.Order = 0
		default:
			return err
		}
	}

	now := time.Now()
	skill.CreatedAt = now
	skill.UpdatedAt = now

	_, err := r.MongoCollection.InsertOne(ctx, skill)
	return err
}

func (r *SkillsRepo) UpdateSkill(ctx context.Context, id string, fields bson.M) error {
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

// DeleteSkill removes the skill and closes the gap by decrementing the
// order of later skills in the same category.
func (r *SkillsRepo) DeleteSkill(ctx context.Context, id string) error {
	var skill model.Skill
	err := r.MongoCollection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&skill)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrNotFound
		}
		return err
	}

	_, err = r.MongoCollection.UpdateMany(ctx,
		bson.M{"category": skill.Category, "order": bson.M{"$gt": skill.Order}},
		bson.M{"$inc": bson.M{"order": -1}})
	return err
}

// ReorderSkills rewrites each skill's order to its index in the given id
// list.
func (r *SkillsRepo) ReorderSkills(ctx context.Context, skillIDs []string) error {
	models := make([]mongo.WriteModel, 0, len(skillIDs))
	for index, id := range skillIDs {
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": id}).
			SetUpdate(bson.M{"$set": bson.M{"order": index, "updated_at": time.Now()}}))
	}
	if len(models) == 0 {
		return nil
	}
	_, err := r.MongoCollection.BulkWrite(ctx, models)
	return err
}

// Categories returns the distinct skill categories in use.
func (r *SkillsRepo) Categories(ctx context.Context) ([]string, error) {
	values, err := r.MongoCollection.Distinct(ctx, "category", bson.M{})
	if err != nil {
		return nil, err
	}
	categories := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			categories = append(categories, s)
		}
	}
	return categories, nil
}
