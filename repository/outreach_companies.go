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

type OutreachCompaniesRepo struct {
	MongoCollection *mongo.Collection
}

func GetOutreachCompaniesRepo(client *mongo.Client) *OutreachCompaniesRepo {
	return &OutreachCompaniesRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("outreach_companies"),
	}
}

type OutreachCompanyFilter struct {
	Search   string
	Country  string
	Tag      string
	Starred  *bool
	Archived *bool
	Page     int
	Limit    int
}

func (r *OutreachCompaniesRepo) CreateCompany(ctx context.Context, company *model.OutreachCompany) error {
	company.Normalize()
	if company.ID == "" {
		company.ID = uuid.New().String()
	}
	now := time.Now()
	company.CreatedAt = now
	company.UpdatedAt = now

	_, err := r.MongoCollection.InsertOne(ctx, company)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

func (r *OutreachCompaniesRepo) FindCompanies(ctx context.Context, filter OutreachCompanyFilter) ([]*model.OutreachCompany, int64, error) {
	query := bson.M{}
	if filter.Search != "" {
		query["name"] = bson.M{"$regex": filter.Search, "$options": "i"}
	}
	if filter.Country != "" {
		query["country_lower"] = bson.M{"$regex": "^" + filter.Country + "$", "$options": "i"}
	}
	if filter.Tag != "" {
		query["tags"] = filter.Tag
	}
	if filter.Starred != nil {
		query["starred"] = *filter.Starred
	}
	if filter.Archived != nil {
		query["archived"] = *filter.Archived
	}

	opts := options.Find().SetSort(bson.D{{Key: "starred", Value: -1}, {Key: "created_at", Value: -1}})
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

	var companies []*model.OutreachCompany
	if err = cursor.All(ctx, &companies); err != nil {
		return nil, 0, err
	}

	total, err := r.MongoCollection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	return companies, total, nil
}

func (r *OutreachCompaniesRepo) GetCompany(ctx context.Context, id string) (*model.OutreachCompany, error) {
	var company model.OutreachCompany
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&company)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &company, nil
}

// FindByNameCountry resolves a company by case-insensitive (name, country),
// used by the CSV importer to upsert rows.
func (r *OutreachCompaniesRepo) FindByNameCountry(ctx context.Context, name, country string) (*model.OutreachCompany, error) {
	probe := model.OutreachCompany{Name: name, Country: country}
	probe.Normalize()

	var company model.OutreachCompany
	err := r.MongoCollection.FindOne(ctx, bson.M{
		"name_lower":    probe.NameLower,
		"country_lower": probe.CountryLower,
	}).Decode(&company)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &company, nil
}

// FindByName resolves a company by case-insensitive name alone, used by
// the contact importer where rows carry no country column.
func (r *OutreachCompaniesRepo) FindByName(ctx context.Context, name string) (*model.OutreachCompany, error) {
	probe := model.OutreachCompany{Name: name}
	probe.Normalize()

	var company model.OutreachCompany
	err := r.MongoCollection.FindOne(ctx, bson.M{"name_lower": probe.NameLower}).Decode(&company)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *OutreachCompaniesRepo) UpdateCompany(ctx context.Context, id string, fields bson.M) error {
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

func (r *OutreachCompaniesRepo) DeleteCompany(ctx context.Context, id string) error {
	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *OutreachCompaniesRepo) Count(ctx context.Context) (int64, error) {
	return r.MongoCollection.CountDocuments(ctx, bson.M{"archived": bson.M{"$ne": true}})
}
