package repository

import (
	"context"
	"os"
	"strings"
	"time"

	"main/model"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type OutreachContactsRepo struct {
	MongoCollection *mongo.Collection
}

func GetOutreachContactsRepo(client *mongo.Client) *OutreachContactsRepo {
	return &OutreachContactsRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("outreach_contacts"),
	}
}

type OutreachContactFilter struct {
	CompanyID string
	Status    model.OutreachContactStatus
	Search    string
	Starred   *bool
	Page      int
	Limit     int
}

func (r *OutreachContactsRepo) CreateContact(ctx context.Context, contact *model.OutreachContact) error {
	contact.Normalize()
	if contact.ID == "" {
		contact.ID = uuid.New().String()
	}
	if contact.Status == "" {
		contact.Status = model.ContactNew
	}
	now := time.Now()
	contact.CreatedAt = now
	contact.UpdatedAt = now

	_, err := r.MongoCollection.InsertOne(ctx, contact)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

func (r *OutreachContactsRepo) FindContacts(ctx context.Context, filter OutreachContactFilter) ([]*model.OutreachContact, int64, error) {
	query := bson.M{}
	if filter.CompanyID != "" {
		query["company_id"] = filter.CompanyID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Starred != nil {
		query["starred"] = *filter.Starred
	}
	if filter.Search != "" {
		query["$or"] = []bson.M{
			{"name": bson.M{"$regex": filter.Search, "$options": "i"}},
			{"email": bson.M{"$regex": filter.Search, "$options": "i"}},
			{"role_title": bson.M{"$regex": filter.Search, "$options": "i"}},
		}
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

	var contacts []*model.OutreachContact
	if err = cursor.All(ctx, &contacts); err != nil {
		return nil, 0, err
	}

	total, err := r.MongoCollection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	return contacts, total, nil
}

func (r *OutreachContactsRepo) GetContact(ctx context.Context, id string) (*model.OutreachContact, error) {
	var contact model.OutreachContact
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&contact)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &contact, nil
}

// FindByEmail resolves a contact by case-insensitive email.
func (r *OutreachContactsRepo) FindByEmail(ctx context.Context, email string) (*model.OutreachContact, error) {
	var contact model.OutreachContact
	err := r.MongoCollection.FindOne(ctx, bson.M{
		"email_lower": strings.ToLower(strings.TrimSpace(email)),
	}).Decode(&contact)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &contact, nil
}

func (r *OutreachContactsRepo) UpdateContact(ctx context.Context, id string, fields bson.M) error {
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

// MarkContacted moves the contact forward to contacted unless it has
// already progressed (replied or closed), and stamps the contact time.
func (r *OutreachContactsRepo) MarkContacted(ctx context.Context, id string, at time.Time) error {
	_, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"_id": id, "status": bson.M{"$in": []model.OutreachContactStatus{model.ContactNew, model.ContactContacted}}},
		bson.M{"$set": bson.M{
			"status":            model.ContactContacted,
			"last_contacted_at": at,
			"updated_at":        time.Now(),
		}})
	return err
}

func (r *OutreachContactsRepo) SetStatus(ctx context.Context, id string, status model.OutreachContactStatus) error {
	result, err := r.MongoCollection.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *OutreachContactsRepo) DeleteContact(ctx context.Context, id string) error {
	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *OutreachContactsRepo) DeleteForCompany(ctx context.Context, companyID string) error {
	_, err := r.MongoCollection.DeleteMany(ctx, bson.M{"company_id": companyID})
	return err
}

func (r *OutreachContactsRepo) Count(ctx context.Context) (int64, error) {
	return r.MongoCollection.CountDocuments(ctx, bson.M{})
}
