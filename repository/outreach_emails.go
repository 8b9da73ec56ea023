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

type OutreachEmailsRepo struct {
	MongoCollection *mongo.Collection
}

func GetOutreachEmailsRepo(client *mongo.Client) *OutreachEmailsRepo {
	return &OutreachEmailsRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("outreach_emails"),
	}
}

type OutreachEmailFilter struct {
	ContactID string
	CompanyID string
	Status    model.OutreachEmailStatus
	Page      int
	Limit     int
}

func (r *OutreachEmailsRepo) CreateEmail(ctx context.Context, email *model.OutreachEmail) error {
	if email.ID == "" {
		email.ID = uuid.New().String()
	}
	if email.Status == "" {
		email.Status = model.EmailSent
	}
	if email.SentAt.IsZero() {
		email.SentAt = time.Now()
	}
	now := time.Now()
	email.CreatedAt = now
	email.UpdatedAt = now

	_, err := r.MongoCollection.InsertOne(ctx, email)
	return err
}

func (r *OutreachEmailsRepo) FindEmails(ctx context.Context, filter OutreachEmailFilter) ([]*model.OutreachEmail, int64, error) {
	query := bson.M{}
	if filter.ContactID != "" {
		query["contact_id"] = filter.ContactID
	}
	if filter.CompanyID != "" {
		query["company_id"] = filter.CompanyID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	opts := options.Find().SetSort(bson.D{{Key: "sent_at", Value: -1}})
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

	var emails []*model.OutreachEmail
	if err = cursor.All(ctx, &emails); err != nil {
		return nil, 0, err
	}

	total, err := r.MongoCollection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	return emails, total, nil
}

func (r *OutreachEmailsRepo) GetEmail(ctx context.Context, id string) (*model.OutreachEmail, error) {
	var email model.OutreachEmail
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&email)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &email, nil
}

func (r *OutreachEmailsRepo) UpdateEmail(ctx context.Context, id string, fields bson.M) error {
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

// MarkReplied closes the loop on a sent email: records when the reply
// arrived, its outcome and an optional note.
func (r *OutreachEmailsRepo) MarkReplied(ctx context.Context, id string, outcome model.OutreachOutcome, note string) (*model.OutreachEmail, error) {
	now := time.Now()
	set := bson.M{
		"status":            model.EmailReplied,
		"reply_received_at": now,
		"outcome":           outcome,
		"updated_at":        now,
	}
	if note != "" {
		set["reply_note"] = note
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var email model.OutreachEmail
	err := r.MongoCollection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&email)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &email, nil
}

func (r *OutreachEmailsRepo) CloseEmail(ctx context.Context, id string, status model.OutreachEmailStatus) (*model.OutreachEmail, error) {
	now := time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": bson.M{
		"status":     status,
		"closed_at":  now,
		"updated_at": now,
	}}

	var email model.OutreachEmail
	err := r.MongoCollection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&email)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &email, nil
}

// FindDueFollowUps returns sent emails whose follow-up date has arrived
// and whose follow-up count is still under the given cap.
func (r *OutreachEmailsRepo) FindDueFollowUps(ctx context.Context, asOf time.Time, maxFollowUps int) ([]*model.OutreachEmail, error) {
	cursor, err := r.MongoCollection.Find(ctx, bson.M{
		"status":          model.EmailSent,
		"follow_up_date":  bson.M{"$lte": asOf},
		"follow_up_count": bson.M{"$lt": maxFollowUps},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var emails []*model.OutreachEmail
	if err = cursor.All(ctx, &emails); err != nil {
		return nil, err
	}
	return emails, nil
}

// RecordFollowUp bumps the follow-up counter and pushes the next
// follow-up date forward by the given gap.
func (r *OutreachEmailsRepo) RecordFollowUp(ctx context.Context, id string, gapDays int) error {
	next := time.Now().AddDate(0, 0, gapDays)
	_, err := r.MongoCollection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$inc": bson.M{"follow_up_count": 1},
		"$set": bson.M{"follow_up_date": next, "updated_at": time.Now()},
	})
	return err
}

func (r *OutreachEmailsRepo) DeleteEmail(ctx context.Context, id string) error {
	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *OutreachEmailsRepo) DeleteForContact(ctx context.Context, contactID string) error {
	_, err := r.MongoCollection.DeleteMany(ctx, bson.M{"contact_id": contactID})
	return err
}

// GetOutreachStats assembles the pipeline summary. Counts are taken per
// status; reply rate is replied over total emails sent.
func (r *OutreachEmailsRepo) StatusCounts(ctx context.Context) (map[model.OutreachEmailStatus]int, error) {
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
		Status model.OutreachEmailStatus `bson:"_id"`
		Count  int                       `bson:"count"`
	}
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	counts := make(map[model.OutreachEmailStatus]int, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *OutreachEmailsRepo) CountDueFollowUps(ctx context.Context, asOf time.Time, maxFollowUps int) (int64, error) {
	return r.MongoCollection.CountDocuments(ctx, bson.M{
		"status":          model.EmailSent,
		"follow_up_date":  bson.M{"$lte": asOf},
		"follow_up_count": bson.M{"$lt": maxFollowUps},
	})
}
