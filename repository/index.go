package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func SetupIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexSets := map[string][]mongo.IndexModel{
		"projects": {
			{
				Keys:    bson.D{{Key: "status", Value: 1}, {Key: "order", Value: 1}},
				Options: options.Index().SetName("status_order"),
			},
			{
				Keys:    bson.D{{Key: "featured", Value: 1}, {Key: "order", Value: 1}},
				Options: options.Index().SetName("featured_order"),
			},
			{
				Keys:    bson.D{{Key: "category", Value: 1}},
				Options: options.Index().SetName("category_index"),
			},
		},
		"blogs": {
			{
				Keys:    bson.D{{Key: "slug", Value: 1}},
				Options: options.Index().SetName("slug_unique").SetUnique(true),
			},
			{
				Keys:    bson.D{{Key: "status", Value: 1}, {Key: "published_at", Value: -1}},
				Options: options.Index().SetName("status_published_date"),
			},
			{
				Keys:    bson.D{{Key: "category", Value: 1}},
				Options: options.Index().SetName("category_index"),
			},
			{
				Keys:    bson.D{{Key: "tags", Value: 1}},
				Options: options.Index().SetName("tags_index"),
			},
		},
		"blog_stats": {
			{
				Keys:    bson.D{{Key: "blog_id", Value: 1}},
				Options: options.Index().SetName("blog_id_unique").SetUnique(true),
			},
		},
		"comments": {
			{
				Keys:    bson.D{{Key: "blog_id", Value: 1}, {Key: "status", Value: 1}, {Key: "created_at", Value: -1}},
				Options: options.Index().SetName("blog_status_date"),
			},
		},
		"messages": {
			{
				Keys:    bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}},
				Options: options.Index().SetName("status_date"),
			},
		},
		"notifications": {
			{
				Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "is_read", Value: 1}, {Key: "created_at", Value: -1}},
				Options: options.Index().SetName("user_read_date"),
			},
			{
				Keys:    bson.D{{Key: "type", Value: 1}, {Key: "related_id", Value: 1}, {Key: "created_at", Value: -1}},
				Options: options.Index().SetName("type_related_date"),
			},
		},
		"skills": {
			{
				Keys:    bson.D{{Key: "category", Value: 1}, {Key: "order", Value: 1}},
				Options: options.Index().SetName("category_order"),
			},
		},
		"hiring_inquiries": {
			{
				Keys:    bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}},
				Options: options.Index().SetName("status_date"),
			},
		},
		"outreach_companies": {
			{
				Keys:    bson.D{{Key: "name_lower", Value: 1}, {Key: "country_lower", Value: 1}},
				Options: options.Index().SetName("name_country_unique").SetUnique(true),
			},
			{
				Keys:    bson.D{{Key: "tags", Value: 1}},
				Options: options.Index().SetName("tags_index"),
			},
		},
		"outreach_contacts": {
			{
				Keys:    bson.D{{Key: "email_lower", Value: 1}},
				Options: options.Index().SetName("email_unique").SetUnique(true),
			},
			{
				Keys:    bson.D{{Key: "company_id", Value: 1}, {Key: "status", Value: 1}},
				Options: options.Index().SetName("company_status"),
			},
		},
		"outreach_emails": {
			{
				Keys:    bson.D{{Key: "contact_id", Value: 1}, {Key: "sent_at", Value: -1}},
				Options: options.Index().SetName("contact_sent_date"),
			},
			{
				Keys:    bson.D{{Key: "status", Value: 1}, {Key: "follow_up_date", Value: 1}},
				Options: options.Index().SetName("status_follow_up"),
			},
		},
	}

	for collection, indexes := range indexSets {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, indexes); err != nil {
			return fmt.Errorf("failed to create %s indexes: %w", collection, err)
		}
	}

	log.Println("Successfully created all indexes")
	return nil
}
