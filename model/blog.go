package model

import "time"

type DailyCount struct {
	Date  time.Time `bson:"date" json:"date"`
	Count int       `bson:"count" json:"count"`
}

type BlogViewCounters struct {
	Total   int          `bson:"total" json:"total"`
	Unique  int          `bson:"unique" json:"unique"`
	History []DailyCount `bson:"history,omitempty" json:"history,omitempty"`
}

type BlogLikeCounters struct {
	Total   int          `bson:"total" json:"total"`
	Users   []string     `bson:"users,omitempty" json:"users,omitempty"`
	History []DailyCount `bson:"history,omitempty" json:"history,omitempty"`
}

type BlogCommentCounters struct {
	Total    int `bson:"total" json:"total"`
	Approved int `bson:"approved" json:"approved"`
	Pending  int `bson:"pending" json:"pending"`
	Spam     int `bson:"spam" json:"spam"`
}

type SharePlatforms struct {
	Facebook int `bson:"facebook" json:"facebook"`
	Twitter  int `bson:"twitter" json:"twitter"`
	LinkedIn int `bson:"linkedin" json:"linkedin"`
}

type BlogShareCounters struct {
	Total     int            `bson:"total" json:"total"`
	Platforms SharePlatforms `bson:"platforms" json:"platforms"`
}

// BlogCounters are the denormalized counters stored on the blog document
// itself. The per-event log lives in the companion BlogStats document and
// the two are updated independently, so they can diverge if a write fails
// between them.
type BlogCounters struct {
	Views    BlogViewCounters    `bson:"views" json:"views"`
	Likes    BlogLikeCounters    `bson:"likes" json:"likes"`
	Comments BlogCommentCounters `bson:"comments" json:"comments"`
	Shares   BlogShareCounters   `bson:"shares" json:"shares"`
}

type BlogAuthor struct {
	Name   string `bson:"name" json:"name" binding:"required"`
	Bio    string `bson:"bio,omitempty" json:"bio,omitempty"`
	Avatar string `bson:"avatar,omitempty" json:"avatar,omitempty"`
}

type Blog struct {
	ID              string        `bson:"_id,omitempty" json:"id"`
	Title           string        `bson:"title" json:"title" binding:"required"`
	Slug            string        `bson:"slug,omitempty" json:"slug"`
	Excerpt         string        `bson:"excerpt" json:"excerpt" binding:"required,max=300"`
	Content         string        `bson:"content" json:"content" binding:"required"`
	Category        string        `bson:"category" json:"category" binding:"required"`
	Tags            []string      `bson:"tags,omitempty" json:"tags,omitempty"`
	CoverImage      string        `bson:"cover_image,omitempty" json:"coverImage,omitempty"`
	CoverImageID    string        `bson:"cover_image_id,omitempty" json:"coverImageId,omitempty"`
	Author          BlogAuthor    `bson:"author" json:"author"`
	ReadTime        int           `bson:"read_time,omitempty" json:"readTime,omitempty"`
	Featured        bool          `bson:"featured" json:"featured"`
	Status          ProjectStatus `bson:"status" json:"status"`
	PublishedAt     *time.Time    `bson:"published_at,omitempty" json:"publishedAt,omitempty"`
	Stats           BlogCounters  `bson:"stats" json:"stats"`
	MetaTitle       string        `bson:"meta_title,omitempty" json:"metaTitle,omitempty"`
	MetaDescription string        `bson:"meta_description,omitempty" json:"metaDescription,omitempty"`
	CanonicalURL    string        `bson:"canonical_url,omitempty" json:"canonicalUrl,omitempty"`
	NoIndex         bool          `bson:"no_index" json:"noIndex"`
	CreatedAt       time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time     `bson:"updated_at" json:"updated_at"`
}
