package model

import "time"

type ProjectStatus string

const (
	StatusDraft     ProjectStatus = "draft"
	StatusPublished ProjectStatus = "published"
)

// ProjectCategories is the set of categories accepted on create/update.
var ProjectCategories = []string{
	"Web Development",
	"Mobile Development",
	"Desktop Development",
	"Machine Learning",
	"Data Science",
	"DevOps",
	"Blockchain",
	"Game Development",
	"IoT",
	"Other",
}

type Technology struct {
	Name string `bson:"name" json:"name" binding:"required"`
	Icon string `bson:"icon,omitempty" json:"icon,omitempty"`
}

type Repository struct {
	Name string `bson:"name" json:"name" binding:"required"`
	URL  string `bson:"url" json:"url" binding:"required,url"`
	Type string `bson:"type" json:"type" binding:"required,oneof=github gitlab bitbucket other"`
}

type DemoURL struct {
	Name string `bson:"name" json:"name" binding:"required"`
	URL  string `bson:"url" json:"url" binding:"required,url"`
	Type string `bson:"type" json:"type" binding:"required,oneof=live staging demo documentation"`
}

type Project struct {
	ID               string        `bson:"_id,omitempty" json:"id"`
	Title            string        `bson:"title" json:"title" binding:"required,max=100"`
	Description      string        `bson:"description" json:"description" binding:"required,max=5000"`
	ShortDescription string        `bson:"short_description" json:"shortDescription" binding:"required,max=150"`
	Category         string        `bson:"category" json:"category" binding:"required"`
	Technologies     []Technology  `bson:"technologies" json:"technologies" binding:"required,min=1,dive"`
	Repositories     []Repository  `bson:"repositories" json:"repositories" binding:"required,min=1,dive"`
	DemoURLs         []DemoURL     `bson:"demo_urls,omitempty" json:"demoUrls,omitempty" binding:"omitempty,dive"`
	Image            string        `bson:"image" json:"image" binding:"required,url"`
	ImagePublicID    string        `bson:"image_public_id" json:"imagePublicId" binding:"required"`
	CompletionDate   time.Time     `bson:"completion_date" json:"completionDate" binding:"required"`
	Featured         bool          `bson:"featured" json:"featured"`
	Status           ProjectStatus `bson:"status" json:"status"`
	Order            int           `bson:"order" json:"order"`
	CreatedAt        time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time     `bson:"updated_at" json:"updated_at"`
}

// ProjectStats is the aggregate shape returned by the projects stats endpoint.
type ProjectStats struct {
	Total      int            `json:"total"`
	Published  int            `json:"published"`
	Drafts     int            `json:"drafts"`
	Featured   int            `json:"featured"`
	ByCategory map[string]int `json:"by_category"`
}
