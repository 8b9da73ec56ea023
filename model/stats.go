package model

import "time"

type StatValue struct {
	Value       int    `bson:"value" json:"value"`
	Description string `bson:"description" json:"description"`
}

type CustomStat struct {
	Title       string `bson:"title" json:"title"`
	Value       int    `bson:"value" json:"value"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Icon        string `bson:"icon,omitempty" json:"icon,omitempty"`
}

// Stats is the singleton homepage counters document. Creating a second
// one is rejected by the repository.
type Stats struct {
	ID                   string       `bson:"_id,omitempty" json:"id"`
	ProgrammingLanguages StatValue    `bson:"programming_languages" json:"programmingLanguages"`
	StudentsCount        StatValue    `bson:"students_count" json:"studentsCount"`
	WorkExperience       StatValue    `bson:"work_experience" json:"workExperience"`
	CustomStats          []CustomStat `bson:"custom_stats,omitempty" json:"customStats,omitempty"`
	Tagline              string       `bson:"tagline" json:"tagline"`
	CreatedAt            time.Time    `bson:"created_at" json:"created_at"`
	UpdatedAt            time.Time    `bson:"updated_at" json:"updated_at"`
}

func DefaultStats() *Stats {
	return &Stats{
		ProgrammingLanguages: StatValue{Description: "Languages mastered in programming"},
		StudentsCount:        StatValue{Description: "Students mentored and guided"},
		WorkExperience:       StatValue{Description: "Years of professional experience"},
		Tagline:              "Passionate about creating impactful solutions and sharing knowledge",
	}
}

// DashboardStats is the aggregate returned by the dashboard stats
// endpoint, assembled from parallel collection counts.
type DashboardStats struct {
	Projects      ProjectStats   `json:"projects"`
	Blogs         int            `json:"blogs"`
	PublishedBlogs int           `json:"published_blogs"`
	Skills        int            `json:"skills"`
	Messages      MessageStats   `json:"messages"`
	UnreadNotifications int      `json:"unread_notifications"`
	Recent        []Notification `json:"recent_notifications"`
}
