package model

import "time"

type ViewEvent struct {
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
	IP        string    `bson:"ip,omitempty" json:"ip,omitempty"`
	UserAgent string    `bson:"user_agent,omitempty" json:"user_agent,omitempty"`
	Referer   string    `bson:"referer,omitempty" json:"referer,omitempty"`
}

type LikeEvent struct {
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
	IP        string    `bson:"ip,omitempty" json:"ip,omitempty"`
}

type ShareEvent struct {
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
	Platform  string    `bson:"platform,omitempty" json:"platform,omitempty"`
}

type DailyStat struct {
	Date           time.Time `bson:"date" json:"date"`
	Views          int       `bson:"views" json:"views"`
	UniqueVisitors int       `bson:"unique_visitors" json:"unique_visitors"`
	Likes          int       `bson:"likes" json:"likes"`
	Shares         int       `bson:"shares" json:"shares"`
}

// BlogStats is the per-blog event log backing the denormalized counters
// on the Blog document.
type BlogStats struct {
	ID         string       `bson:"_id,omitempty" json:"id"`
	BlogID     string       `bson:"blog_id" json:"blog_id"`
	Views      []ViewEvent  `bson:"views,omitempty" json:"views,omitempty"`
	Likes      []LikeEvent  `bson:"likes,omitempty" json:"likes,omitempty"`
	Shares     []ShareEvent `bson:"shares,omitempty" json:"shares,omitempty"`
	DailyStats []DailyStat  `bson:"daily_stats,omitempty" json:"daily_stats,omitempty"`
	CreatedAt  time.Time    `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time    `bson:"updated_at" json:"updated_at"`
}

// HasLikeFrom reports whether the given IP already liked this blog.
func (s *BlogStats) HasLikeFrom(ip string) bool {
	for _, like := range s.Likes {
		if like.IP == ip {
			return true
		}
	}
	return false
}

// HasViewFrom reports whether the given IP already viewed this blog.
func (s *BlogStats) HasViewFrom(ip string) bool {
	for _, view := range s.Views {
		if view.IP == ip {
			return true
		}
	}
	return false
}
