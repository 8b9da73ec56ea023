package model

import "time"

type MessageStatus string

const (
	MessageUnread   MessageStatus = "unread"
	MessageRead     MessageStatus = "read"
	MessageReplied  MessageStatus = "replied"
	MessageArchived MessageStatus = "archived"
)

type MessageSubject string

const (
	SubjectJob     MessageSubject = "Job Opportunity"
	SubjectProject MessageSubject = "Project Collaboration"
	SubjectGeneral MessageSubject = "General Inquiry"
)

func ValidMessageSubject(s MessageSubject) bool {
	switch s {
	case SubjectJob, SubjectProject, SubjectGeneral:
		return true
	}
	return false
}

type Reply struct {
	Message string    `bson:"message" json:"message"`
	SentAt  time.Time `bson:"sent_at" json:"sent_at"`
	SentBy  string    `bson:"sent_by" json:"sent_by"` // "user" or "admin"
}

type Message struct {
	ID        string         `bson:"_id,omitempty" json:"id"`
	Name      string         `bson:"name" json:"name" binding:"required,max=100"`
	Email     string         `bson:"email" json:"email" binding:"required,email"`
	Subject   MessageSubject `bson:"subject" json:"subject" binding:"required"`
	Message   string         `bson:"message" json:"message" binding:"required,max=5000"`
	Status    MessageStatus  `bson:"status" json:"status"`
	IPAddress string         `bson:"ip_address,omitempty" json:"ip_address,omitempty"`
	UserAgent string         `bson:"user_agent,omitempty" json:"user_agent,omitempty"`
	Client    string         `bson:"client,omitempty" json:"client,omitempty"`
	ReadAt    *time.Time     `bson:"read_at,omitempty" json:"read_at,omitempty"`
	RepliedAt *time.Time     `bson:"replied_at,omitempty" json:"replied_at,omitempty"`
	Replies   []Reply        `bson:"replies,omitempty" json:"replies,omitempty"`
	CreatedAt time.Time      `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time      `bson:"updated_at" json:"updated_at"`
}

type MessageStats struct {
	Total    int `json:"total"`
	Unread   int `json:"unread"`
	Replied  int `json:"replied"`
	Archived int `json:"archived"`
}
