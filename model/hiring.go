package model

import "time"

type HiringInquiryStatus string

const (
	InquiryNew       HiringInquiryStatus = "new"
	InquiryReviewed  HiringInquiryStatus = "reviewed"
	InquiryContacted HiringInquiryStatus = "contacted"
	InquiryArchived  HiringInquiryStatus = "archived"
)

func ValidHiringInquiryStatus(s HiringInquiryStatus) bool {
	switch s {
	case InquiryNew, InquiryReviewed, InquiryContacted, InquiryArchived:
		return true
	}
	return false
}

type HiringInquiry struct {
	ID        string              `bson:"_id,omitempty" json:"id"`
	Company   string              `bson:"company,omitempty" json:"company,omitempty" binding:"max=200"`
	Email     string              `bson:"email" json:"email" binding:"required,email"`
	Role      string              `bson:"role,omitempty" json:"role,omitempty" binding:"max=200"`
	Message   string              `bson:"message" json:"message" binding:"required,max=5000"`
	IPAddress string              `bson:"ip_address,omitempty" json:"ip_address,omitempty"`
	UserAgent string              `bson:"user_agent,omitempty" json:"user_agent,omitempty"`
	Client    string              `bson:"client,omitempty" json:"client,omitempty"`
	Status    HiringInquiryStatus `bson:"status" json:"status"`
	CreatedAt time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time           `bson:"updated_at" json:"updated_at"`
}

type HiringInquiryStats struct {
	Total     int `json:"total"`
	New       int `json:"new"`
	Reviewed  int `json:"reviewed"`
	Contacted int `json:"contacted"`
	Archived  int `json:"archived"`
}
