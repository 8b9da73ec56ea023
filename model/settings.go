package model

import "time"

type SocialLink struct {
	Platform string `bson:"platform" json:"platform" binding:"required,oneof=website github linkedin twitter instagram youtube"`
	URL      string `bson:"url" json:"url" binding:"required,url"`
}

type ContactInfo struct {
	Email        string `bson:"email" json:"email" binding:"required,email"`
	Phone        string `bson:"phone" json:"phone" binding:"required"`
	Location     string `bson:"location" json:"location" binding:"required"`
	ResponseTime string `bson:"response_time" json:"responseTime"`
}

type WebsiteSettings struct {
	SiteTitle       string `bson:"site_title" json:"siteTitle"`
	MetaDescription string `bson:"meta_description" json:"metaDescription"`
	EnableDarkMode  bool   `bson:"enable_dark_mode" json:"enableDarkMode"`
}

type OutreachSettings struct {
	DefaultTone            string `bson:"default_tone" json:"defaultTone"`
	DefaultFollowUpGapDays int    `bson:"default_follow_up_gap_days" json:"defaultFollowUpGapDays"`
	MaxFollowUps           int    `bson:"max_follow_ups" json:"maxFollowUps"`
	SignatureSnippet       string `bson:"signature_snippet,omitempty" json:"signatureSnippet,omitempty"`
}

// FollowUpCap returns the configured follow-up limit, falling back to
// MaxFollowUpCount for settings documents that predate the field.
func (s OutreachSettings) FollowUpCap() int {
	if s.MaxFollowUps > 0 {
		return s.MaxFollowUps
	}
	return MaxFollowUpCount
}

// Settings is a singleton document: reads return the first document or
// a freshly created default, writes upsert it.
type Settings struct {
	ID               string           `bson:"_id,omitempty" json:"id"`
	UserID           string           `bson:"user_id" json:"userId"`
	ProfileImage     string           `bson:"profile_image,omitempty" json:"profileImage,omitempty"`
	FullName         string           `bson:"full_name" json:"fullName"`
	Bio              string           `bson:"bio" json:"bio"`
	ContactInfo      ContactInfo      `bson:"contact_info" json:"contactInfo"`
	SocialLinks      []SocialLink     `bson:"social_links,omitempty" json:"socialLinks,omitempty"`
	ResumeURL        string           `bson:"resume_url,omitempty" json:"resumeUrl,omitempty"`
	PortfolioURL     string           `bson:"portfolio_url,omitempty" json:"portfolioUrl,omitempty"`
	WebsiteSettings  WebsiteSettings  `bson:"website_settings" json:"websiteSettings"`
	OutreachSettings OutreachSettings `bson:"outreach_settings" json:"outreachSettings"`
	CreatedAt        time.Time        `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time        `bson:"updated_at" json:"updated_at"`
}

// DefaultSettings returns the document created on first read.
func DefaultSettings() *Settings {
	return &Settings{
		UserID:   DefaultUserID,
		FullName: "My Portfolio",
		ContactInfo: ContactInfo{
			ResponseTime: "Within 24 hours",
		},
		WebsiteSettings: WebsiteSettings{
			SiteTitle:       "My Portfolio",
			MetaDescription: "Welcome to my portfolio website",
		},
		OutreachSettings: OutreachSettings{
			DefaultTone:            "professional",
			DefaultFollowUpGapDays: 7,
			MaxFollowUps:           2,
		},
	}
}
