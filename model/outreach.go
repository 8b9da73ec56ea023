package model

import (
	"strings"
	"time"
)

type OutreachContactStatus string

const (
	ContactNew       OutreachContactStatus = "new"
	ContactContacted OutreachContactStatus = "contacted"
	ContactReplied   OutreachContactStatus = "replied"
	ContactClosed    OutreachContactStatus = "closed"
)

type OutreachEmailStatus string

const (
	EmailSent       OutreachEmailStatus = "sent"
	EmailReplied    OutreachEmailStatus = "replied"
	EmailNoResponse OutreachEmailStatus = "no_response"
	EmailClosed     OutreachEmailStatus = "closed"
)

type OutreachOutcome string

const (
	OutcomePositive  OutreachOutcome = "positive"
	OutcomeNeutral   OutreachOutcome = "neutral"
	OutcomeRejection OutreachOutcome = "rejection"
)

type OutreachTemplateType string

const (
	TemplateCold            OutreachTemplateType = "cold"
	TemplateFollowUp        OutreachTemplateType = "follow_up"
	TemplateReferral        OutreachTemplateType = "referral"
	TemplatePostApplication OutreachTemplateType = "post_application"
)

// OutreachCompany is unique on (name, country), compared case-insensitively
// via the lowercased shadow fields.
type OutreachCompany struct {
	ID            string    `bson:"_id,omitempty" json:"id"`
	Name          string    `bson:"name" json:"name" binding:"required,max=200"`
	NameLower     string    `bson:"name_lower" json:"-"`
	Country       string    `bson:"country" json:"country" binding:"required,max=100"`
	CountryLower  string    `bson:"country_lower" json:"-"`
	Website       string    `bson:"website,omitempty" json:"website,omitempty" binding:"omitempty,url"`
	CareerPageURL string    `bson:"career_page_url,omitempty" json:"careerPageUrl,omitempty" binding:"omitempty,url"`
	Tags          []string  `bson:"tags,omitempty" json:"tags,omitempty"`
	Notes         string    `bson:"notes,omitempty" json:"notes,omitempty" binding:"max=2000"`
	Starred       bool      `bson:"starred" json:"starred"`
	Archived      bool      `bson:"archived" json:"archived"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}

// Normalize fills the lowercased shadow fields and trims tags.
func (c *OutreachCompany) Normalize() {
	c.Name = strings.TrimSpace(c.Name)
	c.Country = strings.TrimSpace(c.Country)
	c.NameLower = strings.ToLower(c.Name)
	c.CountryLower = strings.ToLower(c.Country)

	tags := make([]string, 0, len(c.Tags))
	for _, t := range c.Tags {
		if trimmed := strings.TrimSpace(t); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	c.Tags = tags
}

// OutreachContact is unique on the lowercased email.
type OutreachContact struct {
	ID              string                `bson:"_id,omitempty" json:"id"`
	CompanyID       string                `bson:"company_id" json:"companyId" binding:"required"`
	Name            string                `bson:"name" json:"name" binding:"required,max=200"`
	Email           string                `bson:"email" json:"email" binding:"required,email,max=320"`
	EmailLower      string                `bson:"email_lower" json:"-"`
	RoleTitle       string                `bson:"role_title,omitempty" json:"roleTitle,omitempty" binding:"max=200"`
	LinkedinURL     string                `bson:"linkedin_url,omitempty" json:"linkedinUrl,omitempty" binding:"omitempty,url"`
	Status          OutreachContactStatus `bson:"status" json:"status"`
	LastContactedAt *time.Time            `bson:"last_contacted_at,omitempty" json:"lastContactedAt,omitempty"`
	Notes           string                `bson:"notes,omitempty" json:"notes,omitempty" binding:"max=4000"`
	Starred         bool                  `bson:"starred" json:"starred"`
	CreatedAt       time.Time             `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time             `bson:"updated_at" json:"updated_at"`
}

func (c *OutreachContact) Normalize() {
	c.Email = strings.TrimSpace(c.Email)
	c.EmailLower = strings.ToLower(c.Email)
}

// MaxFollowUpCount is the default cap on follow-up reminders per
// outreach email, used when settings carry no maxFollowUps value.
const MaxFollowUpCount = 2

type OutreachEmail struct {
	ID              string              `bson:"_id,omitempty" json:"id"`
	ContactID       string              `bson:"contact_id" json:"contactId" binding:"required"`
	CompanyID       string              `bson:"company_id" json:"companyId" binding:"required"`
	TemplateID      string              `bson:"template_id,omitempty" json:"templateId,omitempty"`
	Subject         string              `bson:"subject" json:"subject" binding:"required,max=300"`
	Body            string              `bson:"body" json:"body" binding:"required,max=12000"`
	Status          OutreachEmailStatus `bson:"status" json:"status"`
	SentAt          time.Time           `bson:"sent_at" json:"sentAt"`
	FollowUpDate    *time.Time          `bson:"follow_up_date,omitempty" json:"followUpDate,omitempty"`
	FollowUpCount   int                 `bson:"follow_up_count" json:"followUpCount"`
	ReplyReceivedAt *time.Time          `bson:"reply_received_at,omitempty" json:"replyReceivedAt,omitempty"`
	Outcome         OutreachOutcome     `bson:"outcome,omitempty" json:"outcome,omitempty"`
	ReplyNote       string              `bson:"reply_note,omitempty" json:"replyNote,omitempty" binding:"max=2000"`
	ClosedAt        *time.Time          `bson:"closed_at,omitempty" json:"closedAt,omitempty"`
	CreatedAt       time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time           `bson:"updated_at" json:"updated_at"`
}

type OutreachTemplate struct {
	ID              string               `bson:"_id,omitempty" json:"id"`
	Name            string               `bson:"name" json:"name" binding:"required,max=200"`
	Type            OutreachTemplateType `bson:"type" json:"type" binding:"required,oneof=cold follow_up referral post_application"`
	Tone            string               `bson:"tone" json:"tone" binding:"required,oneof=professional friendly"`
	SubjectTemplate string               `bson:"subject_template" json:"subjectTemplate" binding:"required,max=300"`
	BodyTemplate    string               `bson:"body_template" json:"bodyTemplate" binding:"required,max=8000"`
	Variables       []string             `bson:"variables,omitempty" json:"variables,omitempty"`
	CreatedAt       time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time            `bson:"updated_at" json:"updated_at"`
}

type OutreachDraft struct {
	ID                    string     `bson:"_id,omitempty" json:"id"`
	ContactID             string     `bson:"contact_id" json:"contactId"`
	CompanyID             string     `bson:"company_id" json:"companyId"`
	Intent                string     `bson:"intent" json:"intent"` // cold, post_application, follow_up
	Tone                  string     `bson:"tone" json:"tone"`
	JobTitle              string     `bson:"job_title,omitempty" json:"jobTitle,omitempty"`
	JobDescription        string     `bson:"job_description,omitempty" json:"jobDescription,omitempty"`
	SelectedProjectIDs    []string   `bson:"selected_project_ids,omitempty" json:"selectedProjectIds,omitempty"`
	SelectedSkillIDs      []string   `bson:"selected_skill_ids,omitempty" json:"selectedSkillIds,omitempty"`
	SelectedExperienceIDs []string   `bson:"selected_experience_ids,omitempty" json:"selectedExperienceIds,omitempty"`
	Subject               string     `bson:"subject" json:"subject"`
	Body                  string     `bson:"body" json:"body"`
	ModelUsed             string     `bson:"model_used,omitempty" json:"modelUsed,omitempty"`
	CreatedAt             time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt             time.Time  `bson:"updated_at" json:"updated_at"`
}

// OutreachStats summarizes pipeline state for the outreach dashboard.
type OutreachStats struct {
	Companies     int     `json:"companies"`
	Contacts      int     `json:"contacts"`
	EmailsSent    int     `json:"emails_sent"`
	Replied       int     `json:"replied"`
	NoResponse    int     `json:"no_response"`
	Closed        int     `json:"closed"`
	ReplyRate     float64 `json:"reply_rate"`
	FollowUpsDue  int     `json:"follow_ups_due"`
}
