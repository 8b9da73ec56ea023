package model

import "time"

type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "full-time"
	EmploymentPartTime   EmploymentType = "part-time"
	EmploymentContract   EmploymentType = "contract"
	EmploymentFreelance  EmploymentType = "freelance"
	EmploymentInternship EmploymentType = "internship"
)

// BaseExperience holds the fields shared by work and education entries.
// The two variants live in separate collections; Type discriminates
// them in merged listings.
type BaseExperience struct {
	ID           string        `bson:"_id,omitempty" json:"id"`
	Type         string        `bson:"type" json:"type"`
	Title        string        `bson:"title" json:"title" binding:"required"`
	Organization string        `bson:"organization" json:"organization" binding:"required"`
	Location     string        `bson:"location" json:"location" binding:"required"`
	StartDate    time.Time     `bson:"start_date" json:"startDate" binding:"required"`
	EndDate      *time.Time    `bson:"end_date,omitempty" json:"endDate,omitempty"`
	IsCurrent    bool          `bson:"is_current" json:"isCurrent"`
	Description  string        `bson:"description" json:"description" binding:"required,max=1000"`
	Order        int           `bson:"order" json:"order"`
	Featured     bool          `bson:"featured" json:"featured"`
	Status       ProjectStatus `bson:"status" json:"status"`
	CreatedAt    time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time     `bson:"updated_at" json:"updated_at"`
}

type WorkExperience struct {
	BaseExperience `bson:",inline"`

	JobTitle         string         `bson:"job_title,omitempty" json:"jobTitle,omitempty"`
	Level            string         `bson:"level,omitempty" json:"level,omitempty"`
	Position         string         `bson:"position,omitempty" json:"position,omitempty"` // legacy field
	Company          string         `bson:"company" json:"company" binding:"required"`
	EmploymentType   EmploymentType `bson:"employment_type" json:"employmentType" binding:"required,oneof=full-time part-time contract freelance internship"`
	Technologies     []string       `bson:"technologies,omitempty" json:"technologies,omitempty"`
	Achievements     []string       `bson:"achievements,omitempty" json:"achievements,omitempty"`
	Responsibilities []string       `bson:"responsibilities,omitempty" json:"responsibilities,omitempty"`
	Website          string         `bson:"website,omitempty" json:"website,omitempty"`
	CompanySize      string         `bson:"company_size,omitempty" json:"companySize,omitempty"`
}

type Thesis struct {
	Title       string `bson:"title,omitempty" json:"title,omitempty"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Supervisor  string `bson:"supervisor,omitempty" json:"supervisor,omitempty"`
}

type Education struct {
	BaseExperience `bson:",inline"`

	Degree       string   `bson:"degree" json:"degree" binding:"required"`
	Institution  string   `bson:"institution" json:"institution" binding:"required"`
	FieldOfStudy string   `bson:"field_of_study" json:"fieldOfStudy" binding:"required"`
	GPA          float64  `bson:"gpa,omitempty" json:"gpa,omitempty"`
	MaxGPA       float64  `bson:"max_gpa,omitempty" json:"maxGpa,omitempty"`
	Activities   []string `bson:"activities,omitempty" json:"activities,omitempty"`
	Honors       []string `bson:"honors,omitempty" json:"honors,omitempty"`
	Coursework   []string `bson:"coursework,omitempty" json:"coursework,omitempty"`
	Thesis       *Thesis  `bson:"thesis,omitempty" json:"thesis,omitempty"`
}
