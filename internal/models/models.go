package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Job employment types. Closed set: anything else is a validation error.
const (
	JobTypeFullTime   = "Full-time"
	JobTypePartTime   = "Part-time"
	JobTypeContract   = "Contract"
	JobTypeFreelance  = "Freelance"
	JobTypeInternship = "Internship"
)

// Application workflow statuses. Flat label set: any value is reachable
// from any other, only membership is checked.
const (
	ApplicationStatusNew         = "new"
	ApplicationStatusReviewing   = "reviewing"
	ApplicationStatusInterviewed = "interviewed"
	ApplicationStatusAccepted    = "accepted"
	ApplicationStatusRejected    = "rejected"
)

// Contact statuses, same membership-only rules.
const (
	ContactStatusNew     = "new"
	ContactStatusRead    = "read"
	ContactStatusReplied = "replied"
	ContactStatusSpam    = "spam"
)

var jobTypes = map[string]bool{
	JobTypeFullTime:   true,
	JobTypePartTime:   true,
	JobTypeContract:   true,
	JobTypeFreelance:  true,
	JobTypeInternship: true,
}

var applicationStatuses = map[string]bool{
	ApplicationStatusNew:         true,
	ApplicationStatusReviewing:   true,
	ApplicationStatusInterviewed: true,
	ApplicationStatusAccepted:    true,
	ApplicationStatusRejected:    true,
}

var contactStatuses = map[string]bool{
	ContactStatusNew:     true,
	ContactStatusRead:    true,
	ContactStatusReplied: true,
	ContactStatusSpam:    true,
}

func IsValidJobType(t string) bool { return jobTypes[t] }

func IsValidApplicationStatus(s string) bool { return applicationStatuses[s] }

func IsValidContactStatus(s string) bool { return contactStatuses[s] }

// Job is a public job posting managed by the admin back office.
type Job struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Title            string         `gorm:"not null" json:"title"`
	Type             string         `gorm:"not null" json:"type"`
	Location         string         `gorm:"not null" json:"location"`
	Description      string         `gorm:"type:text;not null" json:"description"`
	Requirements     pq.StringArray `gorm:"type:text[]" json:"requirements"`
	Responsibilities pq.StringArray `gorm:"type:text[]" json:"responsibilities"`
	IsActive         bool           `gorm:"default:true" json:"isActive"`
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}

// Application is a candidate submission from the public careers form.
// JobID is a weak reference: deleting a Job never cascades here, and
// JobTitle keeps the title snapshot even after the Job is gone.
type Application struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name          string     `gorm:"not null" json:"name"`
	Email         string     `gorm:"not null" json:"email"`
	Phone         string     `json:"phone"`
	BPOExperience string     `gorm:"type:text;not null" json:"bpoExperience"`
	ResumeURL     string     `json:"resumeUrl"`
	CoverLetter   string     `gorm:"type:text" json:"coverLetter"`
	JobID         *uuid.UUID `gorm:"type:uuid;index" json:"jobId"`
	JobTitle      string     `json:"jobTitle"`
	Status        string     `gorm:"default:'new'" json:"status"`
	Notes         string     `gorm:"type:text" json:"notes"`
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// Normalize canonicalizes applicant-supplied fields before persistence.
func (a *Application) Normalize() {
	a.Name = strings.TrimSpace(a.Name)
	a.Email = strings.ToLower(strings.TrimSpace(a.Email))
	a.Phone = strings.TrimSpace(a.Phone)
	a.BPOExperience = strings.TrimSpace(a.BPOExperience)
	a.CoverLetter = strings.TrimSpace(a.CoverLetter)
}

// Contact is a submission from the public contact form.
type Contact struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name    string `gorm:"not null" json:"name"`
	Email   string `gorm:"not null" json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `gorm:"type:text;not null" json:"message"`
	Status  string `gorm:"default:'new'" json:"status"`
}

func (c *Contact) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// Normalize canonicalizes contact-form fields before persistence.
func (c *Contact) Normalize() {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	c.Phone = strings.TrimSpace(c.Phone)
	c.Subject = strings.TrimSpace(c.Subject)
	c.Message = strings.TrimSpace(c.Message)
}
