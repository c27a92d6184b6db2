package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/balitech/backend/internal/common"
	"github.com/balitech/backend/internal/dtos"
	"github.com/balitech/backend/internal/models"
)

// JobService is the persistence layer for job postings. Every
// operation is a single-row read or write; concurrent admin edits
// race at last-write-wins granularity.
type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{DB: db}
}

// List returns jobs newest-created first. The public listing filters
// to active postings; the admin listing sees everything.
func (s *JobService) List(ctx context.Context, includeInactive bool) ([]models.Job, error) {
	var jobs []models.Job
	query := s.DB.WithContext(ctx).Order("created_at DESC")
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&jobs).Error; err != nil {
		return nil, common.NewError(common.CodeInternal, "Failed to list jobs", err)
	}
	return jobs, nil
}

func (s *JobService) Get(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	var job models.Job
	err := s.DB.WithContext(ctx).First(&job, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.NewError(common.CodeNotFound, "Job not found", err)
	}
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "Failed to load job", err)
	}
	return &job, nil
}

// NewJobFromRequest maps the write payload onto a fresh posting.
// The active flag defaults to true when omitted; the list fields
// default to empty, never null.
func NewJobFromRequest(req *dtos.JobRequest) *models.Job {
	job := &models.Job{
		Title:            strings.TrimSpace(req.Title),
		Type:             req.Type,
		Location:         strings.TrimSpace(req.Location),
		Description:      req.Description,
		Requirements:     req.Requirements,
		Responsibilities: req.Responsibilities,
		IsActive:         true,
	}
	if req.IsActive != nil {
		job.IsActive = *req.IsActive
	}
	if job.Requirements == nil {
		job.Requirements = []string{}
	}
	if job.Responsibilities == nil {
		job.Responsibilities = []string{}
	}
	return job
}

func (s *JobService) Create(ctx context.Context, req *dtos.JobRequest) (*models.Job, error) {
	if !models.IsValidJobType(req.Type) {
		return nil, common.NewError(common.CodeValidation, "Invalid job type", nil)
	}
	job := NewJobFromRequest(req)
	if err := s.DB.WithContext(ctx).Create(job).Error; err != nil {
		return nil, common.NewError(common.CodeInternal, "Failed to create job", err)
	}
	return job, nil
}

// Update replaces the writable fields of an existing posting and
// refreshes updatedAt. An omitted isActive keeps the current flag.
func (s *JobService) Update(ctx context.Context, id uuid.UUID, req *dtos.JobRequest) (*models.Job, error) {
	if !models.IsValidJobType(req.Type) {
		return nil, common.NewError(common.CodeValidation, "Invalid job type", nil)
	}
	job, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	job.Title = strings.TrimSpace(req.Title)
	job.Type = req.Type
	job.Location = strings.TrimSpace(req.Location)
	job.Description = req.Description
	job.Requirements = req.Requirements
	job.Responsibilities = req.Responsibilities
	if req.IsActive != nil {
		job.IsActive = *req.IsActive
	}
	if job.Requirements == nil {
		job.Requirements = []string{}
	}
	if job.Responsibilities == nil {
		job.Responsibilities = []string{}
	}
	if err := s.DB.WithContext(ctx).Save(job).Error; err != nil {
		return nil, common.NewError(common.CodeInternal, "Failed to update job", err)
	}
	return job, nil
}

// ToggleActive always flips the current flag; there is no target
// value, so replaying the call flips again.
func (s *JobService) ToggleActive(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	job, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	job.IsActive = !job.IsActive
	if err := s.DB.WithContext(ctx).Save(job).Error; err != nil {
		return nil, common.NewError(common.CodeInternal, "Failed to update job", err)
	}
	return job, nil
}

// Delete removes the posting permanently. Applications referencing it
// keep their jobTitle snapshot; nothing cascades.
func (s *JobService) Delete(ctx context.Context, id uuid.UUID) error {
	result := s.DB.WithContext(ctx).Delete(&models.Job{}, "id = ?", id)
	if result.Error != nil {
		return common.NewError(common.CodeInternal, "Failed to delete job", result.Error)
	}
	if result.RowsAffected == 0 {
		return common.NewError(common.CodeNotFound, "Job not found", nil)
	}
	return nil
}
