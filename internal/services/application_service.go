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

type ApplicationService struct {
	DB *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{DB: db}
}

func (s *ApplicationService) List(ctx context.Context) ([]models.Application, error) {
	var apps []models.Application
	err := s.DB.WithContext(ctx).Order("created_at DESC").Find(&apps).Error
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "Failed to list applications", err)
	}
	return apps, nil
}

// ListByJob filters on the weak jobId reference. The job itself may
// already be deleted; that does not affect the result.
func (s *ApplicationService) ListByJob(ctx context.Context, jobID uuid.UUID) ([]models.Application, error) {
	var apps []models.Application
	err := s.DB.WithContext(ctx).Where("job_id = ?", jobID).Order("created_at DESC").Find(&apps).Error
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "Failed to list applications", err)
	}
	return apps, nil
}

func (s *ApplicationService) Get(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	var app models.Application
	err := s.DB.WithContext(ctx).First(&app, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.NewError(common.CodeNotFound, "Application not found", err)
	}
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "Failed to load application", err)
	}
	return &app, nil
}

// NewApplicationFromRequest maps a public submission onto a fresh
// application. Status always starts at "new": applicants cannot
// self-assign workflow state, whatever the payload says. A jobId that
// does not parse is dropped rather than rejected (weak reference).
func NewApplicationFromRequest(req *dtos.ApplicationRequest) *models.Application {
	app := &models.Application{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		BPOExperience: req.BPOExperience,
		ResumeURL:     strings.TrimSpace(req.ResumeURL),
		CoverLetter:   req.CoverLetter,
		JobTitle:      strings.TrimSpace(req.JobTitle),
		Status:        models.ApplicationStatusNew,
	}
	if jobID, err := uuid.Parse(req.JobID); err == nil {
		app.JobID = &jobID
	}
	app.Normalize()
	return app
}

func (s *ApplicationService) Create(ctx context.Context, req *dtos.ApplicationRequest) (*models.Application, error) {
	app := NewApplicationFromRequest(req)
	if err := s.DB.WithContext(ctx).Create(app).Error; err != nil {
		return nil, common.NewError(common.CodeInternal, "Failed to create application", err)
	}
	return app, nil
}

// SetStatus checks enum membership before touching storage: an
// out-of-set value leaves the row unchanged.
func (s *ApplicationService) SetStatus(ctx context.Context, id uuid.UUID, status string) (*models.Application, error) {
	if !models.IsValidApplicationStatus(status) {
		return nil, common.NewError(common.CodeValidation, "Invalid status", nil)
	}
	app, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	app.Status = status
	if err := s.DB.WithContext(ctx).Save(app).Error; err != nil {
		return nil, common.NewError(common.CodeInternal, "Failed to update application", err)
	}
	return app, nil
}

func (s *ApplicationService) SetNotes(ctx context.Context, id uuid.UUID, notes string) (*models.Application, error) {
	app, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	app.Notes = notes
	if err := s.DB.WithContext(ctx).Save(app).Error; err != nil {
		return nil, common.NewError(common.CodeInternal, "Failed to update application", err)
	}
	return app, nil
}

func (s *ApplicationService) Delete(ctx context.Context, id uuid.UUID) error {
	result := s.DB.WithContext(ctx).Delete(&models.Application{}, "id = ?", id)
	if result.Error != nil {
		return common.NewError(common.CodeInternal, "Failed to delete application", result.Error)
	}
	if result.RowsAffected == 0 {
		return common.NewError(common.CodeNotFound, "Application not found", nil)
	}
	return nil
}
