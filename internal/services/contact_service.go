package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/balitech/backend/internal/common"
	"github.com/balitech/backend/internal/dtos"
	"github.com/balitech/backend/internal/models"
)

type ContactService struct {
	DB *gorm.DB
}

func NewContactService(db *gorm.DB) *ContactService {
	return &ContactService{DB: db}
}

func (s *ContactService) List(ctx context.Context) ([]models.Contact, error) {
	var contacts []models.Contact
	err := s.DB.WithContext(ctx).Order("created_at DESC").Find(&contacts).Error
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "Failed to list contacts", err)
	}
	return contacts, nil
}

func (s *ContactService) Get(ctx context.Context, id uuid.UUID) (*models.Contact, error) {
	var contact models.Contact
	err := s.DB.WithContext(ctx).First(&contact, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.NewError(common.CodeNotFound, "Contact not found", err)
	}
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "Failed to load contact", err)
	}
	return &contact, nil
}

// NewContactFromRequest maps a public contact-form submission onto a
// fresh record. Status is forced to "new" regardless of the payload.
func NewContactFromRequest(req *dtos.ContactRequest) *models.Contact {
	contact := &models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
		Status:  models.ContactStatusNew,
	}
	contact.Normalize()
	return contact
}

func (s *ContactService) Create(ctx context.Context, req *dtos.ContactRequest) (*models.Contact, error) {
	contact := NewContactFromRequest(req)
	if err := s.DB.WithContext(ctx).Create(contact).Error; err != nil {
		return nil, common.NewError(common.CodeInternal, "Failed to create contact", err)
	}
	return contact, nil
}

// SetStatus rejects values outside the contact enum before any write.
func (s *ContactService) SetStatus(ctx context.Context, id uuid.UUID, status string) (*models.Contact, error) {
	if !models.IsValidContactStatus(status) {
		return nil, common.NewError(common.CodeValidation, "Invalid status", nil)
	}
	contact, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	contact.Status = status
	if err := s.DB.WithContext(ctx).Save(contact).Error; err != nil {
		return nil, common.NewError(common.CodeInternal, "Failed to update contact", err)
	}
	return contact, nil
}

func (s *ContactService) Delete(ctx context.Context, id uuid.UUID) error {
	result := s.DB.WithContext(ctx).Delete(&models.Contact{}, "id = ?", id)
	if result.Error != nil {
		return common.NewError(common.CodeInternal, "Failed to delete contact", result.Error)
	}
	if result.RowsAffected == 0 {
		return common.NewError(common.CodeNotFound, "Contact not found", nil)
	}
	return nil
}
