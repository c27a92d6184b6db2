package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/balitech/backend/internal/dtos"
	"github.com/balitech/backend/internal/models"
	"github.com/balitech/backend/internal/services"
)

type ContactStore interface {
	List(ctx context.Context) ([]models.Contact, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Contact, error)
	Create(ctx context.Context, req *dtos.ContactRequest) (*models.Contact, error)
	SetStatus(ctx context.Context, id uuid.UUID, status string) (*models.Contact, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ContactHandler struct {
	contacts ContactStore
}

func NewContactHandler(contacts *services.ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

func (h *ContactHandler) List(c *gin.Context) {
	contacts, err := h.contacts.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contacts)
}

func (h *ContactHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "Contact")
	if !ok {
		return
	}
	contact, err := h.contacts.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contact)
}

// Create is the public contact-form submission; status starts at
// "new" no matter what the payload carries.
func (h *ContactHandler) Create(c *gin.Context) {
	var req dtos.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	contact, err := h.contacts.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, contact)
}

func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c, "Contact")
	if !ok {
		return
	}
	var req dtos.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	contact, err := h.contacts.SetStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contact)
}

func (h *ContactHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "Contact")
	if !ok {
		return
	}
	if err := h.contacts.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Contact submission deleted successfully"})
}
