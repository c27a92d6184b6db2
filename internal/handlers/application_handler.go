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

type ApplicationStore interface {
	List(ctx context.Context) ([]models.Application, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]models.Application, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Application, error)
	Create(ctx context.Context, req *dtos.ApplicationRequest) (*models.Application, error)
	SetStatus(ctx context.Context, id uuid.UUID, status string) (*models.Application, error)
	SetNotes(ctx context.Context, id uuid.UUID, notes string) (*models.Application, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ApplicationHandler struct {
	applications ApplicationStore
}

func NewApplicationHandler(applications *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applications: applications}
}

func (h *ApplicationHandler) List(c *gin.Context) {
	apps, err := h.applications.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

// ListByJob returns the applications referencing one posting. An
// unparseable jobId matches nothing, so the result is just empty.
func (h *ApplicationHandler) ListByJob(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("jobId"))
	if err != nil {
		c.JSON(http.StatusOK, []models.Application{})
		return
	}
	apps, listErr := h.applications.ListByJob(c.Request.Context(), jobID)
	if listErr != nil {
		respondError(c, listErr)
		return
	}
	c.JSON(http.StatusOK, apps)
}

func (h *ApplicationHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "Application")
	if !ok {
		return
	}
	app, err := h.applications.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// Create is the public careers-form submission. Workflow status is
// not client-writable; every new application starts at "new".
func (h *ApplicationHandler) Create(c *gin.Context) {
	var req dtos.ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	app, err := h.applications.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c, "Application")
	if !ok {
		return
	}
	var req dtos.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	app, err := h.applications.SetStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

func (h *ApplicationHandler) UpdateNotes(c *gin.Context) {
	id, ok := parseID(c, "Application")
	if !ok {
		return
	}
	var req dtos.NotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	app, err := h.applications.SetNotes(c.Request.Context(), id, req.Notes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

func (h *ApplicationHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "Application")
	if !ok {
		return
	}
	if err := h.applications.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Application deleted successfully"})
}
