package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/balitech/backend/internal/dtos"
	"github.com/balitech/backend/internal/middleware"
	"github.com/balitech/backend/internal/models"
	"github.com/balitech/backend/internal/services"
)

// JobStore is the slice of the job service the handler needs.
type JobStore interface {
	List(ctx context.Context, includeInactive bool) ([]models.Job, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Job, error)
	Create(ctx context.Context, req *dtos.JobRequest) (*models.Job, error)
	Update(ctx context.Context, id uuid.UUID, req *dtos.JobRequest) (*models.Job, error)
	ToggleActive(ctx context.Context, id uuid.UUID) (*models.Job, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type JobHandler struct {
	jobs JobStore
}

func NewJobHandler(jobs *services.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

// List is the public GET /api/jobs: active postings only, newest
// first. An authenticated admin may pass ?all=true to include
// inactive postings.
func (h *JobHandler) List(c *gin.Context) {
	includeInactive := false
	if c.Query("all") == "true" {
		if _, ok := middleware.AdminUsername(c); ok {
			includeInactive = true
		}
	}
	jobs, err := h.jobs.List(c.Request.Context(), includeInactive)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (h *JobHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "Job")
	if !ok {
		return
	}
	job, err := h.jobs.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) Create(c *gin.Context) {
	var req dtos.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	job, err := h.jobs.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "Job")
	if !ok {
		return
	}
	var req dtos.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	job, err := h.jobs.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// ToggleStatus flips the active flag. Each call flips again: two
// toggles restore the original value.
func (h *JobHandler) ToggleStatus(c *gin.Context) {
	id, ok := parseID(c, "Job")
	if !ok {
		return
	}
	job, err := h.jobs.ToggleActive(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "Job")
	if !ok {
		return
	}
	if err := h.jobs.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully"})
}
