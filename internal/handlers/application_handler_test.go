package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/balitech/backend/internal/common"
	"github.com/balitech/backend/internal/dtos"
	"github.com/balitech/backend/internal/models"
	"github.com/balitech/backend/internal/services"
)

type fakeApplicationStore struct {
	apps []*models.Application
}

func (f *fakeApplicationStore) find(id uuid.UUID) *models.Application {
	for _, app := range f.apps {
		if app.ID == id {
			return app
		}
	}
	return nil
}

func (f *fakeApplicationStore) List(ctx context.Context) ([]models.Application, error) {
	out := make([]models.Application, 0, len(f.apps))
	for _, app := range f.apps {
		out = append(out, *app)
	}
	return out, nil
}

func (f *fakeApplicationStore) ListByJob(ctx context.Context, jobID uuid.UUID) ([]models.Application, error) {
	out := make([]models.Application, 0)
	for _, app := range f.apps {
		if app.JobID != nil && *app.JobID == jobID {
			out = append(out, *app)
		}
	}
	return out, nil
}

func (f *fakeApplicationStore) Get(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	if app := f.find(id); app != nil {
		return app, nil
	}
	return nil, common.NewError(common.CodeNotFound, "Application not found", nil)
}

func (f *fakeApplicationStore) Create(ctx context.Context, req *dtos.ApplicationRequest) (*models.Application, error) {
	app := services.NewApplicationFromRequest(req)
	app.ID = uuid.New()
	app.CreatedAt = time.Now()
	app.UpdatedAt = app.CreatedAt
	f.apps = append(f.apps, app)
	return app, nil
}

func (f *fakeApplicationStore) SetStatus(ctx context.Context, id uuid.UUID, status string) (*models.Application, error) {
	if !models.IsValidApplicationStatus(status) {
		return nil, common.NewError(common.CodeValidation, "Invalid status", nil)
	}
	app := f.find(id)
	if app == nil {
		return nil, common.NewError(common.CodeNotFound, "Application not found", nil)
	}
	app.Status = status
	app.UpdatedAt = time.Now()
	return app, nil
}

func (f *fakeApplicationStore) SetNotes(ctx context.Context, id uuid.UUID, notes string) (*models.Application, error) {
	app := f.find(id)
	if app == nil {
		return nil, common.NewError(common.CodeNotFound, "Application not found", nil)
	}
	app.Notes = notes
	app.UpdatedAt = time.Now()
	return app, nil
}

func (f *fakeApplicationStore) Delete(ctx context.Context, id uuid.UUID) error {
	for i, app := range f.apps {
		if app.ID == id {
			f.apps = append(f.apps[:i], f.apps[i+1:]...)
			return nil
		}
	}
	return common.NewError(common.CodeNotFound, "Application not found", nil)
}

func newApplicationRouter(store *fakeApplicationStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &ApplicationHandler{applications: store}
	r := gin.New()
	r.GET("/api/applications", h.List)
	r.GET("/api/applications/:id", h.Get)
	r.GET("/api/applications/job/:jobId", h.ListByJob)
	r.POST("/api/applications", h.Create)
	r.PUT("/api/applications/:id/status", h.UpdateStatus)
	r.PUT("/api/applications/:id/notes", h.UpdateNotes)
	r.DELETE("/api/applications/:id", h.Delete)
	return r
}

func TestCreateApplicationForcesNewStatus(t *testing.T) {
	store := &fakeApplicationStore{}
	r := newApplicationRouter(store)

	// The payload tries to self-assign a workflow status.
	body := `{"name":"Jane","email":"Jane@Example.com","bpoExperience":"3 years","status":"accepted"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/applications", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	var app models.Application
	if err := json.Unmarshal(w.Body.Bytes(), &app); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if app.Status != models.ApplicationStatusNew {
		t.Errorf("Expected status %q, got %q", models.ApplicationStatusNew, app.Status)
	}
	if app.Email != "jane@example.com" {
		t.Errorf("Expected normalized email, got %q", app.Email)
	}
	if len(store.apps) != 1 || store.apps[0].Status != models.ApplicationStatusNew {
		t.Error("Expected the stored application to start at new")
	}
}

func TestCreateApplicationMissingRequiredFields(t *testing.T) {
	store := &fakeApplicationStore{}
	r := newApplicationRouter(store)

	body := `{"name":"Jane","email":"jane@example.com"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/applications", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 without bpoExperience, got %d", w.Code)
	}
	if len(store.apps) != 0 {
		t.Error("Expected nothing to be stored")
	}
}

func TestUpdateApplicationStatusOutsideEnum(t *testing.T) {
	id := uuid.New()
	store := &fakeApplicationStore{apps: []*models.Application{
		{ID: id, Name: "Jane", Status: models.ApplicationStatusNew},
	}}
	r := newApplicationRouter(store)

	body := `{"status":"archived"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/api/applications/"+id.String()+"/status", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
	if store.apps[0].Status != models.ApplicationStatusNew {
		t.Errorf("Expected store to be left unchanged, got %q", store.apps[0].Status)
	}
}

func TestUpdateApplicationStatus(t *testing.T) {
	id := uuid.New()
	store := &fakeApplicationStore{apps: []*models.Application{
		{ID: id, Name: "Jane", Status: models.ApplicationStatusNew},
	}}
	r := newApplicationRouter(store)

	body := `{"status":"interviewed"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/api/applications/"+id.String()+"/status", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if store.apps[0].Status != models.ApplicationStatusInterviewed {
		t.Errorf("Expected status interviewed, got %q", store.apps[0].Status)
	}
}

func TestUpdateApplicationNotes(t *testing.T) {
	id := uuid.New()
	store := &fakeApplicationStore{apps: []*models.Application{
		{ID: id, Name: "Jane", Status: models.ApplicationStatusNew},
	}}
	r := newApplicationRouter(store)

	body := `{"notes":"strong phone screen"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/api/applications/"+id.String()+"/notes", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if store.apps[0].Notes != "strong phone screen" {
		t.Errorf("Expected notes to be stored, got %q", store.apps[0].Notes)
	}
	if store.apps[0].Status != models.ApplicationStatusNew {
		t.Error("Expected notes update to leave status alone")
	}
}

func TestListApplicationsByJob(t *testing.T) {
	jobID := uuid.New()
	otherID := uuid.New()
	store := &fakeApplicationStore{apps: []*models.Application{
		{ID: uuid.New(), Name: "Jane", JobID: &jobID},
		{ID: uuid.New(), Name: "Budi", JobID: &otherID},
		{ID: uuid.New(), Name: "Ana"},
	}}
	r := newApplicationRouter(store)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/applications/job/"+jobID.String(), nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	var apps []models.Application
	if err := json.Unmarshal(w.Body.Bytes(), &apps); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(apps) != 1 || apps[0].Name != "Jane" {
		t.Errorf("Expected only Jane's application, got %v", apps)
	}

	// Unparseable job id matches nothing.
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/api/applications/job/not-a-uuid", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if err := json.Unmarshal(w.Body.Bytes(), &apps); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(apps) != 0 {
		t.Errorf("Expected empty result, got %v", apps)
	}
}

func TestGetApplication(t *testing.T) {
	id := uuid.New()
	store := &fakeApplicationStore{apps: []*models.Application{
		{ID: id, Name: "Jane", Status: models.ApplicationStatusNew},
	}}
	r := newApplicationRouter(store)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/applications/"+id.String(), nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	var app models.Application
	if err := json.Unmarshal(w.Body.Bytes(), &app); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if app.Name != "Jane" {
		t.Errorf("Expected Jane's application, got %q", app.Name)
	}

	// A plain id still routes past the static job segment.
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/api/applications/"+uuid.NewString(), nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404 for an unknown id, got %d", w.Code)
	}
}

func TestDeleteApplicationNotFound(t *testing.T) {
	r := newApplicationRouter(&fakeApplicationStore{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/api/applications/"+uuid.NewString(), nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}
