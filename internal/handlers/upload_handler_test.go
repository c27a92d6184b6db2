package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/balitech/backend/internal/storage"
)

type fakeUploader struct {
	calls  int
	lastIn storage.UploadInput
	result *storage.UploadResult
	err    error
}

func (f *fakeUploader) Upload(ctx context.Context, input storage.UploadInput) (*storage.UploadResult, error) {
	f.calls++
	f.lastIn = input
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func newUploadRouter(uploader *fakeUploader) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &UploadHandler{uploader: uploader}
	r := gin.New()
	r.POST("/api/upload", h.Upload)
	return r
}

func multipartBody(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("Failed to create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("Failed to write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Failed to close writer: %v", err)
	}
	return &buf, writer.FormDataContentType()
}

func TestUploadSuccess(t *testing.T) {
	uploader := &fakeUploader{result: &storage.UploadResult{
		FileURL:  "https://res.cloudinary.com/demo/raw/upload/resume.pdf",
		PublicID: "balitech-uploads/resume",
	}}
	r := newUploadRouter(uploader)

	body, contentType := multipartBody(t, "resume.pdf", []byte("%PDF-1.4 fake"))
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if resp["fileUrl"] == "" || resp["publicId"] == "" {
		t.Errorf("Expected fileUrl and publicId, got %v", resp)
	}
	if uploader.lastIn.MIMEType != "application/pdf" {
		t.Errorf("Expected server-assigned PDF MIME type, got %q", uploader.lastIn.MIMEType)
	}
}

func TestUploadRejectsOversizeBeforeProvider(t *testing.T) {
	uploader := &fakeUploader{}
	r := newUploadRouter(uploader)

	body, contentType := multipartBody(t, "resume.pdf", make([]byte, 6<<20))
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
	if uploader.calls != 0 {
		t.Error("Expected the provider to never see the oversize file")
	}
}

func TestUploadRejectsDisallowedExtension(t *testing.T) {
	uploader := &fakeUploader{}
	r := newUploadRouter(uploader)

	body, contentType := multipartBody(t, "resume.exe", []byte("MZ"))
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
	if uploader.calls != 0 {
		t.Error("Expected the provider to never be called")
	}
}

func TestUploadWithoutFile(t *testing.T) {
	uploader := &fakeUploader{}
	r := newUploadRouter(uploader)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/upload", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestUploadDocxMIMEMapping(t *testing.T) {
	uploader := &fakeUploader{result: &storage.UploadResult{FileURL: "u", PublicID: "p"}}
	r := newUploadRouter(uploader)

	body, contentType := multipartBody(t, "Resume.DOCX", []byte("PK"))
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	want := "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	if uploader.lastIn.MIMEType != want {
		t.Errorf("Expected %q, got %q", want, uploader.lastIn.MIMEType)
	}
}
