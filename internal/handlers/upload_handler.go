package handlers

import (
	"context"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/balitech/backend/internal/storage"
)

// maxUploadSize caps resume documents at 5 MB.
const maxUploadSize = 5 << 20

// allowedUploadTypes maps the permitted extensions to the MIME type
// sent upstream. The client-declared Content-Type is ignored for
// these extensions.
var allowedUploadTypes = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

type Uploader interface {
	Upload(ctx context.Context, input storage.UploadInput) (*storage.UploadResult, error)
}

type UploadHandler struct {
	uploader Uploader
}

func NewUploadHandler(uploader *storage.CloudinaryStorage) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

// Upload relays a resume document to the storage provider and returns
// its public URL. Size and extension are rejected before any bytes go
// upstream; the provider call itself is a single attempt.
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No file uploaded"})
		return
	}
	if file.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"message": "File too large. Maximum size is 5MB."})
		return
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	mimeType, ok := allowedUploadTypes[ext]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid file type. Only PDF, DOC and DOCX are allowed."})
		return
	}

	src, err := file.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer src.Close()
	data, err := io.ReadAll(io.LimitReader(src, maxUploadSize+1))
	if err != nil {
		respondError(c, err)
		return
	}
	if len(data) > maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"message": "File too large. Maximum size is 5MB."})
		return
	}

	result, err := h.uploader.Upload(c.Request.Context(), storage.UploadInput{
		Filename: file.Filename,
		MIMEType: mimeType,
		Data:     data,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	log.Info().Str("filename", file.Filename).Str("publicId", result.PublicID).Msg("File uploaded")
	c.JSON(http.StatusOK, gin.H{
		"message":  "File uploaded successfully",
		"fileUrl":  result.FileURL,
		"publicId": result.PublicID,
	})
}
