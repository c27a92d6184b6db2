package storage

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/balitech/backend/internal/common"
)

// UploadInput is an already-buffered file with its server-assigned
// MIME type. The client-declared type never reaches this layer.
type UploadInput struct {
	Filename string
	MIMEType string
	Data     []byte
}

type UploadResult struct {
	FileURL  string `json:"fileUrl"`
	PublicID string `json:"publicId"`
}

// CloudinaryStorage relays resume documents to Cloudinary and hands
// back the public URL. Single best-effort attempt, no retry.
type CloudinaryStorage struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinary(cloudName, apiKey, apiSecret, folder string) (*CloudinaryStorage, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	cld.Config.URL.Secure = true
	return &CloudinaryStorage{cld: cld, folder: folder}, nil
}

func (s *CloudinaryStorage) Upload(ctx context.Context, input UploadInput) (*UploadResult, error) {
	// Documents go up as a base64 data URI tagged "raw" so Cloudinary
	// skips its image-processing pipeline.
	dataURI := fmt.Sprintf("data:%s;base64,%s", input.MIMEType, base64.StdEncoding.EncodeToString(input.Data))

	params := uploader.UploadParams{
		Folder:       s.folder,
		ResourceType: "raw",
	}
	if input.MIMEType == "application/pdf" {
		params.Format = "pdf"
	}

	resp, err := s.cld.Upload.Upload(ctx, dataURI, params)
	if err != nil {
		return nil, common.NewError(common.CodeUpstream, "File upload to Cloudinary failed: "+err.Error(), err)
	}
	if resp.Error.Message != "" {
		return nil, common.NewError(common.CodeUpstream, "File upload to Cloudinary failed: "+resp.Error.Message, nil)
	}
	return &UploadResult{FileURL: AttachmentURL(resp.SecureURL), PublicID: resp.PublicID}, nil
}

// AttachmentURL inserts the fl_attachment delivery transformation into
// a Cloudinary URL so browsers download the document instead of
// rendering it inline. URLs without an upload segment pass through
// unchanged.
func AttachmentURL(url string) string {
	const marker = "/upload/"
	i := strings.Index(url, marker)
	if i < 0 {
		return url
	}
	return url[:i+len(marker)] + "fl_attachment/" + url[i+len(marker):]
}
