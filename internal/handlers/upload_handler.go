package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"sangam/internal/config"
	"sangam/internal/models"
)

type UploadHandler struct {
	s3cfg   *config.S3Config
	presign *s3.PresignClient
	gate    *AdminGate
	v       *validator.Validate
}

func NewUploadHandler(s3cfg *config.S3Config, gate *AdminGate) *UploadHandler {
	return &UploadHandler{
		s3cfg:   s3cfg,
		presign: s3.NewPresignClient(s3cfg.Client),
		gate:    gate,
		v:       newValidator(),
	}
}

// @Tags Uploads
// @Summary Request a presigned upload URL
// @Description The client PUTs the file bytes to uploadURL directly; the
// @Description server never proxies them. objectPath is what gets stored
// @Description on the entity afterwards.
// @Accept json
// @Produce json
// @Param body body models.RequestUploadURLRequest true "File metadata"
// @Success 200 {object} models.UploadURLResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /api/uploads/request-url [post]
func (h *UploadHandler) RequestURL(w http.ResponseWriter, r *http.Request) {
	if _, err := h.gate.require(r.Context()); err != nil {
		h.gate.writeAuthError(w, err)
		return
	}

	var req models.RequestUploadURLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.v.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	// Object keys are random; the original filename survives only in the
	// returned metadata.
	key := "uploads/" + uuid.New().String() + strings.ToLower(path.Ext(req.Name))

	input := &s3.PutObjectInput{
		Bucket: aws.String(h.s3cfg.Bucket),
		Key:    aws.String(key),
	}
	if req.ContentType != "" {
		input.ContentType = aws.String(req.ContentType)
	}

	presigned, err := h.presign.PresignPutObject(r.Context(), input,
		func(opts *s3.PresignOptions) { opts.Expires = h.s3cfg.PresignTTL })
	if err != nil {
		log.Printf("presign upload: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to create upload URL")
		return
	}

	writeJSON(w, http.StatusOK, models.UploadURLResponse{
		UploadURL:  presigned.URL,
		ObjectPath: "/objects/" + key,
		Metadata: models.UploadMetadata{
			Name:        req.Name,
			Size:        req.Size,
			ContentType: req.ContentType,
		},
	})
}
