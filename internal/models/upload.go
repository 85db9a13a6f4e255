package models

type RequestUploadURLRequest struct {
	Name        string `json:"name" validate:"required,min=1"`
	Size        *int64 `json:"size,omitempty" validate:"omitempty,min=0"`
	ContentType string `json:"contentType,omitempty"`
}

type UploadMetadata struct {
	Name        string `json:"name"`
	Size        *int64 `json:"size,omitempty"`
	ContentType string `json:"contentType,omitempty"`
}

type UploadURLResponse struct {
	UploadURL  string         `json:"uploadURL"`
	ObjectPath string         `json:"objectPath"`
	Metadata   UploadMetadata `json:"metadata"`
}
