package dto

// UploadResponse is returned by PUT /post-image.
type UploadResponse struct {
	Message  string `json:"message"`
	FilePath string `json:"filePath,omitempty"`
}
