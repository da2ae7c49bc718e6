package dto

// LoginRequest is the admin login form
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// UploadRequest carries a base64-encoded image, optionally as a data URL
type UploadRequest struct {
	Image string `json:"image" binding:"required"`
}

// UploadResponse returns the stored image location
type UploadResponse struct {
	URL string `json:"url"`
}
