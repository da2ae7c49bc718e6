package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emre/innohub/internal/app/models/dto"
	"github.com/emre/innohub/internal/app/services"
)

// UploadController handles admin image uploads
type UploadController struct {
	images services.ImageStore
}

// NewUploadController creates a new UploadController
func NewUploadController(images services.ImageStore) *UploadController {
	return &UploadController{
		images: images,
	}
}

// Upload stores a base64-encoded image and returns its URL
// @Summary Upload an image
// @Description Decodes a base64 payload (plain or data URL) and stores it under the uploads directory
// @Tags uploads
// @Accept json
// @Produce json
// @Param request body dto.UploadRequest true "Base64 image"
// @Success 201 {object} dto.APIResponse{data=dto.UploadResponse}
// @Failure 400 {object} dto.APIResponse "Invalid image data"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Router /upload [post]
func (c *UploadController) Upload(ctx *gin.Context) {
	var req dto.UploadRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Image data is required")))
		return
	}

	url, err := c.images.SaveBase64(req.Image)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid image data").WithDetails(err.Error())))
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.UploadResponse{URL: url}))
}
