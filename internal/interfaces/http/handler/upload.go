package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/villa-upsell/backend/internal/application/uploads"
	"github.com/villa-upsell/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// UploadHandler serves the image upload gateway endpoints
type UploadHandler struct {
	BaseHandler
	service *uploads.Service
	logger  *zap.Logger
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(service *uploads.Service, logger *zap.Logger) *UploadHandler {
	return &UploadHandler{service: service, logger: logger}
}

// RegisterRoutes registers the upload routes
func (h *UploadHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/uploads")
	{
		group.POST("/image", h.UploadImage)
		group.POST("/image/delete", h.DeleteImage)
	}
}

// UploadImage accepts a multipart image and forwards it to the provider
func (h *UploadHandler) UploadImage(c *gin.Context) {
	if _, err := getUserID(c); err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		h.UnprocessableEntity(c, "An image file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("Failed to read uploaded file", zap.Error(err))
		h.InternalError(c, "Failed to upload image")
		return
	}
	defer file.Close()

	stored, err := h.service.UploadImage(
		c.Request.Context(),
		file,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
	)
	if err != nil {
		var domainErr *shared.DomainError
		if errors.As(err, &domainErr) {
			h.HandleDomainError(c, err)
			return
		}
		h.logger.Error("Image upload failed", zap.Error(err))
		h.InternalError(c, "Failed to upload image: "+err.Error())
		return
	}
	h.Success(c, stored)
}

type deleteImageRequest struct {
	PublicID string `json:"public_id" binding:"required"`
}

// DeleteImage removes a provider image by its public ID
func (h *UploadHandler) DeleteImage(c *gin.Context) {
	if _, err := getUserID(c); err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req deleteImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.UnprocessableEntity(c, "public_id is required")
		return
	}

	if err := h.service.DeleteImage(c.Request.Context(), req.PublicID); err != nil {
		var domainErr *shared.DomainError
		if errors.As(err, &domainErr) {
			h.HandleDomainError(c, err)
			return
		}
		h.logger.Error("Image deletion failed",
			zap.String("public_id", req.PublicID),
			zap.Error(err),
		)
		h.InternalError(c, "Failed to delete image: "+err.Error())
		return
	}
	h.Success(c, gin.H{"message": "Image deleted successfully"})
}
