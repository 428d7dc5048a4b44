package handler

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/databridge/dating-backend/internal/domain"
	"github.com/databridge/dating-backend/internal/logger"
	"github.com/databridge/dating-backend/internal/usecase/photo"
	"github.com/gin-gonic/gin"
)

type PhotoHandler struct {
	photoUseCase *photo.PhotoUseCase
}

func NewPhotoHandler(photoUseCase *photo.PhotoUseCase) *PhotoHandler {
	return &PhotoHandler{
		photoUseCase: photoUseCase,
	}
}

// Upload handles POST /photos/users/:user_id (multipart/form-data).
// Form fields: "files" (one or more images), optional "primary_photo_index"
// selecting which new upload becomes primary.
func (h *PhotoHandler) Upload(c *gin.Context) {
	userID, ok := pathInt(c, "user_id")
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid multipart form",
		})
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "no files were uploaded",
		})
		return
	}

	var primaryIndex *int
	if raw := c.PostForm("primary_photo_index"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "invalid primary_photo_index",
			})
			return
		}
		primaryIndex = &parsed
	}

	uploads := make([]photo.Upload, 0, len(files))
	opened := make([]multipart.File, 0, len(files))
	defer func() {
		for _, f := range opened {
			if err := f.Close(); err != nil {
				logger.Warn("failed to close uploaded file", "error", err)
			}
		}
	}()
	for _, fh := range files {
		src, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error: "could not read uploaded file",
			})
			return
		}
		opened = append(opened, src)
		uploads = append(uploads, photo.Upload{Filename: fh.Filename, Data: src})
	}

	created, err := h.photoUseCase.UploadPhotos(c.Request.Context(), userID, uploads, primaryIndex)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "user not found",
			})
		case errors.Is(err, domain.ErrTooManyPhotos):
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "photo limit exceeded",
			})
		case errors.Is(err, domain.ErrNoValidFiles):
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "no valid image files uploaded",
			})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error: "failed to upload photos",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

// List handles GET /photos/users/:user_id
func (h *PhotoHandler) List(c *gin.Context) {
	userID, ok := pathInt(c, "user_id")
	if !ok {
		return
	}

	photos, err := h.photoUseCase.ListPhotos(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "user not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to list photos",
		})
		return
	}

	c.JSON(http.StatusOK, photos)
}

// Delete handles DELETE /photos/:photo_id
func (h *PhotoHandler) Delete(c *gin.Context) {
	photoID, ok := pathInt(c, "photo_id")
	if !ok {
		return
	}

	if err := h.photoUseCase.DeletePhoto(c.Request.Context(), photoID); err != nil {
		if errors.Is(err, domain.ErrPhotoNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "photo not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to delete photo",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// SetPrimary handles PUT /photos/:photo_id/set_primary
func (h *PhotoHandler) SetPrimary(c *gin.Context) {
	photoID, ok := pathInt(c, "photo_id")
	if !ok {
		return
	}

	updated, err := h.photoUseCase.SetPrimary(c.Request.Context(), photoID)
	if err != nil {
		if errors.Is(err, domain.ErrPhotoNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "photo not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to set primary photo",
		})
		return
	}

	c.JSON(http.StatusOK, updated)
}
