package handler

import (
	"errors"
	"net/http"

	"github.com/databridge/dating-backend/internal/domain"
	"github.com/databridge/dating-backend/internal/usecase/preference"
	"github.com/gin-gonic/gin"
)

type PreferenceHandler struct {
	preferenceUseCase *preference.PreferenceUseCase
}

func NewPreferenceHandler(preferenceUseCase *preference.PreferenceUseCase) *PreferenceHandler {
	return &PreferenceHandler{
		preferenceUseCase: preferenceUseCase,
	}
}

// UpsertMine handles PUT /preferences/me
func (h *PreferenceHandler) UpsertMine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		unauthorized(c)
		return
	}

	var req preference.UpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	pref, err := h.preferenceUseCase.Upsert(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "user not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to save preferences",
		})
		return
	}

	c.JSON(http.StatusOK, pref)
}

// GetMine handles GET /preferences/me
func (h *PreferenceHandler) GetMine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		unauthorized(c)
		return
	}

	pref, err := h.preferenceUseCase.Get(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrPreferenceNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "preferences not set",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to get preferences",
		})
		return
	}

	c.JSON(http.StatusOK, pref)
}
