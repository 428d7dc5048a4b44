package handler

import (
	"errors"
	"net/http"

	"github.com/databridge/dating-backend/internal/domain"
	"github.com/databridge/dating-backend/internal/usecase/interest"
	"github.com/gin-gonic/gin"
)

type InterestHandler struct {
	interestUseCase *interest.InterestUseCase
}

func NewInterestHandler(interestUseCase *interest.InterestUseCase) *InterestHandler {
	return &InterestHandler{
		interestUseCase: interestUseCase,
	}
}

// ReplaceInterestsRequest carries the full new interest set by name.
type ReplaceInterestsRequest struct {
	Interests []string `json:"interests" binding:"required"`
}

// Available handles GET /interests/available
func (h *InterestHandler) Available(c *gin.Context) {
	interests, err := h.interestUseCase.Available(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to list interests",
		})
		return
	}

	c.JSON(http.StatusOK, interests)
}

// ReplaceUserInterests handles PUT /interests/users/:user_id
func (h *InterestHandler) ReplaceUserInterests(c *gin.Context) {
	userID, ok := pathInt(c, "user_id")
	if !ok {
		return
	}

	var req ReplaceInterestsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	interests, err := h.interestUseCase.ReplaceUserInterests(c.Request.Context(), userID, req.Interests)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "user not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to update interests",
		})
		return
	}

	c.JSON(http.StatusOK, interests)
}

// GetUserInterests handles GET /interests/users/:user_id
func (h *InterestHandler) GetUserInterests(c *gin.Context) {
	userID, ok := pathInt(c, "user_id")
	if !ok {
		return
	}

	interests, err := h.interestUseCase.ListUserInterests(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "user not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to list interests",
		})
		return
	}

	c.JSON(http.StatusOK, interests)
}
