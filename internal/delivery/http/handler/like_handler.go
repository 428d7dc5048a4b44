package handler

import (
	"errors"
	"net/http"

	"github.com/databridge/dating-backend/internal/domain"
	"github.com/databridge/dating-backend/internal/usecase/like"
	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	likeUseCase *like.LikeUseCase
}

func NewLikeHandler(likeUseCase *like.LikeUseCase) *LikeHandler {
	return &LikeHandler{
		likeUseCase: likeUseCase,
	}
}

// LikeRequest represents a like action against another user
type LikeRequest struct {
	LikedUserID int `json:"liked_user_id" binding:"required"`
}

// RecordLike handles POST /likes
// @Summary Like a user
// @Description Record a like and report whether it completed a mutual match
// @Tags likes
// @Accept json
// @Produce json
// @Param request body LikeRequest true "User to like"
// @Success 200 {object} like.LikeResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /likes [post]
func (h *LikeHandler) RecordLike(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		unauthorized(c)
		return
	}

	var req LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	result, err := h.likeUseCase.RecordLike(c.Request.Context(), userID, req.LikedUserID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCannotLikeSelf):
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "users cannot like themselves",
			})
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "user not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error: "failed to record like",
			})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// LikesReceived handles GET /likes/received
// @Summary Likes received
// @Description List users who liked the current user, newest first
// @Tags likes
// @Produce json
// @Success 200 {array} like.ReceivedLike
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /likes/received [get]
func (h *LikeHandler) LikesReceived(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		unauthorized(c)
		return
	}

	received, err := h.likeUseCase.ListLikesReceived(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to list likes",
		})
		return
	}

	c.JSON(http.StatusOK, received)
}
