package handler

import (
	"errors"
	"net/http"

	"github.com/databridge/dating-backend/internal/domain"
	"github.com/databridge/dating-backend/internal/usecase/subscription"
	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	subscriptionUseCase *subscription.SubscriptionUseCase
}

func NewSubscriptionHandler(subscriptionUseCase *subscription.SubscriptionUseCase) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionUseCase: subscriptionUseCase,
	}
}

// Upgrade handles PUT /subscriptions/users/:user_id/upgrade
func (h *SubscriptionHandler) Upgrade(c *gin.Context) {
	userID, ok := pathInt(c, "user_id")
	if !ok {
		return
	}

	var req subscription.UpgradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	profile, err := h.subscriptionUseCase.Upgrade(c.Request.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "user not found",
			})
		case errors.Is(err, domain.ErrUnknownPlan):
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "unknown subscription plan",
			})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error: "failed to update subscription",
			})
		}
		return
	}

	c.JSON(http.StatusOK, profile)
}

// Current handles GET /subscriptions/users/:user_id
func (h *SubscriptionHandler) Current(c *gin.Context) {
	userID, ok := pathInt(c, "user_id")
	if !ok {
		return
	}

	current, err := h.subscriptionUseCase.Current(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrSubscriptionNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "no subscription found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to get subscription",
		})
		return
	}

	c.JSON(http.StatusOK, current)
}
