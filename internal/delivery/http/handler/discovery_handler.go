package handler

import (
	"net/http"
	"strconv"

	"github.com/databridge/dating-backend/internal/usecase/discovery"
	"github.com/gin-gonic/gin"
)

type DiscoveryHandler struct {
	discoveryUseCase *discovery.DiscoveryUseCase
}

func NewDiscoveryHandler(discoveryUseCase *discovery.DiscoveryUseCase) *DiscoveryHandler {
	return &DiscoveryHandler{
		discoveryUseCase: discoveryUseCase,
	}
}

// PotentialByInterest handles GET /matches/potential_by_interest
// @Summary Interest-ranked candidates
// @Description List profiles sharing interests with the current user, most shared first
// @Tags matches
// @Produce json
// @Param limit query int false "Maximum results" default(20)
// @Success 200 {array} domain.Profile
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /matches/potential_by_interest [get]
func (h *DiscoveryHandler) PotentialByInterest(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		unauthorized(c)
		return
	}

	limit := discovery.DefaultLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > 100 {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "limit must be between 1 and 100",
			})
			return
		}
		limit = parsed
	}

	candidates, err := h.discoveryUseCase.FindCandidates(c.Request.Context(), userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to find candidates",
		})
		return
	}

	c.JSON(http.StatusOK, candidates)
}
