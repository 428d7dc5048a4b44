package handler

import (
	"errors"
	"net/http"

	"github.com/databridge/dating-backend/internal/domain"
	"github.com/databridge/dating-backend/internal/usecase/report"
	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportUseCase *report.ReportUseCase
}

func NewReportHandler(reportUseCase *report.ReportUseCase) *ReportHandler {
	return &ReportHandler{
		reportUseCase: reportUseCase,
	}
}

// Create handles POST /reports
func (h *ReportHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		unauthorized(c)
		return
	}

	var req report.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	created, err := h.reportUseCase.Create(c.Request.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCannotReportSelf):
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "users cannot report themselves",
			})
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "user not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error: "failed to create report",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

// Get handles GET /reports/:report_id
func (h *ReportHandler) Get(c *gin.Context) {
	reportID, ok := pathInt(c, "report_id")
	if !ok {
		return
	}

	found, err := h.reportUseCase.Get(c.Request.Context(), reportID)
	if err != nil {
		if errors.Is(err, domain.ErrReportNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "report not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to get report",
		})
		return
	}

	c.JSON(http.StatusOK, found)
}
