package report

import (
	"context"
	"fmt"
	"time"

	"github.com/databridge/dating-backend/internal/domain"
	"github.com/databridge/dating-backend/internal/logger"
	"github.com/databridge/dating-backend/internal/repository"
)

type ReportUseCase struct {
	reportRepo repository.ReportRepository
	userRepo   repository.UserRepository
}

func NewReportUseCase(reportRepo repository.ReportRepository, userRepo repository.UserRepository) *ReportUseCase {
	return &ReportUseCase{reportRepo: reportRepo, userRepo: userRepo}
}

// CreateRequest carries a user report against another user.
type CreateRequest struct {
	ReportedUserID int    `json:"reported_user_id" binding:"required"`
	Reason         string `json:"reason" binding:"required,min=10,max=1000"`
}

// Create files a report from reporterID against the reported user. The
// report starts in the pending state for moderation.
func (uc *ReportUseCase) Create(ctx context.Context, reporterID int, req *CreateRequest) (*domain.Report, error) {
	if reporterID == req.ReportedUserID {
		return nil, domain.ErrCannotReportSelf
	}

	exists, err := uc.userRepo.Exists(ctx, req.ReportedUserID)
	if err != nil {
		return nil, fmt.Errorf("check reported user: %w", err)
	}
	if !exists {
		return nil, domain.ErrUserNotFound
	}

	report := &domain.Report{
		ReporterID:     &reporterID,
		ReportedUserID: req.ReportedUserID,
		Reason:         req.Reason,
		Status:         domain.ReportPending,
		CreatedAt:      time.Now().UTC(),
	}
	if err := uc.reportRepo.Create(ctx, report); err != nil {
		return nil, fmt.Errorf("create report: %w", err)
	}

	logger.Info("report filed", "report_id", report.ID, "reported_user_id", report.ReportedUserID)
	return report, nil
}

// Get returns a report by id.
func (uc *ReportUseCase) Get(ctx context.Context, reportID int) (*domain.Report, error) {
	return uc.reportRepo.GetByID(ctx, reportID)
}
