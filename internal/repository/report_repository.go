package repository

import (
	"context"

	"github.com/databridge/dating-backend/internal/domain"
)

type ReportRepository interface {
	Create(ctx context.Context, report *domain.Report) error
	GetByID(ctx context.Context, id int) (*domain.Report, error)
	ListByReportedUser(ctx context.Context, reportedUserID int) ([]domain.Report, error)
}
