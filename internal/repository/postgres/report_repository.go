package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/databridge/dating-backend/internal/domain"
	"github.com/databridge/dating-backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type reportRepository struct {
	db repository.Querier
}

func NewReportRepository(db *sqlx.DB) repository.ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(ctx context.Context, report *domain.Report) error {
	query := r.db.Rebind(`
		INSERT INTO reports (reporter_id, reported_user_id, reason, status, created_at)
		VALUES (?, ?, ?, ?, ?)
		RETURNING report_id
	`)
	err := r.db.QueryRowxContext(ctx, query,
		report.ReporterID, report.ReportedUserID, report.Reason, report.Status, report.CreatedAt,
	).Scan(&report.ID)
	if err != nil {
		return fmt.Errorf("insert report against user %d: %w", report.ReportedUserID, err)
	}
	return nil
}

func (r *reportRepository) GetByID(ctx context.Context, reportID int) (*domain.Report, error) {
	var report domain.Report
	query := r.db.Rebind(`
		SELECT report_id, reporter_id, reported_user_id, reason, status, moderator_notes, created_at, updated_at
		FROM reports
		WHERE report_id = ?
	`)
	if err := r.db.GetContext(ctx, &report, query, reportID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReportNotFound
		}
		return nil, fmt.Errorf("get report %d: %w", reportID, err)
	}
	return &report, nil
}

func (r *reportRepository) ListByReportedUser(ctx context.Context, userID int) ([]domain.Report, error) {
	var reports []domain.Report
	query := r.db.Rebind(`
		SELECT report_id, reporter_id, reported_user_id, reason, status, moderator_notes, created_at, updated_at
		FROM reports
		WHERE reported_user_id = ?
		ORDER BY created_at DESC, report_id DESC
	`)
	if err := r.db.SelectContext(ctx, &reports, query, userID); err != nil {
		return nil, fmt.Errorf("list reports for user %d: %w", userID, err)
	}
	return reports, nil
}
