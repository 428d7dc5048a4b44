package domain

import "time"

// Report statuses.
const (
	ReportPending     = "pending"
	ReportReviewed    = "reviewed"
	ReportActionTaken = "action_taken"
	ReportDismissed   = "dismissed"
)

// Report is a user report against another user. ReporterID is nullable:
// deleting the reporting account keeps the report but nulls the reporter,
// while deleting the reported account cascades the report away.
type Report struct {
	ID             int        `json:"report_id" db:"report_id"`
	ReporterID     *int       `json:"reporter_id" db:"reporter_id"`
	ReportedUserID int        `json:"reported_user_id" db:"reported_user_id"`
	Reason         string     `json:"reason" db:"reason"`
	Status         string     `json:"status" db:"status"`
	ModeratorNotes *string    `json:"moderator_notes" db:"moderator_notes"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at" db:"updated_at"`
}
