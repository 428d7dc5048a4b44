package domain

// Interest is immutable reference data; rows are seeded by migrations and
// linked to users through the user_interests association table.
type Interest struct {
	ID       int     `json:"id" db:"interest_id"`
	Name     string  `json:"name" db:"name"`
	Category *string `json:"category" db:"category"`
}

// RankedCandidate is one row of the shared-interest ranking: a user id and
// how many of the caller's interests that user shares.
type RankedCandidate struct {
	UserID      int `db:"user_id"`
	SharedCount int `db:"shared_count"`
}
