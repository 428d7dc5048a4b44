package domain

import (
	"time"

	"github.com/lib/pq"
)

// Match is the materialized mutual like between an unordered pair of users.
// The pair is stored normalized (User1ID < User2ID) and a uniqueness
// constraint on the normalized pair guarantees at most one row per pair.
type Match struct {
	ID          int            `json:"id" db:"match_id"`
	User1ID     int            `json:"user_1_id" db:"user_1_id"`
	User2ID     int            `json:"user_2_id" db:"user_2_id"`
	MatchedAt   time.Time      `json:"matched_at" db:"matched_at"`
	Explanation *string        `json:"explanation,omitempty" db:"match_explanation"`
	Icebreakers pq.StringArray `json:"icebreakers,omitempty" db:"icebreakers"`
}

// NormalizePair orders two user ids as (min, max), the canonical form for
// match storage and lookup.
func NormalizePair(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}

func (m *Match) HasUser(userID int) bool {
	return m.User1ID == userID || m.User2ID == userID
}

// OtherUserID returns the counterpart of userID in the pair, or 0 when
// userID is not part of the match.
func (m *Match) OtherUserID(userID int) int {
	switch userID {
	case m.User1ID:
		return m.User2ID
	case m.User2ID:
		return m.User1ID
	}
	return 0
}
