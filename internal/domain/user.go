package domain

import "time"

// Gender values accepted for a user profile.
const (
	GenderMale      = "male"
	GenderFemale    = "female"
	GenderNonBinary = "non-binary"
	GenderOther     = "other"
)

// Genders lists every accepted gender value.
var Genders = []string{GenderMale, GenderFemale, GenderNonBinary, GenderOther}

type User struct {
	ID           int        `json:"id" db:"user_id"`
	Name         *string    `json:"name" db:"name"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"password_hash"`
	Gender       *string    `json:"gender" db:"gender"`
	DOB          *time.Time `json:"dob" db:"dob"`
	Location     *string    `json:"location" db:"location"`
	Bio          *string    `json:"bio" db:"bio"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
}

// Profile is a user together with the owned data clients render:
// the interest set and the photo list (primary photo first).
type Profile struct {
	User
	Interests []Interest     `json:"interests"`
	Photos    []ProfilePhoto `json:"photos"`
}

func ValidGender(g string) bool {
	for _, v := range Genders {
		if v == g {
			return true
		}
	}
	return false
}
