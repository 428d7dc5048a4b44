package domain

// Preference holds a user's partner filters. Zero or one row per user.
type Preference struct {
	ID               int     `json:"preference_id" db:"preference_id"`
	UserID           int     `json:"user_id" db:"user_id"`
	PreferredGender  *string `json:"preferred_gender" db:"preferred_gender"`
	AgeMin           *int    `json:"age_min" db:"age_min"`
	AgeMax           *int    `json:"age_max" db:"age_max"`
	LocationRadiusKm *int    `json:"location_radius_km" db:"location_radius_km"`
}
