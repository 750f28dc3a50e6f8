package models

import "time"

// TechLevel buckets players by declared expertise.
type TechLevel string

const (
	TechLevelBeginner     TechLevel = "beginner"
	TechLevelIntermediate TechLevel = "intermediate"
	TechLevelAdvanced     TechLevel = "advanced"
)

// Player is a registered game participant. Total points only ever grow, via
// completed sessions.
type Player struct {
	ID           string     `db:"id" json:"id"`
	Username     string     `db:"username" json:"username"`
	PasswordHash string     `db:"password_hash" json:"-"`
	Avatar       string     `db:"avatar" json:"avatar"`
	TechLevel    TechLevel  `db:"tech_level" json:"techLevel"`
	TotalPoints  int        `db:"total_points" json:"totalPoints"`
	CreatedAt    time.Time  `db:"created_at" json:"createdAt"`
	LastLogin    *time.Time `db:"last_login" json:"lastLogin,omitempty"`
}

// ValidTechLevel reports whether the level is one of the known tiers.
func ValidTechLevel(l TechLevel) bool {
	switch l {
	case TechLevelBeginner, TechLevelIntermediate, TechLevelAdvanced:
		return true
	}
	return false
}
