package models

import "time"

// GameSettings is the single-row game tuning configuration.
type GameSettings struct {
	ID                    string    `db:"id" json:"id"`
	ScenariosPerGame      int       `db:"scenarios_per_game" json:"scenariosPerGame"`
	DifficultyProgression bool      `db:"difficulty_progression" json:"difficultyProgression"`
	LeaderboardSize       int       `db:"leaderboard_size" json:"leaderboardSize"`
	TimeLimit             int       `db:"time_limit" json:"timeLimit"`
	LastUpdated           time.Time `db:"last_updated" json:"lastUpdated"`
}
