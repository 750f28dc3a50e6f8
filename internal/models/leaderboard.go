package models

import "time"

// ProvisionalRank marks a freshly inserted entry before the first global rank
// recomputation. It must never escape the ranking engine.
const ProvisionalRank = 999

// LeaderboardEntry is the derived per-player ranking record. Rank is a dense
// 1-based ordinal over all entries sorted by total points descending.
type LeaderboardEntry struct {
	ID          string    `db:"id" json:"id"`
	PlayerID    string    `db:"player_id" json:"playerId"`
	Username    string    `db:"username" json:"username"`
	Avatar      string    `db:"avatar" json:"avatar"`
	TotalPoints int       `db:"total_points" json:"totalPoints"`
	TechLevel   TechLevel `db:"tech_level" json:"techLevel"`
	Rank        int       `db:"rank" json:"rank"`
	GamesPlayed int       `db:"games_played" json:"gamesPlayed"`
	LastUpdated time.Time `db:"last_updated" json:"lastUpdated"`
}
