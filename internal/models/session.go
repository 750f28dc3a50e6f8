package models

import (
	"encoding/json"
	"time"
)

// GameSession is one play-through. It transitions open -> completed exactly
// once; completion is the only event that credits the player's total points.
type GameSession struct {
	ID              string          `db:"id" json:"id"`
	PlayerID        string          `db:"player_id" json:"playerId"`
	TechLevel       TechLevel       `db:"tech_level" json:"techLevel"`
	ScenariosPlayed json.RawMessage `db:"scenarios_played" json:"scenariosPlayed"`
	TotalScore      int             `db:"total_score" json:"totalScore"`
	StartTime       time.Time       `db:"start_time" json:"startTime"`
	EndTime         *time.Time      `db:"end_time" json:"endTime,omitempty"`
	IsCompleted     bool            `db:"is_completed" json:"isCompleted"`
}

// PlayerResponse records one answered scenario within a session.
type PlayerResponse struct {
	ID             string    `db:"id" json:"id"`
	SessionID      string    `db:"session_id" json:"sessionId"`
	ScenarioID     string    `db:"scenario_id" json:"scenarioId"`
	PlayerID       string    `db:"player_id" json:"playerId"`
	SelectedOption int       `db:"selected_option" json:"selectedOption"`
	PointsEarned   int       `db:"points_earned" json:"pointsEarned"`
	ResponseTime   *int      `db:"response_time" json:"responseTime,omitempty"`
	Timestamp      time.Time `db:"timestamp" json:"timestamp"`
}
