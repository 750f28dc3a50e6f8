package models

import (
	"encoding/json"
	"time"
)

// Scenario is one multiple-choice decision question played in a session.
// Options and scores are parallel JSON arrays.
type Scenario struct {
	ID          string          `db:"id" json:"id"`
	Question    string          `db:"question" json:"question"`
	Options     json.RawMessage `db:"options" json:"options"`
	Scores      json.RawMessage `db:"scores" json:"scores"`
	TechLevel   TechLevel       `db:"tech_level" json:"techLevel"`
	Category    string          `db:"category" json:"category"`
	Explanation string          `db:"explanation" json:"explanation"`
	CreatedAt   time.Time       `db:"created_at" json:"createdAt"`
}
