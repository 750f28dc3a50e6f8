package dto

import "encoding/json"

// RegisterPlayerRequest creates a new game account.
type RegisterPlayerRequest struct {
	Username  string `json:"username" validate:"required,min=2,max=50"`
	Password  string `json:"password" validate:"required,min=4"`
	Avatar    string `json:"avatar"`
	TechLevel string `json:"techLevel"`
}

// LoginRequest verifies player credentials.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdatePlayerRequest changes cosmetic profile fields. Password updates are
// deliberately not accepted here.
type UpdatePlayerRequest struct {
	Avatar    *string `json:"avatar"`
	TechLevel *string `json:"techLevel"`
}

// CreateScenarioRequest describes a new decision scenario.
type CreateScenarioRequest struct {
	Question    string          `json:"question" validate:"required"`
	Options     json.RawMessage `json:"options" validate:"required"`
	Scores      json.RawMessage `json:"scores" validate:"required"`
	TechLevel   string          `json:"techLevel" validate:"required"`
	Category    string          `json:"category" validate:"required"`
	Explanation string          `json:"explanation" validate:"required"`
}

// UpdateScenarioRequest carries a partial scenario update.
type UpdateScenarioRequest struct {
	Question    *string         `json:"question"`
	Options     json.RawMessage `json:"options"`
	Scores      json.RawMessage `json:"scores"`
	TechLevel   *string         `json:"techLevel"`
	Category    *string         `json:"category"`
	Explanation *string         `json:"explanation"`
}

// CreateSessionRequest opens a new play session.
type CreateSessionRequest struct {
	PlayerID        string          `json:"playerId" validate:"required"`
	TechLevel       string          `json:"techLevel" validate:"required"`
	ScenariosPlayed json.RawMessage `json:"scenariosPlayed" validate:"required"`
}

// CompleteSessionRequest finishes a session with its cumulative score.
type CompleteSessionRequest struct {
	TotalScore *int `json:"totalScore" validate:"required,min=0"`
}

// CreateResponseRequest records one answered scenario.
type CreateResponseRequest struct {
	SessionID      string `json:"sessionId" validate:"required"`
	ScenarioID     string `json:"scenarioId" validate:"required"`
	PlayerID       string `json:"playerId" validate:"required"`
	SelectedOption *int   `json:"selectedOption" validate:"required,min=0"`
	PointsEarned   *int   `json:"pointsEarned" validate:"required,min=0"`
	ResponseTime   *int   `json:"responseTime"`
}

// UpdateGameSettingsRequest carries a partial game settings update.
type UpdateGameSettingsRequest struct {
	ScenariosPerGame      *int  `json:"scenariosPerGame" validate:"omitempty,min=1"`
	DifficultyProgression *bool `json:"difficultyProgression"`
	LeaderboardSize       *int  `json:"leaderboardSize" validate:"omitempty,min=1"`
	TimeLimit             *int  `json:"timeLimit" validate:"omitempty,min=1"`
}
