package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Financial Frontier API",
        "description": "Proposal document management with backups plus the trivia game backend",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Templates", "description": "Proposal template management"},
        {"name": "Proposals", "description": "Proposal lifecycle"},
        {"name": "Backups", "description": "Snapshots of templates and proposals"},
        {"name": "Settings", "description": "Backup schedule and retention"},
        {"name": "Players", "description": "Game player accounts"},
        {"name": "Scenarios", "description": "Trivia scenarios"},
        {"name": "Sessions", "description": "Game sessions and responses"},
        {"name": "Leaderboard", "description": "Ranked player standings"},
        {"name": "Game Settings", "description": "Gameplay tuning"}
    ],
    "paths": {
        "/templates": {
            "get": {
                "tags": ["Templates"],
                "summary": "List templates",
                "responses": {"200": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "OK"}}
            },
            "post": {
                "tags": ["Templates"],
                "summary": "Create a template",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateTemplateRequest"}}],
                "responses": {
                    "201": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "Created"},
                    "400": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "Validation error"}
                }
            }
        },
        "/templates/{id}": {
            "get": {
                "tags": ["Templates"],
                "summary": "Get a template",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "OK"},
                    "404": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "Not found"}
                }
            },
            "put": {
                "tags": ["Templates"],
                "summary": "Update a template",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateTemplateRequest"}}
                ],
                "responses": {
                    "200": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "OK"},
                    "404": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "Not found"}
                }
            },
            "delete": {
                "tags": ["Templates"],
                "summary": "Delete a template",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "Not found"}
                }
            }
        },
        "/proposals": {
            "get": {
                "tags": ["Proposals"],
                "summary": "List proposals",
                "responses": {"200": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "OK"}}
            },
            "post": {
                "tags": ["Proposals"],
                "summary": "Create a proposal",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateProposalRequest"}}],
                "responses": {
                    "201": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "Created"},
                    "400": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "Validation error"}
                }
            }
        },
        "/proposals/{id}": {
            "get": {
                "tags": ["Proposals"],
                "summary": "Get a proposal",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "OK"},
                    "404": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "Not found"}
                }
            },
            "put": {
                "tags": ["Proposals"],
                "summary": "Update a proposal",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateProposalRequest"}}
                ],
                "responses": {
                    "200": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "OK"},
                    "404": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "Not found"}
                }
            },
            "delete": {
                "tags": ["Proposals"],
                "summary": "Delete a proposal",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "Not found"}
                }
            }
        },
        "/backups": {
            "get": {
                "tags": ["Backups"],
                "summary": "List backups, newest first",
                "responses": {"200": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "OK"}}
            },
            "post": {
                "tags": ["Backups"],
                "summary": "Create a manual backup",
                "parameters": [{"name": "payload", "in": "body", "required": false, "schema": {"$ref": "#/definitions/CreateBackupRequest"}}],
                "responses": {
                    "201": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "Created"},
                    "400": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "Validation error"}
                }
            }
        },
        "/backups/{id}": {
            "delete": {
                "tags": ["Backups"],
                "summary": "Delete a backup",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "Not found"}
                }
            }
        },
        "/backups/{id}/restore": {
            "post": {
                "tags": ["Backups"],
                "summary": "Restore templates and proposals from a backup",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "Restored"},
                    "404": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "Not found"},
                    "500": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "Restore aborted"}
                }
            }
        },
        "/settings": {
            "get": {
                "tags": ["Settings"],
                "summary": "Get backup settings",
                "responses": {"200": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "OK"}}
            },
            "put": {
                "tags": ["Settings"],
                "summary": "Update backup settings",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateSettingsRequest"}}],
                "responses": {
                    "200": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "OK"},
                    "400": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "Validation error"}
                }
            }
        },
        "/game/players": {
            "get": {
                "tags": ["Players"],
                "summary": "List players",
                "parameters": [{"name": "techLevel", "in": "query", "required": false, "type": "string"}],
                "responses": {"200": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "OK"}}
            },
            "post": {
                "tags": ["Players"],
                "summary": "Register a player",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RegisterPlayerRequest"}}],
                "responses": {
                    "201": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "Created"},
                    "409": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "Username taken"}
                }
            }
        },
        "/game/players/login": {
            "post": {
                "tags": ["Players"],
                "summary": "Authenticate a player",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}],
                "responses": {
                    "200": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "OK"},
                    "401": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "Invalid credentials"}
                }
            }
        },
        "/game/players/top": {
            "get": {
                "tags": ["Leaderboard"],
                "summary": "Get the top players",
                "parameters": [{"name": "limit", "in": "query", "required": false, "type": "integer"}],
                "responses": {"200": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "OK"}}
            }
        },
        "/game/players/{id}": {
            "get": {
                "tags": ["Players"],
                "summary": "Get a player",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "OK"},
                    "404": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "Not found"}
                }
            },
            "put": {
                "tags": ["Players"],
                "summary": "Update a player profile",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdatePlayerRequest"}}
                ],
                "responses": {
                    "200": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "OK"},
                    "404": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "Not found"}
                }
            }
        },
        "/game/players/{id}/sessions": {
            "get": {
                "tags": ["Sessions"],
                "summary": "List a player's sessions",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "OK"}}
            }
        },
        "/game/scenarios": {
            "get": {
                "tags": ["Scenarios"],
                "summary": "List scenarios",
                "parameters": [{"name": "techLevel", "in": "query", "required": false, "type": "string"}],
                "responses": {"200": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "OK"}}
            },
            "post": {
                "tags": ["Scenarios"],
                "summary": "Create a scenario",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateScenarioRequest"}}],
                "responses": {
                    "201": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "Created"},
                    "400": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "Validation error"}
                }
            }
        },
        "/game/scenarios/{id}": {
            "get": {
                "tags": ["Scenarios"],
                "summary": "Get a scenario",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "OK"},
                    "404": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "Not found"}
                }
            },
            "put": {
                "tags": ["Scenarios"],
                "summary": "Update a scenario",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateScenarioRequest"}}
                ],
                "responses": {
                    "200": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "OK"},
                    "404": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "Not found"}
                }
            },
            "delete": {
                "tags": ["Scenarios"],
                "summary": "Delete a scenario",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "Not found"}
                }
            }
        },
        "/game/sessions": {
            "post": {
                "tags": ["Sessions"],
                "summary": "Open a new game session",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateSessionRequest"}}],
                "responses": {
                    "201": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "Created"},
                    "404": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "Player not found"}
                }
            }
        },
        "/game/sessions/{id}": {
            "get": {
                "tags": ["Sessions"],
                "summary": "Get a session",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "OK"},
                    "404": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "Not found"}
                }
            }
        },
        "/game/sessions/{id}/complete": {
            "post": {
                "tags": ["Sessions"],
                "summary": "Complete a session and credit its score",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CompleteSessionRequest"}}
                ],
                "responses": {
                    "200": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "OK"},
                    "404": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "Not found"},
                    "409": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "Already completed"}
                }
            }
        },
        "/game/sessions/{id}/responses": {
            "get": {
                "tags": ["Sessions"],
                "summary": "List a session's answers",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "OK"}}
            }
        },
        "/game/responses": {
            "post": {
                "tags": ["Sessions"],
                "summary": "Record a scenario answer",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateResponseRequest"}}],
                "responses": {
                    "201": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "Created"},
                    "409": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "Session already completed"}
                }
            }
        },
        "/game/leaderboard": {
            "get": {
                "tags": ["Leaderboard"],
                "summary": "Get the top of the leaderboard",
                "parameters": [{"name": "limit", "in": "query", "required": false, "type": "integer"}],
                "responses": {"200": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "OK"}}
            }
        },
        "/game/leaderboard/refresh": {
            "post": {
                "tags": ["Leaderboard"],
                "summary": "Rebuild the leaderboard from player records",
                "responses": {"200": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "OK"}}
            }
        },
        "/game/leaderboard/{playerId}": {
            "get": {
                "tags": ["Leaderboard"],
                "summary": "Get a player's leaderboard entry",
                "parameters": [{"name": "playerId", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "OK"},
                    "404": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "Not found"}
                }
            }
        },
        "/game/settings": {
            "get": {
                "tags": ["Game Settings"],
                "summary": "Get gameplay settings",
                "responses": {"200": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "OK"}}
            },
            "put": {
                "tags": ["Game Settings"],
                "summary": "Update gameplay settings",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateGameSettingsRequest"}}],
                "responses": {
                    "200": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "OK"},
                    "400": {"schema": {"$ref": "#/definitions/ResponseEnvelope"}, "description": "Validation error"}
                }
            }
        }
    },
    "definitions": {
        "CreateTemplateRequest": {
            "type": "object",
            "required": ["name", "content"],
            "properties": {
                "name": {"type": "string"},
                "description": {"type": "string"},
                "icon": {"type": "string"},
                "color": {"type": "string"},
                "content": {"type": "object"}
            }
        },
        "UpdateTemplateRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "description": {"type": "string"},
                "icon": {"type": "string"},
                "color": {"type": "string"},
                "content": {"type": "object"}
            }
        },
        "CreateProposalRequest": {
            "type": "object",
            "required": ["title", "clientName", "content"],
            "properties": {
                "title": {"type": "string"},
                "clientName": {"type": "string"},
                "status": {"type": "string", "enum": ["draft", "sent", "approved", "rejected"]},
                "templateId": {"type": "string"},
                "content": {"type": "object"}
            }
        },
        "UpdateProposalRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "clientName": {"type": "string"},
                "status": {"type": "string", "enum": ["draft", "sent", "approved", "rejected"]},
                "templateId": {"type": "string"},
                "content": {"type": "object"}
            }
        },
        "CreateBackupRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "type": {"type": "string", "enum": ["manual", "scheduled"]}
            }
        },
        "UpdateSettingsRequest": {
            "type": "object",
            "properties": {
                "backupTime": {"type": "string", "example": "23:00"},
                "backupEnabled": {"type": "boolean"},
                "maxBackups": {"type": "integer", "minimum": 1},
                "companyName": {"type": "string"},
                "companyLogo": {"type": "string"},
                "companyAddress": {"type": "string"},
                "companyEmail": {"type": "string"},
                "companyPhone": {"type": "string"}
            }
        },
        "RegisterPlayerRequest": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"},
                "avatar": {"type": "string"},
                "techLevel": {"type": "string", "enum": ["beginner", "intermediate", "advanced"]}
            }
        },
        "LoginRequest": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "UpdatePlayerRequest": {
            "type": "object",
            "properties": {
                "avatar": {"type": "string"},
                "techLevel": {"type": "string", "enum": ["beginner", "intermediate", "advanced"]}
            }
        },
        "CreateScenarioRequest": {
            "type": "object",
            "required": ["question", "options", "scores", "techLevel", "category", "explanation"],
            "properties": {
                "question": {"type": "string"},
                "options": {"type": "array", "items": {"type": "string"}},
                "scores": {"type": "array", "items": {"type": "integer"}},
                "techLevel": {"type": "string", "enum": ["beginner", "intermediate", "advanced"]},
                "category": {"type": "string"},
                "explanation": {"type": "string"}
            }
        },
        "UpdateScenarioRequest": {
            "type": "object",
            "properties": {
                "question": {"type": "string"},
                "options": {"type": "array", "items": {"type": "string"}},
                "scores": {"type": "array", "items": {"type": "integer"}},
                "techLevel": {"type": "string", "enum": ["beginner", "intermediate", "advanced"]},
                "category": {"type": "string"},
                "explanation": {"type": "string"}
            }
        },
        "CreateSessionRequest": {
            "type": "object",
            "required": ["playerId", "techLevel", "scenariosPlayed"],
            "properties": {
                "playerId": {"type": "string"},
                "techLevel": {"type": "string", "enum": ["beginner", "intermediate", "advanced"]},
                "scenariosPlayed": {"type": "array", "items": {"type": "string"}}
            }
        },
        "CompleteSessionRequest": {
            "type": "object",
            "required": ["totalScore"],
            "properties": {
                "totalScore": {"type": "integer", "minimum": 0}
            }
        },
        "CreateResponseRequest": {
            "type": "object",
            "required": ["sessionId", "scenarioId", "playerId", "selectedOption", "pointsEarned"],
            "properties": {
                "sessionId": {"type": "string"},
                "scenarioId": {"type": "string"},
                "playerId": {"type": "string"},
                "selectedOption": {"type": "integer", "minimum": 0},
                "pointsEarned": {"type": "integer", "minimum": 0},
                "responseTime": {"type": "integer"}
            }
        },
        "UpdateGameSettingsRequest": {
            "type": "object",
            "properties": {
                "scenariosPerGame": {"type": "integer"},
                "difficultyProgression": {"type": "boolean"},
                "leaderboardSize": {"type": "integer"},
                "timeLimit": {"type": "integer"}
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "pageSize": {"type": "integer"},
                "total": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
