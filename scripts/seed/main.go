// Command seed creates the database schema and loads a handful of starter
// scenarios. Safe to re-run; schema statements are idempotent and seeding
// skips the scenarios table when it already has rows. The settings rows are
// created lazily by the API on first read.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Zamara-Intern12/Financial-Frontier/pkg/config"
	"github.com/Zamara-Intern12/Financial-Frontier/pkg/database"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS templates (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		icon TEXT NOT NULL DEFAULT '',
		color TEXT NOT NULL DEFAULT '',
		content JSONB NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS proposals (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		client_name TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'draft',
		template_id TEXT,
		content JSONB NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS snapshots (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		kind TEXT NOT NULL,
		size TEXT NOT NULL DEFAULT '',
		payload JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS settings (
		id TEXT PRIMARY KEY,
		backup_time TEXT NOT NULL DEFAULT '23:00',
		backup_enabled BOOLEAN NOT NULL DEFAULT TRUE,
		max_backups INTEGER NOT NULL DEFAULT 30,
		company_name TEXT NOT NULL DEFAULT '',
		company_logo TEXT NOT NULL DEFAULT '',
		company_address TEXT NOT NULL DEFAULT '',
		company_email TEXT NOT NULL DEFAULT '',
		company_phone TEXT NOT NULL DEFAULT '',
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS players (
		id TEXT PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		avatar TEXT NOT NULL DEFAULT '',
		tech_level TEXT NOT NULL DEFAULT 'beginner',
		total_points INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		last_login TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS scenarios (
		id TEXT PRIMARY KEY,
		question TEXT NOT NULL,
		options JSONB NOT NULL,
		scores JSONB NOT NULL,
		tech_level TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT '',
		explanation TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS game_sessions (
		id TEXT PRIMARY KEY,
		player_id TEXT NOT NULL REFERENCES players(id),
		tech_level TEXT NOT NULL,
		scenarios_played JSONB NOT NULL DEFAULT '[]',
		total_score INTEGER NOT NULL DEFAULT 0,
		start_time TIMESTAMPTZ NOT NULL DEFAULT now(),
		end_time TIMESTAMPTZ,
		is_completed BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS player_responses (
		id TEXT PRIMARY KEY,
		session_id TEXT NOT NULL REFERENCES game_sessions(id),
		scenario_id TEXT NOT NULL,
		player_id TEXT NOT NULL,
		selected_option INTEGER NOT NULL,
		points_earned INTEGER NOT NULL DEFAULT 0,
		response_time INTEGER,
		timestamp TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS leaderboard (
		id TEXT PRIMARY KEY,
		player_id TEXT NOT NULL UNIQUE REFERENCES players(id),
		username TEXT NOT NULL,
		avatar TEXT NOT NULL DEFAULT '',
		total_points INTEGER NOT NULL DEFAULT 0,
		tech_level TEXT NOT NULL DEFAULT 'beginner',
		rank INTEGER NOT NULL,
		games_played INTEGER NOT NULL DEFAULT 0,
		last_updated TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS game_settings (
		id TEXT PRIMARY KEY,
		scenarios_per_game INTEGER NOT NULL DEFAULT 10,
		difficulty_progression BOOLEAN NOT NULL DEFAULT TRUE,
		leaderboard_size INTEGER NOT NULL DEFAULT 10,
		time_limit INTEGER NOT NULL DEFAULT 30,
		last_updated TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_snapshots_created_at ON snapshots (created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_game_sessions_player ON game_sessions (player_id, start_time)`,
	`CREATE INDEX IF NOT EXISTS idx_player_responses_session ON player_responses (session_id, timestamp)`,
	`CREATE INDEX IF NOT EXISTS idx_leaderboard_rank ON leaderboard (rank, player_id)`,
}

type seedScenario struct {
	question    string
	options     string
	scores      string
	techLevel   string
	category    string
	explanation string
}

var starterScenarios = []seedScenario{
	{
		question:    "A client emails asking for a 20% discount on a signed proposal. What do you do?",
		options:     `["Agree immediately", "Decline and hold the price", "Offer a smaller concession tied to scope", "Ignore the email"]`,
		scores:      `[0, 5, 10, 0]`,
		techLevel:   "beginner",
		category:    "negotiation",
		explanation: "Concessions should trade against scope, never be given away outright.",
	},
	{
		question:    "Your monthly revenue dipped 15%. What is the first thing to check?",
		options:     `["Cut staff", "Review the sales pipeline", "Raise prices", "Take out a loan"]`,
		scores:      `[0, 10, 2, 0]`,
		techLevel:   "beginner",
		category:    "cash-flow",
		explanation: "Diagnose before acting: the pipeline tells you whether the dip is demand or conversion.",
	},
	{
		question:    "A supplier offers net-60 terms at a 3% premium. Your cash cycle is 45 days. Take it?",
		options:     `["Always", "Never", "Only if the float covers the premium", "Flip a coin"]`,
		scores:      `[3, 0, 10, 0]`,
		techLevel:   "intermediate",
		category:    "working-capital",
		explanation: "Extended terms are a loan; price it against your actual cash conversion cycle.",
	},
}

func main() {
	var (
		schemaOnly bool
		timeout    time.Duration
	)
	flag.BoolVar(&schemaOnly, "schema-only", false, "create tables and indexes, skip seed rows")
	flag.DurationVar(&timeout, "timeout", 30*time.Second, "overall deadline")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			log.Fatalf("schema statement failed: %v", err)
		}
	}
	log.Printf("schema ready (%d statements)", len(schema))

	if schemaOnly {
		return
	}

	seeded, err := seedScenarios(ctx, db)
	if err != nil {
		log.Fatalf("failed to seed scenarios: %v", err)
	}
	log.Printf("scenarios seeded: %d", seeded)
}

func seedScenarios(ctx context.Context, db *sqlx.DB) (int, error) {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(*) FROM scenarios`); err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	const insert = `INSERT INTO scenarios (id, question, options, scores, tech_level, category, explanation, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	for _, s := range starterScenarios {
		if _, err := db.ExecContext(ctx, insert,
			uuid.NewString(), s.question, s.options, s.scores, s.techLevel, s.category, s.explanation, time.Now().UTC(),
		); err != nil {
			return 0, err
		}
	}
	return len(starterScenarios), nil
}
