package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/Zamara-Intern12/Financial-Frontier/api/swagger"
	"github.com/Zamara-Intern12/Financial-Frontier/internal/handler"
	"github.com/Zamara-Intern12/Financial-Frontier/internal/middleware"
	"github.com/Zamara-Intern12/Financial-Frontier/internal/repository"
	"github.com/Zamara-Intern12/Financial-Frontier/internal/service"
	"github.com/Zamara-Intern12/Financial-Frontier/pkg/cache"
	"github.com/Zamara-Intern12/Financial-Frontier/pkg/config"
	"github.com/Zamara-Intern12/Financial-Frontier/pkg/database"
	"github.com/Zamara-Intern12/Financial-Frontier/pkg/logger"
	corsmiddleware "github.com/Zamara-Intern12/Financial-Frontier/pkg/middleware/cors"
	reqidmiddleware "github.com/Zamara-Intern12/Financial-Frontier/pkg/middleware/requestid"
)

// @title Financial Frontier API
// @version 1.0.0
// @description Proposal document management with backups plus the trivia game backend
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Warnw("redis unavailable, leaderboard cache disabled", "error", err)
		redisClient = nil
	}

	validate := validator.New()
	metricsSvc := service.NewMetricsService()

	// Repositories.
	templateRepo := repository.NewTemplateRepository(db)
	proposalRepo := repository.NewProposalRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	playerRepo := repository.NewPlayerRepository(db)
	scenarioRepo := repository.NewScenarioRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	responseRepo := repository.NewResponseRepository(db)
	leaderboardRepo := repository.NewLeaderboardRepository(db)
	gameSettingsRepo := repository.NewGameSettingsRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient)

	// Services.
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Game.LeaderboardCacheTTL, logr, cfg.Game.CacheEnabled)
	settingsSvc := service.NewSettingsService(settingsRepo, nil, validate, logr)
	snapshotSvc := service.NewSnapshotService(snapshotRepo, templateRepo, proposalRepo, settingsSvc, metricsSvc, logr)
	scheduler := service.NewBackupScheduler(snapshotSvc, settingsSvc, logr)
	// Settings changes must move the nightly backup immediately.
	settingsSvc = service.NewSettingsService(settingsRepo, scheduler, validate, logr)
	templateSvc := service.NewTemplateService(templateRepo, validate, logr)
	proposalSvc := service.NewProposalService(proposalRepo, validate, logr)
	scenarioSvc := service.NewScenarioService(scenarioRepo, validate, logr)
	leaderboardSvc := service.NewLeaderboardService(leaderboardRepo, playerRepo, sessionRepo, cacheSvc, logr, cfg.Game.LeaderboardLimit)
	playerSvc := service.NewPlayerService(playerRepo, leaderboardSvc, validate, logr)
	sessionSvc := service.NewSessionService(sessionRepo, playerRepo, responseRepo, leaderboardSvc, validate, logr)
	gameSettingsSvc := service.NewGameSettingsService(gameSettingsRepo, validate, logr)

	if cfg.Backup.SchedulerEnabled {
		if err := scheduler.Start(context.Background()); err != nil {
			logr.Sugar().Warnw("backup scheduler not started", "error", err)
		}
		defer scheduler.Stop()
	}

	// Handlers.
	backupHandler := handler.NewBackupHandler(snapshotSvc)
	settingsHandler := handler.NewSettingsHandler(settingsSvc)
	templateHandler := handler.NewTemplateHandler(templateSvc)
	proposalHandler := handler.NewProposalHandler(proposalSvc)
	playerHandler := handler.NewPlayerHandler(playerSvc)
	scenarioHandler := handler.NewScenarioHandler(scenarioSvc)
	sessionHandler := handler.NewSessionHandler(sessionSvc)
	leaderboardHandler := handler.NewLeaderboardHandler(leaderboardSvc)
	gameSettingsHandler := handler.NewGameSettingsHandler(gameSettingsSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		api.GET("/templates", templateHandler.List)
		api.POST("/templates", templateHandler.Create)
		api.GET("/templates/:id", templateHandler.Get)
		api.PUT("/templates/:id", templateHandler.Update)
		api.DELETE("/templates/:id", templateHandler.Delete)

		api.GET("/proposals", proposalHandler.List)
		api.POST("/proposals", proposalHandler.Create)
		api.GET("/proposals/:id", proposalHandler.Get)
		api.PUT("/proposals/:id", proposalHandler.Update)
		api.DELETE("/proposals/:id", proposalHandler.Delete)

		api.GET("/backups", backupHandler.List)
		api.POST("/backups", backupHandler.Create)
		api.DELETE("/backups/:id", backupHandler.Delete)
		api.POST("/backups/:id/restore", backupHandler.Restore)

		api.GET("/settings", settingsHandler.Get)
		api.PUT("/settings", settingsHandler.Update)

		game := api.Group("/game")
		{
			game.POST("/players", playerHandler.Register)
			game.POST("/players/login", playerHandler.Login)
			game.GET("/players", playerHandler.List)
			game.GET("/players/top", leaderboardHandler.TopPlayers)
			game.GET("/players/:id", playerHandler.Get)
			game.PUT("/players/:id", playerHandler.Update)
			game.GET("/players/:id/sessions", sessionHandler.ListByPlayer)

			game.GET("/scenarios", scenarioHandler.List)
			game.POST("/scenarios", scenarioHandler.Create)
			game.GET("/scenarios/:id", scenarioHandler.Get)
			game.PUT("/scenarios/:id", scenarioHandler.Update)
			game.DELETE("/scenarios/:id", scenarioHandler.Delete)

			game.POST("/sessions", sessionHandler.Create)
			game.GET("/sessions/:id", sessionHandler.Get)
			game.POST("/sessions/:id/complete", sessionHandler.Complete)
			game.GET("/sessions/:id/responses", sessionHandler.ListResponses)
			game.POST("/responses", sessionHandler.RecordResponse)

			game.GET("/leaderboard", leaderboardHandler.Get)
			game.POST("/leaderboard/refresh", leaderboardHandler.Refresh)
			game.GET("/leaderboard/:playerId", leaderboardHandler.GetPlayer)

			game.GET("/settings", gameSettingsHandler.Get)
			game.PUT("/settings", gameSettingsHandler.Update)
		}
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
