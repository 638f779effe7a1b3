package main

import (
	"context"
	"fmt"
	"log"

	"lifevibes/config"
	"lifevibes/internal/application/usecase"
	"lifevibes/internal/infrastructure/ai"
	"lifevibes/internal/infrastructure/repository"
	"lifevibes/internal/infrastructure/security"
	"lifevibes/internal/logging"
	"lifevibes/internal/middleware"
	handlers "lifevibes/internal/transport/http"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	log.Println("Running migrations...")
	if err := db.AutoMigrate(
		&repository.ProfileGorm{},
		&repository.AvatarGorm{},
		&repository.StatsGorm{},
		&repository.QuestGorm{},
		&repository.MatchGorm{},
		&repository.CoachMessageGorm{},
	); err != nil {
		log.Fatalf("Failed to migrate DB: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	log.Println("Connected to Redis at", cfg.RedisAddr)

	logger := logging.NewDefault()

	profileRepo := repository.NewPostgresProfileRepository(db)
	questRepo := repository.NewPostgresQuestRepository(db)
	progressionRepo := repository.NewPostgresProgressionRepository(db)
	matchRepo := repository.NewPostgresMatchRepository(db)
	coachRepo := repository.NewPostgresCoachRepository(db)

	var generator ai.Generator = ai.NewTemplateGenerator()
	if cfg.PoppyAPIURL != "" {
		generator = ai.NewPoppyClient(cfg.PoppyAPIURL, cfg.PoppyAPIKey)
		log.Println("Using PoppyAI at", cfg.PoppyAPIURL)
	}

	profileUC := usecase.NewProfileUseCase(profileRepo, logger)
	ledgerUC := usecase.NewLedgerUseCase(progressionRepo, logger)
	questUC := usecase.NewQuestUseCase(questRepo, ledgerUC, logger)
	matchUC := usecase.NewMatchUseCase(profileRepo, matchRepo, logger)
	coachUC := usecase.NewCoachUseCase(coachRepo, profileRepo, generator, logger)

	tokens := security.NewTokenManager(cfg.AccessSecret)
	rateLimiter := middleware.NewRateLimiter(rdb)

	router := handlers.NewRouter(
		handlers.NewEventHandler(profileUC, cfg.EventSecret),
		handlers.NewMatchHandler(matchUC),
		handlers.NewQuestHandler(questUC),
		handlers.NewCoachHandler(coachUC),
		rateLimiter,
		tokens,
		cfg.FrontendURL,
	)

	log.Printf("LifeVibes API running on %s", cfg.HTTPPort)
	if err := router.Run(cfg.HTTPPort); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
