package main

import (
	"fmt"
	"log"
	"net/http"

	"roulette_webapp/domain"
	adminController "roulette_webapp/internal/admin/controller"
	adminRepository "roulette_webapp/internal/admin/repository"
	adminUsecase "roulette_webapp/internal/admin/usecase"
	authController "roulette_webapp/internal/auth/controller"
	authRepository "roulette_webapp/internal/auth/repository"
	authUsecase "roulette_webapp/internal/auth/usecase"
	gameController "roulette_webapp/internal/game/controller"
	gameRepository "roulette_webapp/internal/game/repository"
	gameUsecase "roulette_webapp/internal/game/usecase"
	"roulette_webapp/internal/service/config"
	"roulette_webapp/internal/service/logger"
	"roulette_webapp/internal/service/middleware"
	"roulette_webapp/internal/service/router"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.InitLoggers(); err != nil {
		log.Fatalf("Failed to initialize loggers: %v", err)
	}
	defer func() {
		if err := logger.SyncLoggers(); err != nil {
			log.Printf("Failed to sync loggers: %v", err)
		}
	}()

	db := middleware.DbConnect()

	var redisClient *redis.Client
	if cfg.RedisEndpoint != "" {
		redisClient = middleware.InitRedis(cfg.RedisEndpoint)
	}

	jwtToken, err := middleware.NewJwtToken(cfg.AdminJWTSecret)
	if err != nil {
		log.Fatalf("Failed to create JWT token service: %v", err)
	}

	gameConfig := domain.DefaultGameConfig()
	gameConfig.SpinCost = cfg.SpinCost
	gameConfig.StartBalance = cfg.StartBalance

	verifier := authUsecase.NewInitDataVerifier(cfg.BotToken)

	authRepo := authRepository.NewAuthRepository(db, gameConfig.StartBalance)
	authUC := authUsecase.NewAuthUsecase(verifier, authRepo)
	authHandler := authController.NewAuthHandler(authUC)

	gameRepo := gameRepository.NewGameRepository(db, gameConfig.StartBalance)
	gameUC := gameUsecase.NewGameUsecase(gameRepo, gameConfig)
	gameHandler := gameController.NewGameHandler(gameUC, verifier)

	adminRepo := adminRepository.NewAdminRepository(db)
	adminUC := adminUsecase.NewAdminUsecase(adminRepo, cfg.AdminPasswordHash, redisClient)
	adminHandler := adminController.NewAdminHandler(adminUC, jwtToken)

	mainRouter := router.SetUpRoutes(authHandler, gameHandler, adminHandler, cfg.StaticDir)
	mainRouter.Use(middleware.RequestIDMiddleware)
	mainRouter.Use(middleware.RateLimitMiddleware)
	http.Handle("/", middleware.EnableCORS(mainRouter))

	fmt.Printf("Starting HTTP server on address %s\n", cfg.BackendURL)
	if err := http.ListenAndServe(cfg.BackendURL, nil); err != nil {
		fmt.Printf("Error on starting server: %s", err)
	}
}
