package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/pokedex-labs/pokedex-api/internal/api"
	"github.com/pokedex-labs/pokedex-api/internal/config"
	"github.com/pokedex-labs/pokedex-api/internal/database"
	"github.com/pokedex-labs/pokedex-api/internal/database/repository"
	"github.com/pokedex-labs/pokedex-api/internal/database/service"
	"github.com/pokedex-labs/pokedex-api/internal/handler"
	"github.com/pokedex-labs/pokedex-api/internal/logger"
	"github.com/pokedex-labs/pokedex-api/internal/middleware"
)

func main() {
	// 1. Config (.env is optional)
	_ = godotenv.Load()
	cfg := config.LoadConfig()

	// 2. Logger
	appLogger := logger.New(cfg)

	appLogger.Info("🚀 [Pokedex] Starting API...",
		"environment", cfg.AppEnv,
	)

	// 3. Connect to Database
	db, err := database.ConnectDatabase(cfg, appLogger)
	if err != nil {
		appLogger.Error("❌ Failed to connect to database", "error", err)
		os.Exit(1)
	}

	// 4. Initialize Repositories
	userRepo := repository.NewUserRepository(db)

	// 5. Initialize Services
	authService := service.NewAuthService(userRepo, cfg, appLogger)
	userService := service.NewUserService(userRepo, appLogger)
	pokemonService := service.NewPokemonService(db, appLogger)

	// 6. Initialize Handlers & Middleware
	authHandler := handler.NewAuthHandler(authService, appLogger)
	userHandler := handler.NewUserHandler(userService, appLogger)
	pokemonHandler := handler.NewPokemonHandler(pokemonService, appLogger)
	authMiddleware := middleware.NewAuthMiddleware(authService, appLogger)

	// 7. Setup Router & Start HTTP Server
	r := api.SetupRouter(pokemonHandler, userHandler, authHandler, authMiddleware)

	addr := fmt.Sprintf(":%s", cfg.ApiServicePort)
	appLogger.Info("🌍 [Pokedex] HTTP Server running...", "port", cfg.ApiServicePort)
	if err := r.Run(addr); err != nil {
		appLogger.Error("❌ HTTP Server failed to start", "error", err)
		os.Exit(1)
	}
}
