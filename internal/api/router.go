package api

import (
	"github.com/gin-gonic/gin"

	"github.com/pokedex-labs/pokedex-api/internal/handler"
	"github.com/pokedex-labs/pokedex-api/internal/middleware"
)

func SetupRouter(
	pokemonHandler *handler.PokemonHandler,
	userHandler *handler.UserHandler,
	authHandler *handler.AuthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *gin.Engine {
	r := gin.Default()
	r.SetTrustedProxies(nil)

	// Public routes
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.POST("/login", authHandler.Login)

	// User routes (Public)
	userGroup := r.Group("/user")
	{
		userGroup.POST("/", userHandler.Create)
		userGroup.GET("/:id", userHandler.Get)
	}

	// Pokemon routes; mutations require an authenticated caller,
	// reads are public.
	pokemonGroup := r.Group("/pokemon")
	{
		pokemonGroup.GET("/:id", pokemonHandler.Get)
		pokemonGroup.POST("/", authMiddleware.RequireAuth(), pokemonHandler.Create)
		pokemonGroup.DELETE("/:id", authMiddleware.RequireAuth(), pokemonHandler.Delete)
	}

	return r
}
