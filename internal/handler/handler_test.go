package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/pokedex-labs/pokedex-api/internal/api"
	"github.com/pokedex-labs/pokedex-api/internal/config"
	"github.com/pokedex-labs/pokedex-api/internal/database"
	"github.com/pokedex-labs/pokedex-api/internal/database/repository"
	"github.com/pokedex-labs/pokedex-api/internal/database/service"
	"github.com/pokedex-labs/pokedex-api/internal/handler"
	"github.com/pokedex-labs/pokedex-api/internal/middleware"
)

// setupTestAPI wires the full router over an in-memory database. The
// database is returned too so tests can stage storage states the API
// itself cannot produce.
func setupTestAPI(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		JWTSecret:             "test_secret",
		AccessTokenExpiration: 900,
	}

	userRepo := repository.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, cfg, log)
	userService := service.NewUserService(userRepo, log)
	pokemonService := service.NewPokemonService(db, log)

	authHandler := handler.NewAuthHandler(authService, log)
	userHandler := handler.NewUserHandler(userService, log)
	pokemonHandler := handler.NewPokemonHandler(pokemonService, log)
	authMiddleware := middleware.NewAuthMiddleware(authService, log)

	return api.SetupRouter(pokemonHandler, userHandler, authHandler, authMiddleware), db
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// registerAndLogin creates a user through the API and returns a valid
// bearer token for it.
func registerAndLogin(t *testing.T, router *gin.Engine) string {
	w := doJSON(t, router, "POST", "/user/", "", map[string]string{
		"name":     "Ash",
		"email":    "ash@example.com",
		"password": "pikachu123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, "POST", "/login", "", map[string]string{
		"email":    "ash@example.com",
		"password": "pikachu123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func pikachuPayload() map[string]interface{} {
	return map[string]interface{}{
		"id_pokedex": 25,
		"name":       "Pikachu",
		"category":   "Mouse",
		"abillities": "Static",
		"gender":     "M",
		"type":       "Electric",
		"weaknesses": "Ground",
		"height":     0.4,
		"weight":     6.0,
		"stats": map[string]int{
			"attack":          55,
			"defense":         40,
			"hp":              35,
			"special_attack":  50,
			"special_defense": 50,
			"speed":           90,
		},
	}
}
