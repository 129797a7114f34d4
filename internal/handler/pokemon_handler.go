package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pokedex-labs/pokedex-api/internal/database/models"
	"github.com/pokedex-labs/pokedex-api/internal/database/repository"
	"github.com/pokedex-labs/pokedex-api/internal/database/service"
)

// PokemonHandler handles HTTP requests for pokedex entries
type PokemonHandler struct {
	service service.PokemonService
	logger  *slog.Logger
}

// NewPokemonHandler creates a new pokemon handler
func NewPokemonHandler(service service.PokemonService, logger *slog.Logger) *PokemonHandler {
	return &PokemonHandler{
		service: service,
		logger:  logger,
	}
}

// Request/Response DTOs. Numeric request fields are pointers so that
// presence is validated, not non-zeroness; a stat of 0 is valid input.
type StatsRequest struct {
	Attack         *int `json:"attack" binding:"required"`
	Defense        *int `json:"defense" binding:"required"`
	HP             *int `json:"hp" binding:"required"`
	SpecialAttack  *int `json:"special_attack" binding:"required"`
	SpecialDefense *int `json:"special_defense" binding:"required"`
	Speed          *int `json:"speed" binding:"required"`
}

type CreatePokemonRequest struct {
	IDPokedex  *int          `json:"id_pokedex" binding:"required"`
	Name       string        `json:"name" binding:"required"`
	Category   string        `json:"category" binding:"required"`
	Abillities string        `json:"abillities" binding:"required"`
	Gender     string        `json:"gender" binding:"required"`
	Type       string        `json:"type" binding:"required"`
	Weaknesses string        `json:"weaknesses" binding:"required"`
	Height     *float64      `json:"height" binding:"required"`
	Weight     *float64      `json:"weight" binding:"required"`
	Stats      *StatsRequest `json:"stats" binding:"required"`
}

type StatsResponse struct {
	Attack         int `json:"attack"`
	Defense        int `json:"defense"`
	HP             int `json:"hp"`
	SpecialAttack  int `json:"special_attack"`
	SpecialDefense int `json:"special_defense"`
	Speed          int `json:"speed"`
}

type PokemonResponse struct {
	ID         uuid.UUID     `json:"id"`
	IDPokedex  int           `json:"id_pokedex"`
	Name       string        `json:"name"`
	Category   string        `json:"category"`
	Abillities string        `json:"abillities"`
	Gender     string        `json:"gender"`
	Type       string        `json:"type"`
	Weaknesses string        `json:"weaknesses"`
	Height     float64       `json:"height"`
	Weight     float64       `json:"weight"`
	Stats      StatsResponse `json:"stats"`
}

// Create handles POST /pokemon/
func (h *PokemonHandler) Create(c *gin.Context) {
	var req CreatePokemonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("❌ [PokemonHandler] Invalid create request", "error", err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	pokemon := &models.Pokemon{
		IDPokedex:  *req.IDPokedex,
		Name:       req.Name,
		Category:   req.Category,
		Abillities: req.Abillities,
		Gender:     req.Gender,
		Type:       req.Type,
		Weaknesses: req.Weaknesses,
		Height:     *req.Height,
		Weight:     *req.Weight,
	}
	stats := &models.Stats{
		Attack:         *req.Stats.Attack,
		Defense:        *req.Stats.Defense,
		HP:             *req.Stats.HP,
		SpecialAttack:  *req.Stats.SpecialAttack,
		SpecialDefense: *req.Stats.SpecialDefense,
		Speed:          *req.Stats.Speed,
	}

	if err := h.service.CreateWithStats(pokemon, stats); err != nil {
		h.logger.Error("❌ [PokemonHandler] Failed to create pokemon", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, toPokemonResponse(pokemon, stats))
}

// Get handles GET /pokemon/:id
func (h *PokemonHandler) Get(c *gin.Context) {
	idParam := c.Param("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		// Malformed ids short-circuit without touching storage.
		h.pokemonNotFound(c, idParam)
		return
	}

	pokemon, stats, err := h.service.GetWithStats(id)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrPokemonNotFound):
			h.pokemonNotFound(c, idParam)
		case errors.Is(err, repository.ErrStatsNotFound):
			c.JSON(http.StatusNotFound, gin.H{"detail": fmt.Sprintf("pokemon_stats with the id %s is not found", idParam)})
		default:
			h.internalError(c, idParam, err)
		}
		return
	}

	c.JSON(http.StatusOK, toPokemonResponse(pokemon, stats))
}

// Delete handles DELETE /pokemon/:id
func (h *PokemonHandler) Delete(c *gin.Context) {
	idParam := c.Param("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		h.pokemonNotFound(c, idParam)
		return
	}

	if err := h.service.DeleteWithStats(id); err != nil {
		switch {
		case errors.Is(err, repository.ErrPokemonNotFound):
			h.pokemonNotFound(c, idParam)
		case errors.Is(err, repository.ErrStatsNotFound):
			c.JSON(http.StatusNotFound, gin.H{"detail": fmt.Sprintf("pokemon_stats with the pokemon_id %s is not found", idParam)})
		default:
			h.internalError(c, idParam, err)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *PokemonHandler) pokemonNotFound(c *gin.Context, id string) {
	c.JSON(http.StatusNotFound, gin.H{"detail": fmt.Sprintf("pokemon with the id %s is not found", id)})
}

func (h *PokemonHandler) internalError(c *gin.Context, id string, err error) {
	h.logger.Error("❌ [PokemonHandler] Internal server error", "pokemon_id", id, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
}

func toPokemonResponse(pokemon *models.Pokemon, stats *models.Stats) PokemonResponse {
	return PokemonResponse{
		ID:         pokemon.ID,
		IDPokedex:  pokemon.IDPokedex,
		Name:       pokemon.Name,
		Category:   pokemon.Category,
		Abillities: pokemon.Abillities,
		Gender:     pokemon.Gender,
		Type:       pokemon.Type,
		Weaknesses: pokemon.Weaknesses,
		Height:     pokemon.Height,
		Weight:     pokemon.Weight,
		Stats: StatsResponse{
			Attack:         stats.Attack,
			Defense:        stats.Defense,
			HP:             stats.HP,
			SpecialAttack:  stats.SpecialAttack,
			SpecialDefense: stats.SpecialDefense,
			Speed:          stats.Speed,
		},
	}
}
