package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pokedex-labs/pokedex-api/internal/database/models"
)

// StatsRepository defines the interface for battle-stats data
// operations. Stats rows are addressed by the owning pokemon's id.
type StatsRepository interface {
	Create(stats *models.Stats) error
	FindByPokemonID(pokemonID uuid.UUID) (*models.Stats, error)
	DeleteByPokemonID(pokemonID uuid.UUID) (bool, error)
}

type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository creates a new stats repository instance
func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) Create(stats *models.Stats) error {
	return r.db.Create(stats).Error
}

func (r *statsRepository) FindByPokemonID(pokemonID uuid.UUID) (*models.Stats, error) {
	var stats models.Stats
	err := r.db.Where("pokemon_id = ?", pokemonID).First(&stats).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStatsNotFound
		}
		return nil, err
	}
	return &stats, nil
}

// DeleteByPokemonID removes the stats row(s) for a pokemon and
// reports whether anything was removed.
func (r *statsRepository) DeleteByPokemonID(pokemonID uuid.UUID) (bool, error) {
	result := r.db.Where("pokemon_id = ?", pokemonID).Delete(&models.Stats{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Repository errors
var (
	ErrStatsNotFound = errors.New("pokemon stats not found")
)
