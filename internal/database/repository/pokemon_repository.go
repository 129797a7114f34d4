package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pokedex-labs/pokedex-api/internal/database/models"
)

// PokemonRepository defines the interface for pokemon data operations
type PokemonRepository interface {
	Create(pokemon *models.Pokemon) error
	FindByID(id uuid.UUID) (*models.Pokemon, error)
	DeleteByID(id uuid.UUID) (bool, error)
}

type pokemonRepository struct {
	db *gorm.DB
}

// NewPokemonRepository creates a new pokemon repository instance
func NewPokemonRepository(db *gorm.DB) PokemonRepository {
	return &pokemonRepository{db: db}
}

func (r *pokemonRepository) Create(pokemon *models.Pokemon) error {
	return r.db.Create(pokemon).Error
}

func (r *pokemonRepository) FindByID(id uuid.UUID) (*models.Pokemon, error) {
	var pokemon models.Pokemon
	err := r.db.Where("id = ?", id).First(&pokemon).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPokemonNotFound
		}
		return nil, err
	}
	return &pokemon, nil
}

// DeleteByID removes the pokemon row and reports whether a row
// actually existed.
func (r *pokemonRepository) DeleteByID(id uuid.UUID) (bool, error) {
	result := r.db.Where("id = ?", id).Delete(&models.Pokemon{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Repository errors
var (
	ErrPokemonNotFound = errors.New("pokemon not found")
)
