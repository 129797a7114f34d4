package service

import (
	"log/slog"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pokedex-labs/pokedex-api/internal/database/models"
	"github.com/pokedex-labs/pokedex-api/internal/database/repository"
)

// PokemonService defines the interface for pokemon business logic.
// Every operation spans the pokemon row and its stats row, so the
// service coordinates both repositories.
type PokemonService interface {
	CreateWithStats(pokemon *models.Pokemon, stats *models.Stats) error
	GetWithStats(id uuid.UUID) (*models.Pokemon, *models.Stats, error)
	DeleteWithStats(id uuid.UUID) error
}

type pokemonService struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewPokemonService creates a new pokemon service instance
func NewPokemonService(db *gorm.DB, logger *slog.Logger) PokemonService {
	return &pokemonService{
		db:     db,
		logger: logger,
	}
}

// CreateWithStats persists the pokemon and its stats row in a single
// transaction, so a failure on the second insert never leaves a
// pokemon without stats.
func (s *pokemonService) CreateWithStats(pokemon *models.Pokemon, stats *models.Stats) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := repository.NewPokemonRepository(tx).Create(pokemon); err != nil {
			return err
		}
		stats.PokemonID = pokemon.ID
		return repository.NewStatsRepository(tx).Create(stats)
	})
	if err != nil {
		s.logger.Error("❌ [PokemonService] Failed to create pokemon", "name", pokemon.Name, "error", err)
		return err
	}

	s.logger.Info("✅ [PokemonService] Pokemon created", "pokemon_id", pokemon.ID, "name", pokemon.Name)
	return nil
}

// GetWithStats looks up the pokemon and then its stats row. Either
// row missing surfaces as the matching not-found error.
func (s *pokemonService) GetWithStats(id uuid.UUID) (*models.Pokemon, *models.Stats, error) {
	pokemon, err := repository.NewPokemonRepository(s.db).FindByID(id)
	if err != nil {
		return nil, nil, err
	}

	stats, err := repository.NewStatsRepository(s.db).FindByPokemonID(pokemon.ID)
	if err != nil {
		return nil, nil, err
	}

	return pokemon, stats, nil
}

// DeleteWithStats removes the pokemon and its stats row in a single
// transaction. If either row is absent the whole delete rolls back
// and the matching not-found error is returned.
func (s *pokemonService) DeleteWithStats(id uuid.UUID) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		found, err := repository.NewPokemonRepository(tx).DeleteByID(id)
		if err != nil {
			return err
		}
		if !found {
			return repository.ErrPokemonNotFound
		}

		found, err = repository.NewStatsRepository(tx).DeleteByPokemonID(id)
		if err != nil {
			return err
		}
		if !found {
			return repository.ErrStatsNotFound
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("✅ [PokemonService] Pokemon deleted", "pokemon_id", id)
	return nil
}
