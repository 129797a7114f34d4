package repository_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokedex-labs/pokedex-api/internal/database/models"
	"github.com/pokedex-labs/pokedex-api/internal/database/repository"
)

func newTestStats(pokemonID uuid.UUID) *models.Stats {
	return &models.Stats{
		PokemonID:      pokemonID,
		Attack:         55,
		Defense:        40,
		HP:             35,
		SpecialAttack:  50,
		SpecialDefense: 50,
		Speed:          90,
	}
}

func TestStatsRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	pokemonRepo := repository.NewPokemonRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	pokemon := newTestPokemon()
	require.NoError(t, pokemonRepo.Create(pokemon))

	stats := newTestStats(pokemon.ID)
	require.NoError(t, statsRepo.Create(stats))

	assert.NotEqual(t, uuid.Nil, stats.ID)
	assert.Equal(t, pokemon.ID, stats.PokemonID)
}

func TestStatsRepository_FindByPokemonID(t *testing.T) {
	db := setupTestDB(t)
	pokemonRepo := repository.NewPokemonRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	pokemon := newTestPokemon()
	require.NoError(t, pokemonRepo.Create(pokemon))
	require.NoError(t, statsRepo.Create(newTestStats(pokemon.ID)))

	stats, err := statsRepo.FindByPokemonID(pokemon.ID)
	require.NoError(t, err)
	assert.Equal(t, 55, stats.Attack)
	assert.Equal(t, 35, stats.HP)
	assert.Equal(t, 90, stats.Speed)

	_, err = statsRepo.FindByPokemonID(uuid.New())
	assert.ErrorIs(t, err, repository.ErrStatsNotFound)
}

func TestStatsRepository_DeleteByPokemonID(t *testing.T) {
	db := setupTestDB(t)
	pokemonRepo := repository.NewPokemonRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	pokemon := newTestPokemon()
	require.NoError(t, pokemonRepo.Create(pokemon))
	require.NoError(t, statsRepo.Create(newTestStats(pokemon.ID)))

	found, err := statsRepo.DeleteByPokemonID(pokemon.ID)
	require.NoError(t, err)
	assert.True(t, found)

	_, err = statsRepo.FindByPokemonID(pokemon.ID)
	assert.ErrorIs(t, err, repository.ErrStatsNotFound)

	found, err = statsRepo.DeleteByPokemonID(pokemon.ID)
	require.NoError(t, err)
	assert.False(t, found)
}
