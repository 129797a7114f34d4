package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokedex-labs/pokedex-api/internal/handler"
)

func TestUserCreate(t *testing.T) {
	router, _ := setupTestAPI(t)

	t.Run("success", func(t *testing.T) {
		w := doJSON(t, router, "POST", "/user/", "", map[string]string{
			"name":     "Ash",
			"email":    "ash@example.com",
			"password": "pikachu123",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		var resp handler.UserResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEqual(t, uuid.Nil, resp.ID)
		assert.Equal(t, "Ash", resp.Name)
		assert.Equal(t, "ash@example.com", resp.Email)

		// The response never carries the password, in any form
		var raw map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
		assert.NotContains(t, raw, "password")
		assert.NotContains(t, w.Body.String(), "pikachu123")
	})

	t.Run("invalid email", func(t *testing.T) {
		w := doJSON(t, router, "POST", "/user/", "", map[string]string{
			"name":     "Ash",
			"email":    "not-an-email",
			"password": "pikachu123",
		})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("password too short", func(t *testing.T) {
		w := doJSON(t, router, "POST", "/user/", "", map[string]string{
			"name":     "Ash",
			"email":    "ash2@example.com",
			"password": "abc",
		})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("missing name", func(t *testing.T) {
		w := doJSON(t, router, "POST", "/user/", "", map[string]string{
			"email":    "ash3@example.com",
			"password": "pikachu123",
		})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestUserGet(t *testing.T) {
	router, _ := setupTestAPI(t)

	created := doJSON(t, router, "POST", "/user/", "", map[string]string{
		"name":     "Ash",
		"email":    "ash@example.com",
		"password": "pikachu123",
	})
	require.Equal(t, http.StatusCreated, created.Code)

	var user handler.UserResponse
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &user))

	t.Run("roundtrip", func(t *testing.T) {
		w := doJSON(t, router, "GET", "/user/"+user.ID.String(), "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp handler.UserResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, user, resp)
	})

	t.Run("malformed id", func(t *testing.T) {
		w := doJSON(t, router, "GET", "/user/not-a-valid-id", "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "not-a-valid-id")
	})

	t.Run("absent id", func(t *testing.T) {
		w := doJSON(t, router, "GET", "/user/"+uuid.New().String(), "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
