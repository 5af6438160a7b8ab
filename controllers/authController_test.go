package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginUser(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    adminEmail,
		"password": "admin123",
	})
	requireStatus(t, w, http.StatusOK)

	body := decodeMap(t, w)
	assert.NotEmpty(t, body["access_token"])
	assert.Equal(t, "bearer", body["token_type"])
	user := body["user"].(map[string]any)
	assert.Equal(t, "admin", user["role"])
	assert.Equal(t, adminEmail, user["email"])
}

func TestLoginUser_BadCredentials(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    adminEmail,
		"password": "nope",
	})
	requireStatus(t, w, http.StatusUnauthorized)

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "nobody@cleanify.com",
		"password": "admin123",
	})
	requireStatus(t, w, http.StatusUnauthorized)
}

func TestRegisterCitizen(t *testing.T) {
	r, store := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", map[string]any{
		"name":     "Neha Joshi",
		"email":    "neha@cleanify.com",
		"password": "citizen456",
	})
	requireStatus(t, w, http.StatusCreated)

	body := decodeMap(t, w)
	assert.NotEmpty(t, body["access_token"])
	user := body["user"].(map[string]any)
	assert.Equal(t, "citizen", user["role"])

	// The account is usable for login right away.
	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "neha@cleanify.com",
		"password": "citizen456",
	})
	requireStatus(t, w, http.StatusOK)

	// Duplicate email is rejected.
	w = doJSON(t, r, http.MethodPost, "/api/auth/register", "", map[string]any{
		"name":     "Neha Again",
		"email":    "neha@cleanify.com",
		"password": "citizen456",
	})
	requireStatus(t, w, http.StatusBadRequest)

	_ = store.With(func() error {
		require.NotNil(t, store.FindUserByEmail("neha@cleanify.com"))
		return nil
	})
}

func TestGetMe(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/auth/me", bearerFor(t, workerEmail), nil)
	requireStatus(t, w, http.StatusOK)

	body := decodeMap(t, w)
	assert.Equal(t, workerEmail, body["email"])
	assert.Equal(t, "worker", body["role"])
}

func TestAuthMiddleware_RejectsBadTokens(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/bins", "", nil)
	requireStatus(t, w, http.StatusUnauthorized)

	w = doJSON(t, r, http.MethodGet, "/api/bins", "Bearer not-a-token", nil)
	requireStatus(t, w, http.StatusUnauthorized)
}
