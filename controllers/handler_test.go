package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"cleanify-be/config"
	"cleanify-be/controllers"
	"cleanify-be/routes"
	authUtils "cleanify-be/utils"
)

const (
	adminEmail   = "admin@cleanify.com"
	workerEmail  = "worker1@cleanify.com"
	citizenEmail = "citizen@cleanify.com"
)

// steppingClock advances one second per call so creation timestamps are
// distinct and ordered within a test.
func steppingClock() func() time.Time {
	var mu sync.Mutex
	t := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t = t.Add(time.Second)
		return t
	}
}

// newTestRouter wires a fresh seeded store behind the full route table.
func newTestRouter(t *testing.T) (*gin.Engine, *config.Store) {
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	store := config.NewStore(steppingClock(), func(n int) int { return 0 })
	h := controllers.New(store, t.TempDir())

	r := gin.New()
	routes.AuthRoutes(r, h)
	routes.BinRoutes(r, h)
	routes.AlertRoutes(r, h)
	routes.ComplaintRoutes(r, h)
	routes.TaskRoutes(r, h)
	routes.StatsRoutes(r, h)
	return r, store
}

func bearerFor(t *testing.T, email string) string {
	token, err := authUtils.GenerateToken(email)
	require.NoError(t, err)
	return "Bearer " + token
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeMap(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()

	var out []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, w.Code, "body: %s", w.Body.String())
}
