package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	pantryapp "github.com/platewise/v1/internal/application/pantry"
	recipeapp "github.com/platewise/v1/internal/application/recipe"
	"github.com/platewise/v1/internal/infrastructure/config"
	"github.com/platewise/v1/internal/infrastructure/http/server"
	"github.com/platewise/v1/internal/matching"
	"github.com/platewise/v1/pkg/healthcheck"
	"github.com/platewise/v1/test/testutils"
)

func newTestServer(t *testing.T) *server.Server {
	t.Helper()

	cfg := &config.Config{
		App: config.AppConfig{
			Name:        "platewise-test",
			Version:     "test",
			Environment: "test",
		},
		Server: config.ServerConfig{
			Host: "127.0.0.1",
			Port: 0,
		},
		Monitoring: config.MonitoringConfig{
			EnableMetrics:   true,
			MetricsPath:     "/metrics",
			HealthCheckPath: "/health",
			ReadinessPath:   "/ready",
		},
	}

	log := zap.NewNop()
	recipeRepo := testutils.NewFakeRecipeRepository()
	pantryRepo := testutils.NewFakePantryRepository()
	cache := testutils.NewFakeCache()

	recipeService := recipeapp.NewRecipeService(
		recipeRepo,
		pantryRepo,
		cache,
		matching.NewScanner(matching.DefaultDietRules()),
		matching.NewFilter("en"),
		matching.NewDetector(matching.DefaultDetectorConfig()),
		log,
	)
	pantryService := pantryapp.NewPantryService(pantryRepo, log)

	return server.NewServer(cfg, log, recipeService, pantryService, healthcheck.New("test", log))
}

func doJSON(t *testing.T, s *server.Server, method, path string, userID string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestServer_HealthEndpoint(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}

func TestServer_MetricsEndpoint(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestServer_PantryRequiresIdentity(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/api/v1/pantry", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_RejectsNonJSONBody(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/pantry", bytes.NewBufferString("name=Milk"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-User-ID", uuid.New().String())

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestServer_PantryLifecycle(t *testing.T) {
	s := newTestServer(t)
	userID := uuid.New().String()

	rec := doJSON(t, s, http.MethodPost, "/api/v1/pantry", userID, map[string]interface{}{
		"name":     "Milk",
		"quantity": 1,
		"unit":     "l",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		ID   uuid.UUID `json:"id"`
		Name string    `json:"name"`
	}
	testutils.DecodeJSONResponse(t, rec, &created)
	assert.Equal(t, "Milk", created.Name)

	rec = doJSON(t, s, http.MethodGet, "/api/v1/pantry", userID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var listed struct {
		Total int `json:"total"`
	}
	testutils.DecodeJSONResponse(t, rec, &listed)
	assert.Equal(t, 1, listed.Total)

	rec = doJSON(t, s, http.MethodDelete, "/api/v1/pantry/"+created.ID.String(), userID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestServer_RecipeImportAndCoverage(t *testing.T) {
	s := newTestServer(t)
	userID := uuid.New().String()

	for _, name := range []string{"spaghetti", "eggs", "parmesan"} {
		rec := doJSON(t, s, http.MethodPost, "/api/v1/pantry", userID, map[string]interface{}{
			"name":     name,
			"quantity": 1,
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doJSON(t, s, http.MethodPost, "/api/v1/recipes/import", userID, map[string]interface{}{
		"title": "Carbonara",
		"text":  "Ingredients:\n- 200g spaghetti\n- 2 eggs\n- 50g parmesan\n- 100g pancetta\n\nInstructions:\n1. Boil the spaghetti.\n2. Whisk the eggs with parmesan.\n3. Combine and serve.",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var imported struct {
		ID    uuid.UUID `json:"id"`
		Title string    `json:"title"`
	}
	testutils.DecodeJSONResponse(t, rec, &imported)
	assert.Equal(t, "Carbonara", imported.Title)

	rec = doJSON(t, s, http.MethodGet, "/api/v1/recipes/"+imported.ID.String()+"/coverage", userID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var coverage struct {
		Available       []string `json:"available"`
		Missing         []string `json:"missing"`
		CoveragePercent int      `json:"coverage_percent"`
	}
	testutils.DecodeJSONResponse(t, rec, &coverage)
	assert.NotEmpty(t, coverage.Available)
	assert.Contains(t, coverage.Missing, "pancetta")
	assert.Greater(t, coverage.CoveragePercent, 0)
}

func TestServer_DetectNeedsNoIdentity(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/detect", "", map[string]interface{}{
		"text": "Ingredients:\n- 2 cups flour\n- 1 tsp salt\n\nInstructions:\n1. Mix the flour and salt.\n2. Bake for 20 minutes.",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var result struct {
		IsRecipe bool `json:"is_recipe"`
		Score    int  `json:"score"`
	}
	testutils.DecodeJSONResponse(t, rec, &result)
	assert.True(t, result.IsRecipe)
}

func TestServer_ParseReportsUnparsableText(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/parse", "", map[string]interface{}{
		"text": "Sure, I can help with that!",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var result struct {
		Ingredients []json.RawMessage `json:"ingredients"`
		Message     string            `json:"message"`
	}
	testutils.DecodeJSONResponse(t, rec, &result)
	assert.Empty(t, result.Ingredients)
	assert.NotEmpty(t, result.Message)
}

func TestServer_CoverageForTextReportsUnparsableText(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/coverage/text", uuid.New().String(), map[string]interface{}{
		"text": "Sure, I can help with that!",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var result struct {
		TotalRequired   int    `json:"total_required"`
		CoveragePercent int    `json:"coverage_percent"`
		Message         string `json:"message"`
	}
	testutils.DecodeJSONResponse(t, rec, &result)
	assert.Equal(t, 0, result.TotalRequired)
	assert.Equal(t, 100, result.CoveragePercent)
	assert.NotEmpty(t, result.Message)
}

func TestServer_UnknownRecipeReturnsNotFound(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/api/v1/recipes/"+uuid.New().String(), uuid.New().String(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
