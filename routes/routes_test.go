package routes

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Dosada05/placement-system/brackets"
	"github.com/Dosada05/placement-system/handlers"
	"github.com/Dosada05/placement-system/models"
	"github.com/Dosada05/placement-system/services"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

type stubService struct {
	services.PlacementService
}

func (stubService) ListTemplates(context.Context, services.TemplateFilter) []models.PlacementSystemConfiguration {
	return brackets.GetAllPlacementSystemTemplates()
}

func newTestRouter(opts Options) *chi.Mux {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := chi.NewRouter()
	SetupRoutes(router,
		handlers.NewPlacementHandler(stubService{}, logger),
		handlers.NewWebSocketHandler(brackets.NewHub(logger), []string{"*"}, logger),
		opts,
	)
	return router
}

func TestSetupRoutes_PublicCatalog(t *testing.T) {
	router := newTestRouter(Options{JWTSecret: []byte("secret"), CORSOrigins: []string{"*"}})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/placement-systems/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "placement_systems")
}

func TestSetupRoutes_WritesRequireToken(t *testing.T) {
	router := newTestRouter(Options{JWTSecret: []byte("secret"), CORSOrigins: []string{"*"}})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/tournaments/1/placement-settings", strings.NewReader(`{}`))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSetupRoutes_WritesAreRateLimited(t *testing.T) {
	router := newTestRouter(Options{
		JWTSecret:          []byte("secret"),
		CORSOrigins:        []string{"*"},
		WriteRatePerMinute: 1,
		WriteRateBurst:     2,
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/tournaments/1/placement-matches", nil))
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusUnauthorized, http.StatusUnauthorized, http.StatusTooManyRequests}, codes)

	// Чтение не ограничивается
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/placement-systems/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
