package routes

import (
	"net/http"

	"github.com/Dosada05/placement-system/handlers"
	"github.com/Dosada05/placement-system/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	JWTSecret          []byte
	CORSOrigins        []string
	WriteRatePerMinute int
	WriteRateBurst     int
}

func SetupRoutes(
	router *chi.Mux,
	placementHandler *handlers.PlacementHandler,
	webSocketHandler *handlers.WebSocketHandler,
	opts Options,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	router.Get("/ws/tournaments/{tournamentID}", webSocketHandler.ServeWs)

	authenticate := middleware.Authenticate(opts.JWTSecret)
	writeLimit := middleware.RateLimit(opts.WriteRatePerMinute, opts.WriteRateBurst)

	router.Route("/placement-systems", func(r chi.Router) {
		r.Get("/", placementHandler.ListPlacementSystems)
		r.Post("/validate", placementHandler.ValidatePlacementSystem)
		r.Get("/{systemID}", placementHandler.GetPlacementSystem)
	})

	router.Route("/tournaments/{tournamentID}", func(r chi.Router) {
		r.Get("/placement-settings", placementHandler.GetPlacementSettings)
		r.Get("/placement-matches", placementHandler.ListPlacementMatches)
		r.Post("/placement-matches/preview", placementHandler.PreviewPlacementMatches)

		// Изменения доступны только администраторам и организаторам
		r.Group(func(r chi.Router) {
			r.Use(writeLimit)
			r.Use(authenticate)

			r.With(middleware.Authorize(middleware.ResourcePlacementSettings, middleware.ActionWrite)).
				Put("/placement-settings", placementHandler.UpdatePlacementSettings)

			r.With(middleware.Authorize(middleware.ResourcePlacementMatches, middleware.ActionWrite)).
				Post("/placement-matches", placementHandler.GeneratePlacementMatches)
			r.With(middleware.Authorize(middleware.ResourcePlacementMatches, middleware.ActionWrite)).
				Put("/placement-matches/{matchID}/result", placementHandler.RecordPlacementResult)
		})
	})
}
