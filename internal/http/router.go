package http

import (
	nethttp "net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/preston-bernstein/nba-daily-deck/internal/http/handlers"
	"github.com/preston-bernstein/nba-daily-deck/internal/http/middleware"
)

// NewRouter registers HTTP routes and wraps them with the CORS allow-list.
func NewRouter(handler *handlers.Handler, allowedOrigins []string) nethttp.Handler {
	router := mux.NewRouter()
	router.HandleFunc("/health", handler.Health).Methods(nethttp.MethodGet)
	router.HandleFunc("/ready", handler.Ready).Methods(nethttp.MethodGet)
	router.HandleFunc("/api/daily-deck", handler.DailyDeck).Methods(nethttp.MethodGet)
	router.HandleFunc("/api/daily-deck/sample", handler.Sample).Methods(nethttp.MethodGet)
	router.NotFoundHandler = nethttp.HandlerFunc(handler.NotFound)
	router.MethodNotAllowedHandler = nethttp.HandlerFunc(handler.MethodNotAllowed)

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{nethttp.MethodGet, nethttp.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", middleware.HeaderRequestID},
		ExposedHeaders:   []string{middleware.HeaderRequestID, handlers.HeaderCache},
		AllowCredentials: true,
	})
	return c.Handler(router)
}
