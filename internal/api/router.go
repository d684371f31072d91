// Package api assembles the JSON API: routing, the HTTP server and the SSE
// stream endpoint.
package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/psellars/cardtable/internal/api/handler"
	apimiddleware "github.com/psellars/cardtable/internal/api/middleware"
	"github.com/psellars/cardtable/internal/middleware"
	"github.com/psellars/cardtable/internal/record"
	"github.com/psellars/cardtable/internal/services/crazyeights"
	"github.com/psellars/cardtable/internal/services/gofish"
	"github.com/psellars/cardtable/internal/services/president"
	"github.com/psellars/cardtable/internal/services/session"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger              *slog.Logger
	Records             *record.Adapter
	SessionController   session.ControllerInterface
	GoFishController    *gofish.Controller
	EightsController    *crazyeights.Controller
	PresidentController *president.Controller
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	sessionHandler := handler.NewSessionHandler(cfg.SessionController)
	goFishHandler := handler.NewGoFishHandler(cfg.GoFishController)
	eightsHandler := handler.NewEightsHandler(cfg.EightsController)
	presidentHandler := handler.NewPresidentHandler(cfg.PresidentController)
	streamHandler := handler.NewStreamHandler(cfg.Records)

	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := apimiddleware.Recovery(cfg.Logger)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Session lifecycle
	api.HandleFunc("/games", sessionHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/games/{code}", sessionHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/games/{code}", sessionHandler.Cancel).Methods(http.MethodDelete)
	api.HandleFunc("/games/{code}/join", sessionHandler.Join).Methods(http.MethodPost)
	api.HandleFunc("/games/{code}/leave", sessionHandler.Leave).Methods(http.MethodPost)
	api.HandleFunc("/games/{code}/start", sessionHandler.Start).Methods(http.MethodPost)
	api.HandleFunc("/games/{code}/reset", sessionHandler.Reset).Methods(http.MethodPost)

	// Live updates
	api.HandleFunc("/games/{code}/stream", streamHandler.Stream).Methods(http.MethodGet)

	// Go Fish moves
	api.HandleFunc("/games/{code}/gofish/ask", goFishHandler.Ask).Methods(http.MethodPost)
	api.HandleFunc("/games/{code}/gofish/draw", goFishHandler.Draw).Methods(http.MethodPost)

	// Crazy Eights moves
	api.HandleFunc("/games/{code}/eights/play", eightsHandler.Play).Methods(http.MethodPost)
	api.HandleFunc("/games/{code}/eights/choose-suit", eightsHandler.ChooseSuit).Methods(http.MethodPost)
	api.HandleFunc("/games/{code}/eights/draw", eightsHandler.Draw).Methods(http.MethodPost)
	api.HandleFunc("/games/{code}/eights/pickup", eightsHandler.PickUp).Methods(http.MethodPost)

	// President moves
	api.HandleFunc("/games/{code}/president/play", presidentHandler.Play).Methods(http.MethodPost)
	api.HandleFunc("/games/{code}/president/pass", presidentHandler.Pass).Methods(http.MethodPost)
	api.HandleFunc("/games/{code}/president/burn", presidentHandler.Burn).Methods(http.MethodPost)
	api.HandleFunc("/games/{code}/president/swap", presidentHandler.Swap).Methods(http.MethodPost)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
