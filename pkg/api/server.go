package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/cbodonnell/pairs/pkg/api/handlers"
	"github.com/cbodonnell/pairs/pkg/api/middleware"
	"github.com/cbodonnell/pairs/pkg/log"
	"github.com/cbodonnell/pairs/pkg/metrics"
	"github.com/cbodonnell/pairs/pkg/repositories"
	"github.com/go-chi/cors"
	"github.com/gorilla/mux"
	"github.com/klauspost/compress/gzhttp"
)

type APIServer struct {
	server *http.Server
	tls    *TLSConfig
}

type TLSConfig struct {
	CertFile string
	KeyFile  string
}

type NewAPIServerOptions struct {
	Port       int
	TLS        *TLSConfig
	Repository repositories.Repository
	// StaticDir is served at / when set.
	StaticDir string
	// AllowedOrigins defaults to any origin.
	AllowedOrigins []string
	Metrics        *metrics.Collector
}

// NewAPIServer creates a new http.Server for handling API requests
func NewAPIServer(opts NewAPIServerOptions) *APIServer {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", opts.Port),
		Handler: NewRouter(opts),
	}
	return &APIServer{
		server: server,
		tls:    opts.TLS,
	}
}

// NewRouter builds the API handler with its middleware.
func NewRouter(opts NewAPIServerOptions) http.Handler {
	m := opts.Metrics
	if m == nil {
		m = metrics.NewCollector(metrics.Namespace)
	}
	allowedOrigins := opts.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	r := mux.NewRouter()
	r.Use(middleware.NewRequestIDMiddleware())
	r.Use(middleware.NewMetricsMiddleware(m))

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)
	r.Handle("/metrics", m.Handler()).Methods(http.MethodGet)

	r.HandleFunc("/cards", handlers.HandleListCards(opts.Repository)).Methods(http.MethodGet)
	r.HandleFunc("/hall-of-fame", handlers.HandleListSoloResults(opts.Repository)).Methods(http.MethodGet)
	r.HandleFunc("/hall-of-fame", handlers.HandleCreateSoloResult(opts.Repository)).Methods(http.MethodPost)
	r.HandleFunc("/hall-of-fame/{id:[0-9]+}", handlers.HandleGetSoloResult(opts.Repository)).Methods(http.MethodGet)
	r.HandleFunc("/battles", handlers.HandleListBattleResults(opts.Repository)).Methods(http.MethodGet)
	r.HandleFunc("/battles", handlers.HandleCreateBattleResult(opts.Repository)).Methods(http.MethodPost)
	r.HandleFunc("/battles/{id:[0-9]+}", handlers.HandleGetBattleResult(opts.Repository)).Methods(http.MethodGet)
	r.HandleFunc("/leaderboard/{kind}", handlers.HandleLeaderboard(opts.Repository)).Methods(http.MethodGet)

	if opts.StaticDir != "" {
		r.PathPrefix("/").Handler(http.FileServer(http.Dir(opts.StaticDir))).Methods(http.MethodGet, http.MethodHead)
	}

	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	})

	return corsHandler(gzhttp.GzipHandler(r))
}

// Start starts the APIServer
func (s *APIServer) Start() {
	var listenAndServe func() error
	if s.tls != nil {
		log.Info("API server listening on %s with TLS", s.server.Addr)
		listenAndServe = func() error {
			return s.server.ListenAndServeTLS(s.tls.CertFile, s.tls.KeyFile)
		}
	} else {
		log.Info("API server listening on %s", s.server.Addr)
		listenAndServe = s.server.ListenAndServe
	}
	if err := listenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			log.Info("API server closed")
			return
		}
		log.Error("API server error: %v", err)
	}
}

// Stop stops the APIServer
func (s *APIServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
