package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/cbodonnell/pairs/pkg/api"
	"github.com/cbodonnell/pairs/pkg/log"
	"github.com/cbodonnell/pairs/pkg/metrics"
	"github.com/cbodonnell/pairs/pkg/repositories"
	"github.com/cbodonnell/pairs/pkg/version"
)

func main() {
	port := flag.Int("port", 8080, "port to listen on")
	allowOrigin := flag.String("allow-origin", "*", "comma-separated list of allowed origins")
	staticDir := flag.String("static-dir", "", "directory of static files served at /")
	logLevel := flag.String("log-level", "info", "Log level")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting api server version %s", version.Get())
	ctx := context.Background()

	connStr := os.Getenv("PAIRS_DATABASE_URL")
	if connStr == "" {
		connStr = "sqlite://pairs.db"
	}
	repository, err := repositories.NewRepositoryFromURL(ctx, connStr, "./migrations/sqlite")
	if err != nil {
		panic(fmt.Sprintf("Failed to create repository: %v", err))
	}
	defer repository.Close(ctx)

	apiServerOpts := api.NewAPIServerOptions{
		Port:           *port,
		Repository:     repository,
		StaticDir:      *staticDir,
		AllowedOrigins: strings.Split(*allowOrigin, ","),
		Metrics:        metrics.NewCollector(metrics.Namespace),
	}
	tlsCertFile := os.Getenv("PAIRS_API_TLS_CERT_FILE")
	tlsKeyFile := os.Getenv("PAIRS_API_TLS_KEY_FILE")
	if tlsCertFile != "" && tlsKeyFile != "" {
		apiServerOpts.TLS = &api.TLSConfig{
			CertFile: tlsCertFile,
			KeyFile:  tlsKeyFile,
		}
	}
	server := api.NewAPIServer(apiServerOpts)
	go server.Start()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	<-interrupt

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := server.Stop(shutdownCtx); err != nil {
		log.Error("Failed to stop server: %v", err)
	}
}
