package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/cbodonnell/pairs/pkg/game"
	"github.com/cbodonnell/pairs/pkg/game/constants"
	"github.com/cbodonnell/pairs/pkg/game/rules"
	"github.com/cbodonnell/pairs/pkg/log"
	"github.com/cbodonnell/pairs/pkg/metrics"
	"github.com/cbodonnell/pairs/pkg/network"
	"github.com/cbodonnell/pairs/pkg/queue"
	"github.com/cbodonnell/pairs/pkg/repositories"
	"github.com/cbodonnell/pairs/pkg/version"
	"github.com/cbodonnell/pairs/pkg/workers"
)

func main() {
	port := flag.Int("port", 8888, "WebSocket port to listen on")
	allowOrigin := flag.String("allow-origin", "", "comma-separated list of allowed cross origin hosts")
	rulesFile := flag.String("rules", "", "TOML file overriding the game rules")
	logLevel := flag.String("log-level", "info", "Log level")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting game server version %s", version.Get())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gameRules := rules.Default()
	if *rulesFile != "" {
		gameRules, err = rules.Load(*rulesFile)
		if err != nil {
			panic(fmt.Sprintf("Failed to load rules: %v", err))
		}
		log.Info("Loaded rules from %s", *rulesFile)
	}

	connStr := os.Getenv("PAIRS_DATABASE_URL")
	if connStr == "" {
		connStr = "sqlite://pairs.db"
	}
	repository, err := repositories.NewRepositoryFromURL(ctx, connStr, "./migrations/sqlite")
	if err != nil {
		panic(fmt.Sprintf("Failed to create repository: %v", err))
	}
	defer repository.Close(ctx)

	collector := metrics.NewCollector(metrics.Namespace)

	clientManager := network.NewClientManager()
	clientMessageQueue := queue.NewInMemoryQueue(constants.ClientMessageQueueSize)
	serverEventQueue := queue.NewInMemoryQueue(constants.ServerEventQueueSize)

	networkManagerOpts := network.NewNetworkManagerOptions{
		ClientManager: clientManager,
		MessageQueue:  clientMessageQueue,
		WSPort:        *port,
		Metrics:       collector,
	}
	if *allowOrigin != "" {
		networkManagerOpts.OriginPatterns = strings.Split(*allowOrigin, ",")
	}
	tlsCertFile := os.Getenv("PAIRS_GAME_TLS_CERT_FILE")
	tlsKeyFile := os.Getenv("PAIRS_GAME_TLS_KEY_FILE")
	if tlsCertFile != "" && tlsKeyFile != "" {
		networkManagerOpts.WSServerTLS = &network.TLSConfig{
			CertFile: tlsCertFile,
			KeyFile:  tlsKeyFile,
		}
	}
	networkManager := network.NewNetworkManager(networkManagerOpts)
	go networkManager.Start(ctx)

	connectionEventWorker := workers.NewConnectionEventWorker(workers.NewConnectionEventWorkerOptions{
		ConnectionEventChan: clientManager.GetConnectionEventChan(),
		ServerEventQueue:    serverEventQueue,
	})
	go connectionEventWorker.Start(ctx)

	serverMessageChan := make(chan workers.ServerMessage, constants.ServerMessageChannelSize)
	serverMessageWorker := workers.NewServerMessageWorker(workers.NewServerMessageWorkerOptions{
		Sender:            networkManager,
		ServerMessageChan: serverMessageChan,
	})
	go serverMessageWorker.Start(ctx)

	saveResultChan := make(chan workers.SaveResultRequest, constants.SaveResultChannelSize)
	saveResultWorker := workers.NewSaveResultWorker(workers.NewSaveResultWorkerOptions{
		Repository:        repository,
		SaveResultChan:    saveResultChan,
		ServerMessageChan: serverMessageChan,
		Metrics:           collector,
	})
	go saveResultWorker.Start(ctx)

	gameManager := game.NewGameManager(game.NewGameManagerOptions{
		ClientMessageQueue: clientMessageQueue,
		ServerEventQueue:   serverEventQueue,
		CardSource:         repository,
		Rules:              gameRules,
		SaveResultChan:     saveResultChan,
		ServerMessageChan:  serverMessageChan,
		GameLoopInterval:   constants.DefaultGameLoopInterval,
		Metrics:            collector,
	})

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-interrupt
		log.Info("Received %s, shutting down", sig)
		cancel()
	}()

	log.Info("Starting game manager")
	if err := gameManager.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start game manager: %v", err))
	}
}
