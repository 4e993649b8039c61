package workers

import (
	"context"
	"fmt"
	"time"

	"github.com/cbodonnell/pairs/pkg/game/types"
	"github.com/cbodonnell/pairs/pkg/log"
	"github.com/cbodonnell/pairs/pkg/messages"
	"github.com/cbodonnell/pairs/pkg/metrics"
	"github.com/cbodonnell/pairs/pkg/repositories"
	"github.com/cbodonnell/pairs/pkg/repositories/models"
	"github.com/sony/gobreaker"
)

const (
	// DefaultSaveTimeout bounds a single result write
	DefaultSaveTimeout = 5 * time.Second
	// SaveFailureNotice is sent to the client when its result was not stored
	SaveFailureNotice = "your result could not be saved"
)

// SaveResultRequest asks for a finished game to be stored.
type SaveResultRequest struct {
	ClientID uint32
	Result   types.GameResult
}

type SaveResultWorker struct {
	repository        repositories.Repository
	saveResultChan    <-chan SaveResultRequest
	serverMessageChan chan<- ServerMessage
	breaker           *gobreaker.CircuitBreaker
	timeout           time.Duration
	metrics           *metrics.Collector
}

type NewSaveResultWorkerOptions struct {
	Repository        repositories.Repository
	SaveResultChan    <-chan SaveResultRequest
	ServerMessageChan chan<- ServerMessage
	Timeout           time.Duration
	// BreakerSettings overrides the circuit breaker defaults when set.
	BreakerSettings *gobreaker.Settings
	Metrics         *metrics.Collector
}

// DefaultBreakerSettings trips after five consecutive failed writes and
// probes the store again after thirty seconds.
func DefaultBreakerSettings() gobreaker.Settings {
	return gobreaker.Settings{
		Name:        "result-store",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Warn("Circuit breaker %s changed from %s to %s", name, from, to)
		},
	}
}

// NewSaveResultWorker creates a new SaveResultWorker.
// The worker persists finished games best-effort: a failed write is
// logged and reported to the client as a notice, never retried.
func NewSaveResultWorker(opts NewSaveResultWorkerOptions) *SaveResultWorker {
	settings := DefaultBreakerSettings()
	if opts.BreakerSettings != nil {
		settings = *opts.BreakerSettings
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultSaveTimeout
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.NewCollector(metrics.Namespace)
	}
	return &SaveResultWorker{
		repository:        opts.Repository,
		saveResultChan:    opts.SaveResultChan,
		serverMessageChan: opts.ServerMessageChan,
		breaker:           gobreaker.NewCircuitBreaker(settings),
		timeout:           timeout,
		metrics:           m,
	}
}

func (w *SaveResultWorker) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case req := <-w.saveResultChan:
			w.saveResult(ctx, req)
		}
	}
}

func (w *SaveResultWorker) saveResult(ctx context.Context, req SaveResultRequest) {
	kind := "solo"
	if req.Result.Mode == types.ModeMulti {
		kind = "battle"
	}

	_, err := w.breaker.Execute(func() (interface{}, error) {
		ctx, cancel := context.WithTimeout(ctx, w.timeout)
		defer cancel()
		return nil, w.persist(ctx, req.Result)
	})
	if err != nil {
		log.Error("Failed to save %s result for client %d: %v", kind, req.ClientID, err)
		w.metrics.ResultSaves.WithLabelValues(kind, "error").Inc()
		w.notify(req.ClientID, SaveFailureNotice)
		return
	}

	log.Debug("Saved %s result for client %d", kind, req.ClientID)
	w.metrics.ResultSaves.WithLabelValues(kind, "ok").Inc()
}

func (w *SaveResultWorker) persist(ctx context.Context, result types.GameResult) error {
	switch result.Mode {
	case types.ModeSingle:
		if _, err := w.repository.SaveSoloResult(ctx, SoloResultFromGameResult(result)); err != nil {
			return err
		}
	case types.ModeMulti:
		battle, err := BattleResultFromGameResult(result)
		if err != nil {
			return err
		}
		if _, err := w.repository.SaveBattleResult(ctx, battle); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown mode %q", result.Mode)
	}
	return nil
}

func (w *SaveResultWorker) notify(clientID uint32, notice string) {
	msg, err := messages.NewMessage(0, messages.MessageTypeServerNotice, &messages.ServerNotice{Message: notice})
	if err != nil {
		log.Error("Failed to build notice: %v", err)
		return
	}
	select {
	case w.serverMessageChan <- ServerMessage{ClientID: clientID, Message: msg}:
	default:
		log.Warn("Server message channel is full, dropping notice for client %d", clientID)
	}
}

func SoloResultFromGameResult(result types.GameResult) *models.SoloResult {
	return &models.SoloResult{
		Name:        result.Name,
		Difficulty:  string(result.Difficulty),
		TimeSeconds: result.ElapsedSeconds,
		Reveals:     result.TotalReveals,
	}
}

func BattleResultFromGameResult(result types.GameResult) (*models.BattleResult, error) {
	if len(result.Players) != 2 {
		return nil, fmt.Errorf("battle result needs two players, got %d", len(result.Players))
	}
	return &models.BattleResult{
		Player1:      result.Players[0].Name,
		Player2:      result.Players[1].Name,
		Player1Score: result.Players[0].MatchedCount,
		Player2Score: result.Players[1].MatchedCount,
		Winner:       result.Winner,
		Difficulty:   string(result.Difficulty),
	}, nil
}
