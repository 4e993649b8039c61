package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/cbodonnell/pairs/pkg/game/constants"
	"github.com/cbodonnell/pairs/pkg/game/rules"
	"github.com/cbodonnell/pairs/pkg/game/types"
	"github.com/cbodonnell/pairs/pkg/log"
	"github.com/cbodonnell/pairs/pkg/messages"
	"github.com/cbodonnell/pairs/pkg/metrics"
	"github.com/cbodonnell/pairs/pkg/queue"
	"github.com/cbodonnell/pairs/pkg/repositories/models"
	"github.com/cbodonnell/pairs/pkg/workers"
	"github.com/google/uuid"
)

// CardSource provides the card identities a deck is built from.
type CardSource interface {
	ListCards(ctx context.Context) ([]*models.Card, error)
}

// clientSession is the session owned by one connected client.
type clientSession struct {
	session *Session
	// sentVersion is the session version last pushed to the client.
	sentVersion uint64
}

// GameManager runs the game loop. Every session is owned by the loop
// goroutine; other goroutines talk to it through the queues and channels.
type GameManager struct {
	clientMessageQueue queue.Queue
	serverEventQueue   queue.Queue
	cardSource         CardSource
	rules              *rules.Rules
	rng                *rand.Rand
	saveResultChan     chan<- workers.SaveResultRequest
	serverMessageChan  chan<- workers.ServerMessage
	gameLoopInterval   time.Duration
	metrics            *metrics.Collector

	sessions map[uint32]*clientSession

	cards          []types.CardIdentity
	cardsFetchedAt time.Time
}

// NewGameManagerOptions contains options for creating a new GameManager.
type NewGameManagerOptions struct {
	ClientMessageQueue queue.Queue
	ServerEventQueue   queue.Queue
	CardSource         CardSource
	Rules              *rules.Rules
	Rand               *rand.Rand
	SaveResultChan     chan<- workers.SaveResultRequest
	ServerMessageChan  chan<- workers.ServerMessage
	GameLoopInterval   time.Duration
	Metrics            *metrics.Collector
}

func NewGameManager(opts NewGameManagerOptions) *GameManager {
	r := opts.Rules
	if r == nil {
		r = rules.Default()
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	interval := opts.GameLoopInterval
	if interval <= 0 {
		interval = constants.DefaultGameLoopInterval
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.NewCollector(metrics.Namespace)
	}
	return &GameManager{
		clientMessageQueue: opts.ClientMessageQueue,
		serverEventQueue:   opts.ServerEventQueue,
		cardSource:         opts.CardSource,
		rules:              r,
		rng:                rng,
		saveResultChan:     opts.SaveResultChan,
		serverMessageChan:  opts.ServerMessageChan,
		gameLoopInterval:   interval,
		metrics:            m,
		sessions:           make(map[uint32]*clientSession),
	}
}

// Start starts the game loop and blocks until ctx is done.
func (gm *GameManager) Start(ctx context.Context) error {
	ticker := time.NewTicker(gm.gameLoopInterval)
	defer ticker.Stop()
	defer gm.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case t := <-ticker.C:
			err := gm.gameTick(ctx, t)
			if err != nil {
				log.Error("Failed to run game tick: %v", err)
			}
		}
	}
}

// Stop tears down every session. It must be called from the loop goroutine
// or after the loop has exited.
func (gm *GameManager) Stop() {
	for clientID, cs := range gm.sessions {
		cs.session.Close()
		delete(gm.sessions, clientID)
	}
	gm.metrics.ActiveSessions.Set(0)
}

// gameTick runs one iteration of the game loop.
func (gm *GameManager) gameTick(ctx context.Context, now time.Time) error {
	start := time.Now()
	defer func() {
		gm.metrics.GameTickDuration.Observe(time.Since(start).Seconds())
	}()

	gm.processServerEvents(now)
	gm.processClientMessages(ctx, now)

	active := 0
	for _, cs := range gm.sessions {
		cs.session.Advance(now)
		if cs.session.Phase() == types.PhaseActive {
			active++
		}
	}
	gm.metrics.ActiveSessions.Set(float64(active))

	gm.pushSessionUpdates()

	return nil
}

// processServerEvents processes all pending connection events in the queue.
func (gm *GameManager) processServerEvents(now time.Time) {
	pendingEvents, err := gm.serverEventQueue.ReadAllMessages()
	if err != nil {
		log.Error("Failed to read server events: %v", err)
		return
	}
	for _, item := range pendingEvents {
		switch event := item.(type) {
		case *types.ConnectClientEvent:
			gm.handleConnectClient(event)
		case *types.DisconnectClientEvent:
			gm.handleDisconnectClient(event)
		default:
			log.Error("Unhandled server event type: %T", event)
		}
	}
}

func (gm *GameManager) handleConnectClient(event *types.ConnectClientEvent) {
	if _, ok := gm.sessions[event.ClientID]; ok {
		log.Warn("Client %d already has a session", event.ClientID)
		return
	}

	clientID := event.ClientID
	session := NewSession(NewSessionOptions{
		ID:     uuid.NewString(),
		Rules:  gm.rules,
		Rand:   gm.rng,
		Logger: log.Default().With("client", clientID),
		OnFinish: func(s *Session, result types.GameResult) {
			gm.handleResult(clientID, result)
		},
	})
	gm.sessions[clientID] = &clientSession{session: session}
	log.Debug("Session %s created for client %d", session.ID(), clientID)

	gm.sendMessage(clientID, messages.MessageTypeServerHello, &messages.ServerHello{ClientID: clientID})
}

func (gm *GameManager) handleDisconnectClient(event *types.DisconnectClientEvent) {
	cs, ok := gm.sessions[event.ClientID]
	if !ok {
		log.Warn("Client %d has no session to remove", event.ClientID)
		return
	}
	cs.session.Close()
	delete(gm.sessions, event.ClientID)
	log.Debug("Session %s removed for client %d", cs.session.ID(), event.ClientID)
}

// processClientMessages processes all pending client messages in the queue
// and applies them to the sender's session.
func (gm *GameManager) processClientMessages(ctx context.Context, now time.Time) {
	pendingMessages, err := gm.clientMessageQueue.ReadAllMessages()
	if err != nil {
		log.Error("Failed to read client messages: %v", err)
		return
	}
	for _, item := range pendingMessages {
		message, ok := item.(*messages.Message)
		if !ok {
			log.Error("Failed to cast message to messages.Message")
			continue
		}

		cs, ok := gm.sessions[message.ClientID]
		if !ok {
			log.Warn("Client %d has no session", message.ClientID)
			continue
		}

		switch message.Type {
		case messages.MessageTypeClientStart:
			gm.handleClientStart(ctx, now, message.ClientID, cs.session, message)
		case messages.MessageTypeClientReveal:
			gm.handleClientReveal(now, cs.session, message)
		case messages.MessageTypeClientRestart:
			cs.session.Restart()
		default:
			log.Error("Unhandled message type: %s", message.Type)
		}
	}
}

func (gm *GameManager) handleClientStart(ctx context.Context, now time.Time, clientID uint32, session *Session, message *messages.Message) {
	start := &messages.ClientStart{}
	if err := messages.DecodePayload(message, start); err != nil {
		log.Warn("Client %d sent an invalid start: %v", clientID, err)
		gm.sendError(clientID, "invalid start request")
		return
	}

	cfg, err := SessionConfigFromStart(start)
	if err != nil {
		gm.sendError(clientID, err.Error())
		return
	}

	identities, err := gm.identities(ctx, now)
	if err != nil {
		log.Error("Failed to load cards for client %d: %v", clientID, err)
		session.Restart()
		gm.sendError(clientID, "could not load cards, try again")
		return
	}

	if err := session.Start(cfg, identities); err != nil {
		if errors.Is(err, ErrNoPlayableDeck) {
			gm.sendError(clientID, "no cards available to play")
			return
		}
		gm.sendError(clientID, err.Error())
		return
	}
	gm.metrics.GamesStarted.WithLabelValues(string(cfg.Mode), string(cfg.Difficulty)).Inc()
}

func (gm *GameManager) handleClientReveal(now time.Time, session *Session, message *messages.Message) {
	reveal := &messages.ClientReveal{}
	if err := messages.DecodePayload(message, reveal); err != nil {
		log.Warn("Client %d sent an invalid reveal: %v", message.ClientID, err)
		gm.metrics.Reveals.WithLabelValues("invalid").Inc()
		return
	}

	if err := session.Reveal(now, reveal.Position); err != nil {
		log.Debug("Client %d: %v", message.ClientID, err)
		gm.metrics.Reveals.WithLabelValues("rejected").Inc()
		return
	}
	gm.metrics.Reveals.WithLabelValues("accepted").Inc()
}

// identities returns the card identities, refreshing the cache when stale.
func (gm *GameManager) identities(ctx context.Context, now time.Time) ([]types.CardIdentity, error) {
	if gm.cards != nil && now.Sub(gm.cardsFetchedAt) < constants.CardCacheTTL {
		return gm.cards, nil
	}

	ctx, cancel := context.WithTimeout(ctx, constants.CardSourceTimeout)
	defer cancel()
	cards, err := gm.cardSource.ListCards(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %v", err)
	}

	gm.cards = IdentitiesFromCards(cards)
	gm.cardsFetchedAt = now
	return gm.cards, nil
}

// handleResult runs when a session finishes. Wins and battles are handed
// to the result worker; losses are only counted.
func (gm *GameManager) handleResult(clientID uint32, result types.GameResult) {
	gm.metrics.GamesFinished.WithLabelValues(string(result.Mode), string(result.Outcome)).Inc()

	if !shouldPersist(result) {
		return
	}

	select {
	case gm.saveResultChan <- workers.SaveResultRequest{ClientID: clientID, Result: result}:
	default:
		log.Warn("Result channel is full, dropping result for client %d", clientID)
		gm.sendMessage(clientID, messages.MessageTypeServerNotice, &messages.ServerNotice{Message: workers.SaveFailureNotice})
	}
}

func shouldPersist(result types.GameResult) bool {
	switch result.Mode {
	case types.ModeMulti:
		return true
	case types.ModeSingle:
		return result.Outcome == types.OutcomeWin && result.Name != ""
	default:
		return false
	}
}

// pushSessionUpdates sends a snapshot of every session that changed since
// the last push.
func (gm *GameManager) pushSessionUpdates() {
	for clientID, cs := range gm.sessions {
		version := cs.session.Version()
		if version == cs.sentVersion {
			continue
		}
		if gm.sendMessage(clientID, messages.MessageTypeServerSession, ServerSessionUpdateFromSession(cs.session)) {
			cs.sentVersion = version
		}
	}
}

func (gm *GameManager) sendError(clientID uint32, reason string) {
	gm.sendMessage(clientID, messages.MessageTypeServerError, &messages.ServerError{Message: reason})
}

// sendMessage hands a message to the server message worker without blocking.
// It reports whether the message was queued.
func (gm *GameManager) sendMessage(clientID uint32, messageType messages.MessageType, payload interface{}) bool {
	msg, err := messages.NewMessage(0, messageType, payload)
	if err != nil {
		log.Error("Failed to build %s message: %v", messageType, err)
		return false
	}

	select {
	case gm.serverMessageChan <- workers.ServerMessage{ClientID: clientID, Message: msg}:
		return true
	default:
		log.Warn("Server message channel is full, dropping %s for client %d", messageType, clientID)
		return false
	}
}
