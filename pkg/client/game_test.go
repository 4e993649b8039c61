package client

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cbodonnell/pairs/pkg/game"
	"github.com/cbodonnell/pairs/pkg/messages"
	"github.com/cbodonnell/pairs/pkg/metrics"
	"github.com/cbodonnell/pairs/pkg/network"
	"github.com/cbodonnell/pairs/pkg/queue"
	"github.com/cbodonnell/pairs/pkg/repositories"
	"github.com/cbodonnell/pairs/pkg/workers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startGameServer runs the game server stack on an httptest server.
func startGameServer(t *testing.T) string {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	m := metrics.NewCollector("test")
	clientMessageQueue := queue.NewInMemoryQueue(64)
	serverEventQueue := queue.NewInMemoryQueue(64)
	serverMessageChan := make(chan workers.ServerMessage, 64)
	saveResultChan := make(chan workers.SaveResultRequest, 8)

	clientManager := network.NewClientManager()
	nm := network.NewNetworkManager(network.NewNetworkManagerOptions{
		ClientManager: clientManager,
		MessageQueue:  clientMessageQueue,
		Metrics:       m,
	})

	go workers.NewConnectionEventWorker(workers.NewConnectionEventWorkerOptions{
		ConnectionEventChan: clientManager.GetConnectionEventChan(),
		ServerEventQueue:    serverEventQueue,
	}).Start(ctx)
	go workers.NewServerMessageWorker(workers.NewServerMessageWorkerOptions{
		Sender:            nm,
		ServerMessageChan: serverMessageChan,
	}).Start(ctx)

	gm := game.NewGameManager(game.NewGameManagerOptions{
		ClientMessageQueue: clientMessageQueue,
		ServerEventQueue:   serverEventQueue,
		CardSource:         repositories.NewInMemoryRepository(repositories.DefaultCards()),
		SaveResultChan:     saveResultChan,
		ServerMessageChan:  serverMessageChan,
		GameLoopInterval:   5 * time.Millisecond,
		Metrics:            m,
	})
	go gm.Start(ctx)

	server := httptest.NewServer(nm.Handler(ctx))
	t.Cleanup(server.Close)
	return "ws" + strings.TrimPrefix(server.URL, "http")
}

// nextUpdate waits for the next session snapshot matching accept.
func nextUpdate(t *testing.T, c *GameClient, accept func(*messages.ServerSessionUpdate) bool) *messages.ServerSessionUpdate {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case msg, ok := <-c.Messages():
			require.True(t, ok, "connection closed")
			if msg.Type != messages.MessageTypeServerSession {
				continue
			}
			update := &messages.ServerSessionUpdate{}
			require.NoError(t, messages.DecodePayload(msg, update))
			if accept(update) {
				return update
			}
		case <-timeout:
			t.Fatal("timed out waiting for session update")
			return nil
		}
	}
}

func TestGameClient_play(t *testing.T) {
	url := startGameServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	c, err := DialGame(ctx, url)
	require.NoError(t, err)
	defer c.Close()
	assert.NotZero(t, c.ClientID())

	require.NoError(t, c.Ping())
	require.NoError(t, c.Start(&messages.ClientStart{Mode: "single", Difficulty: "easy"}))
	update := nextUpdate(t, c, func(u *messages.ServerSessionUpdate) bool { return u.Phase == "active" })
	assert.Len(t, update.Cards, 12)
	assert.Equal(t, 48, update.MaxReveals)

	require.NoError(t, c.Reveal(0))
	update = nextUpdate(t, c, func(u *messages.ServerSessionUpdate) bool { return u.Reveals == 1 })
	assert.NotEmpty(t, update.Cards[0].Token)

	require.NoError(t, c.Restart())
	nextUpdate(t, c, func(u *messages.ServerSessionUpdate) bool { return u.Phase == "idle" })
}

func TestGameClient_startError(t *testing.T) {
	url := startGameServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	c, err := DialGame(ctx, url)
	require.NoError(t, err)
	defer c.Close()

	require.NoError(t, c.Start(&messages.ClientStart{Mode: "multi", Difficulty: "easy", Players: []string{"ana"}}))
	timeout := time.After(5 * time.Second)
	for {
		select {
		case msg := <-c.Messages():
			if msg.Type != messages.MessageTypeServerError {
				continue
			}
			serverErr := &messages.ServerError{}
			require.NoError(t, messages.DecodePayload(msg, serverErr))
			assert.Contains(t, serverErr.Message, "two player names")
			return
		case <-timeout:
			t.Fatal("timed out waiting for error")
		}
	}
}

func TestDialGame_unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, err := DialGame(ctx, "ws://127.0.0.1:1/ws")
	assert.Error(t, err)
}
