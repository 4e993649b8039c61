package network

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/cbodonnell/pairs/pkg/log"
	"github.com/cbodonnell/pairs/pkg/messages"
	"github.com/cbodonnell/pairs/pkg/metrics"
	"github.com/cbodonnell/pairs/pkg/queue"
	"nhooyr.io/websocket"
)

type NetworkManager struct {
	ClientManager *ClientManager
	MessageQueue  queue.Queue
	WSServer      *WSServer
	metrics       *metrics.Collector
}

type NewNetworkManagerOptions struct {
	ClientManager  *ClientManager
	MessageQueue   queue.Queue
	WSPort         int
	WSServerTLS    *TLSConfig
	OriginPatterns []string
	Metrics        *metrics.Collector
}

func NewNetworkManager(options NewNetworkManagerOptions) *NetworkManager {
	m := options.Metrics
	if m == nil {
		m = metrics.NewCollector(metrics.Namespace)
	}
	return &NetworkManager{
		ClientManager: options.ClientManager,
		MessageQueue:  options.MessageQueue,
		WSServer: NewWSServer(NewWSServerOptions{
			Port:           options.WSPort,
			TLS:            options.WSServerTLS,
			OriginPatterns: options.OriginPatterns,
			Handlers: map[string]http.Handler{
				"/metrics": m.Handler(),
			},
		}),
		metrics: m,
	}
}

func (n *NetworkManager) Start(ctx context.Context) {
	n.WSServer.Start(ctx, n.handleConnect, n.handleDisconnect, n.handleMessage)
}

// Handler returns the game connection handler, for serving /ws elsewhere.
func (n *NetworkManager) Handler(ctx context.Context) http.Handler {
	return n.WSServer.Handler(ctx, n.handleConnect, n.handleDisconnect, n.handleMessage)
}

func (n *NetworkManager) handleConnect(conn *websocket.Conn, remoteAddr string) (uint32, error) {
	clientID, err := n.ClientManager.ConnectClient(conn, remoteAddr)
	if err != nil {
		return 0, err
	}
	n.metrics.ConnectedClients.Inc()
	log.Info("Client %d connected from %s", clientID, remoteAddr)
	return clientID, nil
}

func (n *NetworkManager) handleDisconnect(clientID uint32) {
	if !n.ClientManager.Exists(clientID) {
		log.Warn("Unknown client %d disconnected", clientID)
		return
	}
	n.ClientManager.DisconnectClient(clientID)
	n.metrics.ConnectedClients.Dec()
	log.Info("Client %d disconnected", clientID)
}

// handleMessage answers pings directly and queues everything else for the
// game loop. The client ID is taken from the connection, not the message.
func (n *NetworkManager) handleMessage(ctx context.Context, clientID uint32, message *messages.Message) {
	message.ClientID = clientID

	switch message.Type {
	case messages.MessageTypeClientPing:
		if err := n.handleClientPing(ctx, clientID); err != nil {
			log.Error("Failed to handle client ping: %v", err)
		}
	case messages.MessageTypeClientStart, messages.MessageTypeClientReveal, messages.MessageTypeClientRestart:
		if err := n.MessageQueue.Enqueue(message); err != nil {
			log.Error("Failed to enqueue message from client %d: %v", clientID, err)
			if errors.Is(err, queue.ErrQueueFull) {
				n.sendError(ctx, clientID, "server is busy, try again")
			}
		}
	default:
		log.Warn("Client %d sent unknown message type %q", clientID, message.Type)
		n.sendError(ctx, clientID, fmt.Sprintf("unknown message type %q", message.Type))
	}
}

func (n *NetworkManager) handleClientPing(ctx context.Context, clientID uint32) error {
	m := &messages.Message{
		ClientID: 0,
		Type:     messages.MessageTypeServerPong,
	}

	if err := n.SendMessageToClient(ctx, clientID, m); err != nil {
		return fmt.Errorf("failed to write pong message to client: %v", err)
	}

	return nil
}

func (n *NetworkManager) sendError(ctx context.Context, clientID uint32, reason string) {
	msg, err := messages.NewMessage(0, messages.MessageTypeServerError, &messages.ServerError{Message: reason})
	if err != nil {
		log.Error("Failed to build error message: %v", err)
		return
	}
	if err := n.SendMessageToClient(ctx, clientID, msg); err != nil {
		log.Error("Failed to send error message to client %d: %v", clientID, err)
	}
}

// SendMessageToClient writes msg to a connected client.
func (n *NetworkManager) SendMessageToClient(ctx context.Context, clientID uint32, msg *messages.Message) error {
	client, err := n.ClientManager.GetClient(clientID)
	if err != nil {
		return fmt.Errorf("failed to get client %d: %v", clientID, err)
	}

	if err := WriteMessageToWS(ctx, client.WSConn, msg); err != nil {
		return fmt.Errorf("failed to send message to client %d: %v", clientID, err)
	}

	return nil
}

// SendMessageToAll writes msg to every connected client.
func (n *NetworkManager) SendMessageToAll(ctx context.Context, msg *messages.Message) {
	for _, client := range n.ClientManager.GetClients() {
		if err := WriteMessageToWS(ctx, client.WSConn, msg); err != nil {
			log.Error("Failed to send message to client %d: %v", client.ID, err)
		}
	}
}
