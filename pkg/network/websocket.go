package network

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cbodonnell/pairs/pkg/log"
	"github.com/cbodonnell/pairs/pkg/messages"
	"nhooyr.io/websocket"
)

const (
	// WriteTimeout bounds a single write to a client connection
	WriteTimeout = 5 * time.Second
)

// WSServer serves the game WebSocket endpoint at /ws together with /health
// and any extra handlers on the same listener.
type WSServer struct {
	mux            *http.ServeMux
	server         *http.Server
	tls            *TLSConfig
	originPatterns []string
}

type TLSConfig struct {
	CertFile string
	KeyFile  string
}

type NewWSServerOptions struct {
	Port int
	TLS  *TLSConfig
	// OriginPatterns lists the allowed cross origin hosts. Empty allows only same origin.
	OriginPatterns []string
	// Handlers are mounted next to /ws, e.g. "/metrics".
	Handlers map[string]http.Handler
}

// ConnectHandler registers a new connection and returns its client ID.
type ConnectHandler func(conn *websocket.Conn, remoteAddr string) (uint32, error)

// DisconnectHandler is called once when a connection ends.
type DisconnectHandler func(clientID uint32)

// MessageHandler is called for every message read from a connection.
type MessageHandler func(ctx context.Context, clientID uint32, message *messages.Message)

// NewWSServer creates a new WebSocket server.
func NewWSServer(opts NewWSServerOptions) *WSServer {
	s := &WSServer{
		tls:            opts.TLS,
		originPatterns: opts.OriginPatterns,
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	for pattern, handler := range opts.Handlers {
		mux.Handle(pattern, handler)
	}
	s.mux = mux
	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", opts.Port),
		Handler: mux,
	}
	return s
}

// Handler returns the handler accepting game connections.
func (s *WSServer) Handler(ctx context.Context, connectHandler ConnectHandler, disconnectHandler DisconnectHandler, messageHandler MessageHandler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: s.originPatterns,
		})
		if err != nil {
			log.Error("Failed to accept WebSocket connection: %v", err)
			return
		}
		conn.SetReadLimit(messages.MessageBufferSize)
		log.Debug("New WebSocket connection from %s", r.RemoteAddr)

		clientID, err := connectHandler(conn, r.RemoteAddr)
		if err != nil {
			log.Error("Failed to connect client from %s: %v", r.RemoteAddr, err)
			conn.Close(websocket.StatusInternalError, "failed to connect")
			return
		}

		s.handleWSConnection(ctx, conn, clientID, disconnectHandler, messageHandler)
	})
}

// Start starts the WebSocket server and blocks until it stops.
func (s *WSServer) Start(ctx context.Context, connectHandler ConnectHandler, disconnectHandler DisconnectHandler, messageHandler MessageHandler) {
	s.mux.Handle("/ws", s.Handler(ctx, connectHandler, disconnectHandler, messageHandler))

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.server.Shutdown(shutdownCtx)
	}()

	var listenAndServe func() error
	if s.tls != nil {
		log.Info("WebSocket server listening on %s with TLS", s.server.Addr)
		listenAndServe = func() error {
			return s.server.ListenAndServeTLS(s.tls.CertFile, s.tls.KeyFile)
		}
	} else {
		log.Info("WebSocket server listening on %s", s.server.Addr)
		listenAndServe = s.server.ListenAndServe
	}
	if err := listenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			log.Info("WebSocket server closed")
			return
		}
		log.Error("WebSocket server error: %v", err)
	}
}

// handleWSConnection reads messages until the connection closes.
func (s *WSServer) handleWSConnection(ctx context.Context, conn *websocket.Conn, clientID uint32, disconnectHandler DisconnectHandler, messageHandler MessageHandler) {
	ctx, cancel := context.WithCancel(ctx)
	defer func() {
		cancel()
		disconnectHandler(clientID)
		conn.Close(websocket.StatusNormalClosure, "")
	}()

	for {
		message, err := ReadMessageFromWS(ctx, conn)
		if err != nil {
			if errors.Is(err, errMalformedMessage) {
				log.Warn("Client %d sent a malformed message: %v", clientID, err)
				continue
			}
			status := websocket.CloseStatus(err)
			if status != websocket.StatusNormalClosure && status != websocket.StatusGoingAway {
				log.Debug("Error reading WebSocket message from client %d: %v", clientID, err)
			}
			log.Trace("Connection closed for client %d", clientID)
			return
		}

		messageHandler(ctx, clientID, message)
	}
}

var errMalformedMessage = errors.New("malformed message")

// WriteMessageToWS writes a Message to a WebSocket connection
func WriteMessageToWS(ctx context.Context, conn *websocket.Conn, msg *messages.Message) error {
	b, err := messages.SerializeMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to serialize message: %v", err)
	}

	ctx, cancel := context.WithTimeout(ctx, WriteTimeout)
	defer cancel()
	if err := conn.Write(ctx, websocket.MessageText, b); err != nil {
		return fmt.Errorf("failed to write message to WebSocket connection: %v", err)
	}

	return nil
}

// ReadMessageFromWS reads a Message from a WebSocket connection.
// A frame that does not decode returns an error wrapping errMalformedMessage
// and leaves the connection usable.
func ReadMessageFromWS(ctx context.Context, conn *websocket.Conn) (*messages.Message, error) {
	_, data, err := conn.Read(ctx)
	if err != nil {
		return nil, err
	}

	msg, err := messages.DeserializeMessage(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errMalformedMessage, err)
	}

	return msg, nil
}
