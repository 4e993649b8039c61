package workers

import (
	"context"

	"github.com/cbodonnell/pairs/pkg/log"
	"github.com/cbodonnell/pairs/pkg/messages"
)

// ServerMessage is a message from the game loop to one client.
type ServerMessage struct {
	ClientID uint32
	Message  *messages.Message
}

// MessageSender delivers messages to connected clients.
type MessageSender interface {
	SendMessageToClient(ctx context.Context, clientID uint32, msg *messages.Message) error
}

type ServerMessageWorker struct {
	sender            MessageSender
	serverMessageChan <-chan ServerMessage
}

type NewServerMessageWorkerOptions struct {
	Sender            MessageSender
	ServerMessageChan <-chan ServerMessage
}

// NewServerMessageWorker creates a new ServerMessageWorker.
// The worker writes messages produced by the game loop to client
// connections so the loop never waits on the network.
func NewServerMessageWorker(opts NewServerMessageWorkerOptions) *ServerMessageWorker {
	return &ServerMessageWorker{
		sender:            opts.Sender,
		serverMessageChan: opts.ServerMessageChan,
	}
}

func (w *ServerMessageWorker) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-w.serverMessageChan:
			if err := w.sender.SendMessageToClient(ctx, msg.ClientID, msg.Message); err != nil {
				log.Error("Failed to send %s message to client %d: %v", msg.Message.Type, msg.ClientID, err)
			}
		}
	}
}
