package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cbodonnell/pairs/pkg/log"
	"github.com/cbodonnell/pairs/pkg/messages"
	"github.com/gorilla/websocket"
)

const (
	// MessageChannelSize is the number of server messages buffered for the reader
	MessageChannelSize = 64
	writeWait          = 5 * time.Second
)

// GameClient is a connection to the game server. Messages from the server
// are delivered on Messages until the connection closes.
type GameClient struct {
	conn     *websocket.Conn
	clientID uint32
	messages chan *messages.Message

	writeLock sync.Mutex
	closeOnce sync.Once
	done      chan struct{}
}

// DialGame connects to the game server and waits for its hello.
func DialGame(ctx context.Context, url string) (*GameClient, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to game server: %v", err)
	}
	conn.SetReadLimit(messages.MessageBufferSize * 16)

	c := &GameClient{
		conn:     conn,
		messages: make(chan *messages.Message, MessageChannelSize),
		done:     make(chan struct{}),
	}

	hello, err := c.read()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to read hello: %v", err)
	}
	if hello.Type != messages.MessageTypeServerHello {
		conn.Close()
		return nil, fmt.Errorf("expected hello, got %s", hello.Type)
	}
	payload := &messages.ServerHello{}
	if err := messages.DecodePayload(hello, payload); err != nil {
		conn.Close()
		return nil, err
	}
	c.clientID = payload.ClientID

	go c.readLoop()
	return c, nil
}

func (c *GameClient) ClientID() uint32 {
	return c.clientID
}

// Messages delivers server messages. It is closed when the connection ends.
func (c *GameClient) Messages() <-chan *messages.Message {
	return c.messages
}

func (c *GameClient) read() (*messages.Message, error) {
	_, data, err := c.conn.ReadMessage()
	if err != nil {
		return nil, err
	}
	return messages.DeserializeMessage(data)
}

func (c *GameClient) readLoop() {
	defer close(c.messages)
	for {
		msg, err := c.read()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Debug("Game connection closed: %v", err)
			}
			return
		}
		if msg.Type == messages.MessageTypeServerPong {
			continue
		}
		select {
		case c.messages <- msg:
		case <-c.done:
			return
		}
	}
}

// Start asks for a new game.
func (c *GameClient) Start(start *messages.ClientStart) error {
	return c.send(messages.MessageTypeClientStart, start)
}

// Reveal flips the card at position.
func (c *GameClient) Reveal(position int) error {
	return c.send(messages.MessageTypeClientReveal, &messages.ClientReveal{Position: position})
}

// Restart returns the session to idle.
func (c *GameClient) Restart() error {
	return c.send(messages.MessageTypeClientRestart, nil)
}

func (c *GameClient) Ping() error {
	return c.send(messages.MessageTypeClientPing, nil)
}

func (c *GameClient) send(messageType messages.MessageType, payload interface{}) error {
	msg, err := messages.NewMessage(c.clientID, messageType, payload)
	if err != nil {
		return err
	}
	b, err := messages.SerializeMessage(msg)
	if err != nil {
		return err
	}

	c.writeLock.Lock()
	defer c.writeLock.Unlock()
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := c.conn.WriteMessage(websocket.TextMessage, b); err != nil {
		return fmt.Errorf("failed to write %s message: %v", messageType, err)
	}
	return nil
}

// Close closes the connection.
func (c *GameClient) Close() error {
	var err error
	c.closeOnce.Do(func() {
		close(c.done)
		c.writeLock.Lock()
		c.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
		c.writeLock.Unlock()
		err = c.conn.Close()
	})
	return err
}
