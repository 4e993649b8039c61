package workers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/cbodonnell/pairs/pkg/messages"
	"github.com/stretchr/testify/assert"
)

type recordingSender struct {
	lock sync.Mutex
	sent map[uint32][]messages.MessageType
	err  error
}

func (s *recordingSender) SendMessageToClient(ctx context.Context, clientID uint32, msg *messages.Message) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.sent == nil {
		s.sent = make(map[uint32][]messages.MessageType)
	}
	s.sent[clientID] = append(s.sent[clientID], msg.Type)
	return s.err
}

func (s *recordingSender) count() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	n := 0
	for _, msgs := range s.sent {
		n += len(msgs)
	}
	return n
}

func TestServerMessageWorker_Start(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "delivered"},
		{name: "send errors are logged", err: errors.New("client 2 not found")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &recordingSender{err: tt.err}
			serverMessageChan := make(chan ServerMessage, 3)
			w := NewServerMessageWorker(NewServerMessageWorkerOptions{
				Sender:            sender,
				ServerMessageChan: serverMessageChan,
			})

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			go w.Start(ctx)

			serverMessageChan <- ServerMessage{ClientID: 1, Message: &messages.Message{Type: messages.MessageTypeServerHello}}
			serverMessageChan <- ServerMessage{ClientID: 1, Message: &messages.Message{Type: messages.MessageTypeServerSession}}
			serverMessageChan <- ServerMessage{ClientID: 2, Message: &messages.Message{Type: messages.MessageTypeServerError}}

			assert.Eventually(t, func() bool { return sender.count() == 3 }, time.Second, 10*time.Millisecond)
			sender.lock.Lock()
			defer sender.lock.Unlock()
			assert.Equal(t, []messages.MessageType{messages.MessageTypeServerHello, messages.MessageTypeServerSession}, sender.sent[1])
		})
	}
}
