package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessage(t *testing.T) {
	msg, err := NewMessage(7, MessageTypeClientReveal, &ClientReveal{Position: 3})
	require.NoError(t, err)
	assert.Equal(t, uint32(7), msg.ClientID)
	assert.JSONEq(t, `{"position":3}`, string(msg.Payload))

	msg, err = NewMessage(0, MessageTypeServerPong, nil)
	require.NoError(t, err)
	assert.Empty(t, msg.Payload)
}

func TestDeserializeMessage(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    *Message
		wantErr bool
	}{
		{
			name: "reveal",
			data: `{"clientID":1,"type":"reveal","payload":{"position":4}}`,
			want: &Message{ClientID: 1, Type: MessageTypeClientReveal, Payload: []byte(`{"position":4}`)},
		},
		{
			name: "no payload",
			data: `{"type":"restart"}`,
			want: &Message{Type: MessageTypeClientRestart},
		},
		{
			name:    "no type",
			data:    `{"clientID":1}`,
			wantErr: true,
		},
		{
			name:    "not json",
			data:    `reveal 4`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DeserializeMessage([]byte(tt.data))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodePayload(t *testing.T) {
	msg := &Message{Type: MessageTypeClientStart, Payload: []byte(`{"mode":"multi","difficulty":"hard","players":["ana","ben"]}`)}
	start := &ClientStart{}
	require.NoError(t, DecodePayload(msg, start))
	assert.Equal(t, &ClientStart{Mode: "multi", Difficulty: "hard", Players: []string{"ana", "ben"}}, start)

	assert.Error(t, DecodePayload(&Message{Type: MessageTypeClientReveal}, &ClientReveal{}))
	assert.Error(t, DecodePayload(&Message{Type: MessageTypeClientReveal, Payload: []byte(`{"position":"x"}`)}, &ClientReveal{}))
}
