package messages

import (
	"encoding/json"

	"github.com/cbodonnell/pairs/pkg/game/types"
)

const (
	// MessageBufferSize represents the maximum size of a message read from a client
	MessageBufferSize = 4096
)

type MessageType string

// Message types
const (
	MessageTypeServerHello   MessageType = "hello"
	MessageTypeClientPing    MessageType = "ping"
	MessageTypeServerPong    MessageType = "pong"
	MessageTypeClientStart   MessageType = "start"
	MessageTypeClientReveal  MessageType = "reveal"
	MessageTypeClientRestart MessageType = "restart"
	MessageTypeServerSession MessageType = "session"
	MessageTypeServerNotice  MessageType = "notice"
	MessageTypeServerError   MessageType = "error"
)

// Message represents a generic message for serialization/deserialization.
// ClientID 0 means the message is from the server.
type Message struct {
	ClientID uint32          `json:"clientID"`
	Type     MessageType     `json:"type"`
	Payload  json.RawMessage `json:"payload,omitempty"`
}

type ServerHello struct {
	ClientID uint32 `json:"clientID"`
}

// ClientStart asks for a new game. Players holds the two names of a battle;
// Name is the optional solo player name for the hall of fame.
type ClientStart struct {
	Mode       string   `json:"mode"`
	Difficulty string   `json:"difficulty"`
	Theme      string   `json:"theme,omitempty"`
	Players    []string `json:"players,omitempty"`
	Name       string   `json:"name,omitempty"`
}

type ClientReveal struct {
	Position int `json:"position"`
}

// CardView is a card as the client sees it. Name and Token are empty while
// the card is face down.
type CardView struct {
	Position int             `json:"position"`
	State    types.FaceState `json:"state"`
	Name     string          `json:"name,omitempty"`
	Token    string          `json:"token,omitempty"`
}

// ServerSessionUpdate is a full snapshot of a client's session.
type ServerSessionUpdate struct {
	Version        uint64            `json:"version"`
	Phase          types.Phase       `json:"phase"`
	Mode           types.Mode        `json:"mode,omitempty"`
	Difficulty     types.Difficulty  `json:"difficulty,omitempty"`
	Theme          string            `json:"theme,omitempty"`
	Cards          []CardView        `json:"cards"`
	Reveals        int               `json:"reveals"`
	MaxReveals     int               `json:"maxReveals,omitempty"`
	ElapsedSeconds int               `json:"elapsedSeconds"`
	Players        []types.Player    `json:"players,omitempty"`
	Turn           int               `json:"turn"`
	MatchedPairs   int               `json:"matchedPairs"`
	TotalPairs     int               `json:"totalPairs"`
	Result         *types.GameResult `json:"result,omitempty"`
}

// ServerNotice carries information that must not interrupt play.
type ServerNotice struct {
	Message string `json:"message"`
}

type ServerError struct {
	Message string `json:"message"`
}
