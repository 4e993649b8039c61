package constants

import "time"

const (
	// DefaultGameLoopInterval is the period of the game loop tick
	DefaultGameLoopInterval = 50 * time.Millisecond
	// CardSourceTimeout bounds a card catalogue fetch from the game loop
	CardSourceTimeout = 2 * time.Second
	// CardCacheTTL is how long fetched card identities are reused
	CardCacheTTL = time.Minute

	// ClientMessageQueueSize is the capacity of the client message queue
	ClientMessageQueueSize = 4096
	// ServerEventQueueSize is the capacity of the server event queue
	ServerEventQueueSize = 1024
	// ServerMessageChannelSize is the buffer of the outgoing server message channel
	ServerMessageChannelSize = 1024
	// SaveResultChannelSize is the buffer of the result persistence channel
	SaveResultChannelSize = 256
)
