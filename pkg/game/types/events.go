package types

// ConnectClientEvent tells the game loop a client joined and needs an idle session.
type ConnectClientEvent struct {
	ClientID uint32
}

// DisconnectClientEvent tells the game loop to tear down a client's session.
type DisconnectClientEvent struct {
	ClientID uint32
}
