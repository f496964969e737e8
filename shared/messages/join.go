package messages

import "github.com/leap-fish/necs/esync"

// JoinRequest is sent by a client after connecting to subscribe to the
// obstacle stream.
type JoinRequest struct {
	Version    string
	PlayerName string
}

// JoinAccepted is sent by the server when a client's join request is accepted.
// Definitions is the number of obstacle definitions the server registered;
// the client refuses to decode when its own registry differs.
type JoinAccepted struct {
	NetworkID   esync.NetworkId
	ServerName  string
	TickRate    int
	Definitions int
}

// JoinRejected is sent by the server when a client's join request is rejected.
type JoinRejected struct {
	Reason string
}
