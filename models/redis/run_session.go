package redis

import "encoding/json"

// RunSession is a player's live run while it is being played. The engine
// state travels as raw JSON; only the socket layer deserializes it.
type RunSession struct {
	Username   string          `json:"username"`    // Matches game_profiles.username
	SocketID   string          `json:"socket_id"`   // For direct messaging
	Phase      string          `json:"phase"`       // Mirrors the engine phase for cheap filtering
	Run        json.RawMessage `json:"run"`         // Serialized engine RunState
	LastAction int64           `json:"last_action"` // Unix timestamp
}
