package request

// Variant payloads of a /game_call body. Each body is a JSON object with exactly one
// key naming the variant, e.g. {"JoinGame":{"player":2,"game_name":"A"}}.
// Pointer fields distinguish a missing field from a zero value.

// Variant names as they appear on the wire
const (
	VariantRegister      = "Register"
	VariantHostGame      = "HostGame"
	VariantJoinGame      = "JoinGame"
	VariantIncreaseScore = "IncreaseScore"
	VariantStateCheck    = "StateCheck"
)

// RegisterRequest is the payload of a Register action
type RegisterRequest struct {
	Name *string `json:"name"`
}

// PlayerRequest is the payload of HostGame, IncreaseScore and StateCheck actions
type PlayerRequest struct {
	Player *uint64 `json:"player"`
}

// JoinGameRequest is the payload of a JoinGame action
type JoinGameRequest struct {
	Player   *uint64 `json:"player"`
	GameName *string `json:"game_name"`
}
