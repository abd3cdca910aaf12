package model

import "time"

// MatchID identifies a waiting or active match
type MatchID ID

// Role is a player's slot in an active match
type Role int

const (
	RolePlayerOne Role = 1
	RolePlayerTwo Role = 2
)

// WaitingMatch is an open offer to play, created by the host
type WaitingMatch struct {
	ID       MatchID   `json:"id"`
	Name     string    `json:"name"`
	Host     PlayerID  `json:"host"`
	HostedAt time.Time `json:"hosted_at"`
}

// Scores is the pair of counters kept for an active match
type Scores struct {
	PlayerOne int32 `json:"player_one"`
	PlayerTwo int32 `json:"player_two"`
}

// ActiveMatch is a paired match. PlayerOne is the host of the waiting match it came from.
// Nothing stops PlayerOne and PlayerTwo being the same player.
type ActiveMatch struct {
	ID        MatchID   `json:"id"`
	PlayerOne PlayerID  `json:"player_one"`
	PlayerTwo PlayerID  `json:"player_two"`
	Scores    Scores    `json:"scores"`
	StartedAt time.Time `json:"started_at"`
}

// RoleOf returns the slot the player occupies, checking player one first
func (m *ActiveMatch) RoleOf(player PlayerID) (Role, bool) {
	switch player {
	case m.PlayerOne:
		return RolePlayerOne, true
	case m.PlayerTwo:
		return RolePlayerTwo, true
	default:
		return 0, false
	}
}
