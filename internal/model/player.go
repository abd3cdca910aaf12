package model

import "time"

// ID is a process-unique identifier. Players and matches draw from the same sequence.
type ID uint64

// PlayerID identifies a registered player
type PlayerID ID

// Player is the identity handle used as a key for everything a client does
type Player struct {
	ID PlayerID
}

// PlayerRecord holds the profile data for a Player
type PlayerRecord struct {
	ID           PlayerID  `json:"id"`
	Name         string    `json:"name"`
	RegisteredAt time.Time `json:"registered_at"`
}
