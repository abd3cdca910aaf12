package redis

import "fmt"

// Key prefix for all matchmaking data
const keyPrefix = "mach"

// playersKey is the HASH of player id -> PlayerRecord JSON
func playersKey() string {
	return fmt.Sprintf("%s:players", keyPrefix)
}

// waitingKey is the LIST of WaitingMatch JSON in insertion order
func waitingKey() string {
	return fmt.Sprintf("%s:waiting", keyPrefix)
}

// activeMatchesKey is the HASH of match id -> ActiveMatch JSON
func activeMatchesKey() string {
	return fmt.Sprintf("%s:active_matches", keyPrefix)
}

// allKeysPattern matches every key this package writes
func allKeysPattern() string {
	return keyPrefix + ":*"
}
