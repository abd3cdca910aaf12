package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// errNoPlayer is returned by commands that act for a player when none is known
var errNoPlayer = errors.New("no player id: run register first or pass --player")

// Config holds CLI configuration
type Config struct {
	ServerURL  string
	Player     uint64
	PlayerFile string
	Output     string
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL:  getEnvOrDefault("MACHCTL_SERVER", "http://localhost:7878"),
		PlayerFile: getEnvOrDefault("MACHCTL_PLAYER_FILE", defaultPlayerFile()),
		Output:     "text",
	}
}

// LoadPlayer loads the player id from file if not already set
func (c *Config) LoadPlayer() error {
	if c.Player != 0 {
		return nil
	}

	data, err := os.ReadFile(c.PlayerFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // Not registered yet is fine
		}
		return err
	}

	id, err := strconv.ParseUint(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid player file %s: %w", c.PlayerFile, err)
	}

	c.Player = id
	return nil
}

// SavePlayer saves the player id to the player file
func (c *Config) SavePlayer(id uint64) error {
	c.Player = id

	dir := filepath.Dir(c.PlayerFile)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	return os.WriteFile(c.PlayerFile, []byte(strconv.FormatUint(id, 10)), 0600)
}

// RequirePlayer returns the configured player id or errNoPlayer
func (c *Config) RequirePlayer() (uint64, error) {
	if c.Player == 0 {
		return 0, errNoPlayer
	}
	return c.Player, nil
}

func defaultPlayerFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".machctl/player"
	}
	return filepath.Join(home, ".machctl", "player")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
