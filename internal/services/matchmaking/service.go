// Package matchmaking owns the players, waiting matches and active matches, and
// applies every client action to them under one lock.
package matchmaking

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mcoot/machgame/internal/dependencies/clock"
	"github.com/mcoot/machgame/internal/dependencies/ids"
	"github.com/mcoot/machgame/internal/model"
	"github.com/mcoot/machgame/internal/services/naming"
	"github.com/mcoot/machgame/internal/storage"
)

// Service is the state store. Each exported operation holds mu from its first read
// to its last write, so every operation is atomic with respect to the others.
type Service struct {
	mu sync.Mutex

	storage storage.Storage
	ids     ids.Allocator
	clock   clock.Clock
	logger  *slog.Logger
}

// Stats is a point-in-time count of the store's collections
type Stats struct {
	Players        int
	WaitingMatches int
	ActiveMatches  int
}

// New creates a new matchmaking Service
func New(storage storage.Storage, ids ids.Allocator, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		ids:     ids,
		clock:   clock,
		logger:  logger,
	}
}

// Register creates a player record with a fresh identifier
func (s *Service) Register(ctx context.Context, name string) (model.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := &model.PlayerRecord{
		ID:           model.PlayerID(s.ids.Next()),
		Name:         name,
		RegisteredAt: s.clock.Now(),
	}
	if err := s.storage.SavePlayer(ctx, record); err != nil {
		return model.Player{}, fmt.Errorf("save player: %w", err)
	}

	s.logger.Info("player registered",
		slog.Uint64("player_id", uint64(record.ID)),
		slog.String("name", name),
	)
	return model.Player{ID: record.ID}, nil
}

// HostGame appends a new waiting match hosted by player. The player is not
// checked against the registered players, and may host any number of matches.
func (s *Service) HostGame(ctx context.Context, player model.PlayerID) (model.WaitingMatch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := model.MatchID(s.ids.Next())
	match := model.WaitingMatch{
		ID:       id,
		Name:     naming.NameFor(id),
		Host:     player,
		HostedAt: s.clock.Now(),
	}
	if err := s.storage.AppendWaitingMatch(ctx, &match); err != nil {
		return model.WaitingMatch{}, fmt.Errorf("append waiting match: %w", err)
	}

	s.logger.Info("match hosted",
		slog.Uint64("match_id", uint64(match.ID)),
		slog.String("match_name", match.Name),
		slog.Uint64("host_id", uint64(player)),
	)
	return match, nil
}

// JoinGame pairs player with the oldest waiting match called name. The host becomes
// player one and the joiner player two. ok is false when no waiting match has that
// name. A host joining their own match is allowed.
func (s *Service) JoinGame(ctx context.Context, player model.PlayerID, name string) (id model.MatchID, ok bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	waiting, err := s.storage.ListWaitingMatches(ctx)
	if err != nil {
		return 0, false, fmt.Errorf("list waiting matches: %w", err)
	}

	var target *model.WaitingMatch
	for _, w := range waiting {
		if w.Name == name {
			target = w
			break
		}
	}
	if target == nil {
		s.logger.Debug("join found no waiting match",
			slog.Uint64("player_id", uint64(player)),
			slog.String("match_name", name),
		)
		return 0, false, nil
	}

	match := &model.ActiveMatch{
		ID:        target.ID,
		PlayerOne: target.Host,
		PlayerTwo: player,
		StartedAt: s.clock.Now(),
	}
	if err := s.storage.ActivateMatch(ctx, match); err != nil {
		return 0, false, fmt.Errorf("activate match: %w", err)
	}

	if match.PlayerOne == match.PlayerTwo {
		s.logger.Warn("player joined their own match",
			slog.Uint64("match_id", uint64(match.ID)),
			slog.Uint64("player_id", uint64(player)),
		)
	}
	s.logger.Info("match started",
		slog.Uint64("match_id", uint64(match.ID)),
		slog.Uint64("player_one", uint64(match.PlayerOne)),
		slog.Uint64("player_two", uint64(match.PlayerTwo)),
	)
	return match.ID, true, nil
}

// IncreaseScore adds one to the player's score in the first active match (by
// ascending id) they take part in. A player in no match is ignored.
func (s *Service) IncreaseScore(ctx context.Context, player model.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	match, role, err := s.findActiveMatch(ctx, player)
	if err != nil {
		return err
	}
	if match == nil {
		return nil
	}

	switch role {
	case model.RolePlayerOne:
		match.Scores.PlayerOne++
	case model.RolePlayerTwo:
		match.Scores.PlayerTwo++
	}
	if err := s.storage.SaveActiveMatch(ctx, match); err != nil {
		return fmt.Errorf("save active match: %w", err)
	}
	return nil
}

// StateCheck reports whether the player is in an active match, hosting a waiting
// match, or neither. Active matches are looked at first.
func (s *Service) StateCheck(ctx context.Context, player model.PlayerID) (model.StateCheckResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	match, role, err := s.findActiveMatch(ctx, player)
	if err != nil {
		return nil, err
	}
	if match != nil {
		return model.InGame{Role: role, Scores: match.Scores}, nil
	}

	waiting, err := s.storage.ListWaitingMatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("list waiting matches: %w", err)
	}
	for _, w := range waiting {
		if w.Host == player {
			return model.Waiting{MatchName: w.Name}, nil
		}
	}
	return model.NotFound{}, nil
}

// Snapshot counts the store's collections
func (s *Service) Snapshot(ctx context.Context) (Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	players, err := s.storage.CountPlayers(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("count players: %w", err)
	}
	waiting, err := s.storage.ListWaitingMatches(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("list waiting matches: %w", err)
	}
	active, err := s.storage.ListActiveMatches(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("list active matches: %w", err)
	}

	return Stats{
		Players:        players,
		WaitingMatches: len(waiting),
		ActiveMatches:  len(active),
	}, nil
}

// findActiveMatch must be called with mu held. It returns nil when the player is in
// no active match.
func (s *Service) findActiveMatch(ctx context.Context, player model.PlayerID) (*model.ActiveMatch, model.Role, error) {
	matches, err := s.storage.ListActiveMatches(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list active matches: %w", err)
	}
	for _, match := range matches {
		if role, ok := match.RoleOf(player); ok {
			return match, role, nil
		}
	}
	return nil, 0, nil
}
