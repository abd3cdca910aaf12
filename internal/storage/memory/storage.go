package memory

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/mcoot/machgame/internal/model"
	"github.com/mcoot/machgame/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// Records are copied on the way in and out so callers never share them.
type Storage struct {
	mu sync.RWMutex

	players       map[model.PlayerID]model.PlayerRecord
	waiting       []model.WaitingMatch
	activeMatches map[model.MatchID]model.ActiveMatch
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players:       make(map[model.PlayerID]model.PlayerRecord),
		activeMatches: make(map[model.MatchID]model.ActiveMatch),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.PlayerRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[player.ID] = *player
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.PlayerRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return &player, nil
}

func (s *Storage) CountPlayers(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.players), nil
}

// Waiting match operations

func (s *Storage) AppendWaitingMatch(ctx context.Context, match *model.WaitingMatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.waiting = append(s.waiting, *match)
	return nil
}

func (s *Storage) ListWaitingMatches(ctx context.Context) ([]*model.WaitingMatch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*model.WaitingMatch, len(s.waiting))
	for i := range s.waiting {
		match := s.waiting[i]
		result[i] = &match
	}
	return result, nil
}

func (s *Storage) ActivateMatch(ctx context.Context, match *model.ActiveMatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, waiting := range s.waiting {
		if waiting.ID == match.ID {
			s.waiting = slices.Delete(s.waiting, i, i+1)
			s.activeMatches[match.ID] = *match
			return nil
		}
	}
	return model.ErrMatchNotFound
}

// Active match operations

func (s *Storage) SaveActiveMatch(ctx context.Context, match *model.ActiveMatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeMatches[match.ID] = *match
	return nil
}

func (s *Storage) GetActiveMatch(ctx context.Context, id model.MatchID) (*model.ActiveMatch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	match, ok := s.activeMatches[id]
	if !ok {
		return nil, model.ErrMatchNotFound
	}
	return &match, nil
}

func (s *Storage) ListActiveMatches(ctx context.Context) ([]*model.ActiveMatch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := slices.Sorted(maps.Keys(s.activeMatches))
	result := make([]*model.ActiveMatch, 0, len(ids))
	for _, id := range ids {
		match := s.activeMatches[id]
		result = append(result, &match)
	}
	return result, nil
}
