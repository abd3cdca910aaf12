package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/machgame/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

// Player tests

func (s *StorageSuite) TestSaveAndGetPlayer() {
	registered := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	player := &model.PlayerRecord{ID: 1, Name: "Alice", RegisteredAt: registered}

	err := s.storage.SavePlayer(s.ctx, player)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayer(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal(player.ID, retrieved.ID)
	s.Equal("Alice", retrieved.Name)
	s.True(registered.Equal(retrieved.RegisteredAt))
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, 99)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestCountPlayers() {
	_ = s.storage.SavePlayer(s.ctx, &model.PlayerRecord{ID: 1, Name: "Alice"})
	_ = s.storage.SavePlayer(s.ctx, &model.PlayerRecord{ID: 2, Name: "Bob"})

	count, err := s.storage.CountPlayers(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, count)
}

func (s *StorageSuite) TestPlayersStoredInHash() {
	_ = s.storage.SavePlayer(s.ctx, &model.PlayerRecord{ID: 7, Name: "Alice"})

	s.True(s.mini.Exists("mach:players"))
	s.NotEmpty(s.mini.HGet("mach:players", "7"))
}

// Waiting match tests

func (s *StorageSuite) TestWaitingMatchesKeepInsertionOrder() {
	_ = s.storage.AppendWaitingMatch(s.ctx, &model.WaitingMatch{ID: 5, Name: "E", Host: 1})
	_ = s.storage.AppendWaitingMatch(s.ctx, &model.WaitingMatch{ID: 3, Name: "C", Host: 2})
	_ = s.storage.AppendWaitingMatch(s.ctx, &model.WaitingMatch{ID: 4, Name: "D", Host: 1})

	waiting, err := s.storage.ListWaitingMatches(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(waiting, 3)
	s.Equal(model.MatchID(5), waiting[0].ID)
	s.Equal(model.MatchID(3), waiting[1].ID)
	s.Equal(model.MatchID(4), waiting[2].ID)
	s.Equal(model.PlayerID(2), waiting[1].Host)
}

func (s *StorageSuite) TestActivateMatchMovesWaitingEntry() {
	_ = s.storage.AppendWaitingMatch(s.ctx, &model.WaitingMatch{ID: 1, Name: "A", Host: 9})
	_ = s.storage.AppendWaitingMatch(s.ctx, &model.WaitingMatch{ID: 2, Name: "B", Host: 9})
	_ = s.storage.AppendWaitingMatch(s.ctx, &model.WaitingMatch{ID: 3, Name: "C", Host: 9})

	err := s.storage.ActivateMatch(s.ctx, &model.ActiveMatch{ID: 2, PlayerOne: 9, PlayerTwo: 10})
	s.Require().NoError(err)

	waiting, _ := s.storage.ListWaitingMatches(s.ctx)
	s.Require().Len(waiting, 2)
	s.Equal("A", waiting[0].Name)
	s.Equal("C", waiting[1].Name)

	active, err := s.storage.GetActiveMatch(s.ctx, 2)
	s.Require().NoError(err)
	s.Equal(model.PlayerID(9), active.PlayerOne)
	s.Equal(model.PlayerID(10), active.PlayerTwo)
}

func (s *StorageSuite) TestActivateMatchWithoutWaitingEntry() {
	err := s.storage.ActivateMatch(s.ctx, &model.ActiveMatch{ID: 42, PlayerOne: 1, PlayerTwo: 2})
	s.ErrorIs(err, model.ErrMatchNotFound)

	_, err = s.storage.GetActiveMatch(s.ctx, 42)
	s.ErrorIs(err, model.ErrMatchNotFound)
}

// Active match tests

func (s *StorageSuite) TestSaveActiveMatchUpdatesScores() {
	_ = s.storage.SaveActiveMatch(s.ctx, &model.ActiveMatch{ID: 3, PlayerOne: 1, PlayerTwo: 2})
	_ = s.storage.SaveActiveMatch(s.ctx, &model.ActiveMatch{
		ID: 3, PlayerOne: 1, PlayerTwo: 2, Scores: model.Scores{PlayerOne: 4, PlayerTwo: 1},
	})

	retrieved, err := s.storage.GetActiveMatch(s.ctx, 3)
	s.Require().NoError(err)
	s.Equal(model.Scores{PlayerOne: 4, PlayerTwo: 1}, retrieved.Scores)
}

func (s *StorageSuite) TestListActiveMatchesOrderedByID() {
	for _, id := range []model.MatchID{9, 3, 6} {
		_ = s.storage.SaveActiveMatch(s.ctx, &model.ActiveMatch{ID: id})
	}

	matches, err := s.storage.ListActiveMatches(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(matches, 3)
	s.Equal(model.MatchID(3), matches[0].ID)
	s.Equal(model.MatchID(6), matches[1].ID)
	s.Equal(model.MatchID(9), matches[2].ID)
}

// Reset tests

func (s *StorageSuite) TestResetClearsPrefixOnly() {
	_ = s.storage.SavePlayer(s.ctx, &model.PlayerRecord{ID: 1, Name: "Alice"})
	_ = s.storage.AppendWaitingMatch(s.ctx, &model.WaitingMatch{ID: 2, Name: "B", Host: 1})
	_ = s.storage.SaveActiveMatch(s.ctx, &model.ActiveMatch{ID: 3, PlayerOne: 1, PlayerTwo: 1})
	s.Require().NoError(s.mini.Set("unrelated", "keep"))

	err := s.storage.Reset(s.ctx)
	s.Require().NoError(err)

	count, _ := s.storage.CountPlayers(s.ctx)
	s.Zero(count)
	waiting, _ := s.storage.ListWaitingMatches(s.ctx)
	s.Empty(waiting)
	active, _ := s.storage.ListActiveMatches(s.ctx)
	s.Empty(active)
	s.True(s.mini.Exists("unrelated"))
}

func (s *StorageSuite) TestResetOnEmptyDatabase() {
	s.NoError(s.storage.Reset(s.ctx))
}

func (s *StorageSuite) TestBackendFailureSurfaces() {
	s.mini.SetError("LOADING")

	_, err := s.storage.ListActiveMatches(s.ctx)
	s.Error(err)
}
