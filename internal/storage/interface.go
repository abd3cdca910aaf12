package storage

import (
	"context"

	"github.com/mcoot/machgame/internal/model"
)

// Storage holds the three matchmaking collections. Implementations make each call
// safe on its own; callers that need several calls to appear atomic must hold their
// own lock around them.
type Storage interface {
	// Player operations
	SavePlayer(ctx context.Context, player *model.PlayerRecord) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.PlayerRecord, error)
	CountPlayers(ctx context.Context) (int, error)

	// Waiting match operations. The waiting sequence keeps insertion order.
	AppendWaitingMatch(ctx context.Context, match *model.WaitingMatch) error
	ListWaitingMatches(ctx context.Context) ([]*model.WaitingMatch, error)

	// ActivateMatch removes the waiting entry with the same id as match and stores
	// match as active, in one step. ErrMatchNotFound if no such waiting entry exists.
	ActivateMatch(ctx context.Context, match *model.ActiveMatch) error

	// Active match operations. Listing is ordered by ascending match id.
	SaveActiveMatch(ctx context.Context, match *model.ActiveMatch) error
	GetActiveMatch(ctx context.Context, id model.MatchID) (*model.ActiveMatch, error)
	ListActiveMatches(ctx context.Context) ([]*model.ActiveMatch, error)
}
