package dispatch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mcoot/machgame/internal/model"
)

// Store is the set of state operations a Dispatcher drives
type Store interface {
	Register(ctx context.Context, name string) (model.Player, error)
	HostGame(ctx context.Context, player model.PlayerID) (model.WaitingMatch, error)
	JoinGame(ctx context.Context, player model.PlayerID, name string) (model.MatchID, bool, error)
	IncreaseScore(ctx context.Context, player model.PlayerID) error
	StateCheck(ctx context.Context, player model.PlayerID) (model.StateCheckResult, error)
}

// Dispatcher turns one client action into one store call and one server action
type Dispatcher struct {
	store  Store
	logger *slog.Logger
}

// New creates a new Dispatcher
func New(store Store, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		store:  store,
		logger: logger,
	}
}

// Dispatch applies the action. Domain misses (unknown match name, player in no
// match) come back as server actions; an error means the store itself failed.
func (d *Dispatcher) Dispatch(ctx context.Context, action model.ClientAction) (model.ServerAction, error) {
	switch a := action.(type) {
	case model.Register:
		player, err := d.store.Register(ctx, a.Name)
		if err != nil {
			return nil, err
		}
		return model.RegisterResponse{ID: player.ID}, nil

	case model.HostGame:
		match, err := d.store.HostGame(ctx, a.Player)
		if err != nil {
			return nil, err
		}
		return model.HostGameResponse{ID: match.ID, GameName: match.Name}, nil

	case model.JoinGame:
		id, ok, err := d.store.JoinGame(ctx, a.Player, a.GameName)
		if err != nil {
			return nil, err
		}
		if !ok {
			return model.JoinGameResponse{Success: false, GameID: 0}, nil
		}
		return model.JoinGameResponse{Success: true, GameID: id}, nil

	case model.IncreaseScore:
		if err := d.store.IncreaseScore(ctx, a.Player); err != nil {
			return nil, err
		}
		return model.Steady{}, nil

	case model.StateCheck:
		d.logger.Debug("state check requested", slog.Uint64("player_id", uint64(a.Player)))
		result, err := d.store.StateCheck(ctx, a.Player)
		if err != nil {
			return nil, err
		}
		return stateCheckResponse(result), nil

	default:
		// Unreachable while the type switch covers every ClientAction
		return nil, fmt.Errorf("%w: unhandled action %T", model.ErrMalformedAction, action)
	}
}

func stateCheckResponse(result model.StateCheckResult) model.ServerAction {
	switch result.(type) {
	case model.InGame, model.Waiting:
		return model.StateCheckResponse{Result: result}
	case model.NotFound:
	}
	return model.BadRequest{}
}
