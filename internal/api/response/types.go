package response

import (
	"fmt"

	"github.com/mcoot/machgame/internal/model"
)

// Unit variants are encoded as bare JSON strings
const (
	Steady     = "Steady"
	BadRequest = "BadRequest"
)

// RegisterResponse is the payload of a RegisterResponse reply
type RegisterResponse struct {
	ID uint64 `json:"id"`
}

// HostGameResponse is the payload of a HostGameResponse reply
type HostGameResponse struct {
	ID       uint64 `json:"id"`
	GameName string `json:"game_name"`
}

// JoinGameResponse is the payload of a JoinGameResponse reply
type JoinGameResponse struct {
	Success bool   `json:"success"`
	GameID  uint64 `json:"game_id"`
}

// Waiting is the payload of a StateCheckResponse for a host still waiting
type Waiting struct {
	GameName string `json:"game_name"`
}

// InGame is the payload of a StateCheckResponse for a player in an active match
type InGame struct {
	Player       int   `json:"player"`
	Player1Score int32 `json:"player1_score"`
	Player2Score int32 `json:"player2_score"`
}

// ServerActionFromModel converts a reply into its wire form: either a bare string
// for unit variants or a single-key object naming the variant.
func ServerActionFromModel(action model.ServerAction) (any, error) {
	switch a := action.(type) {
	case model.RegisterResponse:
		return tagged("RegisterResponse", RegisterResponse{ID: uint64(a.ID)}), nil
	case model.HostGameResponse:
		return tagged("HostGameResponse", HostGameResponse{ID: uint64(a.ID), GameName: a.GameName}), nil
	case model.JoinGameResponse:
		return tagged("JoinGameResponse", JoinGameResponse{Success: a.Success, GameID: uint64(a.GameID)}), nil
	case model.Steady:
		return Steady, nil
	case model.StateCheckResponse:
		result, err := stateCheckResultFromModel(a.Result)
		if err != nil {
			return nil, err
		}
		return tagged("StateCheckResponse", result), nil
	case model.BadRequest:
		return BadRequest, nil
	default:
		return nil, fmt.Errorf("cannot encode server action %T", action)
	}
}

func stateCheckResultFromModel(result model.StateCheckResult) (any, error) {
	switch r := result.(type) {
	case model.Waiting:
		return tagged("Waiting", Waiting{GameName: r.MatchName}), nil
	case model.InGame:
		return tagged("InGame", InGame{
			Player:       int(r.Role),
			Player1Score: r.Scores.PlayerOne,
			Player2Score: r.Scores.PlayerTwo,
		}), nil
	case model.NotFound:
		return nil, fmt.Errorf("state check response cannot carry %T", result)
	default:
		return nil, fmt.Errorf("cannot encode state check result %T", result)
	}
}

func tagged(variant string, payload any) map[string]any {
	return map[string]any{variant: payload}
}
