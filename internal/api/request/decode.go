package request

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/mcoot/machgame/internal/model"
)

// DecodeClientAction parses a /game_call body. Every failure wraps
// model.ErrMalformedAction. Unknown fields inside a payload are ignored.
func DecodeClientAction(body []byte) (model.ClientAction, error) {
	if !utf8.Valid(body) {
		return nil, malformed("body is not valid UTF-8")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, malformed("body is not a JSON object: %v", err)
	}
	if len(envelope) != 1 {
		return nil, malformed("expected exactly one action, got %d", len(envelope))
	}

	for variant, payload := range envelope {
		return decodeVariant(variant, payload)
	}
	return nil, malformed("no action")
}

func decodeVariant(variant string, payload json.RawMessage) (model.ClientAction, error) {
	switch variant {
	case VariantRegister:
		var req RegisterRequest
		if err := decodePayload(variant, payload, &req); err != nil {
			return nil, err
		}
		if req.Name == nil {
			return nil, missingField(variant, "name")
		}
		return model.Register{Name: *req.Name}, nil

	case VariantHostGame, VariantIncreaseScore, VariantStateCheck:
		var req PlayerRequest
		if err := decodePayload(variant, payload, &req); err != nil {
			return nil, err
		}
		if req.Player == nil {
			return nil, missingField(variant, "player")
		}
		player := model.PlayerID(*req.Player)
		switch variant {
		case VariantHostGame:
			return model.HostGame{Player: player}, nil
		case VariantIncreaseScore:
			return model.IncreaseScore{Player: player}, nil
		default:
			return model.StateCheck{Player: player}, nil
		}

	case VariantJoinGame:
		var req JoinGameRequest
		if err := decodePayload(variant, payload, &req); err != nil {
			return nil, err
		}
		if req.Player == nil {
			return nil, missingField(variant, "player")
		}
		if req.GameName == nil {
			return nil, missingField(variant, "game_name")
		}
		return model.JoinGame{Player: model.PlayerID(*req.Player), GameName: *req.GameName}, nil

	default:
		return nil, malformed("unknown action %q", variant)
	}
}

func decodePayload(variant string, payload json.RawMessage, dst any) error {
	if len(payload) == 0 || payload[0] != '{' {
		return malformed("%s payload must be an object", variant)
	}
	if err := json.Unmarshal(payload, dst); err != nil {
		return malformed("%s payload: %v", variant, err)
	}
	return nil
}

func missingField(variant, field string) error {
	return malformed("%s is missing field %q", variant, field)
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", model.ErrMalformedAction, fmt.Sprintf(format, args...))
}
