package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case RegisterResult:
		_, _ = fmt.Fprintf(o.w, "Registered %s as player %d\n", v.Name, v.ID)
	case HostResult:
		_, _ = fmt.Fprintf(o.w, "Hosting match %s (id %d)\n", v.GameName, v.ID)
		_, _ = fmt.Fprintf(o.w, "Share the name %s with your opponent\n", v.GameName)
	case JoinResult:
		_, _ = fmt.Fprintf(o.w, "Joined match %d\n", v.GameID)
	case ScoreResult:
		_, _ = fmt.Fprintf(o.w, "Score increase sent for player %d\n", v.Player)
	case Status:
		o.printStatus(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printStatus(s Status) {
	switch s.State {
	case StatusWaiting:
		_, _ = fmt.Fprintf(o.w, "Player %d is waiting for an opponent in match %s\n", s.Player, s.GameName)
	case StatusPlaying:
		_, _ = fmt.Fprintf(o.w, "Player %d is playing as player %d\n", s.Player, s.Role)
		_, _ = fmt.Fprintf(o.w, "Score: %d - %d\n", s.PlayerOneScore, s.PlayerTwoScore)
	default:
		_, _ = fmt.Fprintf(o.w, "Player %d is not in a match\n", s.Player)
	}
}

// Reply is a decoded server action. Exactly one field is set.
type Reply struct {
	Steady     bool `json:"-"`
	BadRequest bool `json:"-"`

	RegisterResponse   *RegisterResponse   `json:"RegisterResponse,omitempty"`
	HostGameResponse   *HostResult         `json:"HostGameResponse,omitempty"`
	JoinGameResponse   *JoinResult         `json:"JoinGameResponse,omitempty"`
	StateCheckResponse *StateCheckResponse `json:"StateCheckResponse,omitempty"`
}

// UnmarshalJSON accepts both the bare string variants and the tagged objects
func (r *Reply) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var variant string
		if err := json.Unmarshal(data, &variant); err != nil {
			return err
		}
		switch variant {
		case "Steady":
			r.Steady = true
		case "BadRequest":
			r.BadRequest = true
		default:
			return fmt.Errorf("unknown reply %q", variant)
		}
		return nil
	}

	type plain Reply
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	if p.RegisterResponse == nil && p.HostGameResponse == nil &&
		p.JoinGameResponse == nil && p.StateCheckResponse == nil {
		return fmt.Errorf("unknown reply %s", data)
	}
	*r = Reply(p)
	return nil
}

// RegisterResponse response type
type RegisterResponse struct {
	ID uint64 `json:"id"`
}

// HostResult response type
type HostResult struct {
	ID       uint64 `json:"id"`
	GameName string `json:"game_name"`
}

// JoinResult response type
type JoinResult struct {
	Success bool   `json:"success"`
	GameID  uint64 `json:"game_id"`
}

// StateCheckResponse response type
type StateCheckResponse struct {
	Waiting *struct {
		GameName string `json:"game_name"`
	} `json:"Waiting,omitempty"`
	InGame *struct {
		Player       int   `json:"player"`
		Player1Score int32 `json:"player1_score"`
		Player2Score int32 `json:"player2_score"`
	} `json:"InGame,omitempty"`
}

// RegisterResult is what register prints
type RegisterResult struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// ScoreResult is what score prints
type ScoreResult struct {
	Player uint64 `json:"player"`
}

// Player states reported by status
const (
	StatusWaiting = "waiting"
	StatusPlaying = "playing"
	StatusNone    = "none"
)

// Status is what status prints
type Status struct {
	Player         uint64 `json:"player"`
	State          string `json:"state"`
	GameName       string `json:"game_name,omitempty"`
	Role           int    `json:"role,omitempty"`
	PlayerOneScore int32  `json:"player1_score"`
	PlayerTwoScore int32  `json:"player2_score"`
}

// statusFromReply flattens a StateCheck reply. BadRequest means the player is
// neither hosting nor playing.
func statusFromReply(player uint64, reply *Reply) (Status, error) {
	status := Status{Player: player, State: StatusNone}
	switch {
	case reply.BadRequest:
		return status, nil
	case reply.StateCheckResponse == nil:
		return Status{}, errUnexpectedReply
	case reply.StateCheckResponse.Waiting != nil:
		status.State = StatusWaiting
		status.GameName = reply.StateCheckResponse.Waiting.GameName
	case reply.StateCheckResponse.InGame != nil:
		inGame := reply.StateCheckResponse.InGame
		status.State = StatusPlaying
		status.Role = inGame.Player
		status.PlayerOneScore = inGame.Player1Score
		status.PlayerTwoScore = inGame.Player2Score
	default:
		return Status{}, errUnexpectedReply
	}
	return status, nil
}
