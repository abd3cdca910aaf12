package response

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/machgame/internal/model"
)

func TestServerActionFromModel(t *testing.T) {
	tests := []struct {
		name   string
		action model.ServerAction
		want   string
	}{
		{"register", model.RegisterResponse{ID: 1}, `{"RegisterResponse":{"id":1}}`},
		{"host game", model.HostGameResponse{ID: 3, GameName: "C"}, `{"HostGameResponse":{"id":3,"game_name":"C"}}`},
		{"join success", model.JoinGameResponse{Success: true, GameID: 3}, `{"JoinGameResponse":{"success":true,"game_id":3}}`},
		{"join failure", model.JoinGameResponse{}, `{"JoinGameResponse":{"success":false,"game_id":0}}`},
		{"steady", model.Steady{}, `"Steady"`},
		{"bad request", model.BadRequest{}, `"BadRequest"`},
		{
			"waiting",
			model.StateCheckResponse{Result: model.Waiting{MatchName: "C"}},
			`{"StateCheckResponse":{"Waiting":{"game_name":"C"}}}`,
		},
		{
			"in game",
			model.StateCheckResponse{Result: model.InGame{
				Role:   model.RolePlayerTwo,
				Scores: model.Scores{PlayerOne: 0, PlayerTwo: 1},
			}},
			`{"StateCheckResponse":{"InGame":{"player":2,"player1_score":0,"player2_score":1}}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wire, err := ServerActionFromModel(tt.action)
			require.NoError(t, err)

			data, err := json.Marshal(wire)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))
		})
	}
}

func TestServerActionFromModelRejectsNotFound(t *testing.T) {
	_, err := ServerActionFromModel(model.StateCheckResponse{Result: model.NotFound{}})
	assert.Error(t, err)

	_, err = ServerActionFromModel(model.StateCheckResponse{})
	assert.Error(t, err)

	_, err = ServerActionFromModel(nil)
	assert.Error(t, err)
}
