package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplyUnmarshal(t *testing.T) {
	t.Run("steady", func(t *testing.T) {
		var r Reply
		require.NoError(t, json.Unmarshal([]byte(`"Steady"`), &r))
		assert.True(t, r.Steady)
	})

	t.Run("bad request", func(t *testing.T) {
		var r Reply
		require.NoError(t, json.Unmarshal([]byte(`"BadRequest"`), &r))
		assert.True(t, r.BadRequest)
	})

	t.Run("host game", func(t *testing.T) {
		var r Reply
		require.NoError(t, json.Unmarshal([]byte(`{"HostGameResponse":{"id":3,"game_name":"C"}}`), &r))
		require.NotNil(t, r.HostGameResponse)
		assert.Equal(t, HostResult{ID: 3, GameName: "C"}, *r.HostGameResponse)
	})

	t.Run("in game", func(t *testing.T) {
		var r Reply
		body := `{"StateCheckResponse":{"InGame":{"player":2,"player1_score":4,"player2_score":1}}}`
		require.NoError(t, json.Unmarshal([]byte(body), &r))

		status, err := statusFromReply(7, &r)
		require.NoError(t, err)
		assert.Equal(t, Status{Player: 7, State: StatusPlaying, Role: 2, PlayerOneScore: 4, PlayerTwoScore: 1}, status)
	})

	t.Run("unknown string", func(t *testing.T) {
		var r Reply
		assert.Error(t, json.Unmarshal([]byte(`"Resign"`), &r))
	})

	t.Run("unknown object", func(t *testing.T) {
		var r Reply
		assert.Error(t, json.Unmarshal([]byte(`{"Resigned":{}}`), &r))
	})
}

func TestStatusFromReply(t *testing.T) {
	status, err := statusFromReply(1, &Reply{BadRequest: true})
	require.NoError(t, err)
	assert.Equal(t, StatusNone, status.State)

	_, err = statusFromReply(1, &Reply{Steady: true})
	assert.ErrorIs(t, err, errUnexpectedReply)
}

func TestOutputText(t *testing.T) {
	var buf bytes.Buffer
	out := NewOutput("text", &buf)

	out.Print(Status{Player: 2, State: StatusPlaying, Role: 2, PlayerOneScore: 0, PlayerTwoScore: 3})
	assert.Equal(t, "Player 2 is playing as player 2\nScore: 0 - 3\n", buf.String())
}

func TestOutputJSON(t *testing.T) {
	var buf bytes.Buffer
	out := NewOutput("json", &buf)

	out.Print(RegisterResult{ID: 1, Name: "Alice"})
	assert.JSONEq(t, `{"id":1,"name":"Alice"}`, buf.String())
}

func TestConfigPlayerFileRoundTrip(t *testing.T) {
	c := &Config{PlayerFile: filepath.Join(t.TempDir(), "nested", "player")}

	// A missing file leaves the player unset
	require.NoError(t, c.LoadPlayer())
	_, err := c.RequirePlayer()
	assert.ErrorIs(t, err, errNoPlayer)

	require.NoError(t, c.SavePlayer(42))

	loaded := &Config{PlayerFile: c.PlayerFile}
	require.NoError(t, loaded.LoadPlayer())
	id, err := loaded.RequirePlayer()
	require.NoError(t, err)
	assert.Equal(t, uint64(42), id)

	info, err := os.Stat(c.PlayerFile)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}
