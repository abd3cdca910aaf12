package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHostCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "host",
		Short: "Host a new match and print its name",
		RunE: func(cmd *cobra.Command, args []string) error {
			player, err := cfg.RequirePlayer()
			if err != nil {
				return err
			}

			reply, err := client.Call(action("HostGame", map[string]any{"player": player}))
			if err != nil {
				return err
			}
			if reply.HostGameResponse == nil {
				return errUnexpectedReply
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(*reply.HostGameResponse)
			return nil
		},
	}
}

func newJoinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "join <name>",
		Short: "Join a waiting match by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			player, err := cfg.RequirePlayer()
			if err != nil {
				return err
			}

			reply, err := client.Call(action("JoinGame", map[string]any{"player": player, "game_name": name}))
			if err != nil {
				return err
			}
			if reply.JoinGameResponse == nil {
				return errUnexpectedReply
			}
			if !reply.JoinGameResponse.Success {
				return fmt.Errorf("no waiting match named %q", name)
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(*reply.JoinGameResponse)
			return nil
		},
	}
}

func newScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score",
		Short: "Add one point to the player's score in its match",
		RunE: func(cmd *cobra.Command, args []string) error {
			player, err := cfg.RequirePlayer()
			if err != nil {
				return err
			}

			reply, err := client.Call(action("IncreaseScore", map[string]any{"player": player}))
			if err != nil {
				return err
			}
			if !reply.Steady {
				return errUnexpectedReply
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(ScoreResult{Player: player})
			return nil
		},
	}
}
