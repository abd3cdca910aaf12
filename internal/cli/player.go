package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errUnexpectedReply = errors.New("unexpected reply from server")

func newRegisterCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new player and save its id",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return fmt.Errorf("--name is required")
			}

			reply, err := client.Call(action("Register", map[string]any{"name": name}))
			if err != nil {
				return err
			}
			if reply.RegisterResponse == nil {
				return errUnexpectedReply
			}

			// Save player id
			if err := cfg.SavePlayer(reply.RegisterResponse.ID); err != nil {
				return fmt.Errorf("failed to save player id: %w", err)
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(RegisterResult{ID: reply.RegisterResponse.ID, Name: name})
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Player name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether the player is waiting, playing or idle",
		RunE: func(cmd *cobra.Command, args []string) error {
			player, err := cfg.RequirePlayer()
			if err != nil {
				return err
			}

			reply, err := client.Call(action("StateCheck", map[string]any{"player": player}))
			if err != nil {
				return err
			}

			status, err := statusFromReply(player, reply)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(status)
			return nil
		},
	}
}
