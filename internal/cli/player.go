package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newPlayersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "players",
		Short: "Manage the player roster",
	}

	cmd.AddCommand(newPlayersListCmd())
	cmd.AddCommand(newPlayersAddCmd())
	cmd.AddCommand(newPlayersStateCmd())
	cmd.AddCommand(newPlayersRemoveCmd())

	return cmd
}

func newPlayersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all players",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result PlayerList
			if err := client.Get("/api/v1/players", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayersAddCmd() *cobra.Command {
	var rank, gender string

	cmd := &cobra.Command{
		Use:   "add <name> [name...]",
		Short: "Add one or more players",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output)

			if len(args) == 1 {
				req := map[string]string{"name": args[0]}
				if rank != "" {
					req["rank"] = rank
				}
				if gender != "" {
					req["gender"] = gender
				}

				var result Player
				if err := client.Post("/api/v1/players", req, &result); err != nil {
					return err
				}

				out.Print(result)
				return nil
			}

			if rank != "" || gender != "" {
				return fmt.Errorf("--rank and --gender only apply when adding a single player")
			}

			req := map[string][]string{"names": args}
			var result PlayerList
			if err := client.Post("/api/v1/players", req, &result); err != nil {
				return err
			}

			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&rank, "rank", "", "Skill rank (S, A, B, C, D)")
	cmd.Flags().StringVar(&gender, "gender", "", "Gender (male, female)")

	return cmd
}

func newPlayersStateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "state <player-id> <waiting|priority|resting>",
		Short: "Set a player's state",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"state": strings.ToLower(args[1])}
			var result Player

			if err := client.Post("/api/v1/players/"+args[0]+"/state", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayersRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <player-id> [player-id...]",
		Short: "Remove one or more players",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output)

			if len(args) == 1 {
				if err := client.Delete("/api/v1/players/" + args[0]); err != nil {
					return err
				}

				out.PrintMessage("Player removed")
				return nil
			}

			req := map[string][]string{"player_ids": args}
			if err := client.Do("DELETE", "/api/v1/players", req, nil); err != nil {
				return err
			}

			out.PrintMessage(fmt.Sprintf("%d players removed", len(args)))
			return nil
		},
	}
}
