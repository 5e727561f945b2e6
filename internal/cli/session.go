package cli

import (
	"github.com/spf13/cobra"
)

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Inspect and manage the session",
	}

	cmd.AddCommand(newSessionShowCmd())
	cmd.AddCommand(newSessionSetCmd())
	cmd.AddCommand(newSessionResetCmd())

	return cmd
}

func newSessionShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the session overview",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Session
			if err := client.Get("/api/v1/session", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSessionSetCmd() *cobra.Command {
	var teamSize, courtCount, duration int

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change session settings (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Unset flags keep their current values
			var current Session
			if err := client.Get("/api/v1/session", &current); err != nil {
				return err
			}

			req := map[string]int{
				"team_size":             current.Settings.TeamSize,
				"court_count":           current.Settings.CourtCount,
				"game_duration_minutes": current.Settings.GameDurationMinutes,
			}
			if cmd.Flags().Changed("team-size") {
				req["team_size"] = teamSize
			}
			if cmd.Flags().Changed("court-count") {
				req["court_count"] = courtCount
			}
			if cmd.Flags().Changed("duration") {
				req["game_duration_minutes"] = duration
			}

			var result Settings
			if err := client.Put("/api/v1/session/settings", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&teamSize, "team-size", 0, "Players per team")
	cmd.Flags().IntVar(&courtCount, "court-count", 0, "Number of courts")
	cmd.Flags().IntVar(&duration, "duration", 0, "Game duration in minutes")

	return cmd
}

func newSessionResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset the session, keeping the roster (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Post("/api/v1/session/reset", nil, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Session reset")
			return nil
		},
	}
}
