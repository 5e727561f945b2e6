package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match",
		Short: "Auto-match waiting players into queued teams",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result TeamList
			if err := client.Post("/api/v1/match", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newTeamsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "teams",
		Short: "List queued and playing teams",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result TeamList
			if err := client.Get("/api/v1/teams", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newStartCmd() *cobra.Command {
	var all bool
	var court string

	cmd := &cobra.Command{
		Use:   "start [team-id]",
		Short: "Start a queued team on a court",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output)

			if all {
				if len(args) > 0 || court != "" {
					return fmt.Errorf("--all starts every startable team and takes no team or court")
				}

				var result TeamList
				if err := client.Post("/api/v1/teams/start-all", nil, &result); err != nil {
					return err
				}

				out.Print(result)
				return nil
			}

			if len(args) == 0 {
				return fmt.Errorf("a team id is required unless --all is set")
			}

			req := map[string]string{}
			if court != "" {
				courtID, err := resolveCourt(court)
				if err != nil {
					return err
				}
				req["court_id"] = courtID
			}

			var result Team
			if err := client.Post("/api/v1/teams/"+args[0]+"/start", req, &result); err != nil {
				return err
			}

			out.Print(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Start every startable queued team")
	cmd.Flags().StringVar(&court, "court", "", "Court index or id (default: lowest free court)")

	return cmd
}
