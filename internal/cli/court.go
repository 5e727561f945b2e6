package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newCourtsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "courts",
		Short: "List courts and running games",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result CourtList
			if err := client.Get("/api/v1/courts", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newEndCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "end <court>",
		Short: "End the game on a court",
		Long:  "End the game on a court, identified by its index or id. The finishers return to the waiting pool.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			courtID, err := resolveCourt(args[0])
			if err != nil {
				return err
			}

			var result Team
			if err := client.Post("/api/v1/courts/"+courtID+"/end", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

// resolveCourt turns a court index into its id. Non-numeric arguments
// are already ids.
func resolveCourt(arg string) (string, error) {
	index, err := strconv.Atoi(arg)
	if err != nil {
		return arg, nil
	}

	var courts CourtList
	if err := client.Get("/api/v1/courts", &courts); err != nil {
		return "", err
	}

	for _, c := range courts.Courts {
		if c.Index == index {
			return c.ID, nil
		}
	}

	return "", fmt.Errorf("no court with index %d", index)
}
