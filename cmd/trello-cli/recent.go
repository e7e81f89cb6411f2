package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jobtrail/jobtrail-backend/internal/trello/domain"
	"github.com/jobtrail/jobtrail-backend/internal/trello/summary"
)

func recentCmd(services serviceFactory) *cobra.Command {
	var (
		days   int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "recent <boardId>",
		Short: "Show cards active within the last N days",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := services()
			if err != nil {
				return err
			}

			recent, err := svc.FetchRecentActivity(cmd.Context(), args[0], days)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(recent)
			}

			fmt.Fprintln(cmd.OutOrStdout(), summary.FormatRecentCardsSummary(recent.BoardName, recent.Cards, recent.Days))
			return nil
		},
	}

	cmd.Flags().IntVarP(&days, "days", "d", domain.DefaultRecentDays, "Look-back window in days")
	cmd.Flags().BoolVarP(&asJSON, "json", "j", false, "Output as JSON")

	return cmd
}
