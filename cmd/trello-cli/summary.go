package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jobtrail/jobtrail-backend/internal/trello/summary"
)

func summaryCmd(services serviceFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "summary <boardId>",
		Short: "Print a markdown summary of a board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := services()
			if err != nil {
				return err
			}

			board, err := svc.FetchBoardDetails(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), summary.FormatBoardSummary(board))
			return nil
		},
	}
}
