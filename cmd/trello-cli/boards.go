package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func boardsCmd(services serviceFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "boards",
		Short: "List open boards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := services()
			if err != nil {
				return err
			}

			boards, err := svc.ListBoards(cmd.Context())
			if err != nil {
				return err
			}

			if len(boards) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No open boards.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tURL")
			for _, b := range boards {
				fmt.Fprintf(w, "%s\t%s\t%s\n", b.ID, b.Name, b.URL)
			}
			return w.Flush()
		},
	}
}
