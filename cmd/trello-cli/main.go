package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jobtrail/jobtrail-backend/config"
	"github.com/jobtrail/jobtrail-backend/internal/logging"
	"github.com/jobtrail/jobtrail-backend/internal/trello/client"
	"github.com/jobtrail/jobtrail-backend/internal/trello/domain"
	"github.com/jobtrail/jobtrail-backend/internal/trello/service"
)

var Version = "dev"

type boardService interface {
	ListBoards(ctx context.Context) ([]domain.Board, error)
	FetchBoardDetails(ctx context.Context, boardID string) (*domain.BoardWithDetails, error)
	FetchRecentActivity(ctx context.Context, boardID string, days int) (*domain.RecentCards, error)
}

// serviceFactory is resolved lazily so --help works without credentials.
type serviceFactory func() (boardService, error)

func main() {
	if err := newRootCmd(newBoardService).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(services serviceFactory) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "trello-cli",
		Short:         "Read and summarise Trello boards",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(boardsCmd(services))
	rootCmd.AddCommand(summaryCmd(services))
	rootCmd.AddCommand(recentCmd(services))

	return rootCmd
}

func newBoardService() (boardService, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logging.Setup(cfg.App.LogLevel, cfg.App.Environment)

	c := client.New(cfg.Trello.BaseURL, client.Credentials{
		APIKey: cfg.Trello.APIKey,
		Token:  cfg.Trello.Token,
	}, &http.Client{Timeout: 30 * time.Second})
	return service.NewBoardService(c), nil
}
