package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jobtrail/jobtrail-backend/internal/logging"
	"github.com/jobtrail/jobtrail-backend/internal/trello/domain"
)

// Fetcher is the subset of the Trello client the service needs.
type Fetcher interface {
	FetchBoards(ctx context.Context) ([]domain.Board, error)
	FetchBoard(ctx context.Context, boardID string) (*domain.Board, error)
	FetchLists(ctx context.Context, boardID string) ([]domain.List, error)
	FetchCards(ctx context.Context, boardID string) ([]domain.Card, error)
}

// BoardService joins independently fetched Trello collections into
// per-request board views. It holds no state beyond its collaborators.
type BoardService struct {
	fetcher Fetcher
	now     func() time.Time
}

// NewBoardService creates a BoardService backed by fetcher.
func NewBoardService(fetcher Fetcher) *BoardService {
	return &BoardService{fetcher: fetcher, now: time.Now}
}

// WithClock overrides the clock used for recency cutoffs.
func (s *BoardService) WithClock(now func() time.Time) *BoardService {
	s.now = now
	return s
}

// ListBoards returns the member's open boards.
func (s *BoardService) ListBoards(ctx context.Context) ([]domain.Board, error) {
	return s.fetcher.FetchBoards(ctx)
}

// FetchBoardDetails fetches the board, its open lists and all of its cards
// concurrently and merges them. The join is all-or-nothing: if any fetch
// fails the error is returned with a nil aggregate. Siblings of a failed
// fetch are not cancelled; their results are discarded.
func (s *BoardService) FetchBoardDetails(ctx context.Context, boardID string) (*domain.BoardWithDetails, error) {
	var (
		board *domain.Board
		lists []domain.List
		cards []domain.Card
		g     errgroup.Group
	)

	g.Go(func() (err error) {
		board, err = s.fetcher.FetchBoard(ctx, boardID)
		return err
	})
	g.Go(func() (err error) {
		lists, err = s.fetcher.FetchLists(ctx, boardID)
		return err
	})
	g.Go(func() (err error) {
		cards, err = s.fetcher.FetchCards(ctx, boardID)
		return err
	})

	if err := g.Wait(); err != nil {
		logging.FromContext(ctx).WithError(err).WithField("board_id", boardID).Warn("board aggregation failed")
		return nil, err
	}

	return &domain.BoardWithDetails{
		Board: *board,
		Lists: nonNilLists(lists),
		Cards: nonNilCards(cards),
	}, nil
}

// FetchRecentCards returns the board's cards, closed ones included, whose
// last activity falls within the last days days.
func (s *BoardService) FetchRecentCards(ctx context.Context, boardID string, days int) ([]domain.Card, error) {
	if err := validateDays(days); err != nil {
		return nil, err
	}

	cards, err := s.fetcher.FetchCards(ctx, boardID)
	if err != nil {
		return nil, err
	}

	return FilterRecent(cards, days, s.now()), nil
}

// FetchRecentActivity pairs the recent cards with the board name, fetching
// both concurrently under the same all-or-nothing rule as FetchBoardDetails.
func (s *BoardService) FetchRecentActivity(ctx context.Context, boardID string, days int) (*domain.RecentCards, error) {
	if err := validateDays(days); err != nil {
		return nil, err
	}

	var (
		board  *domain.Board
		recent []domain.Card
		g      errgroup.Group
	)

	g.Go(func() (err error) {
		board, err = s.fetcher.FetchBoard(ctx, boardID)
		return err
	})
	g.Go(func() (err error) {
		recent, err = s.FetchRecentCards(ctx, boardID, days)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &domain.RecentCards{
		BoardID:   boardID,
		BoardName: board.Name,
		Days:      days,
		Cards:     recent,
	}, nil
}

func validateDays(days int) error {
	if days < 0 {
		return domain.NewValidationError("days must be a non-negative integer")
	}
	return nil
}

func nonNilLists(lists []domain.List) []domain.List {
	if lists == nil {
		return []domain.List{}
	}
	return lists
}

func nonNilCards(cards []domain.Card) []domain.Card {
	if cards == nil {
		return []domain.Card{}
	}
	return cards
}
