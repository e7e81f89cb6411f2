package http

import (
	"context"

	"github.com/jobtrail/jobtrail-backend/internal/trello/domain"
)

// BoardService is what the handlers need from the trello service layer.
type BoardService interface {
	ListBoards(ctx context.Context) ([]domain.Board, error)
	FetchBoardDetails(ctx context.Context, boardID string) (*domain.BoardWithDetails, error)
	FetchRecentActivity(ctx context.Context, boardID string, days int) (*domain.RecentCards, error)
}

// Handler serves the Trello board routes.
type Handler struct {
	boards BoardService
}

// New creates a new Handler
func New(boards BoardService) *Handler {
	return &Handler{boards: boards}
}
