package service

import (
	"time"

	"github.com/jobtrail/jobtrail-backend/internal/trello/domain"
)

// Cutoff is now moved back days calendar days, keeping the time of day.
// There is no truncation to midnight.
func Cutoff(now time.Time, days int) time.Time {
	return now.AddDate(0, 0, -days)
}

// FilterRecent keeps the cards whose last activity is at or after the
// cutoff, in their original order. Closed cards are not excluded.
func FilterRecent(cards []domain.Card, days int, now time.Time) []domain.Card {
	cutoff := Cutoff(now, days)

	out := make([]domain.Card, 0, len(cards))
	for _, card := range cards {
		if !card.DateLastActivity.Before(cutoff) {
			out = append(out, card)
		}
	}
	return out
}
