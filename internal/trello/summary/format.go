// Package summary renders boards and card sets as markdown meant to be read
// by people and pasted into LLM prompts. Every function here is pure.
package summary

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jobtrail/jobtrail-backend/internal/trello/domain"
)

const (
	boardDescLimit  = 200
	recentDescLimit = 150

	// dateLayout is the en-US short date, e.g. 3/7/2026.
	dateLayout = "1/2/2006"
)

// FormatBoardSummary renders the board with each list's open cards, lists
// ordered by position. Lists without open cards are left out.
func FormatBoardSummary(board *domain.BoardWithDetails) string {
	lines := []string{"# Board: " + board.Name}
	if board.Desc != "" {
		lines = append(lines, "", board.Desc)
	}
	lines = append(lines, "")

	lists := make([]domain.List, len(board.Lists))
	copy(lists, board.Lists)
	sort.SliceStable(lists, func(i, j int) bool { return lists[i].Pos < lists[j].Pos })

	for _, list := range lists {
		cards := openCardsInList(board.Cards, list.ID)
		if len(cards) == 0 {
			continue
		}

		lines = append(lines, "## List: "+list.Name, "")

		for _, card := range cards {
			lines = append(lines, fmt.Sprintf("- **%s**", card.Name))

			if card.Due != nil {
				due := "  - Due: " + formatDate(*card.Due)
				if card.DueComplete {
					due += " (completed)"
				}
				lines = append(lines, due)
			}

			lines = appendCardDetails(lines, card, boardDescLimit)
			lines = append(lines, "")
		}
	}

	return strings.Join(lines, "\n")
}

// FormatRecentCardsSummary renders cards most recently active first.
func FormatRecentCardsSummary(boardName string, cards []domain.Card, days int) string {
	lines := []string{
		"# Recent Activity: " + boardName,
		fmt.Sprintf("Cards modified in the last %d days:", days),
		"",
	}

	if len(cards) == 0 {
		lines = append(lines, "No recent activity.")
		return strings.Join(lines, "\n")
	}

	sorted := make([]domain.Card, len(cards))
	copy(sorted, cards)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DateLastActivity.After(sorted[j].DateLastActivity)
	})

	for _, card := range sorted {
		lines = append(lines, fmt.Sprintf("- **%s** (%s)", card.Name, formatDate(card.DateLastActivity)))
		lines = appendCardDetails(lines, card, recentDescLimit)
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

func openCardsInList(cards []domain.Card, listID string) []domain.Card {
	var out []domain.Card
	for _, card := range cards {
		if card.IDList == listID && !card.Closed {
			out = append(out, card)
		}
	}
	return out
}

// appendCardDetails adds the label and description sub-lines shared by both
// renderers.
func appendCardDetails(lines []string, card domain.Card, descLimit int) []string {
	if len(card.Labels) > 0 {
		names := make([]string, len(card.Labels))
		for i, l := range card.Labels {
			names[i] = l.DisplayName()
		}
		lines = append(lines, "  - Labels: "+strings.Join(names, ", "))
	}

	if card.Desc != "" {
		lines = append(lines, "  - "+oneLine(truncate(card.Desc, descLimit)))
	}
	return lines
}

// truncate cuts s to limit runes and marks the cut with "...".
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

func oneLine(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

func formatDate(t time.Time) string {
	return t.UTC().Format(dateLayout)
}
