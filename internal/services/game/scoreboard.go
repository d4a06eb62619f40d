package game

import (
	"sort"

	"github.com/KirkDiggler/zombiedice/internal/models"
)

// buildScoreboard ranks players by score, highest first, with seat order
// breaking ties. A declared winner always heads the board: after a
// tie-break a player left out of it can hold more brains than the winner.
// Equal scores share a rank.
func buildScoreboard(players []*models.Player, winnerID string) []models.ScoreboardEntry {
	sorted := make([]*models.Player, len(players))
	copy(sorted, players)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if (a.ID == winnerID) != (b.ID == winnerID) {
			return a.ID == winnerID
		}
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return a.Seat < b.Seat
	})

	entries := make([]models.ScoreboardEntry, 0, len(sorted))
	for i, p := range sorted {
		rank := i + 1
		if i > 0 {
			prev := sorted[i-1]
			if p.Score == prev.Score && prev.ID != winnerID && p.ID != winnerID {
				rank = entries[i-1].Rank
			}
		}
		entries = append(entries, models.ScoreboardEntry{
			Rank:       rank,
			PlayerID:   p.ID,
			PlayerName: p.Name,
			Score:      p.Score,
		})
	}
	return entries
}
