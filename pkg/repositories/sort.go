package repositories

import (
	"sort"

	"github.com/cbodonnell/pairs/pkg/game/types"
	"github.com/cbodonnell/pairs/pkg/repositories/models"
)

// DefaultCards is the card set seeded into an empty store.
func DefaultCards() []*models.Card {
	return []*models.Card{
		{ID: 1, Name: "Cat", Emoji: "🐱"},
		{ID: 2, Name: "Dog", Emoji: "🐶"},
		{ID: 3, Name: "Fox", Emoji: "🦊"},
		{ID: 4, Name: "Lion", Emoji: "🦁"},
		{ID: 5, Name: "Panda", Emoji: "🐼"},
		{ID: 6, Name: "Koala", Emoji: "🐨"},
	}
}

// soloResultLess orders hall-of-fame entries: harder difficulty, then lower
// time, then fewer reveals, then earlier entry.
func soloResultLess(a, b *models.SoloResult) bool {
	rankA, rankB := types.Difficulty(a.Difficulty).Rank(), types.Difficulty(b.Difficulty).Rank()
	if rankA != rankB {
		return rankA > rankB
	}
	if a.TimeSeconds != b.TimeSeconds {
		return a.TimeSeconds < b.TimeSeconds
	}
	if a.Reveals != b.Reveals {
		return a.Reveals < b.Reveals
	}
	return a.ID < b.ID
}

// SortSoloResults sorts results in hall-of-fame order.
func SortSoloResults(results []*models.SoloResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return soloResultLess(results[i], results[j])
	})
}

// soloResultOrderSQL is the ORDER BY clause matching SortSoloResults.
const soloResultOrderSQL = `
	CASE difficulty
		WHEN 'ultrahard' THEN 0
		WHEN 'hard' THEN 1
		WHEN 'medium' THEN 2
		WHEN 'easy' THEN 3
		ELSE 4
	END,
	time_seconds ASC,
	reveals ASC,
	id ASC`
