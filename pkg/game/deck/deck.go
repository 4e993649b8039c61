package deck

import (
	"math/rand"

	"github.com/cbodonnell/pairs/pkg/game/types"
)

// Build places every identity on two cards and shuffles the result.
// Positions are assigned after shuffling, so card i sits at position i.
// An empty input gives an empty deck.
func Build(identities []types.CardIdentity, rng *rand.Rand) []types.DeckCard {
	cards := make([]types.DeckCard, 0, len(identities)*2)
	for round := 0; round < 2; round++ {
		for _, identity := range identities {
			cards = append(cards, types.DeckCard{
				Identity: identity,
				State:    types.FaceStateHidden,
			})
		}
	}

	Shuffle(cards, rng)

	for i := range cards {
		cards[i].Position = i
	}
	return cards
}

// Shuffle is a Fisher-Yates shuffle: walking down from the last index,
// each card swaps with one picked uniformly from those not yet placed.
func Shuffle(cards []types.DeckCard, rng *rand.Rand) {
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}
