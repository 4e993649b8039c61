package game

import (
	"github.com/cbodonnell/pairs/pkg/game/types"
	"github.com/cbodonnell/pairs/pkg/messages"
	"github.com/cbodonnell/pairs/pkg/repositories/models"
)

// ServerSessionUpdateFromSession builds the snapshot sent to a client.
// Identities of face-down cards are left out.
func ServerSessionUpdateFromSession(s *Session) *messages.ServerSessionUpdate {
	cfg := s.Config()
	deck := s.Deck()
	cards := make([]messages.CardView, 0, len(deck))
	for _, card := range deck {
		view := messages.CardView{
			Position: card.Position,
			State:    card.State,
		}
		if card.State != types.FaceStateHidden {
			view.Name = card.Identity.Name
			view.Token = card.Identity.Token
		}
		cards = append(cards, view)
	}

	return &messages.ServerSessionUpdate{
		Version:        s.Version(),
		Phase:          s.Phase(),
		Mode:           cfg.Mode,
		Difficulty:     cfg.Difficulty,
		Theme:          cfg.Theme,
		Cards:          cards,
		Reveals:        s.RevealCount(),
		MaxReveals:     cfg.MaxReveals,
		ElapsedSeconds: s.ElapsedSeconds(),
		Players:        s.Players(),
		Turn:           s.Turn(),
		MatchedPairs:   s.MatchedPairs(),
		TotalPairs:     s.TotalPairs(),
		Result:         s.Result(),
	}
}

func IdentitiesFromCards(cards []*models.Card) []types.CardIdentity {
	identities := make([]types.CardIdentity, 0, len(cards))
	for _, card := range cards {
		identities = append(identities, types.CardIdentity{
			ID:    card.ID,
			Name:  card.Name,
			Token: card.Emoji,
		})
	}
	return identities
}

// SessionConfigFromStart validates a start request and turns it into a
// session config.
func SessionConfigFromStart(start *messages.ClientStart) (types.SessionConfig, error) {
	mode, err := types.ParseMode(start.Mode)
	if err != nil {
		return types.SessionConfig{}, err
	}
	difficulty, err := types.ParseDifficulty(start.Difficulty)
	if err != nil {
		return types.SessionConfig{}, err
	}

	cfg := types.SessionConfig{
		Mode:       mode,
		Difficulty: difficulty,
		Theme:      start.Theme,
	}
	switch mode {
	case types.ModeMulti:
		cfg.PlayerNames = append([]string(nil), start.Players...)
	default:
		if start.Name != "" {
			cfg.PlayerNames = []string{start.Name}
		}
	}
	return cfg, nil
}
