package game

import (
	"time"

	"github.com/cbodonnell/pairs/pkg/game/types"
)

type Evaluation int

const (
	EvaluationMatch Evaluation = iota
	EvaluationMismatch
)

func (e Evaluation) String() string {
	switch e {
	case EvaluationMatch:
		return "match"
	case EvaluationMismatch:
		return "mismatch"
	default:
		return "unknown"
	}
}

// Evaluate compares two revealed cards by identity.
func Evaluate(a, b types.DeckCard) Evaluation {
	if a.Identity.ID == b.Identity.ID {
		return EvaluationMatch
	}
	return EvaluationMismatch
}

// evaluateSelection schedules the resolution of a full selection. The
// selection stays full until the resolution runs, which keeps further
// reveals out in the meantime.
func (s *Session) evaluateSelection(now time.Time) {
	first, second := s.deck[s.selection[0]], s.deck[s.selection[1]]
	switch Evaluate(first, second) {
	case EvaluationMatch:
		s.resolution = s.scheduler.After(now, s.timing.MatchDelay, s.resolveMatch)
	case EvaluationMismatch:
		s.resolution = s.scheduler.After(now, s.timing.MismatchDelay, s.resolveMismatch)
	}
}

func (s *Session) resolveMatch(time.Time) {
	s.resolution = nil
	for _, position := range s.selection {
		s.deck[position].State = types.FaceStateMatched
	}
	s.selection = nil
	s.matchedPairs++
	if s.config.Mode == types.ModeMulti {
		s.players[s.turn].MatchedCount++
	}
	s.touch()

	if s.matchedPairs == len(s.identities) {
		s.finish(types.PhaseVictory)
	}
}

func (s *Session) resolveMismatch(time.Time) {
	s.resolution = nil
	for _, position := range s.selection {
		s.deck[position].State = types.FaceStateHidden
	}
	s.selection = nil
	if s.config.Mode == types.ModeMulti {
		s.turn = (s.turn + 1) % len(s.players)
	}
	s.touch()
}
