package game

import (
	"fmt"
	"time"

	"github.com/cbodonnell/pairs/pkg/game/types"
)

// SelectionSize is the number of cards revealed before they are evaluated.
const SelectionSize = 2

// Reveal flips the card at position face up. Reveals that cannot be applied
// return an error wrapping ErrRevealRejected and change nothing; in
// particular, while a selection of two is waiting to be resolved every reveal
// is dropped, not queued.
func (s *Session) Reveal(now time.Time, position int) error {
	if s.phase != types.PhaseActive {
		return fmt.Errorf("%w: session is %s", ErrRevealRejected, s.phase)
	}
	if position < 0 || position >= len(s.deck) {
		return fmt.Errorf("%w: position %d out of range", ErrRevealRejected, position)
	}
	switch s.deck[position].State {
	case types.FaceStateMatched:
		return fmt.Errorf("%w: card %d already matched", ErrRevealRejected, position)
	case types.FaceStateRevealed:
		return fmt.Errorf("%w: card %d already revealed", ErrRevealRejected, position)
	}
	if len(s.selection) >= SelectionSize {
		return fmt.Errorf("%w: selection is full", ErrRevealRejected)
	}

	if s.config.Mode == types.ModeSingle {
		s.startClock(now)
	}

	s.deck[position].State = types.FaceStateRevealed
	s.selection = append(s.selection, position)
	s.revealCount++
	if s.config.Mode == types.ModeMulti {
		s.players[s.turn].RevealCount++
	}
	s.touch()

	if len(s.selection) == SelectionSize {
		s.evaluateSelection(now)
		if s.config.Mode == types.ModeSingle && s.phase == types.PhaseActive {
			s.checkDefeat()
		}
	}
	return nil
}

// checkDefeat ends a solo session once the reveal budget is spent. It runs
// once per completed pair, so the budget is compared after the second flip.
func (s *Session) checkDefeat() {
	if s.config.MaxReveals > 0 && s.revealCount >= s.config.MaxReveals {
		s.logger.Debug("Reveal budget spent: %d/%d", s.revealCount, s.config.MaxReveals)
		s.finish(types.PhaseDefeat)
	}
}

// startClock starts the elapsed-time clock. Starting a running clock is a no-op.
func (s *Session) startClock(now time.Time) {
	if s.clock.Active() {
		return
	}
	interval := s.rules.ClockInterval
	s.clock = s.scheduler.Every(now, interval, func(time.Time) {
		s.elapsed += interval
		s.touch()
	})
}

func (s *Session) stopClock() {
	s.clock.Cancel()
	s.clock = nil
}

// ClockRunning reports whether the elapsed-time clock is ticking.
func (s *Session) ClockRunning() bool {
	return s.clock.Active()
}
