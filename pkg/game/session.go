package game

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/cbodonnell/pairs/pkg/game/deck"
	"github.com/cbodonnell/pairs/pkg/game/rules"
	"github.com/cbodonnell/pairs/pkg/game/types"
	"github.com/cbodonnell/pairs/pkg/log"
	"github.com/cbodonnell/pairs/pkg/scheduler"
)

var (
	// ErrNoPlayableDeck is returned when a session is started without identities.
	ErrNoPlayableDeck = errors.New("no playable deck")
	// ErrDuplicateIdentity is returned when two identities share an ID.
	ErrDuplicateIdentity = errors.New("duplicate card identity")
	// ErrInvalidConfig is returned for a session config that cannot be played.
	ErrInvalidConfig = errors.New("invalid session config")
	// ErrRevealRejected wraps every reason a reveal is ignored.
	ErrRevealRejected = errors.New("reveal rejected")
)

// Session is the state of one game: deck, selection, counters, players and
// phase. A session is owned by a single goroutine, normally the game loop,
// which feeds it reveals and advances its scheduler; it is not safe for
// concurrent use.
type Session struct {
	id        string
	rules     *rules.Rules
	scheduler *scheduler.Scheduler
	rng       *rand.Rand
	logger    *log.Logger
	onFinish  func(s *Session, result types.GameResult)

	phase      types.Phase
	config     types.SessionConfig
	timing     rules.Timing
	identities []types.CardIdentity
	deck       []types.DeckCard
	// selection holds deck positions of revealed, unresolved cards.
	selection []int
	// resolution is the pending match or mismatch resolution, if any.
	resolution *scheduler.Task
	clock      *scheduler.Task
	elapsed    time.Duration

	revealCount  int
	matchedPairs int
	players      []types.Player
	turn         int
	result       *types.GameResult

	// version increases on every visible change.
	version uint64
}

// NewSessionOptions contains options for creating a new Session.
type NewSessionOptions struct {
	ID     string
	Rules  *rules.Rules
	Rand   *rand.Rand
	Logger *log.Logger
	// OnFinish is called once when the session reaches victory or defeat.
	OnFinish func(s *Session, result types.GameResult)
}

func NewSession(opts NewSessionOptions) *Session {
	r := opts.Rules
	if r == nil {
		r = rules.Default()
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Session{
		id:        opts.ID,
		rules:     r,
		scheduler: scheduler.New(),
		rng:       rng,
		logger:    logger.With("session", opts.ID),
		onFinish:  opts.OnFinish,
		phase:     types.PhaseIdle,
	}
}

// Start begins a new game, discarding whatever the session held before.
// On error the session is left idle.
func (s *Session) Start(cfg types.SessionConfig, identities []types.CardIdentity) error {
	s.reset()
	s.touch()

	timing, err := s.validateConfig(&cfg)
	if err != nil {
		return err
	}
	if len(identities) == 0 {
		return ErrNoPlayableDeck
	}
	seen := make(map[int32]bool, len(identities))
	for _, identity := range identities {
		if seen[identity.ID] {
			return fmt.Errorf("%w: %d", ErrDuplicateIdentity, identity.ID)
		}
		seen[identity.ID] = true
	}

	s.identities = append([]types.CardIdentity(nil), identities...)
	s.deck = deck.Build(s.identities, s.rng)
	s.timing = timing

	cfg.MaxReveals = 0
	if cfg.Mode == types.ModeSingle {
		cfg.MaxReveals, err = s.rules.MaxReveals(cfg.Difficulty, len(s.deck))
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	} else {
		s.players = []types.Player{
			{Name: cfg.PlayerNames[0]},
			{Name: cfg.PlayerNames[1]},
		}
	}
	s.config = cfg
	s.phase = types.PhaseActive

	s.logger.Debug("Session started: mode=%s difficulty=%s pairs=%d maxReveals=%d", cfg.Mode, cfg.Difficulty, len(s.identities), cfg.MaxReveals)
	return nil
}

func (s *Session) validateConfig(cfg *types.SessionConfig) (rules.Timing, error) {
	switch cfg.Mode {
	case types.ModeSingle:
		if len(cfg.PlayerNames) > 1 {
			return rules.Timing{}, fmt.Errorf("%w: single mode takes at most one player name", ErrInvalidConfig)
		}
	case types.ModeMulti:
		if len(cfg.PlayerNames) != 2 {
			return rules.Timing{}, fmt.Errorf("%w: multi mode needs exactly two player names", ErrInvalidConfig)
		}
		for _, name := range cfg.PlayerNames {
			if strings.TrimSpace(name) == "" {
				return rules.Timing{}, fmt.Errorf("%w: player names must not be empty", ErrInvalidConfig)
			}
		}
	default:
		return rules.Timing{}, fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, cfg.Mode)
	}
	if _, ok := s.rules.Factors[cfg.Difficulty]; !ok {
		return rules.Timing{}, fmt.Errorf("%w: unknown difficulty %q", ErrInvalidConfig, cfg.Difficulty)
	}
	if cfg.Theme == "" {
		cfg.Theme = s.rules.DefaultTheme
	}
	timing, err := s.rules.Timing(cfg.Theme)
	if err != nil {
		return rules.Timing{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return timing, nil
}

// Restart returns the session to idle from any phase.
func (s *Session) Restart() {
	s.reset()
	s.touch()
}

// Close cancels everything still scheduled. The session must not be used afterwards.
func (s *Session) Close() {
	s.scheduler.CancelAll()
}

// Advance runs resolutions and clock ticks due at or before now.
func (s *Session) Advance(now time.Time) {
	s.scheduler.Advance(now)
}

func (s *Session) reset() {
	s.resolution.Cancel()
	s.stopClock()
	s.resolution = nil
	s.phase = types.PhaseIdle
	s.config = types.SessionConfig{}
	s.timing = rules.Timing{}
	s.identities = nil
	s.deck = nil
	s.selection = nil
	s.elapsed = 0
	s.revealCount = 0
	s.matchedPairs = 0
	s.players = nil
	s.turn = 0
	s.result = nil
}

// finish moves the session to a terminal phase, cancels everything pending
// and reports the result.
func (s *Session) finish(phase types.Phase) {
	s.resolution.Cancel()
	s.resolution = nil
	s.stopClock()
	s.phase = phase

	result := s.buildResult()
	s.result = &result
	s.touch()

	s.logger.Debug("Session finished: phase=%s outcome=%s", phase, result.Outcome)
	if s.onFinish != nil {
		s.onFinish(s, result)
	}
}

func (s *Session) buildResult() types.GameResult {
	result := types.GameResult{
		Mode:           s.config.Mode,
		Difficulty:     s.config.Difficulty,
		ElapsedSeconds: s.ElapsedSeconds(),
		TotalReveals:   s.revealCount,
	}
	if s.config.Mode == types.ModeMulti {
		result.Players = s.Players()
		winner, score := types.ScoreBattle(s.players[0], s.players[1])
		result.Score = score
		if winner < 0 {
			result.Outcome = types.OutcomeTie
			result.Winner = types.TieWinner
		} else {
			result.Outcome = types.OutcomeWin
			result.Winner = s.players[winner].Name
		}
		return result
	}

	if len(s.config.PlayerNames) == 1 {
		result.Name = s.config.PlayerNames[0]
	}
	if s.phase == types.PhaseVictory {
		result.Outcome = types.OutcomeWin
	} else {
		result.Outcome = types.OutcomeLoss
	}
	return result
}

func (s *Session) touch() {
	s.version++
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Phase() types.Phase {
	return s.phase
}

func (s *Session) Config() types.SessionConfig {
	cfg := s.config
	cfg.PlayerNames = append([]string(nil), s.config.PlayerNames...)
	return cfg
}

// Deck returns a copy of the cards in position order.
func (s *Session) Deck() []types.DeckCard {
	return append([]types.DeckCard(nil), s.deck...)
}

// Selection returns the positions of revealed, unresolved cards.
func (s *Session) Selection() []int {
	return append([]int(nil), s.selection...)
}

// RevealCount is the total number of accepted reveals in the session.
func (s *Session) RevealCount() int {
	return s.revealCount
}

func (s *Session) MatchedPairs() int {
	return s.matchedPairs
}

func (s *Session) TotalPairs() int {
	return len(s.identities)
}

func (s *Session) ElapsedSeconds() int {
	return int(s.elapsed / time.Second)
}

// Players returns a copy of the battle players; nil in single mode.
func (s *Session) Players() []types.Player {
	return append([]types.Player(nil), s.players...)
}

// Turn is the index of the player to move in multi mode.
func (s *Session) Turn() int {
	return s.turn
}

// Result is set once the session reaches victory or defeat.
func (s *Session) Result() *types.GameResult {
	if s.result == nil {
		return nil
	}
	result := *s.result
	result.Players = append([]types.Player(nil), s.result.Players...)
	return &result
}

func (s *Session) Version() uint64 {
	return s.version
}
