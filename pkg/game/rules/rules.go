// Package rules holds the tunable numbers of the game: how lenient each
// difficulty is and how long each theme lets a resolved pair stay visible.
package rules

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/cbodonnell/pairs/pkg/game/types"
)

const (
	ThemeClassic = "classic"
	ThemeCalm    = "calm"
	ThemeSound   = "sound"
)

// Timing is how long a resolved selection stays face up.
type Timing struct {
	MatchDelay    time.Duration
	MismatchDelay time.Duration
}

type Rules struct {
	// Factors maps each difficulty to the divisor of the deck size that gives
	// the reveal budget. A lower factor allows more reveals.
	Factors      map[types.Difficulty]float64
	Themes       map[string]Timing
	DefaultTheme string
	// ClockInterval is the tick of the solo elapsed-time clock.
	ClockInterval time.Duration
}

func Default() *Rules {
	return &Rules{
		Factors: map[types.Difficulty]float64{
			types.DifficultyEasy:      0.25,
			types.DifficultyMedium:    0.4,
			types.DifficultyHard:      0.6,
			types.DifficultyUltraHard: 0.75,
		},
		Themes: map[string]Timing{
			ThemeClassic: {MatchDelay: 500 * time.Millisecond, MismatchDelay: time.Second},
			ThemeCalm:    {MatchDelay: 1500 * time.Millisecond, MismatchDelay: 2 * time.Second},
			ThemeSound:   {MatchDelay: 2500 * time.Millisecond, MismatchDelay: 3 * time.Second},
		},
		DefaultTheme:  ThemeClassic,
		ClockInterval: time.Second,
	}
}

// MaxReveals returns round(deckSize / factor) for the difficulty.
func (r *Rules) MaxReveals(difficulty types.Difficulty, deckSize int) (int, error) {
	factor, ok := r.Factors[difficulty]
	if !ok {
		return 0, fmt.Errorf("no factor for difficulty %s", difficulty)
	}
	return int(math.Round(float64(deckSize) / factor)), nil
}

// Timing returns the theme's timing, falling back to the default theme for an
// empty name. Unknown themes are an error.
func (r *Rules) Timing(theme string) (Timing, error) {
	if theme == "" {
		theme = r.DefaultTheme
	}
	timing, ok := r.Themes[theme]
	if !ok {
		return Timing{}, fmt.Errorf("unknown theme: %s", theme)
	}
	return timing, nil
}

func (r *Rules) Validate() error {
	for _, d := range types.Difficulties {
		factor, ok := r.Factors[d]
		if !ok {
			return fmt.Errorf("missing factor for difficulty %s", d)
		}
		if factor <= 0 || factor > 1 {
			return fmt.Errorf("factor for difficulty %s must be in (0, 1], got %v", d, factor)
		}
	}
	for name, timing := range r.Themes {
		if timing.MatchDelay <= 0 || timing.MismatchDelay <= 0 {
			return fmt.Errorf("theme %s must have positive delays", name)
		}
	}
	if _, ok := r.Themes[r.DefaultTheme]; !ok {
		return fmt.Errorf("default theme %s is not defined", r.DefaultTheme)
	}
	if r.ClockInterval <= 0 {
		return fmt.Errorf("clock interval must be positive")
	}
	return nil
}

type fileTheme struct {
	MatchDelay    string `toml:"match_delay"`
	MismatchDelay string `toml:"mismatch_delay"`
}

type file struct {
	DefaultTheme  string               `toml:"default_theme"`
	ClockInterval string               `toml:"clock_interval"`
	Factors       map[string]float64   `toml:"factors"`
	Themes        map[string]fileTheme `toml:"themes"`
}

// Load reads a TOML rules file over the defaults. Durations use
// time.ParseDuration syntax, for example:
//
//	default_theme = "calm"
//	[factors]
//	hard = 0.7
//	[themes.spooky]
//	match_delay = "2s"
//	mismatch_delay = "2500ms"
func Load(path string) (*Rules, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading rules file: %v", err)
	}
	return Parse(string(b))
}

// Parse decodes TOML rules over the defaults and validates the result.
func Parse(data string) (*Rules, error) {
	var f file
	if _, err := toml.Decode(data, &f); err != nil {
		return nil, fmt.Errorf("error decoding rules: %v", err)
	}

	r := Default()
	for name, factor := range f.Factors {
		d, err := types.ParseDifficulty(name)
		if err != nil {
			return nil, err
		}
		r.Factors[d] = factor
	}
	for name, theme := range f.Themes {
		var err error
		timing := r.Themes[name]
		if theme.MatchDelay != "" {
			if timing.MatchDelay, err = time.ParseDuration(theme.MatchDelay); err != nil {
				return nil, fmt.Errorf("theme %s: invalid match_delay: %v", name, err)
			}
		}
		if theme.MismatchDelay != "" {
			if timing.MismatchDelay, err = time.ParseDuration(theme.MismatchDelay); err != nil {
				return nil, fmt.Errorf("theme %s: invalid mismatch_delay: %v", name, err)
			}
		}
		r.Themes[name] = timing
	}
	if f.DefaultTheme != "" {
		r.DefaultTheme = f.DefaultTheme
	}
	if f.ClockInterval != "" {
		interval, err := time.ParseDuration(f.ClockInterval)
		if err != nil {
			return nil, fmt.Errorf("invalid clock_interval: %v", err)
		}
		r.ClockInterval = interval
	}

	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules: %v", err)
	}
	return r, nil
}
