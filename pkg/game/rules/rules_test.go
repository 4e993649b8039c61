package rules

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cbodonnell/pairs/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRules_MaxReveals(t *testing.T) {
	r := Default()
	tests := []struct {
		difficulty types.Difficulty
		deckSize   int
		want       int
	}{
		{difficulty: types.DifficultyEasy, deckSize: 12, want: 48},
		{difficulty: types.DifficultyMedium, deckSize: 12, want: 30},
		{difficulty: types.DifficultyHard, deckSize: 12, want: 20},
		{difficulty: types.DifficultyUltraHard, deckSize: 12, want: 16},
		{difficulty: types.DifficultyMedium, deckSize: 10, want: 25},
		{difficulty: types.DifficultyHard, deckSize: 10, want: 17},
		{difficulty: types.DifficultyEasy, deckSize: 0, want: 0},
	}
	for _, tt := range tests {
		t.Run(string(tt.difficulty), func(t *testing.T) {
			got, err := r.MaxReveals(tt.difficulty, tt.deckSize)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := r.MaxReveals("nightmare", 12)
	assert.Error(t, err)
}

func TestRules_lowerFactorIsMoreLenient(t *testing.T) {
	r := Default()
	previous := -1
	for i := len(types.Difficulties) - 1; i >= 0; i-- {
		got, err := r.MaxReveals(types.Difficulties[i], 12)
		require.NoError(t, err)
		assert.Greater(t, got, previous)
		previous = got
	}
}

func TestRules_Timing(t *testing.T) {
	r := Default()

	timing, err := r.Timing("")
	require.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, timing.MatchDelay)
	assert.Equal(t, time.Second, timing.MismatchDelay)

	timing, err = r.Timing(ThemeSound)
	require.NoError(t, err)
	assert.Equal(t, 2500*time.Millisecond, timing.MatchDelay)
	assert.Equal(t, 3*time.Second, timing.MismatchDelay)

	_, err = r.Timing("disco")
	assert.Error(t, err)
}

func TestDefault_isValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		check   func(t *testing.T, r *Rules)
		wantErr bool
	}{
		{
			name: "empty keeps defaults",
			data: "",
			check: func(t *testing.T, r *Rules) {
				assert.Equal(t, Default(), r)
			},
		},
		{
			name: "overrides and new theme",
			data: `
default_theme = "spooky"
clock_interval = "500ms"

[factors]
hard = 0.7

[themes.spooky]
match_delay = "2s"
mismatch_delay = "2500ms"

[themes.classic]
mismatch_delay = "1200ms"
`,
			check: func(t *testing.T, r *Rules) {
				assert.Equal(t, 0.7, r.Factors[types.DifficultyHard])
				assert.Equal(t, 0.25, r.Factors[types.DifficultyEasy])
				assert.Equal(t, "spooky", r.DefaultTheme)
				assert.Equal(t, 500*time.Millisecond, r.ClockInterval)
				assert.Equal(t, Timing{MatchDelay: 2 * time.Second, MismatchDelay: 2500 * time.Millisecond}, r.Themes["spooky"])
				assert.Equal(t, Timing{MatchDelay: 500 * time.Millisecond, MismatchDelay: 1200 * time.Millisecond}, r.Themes[ThemeClassic])
			},
		},
		{
			name:    "unknown difficulty",
			data:    "[factors]\nnightmare = 0.9\n",
			wantErr: true,
		},
		{
			name:    "factor out of range",
			data:    "[factors]\neasy = 1.5\n",
			wantErr: true,
		},
		{
			name:    "bad duration",
			data:    "[themes.classic]\nmatch_delay = \"soon\"\n",
			wantErr: true,
		},
		{
			name:    "undefined default theme",
			data:    "default_theme = \"disco\"\n",
			wantErr: true,
		},
		{
			name:    "new theme without mismatch delay",
			data:    "[themes.half]\nmatch_delay = \"1s\"\n",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.data)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, got)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.toml")
	require.NoError(t, os.WriteFile(path, []byte("[factors]\nmedium = 0.5\n"), 0644))

	r, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.5, r.Factors[types.DifficultyMedium])

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
