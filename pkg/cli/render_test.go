package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/cbodonnell/pairs/pkg/game/types"
	"github.com/cbodonnell/pairs/pkg/messages"
	"github.com/cbodonnell/pairs/pkg/repositories/models"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func init() {
	color.NoColor = true
}

func TestBoardColumns(t *testing.T) {
	tests := []struct {
		cards, width, want int
	}{
		{cards: 0, width: 80, want: 1},
		{cards: 12, width: 0, want: 4},
		{cards: 12, width: 80, want: 4},
		{cards: 16, width: 80, want: 4},
		{cards: 36, width: 80, want: 6},
		{cards: 36, width: 30, want: 3},
		{cards: 36, width: 5, want: 6},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, boardColumns(tt.cards, tt.width), "cards=%d width=%d", tt.cards, tt.width)
	}
}

func TestRenderBoard(t *testing.T) {
	update := &messages.ServerSessionUpdate{
		Cards: []messages.CardView{
			{Position: 0, State: types.FaceStateHidden},
			{Position: 1, State: types.FaceStateRevealed, Token: "C"},
			{Position: 2, State: types.FaceStateMatched, Token: "D"},
			{Position: 3, State: types.FaceStateMatched, Token: "D"},
		},
	}
	buf := &bytes.Buffer{}
	RenderBoard(buf, update, 80)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], " 1 [?]")
	assert.Contains(t, lines[0], " 2 C")
	assert.Contains(t, lines[1], " 4 D")
}

func TestRenderStatus(t *testing.T) {
	buf := &bytes.Buffer{}
	RenderStatus(buf, &messages.ServerSessionUpdate{
		Mode:           types.ModeSingle,
		ElapsedSeconds: 65,
		Reveals:        7,
		MaxReveals:     48,
		MatchedPairs:   2,
		TotalPairs:     6,
	})
	assert.Equal(t, "Time 1:05  Reveals 7/48  Pairs 2/6\n", buf.String())

	buf.Reset()
	RenderStatus(buf, &messages.ServerSessionUpdate{
		Mode:  types.ModeMulti,
		Phase: types.PhaseActive,
		Turn:  1,
		Players: []types.Player{
			{Name: "ana", MatchedCount: 2, RevealCount: 6},
			{Name: "ben", MatchedCount: 1, RevealCount: 4},
		},
	})
	assert.Equal(t, "  ana: 2 pairs, 6 reveals\n> ben: 1 pairs, 4 reveals\n", buf.String())
}

func TestRenderResult(t *testing.T) {
	tests := []struct {
		name   string
		result *types.GameResult
		want   string
	}{
		{name: "none"},
		{
			name:   "solo win",
			result: &types.GameResult{Mode: types.ModeSingle, Outcome: types.OutcomeWin, ElapsedSeconds: 42, TotalReveals: 18},
			want:   "You found every pair in 0:42 with 18 reveals!\n",
		},
		{
			name:   "solo loss",
			result: &types.GameResult{Mode: types.ModeSingle, Outcome: types.OutcomeLoss},
			want:   "Out of reveals. Better luck next time.\n",
		},
		{
			name:   "battle",
			result: &types.GameResult{Mode: types.ModeMulti, Outcome: types.OutcomeWin, Winner: "ana", Score: "3 - 0"},
			want:   "ana wins! 3 - 0\n",
		},
		{
			name:   "tie",
			result: &types.GameResult{Mode: types.ModeMulti, Outcome: types.OutcomeTie, Winner: types.TieWinner, Score: "2 - 2"},
			want:   "It's a tie! 2 - 2\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			RenderResult(buf, tt.result)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestRenderTables(t *testing.T) {
	buf := &bytes.Buffer{}
	RenderHallOfFame(buf, nil)
	assert.Equal(t, "No entries yet.\n", buf.String())

	buf.Reset()
	RenderHallOfFame(buf, []*models.SoloResult{{Name: "ana", Difficulty: "hard", TimeSeconds: 75, Reveals: 20}})
	assert.Contains(t, buf.String(), "NAME")
	assert.Regexp(t, `1\s+ana\s+hard\s+1:15\s+20`, buf.String())

	buf.Reset()
	RenderBattles(buf, []*models.BattleResult{{
		Player1: "ana", Player2: "ben", Player1Score: 3, Winner: "ana", Difficulty: "easy",
		CreatedAt: time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
	}})
	assert.Regexp(t, `ana vs ben\s+3 - 0\s+ana\s+easy\s+2024-03-01 09:30`, buf.String())
}
