package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/cbodonnell/pairs/pkg/game/types"
	"github.com/cbodonnell/pairs/pkg/messages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGame struct {
	messages chan *messages.Message
	starts   []*messages.ClientStart
	reveals  []int
	restarts int
}

func newFakeGame() *fakeGame {
	return &fakeGame{messages: make(chan *messages.Message, 8)}
}

func (f *fakeGame) Messages() <-chan *messages.Message { return f.messages }

func (f *fakeGame) Start(start *messages.ClientStart) error {
	f.starts = append(f.starts, start)
	return nil
}

func (f *fakeGame) Reveal(position int) error {
	f.reveals = append(f.reveals, position)
	return nil
}

func (f *fakeGame) Restart() error {
	f.restarts++
	return nil
}

func TestPlayer_handleInput(t *testing.T) {
	game := newFakeGame()
	out := &bytes.Buffer{}
	p := &player{game: game, out: out, start: &messages.ClientStart{Mode: "single"}}

	quit, err := p.handleInput("3")
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Equal(t, []int{2}, game.reveals)

	_, err = p.handleInput("zero")
	require.NoError(t, err)
	_, err = p.handleInput("0")
	require.NoError(t, err)
	assert.Equal(t, []int{2}, game.reveals)
	assert.Contains(t, out.String(), `"zero" is not a card number`)

	p.finished = true
	_, err = p.handleInput("4")
	require.NoError(t, err)
	assert.Equal(t, []int{2}, game.reveals)

	_, err = p.handleInput("r")
	require.NoError(t, err)
	assert.Equal(t, 1, game.restarts)
	assert.Len(t, game.starts, 1)
	assert.False(t, p.finished)

	quit, err = p.handleInput("Q")
	require.NoError(t, err)
	assert.True(t, quit)
}

func TestPlayer_handleMessage(t *testing.T) {
	out := &bytes.Buffer{}
	p := &player{game: newFakeGame(), out: out}

	update, err := messages.NewMessage(0, messages.MessageTypeServerSession, &messages.ServerSessionUpdate{
		Phase:        types.PhaseVictory,
		Mode:         types.ModeSingle,
		Cards:        []messages.CardView{{Position: 0, State: types.FaceStateMatched, Token: "A"}, {Position: 1, State: types.FaceStateMatched, Token: "A"}},
		MatchedPairs: 1,
		TotalPairs:   1,
		Result:       &types.GameResult{Mode: types.ModeSingle, Outcome: types.OutcomeWin, ElapsedSeconds: 3, TotalReveals: 2},
	})
	require.NoError(t, err)
	require.NoError(t, p.handleMessage(update))
	assert.True(t, p.finished)
	assert.Contains(t, out.String(), "You found every pair in 0:03 with 2 reveals!")

	notice, err := messages.NewMessage(0, messages.MessageTypeServerNotice, &messages.ServerNotice{Message: "your result could not be saved"})
	require.NoError(t, err)
	require.NoError(t, p.handleMessage(notice))
	assert.Contains(t, out.String(), "your result could not be saved")

	idle, err := messages.NewMessage(0, messages.MessageTypeServerSession, &messages.ServerSessionUpdate{Phase: types.PhaseIdle})
	require.NoError(t, err)
	out.Reset()
	require.NoError(t, p.handleMessage(idle))
	assert.Empty(t, out.String())
}

func TestPlayer_run(t *testing.T) {
	game := newFakeGame()
	out := &bytes.Buffer{}
	start := &messages.ClientStart{Mode: "single", Difficulty: "easy"}
	p := &player{game: game, out: out, start: start}

	err := p.run(context.Background(), strings.NewReader("1\n2\nq\n"))
	require.NoError(t, err)
	assert.Equal(t, []*messages.ClientStart{start}, game.starts)
	assert.Equal(t, []int{0, 1}, game.reveals)
}

func TestPlayer_runConnectionClosed(t *testing.T) {
	game := newFakeGame()
	close(game.messages)
	p := &player{game: game, out: &bytes.Buffer{}, start: &messages.ClientStart{}}

	stdin, w := io.Pipe()
	defer w.Close()
	err := p.run(context.Background(), stdin)
	assert.Error(t, err)
}
