package workers

import (
	"context"
	"errors"
	"io"
	"testing"

	mocks "github.com/cbodonnell/pairs/mocks/github.com/cbodonnell/pairs/pkg/repositories"
	"github.com/cbodonnell/pairs/pkg/game/types"
	"github.com/cbodonnell/pairs/pkg/log"
	"github.com/cbodonnell/pairs/pkg/messages"
	"github.com/cbodonnell/pairs/pkg/metrics"
	"github.com/cbodonnell/pairs/pkg/repositories/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	log.SetDefaultLogger(log.New(io.Discard, "", 0, log.LogLevelError))
}

var (
	soloWin = types.GameResult{
		Outcome:        types.OutcomeWin,
		Mode:           types.ModeSingle,
		Difficulty:     types.DifficultyHard,
		ElapsedSeconds: 42,
		TotalReveals:   18,
		Name:           "ana",
	}
	battleTie = types.GameResult{
		Outcome:      types.OutcomeTie,
		Mode:         types.ModeMulti,
		Difficulty:   types.DifficultyEasy,
		TotalReveals: 10,
		Players: []types.Player{
			{Name: "ana", RevealCount: 6, MatchedCount: 2},
			{Name: "ben", RevealCount: 4, MatchedCount: 2},
		},
		Winner: types.TieWinner,
		Score:  "2 - 2",
	}
)

func newTestSaveResultWorker(t *testing.T, repository *mocks.Repository, serverMessageChan chan ServerMessage) *SaveResultWorker {
	return NewSaveResultWorker(NewSaveResultWorkerOptions{
		Repository:        repository,
		ServerMessageChan: serverMessageChan,
		Metrics:           metrics.NewCollector(metrics.Namespace),
	})
}

func TestSaveResultWorker_saveResult(t *testing.T) {
	tests := []struct {
		name   string
		result types.GameResult
		setup  func(repository *mocks.Repository)
		kind   string
	}{
		{
			name:   "solo win",
			result: soloWin,
			setup: func(repository *mocks.Repository) {
				repository.EXPECT().SaveSoloResult(mock.Anything, &models.SoloResult{
					Name:        "ana",
					Difficulty:  "hard",
					TimeSeconds: 42,
					Reveals:     18,
				}).Return(&models.SoloResult{ID: 1}, nil).Once()
			},
			kind: "solo",
		},
		{
			name:   "battle tie",
			result: battleTie,
			setup: func(repository *mocks.Repository) {
				repository.EXPECT().SaveBattleResult(mock.Anything, &models.BattleResult{
					Player1:      "ana",
					Player2:      "ben",
					Player1Score: 2,
					Player2Score: 2,
					Winner:       "tie",
					Difficulty:   "easy",
				}).Return(&models.BattleResult{ID: 1}, nil).Once()
			},
			kind: "battle",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repository := mocks.NewRepository(t)
			tt.setup(repository)
			serverMessageChan := make(chan ServerMessage, 1)
			w := newTestSaveResultWorker(t, repository, serverMessageChan)

			w.saveResult(context.Background(), SaveResultRequest{ClientID: 9, Result: tt.result})

			assert.Empty(t, serverMessageChan)
			assert.Equal(t, 1.0, testutil.ToFloat64(w.metrics.ResultSaves.WithLabelValues(tt.kind, "ok")))
		})
	}
}

func TestSaveResultWorker_failureSendsNotice(t *testing.T) {
	repository := mocks.NewRepository(t)
	repository.EXPECT().SaveSoloResult(mock.Anything, mock.Anything).Return(nil, errors.New("database is locked")).Once()
	serverMessageChan := make(chan ServerMessage, 1)
	w := newTestSaveResultWorker(t, repository, serverMessageChan)

	w.saveResult(context.Background(), SaveResultRequest{ClientID: 9, Result: soloWin})

	require.Len(t, serverMessageChan, 1)
	msg := <-serverMessageChan
	assert.Equal(t, uint32(9), msg.ClientID)
	assert.Equal(t, messages.MessageTypeServerNotice, msg.Message.Type)
	notice := &messages.ServerNotice{}
	require.NoError(t, messages.DecodePayload(msg.Message, notice))
	assert.Equal(t, SaveFailureNotice, notice.Message)
	assert.Equal(t, 1.0, testutil.ToFloat64(w.metrics.ResultSaves.WithLabelValues("solo", "error")))
}

func TestSaveResultWorker_breakerOpensAfterConsecutiveFailures(t *testing.T) {
	repository := mocks.NewRepository(t)
	repository.EXPECT().SaveSoloResult(mock.Anything, mock.Anything).Return(nil, errors.New("connection refused")).Times(5)
	serverMessageChan := make(chan ServerMessage, 10)
	w := newTestSaveResultWorker(t, repository, serverMessageChan)

	for i := 0; i < 7; i++ {
		w.saveResult(context.Background(), SaveResultRequest{ClientID: 9, Result: soloWin})
	}

	// the open breaker still reports every lost result
	assert.Len(t, serverMessageChan, 7)
}

func TestSaveResultWorker_noticeDoesNotBlock(t *testing.T) {
	repository := mocks.NewRepository(t)
	repository.EXPECT().SaveSoloResult(mock.Anything, mock.Anything).Return(nil, errors.New("boom")).Once()
	w := newTestSaveResultWorker(t, repository, make(chan ServerMessage))

	w.saveResult(context.Background(), SaveResultRequest{ClientID: 9, Result: soloWin})
}

func TestBattleResultFromGameResult_needsTwoPlayers(t *testing.T) {
	_, err := BattleResultFromGameResult(types.GameResult{Mode: types.ModeMulti, Players: []types.Player{{Name: "ana"}}})
	assert.Error(t, err)
}
