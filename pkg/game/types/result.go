package types

import "fmt"

type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLoss Outcome = "loss"
	OutcomeTie  Outcome = "tie"
)

// TieWinner is recorded as the winner of a battle that ended level.
const TieWinner = "tie"

// GameResult is the terminal record of a session.
type GameResult struct {
	Outcome        Outcome    `json:"outcome"`
	Mode           Mode       `json:"mode"`
	Difficulty     Difficulty `json:"difficulty"`
	ElapsedSeconds int        `json:"elapsedSeconds"`
	TotalReveals   int        `json:"totalReveals"`
	// Name is the solo player's name, if one was given.
	Name    string   `json:"name,omitempty"`
	Players []Player `json:"players,omitempty"`
	Winner  string   `json:"winner,omitempty"`
	Score   string   `json:"score,omitempty"`
}

// ScoreBattle compares matched pairs. It returns the index of the winning
// player, or -1 on a tie, and the score formatted as "a - b".
func ScoreBattle(a, b Player) (int, string) {
	score := fmt.Sprintf("%d - %d", a.MatchedCount, b.MatchedCount)
	switch {
	case a.MatchedCount > b.MatchedCount:
		return 0, score
	case b.MatchedCount > a.MatchedCount:
		return 1, score
	default:
		return -1, score
	}
}

// FormatElapsed renders seconds as m:ss.
func FormatElapsed(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
