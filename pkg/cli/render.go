package cli

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/cbodonnell/pairs/pkg/game/types"
	"github.com/cbodonnell/pairs/pkg/messages"
	"github.com/cbodonnell/pairs/pkg/repositories/models"
	"github.com/fatih/color"
)

// cellWidth is the printed width of one card, separator included.
const cellWidth = 9

var (
	hiddenColor   = color.New(color.FgHiBlack)
	revealedColor = color.New(color.FgYellow, color.Bold)
	matchedColor  = color.New(color.FgGreen)
	turnColor     = color.New(color.FgCyan, color.Bold)
	winColor      = color.New(color.FgGreen, color.Bold)
	lossColor     = color.New(color.FgRed, color.Bold)
)

// boardColumns picks a near-square grid that fits in width.
func boardColumns(cards, width int) int {
	if cards == 0 {
		return 1
	}
	cols := int(math.Ceil(math.Sqrt(float64(cards))))
	if width > 0 {
		if fit := width / cellWidth; fit > 0 && cols > fit {
			cols = fit
		}
	}
	if cols < 1 {
		cols = 1
	}
	return cols
}

// renderCard prints a card label padded to cellWidth. Positions are shown 1-based.
func renderCard(card messages.CardView) string {
	label := fmt.Sprintf("%2d", card.Position+1)
	switch card.State {
	case types.FaceStateRevealed:
		return label + " " + revealedColor.Sprint(pad(card.Token, cellWidth-3))
	case types.FaceStateMatched:
		return label + " " + matchedColor.Sprint(pad(card.Token, cellWidth-3))
	default:
		return label + " " + hiddenColor.Sprint(pad("[?]", cellWidth-3))
	}
}

func pad(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// RenderBoard writes the cards of a snapshot as a grid.
func RenderBoard(w io.Writer, update *messages.ServerSessionUpdate, width int) {
	cols := boardColumns(len(update.Cards), width)
	for i, card := range update.Cards {
		fmt.Fprint(w, renderCard(card))
		if (i+1)%cols == 0 || i == len(update.Cards)-1 {
			fmt.Fprintln(w)
		}
	}
}

// RenderStatus writes the counters under the board.
func RenderStatus(w io.Writer, update *messages.ServerSessionUpdate) {
	switch update.Mode {
	case types.ModeMulti:
		for i, player := range update.Players {
			line := fmt.Sprintf("%s: %d pairs, %d reveals", player.Name, player.MatchedCount, player.RevealCount)
			if i == update.Turn && update.Phase == types.PhaseActive {
				fmt.Fprintln(w, turnColor.Sprint("> "+line))
				continue
			}
			fmt.Fprintln(w, "  "+line)
		}
	default:
		fmt.Fprintf(w, "Time %s  Reveals %d/%d  Pairs %d/%d\n",
			types.FormatElapsed(update.ElapsedSeconds), update.Reveals, update.MaxReveals, update.MatchedPairs, update.TotalPairs)
	}
}

// RenderResult writes the end of game banner.
func RenderResult(w io.Writer, result *types.GameResult) {
	if result == nil {
		return
	}
	switch {
	case result.Mode == types.ModeMulti && result.Outcome == types.OutcomeTie:
		fmt.Fprintln(w, winColor.Sprintf("It's a tie! %s", result.Score))
	case result.Mode == types.ModeMulti:
		fmt.Fprintln(w, winColor.Sprintf("%s wins! %s", result.Winner, result.Score))
	case result.Outcome == types.OutcomeWin:
		fmt.Fprintln(w, winColor.Sprintf("You found every pair in %s with %d reveals!", types.FormatElapsed(result.ElapsedSeconds), result.TotalReveals))
	default:
		fmt.Fprintln(w, lossColor.Sprint("Out of reveals. Better luck next time."))
	}
}

// RenderHallOfFame writes the solo leaderboard as a table.
func RenderHallOfFame(w io.Writer, results []*models.SoloResult) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No entries yet.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNAME\tDIFFICULTY\tTIME\tREVEALS")
	for i, r := range results {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\n", i+1, r.Name, r.Difficulty, types.FormatElapsed(r.TimeSeconds), r.Reveals)
	}
	tw.Flush()
}

// RenderBattles writes the recent battles as a table.
func RenderBattles(w io.Writer, results []*models.BattleResult) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No battles yet.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PLAYERS\tSCORE\tWINNER\tDIFFICULTY\tDATE")
	for _, r := range results {
		fmt.Fprintf(tw, "%s vs %s\t%d - %d\t%s\t%s\t%s\n", r.Player1, r.Player2, r.Player1Score, r.Player2Score, r.Winner, r.Difficulty, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	tw.Flush()
}
