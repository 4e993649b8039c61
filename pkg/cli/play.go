package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/cbodonnell/pairs/pkg/client"
	"github.com/cbodonnell/pairs/pkg/game/types"
	"github.com/cbodonnell/pairs/pkg/messages"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Play connects to the game server and starts a game.

Type a card number and press enter to flip it. Type r to start over and q to quit.

Examples:
  pairs play
  pairs play --difficulty ultrahard --name ana
  pairs play --battle --players ana,ben`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		start := &messages.ClientStart{
			Mode:       "single",
			Difficulty: cfg.Difficulty,
			Theme:      cfg.Theme,
			Name:       cfg.PlayerName,
		}
		flags := cmd.Flags()
		if flags.Changed("difficulty") {
			start.Difficulty, _ = flags.GetString("difficulty")
		}
		if flags.Changed("theme") {
			start.Theme, _ = flags.GetString("theme")
		}
		if flags.Changed("name") {
			start.Name, _ = flags.GetString("name")
		}
		if battle, _ := flags.GetBool("battle"); battle {
			players, _ := flags.GetStringSlice("players")
			if len(players) != 2 {
				return fmt.Errorf("a battle needs exactly two --players")
			}
			start.Mode = "multi"
			start.Players = players
			start.Name = ""
		}

		ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		game, err := client.DialGame(ctx, cfg.GameURL)
		if err != nil {
			return err
		}
		defer game.Close()

		width, interactive := 0, term.IsTerminal(int(os.Stdout.Fd()))
		if interactive {
			if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
				width = w
			}
		}

		p := &player{
			game:        game,
			out:         cmd.OutOrStdout(),
			width:       width,
			clearScreen: interactive,
			start:       start,
		}
		return p.run(ctx, cmd.InOrStdin())
	},
}

func init() {
	playCmd.Flags().StringP("difficulty", "d", "", "easy, medium, hard or ultrahard")
	playCmd.Flags().StringP("theme", "t", "", "classic, calm or sound")
	playCmd.Flags().StringP("name", "n", "", "Name for the hall of fame")
	playCmd.Flags().BoolP("battle", "b", false, "Two players take turns")
	playCmd.Flags().StringSlice("players", nil, "The two player names of a battle")
}

// gameConn is the part of client.GameClient the player loop uses.
type gameConn interface {
	Messages() <-chan *messages.Message
	Start(start *messages.ClientStart) error
	Reveal(position int) error
	Restart() error
}

// player runs the interactive loop: server snapshots are drawn, input lines
// become reveals.
type player struct {
	game        gameConn
	out         io.Writer
	width       int
	clearScreen bool
	start       *messages.ClientStart

	// finished is set once the current game has ended.
	finished bool
}

func (p *player) run(ctx context.Context, in io.Reader) error {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- strings.TrimSpace(scanner.Text()):
			case <-ctx.Done():
				return
			}
		}
	}()

	if err := p.game.Start(p.start); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-p.game.Messages():
			if !ok {
				return fmt.Errorf("connection to the game server was closed")
			}
			if err := p.handleMessage(msg); err != nil {
				return err
			}
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			quit, err := p.handleInput(line)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		}
	}
}

func (p *player) handleMessage(msg *messages.Message) error {
	switch msg.Type {
	case messages.MessageTypeServerSession:
		update := &messages.ServerSessionUpdate{}
		if err := messages.DecodePayload(msg, update); err != nil {
			return err
		}
		p.draw(update)
	case messages.MessageTypeServerNotice:
		notice := &messages.ServerNotice{}
		if err := messages.DecodePayload(msg, notice); err != nil {
			return err
		}
		fmt.Fprintln(p.out, color.YellowString(notice.Message))
	case messages.MessageTypeServerError:
		serverErr := &messages.ServerError{}
		if err := messages.DecodePayload(msg, serverErr); err != nil {
			return err
		}
		fmt.Fprintln(p.out, color.RedString("error: %s", serverErr.Message))
	}
	return nil
}

func (p *player) draw(update *messages.ServerSessionUpdate) {
	if update.Phase == types.PhaseIdle {
		return
	}
	if p.clearScreen {
		fmt.Fprint(p.out, "\033[H\033[2J")
	}
	RenderBoard(p.out, update, p.width)
	fmt.Fprintln(p.out)
	RenderStatus(p.out, update)

	p.finished = update.Phase.IsTerminal()
	if p.finished {
		RenderResult(p.out, update.Result)
		fmt.Fprintln(p.out, "r to play again, q to quit")
	}
}

// handleInput applies one input line and reports whether to quit.
func (p *player) handleInput(line string) (bool, error) {
	switch strings.ToLower(line) {
	case "":
		return false, nil
	case "q", "quit":
		return true, nil
	case "r", "restart":
		if err := p.game.Restart(); err != nil {
			return false, err
		}
		p.finished = false
		return false, p.game.Start(p.start)
	}

	if p.finished {
		fmt.Fprintln(p.out, "r to play again, q to quit")
		return false, nil
	}
	n, err := strconv.Atoi(line)
	if err != nil || n < 1 {
		fmt.Fprintf(p.out, "%q is not a card number\n", line)
		return false, nil
	}
	return false, p.game.Reveal(n - 1)
}
