package cli

import (
	"github.com/cbodonnell/pairs/pkg/config"
	"github.com/cbodonnell/pairs/pkg/log"
	"github.com/spf13/cobra"
)

var (
	apiURLFlag   string
	gameURLFlag  string
	logLevelFlag string
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "pairs",
	Short: "Play the pairs memory game from a terminal",
	Long: `Pairs is a memory-matching card game. Flip two cards at a time and find
every pair before the reveal budget runs out, or battle a friend on the same
keyboard for the most pairs.

Settings are read from $XDG_CONFIG_HOME/pairs/config.toml.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLogLevel(logLevelFlag)
		if err != nil {
			return err
		}
		log.SetLevel(level)
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().StringVar(&apiURLFlag, "api-url", "", "API server URL (overrides config)")
	RootCmd.PersistentFlags().StringVar(&gameURLFlag, "game-url", "", "Game server WebSocket URL (overrides config)")
	RootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "error", "Log level")

	RootCmd.AddCommand(playCmd)
	RootCmd.AddCommand(leaderboardCmd)
	RootCmd.AddCommand(configCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// loadConfig reads the config file and applies the URL flags on top.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if apiURLFlag != "" {
		cfg.APIURL = apiURLFlag
	}
	if gameURLFlag != "" {
		cfg.GameURL = gameURLFlag
	}
	return cfg, nil
}
