package cli

import (
	"fmt"

	"github.com/cbodonnell/pairs/pkg/client"
	"github.com/spf13/cobra"
)

var leaderboardCmd = &cobra.Command{
	Use:       "leaderboard [solo|battle]",
	Aliases:   []string{"lb"},
	Short:     "Show the hall of fame or the latest battles",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"solo", "battle"},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		kind := "solo"
		if len(args) == 1 {
			kind = args[0]
		}

		api := client.NewAPIClient(cfg.APIURL)
		switch kind {
		case "solo":
			results, err := api.HallOfFame(cmd.Context())
			if err != nil {
				return err
			}
			RenderHallOfFame(cmd.OutOrStdout(), results)
		case "battle":
			results, err := api.Battles(cmd.Context())
			if err != nil {
				return err
			}
			RenderBattles(cmd.OutOrStdout(), results)
		default:
			return fmt.Errorf("unknown leaderboard %q, use solo or battle", kind)
		}
		return nil
	},
}
