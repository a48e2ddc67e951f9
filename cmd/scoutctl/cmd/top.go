package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okian/scouthub/internal/domain/ranking"
)

var (
	topLimit int
	topAsc   bool
)

var topCmd = &cobra.Command{
	Use:   "top <collection> <stat>",
	Short: "Print a leaderboard",
	Long:  "Rank players or teams by one stat, e.g. `scoutctl top players pts` or `scoutctl top teams wins --limit 3`.",
	Args:  cobra.ExactArgs(2),
	RunE:  runTop,
}

func init() {
	topCmd.Flags().IntVarP(&topLimit, "limit", "n", 0, "Number of entries (0 = configured default)")
	topCmd.Flags().BoolVar(&topAsc, "asc", false, "Lowest values first")
}

func runTop(cmd *cobra.Command, args []string) error {
	svc, err := loadService(cmd.Context())
	if err != nil {
		return err
	}
	defer svc.Stop()

	dir := ranking.Desc
	if topAsc {
		dir = ranking.Asc
	}
	lb, err := svc.Leaderboard(cmd.Context(), args[0], args[1], topLimit, dir)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatLeaderboard(lb))
	return nil
}
