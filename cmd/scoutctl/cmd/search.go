package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search players and teams",
	Long: "Case-insensitive substring search over player names, teams and positions, " +
		"and team names and cities. Arguments are joined with spaces.",
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	svc, err := loadService(cmd.Context())
	if err != nil {
		return err
	}
	defer svc.Stop()

	q := strings.Join(args, " ")
	fmt.Fprint(cmd.OutOrStdout(), formatResults(q, svc.Search(cmd.Context(), q)))
	return nil
}
