package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var teamCmd = &cobra.Command{
	Use:   "team <id>",
	Short: "Show a team profile with its roster",
	Args:  cobra.ExactArgs(1),
	RunE:  runTeam,
}

func runTeam(cmd *cobra.Command, args []string) error {
	svc, err := loadService(cmd.Context())
	if err != nil {
		return err
	}
	defer svc.Stop()

	t, err := svc.TeamProfile(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatTeamProfile(t))
	return nil
}
