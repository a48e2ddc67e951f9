package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var playerCmd = &cobra.Command{
	Use:   "player <id>",
	Short: "Show a player profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlayer,
}

func runPlayer(cmd *cobra.Command, args []string) error {
	svc, err := loadService(cmd.Context())
	if err != nil {
		return err
	}
	defer svc.Stop()

	p, err := svc.PlayerProfile(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatPlayerProfile(p))
	return nil
}
