package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/okian/scouthub/internal/probe"
)

var (
	probeURL     string
	probeTimeout time.Duration
	probeQueries []string
)

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Check a running server against the reference dataset",
	Long: "Fetches /leaderboards and one /search per query concurrently from --url and " +
		"verifies the reference ordering. Exits non-zero when a check fails.",
	Args: cobra.NoArgs,
	RunE: runProbe,
}

func init() {
	def := probe.DefaultConfig()
	probeCmd.Flags().StringVar(&probeURL, "url", def.BaseURL, "Base URL of the server")
	probeCmd.Flags().DurationVar(&probeTimeout, "timeout", def.Timeout, "HTTP request timeout")
	probeCmd.Flags().StringSliceVarP(&probeQueries, "query", "q", def.Queries, "Search queries to fetch")
}

func runProbe(cmd *cobra.Command, _ []string) error {
	report, err := probe.Run(cmd.Context(), &probe.Config{
		BaseURL: probeURL,
		Timeout: probeTimeout,
		Queries: probeQueries,
	})
	if report != nil && len(report.Checks) > 0 {
		fmt.Fprint(cmd.OutOrStdout(), formatReport(report))
	}
	return err
}
