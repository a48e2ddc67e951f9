package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okian/scouthub/internal/adapters/repository"
	service "github.com/okian/scouthub/internal/app"
	"github.com/okian/scouthub/internal/config"
	"github.com/okian/scouthub/pkg/logger"
)

var dataPath string

// cfg is loaded once per invocation by the root pre-run hook.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "scoutctl",
	Short: "scoutctl: query the Scout Hub dataset",
	Long: "Search players and teams, print leaderboards and profiles from the embedded " +
		"dataset (or --data), and probe a running Scout Hub server.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "JSON dataset file (default: embedded dataset)")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(topCmd)
	rootCmd.AddCommand(playerCmd)
	rootCmd.AddCommand(teamCmd)
	rootCmd.AddCommand(typeCmd)
	rootCmd.AddCommand(probeCmd)
}

// setup routes logs to stderr and loads configuration. --data overrides
// SCOUT_DATA_PATH.
func setup(cmd *cobra.Command, _ []string) error {
	if err := logger.InitWithWriter(cmd.ErrOrStderr()); err != nil {
		return err
	}
	c, err := config.Load(cmd.Context())
	if err != nil {
		return err
	}
	if err := logger.SetLevelString(c.LogLevel); err != nil {
		return err
	}
	if dataPath != "" {
		c.DataPath = dataPath
	}
	cfg = c
	return nil
}

// loadService builds and starts a service over the configured dataset. A
// dataset that fails to load is reported as an error here, since an empty
// offline answer is never useful.
func loadService(ctx context.Context) (*service.Service, error) {
	var source repository.Source = repository.NewEmbeddedSource()
	if cfg.DataPath != "" {
		source = repository.NewFileSource(cfg.DataPath)
	}
	log := logger.Get()
	store := repository.NewMemoryStore(source, repository.WithLogger(log.Named("repository")))
	svc := service.New(
		service.WithStore(store),
		service.WithLogger(log.Named("service")),
		service.WithSearchLimit(cfg.SearchLimit),
		service.WithLeaderboardLimits(cfg.LeaderboardLimit, cfg.MaxLeaderboardLimit),
		service.WithFeaturedCount(cfg.FeaturedCount),
	)
	if err := svc.Start(ctx); err != nil {
		return nil, err
	}
	if msg := svc.ErrorMessage(); msg != "" {
		return nil, fmt.Errorf("%s (%s)", msg, source.Name())
	}
	return svc, nil
}
