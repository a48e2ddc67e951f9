// Package service provides the core business service that implements
// the dependencies required by the HTTP API and the CLI.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/okian/scouthub/internal/adapters/repository"
	"github.com/okian/scouthub/internal/domain/model"
	"github.com/okian/scouthub/internal/domain/ranking"
	"github.com/okian/scouthub/internal/domain/search"
	"github.com/okian/scouthub/internal/domain/types"
	"github.com/okian/scouthub/pkg/logger"
	"github.com/okian/scouthub/pkg/metrics"
)

// Collection names accepted by Leaderboard.
const (
	CollectionPlayers = metrics.CollectionPlayers
	CollectionTeams   = metrics.CollectionTeams
)

// Default limits.
const (
	defaultSearchLimit      = search.DefaultLimit
	defaultLeaderboardLimit = 10
	defaultMaxLimit         = 50
	defaultFeaturedCount    = 0
	standardBoardSize       = 10
)

// board describes one of the standard leaderboards.
type board struct {
	title      string
	collection string
	stat       string
}

var standardBoards = []board{ //nolint:gochecknoglobals // fixed board layout
	{title: "Top Scorers", collection: CollectionPlayers, stat: model.StatPoints},
	{title: "Top Rebounders", collection: CollectionPlayers, stat: model.StatRebounds},
	{title: "Top Assisters", collection: CollectionPlayers, stat: model.StatAssists},
	{title: "Best Records", collection: CollectionTeams, stat: model.StatWins},
}

// Service implements the read API over the scouting dataset.
type Service struct {
	mu sync.RWMutex

	// Core components
	store  repository.Store
	source repository.Source
	engine *search.Engine

	// Configuration
	searchLimit      int
	leaderboardLimit int
	maxLimit         int
	featuredCount    int

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore sets the store. It takes precedence over WithSource.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithSource sets the dataset source used to build the default store.
func WithSource(source repository.Source) Option {
	return func(s *Service) {
		if source != nil {
			s.source = source
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithSearchLimit sets the per-list search cap.
func WithSearchLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.searchLimit = n
		}
	}
}

// WithLeaderboardLimits sets the default and maximum leaderboard sizes.
func WithLeaderboardLimits(def, maxLimit int) Option {
	return func(s *Service) {
		if def > 0 && maxLimit >= def {
			s.leaderboardLimit = def
			s.maxLimit = maxLimit
		}
	}
}

// WithFeaturedCount sets the number of featured players; 0 features every player.
func WithFeaturedCount(n int) Option {
	return func(s *Service) {
		if n >= 0 {
			s.featuredCount = n
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		searchLimit:      defaultSearchLimit,
		leaderboardLimit: defaultLeaderboardLimit,
		maxLimit:         defaultMaxLimit,
		featuredCount:    defaultFeaturedCount,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}
	if s.store == nil {
		if s.source == nil {
			s.source = repository.NewEmbeddedSource()
		}
		s.store = repository.NewMemoryStore(s.source, repository.WithLogger(s.logger.Named("repository")))
	}
	s.engine = search.NewEngine(s.store, search.WithLimit(s.searchLimit))

	return s
}

// Start loads players and teams. It is idempotent. A failed load is not an
// error: the collections stay empty and ErrorMessage reports why.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	s.logger.Info(ctx, "starting scout hub service...")

	players := s.store.LoadPlayers(ctx)
	teams := s.store.LoadTeams(ctx)
	if msg := s.store.ErrorMessage(); msg != "" {
		s.logger.Warn(ctx, "dataset unavailable", logger.String("message", msg))
	}

	s.started = true
	s.logger.Info(ctx, "scout hub service started",
		logger.Int("players", len(players)),
		logger.Int("teams", len(teams)),
		logger.Int("searchLimit", s.searchLimit),
		logger.Int("maxLeaderboardLimit", s.maxLimit),
	)
	return nil
}

// Stop marks the service stopped. The loaded dataset is kept.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "scout hub service stopped")
}

// Search returns players and teams matching q.
func (s *Service) Search(ctx context.Context, q string) search.Results {
	start := time.Now()
	res := s.engine.Search(q)
	s.recordSearch(ctx, "all", q, len(res.Players), len(res.Teams), start)
	return res
}

// SearchPlayers returns players matching q.
func (s *Service) SearchPlayers(ctx context.Context, q string) []model.Player {
	start := time.Now()
	res := s.engine.SearchPlayers(q)
	s.recordSearch(ctx, CollectionPlayers, q, len(res), 0, start)
	return res
}

// SearchTeams returns teams matching q.
func (s *Service) SearchTeams(ctx context.Context, q string) []model.Team {
	start := time.Now()
	res := s.engine.SearchTeams(q)
	s.recordSearch(ctx, CollectionTeams, q, 0, len(res), start)
	return res
}

func (s *Service) recordSearch(ctx context.Context, scope, q string, players, teams int, start time.Time) {
	if search.Normalize(q) == "" {
		metrics.RecordEmptyQuery()
	}
	metrics.RecordSearch(scope, players, teams, float64(time.Since(start).Microseconds())/1000)
	s.logger.Debug(ctx, "search served",
		logger.String("scope", scope),
		logger.String("query", q),
		logger.Int("players", players),
		logger.Int("teams", teams),
	)
}

// Leaderboard ranks a collection by stat. A zero limit selects the default size.
func (s *Service) Leaderboard(ctx context.Context, collection, stat string, limit int, dir ranking.Direction) (types.Leaderboard, error) {
	const op = "service.leaderboard"

	if limit < 0 || limit > s.maxLimit {
		return types.Leaderboard{}, fmt.Errorf("%s: limit %d outside 0..%d: %w", op, limit, s.maxLimit, types.ErrInvalidArgument)
	}
	if limit == 0 {
		limit = s.leaderboardLimit
	}
	lb, err := s.rank(ctx, collection, stat, limit, dir)
	if err != nil {
		return types.Leaderboard{}, fmt.Errorf("%s: %w", op, err)
	}
	return lb, nil
}

// rank builds one board without checking limit against the configured bounds.
func (s *Service) rank(ctx context.Context, collection, stat string, limit int, dir ranking.Direction) (types.Leaderboard, error) {
	start := time.Now()
	var entries []types.Entry
	switch collection {
	case CollectionPlayers:
		if !model.IsPlayerStat(stat) {
			return types.Leaderboard{}, fmt.Errorf("unknown player stat %q: %w", stat, types.ErrInvalidArgument)
		}
		entries = ranking.Entries(ranking.TopN(s.store.Players(), stat, limit, dir), stat)
	case CollectionTeams:
		if !model.IsTeamStat(stat) {
			return types.Leaderboard{}, fmt.Errorf("unknown team stat %q: %w", stat, types.ErrInvalidArgument)
		}
		entries = ranking.Entries(ranking.TopN(s.store.Teams(), stat, limit, dir), stat)
	default:
		return types.Leaderboard{}, fmt.Errorf("unknown collection %q: %w", collection, types.ErrInvalidArgument)
	}
	metrics.RecordLeaderboard(collection, stat, float64(time.Since(start).Microseconds())/1000)

	s.logger.Debug(ctx, "leaderboard served",
		logger.String("collection", collection),
		logger.String("stat", stat),
		logger.Int("limit", limit),
		logger.String("direction", dir.String()),
	)

	return types.Leaderboard{
		Title:      boardTitle(collection, stat),
		Collection: collection,
		Stat:       stat,
		Direction:  dir.String(),
		Entries:    entries,
	}, nil
}

func boardTitle(collection, stat string) string {
	for _, b := range standardBoards {
		if b.collection == collection && b.stat == stat {
			return b.title
		}
	}
	return collection + " by " + stat
}

// Leaderboards returns the standard boards: points, rebounds and assists for
// players, wins for teams. Each is the top ten in descending order regardless
// of the configured leaderboard limits.
func (s *Service) Leaderboards(ctx context.Context) ([]types.Leaderboard, error) {
	out := make([]types.Leaderboard, 0, len(standardBoards))
	for _, b := range standardBoards {
		lb, err := s.rank(ctx, b.collection, b.stat, standardBoardSize, ranking.Desc)
		if err != nil {
			return nil, err
		}
		out = append(out, lb)
	}
	return out, nil
}

// Players returns every player in load order.
func (s *Service) Players(_ context.Context) []model.Player {
	return s.store.Players()
}

// Teams returns every team in load order.
func (s *Service) Teams(_ context.Context) []model.Team {
	return s.store.Teams()
}

// FeaturedPlayers returns the first n players in load order. A negative n
// selects the configured count, where 0 means every player.
func (s *Service) FeaturedPlayers(_ context.Context, n int) []model.Player {
	players := s.store.Players()
	if n < 0 {
		n = s.featuredCount
		if n == 0 {
			return players
		}
	}
	if n < len(players) {
		players = players[:n]
	}
	return players
}

// PlayerProfile returns the player with id and their team when it resolves.
func (s *Service) PlayerProfile(ctx context.Context, id string) (types.PlayerProfile, error) {
	p, ok := s.store.Player(id)
	if !ok {
		s.logger.Warn(ctx, "player not found", logger.String("id", id))
		return types.PlayerProfile{}, fmt.Errorf("service.player_profile: player %q: %w", id, types.ErrNotFound)
	}
	profile := types.PlayerProfile{Player: p}
	if t, ok := s.store.Team(p.TeamID); ok {
		profile.Team = &t
	}
	return profile, nil
}

// TeamProfile returns the team with id, its record and the resolved roster.
// Roster ids with no matching player are skipped.
func (s *Service) TeamProfile(ctx context.Context, id string) (types.TeamProfile, error) {
	t, ok := s.store.Team(id)
	if !ok {
		s.logger.Warn(ctx, "team not found", logger.String("id", id))
		return types.TeamProfile{}, fmt.Errorf("service.team_profile: team %q: %w", id, types.ErrNotFound)
	}
	roster := make([]model.Player, 0, len(t.Roster))
	for _, pid := range t.Roster {
		p, ok := s.store.Player(pid)
		if !ok {
			s.logger.Warn(ctx, "roster references unknown player",
				logger.String("team", t.ID),
				logger.String("player", pid))
			continue
		}
		roster = append(roster, p)
	}
	return types.TeamProfile{Team: t, Record: t.Record(), Roster: roster}, nil
}

// ErrorMessage returns the user-facing message of the last failed load.
func (s *Service) ErrorMessage() string {
	return s.store.ErrorMessage()
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":             s.started,
		"searchLimit":         s.searchLimit,
		"leaderboardLimit":    s.leaderboardLimit,
		"maxLeaderboardLimit": s.maxLimit,
		"featuredCount":       s.featuredCount,
	}
	if s.started {
		stats["players"] = len(s.store.Players())
		stats["teams"] = len(s.store.Teams())
		if msg := s.store.ErrorMessage(); msg != "" {
			stats["error"] = msg
		}
	}
	return stats
}

// MaxLeaderboardLimit returns the largest accepted leaderboard limit.
func (s *Service) MaxLeaderboardLimit() int { return s.maxLimit }
