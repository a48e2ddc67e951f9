package repository

import (
	"context"
	"sync"

	"github.com/okian/scouthub/internal/domain/model"
	"github.com/okian/scouthub/pkg/logger"
	"github.com/okian/scouthub/pkg/metrics"
)

// MemoryStore caches both collections in memory after the first load.
type MemoryStore struct {
	source Source
	logger logger.Logger

	mu           sync.RWMutex
	players      []model.Player
	teams        []model.Team
	playerIndex  map[string]int
	teamIndex    map[string]int
	playersReady bool
	teamsReady   bool
	errMessage   string
}

// NewMemoryStore creates a store that loads from source on first use.
func NewMemoryStore(source Source, opts ...Option) *MemoryStore {
	s := &MemoryStore{
		source:      source,
		playerIndex: map[string]int{},
		teamIndex:   map[string]int{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get().Named("repository")
	}
	return s
}

// LoadPlayers implements Store.
func (s *MemoryStore) LoadPlayers(ctx context.Context) []model.Player {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.playersReady {
		return clonePlayers(s.players)
	}
	if s.source == nil {
		s.errMessage = PlayersUnavailableMessage
		return []model.Player{}
	}

	players, err := s.source.LoadPlayers(ctx)
	if err != nil {
		s.errMessage = PlayersUnavailableMessage
		metrics.RecordStoreLoad(metrics.CollectionPlayers, "failure")
		metrics.RecordErrorByComponent("repository", "load_players")
		s.logger.Error(ctx, "failed to load players",
			logger.String("source", s.source.Name()),
			logger.Error(err))
		return []model.Player{}
	}

	s.players = players
	s.playerIndex = make(map[string]int, len(players))
	for i, p := range players {
		s.playerIndex[p.ID] = i
	}
	s.playersReady = true
	if s.errMessage == PlayersUnavailableMessage {
		s.errMessage = ""
	}
	metrics.RecordStoreLoad(metrics.CollectionPlayers, "success")
	metrics.UpdateStoreRecords(metrics.CollectionPlayers, len(players))
	s.logger.Info(ctx, "players loaded",
		logger.String("source", s.source.Name()),
		logger.Int("count", len(players)))
	return clonePlayers(s.players)
}

// LoadTeams implements Store.
func (s *MemoryStore) LoadTeams(ctx context.Context) []model.Team {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.teamsReady {
		return cloneTeams(s.teams)
	}
	if s.source == nil {
		s.errMessage = TeamsUnavailableMessage
		return []model.Team{}
	}

	teams, err := s.source.LoadTeams(ctx)
	if err != nil {
		s.errMessage = TeamsUnavailableMessage
		metrics.RecordStoreLoad(metrics.CollectionTeams, "failure")
		metrics.RecordErrorByComponent("repository", "load_teams")
		s.logger.Error(ctx, "failed to load teams",
			logger.String("source", s.source.Name()),
			logger.Error(err))
		return []model.Team{}
	}

	s.teams = teams
	s.teamIndex = make(map[string]int, len(teams))
	for i, t := range teams {
		s.teamIndex[t.ID] = i
	}
	s.teamsReady = true
	if s.errMessage == TeamsUnavailableMessage {
		s.errMessage = ""
	}
	metrics.RecordStoreLoad(metrics.CollectionTeams, "success")
	metrics.UpdateStoreRecords(metrics.CollectionTeams, len(teams))
	s.logger.Info(ctx, "teams loaded",
		logger.String("source", s.source.Name()),
		logger.Int("count", len(teams)))
	return cloneTeams(s.teams)
}

// Player implements Store.
func (s *MemoryStore) Player(id string) (model.Player, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.playersReady {
		s.logger.Warn(context.Background(), "players not loaded yet", logger.String("id", id))
		return model.Player{}, false
	}
	i, ok := s.playerIndex[id]
	metrics.RecordStoreLookup(metrics.CollectionPlayers, ok)
	if !ok {
		return model.Player{}, false
	}
	return clonePlayer(s.players[i]), true
}

// Team implements Store.
func (s *MemoryStore) Team(id string) (model.Team, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.teamsReady {
		s.logger.Warn(context.Background(), "teams not loaded yet", logger.String("id", id))
		return model.Team{}, false
	}
	i, ok := s.teamIndex[id]
	metrics.RecordStoreLookup(metrics.CollectionTeams, ok)
	if !ok {
		return model.Team{}, false
	}
	return cloneTeam(s.teams[i]), true
}

// Players implements Store.
func (s *MemoryStore) Players() []model.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.playersReady {
		s.logger.Warn(context.Background(), "players not loaded yet")
		return []model.Player{}
	}
	return clonePlayers(s.players)
}

// Teams implements Store.
func (s *MemoryStore) Teams() []model.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.teamsReady {
		s.logger.Warn(context.Background(), "teams not loaded yet")
		return []model.Team{}
	}
	return cloneTeams(s.teams)
}

// ErrorMessage implements Store.
func (s *MemoryStore) ErrorMessage() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errMessage
}

func clonePlayer(p model.Player) model.Player {
	p.Stats = cloneStats(p.Stats)
	return p
}

func cloneTeam(t model.Team) model.Team {
	t.Stats = cloneStats(t.Stats)
	if t.Roster != nil {
		t.Roster = append([]string(nil), t.Roster...)
	}
	return t
}

func cloneStats(in model.Stats) model.Stats {
	if in == nil {
		return nil
	}
	out := make(model.Stats, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func clonePlayers(in []model.Player) []model.Player {
	out := make([]model.Player, len(in))
	for i, p := range in {
		out[i] = clonePlayer(p)
	}
	return out
}

func cloneTeams(in []model.Team) []model.Team {
	out := make([]model.Team, len(in))
	for i, t := range in {
		out[i] = cloneTeam(t)
	}
	return out
}

var _ Store = (*MemoryStore)(nil)
