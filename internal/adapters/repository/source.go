package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/okian/scouthub/internal/domain/model"
)

// Source supplies the raw collections to a Store.
type Source interface {
	// Name identifies the source in logs.
	Name() string
	LoadPlayers(ctx context.Context) ([]model.Player, error)
	LoadTeams(ctx context.Context) ([]model.Team, error)
}

// EmbeddedSource reads the dataset compiled into the binary.
type EmbeddedSource struct{}

// NewEmbeddedSource returns the built-in dataset source.
func NewEmbeddedSource() *EmbeddedSource { return &EmbeddedSource{} }

// Name implements Source.
func (EmbeddedSource) Name() string { return "embedded" }

// LoadPlayers implements Source.
func (EmbeddedSource) LoadPlayers(_ context.Context) ([]model.Player, error) {
	data, err := embeddedData.ReadFile("data/players.json")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	return decodePlayers(data)
}

// LoadTeams implements Source.
func (EmbeddedSource) LoadTeams(_ context.Context) ([]model.Team, error) {
	data, err := embeddedData.ReadFile("data/teams.json")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	return decodeTeams(data)
}

// FileSource reads a JSON document of the form {"players": [...], "teams": [...]}.
// The file is read on every call; the Store caches the result.
type FileSource struct {
	path string
}

// NewFileSource returns a source backed by the dataset file at path.
func NewFileSource(path string) *FileSource { return &FileSource{path: path} }

// Name implements Source.
func (s *FileSource) Name() string { return "file:" + s.path }

// LoadPlayers implements Source.
func (s *FileSource) LoadPlayers(_ context.Context) ([]model.Player, error) {
	raw, err := s.section("players")
	if err != nil {
		return nil, err
	}
	return decodePlayers(raw)
}

// LoadTeams implements Source.
func (s *FileSource) LoadTeams(_ context.Context) ([]model.Team, error) {
	raw, err := s.section("teams")
	if err != nil {
		return nil, err
	}
	return decodeTeams(raw)
}

func (s *FileSource) section(key string) (json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrDataUnavailable, s.path, err)
	}
	raw, ok := doc[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s missing from %s", ErrDataUnavailable, key, s.path)
	}
	return raw, nil
}

func decodePlayers(data []byte) ([]model.Player, error) {
	var players []model.Player
	if err := json.Unmarshal(data, &players); err != nil {
		return nil, fmt.Errorf("%w: decode players: %v", ErrDataUnavailable, err)
	}
	if players == nil {
		return nil, fmt.Errorf("%w: players is null", ErrDataUnavailable)
	}
	seen := make(map[string]struct{}, len(players))
	for _, p := range players {
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("%w: %w: player %q", ErrDataUnavailable, ErrDuplicateID, p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return players, nil
}

func decodeTeams(data []byte) ([]model.Team, error) {
	var teams []model.Team
	if err := json.Unmarshal(data, &teams); err != nil {
		return nil, fmt.Errorf("%w: decode teams: %v", ErrDataUnavailable, err)
	}
	if teams == nil {
		return nil, fmt.Errorf("%w: teams is null", ErrDataUnavailable)
	}
	seen := make(map[string]struct{}, len(teams))
	for _, t := range teams {
		if _, dup := seen[t.ID]; dup {
			return nil, fmt.Errorf("%w: %w: team %q", ErrDataUnavailable, ErrDuplicateID, t.ID)
		}
		seen[t.ID] = struct{}{}
	}
	return teams, nil
}
