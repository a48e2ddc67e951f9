package model

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Sentinel is the placeholder the dataset uses for a stat that was not recorded.
const Sentinel = "-"

// StatValue is either a recorded number or the "unavailable" sentinel.
// The zero value is unavailable.
type StatValue struct {
	value     float64
	available bool
}

// Num returns a recorded stat value.
func Num(v float64) StatValue { return StatValue{value: v, available: true} }

// Unavailable returns the sentinel stat value.
func Unavailable() StatValue { return StatValue{} }

// Float returns the recorded number and whether one was recorded.
func (s StatValue) Float() (float64, bool) { return s.value, s.available }

// Available reports whether the stat was recorded.
func (s StatValue) Available() bool { return s.available }

// OrZero returns the recorded number, or 0 for the sentinel.
// Ranking relies on this coercion, so an unavailable stat ties with a real 0.
func (s StatValue) OrZero() float64 {
	if !s.available {
		return 0
	}
	return s.value
}

// String renders the value the way the dataset does ("-" for unavailable).
func (s StatValue) String() string {
	if !s.available {
		return Sentinel
	}
	return strconv.FormatFloat(s.value, 'f', -1, 64)
}

// MarshalJSON encodes a number, or the sentinel string.
func (s StatValue) MarshalJSON() ([]byte, error) {
	if !s.available {
		return json.Marshal(Sentinel)
	}
	return json.Marshal(s.value)
}

// UnmarshalJSON accepts numbers, numeric strings, the sentinel and null.
// Anything that does not parse as a number becomes unavailable.
func (s *StatValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*s = Unavailable()
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	raw := string(data)
	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		raw = strings.TrimSpace(str)
	}
	if raw == "" || raw == Sentinel {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	*s = Num(v)
	return nil
}

// Stats maps a stat key to its value.
type Stats map[string]StatValue

// Get returns the value for key and whether the key is present.
func (s Stats) Get(key string) (StatValue, bool) {
	v, ok := s[key]
	return v, ok
}

// Player stat keys.
const (
	StatPoints        = "pts"
	StatRebounds      = "reb"
	StatAssists       = "ast"
	StatFieldGoalPct  = "fg_pct"
	StatThreePointPct = "three_pct"
	StatFreeThrowPct  = "ft_pct"
	StatSteals        = "stl"
	StatBlocks        = "blk"
	StatTurnovers     = "tov"
)

// Team stat keys.
const (
	StatWins          = "wins"
	StatLosses        = "losses"
	StatPointsPerGame = "ppg"
	StatOppPointsPG   = "oppg"
	StatDefRating     = "def_rating"
)

// PlayerStatKeys lists every stat key a Player carries.
var PlayerStatKeys = []string{
	StatPoints, StatRebounds, StatAssists,
	StatFieldGoalPct, StatThreePointPct, StatFreeThrowPct,
	StatSteals, StatBlocks, StatTurnovers,
}

// TeamStatKeys lists every stat key a Team carries.
var TeamStatKeys = []string{
	StatWins, StatLosses, StatPointsPerGame, StatOppPointsPG, StatDefRating,
}

// IsPlayerStat reports whether key is a known player stat.
func IsPlayerStat(key string) bool { return contains(PlayerStatKeys, key) }

// IsTeamStat reports whether key is a known team stat.
func IsTeamStat(key string) bool { return contains(TeamStatKeys, key) }

func contains(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}
