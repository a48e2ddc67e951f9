package model

// Ranked is anything a leaderboard can order: an identity, a display label and
// a stat lookup by key.
type Ranked interface {
	Key() string
	Label() string
	Stat(key string) (StatValue, bool)
}

var (
	_ Ranked = Player{}
	_ Ranked = Team{}
)
