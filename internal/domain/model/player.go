// Package model contains domain models passed between layers.
package model

// Player is a single player record from the dataset.
// Team is denormalized display text; TeamID references Team.ID.
type Player struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Team     string `json:"team"`
	TeamID   string `json:"teamId"`
	Position string `json:"position"`
	Height   string `json:"height"`
	Weight   string `json:"weight"`
	Age      Age    `json:"age"`
	Wingspan string `json:"wingspan"`
	Stats    Stats  `json:"stats"`
	Color    string `json:"color"`
	Initials string `json:"initials"`
	Bio      string `json:"bio"`
}

// Age is a player's age in years; 0 means unknown. JSON accepts a number, a
// numeric string, the sentinel or null.
type Age int

// UnmarshalJSON decodes age as leniently as a stat value.
func (a *Age) UnmarshalJSON(data []byte) error {
	var v StatValue
	if err := v.UnmarshalJSON(data); err != nil {
		return err
	}
	*a = Age(v.OrZero())
	return nil
}

// Key implements Ranked.
func (p Player) Key() string { return p.ID }

// Label implements Ranked.
func (p Player) Label() string { return p.Name }

// Stat implements Ranked.
func (p Player) Stat(key string) (StatValue, bool) { return p.Stats.Get(key) }
