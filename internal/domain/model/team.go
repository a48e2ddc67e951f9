package model

// Team is a single team record. Roster holds Player IDs in display order and
// may reference players that are not in the dataset.
type Team struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	City       string   `json:"city"`
	Conference string   `json:"conference"`
	Division   string   `json:"division"`
	Stats      Stats    `json:"stats"`
	Roster     []string `json:"roster"`
	Color      string   `json:"color"`
	Logo       string   `json:"logo"`
}

// Key implements Ranked.
func (t Team) Key() string { return t.ID }

// Label implements Ranked.
func (t Team) Label() string { return t.Name }

// Stat implements Ranked.
func (t Team) Stat(key string) (StatValue, bool) { return t.Stats.Get(key) }

// FullName joins city and nickname, e.g. "Boston Celtics".
func (t Team) FullName() string {
	if t.City == "" {
		return t.Name
	}
	return t.City + " " + t.Name
}

// Record formats wins and losses as "W-L", or the sentinel when either is missing.
func (t Team) Record() string {
	wins, _ := t.Stats.Get(StatWins)
	losses, _ := t.Stats.Get(StatLosses)
	if !wins.Available() || !losses.Available() {
		return Sentinel
	}
	return wins.String() + "-" + losses.String()
}
