package probe

import (
	"fmt"
	"slices"

	"github.com/okian/scouthub/internal/domain/model"
	"github.com/okian/scouthub/internal/domain/search"
	"github.com/okian/scouthub/internal/domain/types"
)

// Check is one verified expectation.
type Check struct {
	Name   string
	Passed bool
	Detail string
}

// boardExpectation is the leading ids a standard board must start with.
type boardExpectation struct {
	title string
	ids   []string
}

// searchExpectation is the exact ids a reference query must return.
type searchExpectation struct {
	players []string
	teams   []string
}

var referenceBoards = []boardExpectation{ //nolint:gochecknoglobals // reference dataset
	{title: "Top Scorers", ids: []string{"1", "7", "6"}},
	{title: "Top Rebounders", ids: []string{"11"}},
	{title: "Top Assisters", ids: []string{"6"}},
	{title: "Best Records", ids: []string{"8", "9"}},
}

var referenceSearches = map[string]searchExpectation{ //nolint:gochecknoglobals // reference dataset
	"boston":      {players: []string{"8", "15"}, teams: []string{"8"}},
	"guard":       {players: []string{"3", "6", "10", "13", "14", "15", "16", "17", "18"}, teams: []string{}},
	"los angeles": {players: []string{"2", "11"}, teams: []string{"1", "2"}},
}

// verify compares the fetched responses with the reference dataset. Queries
// without a reference expectation are only checked for a bounded result size.
func verify(r *Report) []Check {
	checks := make([]Check, 0, len(referenceBoards)+len(r.Searches))

	for _, want := range referenceBoards {
		checks = append(checks, verifyBoard(r.Boards, want))
	}

	queries := make([]string, 0, len(r.Searches))
	for q := range r.Searches {
		queries = append(queries, q)
	}
	slices.Sort(queries)
	for _, q := range queries {
		checks = append(checks, verifySearch(q, r.Searches[q]))
	}
	return checks
}

func verifyBoard(boards []types.Leaderboard, want boardExpectation) Check {
	name := "leaderboard " + want.title
	idx := slices.IndexFunc(boards, func(b types.Leaderboard) bool { return b.Title == want.title })
	if idx < 0 {
		return Check{Name: name, Detail: "board missing"}
	}
	got := make([]string, 0, len(want.ids))
	for i, e := range boards[idx].Entries {
		if i == len(want.ids) {
			break
		}
		got = append(got, e.ID)
	}
	if !slices.Equal(got, want.ids) {
		return Check{Name: name, Detail: fmt.Sprintf("leading ids %v, want %v", got, want.ids)}
	}
	return Check{Name: name, Passed: true}
}

func verifySearch(q string, res search.Results) Check {
	name := fmt.Sprintf("search %q", q)
	if len(res.Players) > search.DefaultLimit || len(res.Teams) > search.DefaultLimit {
		return Check{Name: name, Detail: fmt.Sprintf("%d players, %d teams exceeds limit %d",
			len(res.Players), len(res.Teams), search.DefaultLimit)}
	}
	want, ok := referenceSearches[q]
	if !ok {
		return Check{Name: name, Passed: true}
	}
	players := playerIDs(res.Players)
	teams := teamIDs(res.Teams)
	if !slices.Equal(players, want.players) || !slices.Equal(teams, want.teams) {
		return Check{Name: name, Detail: fmt.Sprintf("players %v teams %v, want players %v teams %v",
			players, teams, want.players, want.teams)}
	}
	return Check{Name: name, Passed: true}
}

func playerIDs(ps []model.Player) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func teamIDs(ts []model.Team) []string {
	out := make([]string, 0, len(ts))
	for _, t := range ts {
		out = append(out, t.ID)
	}
	return out
}
