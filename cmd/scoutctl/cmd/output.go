package cmd

import (
	"fmt"
	"strings"

	"github.com/okian/scouthub/internal/domain/model"
	"github.com/okian/scouthub/internal/domain/search"
	"github.com/okian/scouthub/internal/domain/types"
	"github.com/okian/scouthub/internal/probe"
)

// formatPlayerLine renders one player as
//
//	[6] Luka Doncic  Point Guard  Dallas Mavericks  33.9 pts  9.2 reb  9.8 ast
func formatPlayerLine(p model.Player) string {
	return fmt.Sprintf("[%s] %s  %s  %s  %s pts  %s reb  %s ast",
		p.ID, p.Name, p.Position, p.Team,
		stat(p.Stats, model.StatPoints), stat(p.Stats, model.StatRebounds), stat(p.Stats, model.StatAssists))
}

// formatTeamLine renders one team as "[8] Boston Celtics  Eastern  64-18".
func formatTeamLine(t model.Team) string {
	return fmt.Sprintf("[%s] %s  %s  %s", t.ID, t.FullName(), t.Conference, t.Record())
}

func stat(s model.Stats, key string) string {
	v, _ := s.Get(key)
	return v.String()
}

func formatResults(q string, res search.Results) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%q: %d players, %d teams\n", q, len(res.Players), len(res.Teams))
	for _, p := range res.Players {
		sb.WriteString("  " + formatPlayerLine(p) + "\n")
	}
	for _, t := range res.Teams {
		sb.WriteString("  " + formatTeamLine(t) + "\n")
	}
	return sb.String()
}

func formatLeaderboard(lb types.Leaderboard) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%s %s, %s)\n", lb.Title, lb.Collection, lb.Stat, lb.Direction)
	for _, e := range lb.Entries {
		fmt.Fprintf(&sb, "%3d. %-24s %s\n", e.Rank, e.Name, e.Display)
	}
	return sb.String()
}

func formatPlayerProfile(p types.PlayerProfile) string {
	var sb strings.Builder
	sb.WriteString(formatPlayerLine(p.Player) + "\n")
	fmt.Fprintf(&sb, "  age %d  height %s  weight %s  wingspan %s\n",
		p.Player.Age, p.Player.Height, p.Player.Weight, p.Player.Wingspan)
	for _, key := range model.PlayerStatKeys {
		fmt.Fprintf(&sb, "  %-10s %s\n", key, stat(p.Player.Stats, key))
	}
	if p.Team != nil {
		sb.WriteString("  team: " + formatTeamLine(*p.Team) + "\n")
	}
	if p.Player.Bio != "" {
		sb.WriteString("  " + p.Player.Bio + "\n")
	}
	return sb.String()
}

func formatTeamProfile(t types.TeamProfile) string {
	var sb strings.Builder
	sb.WriteString(formatTeamLine(t.Team) + "\n")
	fmt.Fprintf(&sb, "  %s / %s\n", t.Team.Conference, t.Team.Division)
	for _, key := range model.TeamStatKeys {
		fmt.Fprintf(&sb, "  %-10s %s\n", key, stat(t.Team.Stats, key))
	}
	fmt.Fprintf(&sb, "  roster (%d):\n", len(t.Roster))
	for _, p := range t.Roster {
		sb.WriteString("    " + formatPlayerLine(p) + "\n")
	}
	return sb.String()
}

func formatReport(r *probe.Report) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "probe %s: %d checks in %s\n", r.RunID, len(r.Checks), r.Duration)
	for _, c := range r.Checks {
		mark := "ok  "
		if !c.Passed {
			mark = "FAIL"
		}
		fmt.Fprintf(&sb, "  %s %s", mark, c.Name)
		if c.Detail != "" {
			sb.WriteString(": " + c.Detail)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
