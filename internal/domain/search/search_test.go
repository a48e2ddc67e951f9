package search

import (
	"context"
	"strings"
	"testing"

	"github.com/okian/scouthub/internal/adapters/repository"
	"github.com/okian/scouthub/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

type staticSource struct {
	players []model.Player
	teams   []model.Team
}

func (s staticSource) Players() []model.Player { return s.players }
func (s staticSource) Teams() []model.Team     { return s.teams }

func referenceSource(t *testing.T) staticSource {
	t.Helper()
	ctx := context.Background()
	src := repository.NewEmbeddedSource()
	players, err := src.LoadPlayers(ctx)
	if err != nil {
		t.Fatalf("load players: %v", err)
	}
	teams, err := src.LoadTeams(ctx)
	if err != nil {
		t.Fatalf("load teams: %v", err)
	}
	return staticSource{players: players, teams: teams}
}

func playerIDs(ps []model.Player) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func teamIDs(ts []model.Team) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.ID
	}
	return out
}

func TestSearchReferenceDataset(t *testing.T) {
	src := referenceSource(t)

	Convey("Given an engine over the reference dataset", t, func() {
		engine := NewEngine(src)

		Convey("When the query is blank", func() {
			for _, q := range []string{"", "   ", "\t\n"} {
				res := engine.Search(q)
				So(res.Players, ShouldNotBeNil)
				So(res.Teams, ShouldNotBeNil)
				So(res.Empty(), ShouldBeTrue)
			}
		})

		Convey("When searching a player name with padding and mixed case", func() {
			res := engine.Search("  CuRRy ")
			So(playerIDs(res.Players), ShouldResemble, []string{"3"})
			So(res.Teams, ShouldBeEmpty)
		})

		Convey("When searching a position", func() {
			res := engine.SearchPlayers("center")
			So(playerIDs(res), ShouldResemble, []string{"7", "9", "11"})
		})

		Convey("When searching a city shared by two teams", func() {
			res := engine.Search("los angeles")
			So(playerIDs(res.Players), ShouldResemble, []string{"2", "11"})
			So(teamIDs(res.Teams), ShouldResemble, []string{"1", "2"})
		})

		Convey("When searching a team city", func() {
			res := engine.Search("boston")
			So(playerIDs(res.Players), ShouldResemble, []string{"8", "15"})
			So(teamIDs(res.Teams), ShouldResemble, []string{"8"})
		})

		Convey("When the query matches more than ten players", func() {
			res := engine.SearchPlayers("a")
			So(len(res), ShouldEqual, DefaultLimit)
			So(playerIDs(res), ShouldResemble, []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"})
		})

		Convey("When nothing matches", func() {
			So(engine.Search("xyz").Empty(), ShouldBeTrue)
		})

		Convey("Then every player result contains the query in a searched field", func() {
			for _, q := range []string{"guard", "an", "forward", "e"} {
				for _, p := range engine.SearchPlayers(q) {
					hit := strings.Contains(strings.ToLower(p.Name), q) ||
						strings.Contains(strings.ToLower(p.Team), q) ||
						strings.Contains(strings.ToLower(p.Position), q)
					So(hit, ShouldBeTrue)
				}
				for _, tm := range engine.SearchTeams(q) {
					hit := strings.Contains(strings.ToLower(tm.Name), q) ||
						strings.Contains(strings.ToLower(tm.City), q)
					So(hit, ShouldBeTrue)
				}
			}
		})

		Convey("Then results keep source order", func() {
			res := engine.SearchPlayers("guard")
			So(playerIDs(res), ShouldResemble, []string{"3", "6", "10", "13", "14", "15", "16", "17", "18"})
		})
	})
}

func TestEngineOptions(t *testing.T) {
	Convey("Given a custom limit", t, func() {
		src := staticSource{
			players: []model.Player{{ID: "1", Name: "Ann"}, {ID: "2", Name: "Anna"}, {ID: "3", Name: "Hannah"}},
			teams:   []model.Team{{ID: "t", Name: "Annexers", City: "Annapolis"}},
		}

		Convey("When the limit is two", func() {
			engine := NewEngine(src, WithLimit(2))
			So(engine.Limit(), ShouldEqual, 2)
			So(playerIDs(engine.SearchPlayers("ann")), ShouldResemble, []string{"1", "2"})
		})

		Convey("When the limit is not positive", func() {
			engine := NewEngine(src, WithLimit(0))
			So(engine.Limit(), ShouldEqual, DefaultLimit)
		})

		Convey("When the team matches on both name and city", func() {
			engine := NewEngine(src)
			So(teamIDs(engine.SearchTeams("ANN")), ShouldResemble, []string{"t"})
		})
	})

	Convey("Given an engine without a source", t, func() {
		res := NewEngine(nil).Search("anything")
		So(res.Players, ShouldNotBeNil)
		So(res.Empty(), ShouldBeTrue)
	})
}

func TestNormalize(t *testing.T) {
	Convey("Given raw queries", t, func() {
		So(Normalize("  LeBron "), ShouldEqual, "lebron")
		So(Normalize("\t"), ShouldEqual, "")
		So(MatchPlayer(model.Player{Position: "Point Guard"}, "point g"), ShouldBeTrue)
		So(MatchTeam(model.Team{City: "Golden State"}, "state"), ShouldBeTrue)
		So(MatchTeam(model.Team{Name: "Warriors"}, "golden"), ShouldBeFalse)
	})
}
