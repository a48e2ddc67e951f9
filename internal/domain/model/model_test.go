package model_test

import (
	"encoding/json"
	"testing"

	model "github.com/okian/scouthub/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func TestStatValue(t *testing.T) {
	convey.Convey("Given stat values decoded from JSON", t, func() {
		var stats model.Stats
		err := json.Unmarshal([]byte(`{"pts": 35.0, "reb": "6.5", "wins": "-", "ppg": null, "oppg": "n/a"}`), &stats)
		convey.So(err, convey.ShouldBeNil)

		convey.Convey("Then numbers and numeric strings are recorded", func() {
			pts, ok := stats.Get(model.StatPoints)
			convey.So(ok, convey.ShouldBeTrue)
			v, available := pts.Float()
			convey.So(available, convey.ShouldBeTrue)
			convey.So(v, convey.ShouldEqual, 35.0)

			reb, _ := stats.Get(model.StatRebounds)
			convey.So(reb.OrZero(), convey.ShouldEqual, 6.5)
		})

		convey.Convey("Then the sentinel, null and junk are unavailable", func() {
			for _, key := range []string{"wins", "ppg", "oppg"} {
				v, ok := stats.Get(key)
				convey.So(ok, convey.ShouldBeTrue)
				convey.So(v.Available(), convey.ShouldBeFalse)
				convey.So(v.OrZero(), convey.ShouldEqual, 0)
				convey.So(v.String(), convey.ShouldEqual, model.Sentinel)
			}
		})

		convey.Convey("Then missing keys are reported as absent", func() {
			_, ok := stats.Get("blk")
			convey.So(ok, convey.ShouldBeFalse)
		})
	})

	convey.Convey("Given stat values encoded to JSON", t, func() {
		out, err := json.Marshal(model.Stats{"pts": model.Num(27.5), "wins": model.Unavailable()})

		convey.Convey("Then recorded values stay numeric and the sentinel stays a dash", func() {
			convey.So(err, convey.ShouldBeNil)
			convey.So(string(out), convey.ShouldEqual, `{"pts":27.5,"wins":"-"}`)
		})
	})
}

func TestStatKeys(t *testing.T) {
	convey.Convey("Given the known stat keys", t, func() {
		convey.So(model.IsPlayerStat(model.StatPoints), convey.ShouldBeTrue)
		convey.So(model.IsPlayerStat(model.StatWins), convey.ShouldBeFalse)
		convey.So(model.IsTeamStat(model.StatDefRating), convey.ShouldBeTrue)
		convey.So(model.IsTeamStat("pts"), convey.ShouldBeFalse)
		convey.So(model.IsTeamStat(""), convey.ShouldBeFalse)
	})
}

func TestTeam(t *testing.T) {
	convey.Convey("Given a team with a full record", t, func() {
		team := model.Team{
			ID:    "8",
			Name:  "Celtics",
			City:  "Boston",
			Stats: model.Stats{model.StatWins: model.Num(64), model.StatLosses: model.Num(18)},
		}

		convey.So(team.Record(), convey.ShouldEqual, "64-18")
		convey.So(team.FullName(), convey.ShouldEqual, "Boston Celtics")
		convey.So(team.Key(), convey.ShouldEqual, "8")
		convey.So(team.Label(), convey.ShouldEqual, "Celtics")
	})

	convey.Convey("Given a team with an unrecorded loss total", t, func() {
		team := model.Team{
			Name:  "Expansion",
			Stats: model.Stats{model.StatWins: model.Num(10), model.StatLosses: model.Unavailable()},
		}

		convey.So(team.Record(), convey.ShouldEqual, model.Sentinel)
		convey.So(team.FullName(), convey.ShouldEqual, "Expansion")
	})
}

func TestPlayerRanked(t *testing.T) {
	convey.Convey("Given a player used as a Ranked value", t, func() {
		var r model.Ranked = model.Player{
			ID:    "1",
			Name:  "Paul George",
			Stats: model.Stats{model.StatPoints: model.Num(35)},
		}

		v, ok := r.Stat(model.StatPoints)
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(v.OrZero(), convey.ShouldEqual, 35)
		convey.So(r.Key(), convey.ShouldEqual, "1")
		convey.So(r.Label(), convey.ShouldEqual, "Paul George")
	})
}

func TestPlayerAge(t *testing.T) {
	convey.Convey("Given players whose age is written in different ways", t, func() {
		var players []model.Player
		err := json.Unmarshal([]byte(`[
			{"id": "1", "age": 34},
			{"id": "2", "age": "39"},
			{"id": "3", "age": "-"},
			{"id": "4", "age": null},
			{"id": "5"}
		]`), &players)

		convey.Convey("Then every record decodes and unknown ages are zero", func() {
			convey.So(err, convey.ShouldBeNil)
			convey.So(players, convey.ShouldHaveLength, 5)
			convey.So(players[0].Age, convey.ShouldEqual, model.Age(34))
			convey.So(players[1].Age, convey.ShouldEqual, model.Age(39))
			for _, p := range players[2:] {
				convey.So(p.Age, convey.ShouldEqual, model.Age(0))
			}
		})

		convey.Convey("Then age encodes back as a number", func() {
			out, err := json.Marshal(players[1])
			convey.So(err, convey.ShouldBeNil)
			convey.So(string(out), convey.ShouldContainSubstring, `"age":39`)
		})
	})
}
