package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/okian/scouthub/internal/adapters/http/api"
	"github.com/okian/scouthub/internal/domain/model"
	"github.com/okian/scouthub/internal/domain/ranking"
	"github.com/okian/scouthub/internal/domain/search"
	"github.com/okian/scouthub/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

// mockDependencies records the arguments it was called with.
type mockDependencies struct {
	players []model.Player
	teams   []model.Team

	lastQuery    string
	lastFeatured int
	lastBoard    struct {
		collection, stat string
		limit            int
		dir              ranking.Direction
	}

	board     types.Leaderboard
	boardErr  error
	boards    []types.Leaderboard
	boardsErr error
}

func (m *mockDependencies) Search(_ context.Context, q string) search.Results {
	m.lastQuery = q
	res := search.Results{Players: []model.Player{}, Teams: []model.Team{}}
	if strings.TrimSpace(q) == "" {
		return res
	}
	for _, p := range m.players {
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(q)) {
			res.Players = append(res.Players, p)
		}
	}
	return res
}

func (m *mockDependencies) Players(context.Context) []model.Player { return m.players }

func (m *mockDependencies) FeaturedPlayers(_ context.Context, n int) []model.Player {
	m.lastFeatured = n
	if n < 0 || n > len(m.players) {
		return m.players
	}
	return m.players[:n]
}

func (m *mockDependencies) PlayerProfile(_ context.Context, id string) (types.PlayerProfile, error) {
	for _, p := range m.players {
		if p.ID == id {
			return types.PlayerProfile{Player: p}, nil
		}
	}
	return types.PlayerProfile{}, fmt.Errorf("player %q: %w", id, types.ErrNotFound)
}

func (m *mockDependencies) Teams(context.Context) []model.Team { return m.teams }

func (m *mockDependencies) TeamProfile(_ context.Context, id string) (types.TeamProfile, error) {
	for _, t := range m.teams {
		if t.ID == id {
			return types.TeamProfile{Team: t, Record: t.Record(), Roster: []model.Player{}}, nil
		}
	}
	return types.TeamProfile{}, fmt.Errorf("team %q: %w", id, types.ErrNotFound)
}

func (m *mockDependencies) Leaderboard(_ context.Context, collection, stat string, limit int, dir ranking.Direction) (types.Leaderboard, error) {
	m.lastBoard.collection = collection
	m.lastBoard.stat = stat
	m.lastBoard.limit = limit
	m.lastBoard.dir = dir
	return m.board, m.boardErr
}

func (m *mockDependencies) Leaderboards(context.Context) ([]types.Leaderboard, error) {
	return m.boards, m.boardsErr
}

func (m *mockDependencies) MaxLeaderboardLimit() int { return 50 }

func (m *mockDependencies) GetStats() map[string]interface{} {
	return map[string]interface{}{"started": true, "players": len(m.players)}
}

func newMock() *mockDependencies {
	return &mockDependencies{
		players: []model.Player{
			{ID: "1", Name: "Paul George", TeamID: "1"},
			{ID: "2", Name: "LeBron James", TeamID: "2"},
			{ID: "3", Name: "Stephen Curry", TeamID: "3"},
		},
		teams: []model.Team{
			{ID: "1", Name: "Clippers", City: "Los Angeles",
				Stats: model.Stats{model.StatWins: model.Num(44), model.StatLosses: model.Num(28)}},
		},
		board: types.Leaderboard{
			Title: "Top Scorers", Collection: "players", Stat: "pts", Direction: "desc",
			Entries: []types.Entry{{Rank: 1, ID: "1", Name: "Paul George", Value: 35, Display: "35"}},
		},
	}
}

func serve(mux http.Handler, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, http.NoBody)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func decodeError(w *httptest.ResponseRecorder) map[string]string {
	var body map[string]string
	_ = json.NewDecoder(w.Body).Decode(&body)
	return body
}

func TestServer_Register(t *testing.T) {
	Convey("Given a new API server", t, func() {
		deps := newMock()
		server := api.NewServer(deps)
		mux := http.NewServeMux()
		server.Register(context.Background(), mux)

		Convey("Then health serves the metrics exposition", func() {
			w := serve(mux, http.MethodGet, "/healthz")
			So(w.Code, ShouldEqual, http.StatusOK)
		})

		Convey("Then stats returns JSON", func() {
			w := serve(mux, http.MethodGet, "/stats")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Header().Get("Content-Type"), ShouldEqual, "application/json; charset=utf-8")
			var stats map[string]any
			So(json.NewDecoder(w.Body).Decode(&stats), ShouldBeNil)
			So(stats["players"], ShouldEqual, 3.0)
			So(w.Header().Get("Cache-Control"), ShouldEqual, "no-store")
			So(stats, ShouldNotContainKey, "requestId")
		})

		Convey("Then stats carry the request id behind the middleware", func() {
			req := httptest.NewRequest(http.MethodGet, "/stats", http.NoBody)
			req.Header.Set(api.RequestIDHeader, "stats-1")
			w := httptest.NewRecorder()
			api.RequestIDMiddleware(mux).ServeHTTP(w, req)
			var stats map[string]any
			So(json.NewDecoder(w.Body).Decode(&stats), ShouldBeNil)
			So(stats["requestId"], ShouldEqual, "stats-1")
		})

		Convey("Then unknown paths are not found", func() {
			So(serve(mux, http.MethodGet, "/unknown").Code, ShouldEqual, http.StatusNotFound)
		})

		Convey("Then non-GET methods are not found", func() {
			for _, path := range []string{"/search?q=a", "/players", "/players/1", "/teams", "/teams/1", "/leaderboard", "/leaderboards", "/stats", "/healthz"} {
				So(serve(mux, http.MethodPost, path).Code, ShouldEqual, http.StatusNotFound)
			}
		})
	})
}

func TestSearchHandler(t *testing.T) {
	Convey("Given a search handler", t, func() {
		deps := newMock()
		handler := api.NewSearchHandler(deps)

		Convey("When searching with a query", func() {
			w := httptest.NewRecorder()
			handler.HandleSearch(w, httptest.NewRequest(http.MethodGet, "/search?q=curry", http.NoBody))

			Convey("Then matches are returned as players and teams", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(deps.lastQuery, ShouldEqual, "curry")
				var res search.Results
				So(json.NewDecoder(w.Body).Decode(&res), ShouldBeNil)
				So(len(res.Players), ShouldEqual, 1)
				So(res.Players[0].Name, ShouldEqual, "Stephen Curry")
				So(res.Teams, ShouldNotBeNil)
			})
		})

		Convey("When the query is missing", func() {
			w := httptest.NewRecorder()
			handler.HandleSearch(w, httptest.NewRequest(http.MethodGet, "/search", http.NoBody))

			Convey("Then both lists are empty arrays", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldContainSubstring, `"players":[]`)
				So(w.Body.String(), ShouldContainSubstring, `"teams":[]`)
			})
		})
	})
}

func TestPlayersHandler(t *testing.T) {
	Convey("Given a players handler", t, func() {
		deps := newMock()
		mux := http.NewServeMux()
		api.NewServer(deps).Register(context.Background(), mux)

		Convey("When listing players", func() {
			w := serve(mux, http.MethodGet, "/players")
			var players []model.Player
			So(json.NewDecoder(w.Body).Decode(&players), ShouldBeNil)
			So(len(players), ShouldEqual, 3)
		})

		Convey("When listing featured players", func() {
			w := serve(mux, http.MethodGet, "/players?featured=2")
			var players []model.Player
			So(json.NewDecoder(w.Body).Decode(&players), ShouldBeNil)
			So(len(players), ShouldEqual, 2)
			So(deps.lastFeatured, ShouldEqual, 2)
		})

		Convey("When featured has no value", func() {
			serve(mux, http.MethodGet, "/players?featured")
			So(deps.lastFeatured, ShouldEqual, -1)
		})

		Convey("When featured is invalid", func() {
			w := serve(mux, http.MethodGet, "/players?featured=-3")
			So(w.Code, ShouldEqual, http.StatusBadRequest)
			So(decodeError(w)["code"], ShouldEqual, "bad_request")
		})

		Convey("When fetching a known player", func() {
			w := serve(mux, http.MethodGet, "/players/2")
			So(w.Code, ShouldEqual, http.StatusOK)
			var profile types.PlayerProfile
			So(json.NewDecoder(w.Body).Decode(&profile), ShouldBeNil)
			So(profile.Player.Name, ShouldEqual, "LeBron James")
		})

		Convey("When fetching an unknown player", func() {
			w := serve(mux, http.MethodGet, "/players/404")
			So(w.Code, ShouldEqual, http.StatusNotFound)
			So(decodeError(w)["code"], ShouldEqual, "not_found")
		})

		Convey("When the id has extra segments", func() {
			So(serve(mux, http.MethodGet, "/players/1/stats").Code, ShouldEqual, http.StatusBadRequest)
		})
	})
}

func TestTeamsHandler(t *testing.T) {
	Convey("Given a teams handler", t, func() {
		deps := newMock()
		handler := api.NewTeamsHandler(deps)

		Convey("When listing teams", func() {
			w := httptest.NewRecorder()
			handler.HandleList(w, httptest.NewRequest(http.MethodGet, "/teams", http.NoBody))
			var teams []model.Team
			So(json.NewDecoder(w.Body).Decode(&teams), ShouldBeNil)
			So(len(teams), ShouldEqual, 1)
		})

		Convey("When fetching a known team", func() {
			w := httptest.NewRecorder()
			handler.HandleGet(w, httptest.NewRequest(http.MethodGet, "/teams/1", http.NoBody))
			So(w.Code, ShouldEqual, http.StatusOK)
			var profile types.TeamProfile
			So(json.NewDecoder(w.Body).Decode(&profile), ShouldBeNil)
			So(profile.Record, ShouldEqual, "44-28")
		})

		Convey("When fetching an unknown team", func() {
			w := httptest.NewRecorder()
			handler.HandleGet(w, httptest.NewRequest(http.MethodGet, "/teams/99", http.NoBody))
			So(w.Code, ShouldEqual, http.StatusNotFound)
		})

		Convey("When the id is missing", func() {
			w := httptest.NewRecorder()
			handler.HandleGet(w, httptest.NewRequest(http.MethodGet, "/teams/", http.NoBody))
			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})
	})
}

func TestLeaderboardHandler_HandleGetLeaderboard(t *testing.T) {
	Convey("Given a leaderboard handler", t, func() {
		deps := newMock()
		handler := api.NewLeaderboardHandler(deps)

		get := func(target string) *httptest.ResponseRecorder {
			w := httptest.NewRecorder()
			handler.HandleGetLeaderboard(w, httptest.NewRequest(http.MethodGet, target, http.NoBody))
			return w
		}

		Convey("When requesting a board with all parameters", func() {
			w := get("/leaderboard?collection=teams&stat=wins&limit=3&dir=asc")

			Convey("Then the arguments are passed through", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(deps.lastBoard.collection, ShouldEqual, "teams")
				So(deps.lastBoard.stat, ShouldEqual, "wins")
				So(deps.lastBoard.limit, ShouldEqual, 3)
				So(deps.lastBoard.dir, ShouldEqual, ranking.Asc)
				var lb types.Leaderboard
				So(json.NewDecoder(w.Body).Decode(&lb), ShouldBeNil)
				So(lb.Entries[0].Name, ShouldEqual, "Paul George")
			})
		})

		Convey("When limit and dir are omitted", func() {
			So(get("/leaderboard?collection=players&stat=pts").Code, ShouldEqual, http.StatusOK)
			So(deps.lastBoard.limit, ShouldEqual, 0)
			So(deps.lastBoard.dir, ShouldEqual, ranking.Desc)
		})

		Convey("When parameters are malformed", func() {
			for _, target := range []string{
				"/leaderboard",
				"/leaderboard?collection=players",
				"/leaderboard?collection=players&stat=pts&limit=0",
				"/leaderboard?collection=players&stat=pts&limit=abc",
				"/leaderboard?collection=players&stat=pts&dir=sideways",
			} {
				So(get(target).Code, ShouldEqual, http.StatusBadRequest)
			}
		})

		Convey("When limit exceeds the maximum", func() {
			w := get("/leaderboard?collection=players&stat=pts&limit=51")
			So(w.Code, ShouldEqual, http.StatusBadRequest)
			So(decodeError(w)["code"], ShouldEqual, "limit_exceeded")
			So(deps.lastBoard.collection, ShouldBeEmpty)
		})

		Convey("When the service rejects the arguments", func() {
			deps.boardErr = fmt.Errorf("unknown stat: %w", types.ErrInvalidArgument)
			w := get("/leaderboard?collection=players&stat=wins")
			So(w.Code, ShouldEqual, http.StatusBadRequest)
			So(decodeError(w)["message"], ShouldContainSubstring, "unknown stat")
		})

		Convey("When the service fails", func() {
			deps.boardErr = fmt.Errorf("boom")
			So(get("/leaderboard?collection=players&stat=pts").Code, ShouldEqual, http.StatusInternalServerError)
		})

		Convey("When requesting all boards", func() {
			deps.boards = []types.Leaderboard{deps.board, deps.board}
			w := httptest.NewRecorder()
			handler.HandleGetLeaderboards(w, httptest.NewRequest(http.MethodGet, "/leaderboards", http.NoBody))
			var boards []types.Leaderboard
			So(json.NewDecoder(w.Body).Decode(&boards), ShouldBeNil)
			So(len(boards), ShouldEqual, 2)
		})

		Convey("When all boards fail", func() {
			deps.boardsErr = fmt.Errorf("boom")
			w := httptest.NewRecorder()
			handler.HandleGetLeaderboards(w, httptest.NewRequest(http.MethodGet, "/leaderboards", http.NoBody))
			So(w.Code, ShouldEqual, http.StatusInternalServerError)
		})
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	Convey("Given a handler wrapped with request ids", t, func() {
		var seen string
		handler := api.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = api.RequestID(r.Context())
		}))

		Convey("When the request carries an id", func() {
			req := httptest.NewRequest(http.MethodGet, "/search", http.NoBody)
			req.Header.Set(api.RequestIDHeader, "abc-123")
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			Convey("Then it is echoed and stored in the context", func() {
				So(w.Header().Get(api.RequestIDHeader), ShouldEqual, "abc-123")
				So(seen, ShouldEqual, "abc-123")
			})
		})

		Convey("When the request has no id", func() {
			w := serve(handler, http.MethodGet, "/search")

			Convey("Then a UUID is generated", func() {
				id := w.Header().Get(api.RequestIDHeader)
				So(len(id), ShouldEqual, 36)
				So(seen, ShouldEqual, id)
			})
		})

		Convey("When the inbound id is oversized", func() {
			req := httptest.NewRequest(http.MethodGet, "/search", http.NoBody)
			req.Header.Set(api.RequestIDHeader, strings.Repeat("x", 500))
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			So(len(w.Header().Get(api.RequestIDHeader)), ShouldEqual, 36)
		})

		Convey("When no middleware ran", func() {
			So(api.RequestID(context.Background()), ShouldBeEmpty)
		})
	})
}
