/* api_test.go
 * Contains unit tests for api.go - testing all public API methods
 * Authors: Zachary Bower
 */

package api

import (
	"errors"
	"strings"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kristianyonuel/CasaTodos-sub001/api/logic"
	"github.com/kristianyonuel/CasaTodos-sub001/api/shared"
)

// intp is a test helper for building optional score fields
func intp(n int) *int {
	return &n
}

// seedWeek fills a mock store with two decided games and the undecided
// tiebreaker game for week 3
func seedWeek(m *MockStore) {
	m.Games = []shared.Game{
		{GameId: "g1", Season: 2025, Week: 3, HomeTeam: "Buffalo Bills", AwayTeam: "Miami Dolphins", HomeScore: intp(31), AwayScore: intp(10)},
		{GameId: "g2", Season: 2025, Week: 3, HomeTeam: "New York Jets", AwayTeam: "New England Patriots", HomeScore: intp(14), AwayScore: intp(27)},
		{GameId: "tb", Season: 2025, Week: 3, HomeTeam: "Dallas Cowboys", AwayTeam: "Philadelphia Eagles", IsTiebreaker: true},
	}
}

var submitTime = time.Date(2025, 9, 17, 12, 0, 0, 0, time.UTC)

// region NewAPI tests

func TestNewAPI_MissingDbName(t *testing.T) {
	_, err := NewAPI("", "mongodb://localhost:27017", 2025, 3, nil)
	if err == nil {
		t.Error("Expected error when dbName is empty, got nil")
	}

	if !strings.Contains(err.Error(), "dbName is required") {
		t.Errorf("Expected error message about required fields, got: %s", err.Error())
	}
}

// endregion

// region SetUserPick tests

func TestSetUserPick_Success(t *testing.T) {
	mock := NewMockStore(2025, 3)
	seedWeek(mock)
	api := &API{Store: mock}

	user := shared.User{UserId: "u1", Username: "alice"}
	err := api.SetUserPick(user, "Dallas Cowboys", intp(24), intp(17), submitTime)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(mock.Picks) != 1 {
		t.Fatalf("Expected 1 stored pick, got %d", len(mock.Picks))
	}
	pick := mock.Picks[0]
	if pick.GameId != "tb" || pick.Team != "Dallas Cowboys" {
		t.Errorf("Pick stored against wrong game/team: %+v", pick)
	}
	if pick.Season != 2025 || pick.Week != 3 {
		t.Errorf("Pick missing season/week: %+v", pick)
	}
	if !pick.SubmittedAt.Equal(submitTime) {
		t.Errorf("Pick lost its submission time: %+v", pick)
	}
}

func TestSetUserPick_FuzzyTeamName(t *testing.T) {
	mock := NewMockStore(2025, 3)
	seedWeek(mock)
	api := &API{Store: mock}

	user := shared.User{UserId: "u1", Username: "alice"}
	err := api.SetUserPick(user, "cowboys", intp(24), intp(17), submitTime)
	if err != nil {
		t.Fatalf("Expected fuzzy name to resolve, got: %v", err)
	}

	if mock.Picks[0].Team != "Dallas Cowboys" {
		t.Errorf("Expected canonical team name, got: %s", mock.Picks[0].Team)
	}
}

func TestSetUserPick_InvalidTeam(t *testing.T) {
	mock := NewMockStore(2025, 3)
	seedWeek(mock)
	api := &API{Store: mock}

	user := shared.User{UserId: "u1", Username: "alice"}
	err := api.SetUserPick(user, "Springfield Isotopes", nil, nil, submitTime)
	if err == nil {
		t.Fatal("Expected error for unknown team, got nil")
	}
}

func TestSetUserPick_TiebreakerNeedsPrediction(t *testing.T) {
	mock := NewMockStore(2025, 3)
	seedWeek(mock)
	api := &API{Store: mock}

	user := shared.User{UserId: "u1", Username: "alice"}
	err := api.SetUserPick(user, "Philadelphia Eagles", nil, nil, submitTime)
	if err == nil {
		t.Fatal("Expected error for tiebreaker pick without prediction, got nil")
	}
	if !strings.Contains(err.Error(), "tiebreaker") {
		t.Errorf("Expected tiebreaker error, got: %v", err)
	}
}

func TestSetUserPick_ClosedGame(t *testing.T) {
	mock := NewMockStore(2025, 3)
	seedWeek(mock)
	api := &API{Store: mock}

	user := shared.User{UserId: "u1", Username: "alice"}
	err := api.SetUserPick(user, "Buffalo Bills", nil, nil, submitTime)
	if err == nil {
		t.Fatal("Expected error for decided game, got nil")
	}
	if !strings.Contains(err.Error(), "picks are closed") {
		t.Errorf("Expected closed game error, got: %v", err)
	}
}

func TestSetUserPick_NoGames(t *testing.T) {
	mock := NewMockStore(2025, 3)
	api := &API{Store: mock}

	user := shared.User{UserId: "u1", Username: "alice"}
	err := api.SetUserPick(user, "Buffalo Bills", nil, nil, submitTime)
	if err == nil {
		t.Fatal("Expected error for empty schedule, got nil")
	}
}

// endregion

// region CheckPicks tests

func TestCheckPicks_Report(t *testing.T) {
	mock := NewMockStore(2025, 3)
	seedWeek(mock)
	mock.Picks = []shared.Pick{
		{UserId: "u1", Username: "alice", GameId: "g1", Team: "Buffalo Bills"},
		{UserId: "u1", Username: "alice", GameId: "g2", Team: "New York Jets"},
		{UserId: "u1", Username: "alice", GameId: "tb", Team: "Dallas Cowboys", PredictedHomeScore: intp(24), PredictedAwayScore: intp(17)},
	}
	api := &API{Store: mock}

	report, err := api.CheckPicks(shared.User{UserId: "u1", Username: "alice"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	for _, want := range []string{"[Correct]", "[Incorrect]", "[Pending]", "1 correct, 1 incorrect, 0 pushes, 1 pending"} {
		if !strings.Contains(report, want) {
			t.Errorf("Expected report to contain %q, got:\n%s", want, report)
		}
	}
}

func TestCheckPicks_NoPicks(t *testing.T) {
	mock := NewMockStore(2025, 3)
	seedWeek(mock)
	api := &API{Store: mock}

	_, err := api.CheckPicks(shared.User{UserId: "ghost", Username: "ghost"})
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("Expected no documents error, got: %v", err)
	}
}

// endregion

// region GenerateStandings tests

func TestGenerateStandings_PersistsRankedEntries(t *testing.T) {
	mock := NewMockStore(2025, 3)
	seedWeek(mock)
	mock.Picks = []shared.Pick{
		{UserId: "u1", Username: "alice", GameId: "g1", Team: "Buffalo Bills"},
		{UserId: "u1", Username: "alice", GameId: "g2", Team: "New England Patriots"},
		{UserId: "u2", Username: "bob", GameId: "g1", Team: "Miami Dolphins"},
	}
	api := &API{Store: mock}

	if err := api.GenerateStandings(); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if mock.Standings.Season != 2025 || mock.Standings.Week != 3 {
		t.Errorf("Standings missing season/week: %+v", mock.Standings)
	}
	if len(mock.Standings.Entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(mock.Standings.Entries))
	}
	first := mock.Standings.Entries[0]
	if first.Username != "alice" || first.Rank != 1 || !first.IsWinner {
		t.Errorf("Expected alice ranked first as winner, got: %+v", first)
	}
	if mock.Standings.Entries[1].IsWinner {
		t.Errorf("Expected bob not to be flagged winner: %+v", mock.Standings.Entries[1])
	}
}

func TestGenerateStandings_NoGradableData(t *testing.T) {
	mock := NewMockStore(2025, 3)
	mock.Games = []shared.Game{
		{GameId: "tb", Season: 2025, Week: 3, HomeTeam: "Dallas Cowboys", AwayTeam: "Philadelphia Eagles", IsTiebreaker: true},
	}
	mock.Picks = []shared.Pick{
		{UserId: "u1", Username: "alice", GameId: "tb", Team: "Dallas Cowboys"},
	}
	api := &API{Store: mock}

	err := api.GenerateStandings()
	if !errors.Is(err, logic.ErrNoGradableData) {
		t.Errorf("Expected no gradable data error, got: %v", err)
	}
}

// endregion

// region GetStandings tests

func TestGetStandings_RendersOrdered(t *testing.T) {
	mock := NewMockStore(2025, 3)
	seedWeek(mock)
	mock.Picks = []shared.Pick{
		{UserId: "u1", Username: "alice", GameId: "g1", Team: "Buffalo Bills"},
		{UserId: "u2", Username: "bob", GameId: "g1", Team: "Miami Dolphins"},
	}
	api := &API{Store: mock}

	if err := api.GenerateStandings(); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	response, err := api.GetStandings()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	for _, want := range []string{"Week 3 standings:", "1. alice", "(weekly winner)", "2. bob"} {
		if !strings.Contains(response, want) {
			t.Errorf("Expected response to contain %q, got:\n%s", want, response)
		}
	}
}

func TestGetStandings_NotGenerated(t *testing.T) {
	mock := NewMockStore(2025, 3)
	api := &API{Store: mock}

	_, err := api.GetStandings()
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("Expected no documents error, got: %v", err)
	}
}

// endregion

// region SimulateWeek tests

func TestSimulateWeek_And_Render(t *testing.T) {
	mock := NewMockStore(2025, 3)
	seedWeek(mock)
	mock.Picks = []shared.Pick{
		{UserId: "u1", Username: "alice", GameId: "g1", Team: "Buffalo Bills"},
		{UserId: "u1", Username: "alice", GameId: "g2", Team: "New England Patriots"},
		{UserId: "u1", Username: "alice", GameId: "tb", Team: "Dallas Cowboys"},
		{UserId: "u2", Username: "bob", GameId: "g1", Team: "Buffalo Bills"},
		{UserId: "u2", Username: "bob", GameId: "g2", Team: "New England Patriots"},
		{UserId: "u2", Username: "bob", GameId: "tb", Team: "Philadelphia Eagles"},
	}
	api := &API{Store: mock}

	sim, err := api.SimulateWeek()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if sim.HomeBranch.Outcome != logic.BranchDeterministicWinner || sim.HomeBranch.Winner.Username != "alice" {
		t.Errorf("Expected alice to win the home branch, got: %+v", sim.HomeBranch)
	}
	if sim.AwayBranch.Outcome != logic.BranchDeterministicWinner || sim.AwayBranch.Winner.Username != "bob" {
		t.Errorf("Expected bob to win the away branch, got: %+v", sim.AwayBranch)
	}

	rendered := RenderSimulation(sim)
	for _, want := range []string{"If the Dallas Cowboys win: alice", "If the Philadelphia Eagles win: bob"} {
		if !strings.Contains(rendered, want) {
			t.Errorf("Expected rendering to contain %q, got:\n%s", want, rendered)
		}
	}
}

func TestSimulateWeek_DecidedWeek(t *testing.T) {
	mock := NewMockStore(2025, 3)
	seedWeek(mock)
	mock.Games[2].HomeScore = intp(24)
	mock.Games[2].AwayScore = intp(17)
	mock.Picks = []shared.Pick{
		{UserId: "u1", Username: "alice", GameId: "g1", Team: "Buffalo Bills"},
	}
	api := &API{Store: mock}

	_, err := api.SimulateWeek()
	if !errors.Is(err, logic.ErrAmbiguousOutcomeSpace) {
		t.Errorf("Expected ambiguous outcome space error, got: %v", err)
	}
}

// endregion

// region RecordFinalScore tests

func TestRecordFinalScore_EitherTeamOrder(t *testing.T) {
	mock := NewMockStore(2025, 3)
	seedWeek(mock)
	api := &API{Store: mock}

	// Away team listed first: scores must still land on the right sides
	err := api.RecordFinalScore("eagles", 17, "cowboys", 24)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	game := mock.Games[2]
	if game.HomeScore == nil || *game.HomeScore != 24 || game.AwayScore == nil || *game.AwayScore != 17 {
		t.Errorf("Scores mapped to wrong sides: %+v", game)
	}
}

func TestRecordFinalScore_UnknownTeam(t *testing.T) {
	mock := NewMockStore(2025, 3)
	seedWeek(mock)
	api := &API{Store: mock}

	err := api.RecordFinalScore("Springfield Isotopes", 10, "cowboys", 24)
	if err == nil {
		t.Fatal("Expected error for unknown team, got nil")
	}
	if !strings.Contains(err.Error(), "invalid") {
		t.Errorf("Expected invalid team error, got: %v", err)
	}
}

func TestRecordFinalScore_NoSuchMatchup(t *testing.T) {
	mock := NewMockStore(2025, 3)
	seedWeek(mock)
	api := &API{Store: mock}

	// Both teams exist this week but play in different games
	err := api.RecordFinalScore("Buffalo Bills", 20, "cowboys", 24)
	if err == nil {
		t.Fatal("Expected error for mismatched teams, got nil")
	}
}

// endregion
