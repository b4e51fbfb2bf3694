/* api.go
 * This file contains the public methods for interacting with this package. For consistent results, functions should
 * only be called from this file, not the sub packages for logic and store.
 * Authors: Zachary Bower
 */

package api

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kristianyonuel/CasaTodos-sub001/api/logic"
	"github.com/kristianyonuel/CasaTodos-sub001/api/shared"
	"github.com/kristianyonuel/CasaTodos-sub001/api/store"
)

// API provides methods for interacting with the pick'em pool data layer
type API struct {
	Store store.Interface
}

// NewAPI creates a new API instance with the provided configuration
func NewAPI(dbName string, mongoURI string, season int, week int, logger *logrus.Logger) (*API, error) {
	if dbName == "" {
		return nil, fmt.Errorf("dbName is required")
	}

	s, err := store.NewStore(dbName, mongoURI, season, week, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	return &API{
		Store: s,
	}, nil
}

// SetUserPick contains the logic to set one user's pick for a game in the DB.
// It receives a user struct that contains userId and userName, the raw team name the
// user backs, an optional predicted final score (home, away) and the recorded
// submission time.
// It resolves the team name to its canonical form, validates the pick against the
// week's schedule and updates the user's pick in the database, or returns an error
// if it occurs.
func (a *API) SetUserPick(user shared.User, inputTeam string, predHome *int, predAway *int, submittedAt time.Time) error {
	games, err := a.Store.GetWeekGames()
	if err != nil {
		return err
	}
	if len(games) == 0 {
		return fmt.Errorf("no games scheduled for week %d", a.Store.GetWeek())
	}

	// Get valid team names
	validTeams, err := a.Store.GetValidTeams()
	if err != nil {
		return err
	}

	// Fix formatting on input team
	inputTeam = strings.ReplaceAll(inputTeam, "\"", "")
	inputTeam = strings.ReplaceAll(inputTeam, "“", "")
	inputTeam = strings.ReplaceAll(inputTeam, "”", "")

	// Validate input team
	team, err := logic.ResolveTeamName(inputTeam, validTeams)
	if err != nil {
		return err
	}

	// Find the game the team plays in this week
	var game *shared.Game
	for i := range games {
		if games[i].HasTeam(team) {
			game = &games[i]
			break
		}
	}
	if game == nil {
		return fmt.Errorf("'%s' does not play in week %d", team, a.Store.GetWeek())
	}

	if game.Decided() {
		return fmt.Errorf("the %s game already has a final score, picks are closed", team)
	}

	// The tiebreaker game needs a full predicted final score
	if game.IsTiebreaker && (predHome == nil || predAway == nil) {
		return fmt.Errorf("the %s vs %s game is the tiebreaker, a predicted final score is required", game.HomeTeam, game.AwayTeam)
	}

	pick := shared.Pick{
		UserId:             user.UserId,
		Username:           user.Username,
		GameId:             game.GameId,
		Season:             a.Store.GetSeason(),
		Week:               a.Store.GetWeek(),
		Team:               team,
		PredictedHomeScore: predHome,
		PredictedAwayScore: predAway,
		SubmittedAt:        submittedAt,
	}

	return a.Store.StoreUserPick(pick)
}

// CheckPicks contains the logic required to check one user's picks for the week.
// It receives a user struct and receiver pointer to api.
// It returns a string containing the graded results of the user's picks, or an
// error if it occurs.
func (a *API) CheckPicks(user shared.User) (string, error) {
	picks, err := a.Store.GetUserPicks(user.UserId)
	if err != nil {
		return "", err
	}

	games, err := a.Store.GetWeekGames()
	if err != nil {
		return "", err
	}
	gamesById := make(map[string]shared.Game, len(games))
	for _, game := range games {
		gamesById[game.GameId] = game
	}

	var report PickReport
	var response strings.Builder
	for _, pick := range picks {
		game, ok := gamesById[pick.GameId]
		if !ok {
			return "", fmt.Errorf("pick references unknown game %s", pick.GameId)
		}

		response.WriteString(fmt.Sprintf("- %s (%s vs %s)", pick.Team, game.HomeTeam, game.AwayTeam))
		if !game.Decided() {
			response.WriteString(" [Pending]\n")
			report.Pending++
			continue
		}

		result, err := logic.GradeGame(game, pick)
		if err != nil {
			return "", err
		}
		switch result {
		case logic.PickCorrect:
			response.WriteString(" [Correct]\n")
			report.Correct++
		case logic.PickPush:
			response.WriteString(" [Push]\n")
			report.Pushes++
		default:
			response.WriteString(" [Incorrect]\n")
			report.Incorrect++
		}
	}

	response.WriteString(fmt.Sprintf("%d correct, %d incorrect, %d pushes, %d pending\n",
		report.Correct, report.Incorrect, report.Pushes, report.Pending))
	return response.String(), nil
}

// GenerateStandings contains the logic required to generate the weekly standings.
// Preconditions: Receives receiver pointer to api
// Postconditions: Ranks the week, updates the standings in the DB and returns nil,
// or returns an error if it occurs
func (a *API) GenerateStandings() error {
	games, err := a.Store.GetWeekGames()
	if err != nil {
		return err
	}

	picks, err := a.Store.GetWeekPicks()
	if err != nil {
		return err
	}

	ranked, err := logic.RankWeek(games, picks)
	if err != nil {
		return err
	}

	standings := store.Standings{
		Season:    a.Store.GetSeason(),
		Week:      a.Store.GetWeek(),
		UpdatedAt: time.Now(),
	}
	for _, ws := range ranked {
		standings.Entries = append(standings.Entries, store.NewStandingsEntry(ws))
	}

	return a.Store.StoreStandings(standings)
}

// GetStandings fetches the weekly standings from the db and generates a response string
// Preconditions: Receives receiver pointer to api
// Postconditions: Returns a string with the summary of the standings for this week
func (a *API) GetStandings() (string, error) {
	entries, err := a.Store.FetchStandings()
	if err != nil {
		return "", err
	}

	// Entries are persisted in rank order but sort again so the response does
	// not depend on how the document was written
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Rank < entries[j].Rank
	})

	var response strings.Builder
	response.WriteString(fmt.Sprintf("Week %d standings:\n", a.Store.GetWeek()))
	for _, entry := range entries {
		response.WriteString(fmt.Sprintf("%d. %s, %d correct of %d picks", entry.Rank, entry.Username, entry.Correct, entry.TotalPicks))
		if entry.IsWinner {
			response.WriteString(" (weekly winner)")
		}
		response.WriteString("\n")
	}

	return response.String(), nil
}

// SimulateWeek runs the what-if analysis for the week's outstanding tiebreaker game.
// It receives receiver pointer to api and returns the Simulation, or an error if it
// occurs. The caller can render it with RenderSimulation.
func (a *API) SimulateWeek() (logic.Simulation, error) {
	games, err := a.Store.GetWeekGames()
	if err != nil {
		return logic.Simulation{}, err
	}

	picks, err := a.Store.GetWeekPicks()
	if err != nil {
		return logic.Simulation{}, err
	}

	return logic.SimulateOutcomes(games, picks)
}

// RecordFinalScore records the final score of a game identified by its two team
// names, in either order. Each raw name is resolved to its canonical form and the
// scores are mapped onto home and away before being stored.
// It returns nil, or an error if the teams cannot be resolved to a single game or
// the game already has a score.
func (a *API) RecordFinalScore(team1 string, score1 int, team2 string, score2 int) error {
	games, err := a.Store.GetWeekGames()
	if err != nil {
		return err
	}
	validTeams, err := a.Store.GetValidTeams()
	if err != nil {
		return err
	}

	resolved, invalid := logic.ResolveTeamNames([]string{team1, team2}, validTeams)
	if len(invalid) > 0 {
		var str strings.Builder
		str.WriteString("the following team names are invalid:")
		for i := range invalid {
			str.WriteString(fmt.Sprintf(" '%s'", invalid[i]))
		}
		return errors.New(str.String())
	}

	for _, game := range games {
		if game.HomeTeam == resolved[0] && game.AwayTeam == resolved[1] {
			return a.Store.RecordFinalScore(game.GameId, score1, score2)
		}
		if game.HomeTeam == resolved[1] && game.AwayTeam == resolved[0] {
			return a.Store.RecordFinalScore(game.GameId, score2, score1)
		}
	}
	return fmt.Errorf("no week %d game between %s and %s", a.Store.GetWeek(), resolved[0], resolved[1])
}

// RenderSimulation formats a Simulation into the "if X wins" narrative shown to users.
// It receives the Simulation and returns the response string.
func RenderSimulation(sim logic.Simulation) string {
	var response strings.Builder
	response.WriteString(fmt.Sprintf("%s vs %s decides the week (current leader: %d correct)\n",
		sim.Game.HomeTeam, sim.Game.AwayTeam, sim.MaxWins))

	if sim.Unanimous {
		response.WriteString("Every submitted pick backs the same team this week\n")
	}

	for _, branch := range []logic.Branch{sim.HomeBranch, sim.AwayBranch} {
		switch branch.Outcome {
		case logic.BranchDeterministicWinner:
			response.WriteString(fmt.Sprintf("- If the %s win: %s wins the week with %d correct\n",
				branch.WinningTeam, branch.Winner.Username, branch.FinalWins))
		case logic.BranchTiebreakerRequired:
			var names []string
			for _, c := range branch.Tied {
				names = append(names, c.Username)
			}
			response.WriteString(fmt.Sprintf("- If the %s win: %d-way tie at %d correct, the score prediction decides between %s\n",
				branch.WinningTeam, len(branch.Tied), branch.FinalWins, strings.Join(names, ", ")))
		default:
			response.WriteString(fmt.Sprintf("- If the %s win: no change, contenders stay tied at %d correct\n",
				branch.WinningTeam, branch.FinalWins))
		}
	}

	if len(sim.Eliminated) > 0 {
		var names []string
		for _, c := range sim.Eliminated {
			names = append(names, c.Username)
		}
		response.WriteString(fmt.Sprintf("Out of contention: %s\n", strings.Join(names, ", ")))
	}

	return response.String()
}
