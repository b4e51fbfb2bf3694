/* ranking.go
 * Contains the logic for aggregating graded picks into ranked weekly standings
 * Authors: Zachary Bower
 */

package logic

import (
	"errors"
	"sort"
	"time"

	"github.com/kristianyonuel/CasaTodos-sub001/api/shared"
)

// ErrNoGradableData is returned when a week has no decided game with at least
// one graded pick. It lets the caller distinguish "week not started" from
// "week tied at zero".
var ErrNoGradableData = errors.New("no decided games with gradable picks for this week")

// WeekStanding is the aggregate of one participant's graded picks for a week.
// It is rebuilt from scratch on every ranking run, never updated incrementally.
type WeekStanding struct {
	UserId                string
	Username              string
	TotalPicks            int
	Correct               int
	Pushes                int
	Distance              DistanceTuple
	TiebreakerSubmittedAt time.Time
	Rank                  int
	IsWinner              bool
}

// RankWeek grades every pick against the decided games of the week and orders
// all participants into ranked standings.
// Preconditions: Receives all games and all picks for one (season, week). A mix
// of decided and undecided games is permitted; undecided games are excluded
// from grading and neither credit nor penalize anyone
// Postconditions: Returns standings ordered best first by (correct count desc,
// tiebreaker distance tuple, tiebreaker submission time, username). Standard
// competition ranks are shared by participants with identical (correct count,
// distance tuple); every rank 1 row is flagged as winner. Returns
// ErrNoGradableData when no pick could be graded, or ErrAmbiguousOutcomeSpace
// when more than one game is flagged as the tiebreaker game
func RankWeek(games []shared.Game, picks []shared.Pick) ([]WeekStanding, error) {
	tiebreaker, err := findTiebreakerGame(games)
	if err != nil {
		return nil, err
	}

	decided := make(map[string]Outcome)
	for _, game := range games {
		if !game.Decided() {
			continue
		}
		out, err := NormalizeResult(game)
		if err != nil {
			return nil, err
		}
		decided[game.GameId] = out
	}

	// Aggregate per participant. Order is restored by the sort below
	byUser := make(map[string]*WeekStanding)
	var order []string
	graded := false
	for _, pick := range picks {
		standing, ok := byUser[pick.UserId]
		if !ok {
			standing = &WeekStanding{
				UserId:   pick.UserId,
				Username: pick.Username,
				Distance: WorstDistance,
			}
			byUser[pick.UserId] = standing
			order = append(order, pick.UserId)
		}
		standing.TotalPicks++

		if tiebreaker != nil && pick.GameId == tiebreaker.GameId {
			standing.TiebreakerSubmittedAt = pick.SubmittedAt
		}

		out, ok := decided[pick.GameId]
		if !ok {
			continue
		}
		graded = true
		switch GradePick(out, pick) {
		case PickCorrect:
			standing.Correct++
		case PickPush:
			standing.Pushes++
		}

		if tiebreaker != nil && pick.GameId == tiebreaker.GameId {
			standing.Distance = EvaluateTiebreaker(pick, out)
		}
	}

	if !graded {
		return nil, ErrNoGradableData
	}

	standings := make([]WeekStanding, 0, len(order))
	for _, userId := range order {
		standings = append(standings, *byUser[userId])
	}

	sort.Slice(standings, func(i, j int) bool {
		a, b := standings[i], standings[j]
		if a.Correct != b.Correct {
			return a.Correct > b.Correct
		}
		if a.Distance != b.Distance {
			return a.Distance.Less(b.Distance)
		}
		if !a.TiebreakerSubmittedAt.Equal(b.TiebreakerSubmittedAt) {
			return a.TiebreakerSubmittedAt.Before(b.TiebreakerSubmittedAt)
		}
		return a.Username < b.Username
	})

	// Standard competition ranking: identical (correct, distance) pairs share
	// a rank, submission time and name only break ordering inside the group
	for i := range standings {
		if i > 0 && standings[i].Correct == standings[i-1].Correct && standings[i].Distance == standings[i-1].Distance {
			standings[i].Rank = standings[i-1].Rank
		} else {
			standings[i].Rank = i + 1
		}
		standings[i].IsWinner = standings[i].Rank == 1
	}

	return standings, nil
}

// findTiebreakerGame returns the week's single designated tiebreaker game, nil
// if no game is flagged, or ErrAmbiguousOutcomeSpace if more than one is
func findTiebreakerGame(games []shared.Game) (*shared.Game, error) {
	var tiebreaker *shared.Game
	for i := range games {
		if !games[i].IsTiebreaker {
			continue
		}
		if tiebreaker != nil {
			return nil, ErrAmbiguousOutcomeSpace
		}
		tiebreaker = &games[i]
	}
	return tiebreaker, nil
}
