/* outcome.go
 * Contains the logic for normalizing a decided game into a canonical outcome
 * Authors: Zachary Bower
 */

package logic

import (
	"errors"
	"fmt"

	"github.com/kristianyonuel/CasaTodos-sub001/api/shared"
)

// ErrUndecidedGame is returned when a game without both final scores is asked
// to be treated as decided. This is always surfaced to the caller; silently
// treating an undecided game as a win or loss would corrupt every downstream
// ranking built from it.
var ErrUndecidedGame = errors.New("game is not decided")

// Outcome is the canonical result of a decided game. A tie is a valid outcome:
// Tie is set and the winner/loser fields are empty, so every consumer must
// branch on Tie explicitly rather than assume a winner exists.
type Outcome struct {
	HomeTeam      string
	AwayTeam      string
	HomeScore     int
	AwayScore     int
	Winner        string
	Loser         string
	WinnerScore   int
	LoserScore    int
	CombinedTotal int
	Tie           bool
}

// NormalizeResult turns a raw game record into a canonical Outcome.
// Preconditions: Receives a Game with both final scores recorded
// Postconditions: Returns the Outcome, or ErrUndecidedGame if either score is
// absent, or an error if a recorded score is negative
func NormalizeResult(game shared.Game) (Outcome, error) {
	if !game.Decided() {
		return Outcome{}, fmt.Errorf("game %s: %w", game.GameId, ErrUndecidedGame)
	}

	home := *game.HomeScore
	away := *game.AwayScore
	if home < 0 || away < 0 {
		return Outcome{}, fmt.Errorf("game %s has invalid final score %d-%d", game.GameId, home, away)
	}

	out := Outcome{
		HomeTeam:      game.HomeTeam,
		AwayTeam:      game.AwayTeam,
		HomeScore:     home,
		AwayScore:     away,
		CombinedTotal: home + away,
	}

	switch {
	case home > away:
		out.Winner = game.HomeTeam
		out.Loser = game.AwayTeam
		out.WinnerScore = home
		out.LoserScore = away
	case away > home:
		out.Winner = game.AwayTeam
		out.Loser = game.HomeTeam
		out.WinnerScore = away
		out.LoserScore = home
	default:
		out.Tie = true
	}

	return out, nil
}
