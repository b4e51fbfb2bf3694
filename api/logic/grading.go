/* grading.go
 * Contains the logic for grading a participant's pick against a game outcome
 * Authors: Zachary Bower
 */

package logic

import (
	"github.com/kristianyonuel/CasaTodos-sub001/api/shared"
)

// PickResult is the correctness outcome of a graded pick
type PickResult int

const (
	PickIncorrect PickResult = iota
	PickCorrect
	PickPush
)

func (r PickResult) String() string {
	switch r {
	case PickCorrect:
		return "correct"
	case PickPush:
		return "push"
	default:
		return "incorrect"
	}
}

// GradedPick is a Pick annotated with its correctness outcome. It is derived
// data owned by whichever caller computed it and is never persisted on its own.
type GradedPick struct {
	Pick   shared.Pick
	Result PickResult
}

// GradePick determines the correctness of a pick against a normalized outcome.
// Preconditions: Receives an Outcome produced by NormalizeResult and the Pick to grade
// Postconditions: Returns PickPush if the game tied, PickCorrect if the picked
// team won, and PickIncorrect otherwise. Pure function, no side effects
func GradePick(out Outcome, pick shared.Pick) PickResult {
	if out.Tie {
		return PickPush
	}
	if pick.Team == out.Winner {
		return PickCorrect
	}
	return PickIncorrect
}

// GradeGame is a convenience wrapper that normalizes a game and grades a pick
// against it in one call.
// Preconditions: Receives the Game the pick was made on and the Pick to grade
// Postconditions: Returns the PickResult, or ErrUndecidedGame propagated from
// NormalizeResult when the game has no final score yet
func GradeGame(game shared.Game, pick shared.Pick) (PickResult, error) {
	out, err := NormalizeResult(game)
	if err != nil {
		return PickIncorrect, err
	}
	return GradePick(out, pick), nil
}
