/* tiebreaker.go
 * Contains the logic for scoring a participant's tiebreaker prediction against
 * the actual final score of the week's tiebreaker game
 * Authors: Zachary Bower
 */

package logic

import (
	"math"

	"github.com/kristianyonuel/CasaTodos-sub001/api/shared"
)

// DistanceTuple is the ordered distance between a tiebreaker prediction and
// the actual result. Tuples are compared lexicographically, lower is strictly
// better. This ordering is the only tie-resolution rule after raw win count.
type DistanceTuple struct {
	Total  int
	Winner int
	Loser  int
}

// WorstDistance is the sentinel tuple assigned to participants who submitted
// no tiebreaker prediction. It always ranks last among tied win counts.
var WorstDistance = DistanceTuple{Total: math.MaxInt32, Winner: math.MaxInt32, Loser: math.MaxInt32}

// Less reports whether d ranks strictly better than o under lexicographic
// comparison of (Total, Winner, Loser)
func (d DistanceTuple) Less(o DistanceTuple) bool {
	if d.Total != o.Total {
		return d.Total < o.Total
	}
	if d.Winner != o.Winner {
		return d.Winner < o.Winner
	}
	return d.Loser < o.Loser
}

// EvaluateTiebreaker computes the distance tuple for one pick against the
// normalized actual outcome of the tiebreaker game.
// Preconditions: Receives the participant's tiebreaker Pick and the Outcome of
// the decided tiebreaker game
// Postconditions: Returns (total, winner, loser) distances. A pick with no
// score prediction gets WorstDistance. If the actual game tied, winner and
// loser distances are undefined and are reported as zero for everyone, so
// only the total distance differentiates
func EvaluateTiebreaker(pick shared.Pick, out Outcome) DistanceTuple {
	if !pick.HasScorePrediction() {
		return WorstDistance
	}

	predHome := *pick.PredictedHomeScore
	predAway := *pick.PredictedAwayScore
	total := abs(predHome + predAway - out.CombinedTotal)

	if out.Tie {
		return DistanceTuple{Total: total}
	}

	// Map the per-side prediction onto the side that actually won
	predWinner := predAway
	predLoser := predHome
	if out.Winner == out.HomeTeam {
		predWinner = predHome
		predLoser = predAway
	}

	return DistanceTuple{
		Total:  total,
		Winner: abs(predWinner - out.WinnerScore),
		Loser:  abs(predLoser - out.LoserScore),
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
