/* simulation.go
 * Contains the logic for the what-if analysis of a week whose tiebreaker game
 * has not finished: which participants can still win under each outcome
 * Authors: Zachary Bower
 */

package logic

import (
	"errors"

	"github.com/kristianyonuel/CasaTodos-sub001/api/shared"
)

// ErrAmbiguousOutcomeSpace is returned when the set of possible outcomes
// cannot be enumerated: more than one game is still undecided, the outstanding
// game is not the tiebreaker game, or more than one game is flagged as the
// tiebreaker. Surfaced rather than guessed, since picking an outcome space
// silently would produce a misleading what-if narrative.
var ErrAmbiguousOutcomeSpace = errors.New("outcome space is ambiguous")

// BranchOutcome classifies how one hypothesized result resolves the week
type BranchOutcome int

const (
	BranchNoChange BranchOutcome = iota
	BranchDeterministicWinner
	BranchTiebreakerRequired
)

func (b BranchOutcome) String() string {
	switch b {
	case BranchDeterministicWinner:
		return "deterministic_winner"
	case BranchTiebreakerRequired:
		return "tiebreaker_required"
	default:
		return "no_change"
	}
}

// Contender is a participant whose win count can still reach or exceed the
// current leader once the outstanding game resolves
type Contender struct {
	UserId     string
	Username   string
	Wins       int
	PickedTeam string // team backed in the outstanding game, empty if no pick
}

// Branch is one hypothesized resolution of the outstanding tiebreaker game
type Branch struct {
	WinningTeam string
	Outcome     BranchOutcome
	Winner      *Contender  // set when Outcome is BranchDeterministicWinner
	Tied        []Contender // set when Outcome is BranchTiebreakerRequired
	Unchanged   []Contender // contenders whose win count does not move
	FinalWins   int         // highest win count among contenders in this branch
}

// Simulation is the full what-if analysis for a week with one outstanding game
type Simulation struct {
	Game       shared.Game // the outstanding tiebreaker game
	MaxWins    int
	Contenders []Contender
	Eliminated []Contender
	Unanimous  bool // every submitted pick on the outstanding game backs the same team
	HomeBranch Branch
	AwayBranch Branch
}

// SimulateOutcomes enumerates the two possible winners of the week's
// outstanding tiebreaker game and determines who can still win the week in
// each branch.
// Preconditions: Receives all games and picks for one (season, week). Exactly
// one game must be undecided and it must be the designated tiebreaker game
// Postconditions: Returns a Simulation with both branches resolved. A branch
// names a deterministic winner only when exactly one contender ends strictly
// ahead; two or more contenders tied at the top are reported as requiring
// tiebreaker resolution, and a branch nobody backed leaves every contender
// unchanged. Returns ErrAmbiguousOutcomeSpace when the precondition fails, or
// propagates RankWeek errors from the decided portion of the week
func SimulateOutcomes(games []shared.Game, picks []shared.Pick) (Simulation, error) {
	if _, err := findTiebreakerGame(games); err != nil {
		return Simulation{}, err
	}

	var outstanding *shared.Game
	var decidedGames []shared.Game
	for i := range games {
		if games[i].Decided() {
			decidedGames = append(decidedGames, games[i])
			continue
		}
		if outstanding != nil {
			return Simulation{}, ErrAmbiguousOutcomeSpace
		}
		outstanding = &games[i]
	}
	if outstanding == nil || !outstanding.IsTiebreaker {
		return Simulation{}, ErrAmbiguousOutcomeSpace
	}

	standings, err := RankWeek(decidedGames, picks)
	if err != nil {
		return Simulation{}, err
	}

	maxWins := 0
	for _, s := range standings {
		if s.Correct > maxWins {
			maxWins = s.Correct
		}
	}

	// Picks on the outstanding game, keyed by participant
	outstandingPicks := make(map[string]string)
	unanimousTeam := ""
	unanimous := true
	for _, pick := range picks {
		if pick.GameId != outstanding.GameId {
			continue
		}
		outstandingPicks[pick.UserId] = pick.Team
		if unanimousTeam == "" {
			unanimousTeam = pick.Team
		} else if pick.Team != unanimousTeam {
			unanimous = false
		}
	}
	if unanimousTeam == "" {
		unanimous = false
	}

	sim := Simulation{
		Game:      *outstanding,
		MaxWins:   maxWins,
		Unanimous: unanimous,
	}

	// Winning the outstanding game must let a participant tie or pass the
	// current leader; everyone else is mathematically eliminated
	for _, s := range standings {
		c := Contender{
			UserId:     s.UserId,
			Username:   s.Username,
			Wins:       s.Correct,
			PickedTeam: outstandingPicks[s.UserId],
		}
		if s.Correct+1 >= maxWins+1 {
			sim.Contenders = append(sim.Contenders, c)
		} else {
			sim.Eliminated = append(sim.Eliminated, c)
		}
	}

	sim.HomeBranch = resolveBranch(outstanding.HomeTeam, sim.Contenders)
	sim.AwayBranch = resolveBranch(outstanding.AwayTeam, sim.Contenders)

	return sim, nil
}

// resolveBranch works out who wins the week if winningTeam takes the
// outstanding game. Contenders who backed winningTeam gain one win; the branch
// is deterministic only when a single contender ends strictly ahead of all
// others
func resolveBranch(winningTeam string, contenders []Contender) Branch {
	branch := Branch{WinningTeam: winningTeam}

	finalWins := make([]int, len(contenders))
	top := 0
	gainers := 0
	for i, c := range contenders {
		finalWins[i] = c.Wins
		if c.PickedTeam == winningTeam {
			finalWins[i]++
			gainers++
		}
		if finalWins[i] > top {
			top = finalWins[i]
		}
	}
	branch.FinalWins = top

	if gainers == 0 {
		branch.Outcome = BranchNoChange
		branch.Unchanged = append(branch.Unchanged, contenders...)
		return branch
	}

	var leaders []Contender
	for i, c := range contenders {
		if finalWins[i] == top {
			leaders = append(leaders, c)
		} else {
			branch.Unchanged = append(branch.Unchanged, c)
		}
	}

	if len(leaders) == 1 {
		branch.Outcome = BranchDeterministicWinner
		branch.Winner = &leaders[0]
		return branch
	}

	branch.Outcome = BranchTiebreakerRequired
	branch.Tied = leaders
	return branch
}
