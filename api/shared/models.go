/* models.go
 * This file contain the structs and helper functions that are shared between sub packages
 * Authors: Zachary Bower
 */

package shared

import "time"

type User struct {
	UserId   string
	Username string
}

// Game represents a single scheduled matchup between two teams in a given
// season and week. Scores are nil until the game is decided; a game with only
// one score present is invalid input and is rejected by the engine.
type Game struct {
	GameId       string `bson:"gameid,omitempty"`
	Season       int    `bson:"season,omitempty"`
	Week         int    `bson:"week,omitempty"`
	HomeTeam     string `bson:"home_team,omitempty"`
	AwayTeam     string `bson:"away_team,omitempty"`
	IsTiebreaker bool   `bson:"is_tiebreaker,omitempty"`
	HomeScore    *int   `bson:"home_score,omitempty"`
	AwayScore    *int   `bson:"away_score,omitempty"`
}

// Decided reports whether both final scores have been recorded
func (g Game) Decided() bool {
	return g.HomeScore != nil && g.AwayScore != nil
}

// HasTeam reports whether name is one of the game's two sides
func (g Game) HasTeam(name string) bool {
	return name == g.HomeTeam || name == g.AwayTeam
}

// Pick represents one participant's choice of team for one game. The predicted
// scores are only set when the game is the week's tiebreaker game. SubmittedAt
// is the recorded submission time used as a deterministic ranking differentiator,
// never re-derived from the wall clock.
type Pick struct {
	UserId             string    `bson:"userid,omitempty"`
	Username           string    `bson:"username,omitempty"`
	GameId             string    `bson:"gameid,omitempty"`
	Season             int       `bson:"season,omitempty"`
	Week               int       `bson:"week,omitempty"`
	Team               string    `bson:"team,omitempty"`
	PredictedHomeScore *int      `bson:"predicted_home_score,omitempty"`
	PredictedAwayScore *int      `bson:"predicted_away_score,omitempty"`
	SubmittedAt        time.Time `bson:"submitted_at,omitempty"`
}

// HasScorePrediction reports whether the pick carries a full predicted final score
func (p Pick) HasScorePrediction() bool {
	return p.PredictedHomeScore != nil && p.PredictedAwayScore != nil
}
