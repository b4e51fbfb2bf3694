/* models.go
 * This file contain the structs and helper functions that relate to DB objects
 * Authors: Zachary Bower
 */

package store

import (
	"time"

	"github.com/kristianyonuel/CasaTodos-sub001/api/logic"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Standings represents the way the ranked weekly results are stored in the DB,
// one document per (season, week)
type Standings struct {
	Id        primitive.ObjectID `bson:"_id,omitempty"`
	Season    int                `bson:"season,omitempty"`
	Week      int                `bson:"week,omitempty"`
	UpdatedAt time.Time          `bson:"updated_at,omitempty"`
	Entries   []StandingsEntry   `bson:"entries,omitempty"`
}

// StandingsEntry is one participant's row in the persisted weekly standings
type StandingsEntry struct {
	UserId         string `bson:"userid,omitempty"`
	Username       string `bson:"username,omitempty"`
	Rank           int    `bson:"rank,omitempty"`
	Correct        int    `bson:"correct,omitempty"`
	Pushes         int    `bson:"pushes,omitempty"`
	TotalPicks     int    `bson:"total_picks,omitempty"`
	TotalDistance  int    `bson:"total_distance,omitempty"`
	WinnerDistance int    `bson:"winner_distance,omitempty"`
	LoserDistance  int    `bson:"loser_distance,omitempty"`
	IsWinner       bool   `bson:"is_winner,omitempty"`
}

// NewStandingsEntry converts an in-memory weekly standing into its DB row form
// Preconditions: Receives a WeekStanding produced by the ranking engine
// Postconditions: Returns the StandingsEntry ready to be embedded in a Standings document
func NewStandingsEntry(ws logic.WeekStanding) StandingsEntry {
	return StandingsEntry{
		UserId:         ws.UserId,
		Username:       ws.Username,
		Rank:           ws.Rank,
		Correct:        ws.Correct,
		Pushes:         ws.Pushes,
		TotalPicks:     ws.TotalPicks,
		TotalDistance:  ws.Distance.Total,
		WinnerDistance: ws.Distance.Winner,
		LoserDistance:  ws.Distance.Loser,
		IsWinner:       ws.IsWinner,
	}
}
