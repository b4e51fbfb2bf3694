/* store_interface.go
 * Contains the Store interface for dependency injection and testing
 * Authors: Zachary Bower
 */

package store

import (
	"context"

	"github.com/kristianyonuel/CasaTodos-sub001/api/shared"
)

// Interface defines the methods that Store implements.
// This allows for mocking in tests.
type Interface interface {
	GetWeekGames() ([]shared.Game, error)
	StoreGames(games []shared.Game) error
	RecordFinalScore(gameId string, homeScore int, awayScore int) error
	GetValidTeams() ([]string, error)
	StoreUserPick(pick shared.Pick) error
	GetUserPicks(userId string) ([]shared.Pick, error)
	GetWeekPicks() ([]shared.Pick, error)
	StoreStandings(standings Standings) error
	FetchStandings() ([]StandingsEntry, error)

	// Getter methods for accessing fields
	GetDatabase() interface{ Name() string }
	GetSeason() int
	GetWeek() int
	GetClient() interface{ Disconnect(context.Context) error }
}

// Ensure Store implements Interface
var _ Interface = (*Store)(nil)

// GetDatabase returns the database instance
func (s *Store) GetDatabase() interface{ Name() string } {
	return s.Database
}

// GetSeason returns the season the store serves
func (s *Store) GetSeason() int {
	return s.Season
}

// GetWeek returns the week the store serves
func (s *Store) GetWeek() int {
	return s.Week
}

// GetClient returns the MongoDB client
func (s *Store) GetClient() interface{ Disconnect(context.Context) error } {
	return s.Client
}
