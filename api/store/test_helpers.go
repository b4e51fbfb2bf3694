/* test_helpers.go
 * Contains test helper functions and mock structures for store package tests
 * Authors: Zachary Bower
 */

package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kristianyonuel/CasaTodos-sub001/api/shared"
)

// NewMockStore creates a Store instance for testing purposes.
// This can be used with a real test database or in-memory MongoDB.
func NewMockStore(dbName string, mongoURI string) (*Store, error) {
	return NewStore(dbName, mongoURI, 2025, 3, nil)
}

// CreateTestStore creates a Store connected to a test database.
// Returns the store and a cleanup function.
func CreateTestStore(mongoURI string) (*Store, func(), error) {
	store, err := NewMockStore("test_pool", mongoURI)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		if store.Client != nil {
			// Drop test database
			store.Database.Drop(context.TODO())
			// Disconnect client
			store.Client.Disconnect(context.TODO())
		}
	}

	return store, cleanup, nil
}

// CreateTestClient creates a test MongoDB client.
func CreateTestClient(mongoURI string) (*mongo.Client, error) {
	client, err := mongo.Connect(context.TODO(), options.Client().ApplyURI(mongoURI))
	if err != nil {
		return nil, err
	}
	return client, nil
}

// intPtr is a helper for building optional score fields in test data.
func intPtr(n int) *int {
	return &n
}

// CreateSampleGames creates sample Game data for testing: two decided games
// and an undecided tiebreaker game.
func CreateSampleGames(season, week int) []shared.Game {
	return []shared.Game{
		{
			GameId:    "g1",
			Season:    season,
			Week:      week,
			HomeTeam:  "Buffalo Bills",
			AwayTeam:  "Miami Dolphins",
			HomeScore: intPtr(31),
			AwayScore: intPtr(10),
		},
		{
			GameId:    "g2",
			Season:    season,
			Week:      week,
			HomeTeam:  "New York Jets",
			AwayTeam:  "New England Patriots",
			HomeScore: intPtr(14),
			AwayScore: intPtr(27),
		},
		{
			GameId:       "tb",
			Season:       season,
			Week:         week,
			HomeTeam:     "Dallas Cowboys",
			AwayTeam:     "Philadelphia Eagles",
			IsTiebreaker: true,
		},
	}
}

// CreateSamplePick creates sample Pick data for testing.
func CreateSamplePick(userId, username, gameId, team string, season, week int) shared.Pick {
	return shared.Pick{
		UserId:      userId,
		Username:    username,
		GameId:      gameId,
		Season:      season,
		Week:        week,
		Team:        team,
		SubmittedAt: time.Date(2025, 9, 17, 12, 0, 0, 0, time.UTC),
	}
}
