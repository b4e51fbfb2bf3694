/* store.go
 * Contains the store struct and NewStore function. The methods for this package were split into three files:
 * games, picks and standings. Each of these files contain methods for interacting with that
 * part of the database
 * Authors: Zachary Bower
 */

package store

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	Client      *mongo.Client
	Database    *mongo.Database
	Season      int
	Week        int
	Logger      *logrus.Logger
	Collections struct {
		Games     *mongo.Collection
		Picks     *mongo.Collection
		Standings *mongo.Collection
	}
}

// Function for initialising Store. Sets connection values and initialises db connection
// Preconditions: Receives strings containing dbName and mongoURI, the season and week the
// store serves, and an optional logger
// Postconditions: Sets collection values and returns pointer to the Store object, or error if it occurs
func NewStore(dbName string, mongoURI string, season int, week int, logger *logrus.Logger) (*Store, error) {
	client, err := mongo.Connect(context.TODO(), options.Client().ApplyURI(mongoURI))
	if err != nil {
		return nil, err
	}
	db := client.Database(dbName)

	if season <= 0 || week <= 0 {
		return nil, fmt.Errorf("season and week must be positive, got season %d week %d", season, week)
	}
	if logger == nil {
		logger = logrus.New()
	}

	return &Store{
		Client:   client,
		Database: db,
		Season:   season,
		Week:     week,
		Logger:   logger,
		Collections: struct {
			Games     *mongo.Collection
			Picks     *mongo.Collection
			Standings *mongo.Collection
		}{
			Games:     db.Collection("games"),
			Picks:     db.Collection("user_picks"),
			Standings: db.Collection("weekly_standings"),
		},
	}, nil
}
