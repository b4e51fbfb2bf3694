/* standings.go
 * Contains the methods for interacting with the weekly_standings collection
 * Authors: Zachary Bower
 */

package store

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FetchStandings returns the persisted weekly standings from the db
// Preconditions: Receives receiver pointer for Store which contains season and week
// Postconditions: Returns slice of StandingsEntry with participant rows, or an error if it occurs
func (s *Store) FetchStandings() ([]StandingsEntry, error) {
	opts := options.FindOne()

	var res Standings
	filter := bson.D{{Key: "season", Value: s.Season}, {Key: "week", Value: s.Week}}
	err := s.Collections.Standings.FindOne(context.TODO(), filter, opts).Decode(&res)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to fetch standings from database: %w", err)
	}

	return res.Entries, nil
}

// StoreStandings updates the weekly standings stored in the DB
// Preconditions: Receives receiver pointer for Store and the Standings value to be stored
// Postconditions: Updates the weekly_standings collection in Mongo and returns nil, or an error if it occurs
func (s *Store) StoreStandings(standings Standings) error {
	if reflect.DeepEqual(standings, Standings{}) {
		return fmt.Errorf("standings is empty")
	}

	filter := bson.M{"season": standings.Season, "week": standings.Week}

	// Attempt to find an existing document
	var res Standings
	err := s.Collections.Standings.FindOne(context.TODO(), filter).Decode(&res)
	notFound := err == mongo.ErrNoDocuments

	if err != nil && !notFound {
		return fmt.Errorf("lookup for existing record failed: %w", err)
	}

	// Perform insert or update
	s.Logger.WithFields(map[string]interface{}{
		"season": standings.Season,
		"week":   standings.Week,
	}).Info("updating weekly standings in db")
	if notFound {
		_, err := s.Collections.Standings.InsertOne(context.TODO(), standings)
		if err != nil {
			return fmt.Errorf("standings insert failed: %w", err)
		}
		return nil
	}

	update := bson.D{{Key: "$set", Value: standings}}
	_, err = s.Collections.Standings.UpdateOne(context.TODO(), filter, update)
	if err != nil {
		return fmt.Errorf("standings update failed: %w", err)
	}
	return nil
}
