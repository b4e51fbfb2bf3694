/* picks.go
 * Contains the methods for interacting with the user_picks collection
 * Authors: Zachary Bower
 */

package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kristianyonuel/CasaTodos-sub001/api/shared"
)

// StoreUserPick stores a user's pick for one game in the db
// Preconditions: Receives receiver pointer for Store and the Pick to store; the pick
// carries the user, game, season and week it belongs to
// Postconditions: Stores or updates the pick keyed by (user, game), or returns an
// error if the operation was unsuccessful
func (s *Store) StoreUserPick(pick shared.Pick) error {
	if pick.UserId == "" || pick.GameId == "" {
		return fmt.Errorf("pick is missing user or game id")
	}

	filter := bson.M{"userid": pick.UserId, "gameid": pick.GameId}

	// Attempt to find an existing document
	var existing shared.Pick
	err := s.Collections.Picks.FindOne(context.TODO(), filter).Decode(&existing)
	notFound := err == mongo.ErrNoDocuments

	if err != nil && !notFound {
		return fmt.Errorf("lookup for existing pick failed: %w", err)
	}

	// The user currently has no pick for this game so we create a new document
	if notFound {
		if _, err := s.Collections.Picks.InsertOne(context.TODO(), pick); err != nil {
			return fmt.Errorf("failed to insert new pick: %w", err)
		}
		return nil
	}

	// Else update the user's existing pick
	if _, err := s.Collections.Picks.UpdateOne(context.TODO(), filter, bson.M{"$set": pick}); err != nil {
		return fmt.Errorf("failed to update existing pick: %w", err)
	}
	return nil
}

// GetUserPicks does DB lookup and gets the picks one user submitted for the store's week
// Preconditions: Receives receiver pointer for Store and the user id
// Postconditions: Returns the user's picks if any exist, or an error if it occurs
func (s *Store) GetUserPicks(userId string) ([]shared.Pick, error) {
	filter := bson.M{"userid": userId, "season": s.Season, "week": s.Week}

	cursor, err := s.Collections.Picks.Find(context.TODO(), filter)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, err
		}
		return nil, fmt.Errorf("error fetching picks from db: %w", err)
	}

	var picks []shared.Pick
	if err = cursor.All(context.TODO(), &picks); err != nil {
		return nil, fmt.Errorf("error unpacking cursor into slice of picks: %w", err)
	}

	if len(picks) == 0 {
		return nil, mongo.ErrNoDocuments
	}

	return picks, nil
}

// GetWeekPicks does DB lookup and gets every pick submitted for the store's week.
// Used in standings and simulation calculations.
// It returns a slice of Picks or an error if it occurs.
func (s *Store) GetWeekPicks() ([]shared.Pick, error) {
	filter := bson.D{{Key: "season", Value: s.Season}, {Key: "week", Value: s.Week}}

	cursor, err := s.Collections.Picks.Find(context.TODO(), filter)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, err
		}
		return nil, fmt.Errorf("error fetching picks from db: %w", err)
	}

	var picks []shared.Pick
	if err = cursor.All(context.TODO(), &picks); err != nil {
		return nil, fmt.Errorf("error unpacking cursor into slice of picks: %w", err)
	}

	return picks, nil
}
