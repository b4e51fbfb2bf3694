/* games.go
 * Contains the methods for interacting with the games collection
 * Authors: Zachary Bower
 */

package store

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kristianyonuel/CasaTodos-sub001/api/shared"
)

// GetWeekGames does a DB lookup for every game scheduled in the store's (season, week)
// Preconditions: Receives receiver pointer for Store which contains season and week
// Postconditions: Returns slice of Games, or an error if it occurs
func (s *Store) GetWeekGames() ([]shared.Game, error) {
	filter := bson.D{{Key: "season", Value: s.Season}, {Key: "week", Value: s.Week}}

	cursor, err := s.Collections.Games.Find(context.TODO(), filter)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, err
		}
		return nil, fmt.Errorf("error fetching games from db: %w", err)
	}

	var games []shared.Game
	if err = cursor.All(context.TODO(), &games); err != nil {
		return nil, fmt.Errorf("error unpacking cursor into slice of games: %w", err)
	}

	return games, nil
}

// StoreGames stores or replaces the week's game schedule in the db
// Preconditions: Receives receiver pointer for Store and the games to store
// Postconditions: Upserts one document per game keyed by game id, or returns an error if it occurs
func (s *Store) StoreGames(games []shared.Game) error {
	if len(games) == 0 {
		return fmt.Errorf("games list is empty")
	}

	for _, game := range games {
		filter := bson.M{"gameid": game.GameId}
		update := bson.M{"$set": game}

		var existing shared.Game
		err := s.Collections.Games.FindOne(context.TODO(), filter).Decode(&existing)
		notFound := err == mongo.ErrNoDocuments

		if err != nil && !notFound {
			return fmt.Errorf("lookup for existing game failed: %w", err)
		}

		if notFound {
			if _, err := s.Collections.Games.InsertOne(context.TODO(), game); err != nil {
				return fmt.Errorf("failed to insert game %s: %w", game.GameId, err)
			}
			continue
		}

		if _, err := s.Collections.Games.UpdateOne(context.TODO(), filter, update); err != nil {
			return fmt.Errorf("failed to update game %s: %w", game.GameId, err)
		}
	}
	return nil
}

// RecordFinalScore records the one-time final score of a game. A game is
// mutated exactly once: recording over an already decided game is rejected
// Preconditions: Receives receiver pointer for Store, the game id and both non-negative final scores
// Postconditions: Updates the game document in the db and returns nil, or an error if it occurs
func (s *Store) RecordFinalScore(gameId string, homeScore int, awayScore int) error {
	if homeScore < 0 || awayScore < 0 {
		return fmt.Errorf("final score cannot be negative: %d-%d", homeScore, awayScore)
	}

	var game shared.Game
	err := s.Collections.Games.FindOne(context.TODO(), bson.M{"gameid": gameId}).Decode(&game)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return err
		}
		return fmt.Errorf("lookup for game failed: %w", err)
	}

	if game.Decided() {
		return fmt.Errorf("game %s already has a final score recorded", gameId)
	}

	s.Logger.WithFields(logrus.Fields{
		"game": gameId,
		"home": homeScore,
		"away": awayScore,
	}).Info("recording final score")

	filter := bson.M{"gameid": gameId}
	update := bson.M{"$set": bson.M{"home_score": homeScore, "away_score": awayScore}}
	if _, err := s.Collections.Games.UpdateOne(context.TODO(), filter, update); err != nil {
		return fmt.Errorf("failed to record final score for game %s: %w", gameId, err)
	}
	return nil
}

// GetValidTeams is a helper function to get the canonical team names playing this
// week, used when resolving user supplied names at pick time. The names come from
// the games collection so no separate team list needs to be maintained.
// It returns a sorted string slice of the week's team names, or an error if it occurs.
func (s *Store) GetValidTeams() ([]string, error) {
	games, err := s.GetWeekGames()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var teams []string
	for _, game := range games {
		for _, name := range []string{game.HomeTeam, game.AwayTeam} {
			if name == "" || seen[name] {
				continue
			}
			seen[name] = true
			teams = append(teams, name)
		}
	}
	sort.Strings(teams)

	return teams, nil
}
