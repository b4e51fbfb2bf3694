/* test_mocks.go
 * Contains mock structures and interfaces for testing the API package
 * Authors: Zachary Bower
 */

package api

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kristianyonuel/CasaTodos-sub001/api/shared"
	"github.com/kristianyonuel/CasaTodos-sub001/api/store"
)

// MockStore implements the Store interface for testing
type MockStore struct {
	// Storage for mock data
	Games     []shared.Game
	Picks     []shared.Pick
	Standings store.Standings

	// Error injection for testing error paths
	GetWeekGamesError     error
	StoreGamesError       error
	RecordFinalScoreError error
	GetValidTeamsError    error
	StoreUserPickError    error
	GetUserPicksError     error
	GetWeekPicksError     error
	StoreStandingsError   error
	FetchStandingsError   error

	// Database, season and week info
	DatabaseName string
	Season       int
	Week         int
}

// mockDatabase implements the minimal Database interface needed for tests
type mockDatabase struct {
	name string
}

func (m *mockDatabase) Name() string {
	return m.name
}

// NewMockStore creates a new MockStore with default values
func NewMockStore(season int, week int) *MockStore {
	return &MockStore{
		DatabaseName: "test_db",
		Season:       season,
		Week:         week,
	}
}

// GetWeekGames mock implementation
func (m *MockStore) GetWeekGames() ([]shared.Game, error) {
	if m.GetWeekGamesError != nil {
		return nil, m.GetWeekGamesError
	}
	return m.Games, nil
}

// StoreGames mock implementation
func (m *MockStore) StoreGames(games []shared.Game) error {
	if m.StoreGamesError != nil {
		return m.StoreGamesError
	}
	m.Games = append(m.Games, games...)
	return nil
}

// RecordFinalScore mock implementation
func (m *MockStore) RecordFinalScore(gameId string, homeScore int, awayScore int) error {
	if m.RecordFinalScoreError != nil {
		return m.RecordFinalScoreError
	}
	for i := range m.Games {
		if m.Games[i].GameId != gameId {
			continue
		}
		if m.Games[i].Decided() {
			return fmt.Errorf("game %s already has a final score recorded", gameId)
		}
		m.Games[i].HomeScore = &homeScore
		m.Games[i].AwayScore = &awayScore
		return nil
	}
	return mongo.ErrNoDocuments
}

// GetValidTeams mock implementation
func (m *MockStore) GetValidTeams() ([]string, error) {
	if m.GetValidTeamsError != nil {
		return nil, m.GetValidTeamsError
	}
	seen := make(map[string]bool)
	var teams []string
	for _, game := range m.Games {
		for _, name := range []string{game.HomeTeam, game.AwayTeam} {
			if !seen[name] {
				seen[name] = true
				teams = append(teams, name)
			}
		}
	}
	return teams, nil
}

// StoreUserPick mock implementation
func (m *MockStore) StoreUserPick(pick shared.Pick) error {
	if m.StoreUserPickError != nil {
		return m.StoreUserPickError
	}
	for i := range m.Picks {
		if m.Picks[i].UserId == pick.UserId && m.Picks[i].GameId == pick.GameId {
			m.Picks[i] = pick
			return nil
		}
	}
	m.Picks = append(m.Picks, pick)
	return nil
}

// GetUserPicks mock implementation
func (m *MockStore) GetUserPicks(userId string) ([]shared.Pick, error) {
	if m.GetUserPicksError != nil {
		return nil, m.GetUserPicksError
	}
	var picks []shared.Pick
	for _, pick := range m.Picks {
		if pick.UserId == userId {
			picks = append(picks, pick)
		}
	}
	if len(picks) == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return picks, nil
}

// GetWeekPicks mock implementation
func (m *MockStore) GetWeekPicks() ([]shared.Pick, error) {
	if m.GetWeekPicksError != nil {
		return nil, m.GetWeekPicksError
	}
	return m.Picks, nil
}

// StoreStandings mock implementation
func (m *MockStore) StoreStandings(standings store.Standings) error {
	if m.StoreStandingsError != nil {
		return m.StoreStandingsError
	}
	m.Standings = standings
	return nil
}

// FetchStandings mock implementation
func (m *MockStore) FetchStandings() ([]store.StandingsEntry, error) {
	if m.FetchStandingsError != nil {
		return nil, m.FetchStandingsError
	}
	if len(m.Standings.Entries) == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return m.Standings.Entries, nil
}

// Implement getter methods for the store Interface
func (m *MockStore) GetDatabase() interface{ Name() string } {
	return &mockDatabase{name: m.DatabaseName}
}

func (m *MockStore) GetSeason() int {
	return m.Season
}

func (m *MockStore) GetWeek() int {
	return m.Week
}

// mockClient implements minimal client interface
type mockClient struct{}

func (mc *mockClient) Disconnect(ctx context.Context) error {
	return nil
}

func (m *MockStore) GetClient() interface{ Disconnect(context.Context) error } {
	return &mockClient{}
}
