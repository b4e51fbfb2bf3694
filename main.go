/* main.go
 * The "main" method for running the weekly pool engine
 * Usage: go run main.go -season=<year> -week=<week> [-final='"team" score "team" score'] [-simulate]
 * Authors: Zachary Bower
 */

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	api "github.com/kristianyonuel/CasaTodos-sub001/api/api"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	err := godotenv.Load()

	//Flags
	seasonPtr := flag.Int("season", 2025, "Season year, e.g. 2025")
	weekPtr := flag.Int("week", 1, "Week of the season, 1-18")
	dbPtr := flag.String("db", "pool", "Name of the database to use")
	finalPtr := flag.String("final", "", "Record a final score, e.g. '\"Dallas Cowboys\" 24 \"Philadelphia Eagles\" 17'")
	simulatePtr := flag.String("simulate", "false", "Run the what-if analysis for the outstanding tiebreaker game: takes true or false as argument")
	testPtr := flag.String("test", "false", "Use main or test database cluster: takes true or false as argument")

	flag.Parse()

	if err != nil {
		logrus.Fatal("Error loading .env file")
	}

	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.JSONFormatter{})

	useTest, err := convertStrToBool(*testPtr)
	if err != nil {
		logger.Fatal("Invalid \"test\" flag. Should be true or false")
	}
	var mongoURI string
	if useTest {
		mongoURI = os.Getenv("MONGO_BETA_URI")
	} else {
		mongoURI = os.Getenv("MONGO_PROD_URI")
	}

	api, err := api.NewAPI(*dbPtr, mongoURI, *seasonPtr, *weekPtr, logger)
	if err != nil {
		logger.Fatalf("failed to initialize API: %v", err)
	}
	defer func() {
		if err = api.Store.GetClient().Disconnect(context.TODO()); err != nil {
			panic(err)
		}
	}()

	if *finalPtr != "" {
		recordFinal(api, logger, *finalPtr)
		return
	}

	simulate, err := convertStrToBool(*simulatePtr)
	if err != nil {
		logger.Fatal("Invalid \"simulate\" flag. Should be true or false")
	}
	if simulate {
		simulateWeek(api, logger)
		return
	}

	showStandings(api, logger)
}

// recordFinal parses the -final flag, records the score and refreshes standings
func recordFinal(apiPtr *api.API, logger *logrus.Logger, args string) {
	team1, score1, team2, score2, err := parseFinalScoreArgs(args)
	if err != nil {
		logger.Fatalf("failed to parse final score: %v", err)
	}

	err = apiPtr.RecordFinalScore(team1, score1, team2, score2)
	if err != nil {
		logger.Fatalf("failed to record final score: %v", err)
	}

	err = apiPtr.GenerateStandings()
	if err != nil {
		logger.Fatalf("failed to refresh standings: %v", err)
	}

	showStandings(apiPtr, logger)
}

// simulateWeek prints who can still win the week under each tiebreaker outcome
func simulateWeek(apiPtr *api.API, logger *logrus.Logger) {
	sim, err := apiPtr.SimulateWeek()
	if err != nil {
		logger.Fatalf("failed to simulate week: %v", err)
	}
	fmt.Println(api.RenderSimulation(sim))
}

// showStandings prints the stored standings for the configured week
func showStandings(apiPtr *api.API, logger *logrus.Logger) {
	standings, err := apiPtr.GetStandings()
	if err != nil {
		logger.Fatalf("failed to get standings: %v", err)
	}
	fmt.Println(standings)
}
