/* utils.go
 * Utility functions used across the application
 * Authors: Zachary Bower
 */

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-andiamo/splitter"
)

// convertStrToBool converts a string of true or false into a boolean for comparisons
// Preconditions: Receives string containing either true or false (case insensitive)
// Postconditions: Returns boolean value or an error if the string is not true or false
func convertStrToBool(str string) (bool, error) {
	str = strings.TrimSpace(str)
	str = strings.ToLower(str)

	if str == "true" {
		return true, nil
	} else if str == "false" {
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean string")
}

// parseFinalScoreArgs parses the value of the -final flag into a pair of team
// names and their scores, e.g. `"Dallas Cowboys" 24 "Philadelphia Eagles" 17`
// Preconditions: Receives a string of exactly four space separated tokens:
// team, score, team, score. Team names containing spaces must be quoted
// Postconditions: Returns both team names with quotes stripped and both scores,
// or an error if the token count is wrong or either score is not a number
func parseFinalScoreArgs(args string) (string, int, string, int, error) {
	spaceSplitter, _ := splitter.NewSplitter(' ', splitter.DoubleQuotes, splitter.LeftRightDoubleDoubleQuotes) //we use splitter here instead of go's built in splitter so team names that contain spaces e.g. "Dallas Cowboys" are recognised as one token not two
	tokens, err := spaceSplitter.Split(args)
	if err != nil {
		return "", 0, "", 0, err
	}

	var fields []string
	for _, token := range tokens {
		if strings.TrimSpace(token) != "" {
			fields = append(fields, token)
		}
	}
	if len(fields) != 4 {
		return "", 0, "", 0, fmt.Errorf("expected `\"team\" score \"team\" score`, got %d tokens", len(fields))
	}

	team1 := stripQuotes(fields[0])
	team2 := stripQuotes(fields[2])

	score1, err := strconv.Atoi(fields[1])
	if err != nil {
		return "", 0, "", 0, fmt.Errorf("invalid score for %s: %s", team1, fields[1])
	}
	score2, err := strconv.Atoi(fields[3])
	if err != nil {
		return "", 0, "", 0, fmt.Errorf("invalid score for %s: %s", team2, fields[3])
	}

	return team1, score1, team2, score2, nil
}

// stripQuotes removes surrounding plain or smart double quotes from a token
func stripQuotes(token string) string {
	return strings.Trim(token, "\"“”")
}
