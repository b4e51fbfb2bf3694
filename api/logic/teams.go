/* teams.go
 * Contains the logic for resolving user supplied team names to their canonical
 * form. Resolution happens once at the boundary so the engine only ever sees
 * canonical names
 * Authors: Zachary Bower
 */

package logic

import (
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// ResolveTeamNames processes team names from user input and matches them against
// the canonical team list.
// Preconditions: receives two string slices; one containing the user supplied names
// and another that is the list of canonical team names
// Postconditions: returns two string slices, a slice of canonical team names and a
// slice containing the names that could not be matched
func ResolveTeamNames(inputTeams []string, validTeams []string) ([]string, []string) {
	var resolved []string
	var invalid []string

	// Convert to lowercase for better matching, keeping a lookup back to the
	// canonical spelling
	lookup := make(map[string]string)
	var validLower []string
	for _, name := range validTeams {
		lower := strings.ToLower(name)
		lookup[lower] = name
		validLower = append(validLower, lower)
	}

	for _, team := range inputTeams {
		lowerTeam := strings.ToLower(team)
		fuzzyResults := fuzzy.RankFind(lowerTeam, validLower)
		if len(fuzzyResults) == 0 {
			invalid = append(invalid, team)
			continue
		}

		// If there are multiple matches, prefer an exact match over the best
		// ranked fuzzy match
		best := ""
		for i := range fuzzyResults {
			if fuzzyResults[i].Target == lowerTeam {
				best = fuzzyResults[i].Target
			}
		}
		if best == "" {
			best = fuzzyResults[0].Target
		}
		resolved = append(resolved, lookup[best])
	}
	return resolved, invalid
}

// ResolveTeamName resolves a single user supplied team name to its canonical form.
// Preconditions: receives the user supplied name and the list of canonical team names
// Postconditions: returns the canonical name, or an error if the name could not be matched
func ResolveTeamName(inputTeam string, validTeams []string) (string, error) {
	resolved, invalid := ResolveTeamNames([]string{inputTeam}, validTeams)
	if len(invalid) > 0 || len(resolved) != 1 {
		return "", fmt.Errorf("'%s' does not match any team this week", inputTeam)
	}
	return resolved[0], nil
}
