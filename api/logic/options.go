/* options.go
 * Contains the logic for resolving user input against an allowed option set.
 * Registration steps are select menus in spirit, but input arrives as free
 * text, so we fuzzy match it onto the valid names
 * Authors: Zachary Bower
 */

package logic

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// ResolveOption resolves a single user input against a set of valid option
// names. It receives the raw input and the valid names.
// It returns the canonical option name and true, or "" and false when the
// input matches nothing.
func ResolveOption(input string, validOptions []string) (string, bool) {
	resolved, invalid := ResolveOptions([]string{input}, validOptions)
	if len(invalid) > 0 || len(resolved) == 0 {
		return "", false
	}
	return resolved[0], true
}

// ResolveOptions resolves user inputs against a set of valid option names.
// Preconditions: receives two string slices; one containing the user's inputs and another that is the list of valid option names
// Postconditions: returns two string slices, a slice of canonical option names and a slice containing the inputs that matched nothing
func ResolveOptions(inputs []string, validOptions []string) ([]string, []string) {
	var resolved []string
	var invalid []string

	// Convert option names to lowercase for better matching
	lookup := make(map[string]string)
	var optionsLower []string
	for _, name := range validOptions {
		lower := strings.ToLower(name)
		lookup[lower] = name
		optionsLower = append(optionsLower, lower)
	}

	for _, input := range inputs {
		lowerInput := strings.ToLower(strings.TrimSpace(input))
		if lowerInput == "" {
			invalid = append(invalid, input)
			continue
		}
		fuzzyResults := fuzzy.RankFind(lowerInput, optionsLower)
		if len(fuzzyResults) == 0 {
			invalid = append(invalid, input)
			continue
		}
		if len(fuzzyResults) == 1 {
			resolved = append(resolved, lookup[fuzzyResults[0].Target]) // Append the canonical name, not the lowercase one
			continue
		}
		// If there are multiple matches, check to see if theres an exact match with the input
		temp := ""
		for i := range fuzzyResults {
			if fuzzyResults[i].Target == lowerInput {
				temp = fuzzyResults[i].Target
			}
		}
		// If no exact match was found, take the best ranked match
		if temp == "" {
			best := fuzzyResults[0]
			for _, r := range fuzzyResults[1:] {
				if r.Distance < best.Distance {
					best = r
				}
			}
			temp = best.Target
		}
		resolved = append(resolved, lookup[temp])
	}
	return resolved, invalid
}
