package match

import (
	"fmt"

	"ringbook/internal/domain"
)

// Validate checks a match's structure and result completeness. Errors block
// the save; warnings are advisory and stored on the match so finalize can
// require acknowledgment later.
func Validate(m domain.Match, teams []domain.TagTeam) (errors []string, warnings []string) {
	sides := m.Sides

	if len(sides) < 2 {
		errors = append(errors, "A match must have at least 2 sides.")
		return errors, warnings
	}
	for i, side := range sides {
		if len(side) == 0 {
			errors = append(errors, fmt.Sprintf("Side %d must have at least one participant.", i+1))
		}
	}

	warnings = append(warnings, structureWarnings(sides)...)
	warnings = append(warnings, resultWarnings(m, teams)...)
	return errors, warnings
}

// structureWarnings flags empty and unbalanced sides. Empty sides are also a
// hard error; the duplicate warning keeps them visible in warning lists.
func structureWarnings(sides [][]string) []string {
	var warnings []string

	minSize, maxSize := len(sides[0]), len(sides[0])
	anyEmpty := false
	for _, side := range sides {
		if len(side) == 0 {
			anyEmpty = true
		}
		if len(side) < minSize {
			minSize = len(side)
		}
		if len(side) > maxSize {
			maxSize = len(side)
		}
	}

	if anyEmpty {
		warnings = append(warnings, "Some sides have no wrestlers specified.")
	}
	if minSize != maxSize {
		warnings = append(warnings, fmt.Sprintf(
			"Match sides appear unbalanced (e.g., sides have %d to %d wrestlers). Review match structure.",
			minSize, maxSize))
	}
	return warnings
}

func resultWarnings(m domain.Match, teams []domain.TagTeam) []string {
	var warnings []string

	if m.MatchResult == "" {
		warnings = append(warnings, "Overall match result is not set.")
	}

	wrestlers := AllWrestlers(m.Sides)
	involved := TeamsInvolved(m.Sides, teams)

	for _, name := range wrestlers {
		if r, ok := m.IndividualResults[name]; !ok || !r.Valid() {
			warnings = append(warnings, fmt.Sprintf("Result missing or invalid for wrestler: %s", name))
		}
	}
	for _, name := range involved {
		if r, ok := m.TeamResults[name]; !ok || !r.Valid() {
			warnings = append(warnings, fmt.Sprintf("Result missing or invalid for team: %s", name))
		}
	}

	if m.WinningSideIndex < 0 || m.WinningSideIndex >= len(m.Sides) {
		return warnings
	}

	winningSide := toSet(m.Sides[m.WinningSideIndex])
	for _, name := range AllWrestlers([][]string{m.Sides[m.WinningSideIndex]}) {
		if m.IndividualResults[name] != domain.ResultWin {
			got := "N/A"
			if r, ok := m.IndividualResults[name]; ok {
				got = string(r)
			}
			warnings = append(warnings, fmt.Sprintf(
				"Wrestler '%s' on declared winning side has result '%s' instead of 'Win'.", name, got))
		}
	}
	for i, side := range m.Sides {
		if i == m.WinningSideIndex {
			continue
		}
		for _, name := range side {
			if m.IndividualResults[name] == domain.ResultWin {
				warnings = append(warnings, fmt.Sprintf(
					"Wrestler '%s' on a non-winning side has result 'Win'.", name))
			}
		}
	}

	membersByTeam := make(map[string][]string, len(teams))
	for _, t := range teams {
		if t.Name != "" && len(t.Members) > 0 {
			membersByTeam[t.Name] = t.Members
		}
	}
	for _, teamName := range involved {
		members, ok := membersByTeam[teamName]
		if !ok {
			continue
		}
		if isSubset(members, winningSide) {
			if m.TeamResults[teamName] != domain.ResultWin {
				got := "N/A"
				if r, ok := m.TeamResults[teamName]; ok {
					got = string(r)
				}
				warnings = append(warnings, fmt.Sprintf(
					"Team '%s' (on winning side) has result '%s' instead of 'Win'.", teamName, got))
			}
		} else if m.TeamResults[teamName] == domain.ResultWin {
			warnings = append(warnings, fmt.Sprintf(
				"Team '%s' (on non-winning side) has result 'Win'.", teamName))
		}
	}
	return warnings
}
