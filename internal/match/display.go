package match

import (
	"fmt"
	"strings"

	"ringbook/internal/domain"
)

// SideDisplay renders one side for card and result strings. Registered teams
// fully contained in the side collapse to "Team (A, B)"; everyone else
// appears as a bare name.
func SideDisplay(side []string, teams []domain.TagTeam) string {
	sideSet := toSet(side)

	var contained []domain.TagTeam
	absorbed := make(map[string]struct{})
	for _, team := range teams {
		if len(team.Members) < 2 || !isSubset(team.Members, sideSet) {
			continue
		}
		contained = append(contained, team)
		for _, m := range team.Members {
			absorbed[m] = struct{}{}
		}
	}

	var parts []string
	for _, team := range contained {
		parts = append(parts, fmt.Sprintf("%s (%s)", team.Name, strings.Join(team.Members, ", ")))
	}
	for _, name := range side {
		if _, ok := absorbed[name]; !ok {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, ", ")
}

// ParticipantsDisplay renders the full card line, sides joined with " vs ".
func ParticipantsDisplay(sides [][]string, teams []domain.TagTeam) string {
	var parts []string
	for _, side := range sides {
		parts = append(parts, SideDisplay(side, teams))
	}
	return strings.Join(parts, " vs ")
}

// ResultDisplay renders the human-readable result line. It is derived purely
// from stored fields and is always regenerable.
func ResultDisplay(m domain.Match, teams []domain.TagTeam, belts []domain.Belt) string {
	var parts []string

	if m.WinningSideIndex >= 0 && m.WinningSideIndex < len(m.Sides) {
		winner := SideDisplay(m.Sides[m.WinningSideIndex], teams)
		var losers []string
		for i, side := range m.Sides {
			if i != m.WinningSideIndex && len(side) > 0 {
				losers = append(losers, SideDisplay(side, teams))
			}
		}
		parts = append(parts, fmt.Sprintf("%s def. %s", winner, strings.Join(losers, ", ")))

		if m.WinnerMethod != "" {
			parts = append(parts, fmt.Sprintf("by %s", m.WinnerMethod))
		}
		if m.Championship != "" {
			if belt := findBelt(belts, m.Championship); belt != nil {
				verb := "win"
				if holderOnSide(belt, m.Sides[m.WinningSideIndex], teams) {
					verb = "retain"
				}
				parts = append(parts, fmt.Sprintf("to %s the %s", verb, belt.ChampionTitle))
			}
		}
	} else if len(m.Sides) > 0 {
		versus := ParticipantsDisplay(m.Sides, teams)
		if m.MatchResult != "" {
			parts = append(parts, fmt.Sprintf("%s ended in a %s", versus, strings.ToLower(m.MatchResult)))
		} else {
			parts = append(parts, versus)
		}
	} else if m.MatchResult != "" {
		parts = append(parts, fmt.Sprintf("Ended in a %s", strings.ToLower(m.MatchResult)))
	}

	out := strings.Join(parts, " ")
	if m.MatchTime != "" {
		out += fmt.Sprintf(" (%s)", m.MatchTime)
	}
	return out
}

func findBelt(belts []domain.Belt, id string) *domain.Belt {
	for i := range belts {
		if belts[i].ID == id {
			return &belts[i]
		}
	}
	return nil
}

// holderOnSide reports whether the pre-match holder is on the winning side:
// for tag belts the holding team's full membership must be contained in the
// side, for singles belts the holder's name must appear on it.
func holderOnSide(belt *domain.Belt, side []string, teams []domain.TagTeam) bool {
	if belt.CurrentHolder == "" {
		return false
	}
	if belt.HolderType == domain.HolderTagTeam {
		for _, team := range teams {
			if team.Name == belt.CurrentHolder {
				return len(team.Members) > 0 && isSubset(team.Members, toSet(side))
			}
		}
		return false
	}
	for _, name := range side {
		if name == belt.CurrentHolder {
			return true
		}
	}
	return false
}
