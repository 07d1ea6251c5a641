// Package match holds the pure functions over match participant structure:
// classification, result preparation, validation and display formatting.
// Nothing here touches storage; callers pass roster and belt snapshots in.
package match

import (
	"ringbook/internal/constants"
	"ringbook/internal/domain"
)

// Classify derives the match class from side cardinalities alone. Rule, in
// priority order: any side with more than one participant is a tag match;
// all-single-participant sides are a battle royal at 10+ sides and a singles
// match at 2-9 sides; everything else is other.
func Classify(sides [][]string) domain.MatchClass {
	anyMultiple := false
	allSingle := len(sides) > 0
	for _, side := range sides {
		if len(side) > 1 {
			anyMultiple = true
		}
		if len(side) != 1 {
			allSingle = false
		}
	}

	switch {
	case anyMultiple:
		return domain.ClassTag
	case allSingle && len(sides) >= constants.BattleRoyalMinSides:
		return domain.ClassBattleRoyal
	case allSingle && len(sides) >= 2:
		return domain.ClassSingles
	default:
		return domain.ClassOther
	}
}

// AllWrestlers returns every distinct wrestler name across all sides. Order
// follows first appearance so output is deterministic.
func AllWrestlers(sides [][]string) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, side := range sides {
		for _, name := range side {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	return names
}

// TeamsInvolved returns every known tag team whose full membership (of size
// greater than one) is grouped together on a single side. A team split
// across sides is not involved as a team.
func TeamsInvolved(sides [][]string, teams []domain.TagTeam) []string {
	seen := make(map[string]struct{})
	var involved []string
	for _, side := range sides {
		sideSet := toSet(side)
		for _, team := range teams {
			if team.Name == "" || len(team.Members) < 2 {
				continue
			}
			if _, ok := seen[team.Name]; ok {
				continue
			}
			if isSubset(team.Members, sideSet) {
				seen[team.Name] = struct{}{}
				involved = append(involved, team.Name)
			}
		}
	}
	return involved
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

func isSubset(members []string, side map[string]struct{}) bool {
	for _, m := range members {
		if _, ok := side[m]; !ok {
			return false
		}
	}
	return true
}
