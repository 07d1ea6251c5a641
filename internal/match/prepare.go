package match

import (
	"ringbook/internal/domain"
)

// Prepare canonicalizes a match record before persistence: the class is
// recomputed from the current sides, result maps gain a No Contest entry for
// every involved wrestler and team and lose entries for participants no
// longer in the match, and every optional field gets its defined default.
// Prepare is idempotent: running it on its own output changes nothing.
func Prepare(m domain.Match, teams []domain.TagTeam) domain.Match {
	m.Class = Classify(m.Sides)

	wrestlers := AllWrestlers(m.Sides)
	involved := TeamsInvolved(m.Sides, teams)

	if m.IndividualResults == nil {
		m.IndividualResults = make(map[string]domain.Result)
	}
	for _, name := range wrestlers {
		if _, ok := m.IndividualResults[name]; !ok {
			m.IndividualResults[name] = domain.ResultNoContest
		}
	}
	inMatch := toSet(wrestlers)
	for name := range m.IndividualResults {
		if _, ok := inMatch[name]; !ok {
			delete(m.IndividualResults, name)
		}
	}

	if m.TeamResults == nil {
		m.TeamResults = make(map[string]domain.Result)
	}
	for _, name := range involved {
		if _, ok := m.TeamResults[name]; !ok {
			m.TeamResults[name] = domain.ResultNoContest
		}
	}
	involvedSet := toSet(involved)
	for name := range m.TeamResults {
		if _, ok := involvedSet[name]; !ok {
			delete(m.TeamResults, name)
		}
	}

	if m.WinningSideIndex < -1 || m.WinningSideIndex >= len(m.Sides) {
		m.WinningSideIndex = -1
	}

	if m.SyncTeamsToIndividuals {
		syncTeamResults(&m, teams)
	}

	return m
}

// syncTeamResults overwrites each team member's individual result with the
// team's result. This runs after the reconciliation pass and is the
// authoritative source for a grouped wrestler's individual result.
func syncTeamResults(m *domain.Match, teams []domain.TagTeam) {
	membersByTeam := make(map[string][]string, len(teams))
	for _, t := range teams {
		if t.Name != "" && len(t.Members) > 0 {
			membersByTeam[t.Name] = t.Members
		}
	}
	for teamName, result := range m.TeamResults {
		for _, member := range membersByTeam[teamName] {
			if _, ok := m.IndividualResults[member]; ok {
				m.IndividualResults[member] = result
			}
		}
	}
}

// DefaultHeader names a match segment whose header the booker left blank.
func DefaultHeader(class domain.MatchClass) string {
	switch class {
	case domain.ClassSingles:
		return "Singles Match"
	case domain.ClassTag:
		return "Tag-Team Match"
	case domain.ClassBattleRoyal:
		return "Battle Royal"
	default:
		return "Match"
	}
}
