package service

import (
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"ringbook/internal/constants"
	"ringbook/internal/domain"
	"ringbook/internal/storage"
)

// TagTeamService owns the team<->member relationship: every membership
// change keeps each affected wrestler's Team back-reference in sync, and
// team weight is recomputed from member weights.
type TagTeamService struct {
	teams     *storage.TagTeamStore
	wrestlers *storage.WrestlerStore
	logger    zerolog.Logger
}

func NewTagTeamService(teams *storage.TagTeamStore, wrestlers *storage.WrestlerStore, logger zerolog.Logger) *TagTeamService {
	return &TagTeamService{teams: teams, wrestlers: wrestlers, logger: logger}
}

func (s *TagTeamService) List(status string) ([]domain.TagTeam, error) {
	teams, err := s.teams.List()
	if err != nil {
		return nil, err
	}
	if status != "" && status != "All" {
		filtered := teams[:0]
		for _, t := range teams {
			if t.Status == status {
				filtered = append(filtered, t)
			}
		}
		teams = filtered
	}
	sort.Slice(teams, func(i, j int) bool {
		return sortKeyIgnoreThe(teams[i].Name) < sortKeyIgnoreThe(teams[j].Name)
	})
	return teams, nil
}

// sortKeyIgnoreThe drops a leading "The " so "The Outsiders" files under O.
func sortKeyIgnoreThe(name string) string {
	if len(name) > 4 && strings.EqualFold(name[:4], "the ") {
		return name[4:]
	}
	return name
}

func (s *TagTeamService) Get(name string) (*domain.TagTeam, error) {
	return s.teams.Get(name)
}

func (s *TagTeamService) Create(team domain.TagTeam) error {
	if err := s.validate(&team); err != nil {
		return err
	}
	teams, err := s.teams.List()
	if err != nil {
		return err
	}
	for _, existing := range teams {
		if existing.Name == team.Name {
			return domain.NewConflictError("A tag-team with the name %q already exists.", team.Name)
		}
	}

	team.Belt = ""
	team.Wins, team.Losses, team.Draws = 0, 0, 0
	if err := s.teams.SaveAll(append(teams, team)); err != nil {
		return err
	}

	s.logger.Info().Str("team", team.Name).Strs("members", team.Members).Msg("creating tag team")
	return s.syncMembers(nil, team.Members, team.Name)
}

func (s *TagTeamService) Update(originalName string, updated domain.TagTeam) error {
	if err := s.validate(&updated); err != nil {
		return err
	}
	teams, err := s.teams.List()
	if err != nil {
		return err
	}
	index := -1
	var oldMembers []string
	for i, t := range teams {
		if t.Name == originalName {
			index = i
			oldMembers = t.Members
		} else if t.Name == updated.Name {
			return domain.NewConflictError("A tag-team with the name %q already exists.", updated.Name)
		}
	}
	if index == -1 {
		return domain.ErrNotFound
	}

	current := teams[index]
	updated.Belt = current.Belt
	updated.Wins, updated.Losses, updated.Draws = current.Wins, current.Losses, current.Draws
	teams[index] = updated
	if err := s.teams.SaveAll(teams); err != nil {
		return err
	}

	// Covers membership changes and renames alike: every current member
	// points at the (possibly new) team name, removed members are cleared.
	s.logger.Info().Str("team", updated.Name).Msg("updating tag team")
	return s.syncMembers(oldMembers, updated.Members, updated.Name)
}

func (s *TagTeamService) Delete(name string) error {
	team, err := s.teams.Get(name)
	if err != nil {
		return err
	}
	if team.HasRecord() {
		return domain.NewStateError("Cannot delete a tag team that has a match record.")
	}
	if err := s.syncMembers(team.Members, nil, ""); err != nil {
		return err
	}
	s.logger.Info().Str("team", name).Msg("deleting tag team")
	return s.teams.Delete(name)
}

func (s *TagTeamService) ResetRecords() error {
	teams, err := s.teams.List()
	if err != nil {
		return err
	}
	for i := range teams {
		teams[i].Wins, teams[i].Losses, teams[i].Draws = 0, 0, 0
	}
	s.logger.Info().Int("count", len(teams)).Msg("resetting tag team records")
	return s.teams.SaveAll(teams)
}

// validate normalizes the incoming team: membership size, derived weight,
// and the rule that a team cannot be Active while any member is not.
func (s *TagTeamService) validate(team *domain.TagTeam) error {
	if strings.TrimSpace(team.Name) == "" {
		return domain.NewValidationError("Tag-team Name is required.")
	}
	if len(team.Members) < constants.TagTeamMinMembers || len(team.Members) > constants.TagTeamMaxMembers {
		return domain.NewValidationError("A tag team requires %d to %d members.",
			constants.TagTeamMinMembers, constants.TagTeamMaxMembers)
	}
	seen := make(map[string]struct{}, len(team.Members))
	for _, m := range team.Members {
		if _, dup := seen[m]; dup {
			return domain.NewValidationError("Member %q is listed more than once.", m)
		}
		seen[m] = struct{}{}
	}

	wrestlers, err := s.wrestlers.List()
	if err != nil {
		return err
	}
	byName := make(map[string]domain.Wrestler, len(wrestlers))
	for _, w := range wrestlers {
		byName[w.Name] = w
	}

	total := 0
	allActive := true
	for _, m := range team.Members {
		w, ok := byName[m]
		if !ok {
			return domain.NewValidationError("Member %q is not on the roster.", m)
		}
		if w.Status != domain.StatusActive {
			allActive = false
		}
		// Weight may carry a unit suffix; only the leading number counts.
		if fields := strings.Fields(w.Weight); len(fields) > 0 {
			if n, err := strconv.Atoi(fields[0]); err == nil {
				total += n
			}
		}
	}
	if total > 0 {
		team.Weight = strconv.Itoa(total)
	} else {
		team.Weight = ""
	}
	if team.Status == domain.StatusActive && !allActive {
		s.logger.Warn().Str("team", team.Name).Msg("demoting team status: not all members are active")
		team.Status = domain.StatusInactive
	}
	return nil
}

// syncMembers updates wrestler Team back-references after a membership
// change: removed members are cleared, current members point at teamName.
func (s *TagTeamService) syncMembers(oldMembers, newMembers []string, teamName string) error {
	wrestlers, err := s.wrestlers.List()
	if err != nil {
		return err
	}
	newSet := make(map[string]struct{}, len(newMembers))
	for _, m := range newMembers {
		newSet[m] = struct{}{}
	}
	oldSet := make(map[string]struct{}, len(oldMembers))
	for _, m := range oldMembers {
		oldSet[m] = struct{}{}
	}

	changed := false
	for i := range wrestlers {
		name := wrestlers[i].Name
		if _, isNew := newSet[name]; isNew {
			if wrestlers[i].Team != teamName {
				wrestlers[i].Team = teamName
				changed = true
			}
		} else if _, wasOld := oldSet[name]; wasOld {
			if wrestlers[i].Team != "" {
				wrestlers[i].Team = ""
				changed = true
			}
		}
	}
	if !changed {
		return nil
	}
	return s.wrestlers.SaveAll(wrestlers)
}
