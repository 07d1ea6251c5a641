// Package service implements the booking operations on top of the JSON
// stores: roster and tag-team management with deletion guards and
// back-reference sync, event and segment CRUD, and the finalization engine
// that commits match outcomes into permanent records.
package service

import (
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"ringbook/internal/domain"
	"ringbook/internal/storage"
)

type RosterService struct {
	wrestlers *storage.WrestlerStore
	logger    zerolog.Logger
}

func NewRosterService(wrestlers *storage.WrestlerStore, logger zerolog.Logger) *RosterService {
	return &RosterService{wrestlers: wrestlers, logger: logger}
}

func (s *RosterService) List(status string) ([]domain.Wrestler, error) {
	wrestlers, err := s.wrestlers.List()
	if err != nil {
		return nil, err
	}
	if status != "" && status != "All" {
		filtered := wrestlers[:0]
		for _, w := range wrestlers {
			if w.Status == status {
				filtered = append(filtered, w)
			}
		}
		wrestlers = filtered
	}
	sort.Slice(wrestlers, func(i, j int) bool { return wrestlers[i].Name < wrestlers[j].Name })
	return wrestlers, nil
}

func (s *RosterService) Get(name string) (*domain.Wrestler, error) {
	return s.wrestlers.Get(name)
}

func (s *RosterService) Create(w domain.Wrestler) error {
	if strings.TrimSpace(w.Name) == "" {
		return domain.NewValidationError("Wrestler Name is required.")
	}
	wrestlers, err := s.wrestlers.List()
	if err != nil {
		return err
	}
	for _, existing := range wrestlers {
		if existing.Name == w.Name {
			return domain.NewConflictError("Wrestler with the name %q already exists.", w.Name)
		}
	}

	// New wrestlers start inactive with a clean record; team and belt
	// back-references are owned by the tag-team and belt services.
	w.Status = domain.StatusInactive
	w.Team = ""
	w.Belt = ""
	w.SinglesWins, w.SinglesLosses, w.SinglesDraws = 0, 0, 0
	w.TagWins, w.TagLosses, w.TagDraws = 0, 0, 0

	s.logger.Info().Str("wrestler", w.Name).Msg("creating wrestler")
	return s.wrestlers.SaveAll(append(wrestlers, w))
}

// Update replaces a wrestler's editable fields. Counters and the team/belt
// back-references are preserved from the stored record.
func (s *RosterService) Update(originalName string, updated domain.Wrestler) error {
	if strings.TrimSpace(updated.Name) == "" {
		return domain.NewValidationError("Wrestler Name is required.")
	}
	wrestlers, err := s.wrestlers.List()
	if err != nil {
		return err
	}
	index := -1
	for i, w := range wrestlers {
		if w.Name == originalName {
			index = i
		} else if w.Name == updated.Name {
			return domain.NewConflictError("Wrestler with the name %q already exists.", updated.Name)
		}
	}
	if index == -1 {
		return domain.ErrNotFound
	}

	current := wrestlers[index]
	updated.Team = current.Team
	updated.Belt = current.Belt
	updated.SinglesWins, updated.SinglesLosses, updated.SinglesDraws = current.SinglesWins, current.SinglesLosses, current.SinglesDraws
	updated.TagWins, updated.TagLosses, updated.TagDraws = current.TagWins, current.TagLosses, current.TagDraws
	wrestlers[index] = updated

	s.logger.Info().Str("wrestler", updated.Name).Msg("updating wrestler")
	return s.wrestlers.SaveAll(wrestlers)
}

// Delete removes a wrestler. A wrestler with any non-zero counter has match
// history and cannot be deleted.
func (s *RosterService) Delete(name string) error {
	w, err := s.wrestlers.Get(name)
	if err != nil {
		return err
	}
	if w.HasRecord() {
		return domain.NewStateError("Cannot delete a wrestler who has a match record.")
	}
	s.logger.Info().Str("wrestler", name).Msg("deleting wrestler")
	return s.wrestlers.Delete(name)
}

// ResetRecords zeroes every wrestler's win/loss/draw counters.
func (s *RosterService) ResetRecords() error {
	wrestlers, err := s.wrestlers.List()
	if err != nil {
		return err
	}
	for i := range wrestlers {
		wrestlers[i].SinglesWins, wrestlers[i].SinglesLosses, wrestlers[i].SinglesDraws = 0, 0, 0
		wrestlers[i].TagWins, wrestlers[i].TagLosses, wrestlers[i].TagDraws = 0, 0, 0
	}
	s.logger.Info().Int("count", len(wrestlers)).Msg("resetting wrestler records")
	return s.wrestlers.SaveAll(wrestlers)
}
