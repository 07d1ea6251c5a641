package service

import (
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"ringbook/internal/domain"
	"ringbook/internal/storage"
)

// BeltService manages championship definitions and their reign ledgers.
// Holder assignments outside a finalized match (title awards, vacations)
// go through SetHolder so the reign invariant holds everywhere.
type BeltService struct {
	belts     *storage.BeltStore
	wrestlers *storage.WrestlerStore
	teams     *storage.TagTeamStore
	logger    zerolog.Logger
}

func NewBeltService(
	belts *storage.BeltStore,
	wrestlers *storage.WrestlerStore,
	teams *storage.TagTeamStore,
	logger zerolog.Logger,
) *BeltService {
	return &BeltService{belts: belts, wrestlers: wrestlers, teams: teams, logger: logger}
}

func (s *BeltService) List() ([]domain.Belt, error) {
	return s.belts.List()
}

func (s *BeltService) Get(id string) (*domain.Belt, error) {
	return s.belts.Get(id)
}

func (s *BeltService) History(id string) ([]domain.Reign, error) {
	if _, err := s.belts.Get(id); err != nil {
		return nil, err
	}
	return s.belts.HistoryFor(id)
}

func (s *BeltService) Create(belt domain.Belt) (*domain.Belt, error) {
	if err := validateBelt(belt); err != nil {
		return nil, err
	}
	if belt.ID == "" {
		belt.ID = storage.Slugify(belt.ChampionTitle)
	}
	belts, err := s.belts.List()
	if err != nil {
		return nil, err
	}
	for _, b := range belts {
		if b.ID == belt.ID {
			return nil, domain.NewConflictError("A belt with ID '%s' already exists.", belt.ID)
		}
	}
	// New belts start vacant; holders come from SetHolder or finalization.
	belt.CurrentHolder = ""
	if err := s.belts.SaveAll(append(belts, belt)); err != nil {
		return nil, err
	}
	s.logger.Info().Str("belt", belt.ID).Msg("belt created")
	return &belt, nil
}

func (s *BeltService) Update(id string, updated domain.Belt) (*domain.Belt, error) {
	if err := validateBelt(updated); err != nil {
		return nil, err
	}
	belts, err := s.belts.List()
	if err != nil {
		return nil, err
	}
	for i := range belts {
		if belts[i].ID != id {
			continue
		}
		if updated.HolderType != belts[i].HolderType && belts[i].CurrentHolder != "" {
			return nil, domain.NewStateError("Cannot change holder type while the belt is held. Vacate it first.")
		}
		updated.ID = id
		updated.CurrentHolder = belts[i].CurrentHolder
		belts[i] = updated
		if err := s.belts.SaveAll(belts); err != nil {
			return nil, err
		}
		return &belts[i], nil
	}
	return nil, domain.ErrNotFound
}

// Delete removes a belt definition. Belts with any recorded reign are kept
// so the ledger stays resolvable.
func (s *BeltService) Delete(id string) error {
	history, err := s.belts.HistoryFor(id)
	if err != nil {
		return err
	}
	if len(history) > 0 {
		return domain.NewStateError("Cannot delete a belt with reign history.")
	}
	belts, err := s.belts.List()
	if err != nil {
		return err
	}
	for i := range belts {
		if belts[i].ID == id {
			s.clearBackRef(belts[i])
			belts = append(belts[:i], belts[i+1:]...)
			if err := s.belts.SaveAll(belts); err != nil {
				return err
			}
			s.logger.Info().Str("belt", id).Msg("belt deleted")
			return nil
		}
	}
	return domain.ErrNotFound
}

// SetHolder assigns the belt to holder as of date, closing any active reign
// and opening a new one. An empty holder vacates the belt.
func (s *BeltService) SetHolder(id, holder, date string) error {
	belt, err := s.belts.Get(id)
	if err != nil {
		return err
	}
	if holder == belt.CurrentHolder {
		return nil
	}
	if holder != "" {
		if err := s.checkHolderExists(belt.HolderType, holder); err != nil {
			return err
		}
	}

	history, err := s.belts.History()
	if err != nil {
		return err
	}
	for i := range history {
		if history[i].BeltID == id && history[i].Active() {
			history[i].DateLost = date
		}
	}
	if holder != "" {
		history = append(history, domain.Reign{
			ReignID:      uuid.NewString(),
			BeltID:       id,
			ChampionName: holder,
			DateWon:      date,
		})
	}
	if err := s.belts.SaveHistory(history); err != nil {
		return err
	}

	s.clearBackRef(*belt)
	if err := s.belts.SetHolder(id, holder); err != nil {
		return err
	}
	if holder != "" {
		if err := s.setBackRef(belt.HolderType, holder, belt.ChampionTitle); err != nil {
			return err
		}
	}
	s.logger.Info().Str("belt", id).Str("holder", holder).Msg("belt holder changed")
	return nil
}

func (s *BeltService) checkHolderExists(holderType, holder string) error {
	var err error
	switch holderType {
	case domain.HolderSingles:
		_, err = s.wrestlers.Get(holder)
	case domain.HolderTagTeam:
		_, err = s.teams.Get(holder)
	}
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewValidationError("Holder '%s' is not on the roster.", holder)
	}
	return err
}

func (s *BeltService) clearBackRef(belt domain.Belt) {
	if belt.CurrentHolder == "" {
		return
	}
	// Best effort: a missing previous holder is not an error.
	switch belt.HolderType {
	case domain.HolderSingles:
		wrestlers, err := s.wrestlers.List()
		if err != nil {
			return
		}
		for i := range wrestlers {
			if wrestlers[i].Name == belt.CurrentHolder && wrestlers[i].Belt == belt.ChampionTitle {
				wrestlers[i].Belt = ""
				_ = s.wrestlers.SaveAll(wrestlers)
				return
			}
		}
	case domain.HolderTagTeam:
		teams, err := s.teams.List()
		if err != nil {
			return
		}
		for i := range teams {
			if teams[i].Name == belt.CurrentHolder && teams[i].Belt == belt.ChampionTitle {
				teams[i].Belt = ""
				_ = s.teams.SaveAll(teams)
				return
			}
		}
	}
}

func (s *BeltService) setBackRef(holderType, holder, title string) error {
	switch holderType {
	case domain.HolderSingles:
		wrestlers, err := s.wrestlers.List()
		if err != nil {
			return err
		}
		for i := range wrestlers {
			if wrestlers[i].Name == holder {
				wrestlers[i].Belt = title
				return s.wrestlers.SaveAll(wrestlers)
			}
		}
	case domain.HolderTagTeam:
		teams, err := s.teams.List()
		if err != nil {
			return err
		}
		for i := range teams {
			if teams[i].Name == holder {
				teams[i].Belt = title
				return s.teams.SaveAll(teams)
			}
		}
	}
	return nil
}

func validateBelt(belt domain.Belt) error {
	var msgs []string
	if belt.ChampionTitle == "" {
		msgs = append(msgs, "Champion title is required.")
	}
	if belt.HolderType != domain.HolderSingles && belt.HolderType != domain.HolderTagTeam {
		msgs = append(msgs, "Holder type must be Singles or Tag-Team.")
	}
	if belt.Status != domain.StatusActive && belt.Status != domain.StatusInactive {
		msgs = append(msgs, "Status must be Active or Inactive.")
	}
	if len(msgs) > 0 {
		return &domain.ValidationError{Messages: msgs}
	}
	return nil
}
