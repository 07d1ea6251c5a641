package storage

import (
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog"

	"ringbook/internal/domain"
)

// wrestlerRecord is the on-disk shape of a wrestler. List fields are
// pipe-joined and counters are strings, matching the legacy files.
type wrestlerRecord struct {
	Name              string `json:"Name"`
	Status            string `json:"Status"`
	Division          string `json:"Division"`
	Nickname          string `json:"Nickname"`
	Location          string `json:"Location"`
	Height            string `json:"Height"`
	Weight            string `json:"Weight"`
	DOB               string `json:"DOB"`
	Alignment         string `json:"Alignment"`
	Music             string `json:"Music"`
	Faction           string `json:"Faction"`
	Manager           string `json:"Manager"`
	RealName          string `json:"Real_Name"`
	StartDate         string `json:"Start_Date"`
	Moves             string `json:"Moves"`
	Awards            string `json:"Awards"`
	Salary            string `json:"Salary"`
	WrestlingStyles   string `json:"Wrestling_Styles"`
	Team              string `json:"Team"`
	Belt              string `json:"Belt"`
	SinglesWins       string `json:"Singles_Wins"`
	SinglesLosses     string `json:"Singles_Losses"`
	SinglesDraws      string `json:"Singles_Draws"`
	TagWins           string `json:"Tag_Wins"`
	TagLosses         string `json:"Tag_Losses"`
	TagDraws          string `json:"Tag_Draws"`
	HideFromFanRoster bool   `json:"Hide_From_Fan_Roster"`
}

type WrestlerStore struct {
	path   string
	logger zerolog.Logger
}

func NewWrestlerStore(dataDir string, logger zerolog.Logger) *WrestlerStore {
	return &WrestlerStore{path: filepath.Join(dataDir, "wrestlers.json"), logger: logger}
}

func (s *WrestlerStore) List() ([]domain.Wrestler, error) {
	records, err := loadCollection[wrestlerRecord](s.path)
	if err != nil {
		return nil, err
	}
	wrestlers := make([]domain.Wrestler, len(records))
	for i, r := range records {
		wrestlers[i] = r.toDomain()
	}
	return wrestlers, nil
}

func (s *WrestlerStore) Get(name string) (*domain.Wrestler, error) {
	wrestlers, err := s.List()
	if err != nil {
		return nil, err
	}
	for i := range wrestlers {
		if wrestlers[i].Name == name {
			return &wrestlers[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// SaveAll replaces the whole collection in one write.
func (s *WrestlerStore) SaveAll(wrestlers []domain.Wrestler) error {
	records := make([]wrestlerRecord, len(wrestlers))
	for i, w := range wrestlers {
		records[i] = toWrestlerRecord(w)
	}
	s.logger.Debug().Int("count", len(records)).Str("path", s.path).Msg("saving wrestlers")
	return saveCollection(s.path, records)
}

func (s *WrestlerStore) Delete(name string) error {
	wrestlers, err := s.List()
	if err != nil {
		return err
	}
	kept := wrestlers[:0]
	for _, w := range wrestlers {
		if w.Name != name {
			kept = append(kept, w)
		}
	}
	if len(kept) == len(wrestlers) {
		return domain.ErrNotFound
	}
	return s.SaveAll(kept)
}

func (r wrestlerRecord) toDomain() domain.Wrestler {
	return domain.Wrestler{
		Name:              r.Name,
		Status:            r.Status,
		Division:          r.Division,
		Nickname:          r.Nickname,
		Location:          r.Location,
		Height:            r.Height,
		Weight:            r.Weight,
		DOB:               r.DOB,
		Alignment:         r.Alignment,
		Music:             r.Music,
		Faction:           r.Faction,
		Manager:           r.Manager,
		RealName:          r.RealName,
		StartDate:         r.StartDate,
		Moves:             splitPipe(r.Moves),
		Awards:            splitPipe(r.Awards),
		Salary:            splitPipe(r.Salary),
		WrestlingStyles:   splitPipe(r.WrestlingStyles),
		Team:              r.Team,
		Belt:              r.Belt,
		SinglesWins:       atoiLoose(r.SinglesWins),
		SinglesLosses:     atoiLoose(r.SinglesLosses),
		SinglesDraws:      atoiLoose(r.SinglesDraws),
		TagWins:           atoiLoose(r.TagWins),
		TagLosses:         atoiLoose(r.TagLosses),
		TagDraws:          atoiLoose(r.TagDraws),
		HideFromFanRoster: r.HideFromFanRoster,
	}
}

func toWrestlerRecord(w domain.Wrestler) wrestlerRecord {
	return wrestlerRecord{
		Name:              w.Name,
		Status:            w.Status,
		Division:          w.Division,
		Nickname:          w.Nickname,
		Location:          w.Location,
		Height:            w.Height,
		Weight:            w.Weight,
		DOB:               w.DOB,
		Alignment:         w.Alignment,
		Music:             w.Music,
		Faction:           w.Faction,
		Manager:           w.Manager,
		RealName:          w.RealName,
		StartDate:         w.StartDate,
		Moves:             joinPipe(w.Moves),
		Awards:            joinPipe(w.Awards),
		Salary:            joinPipe(w.Salary),
		WrestlingStyles:   joinPipe(w.WrestlingStyles),
		Team:              w.Team,
		Belt:              w.Belt,
		SinglesWins:       strconv.Itoa(w.SinglesWins),
		SinglesLosses:     strconv.Itoa(w.SinglesLosses),
		SinglesDraws:      strconv.Itoa(w.SinglesDraws),
		TagWins:           strconv.Itoa(w.TagWins),
		TagLosses:         strconv.Itoa(w.TagLosses),
		TagDraws:          strconv.Itoa(w.TagDraws),
		HideFromFanRoster: w.HideFromFanRoster,
	}
}
