package storage

import (
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog"

	"ringbook/internal/domain"
)

type tagTeamRecord struct {
	Name              string `json:"Name"`
	Members           string `json:"Members"`
	Status            string `json:"Status"`
	Division          string `json:"Division"`
	Location          string `json:"Location"`
	Weight            string `json:"Weight"`
	Alignment         string `json:"Alignment"`
	Music             string `json:"Music"`
	Faction           string `json:"Faction"`
	Manager           string `json:"Manager"`
	Moves             string `json:"Moves"`
	Awards            string `json:"Awards"`
	Belt              string `json:"Belt"`
	Wins              string `json:"Wins"`
	Losses            string `json:"Losses"`
	Draws             string `json:"Draws"`
	HideFromFanRoster bool   `json:"Hide_From_Fan_Roster"`
}

type TagTeamStore struct {
	path   string
	logger zerolog.Logger
}

func NewTagTeamStore(dataDir string, logger zerolog.Logger) *TagTeamStore {
	return &TagTeamStore{path: filepath.Join(dataDir, "tagteams.json"), logger: logger}
}

func (s *TagTeamStore) List() ([]domain.TagTeam, error) {
	records, err := loadCollection[tagTeamRecord](s.path)
	if err != nil {
		return nil, err
	}
	teams := make([]domain.TagTeam, len(records))
	for i, r := range records {
		teams[i] = r.toDomain()
	}
	return teams, nil
}

func (s *TagTeamStore) Get(name string) (*domain.TagTeam, error) {
	teams, err := s.List()
	if err != nil {
		return nil, err
	}
	for i := range teams {
		if teams[i].Name == name {
			return &teams[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *TagTeamStore) SaveAll(teams []domain.TagTeam) error {
	records := make([]tagTeamRecord, len(teams))
	for i, t := range teams {
		records[i] = toTagTeamRecord(t)
	}
	s.logger.Debug().Int("count", len(records)).Str("path", s.path).Msg("saving tag teams")
	return saveCollection(s.path, records)
}

func (s *TagTeamStore) Delete(name string) error {
	teams, err := s.List()
	if err != nil {
		return err
	}
	kept := teams[:0]
	for _, t := range teams {
		if t.Name != name {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(teams) {
		return domain.ErrNotFound
	}
	return s.SaveAll(kept)
}

func (r tagTeamRecord) toDomain() domain.TagTeam {
	return domain.TagTeam{
		Name:              r.Name,
		Members:           splitPipe(r.Members),
		Status:            r.Status,
		Division:          r.Division,
		Location:          r.Location,
		Weight:            r.Weight,
		Alignment:         r.Alignment,
		Music:             r.Music,
		Faction:           r.Faction,
		Manager:           r.Manager,
		Moves:             splitPipe(r.Moves),
		Awards:            splitPipe(r.Awards),
		Belt:              r.Belt,
		Wins:              atoiLoose(r.Wins),
		Losses:            atoiLoose(r.Losses),
		Draws:             atoiLoose(r.Draws),
		HideFromFanRoster: r.HideFromFanRoster,
	}
}

func toTagTeamRecord(t domain.TagTeam) tagTeamRecord {
	return tagTeamRecord{
		Name:              t.Name,
		Members:           joinPipe(t.Members),
		Status:            t.Status,
		Division:          t.Division,
		Location:          t.Location,
		Weight:            t.Weight,
		Alignment:         t.Alignment,
		Music:             t.Music,
		Faction:           t.Faction,
		Manager:           t.Manager,
		Moves:             joinPipe(t.Moves),
		Awards:            joinPipe(t.Awards),
		Belt:              t.Belt,
		Wins:              strconv.Itoa(t.Wins),
		Losses:            strconv.Itoa(t.Losses),
		Draws:             strconv.Itoa(t.Draws),
		HideFromFanRoster: t.HideFromFanRoster,
	}
}
