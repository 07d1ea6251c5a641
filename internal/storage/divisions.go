package storage

import (
	"path/filepath"

	"github.com/rs/zerolog"

	"ringbook/internal/domain"
)

type divisionRecord struct {
	ID   string `json:"ID"`
	Name string `json:"Name"`
}

type DivisionStore struct {
	path   string
	logger zerolog.Logger
}

func NewDivisionStore(dataDir string, logger zerolog.Logger) *DivisionStore {
	return &DivisionStore{path: filepath.Join(dataDir, "divisions.json"), logger: logger}
}

func (s *DivisionStore) List() ([]domain.Division, error) {
	records, err := loadCollection[divisionRecord](s.path)
	if err != nil {
		return nil, err
	}
	divisions := make([]domain.Division, len(records))
	for i, r := range records {
		divisions[i] = domain.Division(r)
	}
	return divisions, nil
}

// NameByID resolves a division display name, returning the ID itself when no
// division matches so stale references stay visible.
func (s *DivisionStore) NameByID(id string) (string, error) {
	if id == "" {
		return "", nil
	}
	divisions, err := s.List()
	if err != nil {
		return "", err
	}
	for _, d := range divisions {
		if d.ID == id {
			return d.Name, nil
		}
	}
	return id, nil
}

func (s *DivisionStore) SaveAll(divisions []domain.Division) error {
	records := make([]divisionRecord, len(divisions))
	for i, d := range divisions {
		records[i] = divisionRecord(d)
	}
	return saveCollection(s.path, records)
}
