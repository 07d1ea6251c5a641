package storage

import (
	"path/filepath"

	"github.com/rs/zerolog"

	"ringbook/internal/domain"
)

type beltRecord struct {
	ID            string `json:"ID"`
	ChampionTitle string `json:"Champion_Title"`
	HolderType    string `json:"Holder_Type"`
	CurrentHolder string `json:"Current_Holder"`
	Status        string `json:"Status"`
}

type reignRecord struct {
	ReignID      string `json:"Reign_ID"`
	BeltID       string `json:"Belt_ID"`
	ChampionName string `json:"Champion_Name"`
	DateWon      string `json:"Date_Won"`
	DateLost     string `json:"Date_Lost"`
	Defenses     int    `json:"Defenses"`
}

// BeltStore persists championship definitions and the append-only reign
// ledger, one file each.
type BeltStore struct {
	beltsPath   string
	historyPath string
	logger      zerolog.Logger
}

func NewBeltStore(dataDir string, logger zerolog.Logger) *BeltStore {
	return &BeltStore{
		beltsPath:   filepath.Join(dataDir, "belts.json"),
		historyPath: filepath.Join(dataDir, "belt_history.json"),
		logger:      logger,
	}
}

func (s *BeltStore) List() ([]domain.Belt, error) {
	records, err := loadCollection[beltRecord](s.beltsPath)
	if err != nil {
		return nil, err
	}
	belts := make([]domain.Belt, len(records))
	for i, r := range records {
		belts[i] = domain.Belt(r)
	}
	return belts, nil
}

func (s *BeltStore) Get(id string) (*domain.Belt, error) {
	belts, err := s.List()
	if err != nil {
		return nil, err
	}
	for i := range belts {
		if belts[i].ID == id {
			return &belts[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *BeltStore) SaveAll(belts []domain.Belt) error {
	records := make([]beltRecord, len(belts))
	for i, b := range belts {
		records[i] = beltRecord(b)
	}
	s.logger.Debug().Int("count", len(records)).Msg("saving belts")
	return saveCollection(s.beltsPath, records)
}

// SetHolder updates one belt's current holder in place.
func (s *BeltStore) SetHolder(id, holder string) error {
	belts, err := s.List()
	if err != nil {
		return err
	}
	for i := range belts {
		if belts[i].ID == id {
			belts[i].CurrentHolder = holder
			return s.SaveAll(belts)
		}
	}
	return domain.ErrNotFound
}

// History returns the full reign ledger across all belts.
func (s *BeltStore) History() ([]domain.Reign, error) {
	records, err := loadCollection[reignRecord](s.historyPath)
	if err != nil {
		return nil, err
	}
	reigns := make([]domain.Reign, len(records))
	for i, r := range records {
		reigns[i] = domain.Reign(r)
	}
	return reigns, nil
}

// HistoryFor returns the ledger entries for one belt in stored order.
func (s *BeltStore) HistoryFor(beltID string) ([]domain.Reign, error) {
	all, err := s.History()
	if err != nil {
		return nil, err
	}
	var reigns []domain.Reign
	for _, r := range all {
		if r.BeltID == beltID {
			reigns = append(reigns, r)
		}
	}
	return reigns, nil
}

func (s *BeltStore) SaveHistory(reigns []domain.Reign) error {
	records := make([]reignRecord, len(reigns))
	for i, r := range reigns {
		records[i] = reignRecord(r)
	}
	s.logger.Debug().Int("count", len(records)).Msg("saving belt history")
	return saveCollection(s.historyPath, records)
}
