package storage

import (
	"path/filepath"

	"github.com/rs/zerolog"

	"ringbook/internal/domain"
)

type eventRecord struct {
	EventName    string `json:"Event_Name"`
	Subtitle     string `json:"Subtitle"`
	Status       string `json:"Status"`
	Date         string `json:"Date"`
	Venue        string `json:"Venue"`
	Location     string `json:"Location"`
	Broadcasters string `json:"Broadcasters"`
	Finalized    bool   `json:"Finalized"`
	SummaryFile  string `json:"event_summary_file"`
}

type EventStore struct {
	path   string
	logger zerolog.Logger
}

func NewEventStore(dataDir string, logger zerolog.Logger) *EventStore {
	return &EventStore{path: filepath.Join(dataDir, "events.json"), logger: logger}
}

func (s *EventStore) List() ([]domain.Event, error) {
	records, err := loadCollection[eventRecord](s.path)
	if err != nil {
		return nil, err
	}
	events := make([]domain.Event, len(records))
	for i, r := range records {
		events[i] = domain.Event{
			Name:         r.EventName,
			Subtitle:     r.Subtitle,
			Status:       r.Status,
			Date:         r.Date,
			Venue:        r.Venue,
			Location:     r.Location,
			Broadcasters: r.Broadcasters,
			Finalized:    r.Finalized,
			SummaryFile:  r.SummaryFile,
		}
	}
	return events, nil
}

func (s *EventStore) Get(name string) (*domain.Event, error) {
	events, err := s.List()
	if err != nil {
		return nil, err
	}
	for i := range events {
		if events[i].Name == name {
			return &events[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// GetBySlug resolves an event by the slugified form of its name.
func (s *EventStore) GetBySlug(slug string) (*domain.Event, error) {
	events, err := s.List()
	if err != nil {
		return nil, err
	}
	for i := range events {
		if Slugify(events[i].Name) == slug {
			return &events[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *EventStore) SaveAll(events []domain.Event) error {
	records := make([]eventRecord, len(events))
	for i, e := range events {
		records[i] = eventRecord{
			EventName:    e.Name,
			Subtitle:     e.Subtitle,
			Status:       e.Status,
			Date:         e.Date,
			Venue:        e.Venue,
			Location:     e.Location,
			Broadcasters: e.Broadcasters,
			Finalized:    e.Finalized,
			SummaryFile:  e.SummaryFile,
		}
	}
	s.logger.Debug().Int("count", len(records)).Msg("saving events")
	return saveCollection(s.path, records)
}

func (s *EventStore) Delete(name string) error {
	events, err := s.List()
	if err != nil {
		return err
	}
	kept := events[:0]
	for _, e := range events {
		if e.Name != name {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(events) {
		return domain.ErrNotFound
	}
	return s.SaveAll(kept)
}
