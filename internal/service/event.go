package service

import (
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"ringbook/internal/domain"
	"ringbook/internal/storage"
)

type EventService struct {
	events   *storage.EventStore
	segments *storage.SegmentStore
	logger   zerolog.Logger
}

func NewEventService(events *storage.EventStore, segments *storage.SegmentStore, logger zerolog.Logger) *EventService {
	return &EventService{events: events, segments: segments, logger: logger}
}

func (s *EventService) List(status string) ([]domain.Event, error) {
	events, err := s.events.List()
	if err != nil {
		return nil, err
	}
	if status != "" && status != "All" {
		filtered := events[:0]
		for _, e := range events {
			if e.Status == status {
				filtered = append(filtered, e)
			}
		}
		events = filtered
	}
	sort.Slice(events, func(i, j int) bool { return events[i].Date > events[j].Date })
	return events, nil
}

func (s *EventService) Get(name string) (*domain.Event, error) {
	return s.events.Get(name)
}

func (s *EventService) GetBySlug(slug string) (*domain.Event, error) {
	return s.events.GetBySlug(slug)
}

func (s *EventService) Create(event domain.Event) error {
	if err := validateEvent(&event); err != nil {
		return err
	}
	events, err := s.events.List()
	if err != nil {
		return err
	}
	for _, existing := range events {
		if existing.Name == event.Name {
			return domain.NewConflictError("Event with name %q already exists.", event.Name)
		}
	}
	event.Finalized = false
	event.SummaryFile = ""
	s.logger.Info().Str("event", event.Name).Str("date", event.Date).Msg("creating event")
	return s.events.SaveAll(append(events, event))
}

// Update replaces an event's metadata. Finalized events are immutable; the
// Finalized flag and summary location always come from the stored record.
func (s *EventService) Update(originalName string, updated domain.Event) error {
	if err := validateEvent(&updated); err != nil {
		return err
	}
	events, err := s.events.List()
	if err != nil {
		return err
	}
	index := -1
	for i, e := range events {
		if e.Name == originalName {
			index = i
		} else if e.Name == updated.Name {
			return domain.NewConflictError("Event with name %q already exists.", updated.Name)
		}
	}
	if index == -1 {
		return domain.ErrNotFound
	}
	if events[index].Finalized {
		return domain.NewStateError("Cannot edit an event that has been finalized.")
	}
	updated.Finalized = events[index].Finalized
	updated.SummaryFile = events[index].SummaryFile
	events[index] = updated
	s.logger.Info().Str("event", updated.Name).Msg("updating event")
	return s.events.SaveAll(events)
}

// Delete removes an event and cascades to its segments, matches and summary
// files. Finalized events cannot be deleted.
func (s *EventService) Delete(name string) error {
	event, err := s.events.Get(name)
	if err != nil {
		return err
	}
	if event.Finalized {
		return domain.NewStateError("Cannot delete an event that has been finalized.")
	}
	if err := s.events.Delete(name); err != nil {
		return err
	}
	s.logger.Info().Str("event", name).Msg("deleting event and its segments")
	return s.segments.DeleteEventFiles(storage.Slugify(name))
}

func validateEvent(event *domain.Event) error {
	event.Name = strings.TrimSpace(event.Name)
	if event.Name == "" || event.Status == "" || event.Date == "" {
		return domain.NewValidationError("Event Name, Status, and Date are required.")
	}
	switch event.Status {
	case domain.EventFuture, domain.EventPast, domain.EventCancelled:
	default:
		return domain.NewValidationError("Invalid event status: %s.", event.Status)
	}
	if _, err := time.Parse("2006-01-02", event.Date); err != nil {
		return domain.NewValidationError("Invalid date format. Please use YYYY-MM-DD.")
	}
	return nil
}
