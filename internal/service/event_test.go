package service

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ringbook/internal/domain"
	"ringbook/internal/storage"
)

func newEventService(t *testing.T) (*EventService, *storage.EventStore, *storage.SegmentStore) {
	t.Helper()
	dir := t.TempDir()
	log := zerolog.Nop()
	events := storage.NewEventStore(dir, log)
	segments := storage.NewSegmentStore(dir, log)
	return NewEventService(events, segments, log), events, segments
}

func TestEventCreateValidation(t *testing.T) {
	svc, _, _ := newEventService(t)

	cases := []struct {
		name  string
		event domain.Event
	}{
		{"missing name", domain.Event{Status: domain.EventFuture, Date: "2026-03-01"}},
		{"missing date", domain.Event{Name: "Clash Night", Status: domain.EventFuture}},
		{"bad status", domain.Event{Name: "Clash Night", Status: "Someday", Date: "2026-03-01"}},
		{"bad date", domain.Event{Name: "Clash Night", Status: domain.EventFuture, Date: "March 1st"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var invalid *domain.ValidationError
			assert.ErrorAs(t, svc.Create(tc.event), &invalid)
		})
	}
}

func TestEventCreateStripsFinalizationState(t *testing.T) {
	svc, _, _ := newEventService(t)

	require.NoError(t, svc.Create(domain.Event{
		Name:        "Clash Night",
		Status:      domain.EventFuture,
		Date:        "2026-03-01",
		Finalized:   true,
		SummaryFile: "somewhere.md",
	}))

	got, err := svc.Get("Clash Night")
	require.NoError(t, err)
	assert.False(t, got.Finalized)
	assert.Empty(t, got.SummaryFile)

	var conflict *domain.ConflictError
	assert.ErrorAs(t, svc.Create(domain.Event{
		Name: "Clash Night", Status: domain.EventFuture, Date: "2026-04-01",
	}), &conflict)
}

func TestEventFinalizedIsImmutable(t *testing.T) {
	svc, events, _ := newEventService(t)
	require.NoError(t, events.SaveAll([]domain.Event{
		{Name: "Clash Night", Status: domain.EventPast, Date: "2026-03-01", Finalized: true},
	}))

	var stateErr *domain.StateError
	assert.ErrorAs(t, svc.Update("Clash Night", domain.Event{
		Name: "Clash Night", Status: domain.EventPast, Date: "2026-03-02",
	}), &stateErr)
	assert.ErrorAs(t, svc.Delete("Clash Night"), &stateErr)
}

func TestEventDeleteCascadesSegments(t *testing.T) {
	svc, _, segments := newEventService(t)
	require.NoError(t, svc.Create(domain.Event{
		Name: "Clash Night", Status: domain.EventFuture, Date: "2026-03-01",
	}))
	summary := segments.SummaryPath("clash-night", domain.SegmentPromo, "Opening", 1)
	require.NoError(t, segments.SaveSummary(summary, "Opening promo."))
	require.NoError(t, segments.SaveSegments("clash-night", []domain.Segment{
		{Position: 1, Type: domain.SegmentPromo, Header: "Opening", SummaryFile: summary},
	}))

	require.NoError(t, svc.Delete("Clash Night"))

	_, err := svc.Get("Clash Night")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	left, err := segments.ListSegments("clash-night")
	require.NoError(t, err)
	assert.Empty(t, left)
	content, err := segments.LoadSummary(summary)
	require.NoError(t, err)
	assert.Empty(t, content)
}

func TestEventListNewestFirst(t *testing.T) {
	svc, events, _ := newEventService(t)
	require.NoError(t, events.SaveAll([]domain.Event{
		{Name: "Spring Showdown", Status: domain.EventPast, Date: "2026-03-01"},
		{Name: "Summer Spectacle", Status: domain.EventFuture, Date: "2026-07-04"},
		{Name: "Winter Warfare", Status: domain.EventPast, Date: "2026-01-15"},
	}))

	all, err := svc.List("")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Summer Spectacle", all[0].Name)
	assert.Equal(t, "Winter Warfare", all[2].Name)

	past, err := svc.List(domain.EventPast)
	require.NoError(t, err)
	assert.Len(t, past, 2)
}

func TestEventUpdateKeepsStoredFinalizationFields(t *testing.T) {
	svc, _, _ := newEventService(t)
	require.NoError(t, svc.Create(domain.Event{
		Name: "Clash Night", Status: domain.EventFuture, Date: "2026-03-01",
	}))

	require.NoError(t, svc.Update("Clash Night", domain.Event{
		Name:   "Clash Night II",
		Status: domain.EventFuture,
		Date:   "2026-03-08",
		Venue:  "Hammerstein Ballroom",
	}))

	got, err := svc.Get("Clash Night II")
	require.NoError(t, err)
	assert.Equal(t, "Hammerstein Ballroom", got.Venue)
	assert.False(t, got.Finalized)
}
