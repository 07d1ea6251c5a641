package service

import (
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ringbook/internal/domain"
	"ringbook/internal/storage"
)

type finalizeFixture struct {
	events    *storage.EventStore
	segments  *storage.SegmentStore
	wrestlers *storage.WrestlerStore
	teams     *storage.TagTeamStore
	belts     *storage.BeltStore
	prefs     *storage.PrefsStore
	svc       *FinalizeService
}

func newFinalizeFixture(t *testing.T) *finalizeFixture {
	t.Helper()
	dir := t.TempDir()
	log := zerolog.Nop()

	f := &finalizeFixture{
		events:    storage.NewEventStore(dir, log),
		segments:  storage.NewSegmentStore(dir, log),
		wrestlers: storage.NewWrestlerStore(dir, log),
		teams:     storage.NewTagTeamStore(dir, log),
		belts:     storage.NewBeltStore(dir, log),
		prefs:     storage.NewPrefsStore(dir, log),
	}
	f.svc = NewFinalizeService(f.events, f.segments, f.wrestlers, f.teams, f.belts, f.prefs, log)

	require.NoError(t, f.wrestlers.SaveAll([]domain.Wrestler{
		{Name: "Alice", Belt: "World Championship"},
		{Name: "Bob"},
		{Name: "Carol", Team: "The Wrecking Crew"},
		{Name: "Dave", Team: "The Wrecking Crew"},
		{Name: "Eve", Team: "The Night Shift"},
		{Name: "Frank", Team: "The Night Shift"},
	}))
	require.NoError(t, f.teams.SaveAll([]domain.TagTeam{
		{Name: "The Wrecking Crew", Members: []string{"Carol", "Dave"}},
		{Name: "The Night Shift", Members: []string{"Eve", "Frank"}},
	}))
	require.NoError(t, f.belts.SaveAll([]domain.Belt{
		{ID: "world", ChampionTitle: "World Championship", HolderType: domain.HolderSingles, CurrentHolder: "Alice", Status: domain.StatusActive},
	}))
	require.NoError(t, f.belts.SaveHistory([]domain.Reign{
		{ReignID: "r1", BeltID: "world", ChampionName: "Alice", DateWon: "2026-01-10", Defenses: 1},
	}))
	require.NoError(t, f.events.SaveAll([]domain.Event{
		{Name: "Clash Night", Status: domain.EventFuture, Date: "2026-03-01"},
	}))
	return f
}

// card writes one match segment at each position for the given matches.
func (f *finalizeFixture) card(t *testing.T, slug string, matches ...domain.Match) {
	t.Helper()
	segments := make([]domain.Segment, len(matches))
	for i, m := range matches {
		segments[i] = domain.Segment{
			Position: m.SegmentPosition,
			Type:     domain.SegmentMatch,
			Header:   fmt.Sprintf("Match %d", m.SegmentPosition),
			MatchID:  m.MatchID,
		}
	}
	require.NoError(t, f.segments.SaveSegments(slug, segments))
	require.NoError(t, f.segments.SaveMatches(slug, matches))
}

func (f *finalizeFixture) wrestler(t *testing.T, name string) domain.Wrestler {
	t.Helper()
	w, err := f.wrestlers.Get(name)
	require.NoError(t, err)
	return *w
}

func (f *finalizeFixture) team(t *testing.T, name string) domain.TagTeam {
	t.Helper()
	tm, err := f.teams.Get(name)
	require.NoError(t, err)
	return *tm
}

func TestFinalizeTagMatchCounters(t *testing.T) {
	f := newFinalizeFixture(t)
	f.card(t, "clash-night", domain.Match{
		MatchID:         "m1",
		SegmentPosition: 1,
		Sides:           [][]string{{"Carol", "Dave"}, {"Eve", "Frank"}},
		TeamResults: map[string]domain.Result{
			"The Wrecking Crew": domain.ResultWin,
			"The Night Shift":   domain.ResultLoss,
		},
		IndividualResults: map[string]domain.Result{
			"Carol": domain.ResultWin, "Dave": domain.ResultWin,
			"Eve": domain.ResultLoss, "Frank": domain.ResultLoss,
		},
		WinningSideIndex: 0,
	})

	require.NoError(t, f.svc.Finalize("clash-night", false))

	crew := f.team(t, "The Wrecking Crew")
	assert.Equal(t, 1, crew.Wins)
	assert.Equal(t, 0, crew.Losses)
	shift := f.team(t, "The Night Shift")
	assert.Equal(t, 1, shift.Losses)

	carol := f.wrestler(t, "Carol")
	assert.Equal(t, 1, carol.TagWins)
	assert.Equal(t, 0, carol.SinglesWins)
	frank := f.wrestler(t, "Frank")
	assert.Equal(t, 1, frank.TagLosses)
	assert.Equal(t, 0, frank.SinglesLosses)
}

func TestFinalizeSinglesCounters(t *testing.T) {
	f := newFinalizeFixture(t)
	f.card(t, "clash-night", domain.Match{
		MatchID:         "m1",
		SegmentPosition: 1,
		Sides:           [][]string{{"Alice"}, {"Bob"}},
		IndividualResults: map[string]domain.Result{
			"Alice": domain.ResultWin,
			"Bob":   domain.ResultLoss,
		},
		WinningSideIndex: 0,
	})

	require.NoError(t, f.svc.Finalize("clash-night", false))

	alice := f.wrestler(t, "Alice")
	assert.Equal(t, 1, alice.SinglesWins)
	assert.Equal(t, 0, alice.TagWins)
	bob := f.wrestler(t, "Bob")
	assert.Equal(t, 1, bob.SinglesLosses)
}

func TestFinalizeNoContestCreditsNothing(t *testing.T) {
	f := newFinalizeFixture(t)
	f.card(t, "clash-night", domain.Match{
		MatchID:         "m1",
		SegmentPosition: 1,
		Sides:           [][]string{{"Alice"}, {"Bob"}},
		IndividualResults: map[string]domain.Result{
			"Alice": domain.ResultNoContest,
			"Bob":   domain.ResultNoContest,
		},
		WinningSideIndex: -1,
	})

	require.NoError(t, f.svc.Finalize("clash-night", false))

	alice := f.wrestler(t, "Alice")
	assert.False(t, alice.HasRecord())
	bob := f.wrestler(t, "Bob")
	assert.False(t, bob.HasRecord())
}

func TestFinalizeBattleRoyalCreditsNothing(t *testing.T) {
	f := newFinalizeFixture(t)

	sides := make([][]string, 0, 10)
	results := make(map[string]domain.Result)
	for _, name := range []string{"Alice", "Bob", "Carol", "Dave", "Eve", "Frank"} {
		sides = append(sides, []string{name})
		results[name] = domain.ResultLoss
	}
	for i := 0; i < 4; i++ {
		name := fmt.Sprintf("Entrant %d", i+1)
		sides = append(sides, []string{name})
		results[name] = domain.ResultLoss
	}
	results["Alice"] = domain.ResultWin

	f.card(t, "clash-night", domain.Match{
		MatchID:           "m1",
		SegmentPosition:   1,
		Sides:             sides,
		IndividualResults: results,
		WinningSideIndex:  0,
	})

	require.NoError(t, f.svc.Finalize("clash-night", false))

	for _, name := range []string{"Alice", "Bob", "Carol"} {
		w := f.wrestler(t, name)
		assert.False(t, w.HasRecord(), name)
	}
}

func TestFinalizeTitleDefense(t *testing.T) {
	f := newFinalizeFixture(t)
	f.card(t, "clash-night", domain.Match{
		MatchID:         "m1",
		SegmentPosition: 1,
		Sides:           [][]string{{"Alice"}, {"Bob"}},
		IndividualResults: map[string]domain.Result{
			"Alice": domain.ResultWin,
			"Bob":   domain.ResultLoss,
		},
		WinningSideIndex: 0,
		Championship:     "world",
	})

	require.NoError(t, f.svc.Finalize("clash-night", false))

	belt, err := f.belts.Get("world")
	require.NoError(t, err)
	assert.Equal(t, "Alice", belt.CurrentHolder)

	reigns, err := f.belts.HistoryFor("world")
	require.NoError(t, err)
	require.Len(t, reigns, 1)
	assert.Equal(t, 2, reigns[0].Defenses)
	assert.True(t, reigns[0].Active())
}

func TestFinalizeTitleChange(t *testing.T) {
	f := newFinalizeFixture(t)
	f.card(t, "clash-night", domain.Match{
		MatchID:         "m1",
		SegmentPosition: 1,
		Sides:           [][]string{{"Alice"}, {"Bob"}},
		IndividualResults: map[string]domain.Result{
			"Alice": domain.ResultLoss,
			"Bob":   domain.ResultWin,
		},
		WinningSideIndex: 1,
		Championship:     "world",
	})

	require.NoError(t, f.svc.Finalize("clash-night", false))

	belt, err := f.belts.Get("world")
	require.NoError(t, err)
	assert.Equal(t, "Bob", belt.CurrentHolder)

	reigns, err := f.belts.HistoryFor("world")
	require.NoError(t, err)
	require.Len(t, reigns, 2)
	assert.Equal(t, "Alice", reigns[0].ChampionName)
	assert.Equal(t, "2026-03-01", reigns[0].DateLost)
	assert.Equal(t, "Bob", reigns[1].ChampionName)
	assert.Equal(t, "2026-03-01", reigns[1].DateWon)
	assert.True(t, reigns[1].Active())
	assert.NotEmpty(t, reigns[1].ReignID)

	alice := f.wrestler(t, "Alice")
	assert.Empty(t, alice.Belt)
	bob := f.wrestler(t, "Bob")
	assert.Equal(t, "World Championship", bob.Belt)
}

func TestFinalizeWarningsGate(t *testing.T) {
	f := newFinalizeFixture(t)
	f.card(t, "clash-night", domain.Match{
		MatchID:         "m1",
		SegmentPosition: 1,
		Sides:           [][]string{{"Alice"}, {"Bob"}},
		IndividualResults: map[string]domain.Result{
			"Alice": domain.ResultWin,
			"Bob":   domain.ResultLoss,
		},
		WinningSideIndex: 0,
		Warnings:         []string{"No overall match result reported."},
	})

	err := f.svc.Finalize("clash-night", false)
	var warnErr *domain.WarningsError
	require.ErrorAs(t, err, &warnErr)
	require.Len(t, warnErr.Warnings, 1)
	assert.Equal(t, "Segment 1: No overall match result reported.", warnErr.Warnings[0])

	event, err := f.events.Get("Clash Night")
	require.NoError(t, err)
	assert.False(t, event.Finalized)

	require.NoError(t, f.svc.Finalize("clash-night", true))
	event, err = f.events.Get("Clash Night")
	require.NoError(t, err)
	assert.True(t, event.Finalized)
}

func TestFinalizeIsOneWay(t *testing.T) {
	f := newFinalizeFixture(t)
	f.card(t, "clash-night", domain.Match{
		MatchID:         "m1",
		SegmentPosition: 1,
		Sides:           [][]string{{"Alice"}, {"Bob"}},
		IndividualResults: map[string]domain.Result{
			"Alice": domain.ResultWin,
			"Bob":   domain.ResultLoss,
		},
		WinningSideIndex: 0,
	})

	require.NoError(t, f.svc.Finalize("clash-night", false))

	err := f.svc.Finalize("clash-night", false)
	var stateErr *domain.StateError
	require.ErrorAs(t, err, &stateErr)

	// Counters were not credited a second time.
	alice := f.wrestler(t, "Alice")
	assert.Equal(t, 1, alice.SinglesWins)
}

func TestFinalizeWritesSummary(t *testing.T) {
	f := newFinalizeFixture(t)

	matchSummary := f.segments.SummaryPath("clash-night", domain.SegmentMatch, "Opening Contest", 1)
	require.NoError(t, f.segments.SaveSummary(matchSummary, "Alice controlled the pace throughout."))
	promoSummary := f.segments.SummaryPath("clash-night", domain.SegmentPromo, "Contract Signing", 2)
	require.NoError(t, f.segments.SaveSummary(promoSummary, "Bob tore up the contract."))

	require.NoError(t, f.segments.SaveSegments("clash-night", []domain.Segment{
		{
			Position:            1,
			Type:                domain.SegmentMatch,
			Header:              "Opening Contest",
			SummaryFile:         matchSummary,
			MatchID:             "m1",
			ParticipantsDisplay: "Alice vs Bob",
		},
		{
			Position:    2,
			Type:        domain.SegmentPromo,
			Header:      "Contract Signing",
			SummaryFile: promoSummary,
		},
	}))
	require.NoError(t, f.segments.SaveMatches("clash-night", []domain.Match{{
		MatchID:         "m1",
		SegmentPosition: 1,
		Sides:           [][]string{{"Alice"}, {"Bob"}},
		IndividualResults: map[string]domain.Result{
			"Alice": domain.ResultWin,
			"Bob":   domain.ResultLoss,
		},
		WinningSideIndex: 0,
	}}))

	require.NoError(t, f.svc.Finalize("clash-night", false))

	event, err := f.events.Get("Clash Night")
	require.NoError(t, err)
	require.NotEmpty(t, event.SummaryFile)

	content, err := f.segments.LoadSummary(event.SummaryFile)
	require.NoError(t, err)
	want := "### Opening Contest\n#### Alice vs Bob\n\nAlice controlled the pace throughout." +
		"\n\n---\n\n" +
		"### Contract Signing\n\nBob tore up the contract."
	assert.Equal(t, want, content)
}

func TestFinalizeSkipsHiddenMatchSummary(t *testing.T) {
	f := newFinalizeFixture(t)

	hidden := f.segments.SummaryPath("clash-night", domain.SegmentMatch, "Dark Match", 1)
	require.NoError(t, f.segments.SaveSummary(hidden, "Not for broadcast."))
	shown := f.segments.SummaryPath("clash-night", domain.SegmentMatch, "Main Event", 2)
	require.NoError(t, f.segments.SaveSummary(shown, "A classic."))

	require.NoError(t, f.segments.SaveSegments("clash-night", []domain.Segment{
		{Position: 1, Type: domain.SegmentMatch, Header: "Dark Match", SummaryFile: hidden, MatchID: "m1", ParticipantsDisplay: "Carol vs Dave"},
		{Position: 2, Type: domain.SegmentMatch, Header: "Main Event", SummaryFile: shown, MatchID: "m2", ParticipantsDisplay: "Alice vs Bob"},
	}))
	require.NoError(t, f.segments.SaveMatches("clash-night", []domain.Match{
		{
			MatchID: "m1", SegmentPosition: 1,
			Sides:            [][]string{{"Carol"}, {"Dave"}},
			WinningSideIndex: -1,
			Visibility:       domain.MatchVisibility{HideSummary: true},
		},
		{
			MatchID: "m2", SegmentPosition: 2,
			Sides:            [][]string{{"Alice"}, {"Bob"}},
			WinningSideIndex: -1,
		},
	}))

	require.NoError(t, f.svc.Finalize("clash-night", false))

	event, err := f.events.Get("Clash Night")
	require.NoError(t, err)
	content, err := f.segments.LoadSummary(event.SummaryFile)
	require.NoError(t, err)
	assert.NotContains(t, content, "Not for broadcast.")
	assert.Contains(t, content, "### Main Event")
}
