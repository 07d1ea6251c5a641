package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"ringbook/internal/domain"
	"ringbook/internal/match"
	"ringbook/internal/storage"
)

// FinalizeService commits an event's match outcomes into the permanent
// records: wrestler and team counters, championship reigns, and the
// consolidated event summary. Finalization is one-way.
type FinalizeService struct {
	events    *storage.EventStore
	segments  *storage.SegmentStore
	wrestlers *storage.WrestlerStore
	teams     *storage.TagTeamStore
	belts     *storage.BeltStore
	prefs     *storage.PrefsStore
	logger    zerolog.Logger
}

func NewFinalizeService(
	events *storage.EventStore,
	segments *storage.SegmentStore,
	wrestlers *storage.WrestlerStore,
	teams *storage.TagTeamStore,
	belts *storage.BeltStore,
	prefs *storage.PrefsStore,
	logger zerolog.Logger,
) *FinalizeService {
	return &FinalizeService{
		events:    events,
		segments:  segments,
		wrestlers: wrestlers,
		teams:     teams,
		belts:     belts,
		prefs:     prefs,
		logger:    logger,
	}
}

// Finalize runs the reconciliation pipeline for one event. Outstanding match
// warnings block the run unless acknowledge is set. All mutations are staged
// in memory and committed with one write per collection; the Finalized flag
// is the last durable change.
func (s *FinalizeService) Finalize(slug string, acknowledge bool) error {
	event, err := s.events.GetBySlug(slug)
	if err != nil {
		return err
	}
	if event.Finalized {
		return domain.NewStateError("Event '%s' is already finalized.", event.Name)
	}

	segments, err := s.segments.ListSegments(slug)
	if err != nil {
		return err
	}
	matches, err := s.segments.ListMatches(slug)
	if err != nil {
		return err
	}
	matchByID := make(map[string]domain.Match, len(matches))
	for _, m := range matches {
		matchByID[m.MatchID] = m
	}

	var outstanding []string
	for _, seg := range segments {
		if seg.Type != domain.SegmentMatch || seg.MatchID == "" {
			continue
		}
		if m, ok := matchByID[seg.MatchID]; ok {
			for _, w := range m.Warnings {
				outstanding = append(outstanding, fmt.Sprintf("Segment %d: %s", seg.Position, w))
			}
		}
	}
	if len(outstanding) > 0 && !acknowledge {
		return &domain.WarningsError{Warnings: outstanding}
	}

	st, err := s.loadStaging()
	if err != nil {
		return err
	}

	for _, seg := range segments {
		if seg.Type != domain.SegmentMatch || seg.MatchID == "" {
			continue
		}
		m, ok := matchByID[seg.MatchID]
		if !ok {
			continue
		}
		s.applyRecords(st, m)
		if m.Championship != "" {
			s.applyChampionship(st, m, event.Date)
		}
	}

	summaryPath, err := s.writeSummary(slug, segments, matchByID)
	if err != nil {
		return err
	}

	if err := s.wrestlers.SaveAll(st.wrestlers); err != nil {
		return err
	}
	if err := s.teams.SaveAll(st.teams); err != nil {
		return err
	}
	if err := s.belts.SaveAll(st.belts); err != nil {
		return err
	}
	if err := s.belts.SaveHistory(st.history); err != nil {
		return err
	}

	event.Finalized = true
	event.SummaryFile = summaryPath
	if err := s.saveEvent(*event); err != nil {
		return err
	}
	s.logger.Info().Str("event", event.Name).Msg("event finalized")
	return nil
}

// staging holds full collection snapshots mutated in memory before the
// single commit write per collection.
type staging struct {
	wrestlers []domain.Wrestler
	teams     []domain.TagTeam
	belts     []domain.Belt
	history   []domain.Reign
}

func (s *FinalizeService) loadStaging() (*staging, error) {
	wrestlers, err := s.wrestlers.List()
	if err != nil {
		return nil, err
	}
	teams, err := s.teams.List()
	if err != nil {
		return nil, err
	}
	belts, err := s.belts.List()
	if err != nil {
		return nil, err
	}
	history, err := s.belts.History()
	if err != nil {
		return nil, err
	}
	return &staging{wrestlers: wrestlers, teams: teams, belts: belts, history: history}, nil
}

// applyRecords credits one match's outcomes to the staged counters. Team and
// member tag counters flow exclusively through team_results; singles counters
// apply only to singles-class matches. Battle royals and other multi-way
// formats credit nothing to untracked individuals.
func (s *FinalizeService) applyRecords(st *staging, m domain.Match) {
	class := match.Classify(m.Sides)

	for _, teamName := range match.TeamsInvolved(m.Sides, st.teams) {
		result, ok := m.TeamResults[teamName]
		if !ok {
			continue
		}
		team := st.team(teamName)
		if team == nil {
			continue
		}
		creditTeam(team, result)
		for _, member := range team.Members {
			if w := st.wrestler(member); w != nil {
				creditTag(w, result)
			}
		}
	}

	if class != domain.ClassSingles {
		return
	}
	for _, name := range match.AllWrestlers(m.Sides) {
		result, ok := m.IndividualResults[name]
		if !ok {
			continue
		}
		if w := st.wrestler(name); w != nil {
			creditSingles(w, result)
		}
	}
}

// applyChampionship handles the title side of a match: a successful defense
// increments the active reign's Defenses, a new champion closes the active
// reign and opens a fresh one dated to the event.
func (s *FinalizeService) applyChampionship(st *staging, m domain.Match, eventDate string) {
	belt := st.belt(m.Championship)
	if belt == nil || belt.Status != domain.StatusActive || m.WinningSideIndex < 0 || m.WinningSideIndex >= len(m.Sides) {
		return
	}
	winningSide := m.Sides[m.WinningSideIndex]

	var winner string
	switch belt.HolderType {
	case domain.HolderSingles:
		if len(winningSide) == 1 {
			winner = winningSide[0]
		}
	case domain.HolderTagTeam:
		if teams := match.TeamsInvolved([][]string{winningSide}, st.teams); len(teams) > 0 {
			winner = teams[0]
		}
	}
	if winner == "" {
		return
	}

	if winner == belt.CurrentHolder {
		for i := range st.history {
			r := &st.history[i]
			if r.BeltID == belt.ID && r.ChampionName == belt.CurrentHolder && r.Active() {
				r.Defenses++
				s.logger.Info().Str("belt", belt.ChampionTitle).Str("champion", winner).Msg("title defense recorded")
				return
			}
		}
		return
	}

	for i := range st.history {
		r := &st.history[i]
		if r.BeltID == belt.ID && r.Active() {
			r.DateLost = eventDate
		}
	}
	st.history = append(st.history, domain.Reign{
		ReignID:      uuid.NewString(),
		BeltID:       belt.ID,
		ChampionName: winner,
		DateWon:      eventDate,
	})
	st.reassignBelt(belt, winner)
	belt.CurrentHolder = winner
	s.logger.Info().Str("belt", belt.ChampionTitle).Str("champion", winner).Msg("title change recorded")
}

// writeSummary assembles the consolidated event summary in card order and
// persists it, returning the file path. Matches with hide_summary set are
// skipped entirely.
func (s *FinalizeService) writeSummary(slug string, segments []domain.Segment, matchByID map[string]domain.Match) (string, error) {
	prefs, err := s.prefs.Load()
	if err != nil {
		return "", err
	}

	var parts []string
	for _, seg := range segments {
		if seg.Type == domain.SegmentMatch && seg.MatchID != "" {
			if m, ok := matchByID[seg.MatchID]; ok && m.Visibility.HideSummary {
				continue
			}
		}
		content, err := s.segments.LoadSummary(seg.SummaryFile)
		if err != nil {
			return "", err
		}
		switch {
		case seg.Type == domain.SegmentMatch:
			parts = append(parts, fmt.Sprintf("### %s\n#### %s\n\n%s", seg.Header, seg.ParticipantsDisplay, content))
		case prefs.ShowNonMatchHeaders:
			parts = append(parts, fmt.Sprintf("### %s\n\n%s", seg.Header, content))
		default:
			parts = append(parts, content)
		}
	}

	path := s.segments.EventSummaryPath(slug)
	if err := s.segments.SaveSummary(path, strings.Join(parts, "\n\n---\n\n")); err != nil {
		return "", err
	}
	return path, nil
}

func (s *FinalizeService) saveEvent(event domain.Event) error {
	events, err := s.events.List()
	if err != nil {
		return err
	}
	for i := range events {
		if events[i].Name == event.Name {
			events[i] = event
			return s.events.SaveAll(events)
		}
	}
	return domain.ErrNotFound
}

func (st *staging) wrestler(name string) *domain.Wrestler {
	for i := range st.wrestlers {
		if st.wrestlers[i].Name == name {
			return &st.wrestlers[i]
		}
	}
	return nil
}

func (st *staging) team(name string) *domain.TagTeam {
	for i := range st.teams {
		if st.teams[i].Name == name {
			return &st.teams[i]
		}
	}
	return nil
}

func (st *staging) belt(id string) *domain.Belt {
	for i := range st.belts {
		if st.belts[i].ID == id {
			return &st.belts[i]
		}
	}
	return nil
}

// reassignBelt moves the belt back-reference from the outgoing holder to the
// incoming one, for whichever holder type the belt tracks.
func (st *staging) reassignBelt(belt *domain.Belt, winner string) {
	switch belt.HolderType {
	case domain.HolderSingles:
		if w := st.wrestler(belt.CurrentHolder); w != nil && w.Belt == belt.ChampionTitle {
			w.Belt = ""
		}
		if w := st.wrestler(winner); w != nil {
			w.Belt = belt.ChampionTitle
		}
	case domain.HolderTagTeam:
		if t := st.team(belt.CurrentHolder); t != nil && t.Belt == belt.ChampionTitle {
			t.Belt = ""
		}
		if t := st.team(winner); t != nil {
			t.Belt = belt.ChampionTitle
		}
	}
}

// No Contest credits nothing on any counter.

func creditTeam(t *domain.TagTeam, r domain.Result) {
	switch r {
	case domain.ResultWin:
		t.Wins++
	case domain.ResultLoss:
		t.Losses++
	case domain.ResultDraw:
		t.Draws++
	}
}

func creditTag(w *domain.Wrestler, r domain.Result) {
	switch r {
	case domain.ResultWin:
		w.TagWins++
	case domain.ResultLoss:
		w.TagLosses++
	case domain.ResultDraw:
		w.TagDraws++
	}
}

func creditSingles(w *domain.Wrestler, r domain.Result) {
	switch r {
	case domain.ResultWin:
		w.SinglesWins++
	case domain.ResultLoss:
		w.SinglesLosses++
	case domain.ResultDraw:
		w.SinglesDraws++
	}
}
