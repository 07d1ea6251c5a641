package service

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"

	"ringbook/internal/domain"
	"ringbook/internal/match"
	"ringbook/internal/storage"
)

// SegmentInput is the raw booker input for a segment save. MatchInput is nil
// for non-match segments.
type SegmentInput struct {
	Position int
	Type     string
	Header   string
	Summary  string
	Match    *MatchInput
}

// MatchInput carries the user-supplied match fields. Absent optionals take
// their defined defaults here, before preparation, so the preparer stays a
// pure function of complete records.
type MatchInput struct {
	Sides                  [][]string
	WinningSideIndex       int
	IndividualResults      map[string]domain.Result
	TeamResults            map[string]domain.Result
	SyncTeamsToIndividuals *bool // nil defaults to true
	MatchResult            string
	WinnerMethod           string
	MatchResultDisplay     string
	MatchTime              string
	Championship           string
	Visibility             domain.MatchVisibility
}

type SegmentService struct {
	events    *storage.EventStore
	segments  *storage.SegmentStore
	wrestlers *storage.WrestlerStore
	teams     *storage.TagTeamStore
	belts     *storage.BeltStore
	logger    zerolog.Logger
}

func NewSegmentService(
	events *storage.EventStore,
	segments *storage.SegmentStore,
	wrestlers *storage.WrestlerStore,
	teams *storage.TagTeamStore,
	belts *storage.BeltStore,
	logger zerolog.Logger,
) *SegmentService {
	return &SegmentService{
		events:    events,
		segments:  segments,
		wrestlers: wrestlers,
		teams:     teams,
		belts:     belts,
		logger:    logger,
	}
}

func (s *SegmentService) ListSegments(slug string) ([]domain.Segment, error) {
	return s.segments.ListSegments(slug)
}

func (s *SegmentService) GetSegment(slug string, position int) (*domain.Segment, error) {
	segments, err := s.segments.ListSegments(slug)
	if err != nil {
		return nil, err
	}
	for i := range segments {
		if segments[i].Position == position {
			return &segments[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *SegmentService) GetMatch(slug, matchID string) (*domain.Match, error) {
	return s.segments.GetMatch(slug, matchID)
}

func (s *SegmentService) LoadSummary(path string) (string, error) {
	return s.segments.LoadSummary(path)
}

// Create adds a segment to an event's card. Returns the warnings recorded on
// the match, if any.
func (s *SegmentService) Create(slug string, input SegmentInput) ([]string, error) {
	if err := s.guardEvent(slug); err != nil {
		return nil, err
	}
	segments, err := s.segments.ListSegments(slug)
	if err != nil {
		return nil, err
	}
	if err := validateSegmentInput(input, segments, -1); err != nil {
		return nil, err
	}

	segment := domain.Segment{
		Position: input.Position,
		Type:     input.Type,
		Header:   input.Header,
	}

	var warnings []string
	if input.Type == domain.SegmentMatch {
		if input.Match == nil {
			return nil, domain.NewValidationError("Match data is missing for a segment of type 'Match'.")
		}
		matchID, err := gonanoid.New()
		if err != nil {
			return nil, fmt.Errorf("failed to generate match id: %w", err)
		}
		prepared, w, err := s.buildMatch(*input.Match, matchID, input.Position)
		if err != nil {
			return nil, err
		}
		warnings = w
		s.decorateSegment(&segment, prepared)

		matches, err := s.segments.ListMatches(slug)
		if err != nil {
			return nil, err
		}
		if err := s.segments.SaveMatches(slug, append(matches, *prepared)); err != nil {
			return nil, err
		}
	}

	segment.SummaryFile = s.segments.SummaryPath(slug, segment.Type, segment.Header, segment.Position)

	if err := s.segments.SaveSegments(slug, append(segments, segment)); err != nil {
		return nil, err
	}
	if err := s.segments.SaveSummary(segment.SummaryFile, input.Summary); err != nil {
		return nil, err
	}
	s.logger.Info().Str("event", slug).Int("position", segment.Position).Str("type", segment.Type).Msg("segment added")
	return warnings, nil
}

// Update edits the segment at originalPosition. A segment that stays a Match
// keeps its match ID; one that stops being a Match loses its match record.
func (s *SegmentService) Update(slug string, originalPosition int, input SegmentInput) ([]string, error) {
	if err := s.guardEvent(slug); err != nil {
		return nil, err
	}
	segments, err := s.segments.ListSegments(slug)
	if err != nil {
		return nil, err
	}
	index := -1
	for i := range segments {
		if segments[i].Position == originalPosition {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, domain.ErrNotFound
	}
	if err := validateSegmentInput(input, segments, originalPosition); err != nil {
		return nil, err
	}

	old := segments[index]
	segment := domain.Segment{
		Position: input.Position,
		Type:     input.Type,
		Header:   input.Header,
	}

	var warnings []string
	switch {
	case input.Type == domain.SegmentMatch:
		if input.Match == nil {
			return nil, domain.NewValidationError("Match data is missing for a segment of type 'Match'.")
		}
		matchID := old.MatchID
		if matchID == "" {
			if matchID, err = gonanoid.New(); err != nil {
				return nil, fmt.Errorf("failed to generate match id: %w", err)
			}
		}
		prepared, w, err := s.buildMatch(*input.Match, matchID, input.Position)
		if err != nil {
			return nil, err
		}
		warnings = w
		s.decorateSegment(&segment, prepared)
		if err := s.upsertMatch(slug, prepared); err != nil {
			return nil, err
		}
	case old.MatchID != "":
		// Type changed away from Match: the match record goes with it.
		if err := s.deleteMatch(slug, old.MatchID); err != nil {
			return nil, err
		}
	}

	segment.SummaryFile = s.segments.SummaryPath(slug, segment.Type, segment.Header, segment.Position)
	segments[index] = segment
	if err := s.segments.SaveSegments(slug, segments); err != nil {
		return nil, err
	}
	if old.SummaryFile != "" && old.SummaryFile != segment.SummaryFile {
		if err := s.segments.DeleteSummary(old.SummaryFile); err != nil {
			return nil, err
		}
	}
	if err := s.segments.SaveSummary(segment.SummaryFile, input.Summary); err != nil {
		return nil, err
	}
	s.logger.Info().Str("event", slug).Int("position", segment.Position).Msg("segment updated")
	return warnings, nil
}

// Delete removes a segment, its summary file and any owned match record.
func (s *SegmentService) Delete(slug string, position int) error {
	if err := s.guardEvent(slug); err != nil {
		return err
	}
	segments, err := s.segments.ListSegments(slug)
	if err != nil {
		return err
	}
	index := -1
	for i := range segments {
		if segments[i].Position == position {
			index = i
			break
		}
	}
	if index == -1 {
		return domain.ErrNotFound
	}
	deleted := segments[index]
	segments = append(segments[:index], segments[index+1:]...)
	if err := s.segments.SaveSegments(slug, segments); err != nil {
		return err
	}
	if err := s.segments.DeleteSummary(deleted.SummaryFile); err != nil {
		return err
	}
	if deleted.MatchID != "" {
		if err := s.deleteMatch(slug, deleted.MatchID); err != nil {
			return err
		}
	}
	s.logger.Info().Str("event", slug).Int("position", position).Msg("segment deleted")
	return nil
}

// EventWarnings collects every stored match warning for an event, prefixed
// by segment position, for the finalize acknowledgment checklist.
func (s *SegmentService) EventWarnings(slug string) ([]string, error) {
	segments, err := s.segments.ListSegments(slug)
	if err != nil {
		return nil, err
	}
	matches, err := s.segments.ListMatches(slug)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.Match, len(matches))
	for _, m := range matches {
		byID[m.MatchID] = m
	}

	var warnings []string
	for _, seg := range segments {
		if seg.Type != domain.SegmentMatch || seg.MatchID == "" {
			continue
		}
		if m, ok := byID[seg.MatchID]; ok {
			for _, w := range m.Warnings {
				warnings = append(warnings, fmt.Sprintf("Segment %d: %s", seg.Position, w))
			}
		}
	}
	return warnings, nil
}

// buildMatch runs the full save pipeline on raw match input: defaulting,
// preparation, validation, display generation. Errors block the save;
// warnings come back for the caller and are stored on the record.
func (s *SegmentService) buildMatch(input MatchInput, matchID string, position int) (*domain.Match, []string, error) {
	teams, err := s.teams.List()
	if err != nil {
		return nil, nil, err
	}
	belts, err := s.belts.List()
	if err != nil {
		return nil, nil, err
	}

	sync := true
	if input.SyncTeamsToIndividuals != nil {
		sync = *input.SyncTeamsToIndividuals
	}
	m := domain.Match{
		MatchID:                matchID,
		SegmentPosition:        position,
		Sides:                  input.Sides,
		IndividualResults:      input.IndividualResults,
		TeamResults:            input.TeamResults,
		WinningSideIndex:       input.WinningSideIndex,
		SyncTeamsToIndividuals: sync,
		MatchResult:            input.MatchResult,
		WinnerMethod:           input.WinnerMethod,
		MatchTime:              input.MatchTime,
		Championship:           input.Championship,
		Visibility:             input.Visibility,
	}
	m = match.Prepare(m, teams)

	errs, warnings := match.Validate(m, teams)
	if len(errs) > 0 {
		return nil, nil, &domain.ValidationError{Messages: errs}
	}
	m.Warnings = warnings

	// A booker-supplied display string wins over the generated one.
	if input.MatchResultDisplay != "" {
		m.MatchResultDisplay = input.MatchResultDisplay
	} else {
		m.MatchResultDisplay = match.ResultDisplay(m, teams, belts)
	}
	return &m, warnings, nil
}

// decorateSegment denormalizes the card-facing strings onto the segment and
// fills an empty header from the match class.
func (s *SegmentService) decorateSegment(segment *domain.Segment, m *domain.Match) {
	teams, err := s.teams.List()
	if err != nil {
		// Display decoration is best-effort; the match record is intact.
		s.logger.Warn().Err(err).Msg("failed to load teams for participants display")
	}
	segment.MatchID = m.MatchID
	segment.ParticipantsDisplay = match.ParticipantsDisplay(m.Sides, teams)
	segment.MatchResult = m.MatchResult
	segment.MatchResultDisplay = m.MatchResultDisplay
	if segment.Header == "" {
		segment.Header = match.DefaultHeader(m.Class)
	}
}

func (s *SegmentService) upsertMatch(slug string, m *domain.Match) error {
	matches, err := s.segments.ListMatches(slug)
	if err != nil {
		return err
	}
	for i := range matches {
		if matches[i].MatchID == m.MatchID {
			matches[i] = *m
			return s.segments.SaveMatches(slug, matches)
		}
	}
	return s.segments.SaveMatches(slug, append(matches, *m))
}

func (s *SegmentService) deleteMatch(slug, matchID string) error {
	matches, err := s.segments.ListMatches(slug)
	if err != nil {
		return err
	}
	kept := matches[:0]
	for _, m := range matches {
		if m.MatchID != matchID {
			kept = append(kept, m)
		}
	}
	return s.segments.SaveMatches(slug, kept)
}

// guardEvent rejects segment writes against missing or finalized events.
func (s *SegmentService) guardEvent(slug string) error {
	event, err := s.events.GetBySlug(slug)
	if err != nil {
		return err
	}
	if event.Finalized {
		return domain.NewStateError("Cannot modify segments of a finalized event.")
	}
	return nil
}

func validateSegmentInput(input SegmentInput, siblings []domain.Segment, originalPosition int) error {
	var msgs []string
	if input.Position <= 0 {
		msgs = append(msgs, "Position is required and must be a positive integer.")
	}
	if input.Type == "" {
		msgs = append(msgs, "Type is required.")
	} else {
		valid := false
		for _, t := range domain.SegmentTypes {
			if input.Type == t {
				valid = true
				break
			}
		}
		if !valid {
			msgs = append(msgs, fmt.Sprintf("Invalid segment type: %s.", input.Type))
		}
	}
	if len(msgs) > 0 {
		return &domain.ValidationError{Messages: msgs}
	}
	for _, seg := range siblings {
		if seg.Position == originalPosition {
			continue
		}
		if seg.Position == input.Position {
			return domain.NewConflictError(
				"Position %d is already taken by another segment. Please choose a different position.", input.Position)
		}
	}
	return nil
}
