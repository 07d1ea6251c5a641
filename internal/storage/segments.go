package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog"

	"ringbook/internal/domain"
)

type segmentRecord struct {
	Position            int    `json:"position"`
	Type                string `json:"type"`
	Header              string `json:"header"`
	SummaryFile         string `json:"summary_file"`
	MatchID             string `json:"match_id,omitempty"`
	ParticipantsDisplay string `json:"participants_display,omitempty"`
	MatchResult         string `json:"match_result,omitempty"`
	MatchResultDisplay  string `json:"match_result_display,omitempty"`
}

type matchRecord struct {
	MatchID                string                    `json:"match_id"`
	SegmentPosition        int                       `json:"segment_position"`
	Sides                  [][]string                `json:"sides"`
	MatchClass             string                    `json:"match_class"`
	IndividualResults      map[string]domain.Result  `json:"individual_results"`
	TeamResults            map[string]domain.Result  `json:"team_results"`
	WinningSideIndex       int                       `json:"winning_side_index"`
	SyncTeamsToIndividuals bool                      `json:"sync_teams_to_individuals"`
	MatchResult            string                    `json:"match_result"`
	WinnerMethod           string                    `json:"winner_method"`
	MatchResultDisplay     string                    `json:"match_result_display"`
	MatchTime              string                    `json:"match_time"`
	MatchChampionship      string                    `json:"match_championship"`
	MatchVisibility        domain.MatchVisibility    `json:"match_visibility"`
	Warnings               []string                  `json:"warnings"`
}

// SegmentStore persists per-event segment and match files
// (<slug>_segments.json, <slug>_matches.json) plus the per-segment narrative
// text files that segments reference by path.
type SegmentStore struct {
	eventsDir   string
	summaryRoot string
	logger      zerolog.Logger
}

func NewSegmentStore(dataDir string, logger zerolog.Logger) *SegmentStore {
	return &SegmentStore{
		eventsDir:   filepath.Join(dataDir, "events"),
		summaryRoot: filepath.Join(dataDir, "summaries"),
		logger:      logger,
	}
}

func (s *SegmentStore) segmentsPath(slug string) string {
	return filepath.Join(s.eventsDir, slug+"_segments.json")
}

func (s *SegmentStore) matchesPath(slug string) string {
	return filepath.Join(s.eventsDir, slug+"_matches.json")
}

// SummaryPath derives the narrative file location for a segment from its
// type, header and position.
func (s *SegmentStore) SummaryPath(slug, segmentType, header string, position int) string {
	headerSlug := Slugify(header)
	if headerSlug == "" {
		headerSlug = "no-header"
	}
	name := fmt.Sprintf("%s_%s_%d.md", Slugify(segmentType), headerSlug, position)
	return filepath.Join(s.summaryRoot, slug, name)
}

// EventSummaryPath is where an event's consolidated summary artifact lives.
func (s *SegmentStore) EventSummaryPath(slug string) string {
	return filepath.Join(s.eventsDir, slug+"_summary.md")
}

// ListSegments returns an event's segments ordered by position.
func (s *SegmentStore) ListSegments(slug string) ([]domain.Segment, error) {
	records, err := loadCollection[segmentRecord](s.segmentsPath(slug))
	if err != nil {
		return nil, err
	}
	segments := make([]domain.Segment, len(records))
	for i, r := range records {
		segments[i] = domain.Segment{
			Position:            r.Position,
			Type:                r.Type,
			Header:              r.Header,
			SummaryFile:         r.SummaryFile,
			MatchID:             r.MatchID,
			ParticipantsDisplay: r.ParticipantsDisplay,
			MatchResult:         r.MatchResult,
			MatchResultDisplay:  r.MatchResultDisplay,
		}
	}
	sort.Slice(segments, func(i, j int) bool { return segments[i].Position < segments[j].Position })
	return segments, nil
}

func (s *SegmentStore) SaveSegments(slug string, segments []domain.Segment) error {
	sort.Slice(segments, func(i, j int) bool { return segments[i].Position < segments[j].Position })
	records := make([]segmentRecord, len(segments))
	for i, seg := range segments {
		records[i] = segmentRecord{
			Position:            seg.Position,
			Type:                seg.Type,
			Header:              seg.Header,
			SummaryFile:         seg.SummaryFile,
			MatchID:             seg.MatchID,
			ParticipantsDisplay: seg.ParticipantsDisplay,
			MatchResult:         seg.MatchResult,
			MatchResultDisplay:  seg.MatchResultDisplay,
		}
	}
	s.logger.Debug().Str("event", slug).Int("count", len(records)).Msg("saving segments")
	return saveCollection(s.segmentsPath(slug), records)
}

func (s *SegmentStore) ListMatches(slug string) ([]domain.Match, error) {
	records, err := loadCollection[matchRecord](s.matchesPath(slug))
	if err != nil {
		return nil, err
	}
	matches := make([]domain.Match, len(records))
	for i, r := range records {
		matches[i] = r.toDomain()
	}
	return matches, nil
}

func (s *SegmentStore) GetMatch(slug, matchID string) (*domain.Match, error) {
	matches, err := s.ListMatches(slug)
	if err != nil {
		return nil, err
	}
	for i := range matches {
		if matches[i].MatchID == matchID {
			return &matches[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *SegmentStore) SaveMatches(slug string, matches []domain.Match) error {
	records := make([]matchRecord, len(matches))
	for i, m := range matches {
		records[i] = toMatchRecord(m)
	}
	s.logger.Debug().Str("event", slug).Int("count", len(records)).Msg("saving matches")
	return saveCollection(s.matchesPath(slug), records)
}

// LoadSummary reads a narrative text file; a missing file is empty text.
func (s *SegmentStore) LoadSummary(path string) (string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read summary %s: %w", path, err)
	}
	return string(data), nil
}

func (s *SegmentStore) SaveSummary(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write summary %s: %w", path, err)
	}
	return nil
}

func (s *SegmentStore) DeleteSummary(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete summary %s: %w", path, err)
	}
	return nil
}

// DeleteEventFiles removes an event's segment and match files along with
// every referenced summary file. Used by cascade delete.
func (s *SegmentStore) DeleteEventFiles(slug string) error {
	segments, err := s.ListSegments(slug)
	if err != nil {
		return err
	}
	for _, seg := range segments {
		if err := s.DeleteSummary(seg.SummaryFile); err != nil {
			return err
		}
	}
	for _, path := range []string{s.segmentsPath(slug), s.matchesPath(slug)} {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove %s: %w", path, err)
		}
	}
	return nil
}

func (r matchRecord) toDomain() domain.Match {
	return domain.Match{
		MatchID:                r.MatchID,
		SegmentPosition:        r.SegmentPosition,
		Sides:                  r.Sides,
		Class:                  domain.MatchClass(r.MatchClass),
		IndividualResults:      r.IndividualResults,
		TeamResults:            r.TeamResults,
		WinningSideIndex:       r.WinningSideIndex,
		SyncTeamsToIndividuals: r.SyncTeamsToIndividuals,
		MatchResult:            r.MatchResult,
		WinnerMethod:           r.WinnerMethod,
		MatchResultDisplay:     r.MatchResultDisplay,
		MatchTime:              r.MatchTime,
		Championship:           r.MatchChampionship,
		Visibility:             r.MatchVisibility,
		Warnings:               r.Warnings,
	}
}

func toMatchRecord(m domain.Match) matchRecord {
	return matchRecord{
		MatchID:                m.MatchID,
		SegmentPosition:        m.SegmentPosition,
		Sides:                  m.Sides,
		MatchClass:             string(m.Class),
		IndividualResults:      m.IndividualResults,
		TeamResults:            m.TeamResults,
		WinningSideIndex:       m.WinningSideIndex,
		SyncTeamsToIndividuals: m.SyncTeamsToIndividuals,
		MatchResult:            m.MatchResult,
		WinnerMethod:           m.WinnerMethod,
		MatchResultDisplay:     m.MatchResultDisplay,
		MatchTime:              m.MatchTime,
		MatchChampionship:      m.Championship,
		MatchVisibility:        m.Visibility,
		Warnings:               m.Warnings,
	}
}
