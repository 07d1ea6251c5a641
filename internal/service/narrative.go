package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"ringbook/internal/ai"
	"ringbook/internal/constants"
	"ringbook/internal/domain"
	"ringbook/internal/storage"
)

// NarrativeRequest is one AI generation call: creative direction plus, for a
// segment not yet saved (position 0), a draft of what the booker is editing.
type NarrativeRequest struct {
	Direction  ai.Direction
	PromptOnly bool

	// Draft fields, used only when generating for an unsaved segment.
	DraftPosition int
	DraftType     string
	DraftHeader   string
	DraftMatch    *MatchInput
}

// NarrativeResult carries the generated text and the prompt that produced
// it, the latter kept for booker review.
type NarrativeResult struct {
	Summary string
	Prompt  string
}

// NarrativeService assembles segment context into a prompt and calls the
// configured model. The call never touches stored data.
type NarrativeService struct {
	events    *storage.EventStore
	segments  *storage.SegmentStore
	wrestlers *storage.WrestlerStore
	teams     *storage.TagTeamStore
	prefs     *storage.PrefsStore
	client    *ai.Client
	logger    zerolog.Logger
}

func NewNarrativeService(
	events *storage.EventStore,
	segments *storage.SegmentStore,
	wrestlers *storage.WrestlerStore,
	teams *storage.TagTeamStore,
	prefs *storage.PrefsStore,
	client *ai.Client,
	logger zerolog.Logger,
) *NarrativeService {
	return &NarrativeService{
		events:    events,
		segments:  segments,
		wrestlers: wrestlers,
		teams:     teams,
		prefs:     prefs,
		client:    client,
		logger:    logger,
	}
}

// Generate builds the prompt for the segment at position (0 = unsaved draft)
// and, unless PromptOnly is set, calls the model for a summary.
func (s *NarrativeService) Generate(ctx context.Context, slug string, position int, req NarrativeRequest) (*NarrativeResult, error) {
	event, err := s.events.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	wrestlers, err := s.wrestlers.List()
	if err != nil {
		return nil, err
	}
	teams, err := s.teams.List()
	if err != nil {
		return nil, err
	}

	pc := ai.PromptContext{
		Event:     *event,
		Direction: req.Direction,
		Wrestlers: wrestlers,
		Teams:     teams,
	}

	if position != 0 {
		segments, err := s.segments.ListSegments(slug)
		if err != nil {
			return nil, err
		}
		found := false
		for _, seg := range segments {
			if seg.Position == position {
				pc.Segment = seg
				found = true
				break
			}
		}
		if !found {
			return nil, domain.ErrNotFound
		}
		if pc.Segment.MatchID != "" {
			m, err := s.segments.GetMatch(slug, pc.Segment.MatchID)
			if err != nil && !errors.Is(err, domain.ErrNotFound) {
				return nil, err
			}
			pc.Match = m
		}
	} else {
		pc.Segment = domain.Segment{
			Position: req.DraftPosition,
			Type:     req.DraftType,
			Header:   req.DraftHeader,
		}
		if req.DraftType == domain.SegmentMatch && req.DraftMatch != nil {
			pc.Match = &domain.Match{
				Sides:        req.DraftMatch.Sides,
				MatchResult:  req.DraftMatch.MatchResult,
				WinnerMethod: req.DraftMatch.WinnerMethod,
				MatchTime:    req.DraftMatch.MatchTime,
				Championship: req.DraftMatch.Championship,
				Visibility:   req.DraftMatch.Visibility,
			}
		}
	}

	prompt := ai.BuildPrompt(pc)
	if req.PromptOnly {
		return &NarrativeResult{Prompt: ai.BuildReviewPrompt(pc)}, nil
	}

	prefs, err := s.prefs.Load()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, constants.AIGenerationTimeout)
	defer cancel()

	summary, err := s.client.Complete(ctx, prefs.AIProvider, prefs.AIModel, prompt)
	if err != nil {
		s.logger.Error().Err(err).Str("event", slug).Int("position", position).Msg("AI generation failed")
		return nil, err
	}
	s.logger.Info().Str("event", slug).Int("position", position).Msg("AI summary generated")
	return &NarrativeResult{Summary: summary, Prompt: prompt}, nil
}
