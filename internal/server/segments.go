package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ringbook/internal/ai"
	"ringbook/internal/service"
)

func (s *Server) listSegments(c echo.Context) error {
	segments, err := s.segments.ListSegments(c.Param("slug"))
	if err != nil {
		return s.writeError(c, err)
	}
	out := make([]segmentViewDTO, 0, len(segments))
	for _, seg := range segments {
		out = append(out, segmentViewDTO{
			Position:            seg.Position,
			Type:                seg.Type,
			Header:              seg.Header,
			MatchID:             seg.MatchID,
			ParticipantsDisplay: seg.ParticipantsDisplay,
			MatchResult:         seg.MatchResult,
			MatchResultDisplay:  seg.MatchResultDisplay,
		})
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) getSegment(c echo.Context) error {
	position, ok := parsePosition(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid position"})
	}
	seg, err := s.segments.GetSegment(c.Param("slug"), position)
	if err != nil {
		return s.writeError(c, err)
	}
	summary, err := s.segments.LoadSummary(seg.SummaryFile)
	if err != nil {
		return s.writeError(c, err)
	}
	view := segmentViewDTO{
		Position:            seg.Position,
		Type:                seg.Type,
		Header:              seg.Header,
		MatchID:             seg.MatchID,
		ParticipantsDisplay: seg.ParticipantsDisplay,
		MatchResult:         seg.MatchResult,
		MatchResultDisplay:  seg.MatchResultDisplay,
		Summary:             summary,
	}
	if seg.MatchID == "" {
		return c.JSON(http.StatusOK, view)
	}
	m, err := s.segments.GetMatch(c.Param("slug"), seg.MatchID)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"segment": view,
		"match": map[string]any{
			"sides":                     m.Sides,
			"match_class":               m.Class,
			"individual_results":        m.IndividualResults,
			"team_results":              m.TeamResults,
			"winning_side_index":        m.WinningSideIndex,
			"sync_teams_to_individuals": m.SyncTeamsToIndividuals,
			"match_result":              m.MatchResult,
			"winner_method":             m.WinnerMethod,
			"match_result_display":      m.MatchResultDisplay,
			"match_time":                m.MatchTime,
			"match_championship":        m.Championship,
			"match_visibility":          m.Visibility,
			"warnings":                  m.Warnings,
		},
	})
}

func (s *Server) createSegment(c echo.Context) error {
	var body segmentDTO
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	warnings, err := s.segments.Create(c.Param("slug"), body.toInput())
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{"warnings": warnings})
}

func (s *Server) updateSegment(c echo.Context) error {
	position, ok := parsePosition(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid position"})
	}
	var body segmentDTO
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	warnings, err := s.segments.Update(c.Param("slug"), position, body.toInput())
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"warnings": warnings})
}

func (s *Server) deleteSegment(c echo.Context) error {
	position, ok := parsePosition(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid position"})
	}
	if err := s.segments.Delete(c.Param("slug"), position); err != nil {
		return s.writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) generateNarrative(c echo.Context) error {
	position, ok := parsePosition(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid position"})
	}
	var body struct {
		FeudSummary      string    `json:"feud_summary"`
		StoryBeats       string    `json:"story_beats"`
		DetailLevel      string    `json:"detail_level"`
		NarrativeStyle   string    `json:"narrative_style"`
		IncludeEntrances bool      `json:"include_entrances"`
		CommentaryLevel  string    `json:"commentary_level"`
		PromoSpeaker     string    `json:"promo_speaker"`
		PromoStyle       string    `json:"promo_style"`
		PromptOnly       bool      `json:"get_prompt_only"`
		DraftPosition    int       `json:"position"`
		DraftType        string    `json:"segment_type"`
		DraftHeader      string    `json:"segment_header"`
		DraftMatch       *matchDTO `json:"match,omitempty"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	result, err := s.narrative.Generate(c.Request().Context(), c.Param("slug"), position, service.NarrativeRequest{
		Direction: ai.Direction{
			FeudSummary:      body.FeudSummary,
			StoryBeats:       body.StoryBeats,
			DetailLevel:      body.DetailLevel,
			NarrativeStyle:   body.NarrativeStyle,
			IncludeEntrances: body.IncludeEntrances,
			CommentaryLevel:  body.CommentaryLevel,
			PromoSpeaker:     body.PromoSpeaker,
			PromoStyle:       body.PromoStyle,
		},
		PromptOnly:    body.PromptOnly,
		DraftPosition: body.DraftPosition,
		DraftType:     body.DraftType,
		DraftHeader:   body.DraftHeader,
		DraftMatch:    body.DraftMatch.toInput(),
	})
	if err != nil {
		return s.writeError(c, err)
	}
	if result.Summary == "" {
		return c.JSON(http.StatusOK, map[string]string{"prompt": result.Prompt})
	}
	return c.JSON(http.StatusOK, map[string]string{"summary": result.Summary, "prompt": result.Prompt})
}
