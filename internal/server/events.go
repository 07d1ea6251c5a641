package server

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

func (s *Server) listEvents(c echo.Context) error {
	events, err := s.events.List(c.QueryParam("status"))
	if err != nil {
		return s.writeError(c, err)
	}
	out := make([]eventDTO, 0, len(events))
	for _, e := range events {
		out = append(out, toEventDTO(e))
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) getEvent(c echo.Context) error {
	e, err := s.events.GetBySlug(c.Param("slug"))
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, toEventDTO(*e))
}

func (s *Server) createEvent(c echo.Context) error {
	var body eventDTO
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	event := body.toDomain()
	if err := s.events.Create(event); err != nil {
		return s.writeError(c, err)
	}
	created, err := s.events.Get(event.Name)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusCreated, toEventDTO(*created))
}

func (s *Server) updateEvent(c echo.Context) error {
	existing, err := s.events.GetBySlug(c.Param("slug"))
	if err != nil {
		return s.writeError(c, err)
	}
	var body eventDTO
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := s.events.Update(existing.Name, body.toDomain()); err != nil {
		return s.writeError(c, err)
	}
	updated, err := s.events.Get(body.Name)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, toEventDTO(*updated))
}

func (s *Server) deleteEvent(c echo.Context) error {
	existing, err := s.events.GetBySlug(c.Param("slug"))
	if err != nil {
		return s.writeError(c, err)
	}
	if err := s.events.Delete(existing.Name); err != nil {
		return s.writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) finalizeEvent(c echo.Context) error {
	var body struct {
		AcknowledgeWarnings bool `json:"acknowledge_warnings"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := s.finalize.Finalize(c.Param("slug"), body.AcknowledgeWarnings); err != nil {
		return s.writeError(c, err)
	}
	finalized, err := s.events.GetBySlug(c.Param("slug"))
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, toEventDTO(*finalized))
}

func parsePosition(c echo.Context) (int, bool) {
	position, err := strconv.Atoi(c.Param("position"))
	if err != nil {
		return 0, false
	}
	return position, true
}
