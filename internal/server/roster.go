package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) listWrestlers(c echo.Context) error {
	wrestlers, err := s.roster.List(c.QueryParam("status"))
	if err != nil {
		return s.writeError(c, err)
	}
	out := make([]wrestlerDTO, 0, len(wrestlers))
	for _, w := range wrestlers {
		out = append(out, toWrestlerDTO(w))
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) getWrestler(c echo.Context) error {
	w, err := s.roster.Get(c.Param("name"))
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, toWrestlerDTO(*w))
}

func (s *Server) createWrestler(c echo.Context) error {
	var body wrestlerDTO
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	w := body.toDomain()
	if err := s.roster.Create(w); err != nil {
		return s.writeError(c, err)
	}
	created, err := s.roster.Get(w.Name)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusCreated, toWrestlerDTO(*created))
}

func (s *Server) updateWrestler(c echo.Context) error {
	var body wrestlerDTO
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := s.roster.Update(c.Param("name"), body.toDomain()); err != nil {
		return s.writeError(c, err)
	}
	updated, err := s.roster.Get(body.Name)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, toWrestlerDTO(*updated))
}

func (s *Server) deleteWrestler(c echo.Context) error {
	if err := s.roster.Delete(c.Param("name")); err != nil {
		return s.writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) resetWrestlerRecords(c echo.Context) error {
	if err := s.roster.ResetRecords(); err != nil {
		return s.writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) listTagTeams(c echo.Context) error {
	teams, err := s.tagteams.List(c.QueryParam("status"))
	if err != nil {
		return s.writeError(c, err)
	}
	out := make([]tagTeamDTO, 0, len(teams))
	for _, t := range teams {
		out = append(out, toTagTeamDTO(t))
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) getTagTeam(c echo.Context) error {
	t, err := s.tagteams.Get(c.Param("name"))
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, toTagTeamDTO(*t))
}

func (s *Server) createTagTeam(c echo.Context) error {
	var body tagTeamDTO
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	t := body.toDomain()
	if err := s.tagteams.Create(t); err != nil {
		return s.writeError(c, err)
	}
	created, err := s.tagteams.Get(t.Name)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusCreated, toTagTeamDTO(*created))
}

func (s *Server) updateTagTeam(c echo.Context) error {
	var body tagTeamDTO
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := s.tagteams.Update(c.Param("name"), body.toDomain()); err != nil {
		return s.writeError(c, err)
	}
	updated, err := s.tagteams.Get(body.Name)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, toTagTeamDTO(*updated))
}

func (s *Server) deleteTagTeam(c echo.Context) error {
	if err := s.tagteams.Delete(c.Param("name")); err != nil {
		return s.writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) resetTagTeamRecords(c echo.Context) error {
	if err := s.tagteams.ResetRecords(); err != nil {
		return s.writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) listDivisions(c echo.Context) error {
	divisions, err := s.divisions.List()
	if err != nil {
		return s.writeError(c, err)
	}
	out := make([]divisionDTO, 0, len(divisions))
	for _, d := range divisions {
		out = append(out, divisionDTO(d))
	}
	return c.JSON(http.StatusOK, out)
}
