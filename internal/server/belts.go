package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) listBelts(c echo.Context) error {
	belts, err := s.belts.List()
	if err != nil {
		return s.writeError(c, err)
	}
	out := make([]beltDTO, 0, len(belts))
	for _, b := range belts {
		out = append(out, toBeltDTO(b))
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) getBelt(c echo.Context) error {
	b, err := s.belts.Get(c.Param("id"))
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, toBeltDTO(*b))
}

func (s *Server) createBelt(c echo.Context) error {
	var body beltDTO
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	created, err := s.belts.Create(body.toDomain())
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusCreated, toBeltDTO(*created))
}

func (s *Server) updateBelt(c echo.Context) error {
	var body beltDTO
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	updated, err := s.belts.Update(c.Param("id"), body.toDomain())
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, toBeltDTO(*updated))
}

func (s *Server) deleteBelt(c echo.Context) error {
	if err := s.belts.Delete(c.Param("id")); err != nil {
		return s.writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) beltHistory(c echo.Context) error {
	reigns, err := s.belts.History(c.Param("id"))
	if err != nil {
		return s.writeError(c, err)
	}
	out := make([]reignDTO, 0, len(reigns))
	for _, r := range reigns {
		out = append(out, toReignDTO(r))
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) setBeltHolder(c echo.Context) error {
	var body struct {
		Holder string `json:"holder"`
		Date   string `json:"date"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := s.belts.SetHolder(c.Param("id"), body.Holder, body.Date); err != nil {
		return s.writeError(c, err)
	}
	updated, err := s.belts.Get(c.Param("id"))
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, toBeltDTO(*updated))
}
