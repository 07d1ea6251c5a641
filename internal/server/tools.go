package server

import (
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"
)

func (s *Server) getPrefs(c echo.Context) error {
	prefs, err := s.prefs.Load()
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, toPrefsDTO(prefs))
}

func (s *Server) updatePrefs(c echo.Context) error {
	var body prefsDTO
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := s.prefs.Save(body.toDomain()); err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, body)
}

func (s *Server) exportSite(c echo.Context) error {
	path, err := s.export.Export(c.Request().Context())
	if err != nil {
		return s.writeError(c, err)
	}
	return c.Attachment(path, filepath.Base(path))
}

func (s *Server) backupData(c echo.Context) error {
	path, err := s.export.Backup()
	if err != nil {
		return s.writeError(c, err)
	}
	return c.Attachment(path, filepath.Base(path))
}

// restoreData accepts a multipart upload of a backup zip, stages it to a
// temp file and hands it to the restore routine.
func (s *Server) restoreData(c echo.Context) error {
	file, err := c.FormFile("backup_file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "backup_file is required"})
	}
	src, err := file.Open()
	if err != nil {
		return s.writeError(c, err)
	}
	defer src.Close()

	tmp, err := os.CreateTemp("", "restore-*.zip")
	if err != nil {
		return s.writeError(c, err)
	}
	defer os.Remove(tmp.Name())
	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		return s.writeError(c, err)
	}
	tmp.Close()

	if err := s.export.Restore(tmp.Name()); err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "restored"})
}

func (s *Server) resetData(c echo.Context) error {
	if err := s.export.ResetData(); err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "reset"})
}
