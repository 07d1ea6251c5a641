package service

import (
	"archive/zip"
	"context"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"ringbook/internal/config"
	"ringbook/internal/constants"
	"ringbook/internal/domain"
	"ringbook/internal/storage"
)

// ExportService renders the fan-facing site to standalone HTML files and
// packages the result as a zip. It also provides whole-data-directory
// backup and restore.
type ExportService struct {
	dataDir   string
	exportDir string
	wrestlers *storage.WrestlerStore
	teams     *storage.TagTeamStore
	belts     *storage.BeltStore
	events    *storage.EventStore
	segments  *storage.SegmentStore
	divisions *storage.DivisionStore
	prefs     *storage.PrefsStore
	logger    zerolog.Logger
}

func NewExportService(
	cfg *config.Config,
	wrestlers *storage.WrestlerStore,
	teams *storage.TagTeamStore,
	belts *storage.BeltStore,
	events *storage.EventStore,
	segments *storage.SegmentStore,
	divisions *storage.DivisionStore,
	prefs *storage.PrefsStore,
	logger zerolog.Logger,
) *ExportService {
	return &ExportService{
		dataDir:   cfg.DataDir,
		exportDir: cfg.ExportDir,
		wrestlers: wrestlers,
		teams:     teams,
		belts:     belts,
		events:    events,
		segments:  segments,
		divisions: divisions,
		prefs:     prefs,
		logger:    logger,
	}
}

type sitePage struct {
	Filename string
	Template *template.Template
	Data     any
}

// Export renders every fan page into a staging directory, zips it and
// removes the staging copy. Returns the zip path.
func (s *ExportService) Export(ctx context.Context) (string, error) {
	prefs, err := s.prefs.Load()
	if err != nil {
		return "", err
	}
	pages, err := s.collectPages(prefs)
	if err != nil {
		return "", err
	}

	staging := filepath.Join(s.exportDir, "static_export")
	if err := os.RemoveAll(staging); err != nil {
		return "", err
	}
	if err := os.MkdirAll(staging, 0o755); err != nil {
		return "", err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(constants.ExportWorkerLimit)
	for _, page := range pages {
		page := page
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return renderPage(filepath.Join(staging, page.Filename), page)
		})
	}
	if err := g.Wait(); err != nil {
		return "", fmt.Errorf("failed to render site: %w", err)
	}

	name := fmt.Sprintf("%s_fan_site_%s.zip", storage.Slugify(prefs.LeagueShort), time.Now().Format("20060102_150405"))
	zipPath := filepath.Join(s.exportDir, name)
	if err := zipDir(staging, zipPath); err != nil {
		return "", err
	}
	if err := os.RemoveAll(staging); err != nil {
		return "", err
	}
	s.logger.Info().Int("pages", len(pages)).Str("archive", zipPath).Msg("static site exported")
	return zipPath, nil
}

func (s *ExportService) collectPages(prefs domain.Preferences) ([]sitePage, error) {
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
	events, err := s.events.List()
	if err != nil {
		return nil, err
	}

	var finalized []domain.Event
	for _, e := range events {
		if e.Finalized {
			finalized = append(finalized, e)
		}
	}
	sort.Slice(finalized, func(i, j int) bool { return finalized[i].Date > finalized[j].Date })

	visibleWrestlers := wrestlers[:0:0]
	for _, w := range wrestlers {
		if !w.HideFromFanRoster {
			visibleWrestlers = append(visibleWrestlers, w)
		}
	}
	visibleTeams := teams[:0:0]
	for _, t := range teams {
		if !t.HideFromFanRoster {
			visibleTeams = append(visibleTeams, t)
		}
	}

	pages := []sitePage{
		{Filename: "index.html", Template: indexTemplate, Data: indexPageData{Prefs: prefs, Events: finalized}},
		{Filename: "roster.html", Template: rosterTemplate, Data: rosterPageData{Prefs: prefs, Wrestlers: visibleWrestlers, Teams: visibleTeams}},
		{Filename: "events.html", Template: eventsTemplate, Data: indexPageData{Prefs: prefs, Events: finalized}},
		{Filename: "champions.html", Template: championsTemplate, Data: championsPageData{Prefs: prefs, Belts: belts}},
	}

	for _, w := range visibleWrestlers {
		pages = append(pages, sitePage{
			Filename: fmt.Sprintf("wrestler-%s.html", storage.Slugify(w.Name)),
			Template: wrestlerTemplate,
			Data:     wrestlerPageData{Prefs: prefs, Wrestler: w},
		})
	}
	for _, t := range visibleTeams {
		pages = append(pages, sitePage{
			Filename: fmt.Sprintf("tagteam-%s.html", storage.Slugify(t.Name)),
			Template: teamTemplate,
			Data:     teamPageData{Prefs: prefs, Team: t},
		})
	}
	for _, b := range belts {
		var reigns []domain.Reign
		for _, r := range history {
			if r.BeltID == b.ID {
				reigns = append(reigns, r)
			}
		}
		pages = append(pages, sitePage{
			Filename: fmt.Sprintf("belt-%s.html", b.ID),
			Template: beltTemplate,
			Data:     beltPageData{Prefs: prefs, Belt: b, Reigns: reigns},
		})
	}
	for _, e := range finalized {
		slug := storage.Slugify(e.Name)
		segs, err := s.segments.ListSegments(slug)
		if err != nil {
			return nil, err
		}
		matches, err := s.segments.ListMatches(slug)
		if err != nil {
			return nil, err
		}
		summary, err := s.segments.LoadSummary(e.SummaryFile)
		if err != nil {
			return nil, err
		}
		pages = append(pages, sitePage{
			Filename: fmt.Sprintf("event-%s.html", slug),
			Template: eventTemplate,
			Data:     eventPageData{Prefs: prefs, Event: e, Segments: fanCardSegments(segs, matches), Summary: summary},
		})
	}
	return pages, nil
}

// fanCardSegments applies match visibility to an event card: matches hidden
// from the card are dropped, and hidden results are blanked so Quick Results
// never leaks them.
func fanCardSegments(segments []domain.Segment, matches []domain.Match) []domain.Segment {
	visibility := make(map[string]domain.MatchVisibility, len(matches))
	for _, m := range matches {
		visibility[m.MatchID] = m.Visibility
	}
	visible := segments[:0:0]
	for _, seg := range segments {
		v := visibility[seg.MatchID]
		if seg.MatchID != "" && v.HideFromCard {
			continue
		}
		if v.HideResult {
			seg.MatchResultDisplay = ""
		}
		visible = append(visible, seg)
	}
	return visible
}

func renderPage(path string, page sitePage) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := page.Template.Execute(f, page.Data); err != nil {
		f.Close()
		return fmt.Errorf("render %s: %w", page.Filename, err)
	}
	return f.Close()
}

// Backup zips the whole data directory and returns the archive path.
func (s *ExportService) Backup() (string, error) {
	if _, err := os.Stat(s.dataDir); err != nil {
		return "", fmt.Errorf("no data directory found to backup: %w", err)
	}
	if err := os.MkdirAll(s.exportDir, 0o755); err != nil {
		return "", err
	}
	name := fmt.Sprintf("ringbook_backup_%s.zip", time.Now().Format("20060102_150405"))
	path := filepath.Join(s.exportDir, name)
	if err := zipDir(s.dataDir, path); err != nil {
		return "", err
	}
	s.logger.Info().Str("archive", path).Msg("data backup created")
	return path, nil
}

// Restore replaces the data directory with the contents of a backup zip.
// The existing directory is kept aside until extraction succeeds, then
// removed; on failure it is moved back.
func (s *ExportService) Restore(zipPath string) error {
	reader, err := zip.OpenReader(zipPath)
	if err != nil {
		return domain.NewValidationError("Invalid backup file. Please upload a valid .zip file.")
	}
	defer reader.Close()

	aside := fmt.Sprintf("%s_old_%s", s.dataDir, time.Now().Format("20060102_150405"))
	hadData := false
	if _, err := os.Stat(s.dataDir); err == nil {
		hadData = true
		if err := os.Rename(s.dataDir, aside); err != nil {
			return err
		}
	}
	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return err
	}

	if err := extractZip(&reader.Reader, s.dataDir); err != nil {
		os.RemoveAll(s.dataDir)
		if hadData {
			os.Rename(aside, s.dataDir)
		}
		return fmt.Errorf("failed to restore backup: %w", err)
	}
	if hadData {
		if err := os.RemoveAll(aside); err != nil {
			return err
		}
	}
	s.logger.Info().Str("archive", zipPath).Msg("data restored from backup")
	return nil
}

// ResetData wipes every data file, leaving an empty data directory.
func (s *ExportService) ResetData() error {
	if err := os.RemoveAll(s.dataDir); err != nil {
		return err
	}
	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return err
	}
	s.logger.Warn().Str("dir", s.dataDir).Msg("all league data reset")
	return nil
}

func zipDir(root, zipPath string) error {
	f, err := os.Create(zipPath)
	if err != nil {
		return err
	}
	defer f.Close()
	zw := zip.NewWriter(f)

	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		w, err := zw.Create(filepath.ToSlash(rel))
		if err != nil {
			return err
		}
		src, err := os.Open(path)
		if err != nil {
			return err
		}
		defer src.Close()
		_, err = io.Copy(w, src)
		return err
	})
	if err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

func extractZip(r *zip.Reader, dest string) error {
	for _, file := range r.File {
		name := filepath.Clean(file.Name)
		if strings.HasPrefix(name, "..") || filepath.IsAbs(name) {
			return fmt.Errorf("archive contains unsafe path: %s", file.Name)
		}
		target := filepath.Join(dest, name)
		if file.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return err
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return err
		}
		src, err := file.Open()
		if err != nil {
			return err
		}
		dst, err := os.Create(target)
		if err != nil {
			src.Close()
			return err
		}
		if _, err := io.Copy(dst, src); err != nil {
			dst.Close()
			src.Close()
			return err
		}
		dst.Close()
		src.Close()
	}
	return nil
}
