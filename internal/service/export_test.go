package service

import (
	"archive/zip"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ringbook/internal/config"
	"ringbook/internal/domain"
	"ringbook/internal/storage"
)

func newExportService(t *testing.T) (*ExportService, string) {
	t.Helper()
	root := t.TempDir()
	dataDir := filepath.Join(root, "data")
	cfg := &config.Config{DataDir: dataDir, ExportDir: filepath.Join(root, "export")}
	log := zerolog.Nop()

	wrestlers := storage.NewWrestlerStore(dataDir, log)
	teams := storage.NewTagTeamStore(dataDir, log)
	belts := storage.NewBeltStore(dataDir, log)
	events := storage.NewEventStore(dataDir, log)
	segments := storage.NewSegmentStore(dataDir, log)
	divisions := storage.NewDivisionStore(dataDir, log)
	prefs := storage.NewPrefsStore(dataDir, log)

	require.NoError(t, wrestlers.SaveAll([]domain.Wrestler{
		{Name: "Alice"},
		{Name: "Bob", HideFromFanRoster: true},
	}))
	require.NoError(t, teams.SaveAll([]domain.TagTeam{
		{Name: "The Wrecking Crew", Members: []string{"Carol", "Dave"}},
	}))
	require.NoError(t, belts.SaveAll([]domain.Belt{
		{ID: "world", ChampionTitle: "World Championship", HolderType: domain.HolderSingles, CurrentHolder: "Alice", Status: domain.StatusActive},
	}))
	require.NoError(t, events.SaveAll([]domain.Event{
		{Name: "Clash Night", Status: domain.EventPast, Date: "2026-03-01", Finalized: true},
		{Name: "Summer Spectacle", Status: domain.EventFuture, Date: "2026-07-04"},
	}))

	svc := NewExportService(cfg, wrestlers, teams, belts, events, segments, divisions, prefs, log)
	return svc, dataDir
}

func zipNames(t *testing.T, path string) []string {
	t.Helper()
	r, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer r.Close()
	var names []string
	for _, f := range r.File {
		names = append(names, f.Name)
	}
	return names
}

func zipMember(t *testing.T, path, name string) string {
	t.Helper()
	r, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer r.Close()
	for _, f := range r.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(data)
	}
	t.Fatalf("archive has no member %s", name)
	return ""
}

func TestExportRendersFanSite(t *testing.T) {
	svc, _ := newExportService(t)

	path, err := svc.Export(context.Background())
	require.NoError(t, err)
	require.FileExists(t, path)

	names := zipNames(t, path)
	assert.Contains(t, names, "index.html")
	assert.Contains(t, names, "roster.html")
	assert.Contains(t, names, "champions.html")
	assert.Contains(t, names, "wrestler-alice.html")
	assert.NotContains(t, names, "wrestler-bob.html")
	assert.Contains(t, names, "belt-world.html")
	assert.Contains(t, names, "event-clash-night.html")
	assert.NotContains(t, names, "event-summer-spectacle.html")

	// Staging directory is cleaned up after zipping.
	_, err = os.Stat(filepath.Join(filepath.Dir(path), "static_export"))
	assert.True(t, os.IsNotExist(err))
}

func TestExportPagesUseLayout(t *testing.T) {
	svc, _ := newExportService(t)

	path, err := svc.Export(context.Background())
	require.NoError(t, err)

	index := zipMember(t, path, "index.html")
	assert.Contains(t, index, "<!DOCTYPE html>")
	assert.Contains(t, index, "<header><h1>Fantasy Elite Wrestling</h1></header>")
	assert.Contains(t, index, `<a href="event-clash-night.html">Clash Night</a>`)
	assert.Contains(t, index, "<footer><p>FEW</p></footer>")
}

func TestExportHidesRestrictedResults(t *testing.T) {
	svc, dataDir := newExportService(t)

	segStore := storage.NewSegmentStore(dataDir, zerolog.Nop())
	require.NoError(t, segStore.SaveSegments("clash-night", []domain.Segment{
		{Position: 1, Type: domain.SegmentMatch, Header: "Singles Match", MatchID: "m1", ParticipantsDisplay: "Alice vs Bob", MatchResultDisplay: "Alice def. Bob (Pinfall)"},
		{Position: 2, Type: domain.SegmentMatch, Header: "Singles Match", MatchID: "m2", ParticipantsDisplay: "Carol vs Dave", MatchResultDisplay: "Carol def. Dave (Submission)"},
		{Position: 3, Type: domain.SegmentMatch, Header: "Singles Match", MatchID: "m3", ParticipantsDisplay: "Eve vs Frank", MatchResultDisplay: "Eve def. Frank (Pinfall)"},
	}))
	require.NoError(t, segStore.SaveMatches("clash-night", []domain.Match{
		{MatchID: "m1", SegmentPosition: 1, WinningSideIndex: -1},
		{MatchID: "m2", SegmentPosition: 2, WinningSideIndex: -1, Visibility: domain.MatchVisibility{HideResult: true}},
		{MatchID: "m3", SegmentPosition: 3, WinningSideIndex: -1, Visibility: domain.MatchVisibility{HideFromCard: true}},
	}))

	path, err := svc.Export(context.Background())
	require.NoError(t, err)

	page := zipMember(t, path, "event-clash-night.html")
	assert.Contains(t, page, "Alice def. Bob (Pinfall)")
	assert.NotContains(t, page, "Carol def. Dave (Submission)")
	assert.NotContains(t, page, "Eve def. Frank (Pinfall)")
}

func TestBackupAndRestoreRoundTrip(t *testing.T) {
	svc, dataDir := newExportService(t)

	backup, err := svc.Backup()
	require.NoError(t, err)
	require.FileExists(t, backup)
	assert.Contains(t, zipNames(t, backup), "wrestlers.json")

	// Wreck the live data, then restore.
	require.NoError(t, os.RemoveAll(dataDir))
	require.NoError(t, svc.Restore(backup))

	store := storage.NewWrestlerStore(dataDir, zerolog.Nop())
	wrestlers, err := store.List()
	require.NoError(t, err)
	require.Len(t, wrestlers, 2)
	assert.Equal(t, "Alice", wrestlers[0].Name)
}

func TestResetDataLeavesEmptyDirectory(t *testing.T) {
	svc, dataDir := newExportService(t)

	require.NoError(t, svc.ResetData())

	entries, err := os.ReadDir(dataDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRestoreRejectsInvalidArchive(t *testing.T) {
	svc, dataDir := newExportService(t)

	bogus := filepath.Join(t.TempDir(), "not-a-zip.zip")
	require.NoError(t, os.WriteFile(bogus, []byte("plain text"), 0o644))

	var invalid *domain.ValidationError
	assert.ErrorAs(t, svc.Restore(bogus), &invalid)

	// Live data is untouched.
	store := storage.NewWrestlerStore(dataDir, zerolog.Nop())
	wrestlers, err := store.List()
	require.NoError(t, err)
	assert.Len(t, wrestlers, 2)
}

func TestRestoreRejectsUnsafePaths(t *testing.T) {
	svc, dataDir := newExportService(t)

	evil := filepath.Join(t.TempDir(), "evil.zip")
	f, err := os.Create(evil)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	w, err := zw.Create("../escape.txt")
	require.NoError(t, err)
	_, err = w.Write([]byte("outside"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	require.Error(t, svc.Restore(evil))

	// Original data was moved back.
	store := storage.NewWrestlerStore(dataDir, zerolog.Nop())
	wrestlers, err := store.List()
	require.NoError(t, err)
	assert.Len(t, wrestlers, 2)
}
