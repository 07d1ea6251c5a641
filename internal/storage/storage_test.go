package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ringbook/internal/domain"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Friday Night Mayhem", "friday-night-mayhem"},
		{"SummerSlam '99!", "summerslam-99"},
		{"  Mixed   Spacing  ", "mixed-spacing"},
		{"already-slugged", "already-slugged"},
		{"Hell's Gate: Bound & Gagged", "hells-gate-bound-gagged"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, Slugify(tc.in))
		})
	}
}

func TestWrestlerStoreRoundTrip(t *testing.T) {
	store := NewWrestlerStore(t.TempDir(), zerolog.Nop())

	in := domain.Wrestler{
		Name:            "Alice",
		Status:          "Active",
		Division:        "Heavyweight",
		Alignment:       "Face",
		Moves:           []string{"Suplex", "Moonsault"},
		WrestlingStyles: []string{"Technical"},
		Team:            "The Wrecking Crew",
		Belt:            "World Championship",
		SinglesWins:     12,
		SinglesLosses:   3,
		TagWins:         5,
	}
	require.NoError(t, store.SaveAll([]domain.Wrestler{in}))

	got, err := store.Get("Alice")
	require.NoError(t, err)
	assert.Equal(t, in, *got)
}

func TestWrestlerStoreLegacyFormat(t *testing.T) {
	dir := t.TempDir()
	legacy := `[{
        "Name": "Bob",
        "Status": "Active",
        "Moves": "Powerbomb|Lariat| ",
        "Wrestling_Styles": "Brawler|Powerhouse",
        "Singles_Wins": "7",
        "Singles_Losses": "not a number",
        "Tag_Draws": " 2 ",
        "Hide_From_Fan_Roster": true
    }]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "wrestlers.json"), []byte(legacy), 0o644))

	store := NewWrestlerStore(dir, zerolog.Nop())
	got, err := store.Get("Bob")
	require.NoError(t, err)

	assert.Equal(t, []string{"Powerbomb", "Lariat"}, got.Moves)
	assert.Equal(t, []string{"Brawler", "Powerhouse"}, got.WrestlingStyles)
	assert.Equal(t, 7, got.SinglesWins)
	assert.Equal(t, 0, got.SinglesLosses)
	assert.Equal(t, 2, got.TagDraws)
	assert.True(t, got.HideFromFanRoster)
}

func TestWrestlerStoreMissingFile(t *testing.T) {
	store := NewWrestlerStore(t.TempDir(), zerolog.Nop())

	wrestlers, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, wrestlers)

	_, err = store.Get("Nobody")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWrestlerStoreDelete(t *testing.T) {
	store := NewWrestlerStore(t.TempDir(), zerolog.Nop())
	require.NoError(t, store.SaveAll([]domain.Wrestler{{Name: "Alice"}, {Name: "Bob"}}))

	require.NoError(t, store.Delete("Alice"))
	wrestlers, err := store.List()
	require.NoError(t, err)
	require.Len(t, wrestlers, 1)
	assert.Equal(t, "Bob", wrestlers[0].Name)

	assert.ErrorIs(t, store.Delete("Alice"), domain.ErrNotFound)
}

func TestBeltStoreHistoryFor(t *testing.T) {
	store := NewBeltStore(t.TempDir(), zerolog.Nop())
	require.NoError(t, store.SaveHistory([]domain.Reign{
		{ReignID: "r1", BeltID: "world", ChampionName: "Alice"},
		{ReignID: "r2", BeltID: "tag", ChampionName: "The Wrecking Crew"},
		{ReignID: "r3", BeltID: "world", ChampionName: "Bob"},
	}))

	reigns, err := store.HistoryFor("world")
	require.NoError(t, err)
	require.Len(t, reigns, 2)
	assert.Equal(t, "Alice", reigns[0].ChampionName)
	assert.Equal(t, "Bob", reigns[1].ChampionName)
}

func TestBeltStoreSetHolder(t *testing.T) {
	store := NewBeltStore(t.TempDir(), zerolog.Nop())
	require.NoError(t, store.SaveAll([]domain.Belt{
		{ID: "world", ChampionTitle: "World Championship", HolderType: domain.HolderSingles},
	}))

	require.NoError(t, store.SetHolder("world", "Alice"))
	belt, err := store.Get("world")
	require.NoError(t, err)
	assert.Equal(t, "Alice", belt.CurrentHolder)

	assert.ErrorIs(t, store.SetHolder("missing", "Alice"), domain.ErrNotFound)
}

func TestPrefsStoreDefaults(t *testing.T) {
	store := NewPrefsStore(t.TempDir(), zerolog.Nop())

	prefs, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPreferences(), prefs)
}

func TestPrefsStoreLegacyMerge(t *testing.T) {
	dir := t.TempDir()
	legacy := `[
        {"Pref": "League_Name", "Value": "Global Wrestling Alliance"},
        {"Pref": "Fan_Mode_Show_Records", "Value": "true"},
        {"Pref": "Fan_Mode_Show_Quick_Results", "Value": false},
        {"Pref": "AI_Model", "Value": "gpt-4o"}
    ]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "prefs.json"), []byte(legacy), 0o644))

	store := NewPrefsStore(dir, zerolog.Nop())
	prefs, err := store.Load()
	require.NoError(t, err)

	defaults := domain.DefaultPreferences()
	assert.Equal(t, "Global Wrestling Alliance", prefs.LeagueName)
	assert.True(t, prefs.ShowRecords)
	assert.False(t, prefs.ShowQuickResults)
	assert.Equal(t, "gpt-4o", prefs.AIModel)
	assert.Equal(t, defaults.LeagueShort, prefs.LeagueShort)
	assert.Equal(t, defaults.RosterSortOrder, prefs.RosterSortOrder)
}

func TestPrefsStoreRoundTrip(t *testing.T) {
	store := NewPrefsStore(t.TempDir(), zerolog.Nop())

	prefs := domain.DefaultPreferences()
	prefs.LeagueName = "Ringbook Wrestling"
	prefs.ShowNonMatchHeaders = true
	require.NoError(t, store.Save(prefs))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, prefs, got)
}
