package storage

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog"

	"ringbook/internal/domain"
)

// prefEntry is the legacy on-disk shape: a list of {Pref, Value} pairs with
// loosely typed values.
type prefEntry struct {
	Pref  string `json:"Pref"`
	Value any    `json:"Value"`
}

type PrefsStore struct {
	path   string
	logger zerolog.Logger
}

func NewPrefsStore(dataDir string, logger zerolog.Logger) *PrefsStore {
	return &PrefsStore{path: filepath.Join(dataDir, "prefs.json"), logger: logger}
}

// Load merges stored entries over the defaults so newly introduced
// preferences always have a value.
func (s *PrefsStore) Load() (domain.Preferences, error) {
	prefs := domain.DefaultPreferences()
	entries, err := loadCollection[prefEntry](s.path)
	if err != nil {
		return prefs, err
	}
	for _, e := range entries {
		switch e.Pref {
		case "League_Name":
			prefs.LeagueName = asString(e.Value)
		case "League_Short":
			prefs.LeagueShort = asString(e.Value)
		case "Fan_Mode_Show_Non_Match_Headers":
			prefs.ShowNonMatchHeaders = asBool(e.Value)
		case "Fan_Mode_Show_Quick_Results":
			prefs.ShowQuickResults = asBool(e.Value)
		case "Fan_Mode_Show_Records":
			prefs.ShowRecords = asBool(e.Value)
		case "Fan_Mode_Roster_Sort_Order":
			prefs.RosterSortOrder = asString(e.Value)
		case "AI_Provider":
			prefs.AIProvider = asString(e.Value)
		case "AI_Model":
			prefs.AIModel = asString(e.Value)
		case "Game_Date_Mode":
			prefs.GameDateMode = asString(e.Value)
		case "Game_Date":
			prefs.GameDate = asString(e.Value)
		case "Weight_Unit":
			prefs.WeightUnit = asString(e.Value)
		}
	}
	return prefs, nil
}

func (s *PrefsStore) Save(prefs domain.Preferences) error {
	entries := []prefEntry{
		{Pref: "League_Name", Value: prefs.LeagueName},
		{Pref: "League_Short", Value: prefs.LeagueShort},
		{Pref: "Fan_Mode_Show_Non_Match_Headers", Value: prefs.ShowNonMatchHeaders},
		{Pref: "Fan_Mode_Show_Quick_Results", Value: prefs.ShowQuickResults},
		{Pref: "Fan_Mode_Show_Records", Value: prefs.ShowRecords},
		{Pref: "Fan_Mode_Roster_Sort_Order", Value: prefs.RosterSortOrder},
		{Pref: "AI_Provider", Value: prefs.AIProvider},
		{Pref: "AI_Model", Value: prefs.AIModel},
		{Pref: "Game_Date_Mode", Value: prefs.GameDateMode},
		{Pref: "Game_Date", Value: prefs.GameDate},
		{Pref: "Weight_Unit", Value: prefs.WeightUnit},
	}
	s.logger.Debug().Str("path", s.path).Msg("saving preferences")
	return saveCollection(s.path, entries)
}

func asString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func asBool(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		b, _ := strconv.ParseBool(t)
		return b
	default:
		return false
	}
}
