package server

import (
	"ringbook/internal/domain"
	"ringbook/internal/service"
)

// Wire types for the JSON surface. Domain structs stay free of transport
// tags; these DTOs own the field names clients see.

type wrestlerDTO struct {
	Name      string `json:"name"`
	Status    string `json:"status"`
	Division  string `json:"division"`
	Nickname  string `json:"nickname"`
	Location  string `json:"location"`
	Height    string `json:"height"`
	Weight    string `json:"weight"`
	DOB       string `json:"dob"`
	Alignment string `json:"alignment"`
	Music     string `json:"music"`
	Faction   string `json:"faction"`
	Manager   string `json:"manager"`
	RealName  string `json:"real_name"`
	StartDate string `json:"start_date"`

	Moves           []string `json:"moves"`
	Awards          []string `json:"awards"`
	Salary          []string `json:"salary"`
	WrestlingStyles []string `json:"wrestling_styles"`

	Team string `json:"team"`
	Belt string `json:"belt"`

	SinglesWins   int `json:"singles_wins"`
	SinglesLosses int `json:"singles_losses"`
	SinglesDraws  int `json:"singles_draws"`
	TagWins       int `json:"tag_wins"`
	TagLosses     int `json:"tag_losses"`
	TagDraws      int `json:"tag_draws"`

	HideFromFanRoster bool `json:"hide_from_fan_roster"`
}

func (d wrestlerDTO) toDomain() domain.Wrestler {
	return domain.Wrestler{
		Name:              d.Name,
		Status:            d.Status,
		Division:          d.Division,
		Nickname:          d.Nickname,
		Location:          d.Location,
		Height:            d.Height,
		Weight:            d.Weight,
		DOB:               d.DOB,
		Alignment:         d.Alignment,
		Music:             d.Music,
		Faction:           d.Faction,
		Manager:           d.Manager,
		RealName:          d.RealName,
		StartDate:         d.StartDate,
		Moves:             d.Moves,
		Awards:            d.Awards,
		Salary:            d.Salary,
		WrestlingStyles:   d.WrestlingStyles,
		HideFromFanRoster: d.HideFromFanRoster,
	}
}

func toWrestlerDTO(w domain.Wrestler) wrestlerDTO {
	return wrestlerDTO{
		Name:              w.Name,
		Status:            w.Status,
		Division:          w.Division,
		Nickname:          w.Nickname,
		Location:          w.Location,
		Height:            w.Height,
		Weight:            w.Weight,
		DOB:               w.DOB,
		Alignment:         w.Alignment,
		Music:             w.Music,
		Faction:           w.Faction,
		Manager:           w.Manager,
		RealName:          w.RealName,
		StartDate:         w.StartDate,
		Moves:             w.Moves,
		Awards:            w.Awards,
		Salary:            w.Salary,
		WrestlingStyles:   w.WrestlingStyles,
		Team:              w.Team,
		Belt:              w.Belt,
		SinglesWins:       w.SinglesWins,
		SinglesLosses:     w.SinglesLosses,
		SinglesDraws:      w.SinglesDraws,
		TagWins:           w.TagWins,
		TagLosses:         w.TagLosses,
		TagDraws:          w.TagDraws,
		HideFromFanRoster: w.HideFromFanRoster,
	}
}

type tagTeamDTO struct {
	Name      string   `json:"name"`
	Members   []string `json:"members"`
	Status    string   `json:"status"`
	Division  string   `json:"division"`
	Location  string   `json:"location"`
	Weight    string   `json:"weight"`
	Alignment string   `json:"alignment"`
	Music     string   `json:"music"`
	Faction   string   `json:"faction"`
	Manager   string   `json:"manager"`
	Moves     []string `json:"moves"`
	Awards    []string `json:"awards"`
	Belt      string   `json:"belt"`

	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Draws  int `json:"draws"`

	HideFromFanRoster bool `json:"hide_from_fan_roster"`
}

func (d tagTeamDTO) toDomain() domain.TagTeam {
	return domain.TagTeam{
		Name:              d.Name,
		Members:           d.Members,
		Status:            d.Status,
		Division:          d.Division,
		Location:          d.Location,
		Alignment:         d.Alignment,
		Music:             d.Music,
		Faction:           d.Faction,
		Manager:           d.Manager,
		Moves:             d.Moves,
		Awards:            d.Awards,
		HideFromFanRoster: d.HideFromFanRoster,
	}
}

func toTagTeamDTO(t domain.TagTeam) tagTeamDTO {
	return tagTeamDTO{
		Name:              t.Name,
		Members:           t.Members,
		Status:            t.Status,
		Division:          t.Division,
		Location:          t.Location,
		Weight:            t.Weight,
		Alignment:         t.Alignment,
		Music:             t.Music,
		Faction:           t.Faction,
		Manager:           t.Manager,
		Moves:             t.Moves,
		Awards:            t.Awards,
		Belt:              t.Belt,
		Wins:              t.Wins,
		Losses:            t.Losses,
		Draws:             t.Draws,
		HideFromFanRoster: t.HideFromFanRoster,
	}
}

type beltDTO struct {
	ID            string `json:"id"`
	ChampionTitle string `json:"champion_title"`
	HolderType    string `json:"holder_type"`
	CurrentHolder string `json:"current_holder"`
	Status        string `json:"status"`
}

func (d beltDTO) toDomain() domain.Belt {
	return domain.Belt{
		ID:            d.ID,
		ChampionTitle: d.ChampionTitle,
		HolderType:    d.HolderType,
		Status:        d.Status,
	}
}

func toBeltDTO(b domain.Belt) beltDTO {
	return beltDTO{
		ID:            b.ID,
		ChampionTitle: b.ChampionTitle,
		HolderType:    b.HolderType,
		CurrentHolder: b.CurrentHolder,
		Status:        b.Status,
	}
}

type reignDTO struct {
	ReignID      string `json:"reign_id"`
	BeltID       string `json:"belt_id"`
	ChampionName string `json:"champion_name"`
	DateWon      string `json:"date_won"`
	DateLost     string `json:"date_lost,omitempty"`
	Defenses     int    `json:"defenses"`
}

func toReignDTO(r domain.Reign) reignDTO {
	return reignDTO(r)
}

type eventDTO struct {
	Name         string `json:"name"`
	Subtitle     string `json:"subtitle"`
	Status       string `json:"status"`
	Date         string `json:"date"`
	Venue        string `json:"venue"`
	Location     string `json:"location"`
	Broadcasters string `json:"broadcasters"`
	Finalized    bool   `json:"finalized"`
	SummaryFile  string `json:"summary_file,omitempty"`
}

func (d eventDTO) toDomain() domain.Event {
	return domain.Event{
		Name:         d.Name,
		Subtitle:     d.Subtitle,
		Status:       d.Status,
		Date:         d.Date,
		Venue:        d.Venue,
		Location:     d.Location,
		Broadcasters: d.Broadcasters,
	}
}

func toEventDTO(e domain.Event) eventDTO {
	return eventDTO{
		Name:         e.Name,
		Subtitle:     e.Subtitle,
		Status:       e.Status,
		Date:         e.Date,
		Venue:        e.Venue,
		Location:     e.Location,
		Broadcasters: e.Broadcasters,
		Finalized:    e.Finalized,
		SummaryFile:  e.SummaryFile,
	}
}

type matchDTO struct {
	Sides                  [][]string               `json:"sides"`
	WinningSideIndex       int                      `json:"winning_side_index"`
	IndividualResults      map[string]domain.Result `json:"individual_results"`
	TeamResults            map[string]domain.Result `json:"team_results"`
	SyncTeamsToIndividuals *bool                    `json:"sync_teams_to_individuals"`
	MatchResult            string                   `json:"match_result"`
	WinnerMethod           string                   `json:"winner_method"`
	MatchResultDisplay     string                   `json:"match_result_display"`
	MatchTime              string                   `json:"match_time"`
	Championship           string                   `json:"match_championship"`
	Visibility             domain.MatchVisibility   `json:"match_visibility"`
}

func (d *matchDTO) toInput() *service.MatchInput {
	if d == nil {
		return nil
	}
	return &service.MatchInput{
		Sides:                  d.Sides,
		WinningSideIndex:       d.WinningSideIndex,
		IndividualResults:      d.IndividualResults,
		TeamResults:            d.TeamResults,
		SyncTeamsToIndividuals: d.SyncTeamsToIndividuals,
		MatchResult:            d.MatchResult,
		WinnerMethod:           d.WinnerMethod,
		MatchResultDisplay:     d.MatchResultDisplay,
		MatchTime:              d.MatchTime,
		Championship:           d.Championship,
		Visibility:             d.Visibility,
	}
}

type segmentDTO struct {
	Position int       `json:"position"`
	Type     string    `json:"type"`
	Header   string    `json:"header"`
	Summary  string    `json:"summary"`
	Match    *matchDTO `json:"match,omitempty"`
}

func (d segmentDTO) toInput() service.SegmentInput {
	return service.SegmentInput{
		Position: d.Position,
		Type:     d.Type,
		Header:   d.Header,
		Summary:  d.Summary,
		Match:    d.Match.toInput(),
	}
}

type segmentViewDTO struct {
	Position            int    `json:"position"`
	Type                string `json:"type"`
	Header              string `json:"header"`
	MatchID             string `json:"match_id,omitempty"`
	ParticipantsDisplay string `json:"participants_display,omitempty"`
	MatchResult         string `json:"match_result,omitempty"`
	MatchResultDisplay  string `json:"match_result_display,omitempty"`
	Summary             string `json:"summary,omitempty"`
}

type divisionDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type prefsDTO struct {
	LeagueName          string `json:"league_name"`
	LeagueShort         string `json:"league_short"`
	ShowNonMatchHeaders bool   `json:"show_non_match_headers"`
	ShowQuickResults    bool   `json:"show_quick_results"`
	ShowRecords         bool   `json:"show_records"`
	RosterSortOrder     string `json:"roster_sort_order"`
	AIProvider          string `json:"ai_provider"`
	AIModel             string `json:"ai_model"`
	GameDateMode        string `json:"game_date_mode"`
	GameDate            string `json:"game_date"`
	WeightUnit          string `json:"weight_unit"`
}

func (d prefsDTO) toDomain() domain.Preferences {
	return domain.Preferences(d)
}

func toPrefsDTO(p domain.Preferences) prefsDTO {
	return prefsDTO(p)
}
