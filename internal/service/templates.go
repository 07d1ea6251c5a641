package service

import (
	"html/template"

	"ringbook/internal/domain"
	"ringbook/internal/storage"
)

type indexPageData struct {
	Prefs  domain.Preferences
	Events []domain.Event
}

type rosterPageData struct {
	Prefs     domain.Preferences
	Wrestlers []domain.Wrestler
	Teams     []domain.TagTeam
}

type championsPageData struct {
	Prefs domain.Preferences
	Belts []domain.Belt
}

type wrestlerPageData struct {
	Prefs    domain.Preferences
	Wrestler domain.Wrestler
}

type teamPageData struct {
	Prefs domain.Preferences
	Team  domain.TagTeam
}

type beltPageData struct {
	Prefs  domain.Preferences
	Belt   domain.Belt
	Reigns []domain.Reign
}

type eventPageData struct {
	Prefs    domain.Preferences
	Event    domain.Event
	Segments []domain.Segment
	Summary  string
}

const layoutHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Prefs.LeagueName}}</title>
</head>
<body>
<header><h1>{{.Prefs.LeagueName}}</h1></header>
<main>
{{template "content" .}}
</main>
<footer><p>{{.Prefs.LeagueShort}}</p></footer>
</body>
</html>`

var templateFuncs = template.FuncMap{
	"slug": storage.Slugify,
}

func sitePageTemplate(name, content string) *template.Template {
	t := template.Must(template.New(name).Funcs(templateFuncs).Parse(layoutHTML))
	template.Must(t.New("content").Parse(content))
	return t
}

var indexTemplate = sitePageTemplate("index", `
<h2>Latest Events</h2>
<ul>
{{range .Events}}<li><a href="event-{{.Name | slug}}.html">{{.Name}}</a> ({{.Date}})</li>
{{else}}<li>No events yet.</li>
{{end}}</ul>`)

var rosterTemplate = sitePageTemplate("roster", `
<h2>Roster</h2>
<ul>
{{range .Wrestlers}}<li><a href="wrestler-{{.Name | slug}}.html">{{.Name}}</a>{{if $.Prefs.ShowRecords}} ({{.SinglesWins}}-{{.SinglesLosses}}-{{.SinglesDraws}}){{end}}</li>
{{end}}</ul>
<h2>Tag Teams</h2>
<ul>
{{range .Teams}}<li><a href="tagteam-{{.Name | slug}}.html">{{.Name}}</a>{{if $.Prefs.ShowRecords}} ({{.Wins}}-{{.Losses}}-{{.Draws}}){{end}}</li>
{{end}}</ul>`)

var eventsTemplate = sitePageTemplate("events", `
<h2>Events</h2>
<ul>
{{range .Events}}<li><a href="event-{{.Name | slug}}.html">{{.Name}}</a> ({{.Date}})</li>
{{end}}</ul>`)

var championsTemplate = sitePageTemplate("champions", `
<h2>Champions</h2>
<ul>
{{range .Belts}}<li><a href="belt-{{.ID}}.html">{{.ChampionTitle}}</a>: {{if .CurrentHolder}}{{.CurrentHolder}}{{else}}Vacant{{end}}</li>
{{end}}</ul>`)

var wrestlerTemplate = sitePageTemplate("wrestler", `
<h2>{{.Wrestler.Name}}</h2>
{{if .Wrestler.Nickname}}<p><em>{{.Wrestler.Nickname}}</em></p>{{end}}
<dl>
<dt>Status</dt><dd>{{.Wrestler.Status}}</dd>
{{if .Wrestler.Height}}<dt>Height</dt><dd>{{.Wrestler.Height}}</dd>{{end}}
{{if .Wrestler.Weight}}<dt>Weight</dt><dd>{{.Wrestler.Weight}} {{.Prefs.WeightUnit}}</dd>{{end}}
{{if .Wrestler.Team}}<dt>Tag Team</dt><dd>{{.Wrestler.Team}}</dd>{{end}}
{{if .Wrestler.Belt}}<dt>Championship</dt><dd>{{.Wrestler.Belt}}</dd>{{end}}
{{if .Prefs.ShowRecords}}<dt>Singles Record</dt><dd>{{.Wrestler.SinglesWins}}-{{.Wrestler.SinglesLosses}}-{{.Wrestler.SinglesDraws}}</dd>
<dt>Tag Record</dt><dd>{{.Wrestler.TagWins}}-{{.Wrestler.TagLosses}}-{{.Wrestler.TagDraws}}</dd>{{end}}
</dl>
{{if .Wrestler.Moves}}<h3>Signature Moves</h3><ul>{{range .Wrestler.Moves}}<li>{{.}}</li>{{end}}</ul>{{end}}`)

var teamTemplate = sitePageTemplate("tagteam", `
<h2>{{.Team.Name}}</h2>
<dl>
<dt>Members</dt><dd>{{range $i, $m := .Team.Members}}{{if $i}}, {{end}}{{$m}}{{end}}</dd>
<dt>Status</dt><dd>{{.Team.Status}}</dd>
{{if .Team.Belt}}<dt>Championship</dt><dd>{{.Team.Belt}}</dd>{{end}}
{{if .Prefs.ShowRecords}}<dt>Record</dt><dd>{{.Team.Wins}}-{{.Team.Losses}}-{{.Team.Draws}}</dd>{{end}}
</dl>`)

var beltTemplate = sitePageTemplate("belt", `
<h2>{{.Belt.ChampionTitle}}</h2>
<p>Current holder: {{if .Belt.CurrentHolder}}{{.Belt.CurrentHolder}}{{else}}Vacant{{end}}</p>
<h3>Title History</h3>
<table>
<tr><th>Champion</th><th>Won</th><th>Lost</th><th>Defenses</th></tr>
{{range .Reigns}}<tr><td>{{.ChampionName}}</td><td>{{.DateWon}}</td><td>{{if .DateLost}}{{.DateLost}}{{else}}Current{{end}}</td><td>{{.Defenses}}</td></tr>
{{end}}</table>`)

var eventTemplate = sitePageTemplate("event", `
<h2>{{.Event.Name}}</h2>
{{if .Event.Subtitle}}<p>{{.Event.Subtitle}}</p>{{end}}
<p>{{.Event.Date}}{{if .Event.Venue}} at {{.Event.Venue}}{{end}}</p>
{{if .Prefs.ShowQuickResults}}<h3>Quick Results</h3>
<ul>
{{range .Segments}}{{if and .MatchID .MatchResultDisplay}}<li>{{.MatchResultDisplay}}</li>
{{end}}{{end}}</ul>{{end}}
<h3>Event Summary</h3>
<pre>{{.Summary}}</pre>`)
