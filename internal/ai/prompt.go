package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"ringbook/internal/domain"
	"ringbook/internal/match"
)

const conciseNarrativePrompt = `ACT AS A FAST-PACED, ACTION-FOCUSED COMMENTATOR, providing a concise, move-by-move summary for a wrestling newsletter or match report.
CRITICAL RULES FOR THIS STYLE:
1. **Focus on Action ONLY:** Describe the moves and the immediate flow of momentum.
2. **Elaborate on General Actions:** When a general action (e.g., "several power moves") is implied or given, expand upon it by describing specific moves appropriate to the participants' styles and signature moves (provided in their dossiers). Use generic names for non-signature moves.
3. **STRICTLY EXCLUDE DIRECT MENTION OF STATS/STYLES:** Do not explicitly mention wrestler stats (height, weight), alignment, or wrestling styles in the narrative. Instead, *show* their style through the moves described.
4. **Be Brief and Punchy:** Use short, sharp sentences to drive the action forward without flowery descriptions.`

const standardNarrativePrompt = `Your description of the match should be vivid and reflect the participants' unique styles.
- You MUST incorporate some of their listed Signature Moves into the narrative.
- You SHOULD describe other common wrestling moves that are appropriate for their selected Wrestling Styles (e.g., describe suplexes for a Powerhouse, quick arm-drags for a Luchador, or brawling outside the ring for a Brawler).
- Use the provided physical stats (height, weight) to inform the story of the match where appropriate (e.g., a smaller wrestler using speed against a larger one).
- **CRITICAL RULE:** You must *only* use the specific, branded move names provided in a wrestler's 'Signature Moves' list. For all other moves, you MUST use the generic, common name for that maneuver (e.g., "piledriver," "suplex," "DDT"). You are NOT allowed to invent new branded move names for any wrestler.`

var narrativeStyleInstructions = map[string]string{
	"Standard Commentary": standardNarrativePrompt,
	"Concise":             conciseNarrativePrompt,
	"Dirt Sheet / Tabloid": standardNarrativePrompt,
	"Cinematic":            standardNarrativePrompt,
}

const (
	defaultDetailLevel     = "Brief Summary"
	defaultNarrativeStyle  = "Standard Commentary"
	defaultCommentaryLevel = "None"
)

// Direction is the booker's creative input for one generation run.
type Direction struct {
	FeudSummary      string
	StoryBeats       string
	DetailLevel      string
	NarrativeStyle   string
	IncludeEntrances bool
	CommentaryLevel  string
	PromoSpeaker     string
	PromoStyle       string
}

func (d *Direction) applyDefaults() {
	if d.DetailLevel == "" {
		d.DetailLevel = defaultDetailLevel
	}
	if d.NarrativeStyle == "" {
		d.NarrativeStyle = defaultNarrativeStyle
	}
	if d.CommentaryLevel == "" {
		d.CommentaryLevel = defaultCommentaryLevel
	}
}

// PromptContext bundles everything the prompt builder needs about the
// segment being generated.
type PromptContext struct {
	Event     domain.Event
	Segment   domain.Segment
	Match     *domain.Match
	Direction Direction

	Wrestlers []domain.Wrestler
	Teams     []domain.TagTeam
}

type wrestlerDossier struct {
	Type            string   `json:"Type"`
	Name            string   `json:"Name"`
	Nickname        string   `json:"Nickname"`
	Alignment       string   `json:"Alignment"`
	WrestlingStyles []string `json:"Wrestling_Styles"`
	Belt            string   `json:"Belt"`
	Manager         string   `json:"Manager"`
	Faction         string   `json:"Faction"`
	Height          string   `json:"Height"`
	Weight          string   `json:"Weight"`
	Moves           []string `json:"Moves"`
}

type teamDossier struct {
	Type      string   `json:"Type"`
	Name      string   `json:"Name"`
	Members   []string `json:"Members"`
	Alignment string   `json:"Alignment"`
	Belt      string   `json:"Belt"`
	Manager   string   `json:"Manager"`
	Faction   string   `json:"Faction"`
	Moves     []string `json:"Moves"`
}

// BuildPrompt assembles the full prompt sent to the model: system framing,
// event context, creative direction, participant dossiers and the task.
func BuildPrompt(pc PromptContext) string {
	pc.Direction.applyDefaults()

	var parts []string
	parts = append(parts, "You are an AI assistant for a professional wrestling booking simulator. Your task is to generate a segment summary based on the provided context and creative direction.")
	parts = append(parts, contextBlock(pc)...)

	parts = append(parts, "\n--- Creative Direction ---")
	parts = append(parts, "IN-RING ACTION INSTRUCTIONS:")
	style, ok := narrativeStyleInstructions[pc.Direction.NarrativeStyle]
	if !ok {
		style = standardNarrativePrompt
	}
	parts = append(parts, style, "---")
	parts = append(parts, directionBlock(pc)...)

	if dossiers := buildDossiers(pc); len(dossiers) > 0 {
		parts = append(parts, "\n--- Participant Dossiers ---")
		parts = append(parts, dossiers...)
		parts = append(parts, "--- End Participant Dossiers ---")
	}

	parts = append(parts, "\n--- Task ---")
	parts = append(parts, taskBlock(pc))
	parts = append(parts, "\n--- Generated Segment Summary ---")
	return strings.Join(parts, "\n")
}

// BuildReviewPrompt is the user-facing version shown before generation:
// context and direction only, no system framing or dossiers.
func BuildReviewPrompt(pc PromptContext) string {
	pc.Direction.applyDefaults()

	var parts []string
	parts = append(parts, contextBlock(pc)...)
	parts = append(parts, "\n--- Creative Direction ---")
	parts = append(parts, directionBlock(pc)...)
	return strings.Join(parts, "\n")
}

func contextBlock(pc PromptContext) []string {
	var parts []string
	parts = append(parts, "\n--- Event Context ---")
	parts = append(parts, fmt.Sprintf("Event Name: %s", pc.Event.Name))
	parts = append(parts, fmt.Sprintf("Event Date: %s", pc.Event.Date))
	parts = append(parts, fmt.Sprintf("Segment Position: %d", pc.Segment.Position))
	parts = append(parts, fmt.Sprintf("Segment Type: %s", pc.Segment.Type))
	if pc.Segment.Header != "" {
		parts = append(parts, fmt.Sprintf("Segment Header: %s", pc.Segment.Header))
	}

	switch pc.Segment.Type {
	case domain.SegmentMatch:
		if pc.Match == nil {
			break
		}
		if pc.Match.Championship != "" {
			parts = append(parts, fmt.Sprintf("Championship on the line: %s", pc.Match.Championship))
		}
		if pc.Match.MatchResult != "" {
			parts = append(parts, fmt.Sprintf("Overall Match Result: %s", pc.Match.MatchResult))
		}
		if pc.Match.WinnerMethod != "" {
			parts = append(parts, fmt.Sprintf("Winning Method: %s", pc.Match.WinnerMethod))
		}
		if pc.Match.MatchTime != "" {
			parts = append(parts, fmt.Sprintf("Match Time: %s", pc.Match.MatchTime))
		}
		if pc.Match.Visibility.HideFromCard {
			parts = append(parts, "Match Visibility: Hidden from card")
		}
		if pc.Match.Visibility.HideSummary {
			parts = append(parts, "Match Visibility: Summary hidden from event summary")
		}
		if pc.Match.Visibility.HideResult {
			parts = append(parts, "Match Visibility: Result hidden from card")
		}
	case domain.SegmentPromo:
		if pc.Direction.PromoSpeaker != "" {
			parts = append(parts, fmt.Sprintf("Promo Speaker: %s", pc.Direction.PromoSpeaker))
		}
		if pc.Direction.PromoStyle != "" {
			parts = append(parts, fmt.Sprintf("Promo Style: %s", pc.Direction.PromoStyle))
		}
	}
	return parts
}

func directionBlock(pc PromptContext) []string {
	d := pc.Direction
	var parts []string
	if d.FeudSummary != "" {
		parts = append(parts, fmt.Sprintf("Feud/Storyline Summary: %s", d.FeudSummary))
	}
	if d.StoryBeats != "" {
		parts = append(parts, fmt.Sprintf("Key Story Beats & Desired Outcome: %s", d.StoryBeats))
	}

	switch pc.Segment.Type {
	case domain.SegmentMatch:
		entrances := "No"
		if d.IncludeEntrances {
			entrances = "Yes"
		}
		parts = append(parts,
			fmt.Sprintf("Desired Level of Detail: %s", d.DetailLevel),
			fmt.Sprintf("Narrative Style: %s", d.NarrativeStyle),
			fmt.Sprintf("Include Ring Entrances: %s", entrances),
			fmt.Sprintf("Commentary Level: %s", d.CommentaryLevel),
		)
	case domain.SegmentPromo:
		parts = append(parts,
			fmt.Sprintf("Promo Speaker: %s", d.PromoSpeaker),
			fmt.Sprintf("Promo Style: %s", d.PromoStyle),
		)
		parts = append(parts, nonDefaultDirection(d)...)
	default:
		parts = append(parts, nonDefaultDirection(d)...)
	}
	return parts
}

func nonDefaultDirection(d Direction) []string {
	var parts []string
	if d.DetailLevel != defaultDetailLevel {
		parts = append(parts, fmt.Sprintf("Desired Level of Detail: %s", d.DetailLevel))
	}
	if d.NarrativeStyle != defaultNarrativeStyle {
		parts = append(parts, fmt.Sprintf("Narrative Style: %s", d.NarrativeStyle))
	}
	return parts
}

func taskBlock(pc PromptContext) string {
	task := fmt.Sprintf("Generate a segment summary for Segment %d of %s. The summary should be written in the specified narrative style and detail level, incorporating the feud/storyline context, key story beats, and participant information.",
		pc.Segment.Position, pc.Event.Name)
	switch pc.Segment.Type {
	case domain.SegmentMatch:
		if pc.Direction.IncludeEntrances {
			task += " Describe the entrances."
		}
		if pc.Direction.CommentaryLevel != defaultCommentaryLevel {
			task += fmt.Sprintf(" Weave in commentary appropriate to the '%s' level.", pc.Direction.CommentaryLevel)
		}
	case domain.SegmentPromo:
		task += fmt.Sprintf(" Focus on the promo delivered by %s in a %s style.", pc.Direction.PromoSpeaker, pc.Direction.PromoStyle)
	}
	return task
}

// buildDossiers returns one indented JSON block per match participant, teams
// included. Promos get a dossier for the named speaker.
func buildDossiers(pc PromptContext) []string {
	var names []string
	switch pc.Segment.Type {
	case domain.SegmentMatch:
		if pc.Match != nil {
			names = append(names, match.AllWrestlers(pc.Match.Sides)...)
			names = append(names, match.TeamsInvolved(pc.Match.Sides, pc.Teams)...)
		}
	case domain.SegmentPromo:
		if pc.Direction.PromoSpeaker != "" {
			names = append(names, pc.Direction.PromoSpeaker)
		}
	}

	var dossiers []string
	for _, name := range names {
		if d, ok := dossierFor(name, pc.Wrestlers, pc.Teams); ok {
			dossiers = append(dossiers, d)
		}
	}
	return dossiers
}

func dossierFor(name string, wrestlers []domain.Wrestler, teams []domain.TagTeam) (string, bool) {
	for _, w := range wrestlers {
		if w.Name == name {
			return marshalDossier(wrestlerDossier{
				Type:            "Wrestler",
				Name:            w.Name,
				Nickname:        w.Nickname,
				Alignment:       w.Alignment,
				WrestlingStyles: w.WrestlingStyles,
				Belt:            w.Belt,
				Manager:         w.Manager,
				Faction:         w.Faction,
				Height:          w.Height,
				Weight:          w.Weight,
				Moves:           w.Moves,
			})
		}
	}
	for _, t := range teams {
		if t.Name == name {
			return marshalDossier(teamDossier{
				Type:      "Tag-Team",
				Name:      t.Name,
				Members:   t.Members,
				Alignment: t.Alignment,
				Belt:      t.Belt,
				Manager:   t.Manager,
				Faction:   t.Faction,
				Moves:     t.Moves,
			})
		}
	}
	return "", false
}

func marshalDossier(v any) (string, bool) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", false
	}
	return string(b), true
}
