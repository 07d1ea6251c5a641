package domain

// Result is the outcome recorded for a single wrestler or team in a match.
type Result string

const (
	ResultWin       Result = "Win"
	ResultLoss      Result = "Loss"
	ResultDraw      Result = "Draw"
	ResultNoContest Result = "No Contest"
)

// ValidResults lists every result value the booker may assign.
var ValidResults = []Result{ResultWin, ResultLoss, ResultDraw, ResultNoContest}

func (r Result) Valid() bool {
	for _, v := range ValidResults {
		if r == v {
			return true
		}
	}
	return false
}

// MatchClass is derived from side cardinalities, never stored as user input.
type MatchClass string

const (
	ClassSingles     MatchClass = "singles"
	ClassTag         MatchClass = "tag"
	ClassBattleRoyal MatchClass = "battle_royal"
	ClassOther       MatchClass = "other"
)

const (
	StatusActive    = "Active"
	StatusInactive  = "Inactive"
	StatusInjured   = "Injured"
	StatusSuspended = "Suspended"
	StatusRetired   = "Retired"
)

const (
	EventFuture    = "Future"
	EventPast      = "Past"
	EventCancelled = "Cancelled"
)

const (
	HolderSingles = "Singles"
	HolderTagTeam = "Tag-Team"
)

const (
	SegmentMatch        = "Match"
	SegmentPromo        = "Promo"
	SegmentInterview    = "Interview"
	SegmentInRing       = "In-ring"
	SegmentBrawl        = "Brawl"
	SegmentVideoPackage = "Video Package"
)

// SegmentTypes lists the accepted segment type values in card order.
var SegmentTypes = []string{
	SegmentMatch, SegmentPromo, SegmentInterview,
	SegmentInRing, SegmentBrawl, SegmentVideoPackage,
}

type Wrestler struct {
	Name      string
	Status    string
	Division  string // division ID
	Nickname  string
	Location  string
	Height    string
	Weight    string // numeric string, unit applied at display time
	DOB       string
	Alignment string
	Music     string
	Faction   string
	Manager   string
	RealName  string
	StartDate string

	Moves           []string
	Awards          []string
	Salary          []string
	WrestlingStyles []string

	// Back-references maintained by the tag-team and belt services.
	Team string
	Belt string

	SinglesWins   int
	SinglesLosses int
	SinglesDraws  int
	TagWins       int
	TagLosses     int
	TagDraws      int

	HideFromFanRoster bool
}

// HasRecord reports whether any win/loss/draw counter is non-zero. Wrestlers
// with a record cannot be deleted.
func (w *Wrestler) HasRecord() bool {
	return w.SinglesWins != 0 || w.SinglesLosses != 0 || w.SinglesDraws != 0 ||
		w.TagWins != 0 || w.TagLosses != 0 || w.TagDraws != 0
}

type TagTeam struct {
	Name      string
	Members   []string // 2-3 wrestler names, ordered
	Status    string
	Division  string
	Location  string
	Weight    string // derived: sum of numeric member weights
	Alignment string
	Music     string
	Faction   string
	Manager   string
	Moves     []string
	Awards    []string
	Belt      string

	Wins   int
	Losses int
	Draws  int

	HideFromFanRoster bool
}

func (t *TagTeam) HasRecord() bool {
	return t.Wins != 0 || t.Losses != 0 || t.Draws != 0
}

type Belt struct {
	ID            string
	ChampionTitle string
	HolderType    string // Singles or Tag-Team
	CurrentHolder string // empty = vacant
	Status        string // Active or Inactive
}

// Reign is one entry in a belt's append-only history ledger. DateLost is
// empty while the reign is active; at most one reign per belt may be active.
type Reign struct {
	ReignID      string
	BeltID       string
	ChampionName string
	DateWon      string // ISO date
	DateLost     string // empty = active
	Defenses     int
}

func (r *Reign) Active() bool { return r.DateLost == "" }

type Event struct {
	Name         string
	Subtitle     string
	Status       string // Future, Past, Cancelled
	Date         string // ISO date
	Venue        string
	Location     string
	Broadcasters string
	Finalized    bool
	SummaryFile  string // set at finalization
}

type Segment struct {
	Position    int
	Type        string
	Header      string
	SummaryFile string

	// Match-only fields, empty for other segment types. The card-facing
	// display strings are denormalized onto the segment so list views never
	// need the full match record.
	MatchID             string
	ParticipantsDisplay string
	MatchResult         string
	MatchResultDisplay  string
}

type MatchVisibility struct {
	HideFromCard bool `json:"hide_from_card"`
	HideSummary  bool `json:"hide_summary"`
	HideResult   bool `json:"hide_result"`
}

// Match is the result record owned 1:1 by a Match-type segment.
type Match struct {
	MatchID         string
	SegmentPosition int

	// Sides is the participant structure: each side is an ordered list of
	// wrestler names. A side with more than one name is an implicit tag
	// grouping whether or not a registered team matches it.
	Sides [][]string

	Class MatchClass // recomputed on every save

	IndividualResults map[string]Result
	TeamResults       map[string]Result
	WinningSideIndex  int // -1 when no single winning side

	SyncTeamsToIndividuals bool
	MatchResult            string // overall result text, e.g. "Draw (time limit)"
	WinnerMethod           string
	MatchResultDisplay     string
	MatchTime              string
	Championship           string // belt ID, empty when nothing on the line

	Visibility MatchVisibility
	Warnings   []string // recomputed on every save, never hand-edited
}

type Division struct {
	ID   string
	Name string
}

// Preferences is the explicit configuration struct passed into components
// that need display toggles. It is never read ambiently.
type Preferences struct {
	LeagueName  string
	LeagueShort string

	ShowNonMatchHeaders bool
	ShowQuickResults    bool
	ShowRecords         bool
	RosterSortOrder     string

	AIProvider string
	AIModel    string

	GameDateMode string // "real-time" or "latest-event-date"
	GameDate     string
	WeightUnit   string
}

// DefaultPreferences mirrors the defaults applied when prefs.json is absent
// or incomplete.
func DefaultPreferences() Preferences {
	return Preferences{
		LeagueName:          "Fantasy Elite Wrestling",
		LeagueShort:         "FEW",
		ShowNonMatchHeaders: true,
		ShowQuickResults:    true,
		ShowRecords:         true,
		RosterSortOrder:     "Alphabetical",
		GameDateMode:        "real-time",
		WeightUnit:          "lbs.",
	}
}
