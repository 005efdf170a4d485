package domain

import "time"

// Status describes where a fixture sits relative to its kickoff time.
type Status string

const (
	StatusUpcoming Status = "upcoming"
	StatusLive     Status = "live"
	StatusFinished Status = "finished"
)

// liveWindow is how long after kickoff a fixture is considered live.
// The upper bound is inclusive.
const liveWindow = 2 * time.Hour

// ResultRow is one score line scraped from the results table. League, Home and
// Away are alias-normalized at creation time; FullTime/HalfTime keep the raw
// cell text (the upstream uses "-" as a placeholder for no score).
type ResultRow struct {
	League   string
	Home     string
	Away     string
	FullTime string
	HalfTime string
}

// ScheduleEntry is one fixture from the structured schedule feed. Display
// fields are kept exactly as sourced; normalization happens only inside the
// reconciler.
type ScheduleEntry struct {
	Kickoff   int64 // epoch seconds
	League    string
	Home      string
	HomeLogo  string
	Away      string
	AwayLogo  string
	HomeScore *int
	AwayScore *int
	RoomIDs   []int
}

// StatusAt derives the three-state match status against the given clock.
func (e ScheduleEntry) StatusAt(now time.Time) Status {
	sec := now.Unix()
	switch {
	case sec >= e.Kickoff && sec <= e.Kickoff+int64(liveWindow/time.Second):
		return StatusLive
	case sec > e.Kickoff+int64(liveWindow/time.Second):
		return StatusFinished
	default:
		return StatusUpcoming
	}
}

// Stream is one playable stream URL at a quality tier.
type Stream struct {
	Tier string `json:"tier"`
	URL  string `json:"url"`
}

const (
	TierStandard = "480p"
	TierHighDef  = "1080p"
)

// MatchDebug retains the as-sourced league/team strings the reconciler
// searched for, plus whether a results row was accepted. Diagnostic only.
type MatchDebug struct {
	League string `json:"league"`
	Home   string `json:"home"`
	Away   string `json:"away"`
	Found  bool   `json:"found"`
}

// MatchRecord is the merged, consumer-facing view of one fixture.
type MatchRecord struct {
	League        string     `json:"league"`
	Home          string     `json:"home"`
	HomeLogo      string     `json:"homeLogo"`
	Away          string     `json:"away"`
	AwayLogo      string     `json:"awayLogo"`
	Kickoff       int64      `json:"kickoff"`
	Status        Status     `json:"status"`
	Score         *string    `json:"score"`
	HalfTimeScore *string    `json:"halfTimeScore"`
	Streams       []Stream   `json:"streams"`
	Debug         MatchDebug `json:"matchDebug"`
}

// LiveResponse is the payload served by GET /live.
type LiveResponse struct {
	Date    string        `json:"date"`
	Matches []MatchRecord `json:"matches"`
}
