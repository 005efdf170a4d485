// Package reconcile pairs schedule entries with scraped result rows by fuzzy
// name matching and merges their scores.
package reconcile

import (
	"live-match-service/internal/domain"
	"live-match-service/internal/metrics"
	"live-match-service/internal/names"
)

// DefaultThreshold is the minimum combined similarity for a pairing to count
// as a match. Combined similarity sums the league, home, and away components
// and therefore ranges from 0 to 3.
const DefaultThreshold = 0.6

// Scores carries the merged score strings for a matched pairing. Nil means
// the result row had no usable value for that field.
type Scores struct {
	FullTime *string
	HalfTime *string
}

// Reconciler scores schedule entries against result rows.
type Reconciler struct {
	threshold float64
	recorder  *metrics.Recorder
}

// New creates a reconciler. Thresholds at or below zero fall back to the
// default.
func New(threshold float64, recorder *metrics.Recorder) *Reconciler {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Reconciler{threshold: threshold, recorder: recorder}
}

// Reconcile finds the best-scoring result row for the entry. Ties keep the
// first row seen; a best score below the threshold means no match. The
// returned debug record carries the entry's original names and whether a row
// was accepted.
func (r *Reconciler) Reconcile(entry domain.ScheduleEntry, rows []domain.ResultRow) (Scores, domain.MatchDebug) {
	league := names.ApplyAliases(names.CanonicalLeague(entry.League))
	home := names.ApplyAliases(names.CanonicalTeam(entry.Home))
	away := names.ApplyAliases(names.CanonicalTeam(entry.Away))

	// Debug keeps the as-sourced strings, not the normalized search keys.
	debug := domain.MatchDebug{League: entry.League, Home: entry.Home, Away: entry.Away}

	bestScore := 0.0
	bestIdx := -1
	for i, row := range rows {
		score := names.Similarity(league, names.ApplyAliases(names.CanonicalLeague(row.League))) +
			names.Similarity(home, names.ApplyAliases(names.CanonicalTeam(row.Home))) +
			names.Similarity(away, names.ApplyAliases(names.CanonicalTeam(row.Away)))
		if score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}

	if bestIdx < 0 || bestScore < r.threshold {
		r.recorder.RecordReconcile(false)
		return Scores{}, debug
	}

	debug.Found = true
	r.recorder.RecordReconcile(true)

	row := rows[bestIdx]
	return Scores{
		FullTime: scoreValue(row.FullTime),
		HalfTime: scoreValue(row.HalfTime),
	}, debug
}

// scoreValue filters out the placeholder values the results page shows for
// matches without a score yet.
func scoreValue(raw string) *string {
	if raw == "" || raw == "-" {
		return nil
	}
	return &raw
}
