// Package live assembles the consumer-facing match list: schedule entries
// merged with scraped scores and resolved streams.
package live

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/sourcegraph/conc"

	"live-match-service/internal/cache"
	"live-match-service/internal/domain"
	"live-match-service/internal/logging"
	"live-match-service/internal/reconcile"
	"live-match-service/internal/timeutil"
)

// scheduleLookahead controls how far past midnight the next day's schedule is
// pulled in. Evening fixtures land on the next local date key, so a request at
// 22:00 must also see tomorrow's document.
const scheduleLookahead = 20 * time.Hour

// maxConsecutiveFailures is how many schedule fetch failures in a row flip
// readiness, once at least one success has been seen.
const maxConsecutiveFailures = 3

// StreamResolver resolves stream URLs for a set of broadcast rooms.
type StreamResolver interface {
	Resolve(ctx context.Context, roomIDs []int) []domain.Stream
}

// Status is a snapshot of the service's fetch history, used for readiness.
type Status struct {
	LastAttempt         time.Time
	LastSuccess         time.Time
	ConsecutiveFailures int
}

// IsReady reports whether the service can plausibly serve data. Before the
// first attempt the service is considered ready so the probe does not flap
// during startup.
func (s Status) IsReady() bool {
	if s.LastAttempt.IsZero() {
		return true
	}
	return !s.LastSuccess.IsZero() && s.ConsecutiveFailures < maxConsecutiveFailures
}

// Service merges the three sources into match records.
type Service struct {
	results    *cache.Cache[[]domain.ResultRow]
	schedule   *cache.KeyedCache[[]domain.ScheduleEntry]
	streams    StreamResolver
	reconciler *reconcile.Reconciler
	location   *time.Location
	logger     *slog.Logger
	now        func() time.Time

	mu                  sync.Mutex
	lastAttempt         time.Time
	lastSuccess         time.Time
	consecutiveFailures int
}

// NewService wires the service from its collaborators.
func NewService(
	results *cache.Cache[[]domain.ResultRow],
	schedule *cache.KeyedCache[[]domain.ScheduleEntry],
	streams StreamResolver,
	reconciler *reconcile.Reconciler,
	location *time.Location,
	logger *slog.Logger,
) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		results:    results,
		schedule:   schedule,
		streams:    streams,
		reconciler: reconciler,
		location:   location,
		logger:     logger,
		now:        time.Now,
	}
}

// Matches builds the current match list. The schedule is fetched for today
// and, when the lookahead crosses midnight, tomorrow; the two documents are
// merged. Results and schedule load concurrently. An error is returned only
// when every schedule date fails with no stale fallback; a results failure
// just leaves scores unmerged.
func (s *Service) Matches(ctx context.Context) (domain.LiveResponse, error) {
	now := s.now().In(s.location)
	keys := s.dateKeys(now)

	var (
		rows       []domain.ResultRow
		resultsErr error
		perKey     = make([][]domain.ScheduleEntry, len(keys))
		keyErrs    = make([]error, len(keys))
	)

	var wg conc.WaitGroup
	wg.Go(func() {
		rows, resultsErr = s.results.Get(ctx)
	})
	for i, key := range keys {
		i, key := i, key
		wg.Go(func() {
			perKey[i], keyErrs[i] = s.schedule.Get(ctx, key)
		})
	}
	wg.Wait()

	if resultsErr != nil {
		logging.Warn(s.logger, "results unavailable, serving schedule without merged scores",
			"error", resultsErr,
		)
	}

	failed := 0
	for i, err := range keyErrs {
		if err != nil {
			failed++
			logging.Warn(s.logger, "schedule fetch failed",
				slog.String(logging.FieldDateKey, keys[i]),
				"error", err,
			)
		}
	}
	if failed == len(keys) {
		s.recordAttempt(false)
		return domain.LiveResponse{}, fmt.Errorf("live: schedule unavailable for all dates: %w", keyErrs[0])
	}
	s.recordAttempt(true)

	entries := mergeEntries(perKey)
	matches := make([]domain.MatchRecord, len(entries))

	var streamWG conc.WaitGroup
	for i, entry := range entries {
		i, entry := i, entry
		record := s.buildRecord(entry, rows, now)
		matches[i] = record
		if record.Status == domain.StatusLive && len(entry.RoomIDs) > 0 {
			streamWG.Go(func() {
				matches[i].Streams = s.streams.Resolve(ctx, entry.RoomIDs)
			})
		}
	}
	streamWG.Wait()

	return domain.LiveResponse{
		Date:    keys[0],
		Matches: matches,
	}, nil
}

// Refresh invalidates every cache and rebuilds the match list immediately.
func (s *Service) Refresh(ctx context.Context) error {
	s.results.Invalidate()
	s.schedule.InvalidateAll()
	_, err := s.Matches(ctx)
	return err
}

// Status returns the current fetch-history snapshot.
func (s *Service) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Status{
		LastAttempt:         s.lastAttempt,
		LastSuccess:         s.lastSuccess,
		ConsecutiveFailures: s.consecutiveFailures,
	}
}

func (s *Service) buildRecord(entry domain.ScheduleEntry, rows []domain.ResultRow, now time.Time) domain.MatchRecord {
	scores, debug := s.reconciler.Reconcile(entry, rows)

	score := scores.FullTime
	if score == nil && entry.HomeScore != nil && entry.AwayScore != nil {
		native := fmt.Sprintf("%d - %d", *entry.HomeScore, *entry.AwayScore)
		score = &native
	}

	return domain.MatchRecord{
		League:        entry.League,
		Home:          entry.Home,
		HomeLogo:      entry.HomeLogo,
		Away:          entry.Away,
		AwayLogo:      entry.AwayLogo,
		Kickoff:       entry.Kickoff,
		Status:        entry.StatusAt(now),
		Score:         score,
		HalfTimeScore: scores.HalfTime,
		Debug:         debug,
	}
}

// dateKeys returns today's key plus tomorrow's when the lookahead window
// crosses midnight.
func (s *Service) dateKeys(now time.Time) []string {
	today := timeutil.DateKey(now, s.location)
	ahead := timeutil.DateKey(now.Add(scheduleLookahead), s.location)
	if ahead == today {
		return []string{today}
	}
	return []string{today, ahead}
}

func (s *Service) recordAttempt(success bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastAttempt = time.Now()
	if success {
		s.lastSuccess = s.lastAttempt
		s.consecutiveFailures = 0
	} else {
		s.consecutiveFailures++
	}
}

// mergeEntries flattens per-day documents, drops duplicates (a fixture near
// midnight can appear in both days), and orders by kickoff.
func mergeEntries(perKey [][]domain.ScheduleEntry) []domain.ScheduleEntry {
	type fixtureKey struct {
		kickoff    int64
		home, away string
	}
	seen := make(map[fixtureKey]bool)

	var merged []domain.ScheduleEntry
	for _, entries := range perKey {
		for _, entry := range entries {
			k := fixtureKey{kickoff: entry.Kickoff, home: entry.Home, away: entry.Away}
			if seen[k] {
				continue
			}
			seen[k] = true
			merged = append(merged, entry)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Kickoff < merged[j].Kickoff
	})
	return merged
}
