package server

import (
	"context"
	"log/slog"
	"time"

	"live-match-service/internal/app/live"
	"live-match-service/internal/cache"
	"live-match-service/internal/config"
	"live-match-service/internal/domain"
	"live-match-service/internal/metrics"
	"live-match-service/internal/sources"
	"live-match-service/internal/sources/fixture"
	"live-match-service/internal/sources/results"
	"live-match-service/internal/sources/schedule"
	"live-match-service/internal/sources/streams"
)

const (
	sourceModeFixture = "fixture"
	sourceModeLive    = "live"

	sourceResults  = "results"
	sourceSchedule = "schedule"
)

// sourceSet bundles the fetchers and resolver behind the live service.
type sourceSet struct {
	results  sources.ResultsProvider
	schedule sources.ScheduleProvider
	streams  live.StreamResolver
}

// buildSources picks the upstream wiring for the configured mode. Unknown
// modes fall back to fixture so a misconfigured deploy still boots.
func buildSources(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) sourceSet {
	if cfg.SourceMode != sourceModeLive {
		fix := fixture.New()
		return sourceSet{
			results:  fix,
			schedule: fix,
			streams:  providerResolver{inner: fix, recorder: recorder},
		}
	}

	resultsClient := results.NewClient(results.Config{
		URL:     cfg.Results.URL,
		Timeout: time.Duration(cfg.Results.Timeout),
	})
	scheduleClient := schedule.NewClient(schedule.Config{
		BaseURL: cfg.Schedule.BaseURL,
		Timeout: time.Duration(cfg.Schedule.Timeout),
	})
	resolver := streams.NewResolver(streams.Config{
		BaseURL: cfg.Streams.BaseURL,
		Timeout: time.Duration(cfg.Streams.Timeout),
	}, recorder)

	return sourceSet{
		results:  resultsClient,
		schedule: sources.NewRetryingSchedule(scheduleClient, logger, 0, 0),
		streams:  resolver,
	}
}

// buildCaches places the stale-serving caches in front of the fetchers,
// recording per-source attempt metrics around every refresh.
func buildCaches(cfg config.Config, set sourceSet, logger *slog.Logger, recorder *metrics.Recorder) (*cache.Cache[[]domain.ResultRow], *cache.KeyedCache[[]domain.ScheduleEntry]) {
	resultsCache := cache.New(sourceResults, time.Duration(cfg.Results.TTL), func(ctx context.Context) ([]domain.ResultRow, error) {
		start := time.Now()
		rows, err := set.results.FetchResults(ctx)
		recorder.RecordSourceAttempt(sourceResults, time.Since(start), err)
		return rows, err
	}, logger, recorder)

	scheduleCache := cache.NewKeyed(sourceSchedule, time.Duration(cfg.Schedule.TTL), func(ctx context.Context, key string) ([]domain.ScheduleEntry, error) {
		start := time.Now()
		entries, err := set.schedule.FetchSchedule(ctx, key)
		recorder.RecordSourceAttempt(sourceSchedule, time.Since(start), err)
		return entries, err
	}, logger, recorder)

	return resultsCache, scheduleCache
}

// providerResolver adapts a per-room stream provider to the resolver contract.
// Used for the fixture mode, where fan-out is pointless.
type providerResolver struct {
	inner    sources.StreamProvider
	recorder *metrics.Recorder
}

func (p providerResolver) Resolve(ctx context.Context, roomIDs []int) []domain.Stream {
	var found []domain.Stream
	for _, roomID := range roomIDs {
		streams, err := p.inner.FetchRoomStreams(ctx, roomID)
		p.recorder.RecordStreamRoom(err)
		if err != nil {
			continue
		}
		found = append(found, streams...)
	}
	return found
}
