package config

import "live-match-service/internal/timeutil"

// ResultsConfig controls the HTML results source.
type ResultsConfig struct {
	URL     string
	TTL     Duration
	Timeout Duration
}

// ScheduleConfig controls the JSONP schedule source.
type ScheduleConfig struct {
	BaseURL  string
	TTL      Duration
	Timeout  Duration
	Timezone string
}

// StreamsConfig controls the per-room stream detail source.
type StreamsConfig struct {
	BaseURL string
	Timeout Duration
}

// ReconcileConfig controls the match reconciler.
type ReconcileConfig struct {
	Threshold float64
}

func loadResults() ResultsConfig {
	return ResultsConfig{
		URL:     envOrDefault(envResultsURL, ""),
		TTL:     durationEnvOrDefault(envResultsTTL, defaultResultsTTL),
		Timeout: durationEnvOrDefault(envFetchTimeout, defaultFetchTimeout),
	}
}

func loadSchedule() ScheduleConfig {
	return ScheduleConfig{
		BaseURL:  envOrDefault(envScheduleBase, ""),
		TTL:      durationEnvOrDefault(envScheduleTTL, defaultScheduleTTL),
		Timeout:  durationEnvOrDefault(envFetchTimeout, defaultFetchTimeout),
		Timezone: envOrDefault(envScheduleTZ, timeutil.DefaultTimezone),
	}
}

func loadStreams() StreamsConfig {
	return StreamsConfig{
		BaseURL: envOrDefault(envStreamsBase, ""),
		Timeout: durationEnvOrDefault(envFetchTimeout, defaultFetchTimeout),
	}
}

func loadReconcile() ReconcileConfig {
	return ReconcileConfig{
		Threshold: floatEnvOrDefault(envMatchThreshold, defaultMatchThreshold),
	}
}
