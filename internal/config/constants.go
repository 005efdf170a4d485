package config

import "time"

const (
	envPort           = "PORT"
	envSourceMode     = "SOURCE_MODE"
	envAdminToken     = "ADMIN_TOKEN"
	envResultsURL     = "RESULTS_URL"
	envResultsTTL     = "RESULTS_TTL"
	envScheduleBase   = "SCHEDULE_BASE_URL"
	envScheduleTTL    = "SCHEDULE_TTL"
	envScheduleTZ     = "SCHEDULE_TZ"
	envStreamsBase    = "STREAMS_BASE_URL"
	envFetchTimeout   = "FETCH_TIMEOUT"
	envMatchThreshold = "MATCH_THRESHOLD"
	envMetricsPort    = "METRICS_PORT"
	envMetricsOn      = "METRICS_ENABLED"
	envOtelEndpoint   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService    = "OTEL_SERVICE_NAME"
	envOtelInsecure   = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort = "4000"
	// Deterministic fixture data unless real source URLs are configured.
	defaultSourceMode = "fixture"
	// Results scrape is more volatile than the schedule feed; the TTLs are
	// deliberately independent.
	defaultResultsTTL  = 3 * Duration(time.Minute)
	defaultScheduleTTL = 2 * Duration(time.Minute)
	// Outbound fetches are individually bounded; upstreams are slow HTML/JSONP
	// endpoints, not APIs with latency SLOs.
	defaultFetchTimeout = 12 * Duration(time.Second)
	// Empirically-chosen acceptance threshold for the summed similarity score.
	defaultMatchThreshold = 0.6
	defaultMetricsPort    = "9090"
)
