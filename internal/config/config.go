package config

// Config holds runtime configuration for the server.
type Config struct {
	Port       string
	SourceMode string
	AdminToken string
	Results    ResultsConfig
	Schedule   ScheduleConfig
	Streams    StreamsConfig
	Reconcile  ReconcileConfig
	Metrics    MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:       envOrDefault(envPort, defaultPort),
		SourceMode: envOrDefault(envSourceMode, defaultSourceMode),
		AdminToken: envOrDefault(envAdminToken, ""),
		Results:    loadResults(),
		Schedule:   loadSchedule(),
		Streams:    loadStreams(),
		Reconcile:  loadReconcile(),
		Metrics:    loadMetrics(),
	}
}
