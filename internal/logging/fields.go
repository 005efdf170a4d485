package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldSource     = "source"
	FieldRequestID  = "request_id"
	FieldPath       = "path"
	FieldMethod     = "method"
	FieldStatusCode = "status_code"
	FieldDateKey    = "date_key"
	FieldRoom       = "room"
	FieldCount      = "count"
	FieldDurationMS = "duration_ms"
)
