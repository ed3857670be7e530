package logger

// Standard field names for structured logging.
const (
	FieldComponent = "component"
	FieldFile      = "file"
	FieldOutput    = "output"
	FieldCount     = "count"
	FieldSize      = "size"
	FieldJobs      = "jobs"
	FieldParameter = "parameter"
	FieldFilter    = "filter"
	FieldError     = "error"

	FieldDurationMS = "duration_ms"
)
