package log

// Common field names for structured logging.
const (
	FieldComponent   = "component"
	FieldOperation   = "operation"
	FieldError       = "error"
	FieldBackend     = "backend"
	FieldPath        = "path"
	FieldTool        = "tool"
	FieldDuration    = "duration_ms"
	FieldYear        = "year"
	FieldGrantee     = "grantee"
	FieldGroupBy     = "group_by"
	FieldResultCount = "result_count"
	FieldRecordCount = "record_count"
)

// Standard component names.
const (
	ComponentApp     = "app"
	ComponentConfig  = "config"
	ComponentLoader  = "loader"
	ComponentGrantee = "grantee"
	ComponentQuery   = "query"
	ComponentServer  = "server"
)
