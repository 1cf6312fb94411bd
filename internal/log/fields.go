package log

// Common field names for structured logging.
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
	FieldOperation  = "operation"

	FieldExpenseID   = "expense_id"
	FieldExpenseDesc = "expense_description"
	FieldAmountCents = "amount_cents"
	FieldCategory    = "category"
	FieldDate        = "date"
	FieldMatches     = "matches"
	FieldMonthKey    = "month_key"
	FieldStorageKey  = "storage_key"
	FieldBackend     = "backend"
)

// Components defines standard component names.
const (
	ComponentApp        = "app"
	ComponentHTTP       = "http"
	ComponentRepository = "repository"
	ComponentStorage    = "storage"
	ComponentKV         = "kv"
	ComponentBackend    = "backend"
)

// Operations defines standard operation names.
const (
	OpCreate   = "create"
	OpDelete   = "delete"
	OpUpdate   = "update"
	OpList     = "list"
	OpLoad     = "load"
	OpSave     = "save"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)
