package log

const (
	ModeProduction  = "production"
	ModeDevelopment = "development"

	EncodingConsole = "console"
	EncodingJSON    = "json"

	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// ZapConfig holds the logger settings read from config.
type ZapConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type ctxKey string

const (
	// UserIDKey is the context key carrying the scoped user id.
	UserIDKey ctxKey = "user_id"
	// RequestIDKey is the context key carrying the request id.
	RequestIDKey ctxKey = "request_id"
)
