package parser

import "log/slog"

// Logger receives the parser's diagnostic output. Attributes are alternating
// key-value pairs, as with log/slog.
//
// The parser logs dropped lenient members at debug level and unsupported
// document versions at warn level. Wrap a *slog.Logger with [NewSlogAdapter]:
//
//	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
//	result, err := parser.ParseWithOptions(
//	    parser.WithFilePath("api.json"),
//	    parser.WithLogger(parser.NewSlogAdapter(logger)),
//	)
type Logger interface {
	Debug(msg string, attrs ...any)
	Warn(msg string, attrs ...any)

	// With returns a Logger that adds attrs to every entry.
	With(attrs ...any) Logger
}

// NopLogger discards everything. It is used when no Logger is configured.
type NopLogger struct{}

func (NopLogger) Debug(string, ...any) {}

func (NopLogger) Warn(string, ...any) {}

func (n NopLogger) With(...any) Logger { return n }

// SlogAdapter logs through a *slog.Logger.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter wraps logger, or slog.Default() when logger is nil.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{logger: logger}
}

func (s *SlogAdapter) Debug(msg string, attrs ...any) { s.logger.Debug(msg, attrs...) }

func (s *SlogAdapter) Warn(msg string, attrs ...any) { s.logger.Warn(msg, attrs...) }

func (s *SlogAdapter) With(attrs ...any) Logger {
	return &SlogAdapter{logger: s.logger.With(attrs...)}
}

var (
	_ Logger = NopLogger{}
	_ Logger = (*SlogAdapter)(nil)
)
