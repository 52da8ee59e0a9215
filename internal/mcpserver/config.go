package mcpserver

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/erraggy/oasdecode/parser"
)

// serverConfig holds the MCP server's tunables, read once from OASDECODE_*
// environment variables.
type serverConfig struct {
	CacheEnabled       bool
	CacheMaxSize       int
	CacheTTL           time.Duration
	CacheSweepInterval time.Duration

	MaxDepth      int
	MaxInlineSize int64

	// Default and ceiling for the limit argument of the paths and refs tools.
	PathsLimit int
	MaxLimit   int
}

var cfg = loadConfig()

func loadConfig() *serverConfig {
	return &serverConfig{
		CacheEnabled:       env("OASDECODE_CACHE_ENABLED", true, strconv.ParseBool),
		CacheMaxSize:       env("OASDECODE_CACHE_MAX_SIZE", 10, positive(strconv.Atoi)),
		CacheTTL:           env("OASDECODE_CACHE_TTL", 15*time.Minute, positive(time.ParseDuration)),
		CacheSweepInterval: env("OASDECODE_CACHE_SWEEP_INTERVAL", time.Minute, positive(time.ParseDuration)),
		MaxDepth:           env("OASDECODE_MAX_DEPTH", parser.DefaultMaxDepth, positive(strconv.Atoi)),
		MaxInlineSize:      env("OASDECODE_MAX_INLINE_SIZE", int64(10<<20), positive(parseInt64)),
		PathsLimit:         env("OASDECODE_PATHS_LIMIT", 100, positive(strconv.Atoi)),
		MaxLimit:           env("OASDECODE_MAX_LIMIT", 1000, positive(strconv.Atoi)),
	}
}

// env returns the parsed value of the environment variable key, or fallback
// when it is unset. A value that fails to parse is logged and ignored.
func env[T any](key string, fallback T, parse func(string) (T, error)) T {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := parse(raw)
	if err != nil {
		slog.Warn("ignoring invalid environment variable", "key", key, "value", raw, "default", fallback, "error", err) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return v
}

// positive rejects zero and negative results of parse.
func positive[T int | int64 | time.Duration](parse func(string) (T, error)) func(string) (T, error) {
	return func(s string) (T, error) {
		v, err := parse(s)
		if err == nil && v <= 0 {
			err = fmt.Errorf("must be positive, got %v", v)
		}
		return v, err
	}
}

func parseInt64(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}
