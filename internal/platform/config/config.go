package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// Server captures process-level configuration. Lending bounds are not here
// on purpose: they are business policy compiled into the decision package,
// not deployment knobs.
type Server struct {
	Addr     string
	Env      string
	LogLevel slog.Level
}

// FromEnv builds a Server config from environment variables so main stays
// lean. A .env file in the working directory is loaded first when present
// (development convenience; real environments set variables directly).
func FromEnv() Server {
	_ = godotenv.Load()

	addr := os.Getenv("OTSUS_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	env := os.Getenv("OTSUS_ENV")
	if env == "" {
		env = "development"
	}

	return Server{
		Addr:     addr,
		Env:      env,
		LogLevel: parseLogLevel(os.Getenv("OTSUS_LOG_LEVEL")),
	}
}

func parseLogLevel(raw string) slog.Level {
	switch raw {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
