package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Setup builds the application logger and sets the global level.
// level accepts zerolog's level names; anything unrecognized falls back
// to info. format "pretty" switches to console output for development,
// any other value keeps JSON lines for log shipping.
func Setup(level, format string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	log := zerolog.New(os.Stdout)
	if format == "pretty" {
		log = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	return log.With().
		Timestamp().
		Caller().
		Str("service", "tutorlane-backend").
		Logger()
}
