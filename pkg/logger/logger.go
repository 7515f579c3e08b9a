package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures the global zerolog logger.
//
// In debug mode records go to a console writer at debug level. Otherwise
// records are written as JSON to stdout and everything at warn level or above
// is also appended to logFile. The returned closer releases the file.
func Setup(debug bool, logFile string) (io.Closer, error) {
	zerolog.TimeFieldFormat = time.RFC3339

	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
			With().Timestamp().Caller().Logger()
		return nopCloser{}, nil
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if logFile == "" {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
		return nopCloser{}, nil
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	fileWriter := &zerolog.FilteredLevelWriter{
		Writer: zerolog.LevelWriterAdapter{Writer: f},
		Level:  zerolog.WarnLevel,
	}
	log.Logger = zerolog.New(zerolog.MultiLevelWriter(os.Stdout, fileWriter)).
		With().Timestamp().Caller().Logger()

	return f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
