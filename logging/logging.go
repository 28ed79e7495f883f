/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package logging

import (
	"fmt"
	stdlog "log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Log source tags used in structured logger contexts.
const (
	SourceApp        = "app"
	SourceWeb        = "web"
	SourceWebRequest = "web_request"
	SourceDB         = "db"
	SourceExport     = "export"
)

// Output formats accepted by ParseFormat.
const (
	FormatLogfmt = "logfmt"
	FormatJSON   = "json"
	FormatText   = "text"
)

// Options is the runtime logging configuration set from CLI flags.
type Options struct {
	Debug  bool
	Format string
}

var (
	initOnce   sync.Once
	baseLogger *log.Logger

	// Source loggers are package-level variables created at init time,
	// before flags are parsed, so Configure has to reach each of them.
	mu      sync.Mutex
	sources []*log.Logger
)

// Init creates the base logger at info level with logfmt output and routes
// the stdlib log package through it.
func Init() {
	initOnce.Do(func() {
		baseLogger = log.NewWithOptions(os.Stdout, log.Options{
			TimeFunction:    log.NowUTC,
			TimeFormat:      time.RFC3339Nano,
			Level:           log.InfoLevel,
			ReportTimestamp: true,
			Formatter:       log.LogfmtFormatter,
		})

		stdLogger := sourceLogger(SourceApp).StandardLog(log.StandardLogOptions{ForceLevel: log.InfoLevel})

		stdlog.SetFlags(0)
		stdlog.SetOutput(stdLogger.Writer())
	})
}

// ParseFormat maps a format name to a charmbracelet formatter. Empty means
// logfmt.
func ParseFormat(name string) (log.Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", FormatLogfmt:
		return log.LogfmtFormatter, nil
	case FormatJSON:
		return log.JSONFormatter, nil
	case FormatText:
		return log.TextFormatter, nil
	default:
		return log.LogfmtFormatter, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Configure applies level and format to the base logger and to every
// source logger handed out so far.
func Configure(opts Options) error {
	formatter, err := ParseFormat(opts.Format)
	if err != nil {
		return err
	}

	level := log.InfoLevel
	if opts.Debug {
		level = log.DebugLevel
	}

	Init()

	mu.Lock()
	defer mu.Unlock()

	for _, l := range append([]*log.Logger{baseLogger}, sources...) {
		l.SetLevel(level)
		l.SetFormatter(formatter)
	}

	return nil
}

func sourceLogger(source string) *log.Logger {
	mu.Lock()
	defer mu.Unlock()

	l := baseLogger.With("source", source)
	sources = append(sources, l)

	return l
}

// Logger returns a logger tagged with the provided source.
func Logger(source string) *log.Logger {
	Init()
	return sourceLogger(source)
}

// StdLogger returns a stdlib logger that writes through a source logger.
func StdLogger(source string) *stdlog.Logger {
	Init()
	return sourceLogger(source).StandardLog(log.StandardLogOptions{ForceLevel: log.InfoLevel})
}
