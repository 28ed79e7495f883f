// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"errors"
	"testing"

	"github.com/charmbracelet/log"
)

func TestLoggerInitializers(t *testing.T) {
	t.Parallel()

	Init()

	for _, source := range []string{SourceApp, SourceWeb, SourceWebRequest, SourceDB, SourceExport} {
		if l := Logger(source); l == nil {
			t.Fatalf("Logger(%q) returned nil", source)
		}
	}

	if l := StdLogger(SourceWeb); l == nil {
		t.Fatal("StdLogger returned nil")
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := map[string]log.Formatter{
		"":       log.LogfmtFormatter,
		"logfmt": log.LogfmtFormatter,
		" JSON ": log.JSONFormatter,
		"text":   log.TextFormatter,
	}

	for input, want := range tests {
		got, err := ParseFormat(input)
		if err != nil {
			t.Fatalf("ParseFormat(%q) failed: %v", input, err)
		}

		if got != want {
			t.Fatalf("ParseFormat(%q) = %v, want %v", input, got, want)
		}
	}

	if _, err := ParseFormat("xml"); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
}

// Not parallel: Configure changes process-wide logger state.
func TestConfigureReachesExistingLoggers(t *testing.T) {
	existing := Logger(SourceDB)

	if err := Configure(Options{Debug: true}); err != nil {
		t.Fatalf("Configure failed: %v", err)
	}

	t.Cleanup(func() {
		if err := Configure(Options{}); err != nil {
			t.Fatalf("failed to restore logging: %v", err)
		}
	})

	if existing.GetLevel() != log.DebugLevel {
		t.Fatalf("expected existing logger at debug level, got %v", existing.GetLevel())
	}

	if l := Logger(SourceWeb); l.GetLevel() != log.DebugLevel {
		t.Fatalf("expected new logger to inherit debug level, got %v", l.GetLevel())
	}

	if err := Configure(Options{Format: "xml"}); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}

	if existing.GetLevel() != log.DebugLevel {
		t.Fatal("a rejected configuration must leave the level unchanged")
	}
}
