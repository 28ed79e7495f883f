// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/flamego/flamego"
)

func TestConfigureEmptyNotFoundHandlerReturnsStatusOnly(t *testing.T) {
	t.Parallel()

	f := flamego.New()
	configureEmptyNotFoundHandler(f)

	req := httptest.NewRequest(http.MethodGet, "/does-not-exist", nil)
	rec := httptest.NewRecorder()
	f.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}

	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty 404 body, got %q", rec.Body.String())
	}
}

func TestParseRuntimeEnv(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"development": true,
		"dev":         true,
		" DEV ":       true,
		"production":  false,
		"prod":        false,
		"":            false,
	}

	for input, want := range tests {
		got, err := parseRuntimeEnv(input)
		if err != nil {
			t.Fatalf("parseRuntimeEnv(%q) failed: %v", input, err)
		}

		if got != want {
			t.Fatalf("parseRuntimeEnv(%q) = %v, want %v", input, got, want)
		}
	}

	if _, err := parseRuntimeEnv("staging"); !errors.Is(err, errInvalidRuntimeEnv) {
		t.Fatalf("expected errInvalidRuntimeEnv, got %v", err)
	}
}

func TestLoadEngine(t *testing.T) {
	t.Parallel()

	t.Run("built-in tables", func(t *testing.T) {
		t.Parallel()

		engine, err := loadEngine("")
		if err != nil {
			t.Fatalf("loadEngine failed: %v", err)
		}

		if len(engine.Categories()) != 3 {
			t.Fatalf("expected 3 categories, got %v", engine.Categories())
		}
	})

	t.Run("missing file fails", func(t *testing.T) {
		t.Parallel()

		if _, err := loadEngine(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
			t.Fatal("expected error for missing reference table file")
		}
	})

	t.Run("invalid file fails", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "tables.yaml")
		if err := os.WriteFile(path, []byte("tables: [not, a, table"), 0o600); err != nil {
			t.Fatalf("failed to write fixture: %v", err)
		}

		if _, err := loadEngine(path); err == nil {
			t.Fatal("expected error for malformed reference table file")
		}
	})
}

func TestNewWebAppRegistersRoutes(t *testing.T) {
	t.Parallel()

	engine, err := loadEngine("")
	if err != nil {
		t.Fatalf("loadEngine failed: %v", err)
	}

	f, err := newWebApp(engine, webOptions{dev: true, csrfSecret: "test", siteName: "Posyandu"})
	if err != nil {
		t.Fatalf("newWebApp failed: %v", err)
	}

	if f == nil {
		t.Fatal("expected flamego instance")
	}
}
