// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package db

import (
	"errors"
	"testing"
	"time"

	"github.com/flamego/session"
)

func TestPostgresSessionIniterDefaults(t *testing.T) {
	t.Parallel()

	store, err := PostgresSessionIniter()(testContext())
	if err != nil {
		t.Fatalf("PostgresSessionIniter failed: %v", err)
	}

	pgStore, ok := store.(*PostgresSessionStore)
	if !ok {
		t.Fatalf("expected PostgresSessionStore")
	}

	if pgStore.config.TableName != defaultSessionTable {
		t.Fatalf("expected default table name, got %q", pgStore.config.TableName)
	}

	if pgStore.config.Lifetime != defaultSessionLifetime {
		t.Fatalf("expected default lifetime, got %v", pgStore.config.Lifetime)
	}

	if pgStore.config.Encoder == nil || pgStore.config.Decoder == nil {
		t.Fatalf("expected encoder and decoder to be set")
	}
}

func TestPostgresSessionIniterCustomConfig(t *testing.T) {
	t.Parallel()

	store, err := PostgresSessionIniter()(testContext(), PostgresSessionConfig{
		Lifetime:  time.Hour,
		TableName: "posyandu_sessions",
	})
	if err != nil {
		t.Fatalf("PostgresSessionIniter failed: %v", err)
	}

	pgStore := store.(*PostgresSessionStore)
	if pgStore.config.Lifetime != time.Hour || pgStore.config.TableName != "posyandu_sessions" {
		t.Fatalf("expected custom config to be kept, got %+v", pgStore.config)
	}

	if got := pgStore.table(); got != `"posyandu_sessions"` {
		t.Fatalf("expected quoted table name, got %s", got)
	}
}

func TestPostgresSessionIniterInvalidConfig(t *testing.T) {
	t.Parallel()

	if _, err := PostgresSessionIniter()(testContext(), "invalid"); !errors.Is(err, errInvalidSessionConfig) {
		t.Fatalf("expected invalid config error, got %v", err)
	}
}

func TestPostgresSessionRoundTrip(t *testing.T) {
	resetDatabase(t)
	ctx := testContext()

	store, err := PostgresSessionIniter()(ctx)
	if err != nil {
		t.Fatalf("PostgresSessionIniter failed: %v", err)
	}

	sess, err := store.Read(ctx, "sid-1")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	sess.Set("flash", "saved")

	if err := store.Save(ctx, sess); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if !store.Exist(ctx, "sid-1") {
		t.Fatalf("expected session to exist")
	}

	loaded, err := store.Read(ctx, "sid-1")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if got := loaded.Get("flash"); got != "saved" {
		t.Fatalf("expected flash value, got %v", got)
	}

	if err := store.Destroy(ctx, "sid-1"); err != nil {
		t.Fatalf("Destroy failed: %v", err)
	}

	if store.Exist(ctx, "sid-1") {
		t.Fatalf("expected session to be destroyed")
	}

	var _ session.Store = store
}
