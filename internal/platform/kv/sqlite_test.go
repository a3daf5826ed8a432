package kv_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	apperrors "gateprep/internal/platform/errors"
	"gateprep/internal/platform/kv"
)

func TestSQLiteStoreRoundTripAndOverwrite(t *testing.T) {
	t.Parallel()
	dbPath := filepath.Join(t.TempDir(), "nested", "gateprep.db")
	store, err := kv.NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	defer store.Close()
	ctx := context.Background()

	if _, err := store.Get(ctx, "gate_mode_v1"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := store.Set(ctx, "gate_mode_v1", "da"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Set(ctx, "gate_mode_v1", "cse"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, err := store.Get(ctx, "gate_mode_v1")
	if err != nil || got != "cse" {
		t.Fatalf("expected last write to win, got %q (%v)", got, err)
	}
	if err := store.Delete(ctx, "gate_mode_v1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get(ctx, "gate_mode_v1"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

func TestSQLiteStoreSurvivesReopen(t *testing.T) {
	t.Parallel()
	dbPath := filepath.Join(t.TempDir(), "gateprep.db")
	first, err := kv.NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("open first: %v", err)
	}
	if err := first.Set(context.Background(), "k", "v"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	second, err := kv.NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("reopen should not re-run migrations: %v", err)
	}
	defer second.Close()
	got, err := second.Get(context.Background(), "k")
	if err != nil || got != "v" {
		t.Fatalf("expected persisted value, got %q (%v)", got, err)
	}
}

func TestClosedStoreReportsPersistenceError(t *testing.T) {
	t.Parallel()
	store, err := kv.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	_ = store.Close()
	if err := store.Set(context.Background(), "k", "v"); !errors.Is(err, apperrors.ErrPersistence) {
		t.Fatalf("expected persistence error, got %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()
	store := kv.NewMemoryStore()
	ctx := context.Background()
	if _, err := store.Get(ctx, "missing"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	_ = store.Set(ctx, "a", "1")
	if got, _ := store.Get(ctx, "a"); got != "1" {
		t.Fatalf("expected 1, got %q", got)
	}
}
