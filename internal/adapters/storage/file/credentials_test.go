package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"sarc-client/internal/ports/credentials"
)

func TestCredentialStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credenciales", "sarc.json")
	store, err := NewCredentialStore(path)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	ctx := context.Background()

	if _, err := store.Get(ctx, credentials.KeyToken); !errors.Is(err, credentials.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := store.Set(ctx, credentials.KeyToken, "tok-123"); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, err := store.Get(ctx, credentials.KeyToken)
	if err != nil || got != "tok-123" {
		t.Fatalf("get: %q, err=%v", got, err)
	}

	// El token no debe quedar legible para otros usuarios del sistema.
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("expected 0600, got %o", perm)
	}

	// Otra instancia sobre el mismo path ve lo persistido.
	otro, err := NewCredentialStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if got, err := otro.Get(ctx, credentials.KeyToken); err != nil || got != "tok-123" {
		t.Fatalf("reopen get: %q, err=%v", got, err)
	}

	if err := store.Delete(ctx, credentials.KeyToken); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get(ctx, credentials.KeyToken); !errors.Is(err, credentials.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestCredentialStore_PathRequired(t *testing.T) {
	if _, err := NewCredentialStore("  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}
