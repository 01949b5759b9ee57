package cas_test

import (
	"os"
	"path/filepath"
	"testing"

	"go.trai.ch/forge/internal/adapters/cas"
)

func TestStore_PutAndGet(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "build-info.json")

	store, err := cas.NewStore(storePath)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	if err := store.Put(":build", "abc123"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := store.Get(":build")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != "abc123" {
		t.Errorf("expected hash abc123, got %q", got)
	}
}

func TestStore_GetUnknownTask(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "build-info.json")

	store, err := cas.NewStore(storePath)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	got, err := store.Get(":never-built")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != "" {
		t.Errorf("expected empty hash for unknown task, got %q", got)
	}
}

func TestStore_Persistence(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "nested", "build-info.json")

	// 1. Create store and save data
	store1, err := cas.NewStore(storePath)
	if err != nil {
		t.Fatalf("NewStore 1 failed: %v", err)
	}
	if err := store1.Put(":test", "xyz"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	// 2. Create new store instance pointing to the same file
	store2, err := cas.NewStore(storePath)
	if err != nil {
		t.Fatalf("NewStore 2 failed: %v", err)
	}

	got, err := store2.Get(":test")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != "xyz" {
		t.Errorf("expected hash xyz, got %q", got)
	}
}

func TestStore_CorruptFile(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "build-info.json")
	if err := os.WriteFile(storePath, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("failed to write corrupt file: %v", err)
	}

	if _, err := cas.NewStore(storePath); err == nil {
		t.Fatal("expected error for corrupt store file, got nil")
	}
}
