package tui

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestReadDirJobListsDirectoriesFirst(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "zpapers"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	for _, name := range []string{"b.pdf", "a.pdf", ".hidden"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	msg, err := readDirJob(dir)(context.Background())
	if err != nil {
		t.Fatalf("readDirJob: %v", err)
	}
	loaded, ok := msg.(browseLoadedMsg)
	if !ok {
		t.Fatalf("expected browseLoadedMsg, got %T", msg)
	}
	if len(loaded.entries) != 3 {
		t.Fatalf("expected 3 entries (hidden skipped), got %d", len(loaded.entries))
	}
	if !loaded.entries[0].Dir || loaded.entries[0].Name != "zpapers" {
		t.Fatalf("directories should sort first, got %#v", loaded.entries[0])
	}
	if loaded.entries[1].Name != "a.pdf" || loaded.entries[2].Name != "b.pdf" {
		t.Fatalf("files should sort by name: %#v", loaded.entries[1:])
	}
	if loaded.entries[1].Size != 1 {
		t.Fatalf("file size not captured: %#v", loaded.entries[1])
	}
}

func TestReadDirJobMissingDirectory(t *testing.T) {
	msg, err := readDirJob(filepath.Join(t.TempDir(), "missing"))(context.Background())
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
	loaded, ok := msg.(browseLoadedMsg)
	if !ok {
		t.Fatalf("expected browseLoadedMsg, got %T", msg)
	}
	if loaded.err == nil {
		t.Fatal("payload should carry the error for the UI")
	}
}

func TestJobBusEnvelopesResult(t *testing.T) {
	bus := newJobBus(nil)
	cmd := bus.Start(jobKindBrowse, readDirJob(t.TempDir()))
	if cmd == nil {
		t.Fatal("expected a command from the job bus")
	}
}
