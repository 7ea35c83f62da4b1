package source

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.pb")
	if err := os.WriteFile(path, []byte{0x1a, 0x00}, 0o600); err != nil {
		t.Fatal(err)
	}
	data, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(data) != 2 {
		t.Errorf("read %d bytes, want 2", len(data))
	}
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.pb"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	// The os sentinel must survive wrapping so the CLI can tell I/O errors
	// from decode errors.
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error %v should wrap os.ErrNotExist", err)
	}
}

func TestADB_Pull_UsesConfiguredBinary(t *testing.T) {
	// A fake adb that copies its source argument to the destination.
	dir := t.TempDir()
	remote := filepath.Join(dir, "remote.pb")
	if err := os.WriteFile(remote, []byte("pulled"), 0o600); err != nil {
		t.Fatal(err)
	}
	fake := filepath.Join(dir, "adb")
	script := "#!/bin/sh\ncp \"$2\" \"$3\"\n"
	if err := os.WriteFile(fake, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}

	local, cleanup, err := ADB{Path: fake, RemotePath: remote}.Pull(context.Background())
	if err != nil {
		t.Fatalf("Pull: %v", err)
	}
	defer cleanup()

	data, err := os.ReadFile(local)
	if err != nil {
		t.Fatalf("reading pulled file: %v", err)
	}
	if string(data) != "pulled" {
		t.Errorf("pulled %q, want %q", data, "pulled")
	}

	cleanup()
	if _, err := os.Stat(local); !os.IsNotExist(err) {
		t.Errorf("cleanup left %s behind", local)
	}
}

func TestADB_Pull_CommandFailure(t *testing.T) {
	dir := t.TempDir()
	fake := filepath.Join(dir, "adb")
	script := "#!/bin/sh\necho 'error: no devices/emulators found' >&2\nexit 1\n"
	if err := os.WriteFile(fake, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}

	_, _, err := ADB{Path: fake}.Pull(context.Background())
	if err == nil {
		t.Fatal("expected error from failing adb")
	}
}
