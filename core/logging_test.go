package core

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func restoreLogger(t *testing.T) {
	out, flags := log.Writer(), log.Flags()
	t.Cleanup(func() {
		log.SetOutput(out)
		log.SetFlags(flags)
	})
}

func TestLoggingDiscardedWithoutDebug(t *testing.T) {
	restoreLogger(t)
	dir := filepath.Join(t.TempDir(), "logs")

	if f := setupLoggingIn(dir, false); f != nil {
		f.Close()
		t.Fatal("Expected no log file without debug")
	}
	if log.Writer() != io.Discard {
		t.Errorf("Expected io.Discard, got %v", log.Writer())
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("Expected no log directory, got %v", err)
	}
}

func TestLoggingWritesSessionLine(t *testing.T) {
	restoreLogger(t)
	dir := filepath.Join(t.TempDir(), "logs")

	f := setupLoggingIn(dir, true)
	if f == nil {
		t.Fatal("Expected a log file with debug")
	}
	defer f.Close()
	if w := log.Writer(); w == os.Stdout || w == os.Stderr {
		t.Errorf("Expected file output, got %v", w)
	}

	log.Printf("merge at tick %d", 42)
	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	for _, want := range []string{"logging started", "merge at tick 42"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("Expected %q in log, got %q", want, data)
		}
	}
}

func TestLoggingRotatesOversizedFile(t *testing.T) {
	restoreLogger(t)
	dir := t.TempDir()
	path := filepath.Join(dir, logFileName)
	if err := os.WriteFile(path, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	f := setupLoggingIn(dir, true)
	if f == nil {
		t.Fatal("Expected a log file")
	}
	defer f.Close()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	rotated := 0
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "chaos-") && filepath.Ext(e.Name()) == ".log" {
			rotated++
		}
	}
	if rotated != 1 {
		t.Errorf("Expected 1 rotated file, got %d", rotated)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("Expected a fresh log under %d bytes, got %d", maxLogSize, info.Size())
	}
}
