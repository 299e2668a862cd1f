package fileutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func TestWriteFileAtomic(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	path := filepath.Join(dir, "talk.en.srt")

	if err := WriteFileAtomic(context.Background(), path, []byte("first"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic: %v", err)
	}
	if err := WriteFileAtomic(context.Background(), path, []byte("second"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic overwrite: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "second" {
		t.Fatalf("content = %q, want second", got)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "talk.en.srt" {
		names := make([]string, 0, len(entries))
		for _, entry := range entries {
			names = append(names, entry.Name())
		}
		t.Fatalf("output dir should hold only the artifact, got %v", names)
	}
}

func TestLockPath(t *testing.T) {
	dir := t.TempDir()
	lock := LockPath(dir)
	if filepath.Dir(lock) != filepath.Clean(os.TempDir()) {
		t.Fatalf("lock %s should live under %s", lock, os.TempDir())
	}
	if LockPath(dir+string(filepath.Separator)) != lock {
		t.Fatal("equivalent directory paths should share a lock")
	}
	if LockPath(filepath.Join(dir, "other")) == lock {
		t.Fatal("different directories should not share a lock")
	}
}

func TestWriteFileAtomicConcurrentWriters(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shared.srt")

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs <- WriteFileAtomic(context.Background(), path, []byte(fmt.Sprintf("writer-%d", i)), 0o644)
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("concurrent write failed: %v", err)
		}
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(got), "writer-") {
		t.Fatalf("unexpected content %q", got)
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		dir, source, lang, ext string
		want                   string
	}{
		{"", "/data/talk.json", "ar", "srt", "/data/talk.ar.srt"},
		{"/out", "/data/talk.json", "en", ".txt", "/out/talk.en.txt"},
		{"/out", "/data/meeting.notes.yaml", "", "srt", "/out/meeting.notes.srt"},
	}
	for _, tt := range tests {
		if got := OutputPath(tt.dir, tt.source, tt.lang, tt.ext); got != filepath.FromSlash(tt.want) {
			t.Errorf("OutputPath(%q, %q, %q, %q) = %q, want %q", tt.dir, tt.source, tt.lang, tt.ext, got, tt.want)
		}
	}
}
