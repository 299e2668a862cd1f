package fileutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
)

// lockNamespace scopes the name-based UUIDs that key output-directory locks.
var lockNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("captioner:output-lock"))

const lockRetryDelay = 25 * time.Millisecond

// LockPath returns the lock file guarding writes into dir. It lives under the
// system temp directory, keyed by the absolute directory path, so output
// directories only ever hold the artifacts themselves.
func LockPath(dir string) string {
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	key := uuid.NewSHA1(lockNamespace, []byte(filepath.Clean(dir)))
	return filepath.Join(os.TempDir(), "captioner-"+key.String()+".lock")
}

// WriteFileAtomic replaces path with data. The content is written to a
// temporary file in the same directory and renamed into place while holding
// the directory's lock (see LockPath), so concurrent writers in this or other
// captioner processes never observe a partial artifact.
func WriteFileAtomic(ctx context.Context, path string, data []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("ensure output directory: %w", err)
	}

	lock := flock.New(LockPath(dir))
	locked, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return fmt.Errorf("acquire output lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("acquire output lock: %s busy", dir)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		cleanup()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		cleanup()
		return fmt.Errorf("rename into place: %w", err)
	}
	return nil
}

// OutputPath names the artifact for source: <dir>/<stem>.<lang>.<ext>. An
// empty dir places it next to source; an empty lang omits that part.
func OutputPath(dir, source, lang, ext string) string {
	if strings.TrimSpace(dir) == "" {
		dir = filepath.Dir(source)
	}
	stem := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	name := stem
	if lang = strings.TrimSpace(lang); lang != "" {
		name += "." + lang
	}
	return filepath.Join(dir, name+"."+strings.TrimPrefix(ext, "."))
}
