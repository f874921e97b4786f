package fileutil_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/idelchi/aesctr/internal/fileutil"
)

func TestCommit(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	out := filepath.Join(dir, "out")

	if err := os.WriteFile(src, []byte("source"), 0o700); err != nil {
		t.Fatal(err)
	}

	tc, err := fileutil.NewTempContext(src, out)
	if err != nil {
		t.Fatalf("NewTempContext() error = %v", err)
	}

	if !tc.IsExec {
		t.Error("IsExec = false for an executable source")
	}

	if _, err := tc.TmpFile.WriteString("payload"); err != nil {
		t.Fatal(err)
	}

	if err := tc.Commit(out, tc.IsExec); err != nil {
		t.Fatalf("Commit() error = %v", err)
	}

	info, err := os.Stat(out)
	if err != nil {
		t.Fatal(err)
	}

	if info.Mode().Perm() != 0o711 {
		t.Errorf("output mode = %o, want 711", info.Mode().Perm())
	}

	modTime := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)

	size, err := fileutil.FinalizeOutput(out, true, modTime)
	if err != nil {
		t.Fatalf("FinalizeOutput() error = %v", err)
	}

	if size != int64(len("payload")) {
		t.Errorf("size = %d, want %d", size, len("payload"))
	}

	info, err = os.Stat(out)
	if err != nil {
		t.Fatal(err)
	}

	if !info.ModTime().Equal(modTime) {
		t.Errorf("mod time = %v, want %v", info.ModTime(), modTime)
	}
}

func TestCleanupOnError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "src")

	if err := os.WriteFile(src, []byte("source"), 0o600); err != nil {
		t.Fatal(err)
	}

	tc, err := fileutil.NewTempContext(src, filepath.Join(dir, "out"))
	if err != nil {
		t.Fatal(err)
	}

	failure := errors.New("boom")
	tc.CleanupOnError(&failure)

	if _, err := os.Stat(tc.TmpName); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("temp file still present after failed write: %v", err)
	}
}
