package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// chunk is a bit over half of 1 MB, so two chunks overflow MaxSizeMB: 1.
var chunk = bytes.Repeat([]byte("x"), 600*1024)

func newTestWriter(t *testing.T, cfg RotationConfig) (*RotatingWriter, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "logs", LogFileName)
	rw, err := NewRotatingWriter(path, cfg)
	if err != nil {
		t.Fatalf("NewRotatingWriter() error = %v", err)
	}
	t.Cleanup(func() { rw.Close() })
	return rw, path
}

func write(t *testing.T, rw *RotatingWriter, p []byte) {
	t.Helper()
	if _, err := rw.Write(p); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
}

func fileSize(t *testing.T, path string) int64 {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat %s: %v", path, err)
	}
	return info.Size()
}

func TestRotatingWriter_NoRotationWhenDisabled(t *testing.T) {
	rw, path := newTestWriter(t, RotationConfig{})

	write(t, rw, chunk)
	write(t, rw, chunk)

	if got := fileSize(t, path); got != int64(2*len(chunk)) {
		t.Errorf("size = %d, want %d", got, 2*len(chunk))
	}
	if _, err := os.Stat(path + ".1"); !os.IsNotExist(err) {
		t.Error("no backup should exist when rotation is disabled")
	}
}

func TestRotatingWriter_Rotates(t *testing.T) {
	rw, path := newTestWriter(t, RotationConfig{MaxSizeMB: 1, MaxBackups: 2})

	write(t, rw, chunk)
	write(t, rw, []byte("second\n"))
	if _, err := os.Stat(path + ".1"); !os.IsNotExist(err) {
		t.Fatal("rotated before the limit was reached")
	}

	write(t, rw, chunk)
	if got := fileSize(t, path); got != int64(len(chunk)) {
		t.Errorf("live size = %d, want %d", got, len(chunk))
	}
	if got := rw.Size(); got != int64(len(chunk)) {
		t.Errorf("Size() = %d, want %d", got, len(chunk))
	}
	backup, err := os.ReadFile(path + ".1")
	if err != nil {
		t.Fatalf("backup .1 missing: %v", err)
	}
	if !strings.HasSuffix(string(backup), "second\n") {
		t.Error("backup .1 should hold the pre-rotation content")
	}
}

func TestRotatingWriter_KeepsMaxBackups(t *testing.T) {
	rw, path := newTestWriter(t, RotationConfig{MaxSizeMB: 1, MaxBackups: 2})

	for i := 0; i < 4; i++ {
		write(t, rw, chunk)
		write(t, rw, chunk)
	}

	for _, n := range []string{".1", ".2"} {
		if _, err := os.Stat(path + n); err != nil {
			t.Errorf("backup %s missing: %v", n, err)
		}
	}
	if _, err := os.Stat(path + ".3"); !os.IsNotExist(err) {
		t.Error("backup .3 should have been pruned")
	}
}

func TestRotatingWriter_NoBackups(t *testing.T) {
	rw, path := newTestWriter(t, RotationConfig{MaxSizeMB: 1})

	write(t, rw, chunk)
	write(t, rw, chunk)

	if _, err := os.Stat(path + ".1"); !os.IsNotExist(err) {
		t.Error("MaxBackups 0 should not keep backups")
	}
	if got := fileSize(t, path); got != int64(len(chunk)) {
		t.Errorf("live size = %d, want %d", got, len(chunk))
	}
}

func TestRotatingWriter_WriteAfterClose(t *testing.T) {
	rw, _ := newTestWriter(t, RotationConfig{})
	if err := rw.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := rw.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if _, err := rw.Write([]byte("late")); err == nil {
		t.Error("Write() after Close() should fail")
	}
}

func TestNewRotatingLogger(t *testing.T) {
	dir := t.TempDir()
	logger, err := NewRotatingLogger(dir, LevelInfo, RotationConfig{MaxSizeMB: 1, MaxBackups: 1})
	if err != nil {
		t.Fatalf("NewRotatingLogger() error = %v", err)
	}

	big := strings.Repeat("y", 300*1024)
	for i := 0; i < 5; i++ {
		logger.Info("filler", "data", big)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, LogFileName+".1")); err != nil {
		t.Errorf("expected a rotated backup: %v", err)
	}
	if size := fileSize(t, filepath.Join(dir, LogFileName)); size > 1024*1024 {
		t.Errorf("live log size = %d, want <= 1 MB", size)
	}
}
