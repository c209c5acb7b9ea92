package profiling

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/kaspanet/bestchain/infrastructure/logger"
)

func TestStartCPUProfile(t *testing.T) {
	tmpDir, err := ioutil.TempDir("", "profiling")
	if err != nil {
		t.Fatalf("TempDir: %s", err)
	}
	defer os.RemoveAll(tmpDir)

	log := logger.NewBackend().Logger("TEST")
	path := filepath.Join(tmpDir, "cpu.prof")
	stop, err := StartCPUProfile(path, log)
	if err != nil {
		t.Fatalf("StartCPUProfile: %s", err)
	}
	stop()

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("profile was not written: %s", err)
	}
	if info.Size() == 0 {
		t.Errorf("profile is empty")
	}
}

func TestStartCPUProfileBadPath(t *testing.T) {
	log := logger.NewBackend().Logger("TEST")
	_, err := StartCPUProfile(filepath.Join(os.TempDir(), "no-such-dir", "x", "cpu.prof"), log)
	if err == nil {
		t.Errorf("expected an error for an uncreatable profile path")
	}
}
