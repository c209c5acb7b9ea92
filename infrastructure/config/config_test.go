package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func TestLoadSampleConfigFile(t *testing.T) {
	// find out where the sample config lives
	_, path, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("Failed finding config file path")
	}
	sampleConfigFile := filepath.Join(filepath.Dir(path), "..", "..", "sample-bestchain.conf")

	cfg, err := LoadConfig([]string{"--configfile", sampleConfigFile})
	if err != nil {
		t.Fatalf("Failed loading sample config file: %v", err)
	}

	// Every option in the sample file is commented out, so the defaults
	// must survive.
	if cfg.InFile != StdStream || cfg.OutFile != StdStream {
		t.Errorf("unexpected streams: infile %q outfile %q", cfg.InFile, cfg.OutFile)
	}
	if cfg.WorkMetric != defaultWorkMetric {
		t.Errorf("unexpected work metric %q", cfg.WorkMetric)
	}
}

func TestLoadConfigPrecedence(t *testing.T) {
	tmpDir, err := ioutil.TempDir("", "bestchain")
	if err != nil {
		t.Fatalf("Failed creating a temporary directory: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	configFile := filepath.Join(tmpDir, "test.conf")
	content := "[Application Options]\nworkmetric=target\ninfile=from-file.bin\nnologfiles=1\n"
	err = ioutil.WriteFile(configFile, []byte(content), 0644)
	if err != nil {
		t.Fatalf("Failed writing config file: %v", err)
	}

	cfg, err := LoadConfig([]string{"-C", configFile, "--infile", "from-cli.bin"})
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.WorkMetric != "target" {
		t.Errorf("config file value was not applied: workmetric %q", cfg.WorkMetric)
	}
	if cfg.InFile != "from-cli.bin" {
		t.Errorf("command line did not take precedence: infile %q", cfg.InFile)
	}
	if !cfg.NoLogFiles {
		t.Errorf("nologfiles from config file was not applied")
	}
	logFile, errLogFile := cfg.LogFiles()
	if logFile != "" || errLogFile != "" {
		t.Errorf("log files should be disabled, got %q and %q", logFile, errLogFile)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.WorkFunc == nil {
		t.Fatalf("WorkFunc was not set")
	}
	if cfg.WorkFunc(7).Uint64() != 7 {
		t.Errorf("default work metric should count raw bits")
	}
	if cfg.ShowSubsystems() {
		t.Errorf("ShowSubsystems should be false by default")
	}
	logFile, errLogFile := cfg.LogFiles()
	if filepath.Base(logFile) != defaultLogFilename || filepath.Base(errLogFile) != defaultErrLogFilename {
		t.Errorf("unexpected log files %q and %q", logFile, errLogFile)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown work metric", args: []string{"--workmetric", "chainwork"}},
		{name: "unknown debug level", args: []string{"--debuglevel", "loud"}},
		{name: "unknown subsystem", args: []string{"--debuglevel", "XXXX=debug"}},
		{name: "positional argument", args: []string{"headers.bin"}},
		{name: "same input and output", args: []string{"-i", "chain.bin", "-o", "chain.bin"}},
		{name: "missing config file", args: []string{"-C", filepath.Join(os.TempDir(), "bestchain-does-not-exist.conf")}},
		{name: "unknown flag", args: []string{"--nosuchflag"}},
	}

	for _, test := range tests {
		cfg, err := LoadConfig(test.args)
		if err == nil {
			t.Errorf("%s: expected an error, got config %s", test.name, spew.Sdump(cfg.Flags))
		}
	}
}

func TestLoadConfigSpecialModes(t *testing.T) {
	_, err := LoadConfig([]string{"--help"})
	if !IsHelp(err) {
		t.Errorf("--help: expected a help error, got %v", err)
	}

	cfg, err := LoadConfig([]string{"-V", "--workmetric", "chainwork"})
	if err != nil {
		t.Fatalf("-V: unexpected error %v", err)
	}
	if !cfg.ShowVersion {
		t.Errorf("-V: ShowVersion was not set")
	}

	cfg, err = LoadConfig([]string{"--debuglevel", "show"})
	if err != nil {
		t.Fatalf("--debuglevel=show: unexpected error %v", err)
	}
	if !cfg.ShowSubsystems() {
		t.Errorf("--debuglevel=show: ShowSubsystems should be true")
	}
}

func TestCleanAndExpandPath(t *testing.T) {
	os.Setenv("BESTCHAIN_TEST_DIR", "/tmp/bestchain")
	defer os.Unsetenv("BESTCHAIN_TEST_DIR")

	tests := []struct {
		in   string
		want string
	}{
		{in: StdStream, want: StdStream},
		{in: "$BESTCHAIN_TEST_DIR/headers.bin", want: "/tmp/bestchain/headers.bin"},
		{in: "a/../b/./c", want: filepath.Clean("b/c")},
		{in: "~/x", want: filepath.Join(filepath.Dir(DefaultHomeDir), "x")},
	}

	for _, test := range tests {
		got := cleanAndExpandPath(test.in)
		if got != test.want {
			t.Errorf("cleanAndExpandPath(%q): got %q, want %q", test.in, got, test.want)
		}
	}
}
