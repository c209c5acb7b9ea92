// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/btcsuite/btcutil"
	"github.com/jessevdk/go-flags"
	"github.com/kaspanet/bestchain/domain/bestchain"
	"github.com/kaspanet/bestchain/infrastructure/logger"
	"github.com/pkg/errors"
)

const (
	defaultLogLevel       = "info"
	defaultLogDirname     = "logs"
	defaultLogFilename    = "bestchain.log"
	defaultErrLogFilename = "bestchain_err.log"
	defaultWorkMetric     = bestchain.WorkMetricBits

	// StdStream selects standard input or standard output instead of a file.
	StdStream = "-"
)

var (
	// DefaultHomeDir is the default home directory for bestchain.
	DefaultHomeDir = btcutil.AppDataDir("bestchain", false)

	defaultLogDir = filepath.Join(DefaultHomeDir, defaultLogDirname)
)

// Flags defines the configuration options for bestchain.
//
// See LoadConfig for details on the configuration load process.
type Flags struct {
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`
	ConfigFile  string `short:"C" long:"configfile" description:"Path to configuration file"`
	InFile      string `short:"i" long:"infile" description:"File of concatenated 80 byte block headers -- Use - for standard input"`
	OutFile     string `short:"o" long:"outfile" description:"File to write the best chain's 32 byte hashes to -- Use - for standard output"`
	Force       bool   `short:"f" long:"force" description:"Write the binary output even if standard output is a terminal"`
	WorkMetric  string `long:"workmetric" description:"Work each block contributes {bits, target} -- bits adds up the raw difficulty field, target uses 2^256/(target+1)"`
	ReportFile  string `long:"report" description:"Write a YAML summary of all chain tips to this file"`
	LogDir      string `long:"logdir" description:"Directory to log output"`
	NoLogFiles  bool   `long:"nologfiles" description:"Disable logging to files, only log to standard error"`
	DebugLevel  string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`
	CPUProfile  string `long:"cpuprofile" description:"Write CPU profile to the specified file"`
}

// Config defines the configuration options for bestchain.
type Config struct {
	*Flags

	// WorkFunc is the per block work selected by --workmetric.
	WorkFunc bestchain.WorkFunc
}

// ShowSubsystems returns true if the user asked for the list of logging
// subsystems instead of a run.
func (cfg *Config) ShowSubsystems() bool {
	return cfg.DebugLevel == "show"
}

// LogFiles returns the paths of the regular and the error log files, or
// empty strings when logging to files is disabled.
func (cfg *Config) LogFiles() (logFile, errLogFile string) {
	if cfg.NoLogFiles {
		return "", ""
	}
	return filepath.Join(cfg.LogDir, defaultLogFilename), filepath.Join(cfg.LogDir, defaultErrLogFilename)
}

// InitLogs starts the logging backend. The subsystem loggers may be used
// once it returns.
func (cfg *Config) InitLogs() error {
	logFile, errLogFile := cfg.LogFiles()
	return logger.InitLog(logFile, errLogFile)
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	if path == StdStream {
		return path
	}

	// Expand initial ~ to OS specific home directory.
	if strings.HasPrefix(path, "~") {
		homeDir := filepath.Dir(DefaultHomeDir)
		path = strings.Replace(path, "~", homeDir, 1)
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but they variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}

func defaultFlags() *Flags {
	return &Flags{
		InFile:     StdStream,
		OutFile:    StdStream,
		WorkMetric: defaultWorkMetric,
		LogDir:     defaultLogDir,
		DebugLevel: defaultLogLevel,
	}
}

// LoadConfig initializes and parses the config using a config file and
// command line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Pre-parse the command line to check for an alternative config file
//  3. Load configuration file overwriting defaults with any specified options
//  4. Parse CLI options and overwrite/add any specified options
//
// The above results in bestchain functioning properly without any config
// settings while still allowing the user to override settings with config
// files and command line options. Command line options always take
// precedence.
func LoadConfig(args []string) (*Config, error) {
	cfgFlags := defaultFlags()

	// Pre-parse the command line options to see if an alternative config
	// file or the version flag was specified.
	preCfg := *cfgFlags
	preParser := flags.NewParser(&preCfg, flags.HelpFlag|flags.PassDoubleDash)
	_, err := preParser.ParseArgs(args)
	if err != nil {
		return nil, err
	}

	// Show the version and exit if the version flag was specified.
	if preCfg.ShowVersion {
		return &Config{Flags: &preCfg}, nil
	}

	parser := flags.NewParser(cfgFlags, flags.HelpFlag|flags.PassDoubleDash)
	if preCfg.ConfigFile != "" {
		err := flags.NewIniParser(parser).ParseFile(cleanAndExpandPath(preCfg.ConfigFile))
		if err != nil {
			return nil, errors.Wrapf(err, "error parsing config file %s", preCfg.ConfigFile)
		}
	}

	// Parse command line options again to ensure they take precedence.
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		return nil, err
	}
	if len(remainingArgs) > 0 {
		return nil, errors.Errorf("unexpected arguments %s -- headers are read from "+
			"--infile or standard input", strings.Join(remainingArgs, " "))
	}

	cfg := &Config{Flags: cfgFlags}
	err = cfg.validate()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	cfg.InFile = cleanAndExpandPath(cfg.InFile)
	cfg.OutFile = cleanAndExpandPath(cfg.OutFile)
	cfg.LogDir = cleanAndExpandPath(cfg.LogDir)
	if cfg.ReportFile != "" {
		cfg.ReportFile = cleanAndExpandPath(cfg.ReportFile)
	}
	if cfg.CPUProfile != "" {
		cfg.CPUProfile = cleanAndExpandPath(cfg.CPUProfile)
	}

	if cfg.InFile == "" || cfg.OutFile == "" {
		return errors.New("--infile and --outfile may not be empty")
	}
	if cfg.InFile != StdStream && cfg.InFile == cfg.OutFile {
		return errors.Errorf("--infile and --outfile both point to %s", cfg.InFile)
	}

	workFunc, err := bestchain.WorkFuncByName(cfg.WorkMetric)
	if err != nil {
		return errors.Wrap(err, "invalid --workmetric")
	}
	cfg.WorkFunc = workFunc

	// Parse, validate, and set debug log level(s).
	if !cfg.ShowSubsystems() {
		err = logger.ParseAndSetDebugLevels(cfg.DebugLevel)
		if err != nil {
			return errors.Wrap(err, "invalid --debuglevel")
		}
	}
	return nil
}

// IsHelp returns true if err is the error go-flags returns after printing
// the help message.
func IsHelp(err error) bool {
	var flagsErr *flags.Error
	return errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp
}
