// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/kaspanet/bestchain/app"
	"github.com/kaspanet/bestchain/infrastructure/config"
	"github.com/kaspanet/bestchain/infrastructure/logger"
	"github.com/kaspanet/bestchain/util/panics"
	"github.com/kaspanet/bestchain/util/profiling"
	"github.com/kaspanet/bestchain/version"
)

func main() {
	if err := bestchainMain(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

// bestchainMain is the real main function for bestchain. It is necessary to
// work around the fact that deferred functions do not run when os.Exit() is
// called.
func bestchainMain(args []string) error {
	cfg, err := config.LoadConfig(args)
	if err != nil {
		if config.IsHelp(err) {
			fmt.Fprintln(os.Stderr, err)
			return nil
		}
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "Use bestchain --help to list the available options")
		return err
	}

	if cfg.ShowVersion {
		fmt.Fprintln(os.Stderr, "bestchain version", version.Version())
		return nil
	}
	if cfg.ShowSubsystems() {
		fmt.Fprintf(os.Stderr, "Supported subsystems %s\n", strings.Join(logger.SupportedSubsystems(), ", "))
		return nil
	}

	err = cfg.InitLogs()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	defer logger.BackendLog.Close()
	defer panics.HandlePanic(log)

	log.Debugf("Version %s", version.Version())

	if cfg.CPUProfile != "" {
		stop, err := profiling.StartCPUProfile(cfg.CPUProfile, log)
		if err != nil {
			log.Errorf("%s", err)
			return err
		}
		defer stop()
	}

	in, err := app.OpenInput(cfg.InFile)
	if err != nil {
		log.Errorf("%s", err)
		return err
	}
	defer in.Close()

	out, err := app.OpenOutput(cfg.OutFile, cfg.Force)
	if err != nil {
		log.Errorf("%s", err)
		return err
	}

	_, err = app.Run(cfg, in, out)
	if err != nil {
		out.Close()
		log.Errorf("%+v", err)
		return err
	}
	err = out.Close()
	if err != nil {
		log.Errorf("Error closing output: %s", err)
		return err
	}
	return nil
}
