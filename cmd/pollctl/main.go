// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/mitchellh/cli"

	"github.com/danielhkuo/quickly-vote/client"
)

const version = "1.0.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}

	shutdownCh := make(chan struct{})
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		close(shutdownCh)
	}()

	meta := Meta{
		Ui: &cli.BasicUi{
			Reader:      os.Stdin,
			Writer:      os.Stdout,
			ErrorWriter: os.Stderr,
		},
		NewAPI: func(addr string) API {
			return client.New(addr)
		},
		ShutdownCh: shutdownCh,
	}

	c := cli.NewCLI("pollctl", version)
	c.Args = args
	c.Commands = Commands(meta)
	c.HelpWriter = os.Stdout
	c.ErrorWriter = os.Stderr

	exitStatus, err := c.Run()
	if err != nil {
		meta.Ui.Error(err.Error())
		return 1
	}
	return exitStatus
}
