// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"flag"
	"io"
	"os"
	"strings"

	"github.com/mitchellh/cli"

	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/views"
)

// DefaultAddr is used when neither -addr nor QUICKLY_VOTE_URL is set
const DefaultAddr = "http://localhost:8001"

// API is everything pollctl calls on the server
type API interface {
	views.API
	Health(ctx context.Context) (*models.HealthResponse, error)
}

// Meta carries what every command shares
type Meta struct {
	Ui         cli.Ui
	NewAPI     func(addr string) API
	ShutdownCh <-chan struct{}

	addr string
}

// FlagSet returns a flag set with the shared -addr flag registered
func (m *Meta) FlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	addr := os.Getenv("QUICKLY_VOTE_URL")
	if addr == "" {
		addr = DefaultAddr
	}
	fs.StringVar(&m.addr, "addr", addr, "API base URL")
	return fs
}

func (m *Meta) API() API {
	return m.NewAPI(m.addr)
}

// Context is canceled when the process is asked to shut down
func (m *Meta) Context() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	if m.ShutdownCh != nil {
		go func() {
			select {
			case <-m.ShutdownCh:
				cancel()
			case <-ctx.Done():
			}
		}()
	}
	return ctx, cancel
}

// output sends a rendered view to the UI without its trailing newline
func (m *Meta) output(render func(io.Writer)) {
	var b strings.Builder
	render(&b)
	m.Ui.Output(strings.TrimRight(b.String(), "\n"))
}

const addrHelp = `
  -addr=<url>  API base URL. Defaults to $QUICKLY_VOTE_URL, then
               ` + DefaultAddr + `.`
