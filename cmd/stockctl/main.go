// Package main is a command-line client for the inventory and task API.
// With MOCK_API=true (the default) every invocation runs against a fresh
// in-process store seeded from the fixture, so writes do not persist.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fairyhunter13/inventory-task-simulator/internal/config"
	"github.com/fairyhunter13/inventory-task-simulator/internal/endpoint"
	"github.com/fairyhunter13/inventory-task-simulator/internal/fixture"
	"github.com/fairyhunter13/inventory-task-simulator/internal/obs"
	"github.com/fairyhunter13/inventory-task-simulator/internal/service"
	"github.com/fairyhunter13/inventory-task-simulator/internal/transport"
)

func main() {
	fs := flag.NewFlagSet("stockctl", flag.ExitOnError)
	configPath := fs.String("config", "", "optional YAML config file")
	verbose := fs.Bool("v", false, "log at the configured level to stderr")
	fs.Usage = func() { usage(fs.Output(), fs) }
	_ = fs.Parse(os.Args[1:])

	cfg, err := config.Load(*configPath)
	if err != nil {
		fail(err)
	}
	level := "WARN"
	if *verbose {
		level = cfg.LogLevel
	}
	obs.Logger = obs.NewLogger(os.Stderr, level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(cfg, os.Stdout)
	if err != nil {
		fail(err)
	}
	if err := a.run(ctx, fs.Args()); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "stockctl: %v\n", err)
	os.Exit(1)
}

type app struct {
	products *service.ProductService
	tasks    *service.TaskService
	pageSize int
	out      io.Writer
}

func newApp(cfg config.Config, out io.Writer) (*app, error) {
	var ep *endpoint.Endpoint
	if cfg.MockAPI {
		seed, err := fixture.Load(cfg.SeedPath)
		if err != nil {
			return nil, err
		}
		ep = endpoint.New(seed)
	}
	tr := transport.FromConfig(cfg, ep)
	return &app{
		products: service.NewProductService(tr),
		tasks:    service.NewTaskService(tr),
		pageSize: cfg.PageSize,
		out:      out,
	}, nil
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	for _, c := range commands {
		if c.name == args[0] {
			return c.run(a, ctx, args[1:])
		}
	}
	return fmt.Errorf("unknown command %q, run stockctl -h for a list", args[0])
}

func usage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "usage: stockctl [-config file] [-v] <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "commands:")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-16s %s\n", c.name, c.help)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "global flags:")
	fs.PrintDefaults()
}
