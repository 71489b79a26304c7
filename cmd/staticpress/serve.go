package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/eringen/staticpress"
)

func runServe(args []string, out io.Writer) error {
	fs := pflag.NewFlagSet("serve", pflag.ContinueOnError)
	configPath := addConfigFlag(fs)
	addr := fs.StringP("addr", "a", "", "listen address (overrides addr)")
	if ok, err := parseFlags(fs, args); !ok {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected argument: %s", fs.Arg(0))
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if *addr != "" {
		cfg.Addr = *addr
	}

	app, err := staticpress.New(cfg, staticpress.WithLogger(log.New(out, "", log.LstdFlags)))
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return app.Serve(ctx)
}
