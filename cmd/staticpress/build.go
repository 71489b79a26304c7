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

func runBuild(args []string, out io.Writer) error {
	fs := pflag.NewFlagSet("build", pflag.ContinueOnError)
	configPath := addConfigFlag(fs)
	outDir := fs.StringP("out", "o", "", "output directory (overrides out_dir)")
	gzip := fs.Bool("gzip", false, "write .gz siblings of text outputs")
	zstd := fs.Bool("zstd", false, "write .zst siblings of text outputs")
	drafts := fs.Bool("drafts", false, "include draft posts")
	force := fs.Bool("force", false, "rewrite every output even if unchanged")
	verbose := fs.BoolP("verbose", "v", false, "log every written file")
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
	if *outDir != "" {
		cfg.OutDir = *outDir
	}
	if *drafts {
		cfg.Drafts = true
	}
	if *gzip {
		cfg.Compress = appendMissing(cfg.Compress, "gzip")
	}
	if *zstd {
		cfg.Compress = appendMissing(cfg.Compress, "zstd")
	}

	logOut := io.Discard
	if *verbose {
		logOut = out
	}
	app, err := staticpress.New(cfg, staticpress.WithLogger(log.New(logOut, "", 0)))
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	build := app.Build
	if *force {
		build = app.Rebuild
	}
	report, err := build(ctx)
	if err != nil {
		return err
	}
	printReport(out, app.Config.OutDir, report)
	return nil
}

func appendMissing(list []string, v string) []string {
	for _, s := range list {
		if s == v {
			return list
		}
	}
	return append(list, v)
}
