package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eringen/staticpress"
	"github.com/eringen/staticpress/variant"
)

func TestRunClasses(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{
			[]string{"--component", "badge", "--set", "variant=solid", "--set", "color=info"},
			"inline-flex items-center rounded-sm px-2.5 py-0.5 text-xs font-semibold transition-colors focus:outline-none focus:ring-2 focus:ring-ring focus:ring-offset-2 bg-info-is-default text-info hover:bg-info-is-default",
		},
		{
			[]string{"--component", "button", "--set", "variant=link", "--class", "px-6"},
			"inline-flex items-center justify-center gap-2 whitespace-nowrap rounded-md text-sm font-medium transition-colors focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-ring focus-visible:ring-offset-2 disabled:pointer-events-none disabled:opacity-50 text-accent underline-offset-4 hover:underline h-auto py-0 px-6",
		},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		if err := runClasses(tt.args, &out); err != nil {
			t.Fatalf("runClasses(%q) failed: %v", tt.args, err)
		}
		if got := strings.TrimSpace(out.String()); got != tt.want {
			t.Errorf("runClasses(%q)\n got  %q\n want %q", tt.args, got, tt.want)
		}
	}
}

func TestRunClassesErrors(t *testing.T) {
	tests := []struct {
		args    []string
		wantErr error
	}{
		{[]string{"--set", "variant=loud"}, variant.ErrInvalidAxisValue},
		{[]string{"--set", "shape=round"}, variant.ErrUnknownAxis},
		{[]string{"--component", "card"}, nil},
		{[]string{"--set", "variant"}, nil},
	}
	for _, tt := range tests {
		err := runClasses(tt.args, io.Discard)
		if err == nil {
			t.Errorf("runClasses(%q) should fail", tt.args)
			continue
		}
		if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
			t.Errorf("runClasses(%q) error = %v, want %v", tt.args, err, tt.wantErr)
		}
	}
}

func TestRunClassesList(t *testing.T) {
	var out bytes.Buffer
	if err := runClasses([]string{"--component", "button", "--list"}, &out); err != nil {
		t.Fatal(err)
	}
	want := "variant: default, destructive, outline, secondary, ghost, link (default default)\nsize: default, sm, lg, icon (default default)\n"
	if out.String() != want {
		t.Errorf("list =\n%s\nwant\n%s", out.String(), want)
	}
}

func TestRunPalette(t *testing.T) {
	var out bytes.Buffer
	if err := runPalette(nil, &out); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"info-is-solid", "#0090ff", "muted-is-default"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("palette output missing %q", want)
		}
	}

	out.Reset()
	if err := runPalette([]string{"--css"}, &out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), ":root") {
		t.Error("--css should print the stylesheet")
	}
}

func TestSwatch(t *testing.T) {
	tests := []struct{ in, want string }{
		{"#ff3e5668", "#ff3e56"},
		{"#0090ff", "#0090ff"},
		{"#fff", "#fff"},
	}
	for _, tt := range tests {
		if got := swatch(tt.in); string(got) != tt.want {
			t.Errorf("swatch(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestToTitle(t *testing.T) {
	tests := []struct{ in, want string }{
		{"my-blog", "My Blog"},
		{"myblog", "Myblog"},
		{"a--b", "A  B"},
	}
	for _, tt := range tests {
		if got := toTitle(tt.in); got != tt.want {
			t.Errorf("toTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScaffoldProjectBuilds(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "my-notes")
	if err := scaffoldProject(dir, "en", io.Discard); err != nil {
		t.Fatalf("scaffoldProject failed: %v", err)
	}
	for _, rel := range []string{"staticpress.yaml", ".gitignore", "posts/hello-world.mdx", "posts/draft.mdx", "public/.gitkeep"} {
		if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(rel))); err != nil {
			t.Errorf("missing %s: %v", rel, err)
		}
	}
	if err := scaffoldProject(dir, "en", io.Discard); err == nil {
		t.Error("scaffolding over an existing directory should fail")
	}

	cfg, err := staticpress.LoadConfigFile(filepath.Join(dir, "staticpress.yaml"))
	if err != nil {
		t.Fatalf("scaffolded config does not load: %v", err)
	}
	if cfg.Name != "My Notes" || cfg.Lang != "en" {
		t.Errorf("config = %+v", cfg)
	}
	cfg.ContentDir = filepath.Join(dir, cfg.ContentDir)
	cfg.StaticDir = filepath.Join(dir, cfg.StaticDir)
	cfg.OutDir = filepath.Join(dir, cfg.OutDir)
	cfg.DatabasePath = filepath.Join(dir, ".staticpress", "index.db")

	app, err := staticpress.New(cfg, staticpress.WithLogger(log.New(io.Discard, "", 0)))
	if err != nil {
		t.Fatal(err)
	}
	defer app.Close()
	report, err := app.Build(context.Background())
	if err != nil {
		t.Fatalf("scaffolded project does not build: %v", err)
	}
	if report.Posts != 1 {
		t.Errorf("Posts = %d, want 1 (the draft is skipped)", report.Posts)
	}
	page, err := os.ReadFile(filepath.Join(cfg.OutDir, "posts", "hello-world", "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(page), `<html lang="en">`) {
		t.Error("the post page should carry the configured language")
	}
	if _, err := os.Stat(filepath.Join(cfg.OutDir, "index.html.gz")); err != nil {
		t.Error("the scaffolded config asks for gzip siblings")
	}
}

func TestPrintReport(t *testing.T) {
	var out bytes.Buffer
	printReport(&out, "dist", staticpress.BuildReport{Posts: 2, Routes: 12, Written: 3, Unchanged: 9})
	for _, want := range []string{"dist", "posts", "written", "3", "unchanged", "9"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("report missing %q:\n%s", want, out.String())
		}
	}
}
