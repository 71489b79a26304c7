package main

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/eringen/staticpress"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	labelStyle   = lipgloss.NewStyle().Width(11).Foreground(lipgloss.AdaptiveColor{Light: "#65636d", Dark: "#b5b2bc"})
	countStyle   = lipgloss.NewStyle().Bold(true)
	changedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#218358", Dark: "#3dd68c"})
	removedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#ce2c31", Dark: "#ff9592"})
)

func printReport(w io.Writer, outDir string, r staticpress.BuildReport) {
	fmt.Fprintln(w, headingStyle.Render("Built "+outDir)+" in "+r.Duration.Round(time.Millisecond).String())
	rows := []struct {
		label string
		n     int
		style lipgloss.Style
	}{
		{"posts", r.Posts, countStyle},
		{"routes", r.Routes, countStyle},
		{"written", r.Written, changedStyle},
		{"unchanged", r.Unchanged, countStyle},
		{"removed", r.Removed, removedStyle},
		{"static", r.Static, countStyle},
		{"resized", r.Resized, countStyle},
	}
	for _, row := range rows {
		style := row.style
		if row.n == 0 {
			style = countStyle
		}
		fmt.Fprintln(w, "  "+labelStyle.Render(row.label)+style.Render(fmt.Sprint(row.n)))
	}
}
