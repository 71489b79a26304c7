package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/pflag"

	"github.com/eringen/staticpress/theme"
)

func runPalette(args []string, out io.Writer) error {
	fs := pflag.NewFlagSet("palette", pflag.ContinueOnError)
	css := fs.Bool("css", false, "print the theme stylesheet instead of swatches")
	if ok, err := parseFlags(fs, args); !ok {
		return err
	}
	p := theme.Default()
	if *css {
		return p.CSS(out)
	}
	return printPalette(out, p)
}

// printPalette prints one line per colour name: a light and a dark swatch
// followed by the name and both values.
func printPalette(w io.Writer, p *theme.Palette) error {
	names := p.Names()
	width := 0
	for _, n := range names {
		width = max(width, lipgloss.Width(n))
	}
	nameStyle := lipgloss.NewStyle().Width(width + 2)
	for _, name := range names {
		c, err := p.Lookup(name)
		if err != nil {
			return err
		}
		light := lipgloss.NewStyle().Background(swatch(c.Light)).Render("    ")
		dark := lipgloss.NewStyle().Background(swatch(c.Dark)).Render("    ")
		fmt.Fprintf(w, "%s %s  %s%s  %s\n", light, dark, nameStyle.Render(name), c.Light, c.Dark)
	}
	return nil
}

// swatch drops the alpha channel of #rrggbbaa colours, which terminals
// cannot show.
func swatch(hex string) lipgloss.Color {
	if len(hex) == 9 && hex[0] == '#' {
		hex = hex[:7]
	}
	return lipgloss.Color(hex)
}
