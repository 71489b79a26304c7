package theme

import (
	"fmt"
	"io"
	"strings"
)

// mdBreakpoint is the min-width of the md screen.
const mdBreakpoint = "768px"

// ProseRule styles one element selector inside a prose block. Spacing and
// line height name entries of the palette scales; sizes are CSS lengths.
type ProseRule struct {
	Selector      string
	LetterSpacing string
	LineHeight    string
	FontSize      string
	FontSizeMD    string
}

// ProseScale is a named prose size. The unnamed scale styles .prose; a
// named one styles .prose-<name>.
type ProseScale struct {
	Name  string
	Rules []ProseRule
}

func (s ProseScale) class() string {
	if s.Name == "" {
		return ".prose"
	}
	return ".prose-" + s.Name
}

func defaultProse() []ProseScale {
	return []ProseScale{
		{Rules: []ProseRule{
			{Selector: "h1", LetterSpacing: "wider", LineHeight: "tight", FontSize: "2.25rem", FontSizeMD: "3rem"},
			{Selector: "h2", LetterSpacing: "wide", LineHeight: "snug", FontSize: "1.875rem", FontSizeMD: "2.25rem"},
			{Selector: "h3", LetterSpacing: "wide", LineHeight: "normal", FontSize: "1.5rem", FontSizeMD: "1.875rem"},
			{Selector: "h4", LetterSpacing: "wide", LineHeight: "normal", FontSize: "1.25rem", FontSizeMD: "1.5rem"},
			{Selector: "h5, h6", LetterSpacing: "normal", LineHeight: "relaxed", FontSize: "1.125rem", FontSizeMD: "1.25rem"},
			{Selector: "p", LineHeight: "relaxed", FontSize: "1rem"},
		}},
		{Name: "2xl", Rules: []ProseRule{
			{Selector: "h1", LineHeight: "snug", FontSize: "3rem", FontSizeMD: "3.75rem"},
			{Selector: "h2", LineHeight: "normal", FontSize: "2.25rem", FontSizeMD: "3rem"},
			{Selector: "h3", LineHeight: "relaxed", FontSize: "1.875rem", FontSizeMD: "2.25rem"},
			{Selector: "h4", LineHeight: "relaxed", FontSize: "1.5rem", FontSizeMD: "1.875rem"},
			{Selector: "h5, h6", LineHeight: "loose", FontSize: "1.25rem", FontSizeMD: "1.5rem"},
			{Selector: "p", LineHeight: "loose", FontSize: "1.125rem"},
		}},
	}
}

// selectors expands "h5, h6" under the scale class.
func (s ProseScale) selectors(sel string) string {
	var parts []string
	for _, part := range strings.Split(sel, ",") {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, s.class()+" "+part)
		}
	}
	return strings.Join(parts, ", ")
}

func (s ProseScale) css(w io.Writer, p *Palette) error {
	for _, r := range s.Rules {
		sel := s.selectors(r.Selector)
		if _, err := fmt.Fprintf(w, "%s {", sel); err != nil {
			return err
		}
		if r.LetterSpacing != "" {
			v, ok := p.LetterSpacing[r.LetterSpacing]
			if !ok {
				return fmt.Errorf("theme: prose %s: unknown letter spacing %q", sel, r.LetterSpacing)
			}
			fmt.Fprintf(w, " letter-spacing: %s;", v)
		}
		if r.LineHeight != "" {
			v, ok := p.LineHeight[r.LineHeight]
			if !ok {
				return fmt.Errorf("theme: prose %s: unknown line height %q", sel, r.LineHeight)
			}
			fmt.Fprintf(w, " line-height: %s;", v)
		}
		if r.FontSize != "" {
			fmt.Fprintf(w, " font-size: %s;", r.FontSize)
		}
		fmt.Fprint(w, " }\n")
		if r.FontSizeMD != "" {
			fmt.Fprintf(w, "@media (min-width: %s) { %s { font-size: %s; } }\n", mdBreakpoint, sel, r.FontSizeMD)
		}
	}
	return nil
}
