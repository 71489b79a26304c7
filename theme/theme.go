// Package theme derives the site colour palette and typography and writes it
// as CSS.
//
// Each semantic role (muted, accent, destructive, ...) owns one or more
// shades; every shade is a light/dark pair emitted as a CSS light-dark()
// value, so the page follows the user's colour scheme without a second
// stylesheet. Utility classes (.bg-*, .text-*, .border-*, .ring-*) are
// generated for every shade name, which is what the Badge and Button
// variant tables refer to.
package theme

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

// ErrUnknownColor is returned when a colour name is not in the palette.
var ErrUnknownColor = errors.New("unknown theme color")

// Scale is a 12-step colour scale.
type Scale [12]string

// Step returns step n (1-based). Out of range steps panic.
func (s Scale) Step(n int) string {
	if n < 1 || n > len(s) {
		panic(fmt.Sprintf("theme: scale step %d out of range", n))
	}
	return s[n-1]
}

// Color is a light/dark colour pair.
type Color struct {
	Light string
	Dark  string
}

// DefineColor pairs a light-mode and a dark-mode colour.
func DefineColor(light, dark string) Color {
	return Color{Light: light, Dark: dark}
}

// CSS renders the pair as a light-dark() value.
func (c Color) CSS() string {
	return "light-dark(" + c.Light + ", " + c.Dark + ")"
}

// DefaultShade is the shade key whose class name is just the role name.
const DefaultShade = "DEFAULT"

// Role is a semantic colour slot with named shades.
type Role struct {
	Name   string
	Shades map[string]Color

	// BorderVar exports the role's border shade as --<name>-border.
	BorderVar bool
}

// ColorName returns the class suffix for a shade, e.g. "destructive" for
// DEFAULT and "destructive-is-solid" for "is-solid".
func (r Role) ColorName(shade string) string {
	if shade == DefaultShade {
		return r.Name
	}
	return r.Name + "-" + shade
}

func (r Role) shadeKeys() []string {
	keys := make([]string, 0, len(r.Shades))
	for k := range r.Shades {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		// DEFAULT first, then alphabetical.
		if keys[i] == DefaultShade || keys[j] == DefaultShade {
			return keys[i] == DefaultShade
		}
		return keys[i] < keys[j]
	})
	return keys
}

// DefineColorVariants builds the five shades of a status role. Light values
// come from the named scales and every dark value from dark:
//
//	DEFAULT     base 2        / dark 2
//	is-default  base 11       / dark 11
//	is-solid    solid 9       / dark 9
//	foreground  foreground 12 / dark 12
//	border      border 6      / dark 6
func DefineColorVariants(base, dark, solid, foreground, border Scale) map[string]Color {
	return map[string]Color{
		DefaultShade: DefineColor(base.Step(2), dark.Step(2)),
		"is-default": DefineColor(base.Step(11), dark.Step(11)),
		"is-solid":   DefineColor(solid.Step(9), dark.Step(9)),
		"foreground": DefineColor(foreground.Step(12), dark.Step(12)),
		"border":     DefineColor(border.Step(6), dark.Step(6)),
	}
}

// Palette is the full theme: colour roles plus typography scales.
type Palette struct {
	Roles         []Role
	LetterSpacing map[string]string
	LineHeight    map[string]string
	Prose         []ProseScale
}

// Default returns the site palette.
func Default() *Palette {
	return &Palette{
		Roles: []Role{
			{Name: "muted", Shades: map[string]Color{
				DefaultShade: DefineColor(Mauve.Step(3), MauveDark.Step(3)),
				"is-default": DefineColor(Mauve.Step(11), MauveDark.Step(11)),
			}},
			{Name: "accent", Shades: map[string]Color{
				DefaultShade: DefineColor(Violet.Step(9), VioletDark.Step(9)),
				"is-default": DefineColor(Violet.Step(12), VioletDark.Step(12)),
			}},
			{Name: "destructive", Shades: DefineColorVariants(Red, RedDarkA, RedDark, RedA, Red), BorderVar: true},
			{Name: "success", Shades: DefineColorVariants(Green, GreenDarkA, GreenDark, Green, Green), BorderVar: true},
			{Name: "warning", Shades: DefineColorVariants(Orange, OrangeDarkA, OrangeDark, Orange, Orange), BorderVar: true},
			{Name: "info", Shades: DefineColorVariants(Blue, BlueDarkA, BlueDark, Blue, Blue), BorderVar: true},
			{Name: "border", Shades: map[string]Color{DefaultShade: DefineColor(Mauve.Step(9), MauveDark.Step(9))}},
			{Name: "input", Shades: map[string]Color{DefaultShade: DefineColor(Mauve.Step(6), MauveDark.Step(6))}},
			{Name: "ring", Shades: map[string]Color{DefaultShade: DefineColor(Violet.Step(8), VioletDark.Step(8))}},
		},
		LetterSpacing: map[string]string{
			"tighter": "-0.05em",
			"tight":   "-0.025em",
			"normal":  "0em",
			"wide":    "0.025em",
			"wider":   "0.2em",
			"widest":  "0.3em",
		},
		LineHeight: map[string]string{
			"tight":       "1.2",
			"snug":        "1.375",
			"normal":      "1.5",
			"relaxed":     "1.625",
			"loose":       "2",
			"extra-loose": "2.5",
			"super-loose": "3",
		},
		Prose: defaultProse(),
	}
}

// Lookup resolves a colour name such as "info" or "info-is-solid".
func (p *Palette) Lookup(name string) (Color, error) {
	for _, r := range p.Roles {
		for shade, c := range r.Shades {
			if r.ColorName(shade) == name {
				return c, nil
			}
		}
	}
	return Color{}, fmt.Errorf("%w: %s", ErrUnknownColor, name)
}

// Names returns every colour name in role order.
func (p *Palette) Names() []string {
	var names []string
	for _, r := range p.Roles {
		for _, shade := range r.shadeKeys() {
			names = append(names, r.ColorName(shade))
		}
	}
	return names
}

// CSS writes the palette stylesheet to w.
func (p *Palette) CSS(w io.Writer) error {
	bw := bufio.NewWriter(w)

	bw.WriteString(":root {\n  color-scheme: light dark;\n")
	for _, r := range p.Roles {
		for _, shade := range r.shadeKeys() {
			fmt.Fprintf(bw, "  --color-%s: %s;\n", r.ColorName(shade), r.Shades[shade].CSS())
		}
	}
	for _, r := range p.Roles {
		if c, ok := r.Shades["border"]; ok && r.BorderVar {
			fmt.Fprintf(bw, "  --%s-border: %s;\n", r.Name, c.CSS())
		}
	}
	bw.WriteString("}\n.dark {\n  color-scheme: dark;\n}\n")

	for _, name := range p.Names() {
		v := "var(--color-" + name + ")"
		fmt.Fprintf(bw, ".bg-%s { background-color: %s; }\n", name, v)
		fmt.Fprintf(bw, ".text-%s { color: %s; }\n", name, v)
		fmt.Fprintf(bw, ".border-%s { border-color: %s; }\n", name, v)
		fmt.Fprintf(bw, ".ring-%s { --tw-ring-color: %s; }\n", name, v)
		fmt.Fprintf(bw, ".hover\\:bg-%s:hover { background-color: %s; }\n", name, v)
		fmt.Fprintf(bw, ".focus\\:ring-%s:focus { --tw-ring-color: %s; }\n", name, v)
	}

	for _, s := range p.Prose {
		if err := s.css(bw, p); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// CSSString is CSS into a string.
func (p *Palette) CSSString() string {
	var sb strings.Builder
	_ = p.CSS(&sb)
	return sb.String()
}
