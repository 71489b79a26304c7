// Package components provides the site's presentational templ components.
// Their class attributes come from variant tables, so every prop
// combination maps to one merged class string.
package components

import (
	"context"
	"io"
	"sort"
	"strings"

	"github.com/a-h/templ"
)

// Text renders s HTML-escaped.
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}

// element writes <tag class=".." attrs...>children</tag>. Attributes are
// written in key order; an empty value renders as a bare attribute.
func element(ctx context.Context, w io.Writer, tag, class string, attrs map[string]string, children []templ.Component) error {
	var b strings.Builder
	b.WriteString("<" + tag)
	if class != "" {
		b.WriteString(` class="` + templ.EscapeString(class) + `"`)
	}
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		if k != "class" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString(" " + templ.EscapeString(k))
		if v := attrs[k]; v != "" {
			b.WriteString(`="` + templ.EscapeString(v) + `"`)
		}
	}
	b.WriteString(">")
	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}
	for _, c := range children {
		if c == nil {
			continue
		}
		if err := c.Render(ctx, w); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</"+tag+">")
	return err
}

// Gallery renders every Badge variant and color, one row per variant.
func Gallery() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, v := range BadgeVariants.Values("variant") {
			var row []templ.Component
			for _, c := range BadgeVariants.Values("color") {
				row = append(row, Badge(BadgeProps{Variant: v, Color: c}, Text(v+" "+c)))
			}
			if err := element(ctx, w, "div", "flex flex-wrap gap-2 bg-surface", nil, row); err != nil {
				return err
			}
		}
		return nil
	})
}
