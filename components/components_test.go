package components

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/eringen/staticpress/variant"
)

const badgeBase = "inline-flex items-center rounded-sm px-2.5 py-0.5 text-xs font-semibold transition-colors focus:outline-none focus:ring-2 focus:ring-ring focus:ring-offset-2"

func TestBadgeClass(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		props BadgeProps
		want  string
	}{
		{"defaults", BadgeProps{}, badgeBase + " bg-muted text-muted-is-default"},
		{"soft destructive", BadgeProps{Variant: "soft", Color: "destructive"}, badgeBase + " bg-destructive text-destructive-is-default"},
		{"outline success", BadgeProps{Variant: "outline", Color: "success"}, badgeBase + " border border-success text-success-is-default hover:bg-success"},
		{"solid default", BadgeProps{Variant: "solid"}, badgeBase + " bg-solid text-solid-is-default"},
		{
			"class override",
			BadgeProps{Class: "px-4 bg-red-500"},
			"inline-flex items-center rounded-sm py-0.5 text-xs font-semibold transition-colors focus:outline-none focus:ring-2 focus:ring-ring focus:ring-offset-2 text-muted-is-default px-4 bg-red-500",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := BadgeClass(tt.props)
			if err != nil {
				t.Fatalf("BadgeClass(%+v) error = %v", tt.props, err)
			}
			if got != tt.want {
				t.Fatalf("BadgeClass(%+v) = %q, want %q", tt.props, got, tt.want)
			}
		})
	}
}

func TestBadgeEveryCombination(t *testing.T) {
	t.Parallel()

	for _, v := range BadgeVariants.Values("variant") {
		for _, c := range BadgeVariants.Values("color") {
			class, err := BadgeClass(BadgeProps{Variant: v, Color: c})
			if err != nil {
				t.Fatalf("BadgeClass(%s, %s) error = %v", v, c, err)
			}
			if class != variant.Merge(class) {
				t.Errorf("BadgeClass(%s, %s) = %q is not merged", v, c, class)
			}
		}
	}
}

func TestBadgeRender(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := Badge(BadgeProps{Color: "info", Attrs: map[string]string{"title": `a "b"`}}, Text("<new>")).Render(context.Background(), &buf)
	if err != nil {
		t.Fatalf("Render error = %v", err)
	}
	got := buf.String()
	if !strings.HasPrefix(got, `<div class="`) || !strings.HasSuffix(got, "&lt;new&gt;</div>") {
		t.Fatalf("Render = %q", got)
	}
	if !strings.Contains(got, "bg-info text-info-is-default") {
		t.Errorf("Render = %q, want info classes", got)
	}
	if !strings.Contains(got, `title="a &#34;b&#34;"`) {
		t.Errorf("Render = %q, want escaped title", got)
	}
}

func TestBadgeRenderInvalid(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := Badge(BadgeProps{Variant: "bogus"}).Render(context.Background(), &buf)
	if !errors.Is(err, variant.ErrInvalidAxisValue) {
		t.Fatalf("Render error = %v, want ErrInvalidAxisValue", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Render wrote %q on error", buf.String())
	}
}

func TestButton(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		props    ButtonProps
		contains []string
		absent   []string
	}{
		{
			name:     "default",
			props:    ButtonProps{},
			contains: []string{"<button ", `type="button"`, "bg-accent", "h-10 px-4 py-2"},
		},
		{
			name:     "link variant has no box",
			props:    ButtonProps{Variant: "link"},
			contains: []string{"h-auto px-0 py-0", "text-accent"},
			absent:   []string{"h-10", "px-4"},
		},
		{
			name:     "href renders anchor",
			props:    ButtonProps{Href: "/posts/", Size: "sm"},
			contains: []string{`<a class="`, `href="/posts/"`, "h-9", "</a>"},
			absent:   []string{"type="},
		},
		{
			name:     "disabled submit",
			props:    ButtonProps{Type: "submit", Disabled: true},
			contains: []string{`type="submit"`, " disabled"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			if err := Button(tt.props, Text("Go")).Render(context.Background(), &buf); err != nil {
				t.Fatalf("Render error = %v", err)
			}
			got := buf.String()
			for _, s := range tt.contains {
				if !strings.Contains(got, s) {
					t.Errorf("Render = %q, want substring %q", got, s)
				}
			}
			for _, s := range tt.absent {
				if strings.Contains(got, s) {
					t.Errorf("Render = %q, unexpected substring %q", got, s)
				}
			}
		})
	}
}

func TestGallery(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Gallery().Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render error = %v", err)
	}
	got := buf.String()
	if n := strings.Count(got, "<div class=\"flex flex-wrap"); n != 4 {
		t.Errorf("rows = %d, want 4", n)
	}
	if !strings.Contains(got, ">outline warning</div>") {
		t.Errorf("Gallery missing outline warning badge")
	}
}
