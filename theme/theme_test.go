package theme

import (
	"errors"
	"strings"
	"testing"
)

func TestDefineColorCSS(t *testing.T) {
	t.Parallel()
	got := DefineColor("#fff", "#000").CSS()
	if want := "light-dark(#fff, #000)"; got != want {
		t.Fatalf("CSS() = %q, want %q", got, want)
	}
}

func TestDefineColorVariantsSteps(t *testing.T) {
	t.Parallel()
	shades := DefineColorVariants(Red, RedDarkA, RedDark, RedA, Red)

	tests := []struct {
		shade string
		want  Color
	}{
		{DefaultShade, Color{Light: Red[1], Dark: RedDarkA[1]}},
		{"is-default", Color{Light: Red[10], Dark: RedDarkA[10]}},
		{"is-solid", Color{Light: RedDark[8], Dark: RedDarkA[8]}},
		{"foreground", Color{Light: RedA[11], Dark: RedDarkA[11]}},
		{"border", Color{Light: Red[5], Dark: RedDarkA[5]}},
	}
	for _, tt := range tests {
		if got := shades[tt.shade]; got != tt.want {
			t.Errorf("shade %q = %+v, want %+v", tt.shade, got, tt.want)
		}
	}
	if len(shades) != len(tests) {
		t.Errorf("got %d shades, want %d", len(shades), len(tests))
	}
}

func TestScaleStepOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("Step(13) should panic")
		}
	}()
	Mauve.Step(13)
}

func TestLookup(t *testing.T) {
	t.Parallel()
	p := Default()

	c, err := p.Lookup("muted")
	if err != nil {
		t.Fatalf("Lookup(muted) unexpected error: %v", err)
	}
	if c != DefineColor(Mauve.Step(3), MauveDark.Step(3)) {
		t.Errorf("Lookup(muted) = %+v", c)
	}
	if _, err := p.Lookup("info-is-solid"); err != nil {
		t.Errorf("Lookup(info-is-solid) unexpected error: %v", err)
	}
	if _, err := p.Lookup("surface"); !errors.Is(err, ErrUnknownColor) {
		t.Errorf("Lookup(surface) error = %v, want ErrUnknownColor", err)
	}
}

func TestNamesOrder(t *testing.T) {
	t.Parallel()
	names := Default().Names()

	if names[0] != "muted" || names[1] != "muted-is-default" {
		t.Fatalf("Names() should start with muted shades, got %v", names[:2])
	}
	want := []string{"destructive", "destructive-border", "destructive-foreground", "destructive-is-default", "destructive-is-solid"}
	joined := strings.Join(names, " ")
	if !strings.Contains(joined, strings.Join(want, " ")) {
		t.Errorf("Names() = %v, want DEFAULT first then alphabetical for destructive", names)
	}
}

func TestCSS(t *testing.T) {
	t.Parallel()
	css := Default().CSSString()

	for _, want := range []string{
		":root {\n  color-scheme: light dark;",
		"--color-muted: light-dark(#f2eff3, #232225);",
		"--destructive-border: light-dark(#fdbdbe, #ff3e5668);",
		"--color-destructive-foreground: light-dark(#55000de8, #ffd1d9);",
		"--color-info: light-dark(#f4faff, #1166fb18);",
		".dark {\n  color-scheme: dark;\n}",
		".bg-destructive-is-solid { background-color: var(--color-destructive-is-solid); }",
		".text-info-is-default { color: var(--color-info-is-default); }",
		".border-success { border-color: var(--color-success); }",
		".hover\\:bg-info:hover { background-color: var(--color-info); }",
		".focus\\:ring-ring:focus { --tw-ring-color: var(--color-ring); }",
		".prose h1 { letter-spacing: 0.2em; line-height: 1.2; font-size: 2.25rem; }",
		"@media (min-width: 768px) { .prose h1 { font-size: 3rem; } }",
		".prose h5, .prose h6 { letter-spacing: 0em; line-height: 1.625; font-size: 1.125rem; }",
		".prose-2xl p { line-height: 2; font-size: 1.125rem; }",
	} {
		if !strings.Contains(css, want) {
			t.Errorf("CSS missing %q", want)
		}
	}
	if strings.Contains(css, "--muted-border") {
		t.Errorf("muted has no border variable")
	}
	if again := Default().CSSString(); again != css {
		t.Errorf("CSS output is not deterministic")
	}
}

func TestCSSUnknownTypographyKey(t *testing.T) {
	t.Parallel()
	p := Default()
	p.Prose = []ProseScale{{Rules: []ProseRule{{Selector: "h1", LineHeight: "enormous"}}}}

	var sb strings.Builder
	if err := p.CSS(&sb); err == nil {
		t.Fatalf("CSS should fail for an unknown line height")
	}
}
