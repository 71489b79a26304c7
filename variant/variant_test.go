package variant

import (
	"errors"
	"strings"
	"sync"
	"testing"
)

func scenarioConfig() Config {
	return Config{
		Axes: []Axis{
			{
				Name:    "variant",
				Default: "soft",
				Values: []Value{
					{Name: "soft", Tokens: []string{"bg-muted"}},
					{Name: "solid", Tokens: []string{"bg-solid"}},
				},
			},
			{
				Name:    "color",
				Default: "default",
				Values: []Value{
					{Name: "default"},
					{Name: "destructive"},
				},
			},
		},
		Compounds: []Compound{
			{When: Selection{"variant": "soft", "color": "destructive"}, Tokens: []string{"bg-destructive"}},
		},
	}
}

func TestResolveScenarios(t *testing.T) {
	t.Parallel()
	r := MustNew(scenarioConfig())

	tests := []struct {
		name string
		sel  Selection
		want string
	}{
		{name: "compound overrides axis", sel: Selection{"variant": "soft", "color": "destructive"}, want: "bg-destructive"},
		{name: "empty selection uses defaults", sel: Selection{}, want: "bg-muted"},
		{name: "nil selection uses defaults", sel: nil, want: "bg-muted"},
		{name: "empty value is absent", sel: Selection{"variant": "", "color": "destructive"}, want: "bg-destructive"},
		{name: "solid ignores soft compound", sel: Selection{"variant": "solid", "color": "destructive"}, want: "bg-solid"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := r.Class(tt.sel, nil, "")
			if err != nil {
				t.Fatalf("Class(%v) unexpected error: %v", tt.sel, err)
			}
			if got != tt.want {
				t.Errorf("Class(%v) = %q, want %q", tt.sel, got, tt.want)
			}
		})
	}
}

func TestResolveUnmergedOrder(t *testing.T) {
	t.Parallel()
	r := MustNew(scenarioConfig())

	got, err := r.Tokens(Selection{"variant": "soft", "color": "destructive"})
	if err != nil {
		t.Fatalf("Tokens unexpected error: %v", err)
	}
	want := []string{"bg-muted", "bg-destructive"}
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Errorf("Tokens = %q, want %q", got, want)
	}
}

func TestResolveInvalidValue(t *testing.T) {
	t.Parallel()
	r := MustNew(scenarioConfig())

	_, err := r.Resolve(Selection{"variant": "bogus"})
	if !errors.Is(err, ErrInvalidAxisValue) {
		t.Fatalf("expected ErrInvalidAxisValue, got %v", err)
	}
	if !strings.Contains(err.Error(), "bogus") {
		t.Errorf("error %q should name the value", err)
	}
}

func TestResolveUnknownAxis(t *testing.T) {
	t.Parallel()
	r := MustNew(scenarioConfig())

	_, err := r.Class(Selection{"size": "lg"}, nil, "")
	if !errors.Is(err, ErrUnknownAxis) {
		t.Fatalf("expected ErrUnknownAxis, got %v", err)
	}
	// An unknown axis is reported even if its value is empty.
	_, err = r.Class(Selection{"size": ""}, nil, "")
	if !errors.Is(err, ErrUnknownAxis) {
		t.Fatalf("expected ErrUnknownAxis for empty value, got %v", err)
	}
}

func TestTokensOrder(t *testing.T) {
	t.Parallel()
	r := MustNew(Config{
		Base: []string{"base-a base-b"},
		Axes: []Axis{
			{Name: "one", Default: "x", Values: []Value{{Name: "x", Tokens: []string{"one-x"}}}},
			{Name: "two", Default: "y", Values: []Value{{Name: "y", Tokens: []string{"two-y"}}}},
		},
		Compounds: []Compound{
			{When: Selection{"one": "x"}, Tokens: []string{"c-1"}},
			{When: Selection{"one": "x", "two": "y"}, Tokens: []string{"c-2"}},
		},
	})

	got, err := r.Tokens(nil, "extra-1", "extra-2 extra-3")
	if err != nil {
		t.Fatalf("Tokens unexpected error: %v", err)
	}
	want := "base-a base-b one-x two-y c-1 c-2 extra-1 extra-2 extra-3"
	if s := strings.Join(got, " "); s != want {
		t.Errorf("Tokens = %q, want %q", s, want)
	}
}

func TestCompoundRulesAreAdditive(t *testing.T) {
	t.Parallel()
	r := MustNew(Config{
		Axes: []Axis{
			{Name: "variant", Default: "soft", Values: []Value{{Name: "soft"}, {Name: "solid"}}},
			{Name: "color", Default: "info", Values: []Value{{Name: "info"}, {Name: "warning"}}},
		},
		Compounds: []Compound{
			{When: Selection{"variant": "soft"}, Tokens: []string{"underline bg-blue"}},
			{When: Selection{"variant": "soft", "color": "info"}, Tokens: []string{"italic bg-sky"}},
		},
	})

	got, err := r.Class(nil, nil, "")
	if err != nil {
		t.Fatalf("Class unexpected error: %v", err)
	}
	// Both rules match; the later rule wins the bg-color conflict.
	if want := "underline italic bg-sky"; got != want {
		t.Errorf("Class = %q, want %q", got, want)
	}
}

func TestClassExtrasAndRawOverride(t *testing.T) {
	t.Parallel()
	r := MustNew(scenarioConfig())

	got, err := r.Class(Selection{"variant": "solid"}, []string{"px-2 bg-extra"}, "bg-raw px-4")
	if err != nil {
		t.Fatalf("Class unexpected error: %v", err)
	}
	if want := "bg-raw px-4"; got != want {
		t.Errorf("Class = %q, want %q", got, want)
	}
}

func TestResolveDeterministicAndIdempotent(t *testing.T) {
	t.Parallel()
	r := MustNew(Config{
		Base: Split("inline-flex items-center rounded-sm px-2.5 py-0.5 text-xs font-semibold"),
		Axes: []Axis{{
			Name:    "variant",
			Default: "surface",
			Values: []Value{
				{Name: "surface", Tokens: Split("bg-surface text-surface-is-default border border-surface-border")},
			},
		}},
		Compounds: []Compound{
			{When: Selection{"variant": "surface"}, Tokens: Split("bg-info border-info text-info-is-default")},
		},
	})

	first, err := r.Class(nil, nil, "")
	if err != nil {
		t.Fatalf("Class unexpected error: %v", err)
	}
	for i := 0; i < 20; i++ {
		again, _ := r.Class(Selection{}, nil, "")
		if again != first {
			t.Fatalf("Class not deterministic: %q vs %q", again, first)
		}
	}
	if merged := Merge(first); merged != first {
		t.Errorf("Merge(%q) = %q, want unchanged", first, merged)
	}
	want := "inline-flex items-center rounded-sm px-2.5 py-0.5 text-xs font-semibold border bg-info border-info text-info-is-default"
	if first != want {
		t.Errorf("Class = %q, want %q", first, want)
	}
}

func TestDefaultsIntrospection(t *testing.T) {
	t.Parallel()
	r := MustNew(scenarioConfig())

	if got := strings.Join(r.Axes(), ","); got != "variant,color" {
		t.Errorf("Axes() = %q, want %q", got, "variant,color")
	}
	if got := strings.Join(r.Values("variant"), ","); got != "soft,solid" {
		t.Errorf("Values(variant) = %q, want %q", got, "soft,solid")
	}
	if r.Values("nope") != nil {
		t.Errorf("Values(nope) should be nil")
	}
	d := r.Defaults()
	if d["variant"] != "soft" || d["color"] != "default" {
		t.Errorf("Defaults() = %v", d)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "default not declared", cfg: Config{Axes: []Axis{{Name: "a", Default: "z", Values: []Value{{Name: "x"}}}}}},
		{name: "no values", cfg: Config{Axes: []Axis{{Name: "a", Default: "x"}}}},
		{name: "empty axis name", cfg: Config{Axes: []Axis{{Default: "x", Values: []Value{{Name: "x"}}}}}},
		{name: "duplicate axis", cfg: Config{Axes: []Axis{
			{Name: "a", Default: "x", Values: []Value{{Name: "x"}}},
			{Name: "a", Default: "x", Values: []Value{{Name: "x"}}},
		}}},
		{name: "duplicate value", cfg: Config{Axes: []Axis{{Name: "a", Default: "x", Values: []Value{{Name: "x"}, {Name: "x"}}}}}},
		{name: "compound unknown axis", cfg: Config{
			Axes:      []Axis{{Name: "a", Default: "x", Values: []Value{{Name: "x"}}}},
			Compounds: []Compound{{When: Selection{"b": "x"}}},
		}},
		{name: "compound undeclared value", cfg: Config{
			Axes:      []Axis{{Name: "a", Default: "x", Values: []Value{{Name: "x"}}}},
			Compounds: []Compound{{When: Selection{"a": "y"}}},
		}},
		{name: "compound without constraints", cfg: Config{
			Axes:      []Axis{{Name: "a", Default: "x", Values: []Value{{Name: "x"}}}},
			Compounds: []Compound{{Tokens: []string{"p-1"}}},
		}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := New(tt.cfg); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("New() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestMustNewPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("MustNew should panic on invalid config")
		}
	}()
	MustNew(Config{Axes: []Axis{{Name: "a", Default: "missing", Values: []Value{{Name: "x"}}}}})
}

func TestNewCopiesTokens(t *testing.T) {
	t.Parallel()
	base := []string{"p-1"}
	r := MustNew(Config{Base: base})
	base[0] = "p-9"

	got, err := r.Class(nil, nil, "")
	if err != nil {
		t.Fatalf("Class unexpected error: %v", err)
	}
	if got != "p-1" {
		t.Errorf("Class = %q, want %q", got, "p-1")
	}
}

func TestResolverConcurrentUse(t *testing.T) {
	t.Parallel()
	r := MustNew(scenarioConfig())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sel := Selection{"color": "destructive"}
			want := "bg-destructive"
			if i%2 == 0 {
				sel = nil
				want = "bg-muted"
			}
			for j := 0; j < 100; j++ {
				got, err := r.Class(sel, nil, "")
				if err != nil || got != want {
					t.Errorf("Class(%v) = %q, %v; want %q", sel, got, err, want)
					return
				}
			}
		}(i)
	}
	wg.Wait()
}
