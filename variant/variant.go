// Package variant resolves CSS class lists from a declarative table: a base
// style, independent variant axes with closed value sets, and compound rules
// that fire when several axis values co-occur. The concatenated tokens are
// passed through a Merger so that later tokens win over earlier tokens of the
// same style property.
//
// A Resolver is built once from a static Config and is read-only afterwards;
// it may be shared by any number of goroutines.
//
//	badge := variant.MustNew(variant.Config{
//		Base: variant.Split("inline-flex rounded-sm"),
//		Axes: []variant.Axis{{
//			Name:    "variant",
//			Default: "soft",
//			Values: []variant.Value{
//				{Name: "soft", Tokens: variant.Split("bg-muted")},
//				{Name: "solid", Tokens: variant.Split("bg-solid")},
//			},
//		}},
//	})
//	class, err := badge.Class(variant.Selection{"variant": "solid"}, nil, "")
package variant

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrUnknownAxis is returned when a selection names an axis that the
	// configuration does not declare.
	ErrUnknownAxis = errors.New("unknown variant axis")

	// ErrInvalidAxisValue is returned when a selection picks a value outside
	// the axis' declared value set.
	ErrInvalidAxisValue = errors.New("invalid variant axis value")

	// ErrInvalidConfig is returned by New for malformed configurations.
	ErrInvalidConfig = errors.New("invalid variant config")
)

// Selection maps axis names to chosen values. A missing key or an empty
// value selects the axis default.
type Selection map[string]string

// Value is one legal value of an axis and the tokens it contributes.
type Value struct {
	Name   string
	Tokens []string
}

// Axis is an independent styling dimension. Values are kept in declaration
// order; Default must name one of them.
type Axis struct {
	Name    string
	Default string
	Values  []Value
}

// Compound appends Tokens when every axis named in When is set to the given
// value. All matching compounds contribute, in declaration order.
type Compound struct {
	When   Selection
	Tokens []string
}

// Config is the static definition of a Resolver.
type Config struct {
	Base      []string
	Axes      []Axis
	Compounds []Compound

	// Merger resolves conflicting tokens. Nil uses DefaultMerger.
	Merger *Merger
}

type axis struct {
	name   string
	def    string
	order  []string
	values map[string][]string
}

type constraint struct {
	axis  int
	value string
}

type compound struct {
	when   []constraint
	tokens []string
}

// Resolver computes class lists for selections over a fixed Config.
type Resolver struct {
	base      []string
	axes      []axis
	index     map[string]int
	compounds []compound
	merger    *Merger
}

// Split breaks a space separated class string into tokens.
func Split(class string) []string {
	return strings.Fields(class)
}

// New validates cfg and builds a Resolver. Tokens are copied, so later
// changes to cfg do not affect the Resolver.
func New(cfg Config) (*Resolver, error) {
	r := &Resolver{
		base:   splitAll(cfg.Base),
		index:  make(map[string]int, len(cfg.Axes)),
		merger: cfg.Merger,
	}
	if r.merger == nil {
		r.merger = DefaultMerger()
	}

	for _, a := range cfg.Axes {
		if a.Name == "" {
			return nil, fmt.Errorf("variant: %w: axis with empty name", ErrInvalidConfig)
		}
		if _, dup := r.index[a.Name]; dup {
			return nil, fmt.Errorf("variant: %w: duplicate axis %q", ErrInvalidConfig, a.Name)
		}
		if len(a.Values) == 0 {
			return nil, fmt.Errorf("variant: %w: axis %q has no values", ErrInvalidConfig, a.Name)
		}
		ax := axis{
			name:   a.Name,
			def:    a.Default,
			values: make(map[string][]string, len(a.Values)),
		}
		for _, v := range a.Values {
			if v.Name == "" {
				return nil, fmt.Errorf("variant: %w: axis %q has a value with empty name", ErrInvalidConfig, a.Name)
			}
			if _, dup := ax.values[v.Name]; dup {
				return nil, fmt.Errorf("variant: %w: axis %q declares %q twice", ErrInvalidConfig, a.Name, v.Name)
			}
			ax.values[v.Name] = splitAll(v.Tokens)
			ax.order = append(ax.order, v.Name)
		}
		if _, ok := ax.values[a.Default]; !ok {
			return nil, fmt.Errorf("variant: %w: axis %q default %q is not one of %v", ErrInvalidConfig, a.Name, a.Default, ax.order)
		}
		r.index[a.Name] = len(r.axes)
		r.axes = append(r.axes, ax)
	}

	for i, c := range cfg.Compounds {
		if len(c.When) == 0 {
			return nil, fmt.Errorf("variant: %w: compound %d has no constraints", ErrInvalidConfig, i)
		}
		cc := compound{tokens: splitAll(c.Tokens)}
		for _, name := range sortedKeys(c.When) {
			idx, ok := r.index[name]
			if !ok {
				return nil, fmt.Errorf("variant: %w: compound %d references unknown axis %q", ErrInvalidConfig, i, name)
			}
			value := c.When[name]
			if _, ok := r.axes[idx].values[value]; !ok {
				return nil, fmt.Errorf("variant: %w: compound %d references undeclared value %q of axis %q", ErrInvalidConfig, i, value, name)
			}
			cc.when = append(cc.when, constraint{axis: idx, value: value})
		}
		r.compounds = append(r.compounds, cc)
	}
	return r, nil
}

// MustNew is like New but panics on an invalid configuration. It is meant
// for package-level tables.
func MustNew(cfg Config) *Resolver {
	r, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return r
}

// Axes returns the axis names in declaration order.
func (r *Resolver) Axes() []string {
	names := make([]string, len(r.axes))
	for i, a := range r.axes {
		names[i] = a.name
	}
	return names
}

// Values returns the declared values of an axis, or nil if it is unknown.
func (r *Resolver) Values(axisName string) []string {
	idx, ok := r.index[axisName]
	if !ok {
		return nil
	}
	return append([]string(nil), r.axes[idx].order...)
}

// Defaults returns the default selection.
func (r *Resolver) Defaults() Selection {
	sel := make(Selection, len(r.axes))
	for _, a := range r.axes {
		sel[a.name] = a.def
	}
	return sel
}

// Tokens returns the unmerged concatenation for sel: base tokens, axis tokens
// in axis order, matching compound tokens in rule order, then extra.
func (r *Resolver) Tokens(sel Selection, extra ...string) ([]string, error) {
	chosen, err := r.choose(sel)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(r.base)+8)
	out = append(out, r.base...)
	for i, a := range r.axes {
		out = append(out, a.values[chosen[i]]...)
	}
	for _, c := range r.compounds {
		if c.matches(chosen) {
			out = append(out, c.tokens...)
		}
	}
	for _, e := range extra {
		out = append(out, strings.Fields(e)...)
	}
	return out, nil
}

// Resolve returns the merged tokens for sel and extra.
func (r *Resolver) Resolve(sel Selection, extra ...string) ([]string, error) {
	tokens, err := r.Tokens(sel, extra...)
	if err != nil {
		return nil, err
	}
	return r.merger.Merge(tokens...), nil
}

// Class returns the merged, space joined class string. raw is appended after
// every resolved token and takes part in the same merge.
func (r *Resolver) Class(sel Selection, extra []string, raw string) (string, error) {
	tokens, err := r.Tokens(sel, extra...)
	if err != nil {
		return "", err
	}
	tokens = append(tokens, strings.Fields(raw)...)
	return strings.Join(r.merger.Merge(tokens...), " "), nil
}

// choose maps sel onto a value per axis, falling back to defaults.
func (r *Resolver) choose(sel Selection) ([]string, error) {
	for _, name := range sortedKeys(sel) {
		if _, ok := r.index[name]; !ok {
			return nil, fmt.Errorf("variant: %w: %q", ErrUnknownAxis, name)
		}
	}
	chosen := make([]string, len(r.axes))
	for i, a := range r.axes {
		v := sel[a.name]
		if v == "" {
			chosen[i] = a.def
			continue
		}
		if _, ok := a.values[v]; !ok {
			return nil, fmt.Errorf("variant: %w: %s=%q (want one of %s)", ErrInvalidAxisValue, a.name, v, strings.Join(a.order, ", "))
		}
		chosen[i] = v
	}
	return chosen, nil
}

func (c compound) matches(chosen []string) bool {
	for _, w := range c.when {
		if chosen[w.axis] != w.value {
			return false
		}
	}
	return true
}

func splitAll(tokens []string) []string {
	var out []string
	for _, t := range tokens {
		out = append(out, strings.Fields(t)...)
	}
	return out
}

func sortedKeys(sel Selection) []string {
	keys := make([]string, 0, len(sel))
	for k := range sel {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
