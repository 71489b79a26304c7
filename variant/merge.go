package variant

import (
	"sort"
	"strings"
)

// ConflictRule assigns utilities to a style property group. A utility
// matches when it is one of Tokens, or when it starts with Prefix and the
// rest is non-empty and (if Values is set) one of Values. Rules are tried in
// order and the first match wins, so narrow rules go before catch-alls.
type ConflictRule struct {
	Group  string
	Tokens []string
	Prefix string
	Values []string
}

type compiledRule struct {
	group  string
	tokens map[string]struct{}
	prefix string
	values map[string]struct{}
}

// Merger collapses tokens that set the same style property, keeping the
// last one. Tokens that match no rule are only deduplicated.
type Merger struct {
	rules     []compiledRule
	overrides map[string][]string
}

// NewMerger builds a Merger from a conflict table. overrides lists, per
// group, the groups that a later token of that group also replaces (for
// example "p" replaces "px" and "py").
func NewMerger(rules []ConflictRule, overrides map[string][]string) *Merger {
	m := &Merger{overrides: make(map[string][]string, len(overrides))}
	for _, r := range rules {
		cr := compiledRule{group: r.Group, prefix: r.Prefix}
		if len(r.Tokens) > 0 {
			cr.tokens = make(map[string]struct{}, len(r.Tokens))
			for _, t := range r.Tokens {
				cr.tokens[t] = struct{}{}
			}
		}
		if len(r.Values) > 0 {
			cr.values = make(map[string]struct{}, len(r.Values))
			for _, v := range r.Values {
				cr.values[v] = struct{}{}
			}
		}
		m.rules = append(m.rules, cr)
	}
	for g, list := range overrides {
		m.overrides[g] = append([]string(nil), list...)
	}
	return m
}

// Group reports the property group of a utility (a token without variant
// modifiers). A leading "-" for negative values is ignored.
func (m *Merger) Group(utility string) (string, bool) {
	utility = strings.TrimPrefix(utility, "-")
	for _, r := range m.rules {
		if _, ok := r.tokens[utility]; ok {
			return r.group, true
		}
		if r.prefix == "" || !strings.HasPrefix(utility, r.prefix) {
			continue
		}
		rest := utility[len(r.prefix):]
		if rest == "" {
			continue
		}
		if r.values != nil {
			if _, ok := r.values[rest]; !ok {
				continue
			}
		}
		return r.group, true
	}
	return "", false
}

// Merge splits every argument on whitespace and returns the surviving tokens
// in their original relative order. For each conflict key only the last
// token is kept. Merge is idempotent.
func (m *Merger) Merge(classes ...string) []string {
	var tokens []string
	for _, c := range classes {
		tokens = append(tokens, strings.Fields(c)...)
	}

	seen := make(map[string]struct{}, len(tokens))
	keep := make([]bool, len(tokens))
	for i := len(tokens) - 1; i >= 0; i-- {
		tok := tokens[i]
		mods, utility := splitModifiers(tok)
		important := ""
		if strings.HasPrefix(utility, "!") {
			important, utility = "!", utility[1:]
		} else if strings.HasSuffix(utility, "!") {
			important, utility = "!", strings.TrimSuffix(utility, "!")
		}

		group, ok := m.Group(utility)
		if !ok {
			key := "\x00" + tok
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			keep[i] = true
			continue
		}

		scope := modifierKey(mods) + important
		key := scope + "\x01" + group
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		keep[i] = true
		for _, g := range m.overrides[group] {
			seen[scope+"\x01"+g] = struct{}{}
		}
	}

	out := make([]string, 0, len(tokens))
	for i, tok := range tokens {
		if keep[i] {
			out = append(out, tok)
		}
	}
	return out
}

// MergeString is Merge joined with single spaces.
func (m *Merger) MergeString(classes ...string) string {
	return strings.Join(m.Merge(classes...), " ")
}

// Merge merges classes with the default conflict table.
func Merge(classes ...string) string {
	return DefaultMerger().MergeString(classes...)
}

// splitModifiers separates "md:hover:bg-x" into [md hover] and "bg-x".
// Colons inside arbitrary values ("bg-[url(a:b)]") are not separators.
func splitModifiers(tok string) ([]string, string) {
	var mods []string
	depth, start := 0, 0
	for i := 0; i < len(tok); i++ {
		switch tok[i] {
		case '[', '(':
			depth++
		case ']', ')':
			if depth > 0 {
				depth--
			}
		case ':':
			if depth == 0 {
				mods = append(mods, tok[start:i])
				start = i + 1
			}
		}
	}
	return mods, tok[start:]
}

// modifierKey is order independent: hover:focus: and focus:hover: conflict.
func modifierKey(mods []string) string {
	if len(mods) == 0 {
		return ""
	}
	sorted := append([]string(nil), mods...)
	sort.Strings(sorted)
	return strings.Join(sorted, ":") + ":"
}
