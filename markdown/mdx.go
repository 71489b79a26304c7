package markdown

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/a-h/templ"

	"github.com/eringen/staticpress/components"
)

// ErrComponent reports a <Badge> or <Button> element that cannot be
// rendered.
var ErrComponent = errors.New("invalid component")

var (
	reBadge    = regexp.MustCompile(`(?s)<Badge(\s[^>]*?)?\s*(?:/>|>(.*?)</Badge\s*>)`)
	reButton   = regexp.MustCompile(`(?s)<Button(\s[^>]*?)?\s*(?:/>|>(.*?)</Button\s*>)`)
	reProp     = regexp.MustCompile(`([A-Za-z][\w-]*)(?:\s*=\s*(?:"([^"]*)"|'([^']*)'|\{"([^"]*)"\}))?`)
	reCodeSpan = regexp.MustCompile("`[^`\n]*`")
)

// Expand replaces the <Badge> and <Button> elements of an MDX body with
// their rendered HTML. Elements inside fenced code or code spans are left
// alone. Badges are expanded first so a Button may contain one.
func Expand(ctx context.Context, body string) (string, error) {
	var out strings.Builder
	var firstErr error
	for _, seg := range splitFences(body) {
		if seg.code {
			out.WriteString(seg.text)
			continue
		}
		out.WriteString(mapOutside(seg.text, reCodeSpan, func(s string) string {
			if firstErr != nil {
				return s
			}
			s, err := expandTag(ctx, s, "Badge", reBadge, badge)
			if err == nil {
				s, err = expandTag(ctx, s, "Button", reButton, button)
			}
			if err != nil {
				firstErr = err
			}
			return s
		}))
	}
	if firstErr != nil {
		return "", firstErr
	}
	return out.String(), nil
}

type builder func(props map[string]string, children templ.Component) (templ.Component, error)

func expandTag(ctx context.Context, s, tag string, re *regexp.Regexp, build builder) (string, error) {
	var firstErr error
	s = re.ReplaceAllStringFunc(s, func(m string) string {
		if firstErr != nil {
			return m
		}
		sub := re.FindStringSubmatch(m)
		props, err := parseProps(sub[1])
		if err != nil {
			firstErr = fmt.Errorf("markdown: <%s>: %w", tag, err)
			return m
		}
		var children templ.Component
		if inner := strings.TrimSpace(sub[2]); inner != "" {
			children = templ.Raw(inner)
		}
		c, err := build(props, children)
		if err != nil {
			firstErr = fmt.Errorf("markdown: <%s>: %w", tag, err)
			return m
		}
		var b strings.Builder
		if err := c.Render(ctx, &b); err != nil {
			firstErr = fmt.Errorf("markdown: <%s>: %w", tag, err)
			return m
		}
		return b.String()
	})
	return s, firstErr
}

// parseProps reads name="v", name='v', name={"v"} and bare names (value
// "true").
func parseProps(attrs string) (map[string]string, error) {
	props := make(map[string]string)
	for _, m := range reProp.FindAllStringSubmatch(attrs, -1) {
		switch {
		case !strings.Contains(m[0], "="):
			props[m[1]] = "true"
		case m[2] != "":
			props[m[1]] = m[2]
		case m[3] != "":
			props[m[1]] = m[3]
		default:
			props[m[1]] = m[4]
		}
	}
	if rest := strings.TrimSpace(reProp.ReplaceAllString(attrs, "")); rest != "" {
		return nil, fmt.Errorf("%w: malformed attributes %q", ErrComponent, rest)
	}
	return props, nil
}

func badge(props map[string]string, children templ.Component) (templ.Component, error) {
	p := components.BadgeProps{Attrs: map[string]string{}}
	for k, v := range props {
		switch k {
		case "variant":
			p.Variant = v
		case "color":
			p.Color = v
		case "class", "className":
			p.Class = v
		case "id", "title":
			p.Attrs[k] = v
		default:
			return nil, fmt.Errorf("%w: unknown prop %q", ErrComponent, k)
		}
	}
	if _, err := components.BadgeClass(p); err != nil {
		return nil, err
	}
	return components.Badge(p, children), nil
}

func button(props map[string]string, children templ.Component) (templ.Component, error) {
	p := components.ButtonProps{Attrs: map[string]string{}}
	for k, v := range props {
		switch k {
		case "variant":
			p.Variant = v
		case "size":
			p.Size = v
		case "class", "className":
			p.Class = v
		case "href":
			p.Href = SafeURL(v)
			if p.Href == "" {
				return nil, fmt.Errorf("%w: unsafe href %q", ErrComponent, v)
			}
		case "type":
			p.Type = v
		case "disabled":
			p.Disabled = v != "false"
		case "id", "title":
			p.Attrs[k] = v
		default:
			return nil, fmt.Errorf("%w: unknown prop %q", ErrComponent, k)
		}
	}
	if _, err := components.ButtonClass(p); err != nil {
		return nil, err
	}
	return components.Button(p, children), nil
}

type segment struct {
	text string
	code bool
}

// splitFences cuts body into alternating prose and fenced code segments.
// An unclosed fence runs to the end.
func splitFences(body string) []segment {
	var segs []segment
	var cur strings.Builder
	inCode := false
	fence := ""
	flush := func(code bool) {
		if cur.Len() > 0 {
			segs = append(segs, segment{text: cur.String(), code: code})
			cur.Reset()
		}
	}
	for _, line := range strings.SplitAfter(body, "\n") {
		trimmed := strings.TrimLeft(line, " ")
		switch {
		case !inCode && (strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~")):
			flush(false)
			inCode, fence = true, trimmed[:3]
			cur.WriteString(line)
		case inCode && strings.HasPrefix(trimmed, fence):
			cur.WriteString(line)
			flush(true)
			inCode = false
		default:
			cur.WriteString(line)
		}
	}
	flush(inCode)
	return segs
}

// mapOutside applies fn to the parts of s that re does not match.
func mapOutside(s string, re *regexp.Regexp, fn func(string) string) string {
	var b strings.Builder
	last := 0
	for _, loc := range re.FindAllStringIndex(s, -1) {
		b.WriteString(fn(s[last:loc[0]]))
		b.WriteString(s[loc[0]:loc[1]])
		last = loc[1]
	}
	b.WriteString(fn(s[last:]))
	return b.String()
}
