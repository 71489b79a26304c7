package content

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

const delim = "---"

var (
	// ErrUnterminatedFrontMatter is returned when an opening "---" line has
	// no closing delimiter.
	ErrUnterminatedFrontMatter = errors.New("unterminated front matter")
)

// FrontMatter holds the well-known keys. Everything else stays available in
// the raw map returned by ParseFrontMatter.
type FrontMatter struct {
	Title       string  `yaml:"title"`
	Date        string  `yaml:"date"`
	Slug        string  `yaml:"slug"`
	Summary     string  `yaml:"summary"`
	Description string  `yaml:"description"`
	Tags        TagList `yaml:"tags"`
	Draft       bool    `yaml:"draft"`
	Published   *bool   `yaml:"published"`
}

// TagList accepts either a YAML sequence or a comma separated string.
type TagList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *TagList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var list []string
		if err := value.Decode(&list); err != nil {
			return err
		}
		*t = cleanTags(list)
	case yaml.ScalarNode:
		*t = cleanTags(strings.Split(value.Value, ","))
	default:
		return fmt.Errorf("tags: expected list or string at line %d", value.Line)
	}
	return nil
}

func cleanTags(in []string) []string {
	var out []string
	for _, t := range in {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// SplitFrontMatter separates a leading "---" delimited block from the body.
// Input without an opening delimiter has no front matter: front is nil and
// the whole input is the body.
func SplitFrontMatter(src []byte) (front, body []byte, err error) {
	src = bytes.TrimPrefix(src, []byte("\xef\xbb\xbf"))
	first, rest, _ := cutLine(src)
	if !isDelim(first) {
		return nil, src, nil
	}
	pos := 0
	for {
		line, next, more := cutLine(rest[pos:])
		if isDelim(line) {
			return rest[:pos], next, nil
		}
		if !more {
			return nil, nil, ErrUnterminatedFrontMatter
		}
		pos = len(rest) - len(next)
	}
}

func isDelim(line []byte) bool {
	return strings.TrimRight(string(line), " \t\r") == delim
}

// cutLine returns the first line of b (without the newline), the remainder
// after it, and whether a newline was found.
func cutLine(b []byte) (line, rest []byte, found bool) {
	i := bytes.IndexByte(b, '\n')
	if i < 0 {
		return b, nil, false
	}
	return b[:i], b[i+1:], true
}

// ParseFrontMatter reads r and decodes its YAML front matter into a map.
// The returned map is nil when the input has no front matter.
func ParseFrontMatter(r io.Reader) (map[string]any, []byte, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, err
	}
	front, body, err := SplitFrontMatter(src)
	if err != nil {
		return nil, nil, err
	}
	if front == nil {
		return nil, body, nil
	}
	meta := make(map[string]any)
	if err := yaml.Unmarshal(front, &meta); err != nil {
		return nil, nil, fmt.Errorf("front matter: %w", err)
	}
	return meta, body, nil
}

func decodeFrontMatter(front []byte) (FrontMatter, map[string]any, error) {
	var fm FrontMatter
	if err := yaml.Unmarshal(front, &fm); err != nil {
		return FrontMatter{}, nil, fmt.Errorf("front matter: %w", err)
	}
	meta := make(map[string]any)
	if err := yaml.Unmarshal(front, &meta); err != nil {
		return FrontMatter{}, nil, fmt.Errorf("front matter: %w", err)
	}
	return fm, meta, nil
}
