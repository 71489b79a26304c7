// Package markdown renders post bodies to HTML as templ components.
//
// Bodies are CommonMark with GFM extensions. Fenced code is highlighted
// with chroma using CSS classes (see StyleCSS), and <Badge> and <Button>
// elements are expanded into the site's components before conversion.
package markdown

import (
	"bytes"
	"context"
	"io"
	"net/url"
	"strings"
	"sync"

	"github.com/a-h/templ"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

var (
	converterOnce sync.Once
	converter     goldmark.Markdown
)

func getConverter() goldmark.Markdown {
	converterOnce.Do(func() {
		converter = goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Footnote,
				extension.Typographer,
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
				parser.WithASTTransformers(util.Prioritized(linkTransformer{}, 100)),
			),
			goldmark.WithRendererOptions(
				// Bodies embed component HTML.
				html.WithUnsafe(),
				renderer.WithNodeRenderers(util.Prioritized(newCodeRenderer(DefaultStyle), 200)),
			),
		)
	})
	return converter
}

// Markdown returns a templ.Component that renders body as HTML.
func Markdown(body string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return render(ctx, w, body)
	})
}

// Render writes the HTML for body to w. A component with invalid props is
// returned as an error naming the element.
func Render(w io.Writer, body string) error {
	return render(context.Background(), w, body)
}

func render(ctx context.Context, w io.Writer, body string) error {
	src, err := Expand(ctx, body)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := getConverter().Convert([]byte(src), &buf); err != nil {
		return err
	}
	_, err = w.Write(buf.Bytes())
	return err
}

// linkTransformer styles links, opens external links in a new tab, drops
// unsafe destinations and marks every image after the first for lazy
// loading.
type linkTransformer struct{}

func (linkTransformer) Transform(doc *ast.Document, _ text.Reader, _ parser.Context) {
	images := 0
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.Link:
			dest := SafeURL(string(n.Destination))
			n.Destination = []byte(dest)
			n.SetAttributeString("class", []byte("underline decoration-2 underline-offset-4"))
			if isExternal(dest) {
				n.SetAttributeString("target", []byte("_blank"))
				n.SetAttributeString("rel", []byte("noopener noreferrer"))
			}
		case *ast.Image:
			n.Destination = []byte(SafeURL(string(n.Destination)))
			images++
			if images == 1 {
				n.SetAttributeString("loading", []byte("eager"))
			} else {
				n.SetAttributeString("loading", []byte("lazy"))
			}
			n.SetAttributeString("decoding", []byte("async"))
		}
		return ast.WalkContinue, nil
	})
}

// SafeURL returns raw trimmed when it is a reference without a scheme
// (site-relative, relative, a query or a fragment) or uses the http, https,
// mailto or tel scheme. Anything else yields "".
func SafeURL(raw string) string {
	val := strings.TrimSpace(raw)
	if val == "" {
		return ""
	}
	parsed, err := url.Parse(val)
	if err != nil {
		return ""
	}
	switch strings.ToLower(parsed.Scheme) {
	case "", "http", "https", "mailto", "tel":
		return val
	default:
		return ""
	}
}

func isExternal(dest string) bool {
	u, err := url.Parse(dest)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
