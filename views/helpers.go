package views

import (
	"context"
	"encoding/json"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/a-h/templ"

	"github.com/eringen/staticpress/content"
)

// DefaultTitle is the document title when neither the page nor the site
// names one.
const DefaultTitle = "My Blog"

// buildURL joins path segments onto a base URL, ensuring a trailing slash.
func buildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// DocumentTitle picks the <title>: the page title, then the front matter
// title, then the site name, then DefaultTitle.
func DocumentTitle(site SiteConfig, page PageMeta) string {
	for _, t := range []string{page.Title, page.FrontMatterTitle, site.Name} {
		if t = strings.TrimSpace(t); t != "" {
			return t
		}
	}
	return DefaultTitle
}

// TagLink returns the listing path of tag.
func TagLink(tag string) string {
	return "/tags/" + url.PathEscape(content.NormalizeTag(tag)) + "/"
}

// FilterRelatedPosts returns posts that share at least one tag with current.
func FilterRelatedPosts(current content.Post, posts []content.Post) []content.Post {
	var related []content.Post
	for _, p := range posts {
		if p.Slug == current.Slug {
			continue
		}
		for _, t := range current.Tags {
			if p.HasTag(t) {
				related = append(related, p)
				break
			}
		}
	}
	return related
}

// WebsiteJsonLD produces a Schema.org WebSite JSON-LD block.
func WebsiteJsonLD(site SiteConfig) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     siteName(site),
		"url":      buildURL(site.URL),
	}
	if site.Description != "" {
		data["description"] = site.Description
	}
	if site.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  site.Author,
		}
	}
	return marshalJSONLD(data)
}

// BlogPostingJsonLD produces a Schema.org BlogPosting JSON-LD block.
func BlogPostingJsonLD(site SiteConfig, post content.Post) string {
	postURL := buildURL(site.URL, "posts", post.Slug)
	data := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "BlogPosting",
		"headline":    post.Title,
		"description": post.Summary,
		"url":         postURL,
		"publisher": map[string]string{
			"@type": "Organization",
			"name":  siteName(site),
		},
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   postURL,
		},
	}
	if post.Date != "" {
		data["datePublished"] = post.Date
	}
	if site.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  site.Author,
		}
	}
	if len(post.Tags) > 0 {
		data["keywords"] = strings.Join(post.Tags, ", ")
	}
	return marshalJSONLD(data)
}

func marshalJSONLD(data map[string]interface{}) string {
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

func siteName(site SiteConfig) string {
	if site.Name != "" {
		return site.Name
	}
	return DefaultTitle
}

// htmlWriter writes markup and keeps the first error.
type htmlWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err == nil {
		_, h.err = io.WriteString(h.w, s)
	}
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

// attr writes ` name="value"` with value escaped.
func (h *htmlWriter) attr(name, value string) {
	h.raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

func (h *htmlWriter) render(c templ.Component) {
	if h.err == nil && c != nil {
		h.err = c.Render(h.ctx, h.w)
	}
}

// component adapts a writer func into a templ.Component.
func component(fn func(h *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{ctx: ctx, w: w}
		fn(h)
		return h.err
	})
}
