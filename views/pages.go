package views

import (
	"github.com/a-h/templ"

	"github.com/eringen/staticpress/components"
	"github.com/eringen/staticpress/content"
	"github.com/eringen/staticpress/markdown"
)

// Home is the index page: a greeting, the post list and the tag cloud.
// Posts without front matter are not listed.
func Home(site SiteConfig, posts []content.Post, tags []string) templ.Component {
	page := PageMeta{
		Description: site.Description,
		URL:         buildURL(site.URL),
		OGType:      "website",
		JSONLD:      WebsiteJsonLD(site),
	}
	return Layout(site, page, component(func(h *htmlWriter) {
		h.raw(`<div><h1 class="text-3xl font-bold underline">Hello!</h1><h2>Posts</h2>`)
		h.render(components.Button(components.ButtonProps{Href: "/feed.xml", Variant: "outline", Size: "sm"}, components.Text("Subscribe")))
		writePostList(h, posts)
		writeTags(h, tags)
		h.raw("</div>")
	}))
}

// Post renders a single post with its tags and related posts.
func Post(site SiteConfig, post content.Post, related []content.Post) templ.Component {
	page := PageMeta{
		FrontMatterTitle: post.Title,
		Description:      post.Summary,
		URL:              buildURL(site.URL, "posts", post.Slug),
		OGType:           "article",
		JSONLD:           BlogPostingJsonLD(site, post),
	}
	return Layout(site, page, component(func(h *htmlWriter) {
		h.raw(`<header class="post-header"><h1>`)
		h.text(post.Title)
		h.raw("</h1>")
		if post.Date != "" {
			h.raw("<time")
			h.attr("datetime", post.Date)
			h.raw(">")
			h.text(post.Date)
			h.raw("</time>")
		}
		if post.Draft {
			h.render(components.Badge(components.BadgeProps{Variant: "solid", Color: "warning"}, components.Text("draft")))
		}
		writeTags(h, post.Tags)
		h.raw("</header>")
		h.render(markdown.Markdown(post.Body))
		if len(related) > 0 {
			h.raw(`<aside class="related"><h2>Related</h2>`)
			writePostList(h, related)
			h.raw("</aside>")
		}
	}))
}

// Tag lists the posts carrying tag.
func Tag(site SiteConfig, tag string, posts []content.Post) templ.Component {
	page := PageMeta{
		Title:  "#" + tag + " | " + siteName(site),
		URL:    buildURL(site.URL, "tags", tag),
		OGType: "website",
	}
	return Layout(site, page, component(func(h *htmlWriter) {
		h.raw("<h1>")
		h.render(components.Badge(components.BadgeProps{Variant: "outline"}, components.Text(tag)))
		h.raw("</h1>")
		writePostList(h, posts)
	}))
}

// Components shows every Badge and Button combination.
func Components(site SiteConfig) templ.Component {
	page := PageMeta{
		Title: "Components | " + siteName(site),
		URL:   buildURL(site.URL, "components"),
	}
	return Layout(site, page, component(func(h *htmlWriter) {
		h.raw("<h1>Components</h1><h2>Badge</h2>")
		h.render(components.Gallery())
		h.raw("<h2>Button</h2>")
		for _, size := range components.ButtonVariants.Values("size") {
			h.raw(`<div class="flex flex-wrap gap-2">`)
			for _, v := range components.ButtonVariants.Values("variant") {
				label := v
				if size == "icon" {
					label = "+"
				}
				h.render(components.Button(components.ButtonProps{Variant: v, Size: size}, components.Text(label)))
			}
			h.raw("</div>")
		}
	}))
}

// NotFound is the 404 page.
func NotFound(site SiteConfig) templ.Component {
	return Layout(site, PageMeta{Title: "Not found | " + siteName(site)}, component(func(h *htmlWriter) {
		h.raw("<h1>404</h1><p>The page you are looking for does not exist.</p>")
		h.render(components.Button(components.ButtonProps{Href: "/", Variant: "link"}, components.Text("Back home")))
	}))
}

// ServerError is the 500 page.
func ServerError(site SiteConfig) templ.Component {
	return Layout(site, PageMeta{Title: "Error | " + siteName(site)}, component(func(h *htmlWriter) {
		h.raw("<h1>Something went wrong</h1><p>Please try again later.</p>")
	}))
}

func writePostList(h *htmlWriter, posts []content.Post) {
	h.raw(`<ul class="article-list">`)
	for _, p := range posts {
		if !p.HasFrontMatter {
			continue
		}
		h.raw("<li><a")
		h.attr("href", p.Link())
		h.raw(">")
		h.text(p.Title)
		h.raw("</a>")
		if p.Date != "" {
			h.raw(" <time")
			h.attr("datetime", p.Date)
			h.raw(">")
			h.text(p.Date)
			h.raw("</time>")
		}
		h.raw("</li>")
	}
	h.raw("</ul>")
}

func writeTags(h *htmlWriter, tags []string) {
	if len(tags) == 0 {
		return
	}
	h.raw(`<nav class="tag-list">`)
	for _, t := range tags {
		h.raw("<a")
		h.attr("href", TagLink(t))
		h.raw(">")
		h.render(components.Badge(components.BadgeProps{Variant: "surface"}, components.Text(t)))
		h.raw("</a>")
	}
	h.raw("</nav>")
}
