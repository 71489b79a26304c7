// Package views renders the site's pages. Every page is a full HTML
// document built from Layout.
package views

import (
	"strconv"
	"time"

	"github.com/a-h/templ"

	"github.com/eringen/staticpress/components"
)

// Stylesheets lists the stylesheets linked from every page, in order.
var Stylesheets = []string{"/static/style.css", "/static/theme.css", "/static/code.css"}

// ReloadScript is the live-reload script linked in dev mode.
const ReloadScript = "/static/reload.js"

// Layout wraps body in the document shell: head metadata, the site
// header, a prose article and the footer.
func Layout(site SiteConfig, page PageMeta, body templ.Component) templ.Component {
	return component(func(h *htmlWriter) {
		lang := site.Lang
		if lang == "" {
			lang = "ja"
		}
		h.raw("<!DOCTYPE html>\n<html")
		h.attr("lang", lang)
		h.raw(`><head><meta charset="UTF-8"><meta name="viewport" content="width=device-width, initial-scale=1.0">`)
		h.raw("<title>")
		h.text(DocumentTitle(site, page))
		h.raw("</title>")
		writeMeta(h, site, page)
		for _, href := range Stylesheets {
			h.raw(`<link rel="stylesheet"`)
			h.attr("href", href)
			h.raw(">")
		}
		if page.JSONLD != "" {
			h.raw(`<script type="application/ld+json">` + page.JSONLD + "</script>")
		}
		if site.Dev {
			h.raw(`<script`)
			h.attr("src", ReloadScript)
			h.raw(" defer></script>")
		}
		h.raw("</head><body>")

		h.raw(`<header class="site-header"><h1><a href="/">`)
		h.text(siteName(site))
		h.raw("</a></h1>")
		h.render(components.Badge(components.BadgeProps{Color: "info"}, components.Text("blog")))
		h.raw("</header>")

		h.raw(`<main class="prose"><article>`)
		h.render(body)
		h.raw("</article></main>")

		year := site.Year
		if year == 0 {
			year = time.Now().Year()
		}
		h.raw("<footer><p>&copy; " + strconv.Itoa(year) + " ")
		h.text(siteName(site))
		h.raw(". All rights reserved.</p></footer>")
		h.raw("</body></html>\n")
	})
}

func writeMeta(h *htmlWriter, site SiteConfig, page PageMeta) {
	desc := page.Description
	if desc == "" {
		desc = site.Description
	}
	if desc != "" {
		h.raw(`<meta name="description"`)
		h.attr("content", desc)
		h.raw(">")
	}
	if page.URL != "" {
		h.raw(`<link rel="canonical"`)
		h.attr("href", page.URL)
		h.raw(">")
	}
	ogType := page.OGType
	if ogType == "" {
		ogType = "website"
	}
	og := [][2]string{
		{"og:title", DocumentTitle(site, page)},
		{"og:type", ogType},
		{"og:url", page.URL},
		{"og:description", desc},
		{"og:site_name", siteName(site)},
	}
	for _, kv := range og {
		if kv[1] == "" {
			continue
		}
		h.raw(`<meta`)
		h.attr("property", kv[0])
		h.attr("content", kv[1])
		h.raw(">")
	}
}
