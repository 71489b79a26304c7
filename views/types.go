package views

// SiteConfig holds the site-wide settings every page needs. The root
// package fills it from its own configuration.
type SiteConfig struct {
	Name        string // site name, also the fallback document title
	URL         string // canonical base URL
	Description string
	Author      string
	Lang        string // <html lang>, default "ja"
	Year        int    // footer year, default the current year
	Dev         bool   // adds the live-reload script
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head>.
type PageMeta struct {
	Title            string // explicit page title
	FrontMatterTitle string // used when Title is empty
	Description      string
	URL              string // canonical + og:url
	OGType           string // "website" or "article"
	JSONLD           string // raw JSON-LD document, optional
}
