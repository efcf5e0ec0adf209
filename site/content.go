/*
Package site holds the presentation helpers used by the site's templates:
listings that merge articles with external links, page titles and meta tags
with site-wide fallbacks, social share links, and talk references.

Everything here works on values that were already loaded; nothing does I/O.
*/
package site

import (
	"sort"
	"time"
)

// Item is anything that can appear in the home page listing.
type Item interface {
	ItemTitle() string
	ItemDate() time.Time
	// ItemURL returns the target of the item. For external items it is an
	// absolute URL, otherwise a path relative to the site root.
	ItemURL() string
	IsExternal() bool
}

// Article is a post written on this site, or a pointer to one published
// elsewhere when External is set.
type Article struct {
	Title    string    `toml:"title"`
	Date     time.Time `toml:"date"`
	URL      string    `toml:"url"`      // External location; empty for local articles
	Path     string    `toml:"-"`        // Page path of a local article, e.g. "/articles/foo.html"
	External bool      `toml:"external"` // Link out instead of to Path
}

// ItemTitle implements Item.
func (a Article) ItemTitle() string { return a.Title }

// ItemDate implements Item.
func (a Article) ItemDate() time.Time { return a.Date }

// ItemURL implements Item.
func (a Article) ItemURL() string {
	if a.External && a.URL != "" {
		return a.URL
	}
	return a.Path
}

// IsExternal implements Item.
func (a Article) IsExternal() bool { return a.External }

// ExternalLink is a reference to something written elsewhere, listed in the data file.
type ExternalLink struct {
	Date  time.Time `toml:"date"`
	Title string    `toml:"title"`
	URL   string    `toml:"url"`
}

// ItemTitle implements Item.
func (l ExternalLink) ItemTitle() string { return l.Title }

// ItemDate implements Item.
func (l ExternalLink) ItemDate() time.Time { return l.Date }

// ItemURL implements Item.
func (l ExternalLink) ItemURL() string { return l.URL }

// IsExternal implements Item. Links are always external.
func (l ExternalLink) IsExternal() bool { return true }

// IndexItems combines articles and links into one list, most recent first.
// Items with equal dates keep their input order, articles before links.
func IndexItems(articles []Article, links []ExternalLink) []Item {
	items := make([]Item, 0, len(articles)+len(links))
	for i := range articles {
		items = append(items, articles[i])
	}
	for i := range links {
		items = append(items, links[i])
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[j].ItemDate().Before(items[i].ItemDate())
	})
	return items
}
