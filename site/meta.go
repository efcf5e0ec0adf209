package site

import "strings"

// DefaultTwitterHandle is used when the site configuration names no handle.
const DefaultTwitterHandle = "obscurehobo"

// Defaults are the site-wide values a page falls back to.
type Defaults struct {
	Host        string `toml:"host"`        // Scheme and host, e.g. "https://example.com"
	Title       string `toml:"title"`       // Site title, prefix of every page title
	Description string `toml:"description"` // Default meta description
	Keywords    string `toml:"keywords"`    // Default meta keywords
	Twitter     string `toml:"twitter"`     // Handle mentioned in share links, without "@"
}

// TwitterHandle returns the configured handle or DefaultTwitterHandle.
func (d Defaults) TwitterHandle() string {
	h := strings.TrimPrefix(strings.TrimSpace(d.Twitter), "@")
	if h == "" {
		return DefaultTwitterHandle
	}
	return h
}

// PageMeta is the metadata a single page may set for itself.
type PageMeta struct {
	Title           string
	MetaDescription string
	MetaKeywords    string
}

// PageTitle returns "<site title> - <page title>", or the site title alone
// when the page has none.
func PageTitle(d Defaults, p PageMeta) string {
	if p.Title == "" {
		return d.Title
	}
	return d.Title + " - " + p.Title
}

// MetaDescription returns the page description, falling back to the site default.
func MetaDescription(d Defaults, p PageMeta) string {
	return fallback(p.MetaDescription, d.Description)
}

// MetaKeywords returns the page keywords, falling back to the site default.
func MetaKeywords(d Defaults, p PageMeta) string {
	return fallback(p.MetaKeywords, d.Keywords)
}

func fallback(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
