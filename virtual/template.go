package virtual

import (
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/obscurehobo/hobosite/site"
)

//go:embed default.html
var defaultTemplate string

// PageInfo has information about the current page.
type PageInfo struct {
	Path     string // path from URL
	Filename string // end portion (file) from URL
}

// Pathname joins the path and filename.
func (p PageInfo) Pathname() string {
	return path.Join(p.Path, p.Filename)
}

// URLPath returns the path the page is served at, starting with a slash.
// Index pages are addressed by their folder, so the root page is "/".
func (p PageInfo) URLPath() string {
	u := "/" + strings.TrimPrefix(p.Pathname(), "/")
	if p.Filename == "index.html" {
		u = strings.TrimSuffix(u, "index.html")
	}
	return u
}

// data is what is passed to markdown templates.
type data struct {
	FrontMatter FrontMatter   // front matter from Markdown file or defaults
	Page        PageInfo      // information aboout current page
	Content     template.HTML // rendered Markdown
	Site        site.Defaults // site-wide defaults from site.cfg

	articles string // articles folder
}

// InArticles reports whether the page is an article, as opposed to the
// index of the articles folder or a page elsewhere.
func (d data) InArticles() bool {
	return strings.Trim(d.Page.Path, "/") == d.articles && d.Page.Filename != "index.html"
}

// PageTitle is the title for the page's <title> element.
func (d data) PageTitle() string {
	return site.PageTitle(d.Site, d.FrontMatter.pageMeta())
}

// MetaDescription is the page description or the site default.
func (d data) MetaDescription() string {
	return site.MetaDescription(d.Site, d.FrontMatter.pageMeta())
}

// MetaKeywords is the page keywords or the site default.
func (d data) MetaKeywords() string {
	return site.MetaKeywords(d.Site, d.FrontMatter.pageMeta())
}

// AbsoluteURL is the full URL of the page on the configured host.
func (d data) AbsoluteURL() string {
	return site.AbsoluteURL(d.Site.Host, d.Page.URLPath())
}

// IsRoot reports whether this is the home page.
func (d data) IsRoot() bool {
	return site.IsRoot(d.Page.URLPath())
}

// TwitterShareLink returns a link that tweets about this page.
func (d data) TwitterShareLink(title string) string {
	return site.TwitterShareLink(d.Site.TwitterHandle(), title, d.AbsoluteURL())
}

// getTemplates returns the templates.
func (vfs *FS) getTemplates() *template.Template {
	vfs.tplMutex.RLock()
	defer vfs.tplMutex.RUnlock()
	return vfs.tpl
}

// funcMap returns the helper functions available to templates.
func (vfs *FS) funcMap() template.FuncMap {
	return template.FuncMap{
		"dir":              vfs.dir,
		"sortbyname":       sortByName,
		"sortbytime":       sortByTime,
		"match":            match,
		"filter":           filter,
		"join":             path.Join,
		"ext":              path.Ext,
		"prev":             prev,
		"next":             next,
		"reverse":          reverse,
		"trimsuffix":       strings.TrimSuffix,
		"trimprefix":       strings.TrimPrefix,
		"trimspace":        strings.TrimSpace,
		"markdown":         vfs.md,
		"frontmatter":      vfs.fm,
		"now":              time.Now,
		"indexitems":       vfs.indexItems,
		"titleanddatelink": site.TitleAndDateLink,
		"links":            func() []site.ExternalLink { return vfs.data.Links },
		"talks":            func() []site.Talk { return vfs.data.Talks },
		"talkevent":        site.TalkEvent,
		"talkvenue":        site.TalkVenue,
		"talkslides":       site.TalkSlides,
		"talkvideo":        site.TalkVideo,
		"site":             func() site.Defaults { return vfs.cfg.Site },
	}
}

// loadTemplates loads and parses the HTML templates, returning true if custom templates were found.
func (vfs *FS) loadTemplates() (bool, error) {
	funcMap := vfs.funcMap()
	vfs.tplMutex.Lock()
	defer vfs.tplMutex.Unlock()
	// Check if we are using default templates
	fi, err := fs.Stat(vfs.fs, "template")
	if errors.Is(err, fs.ErrNotExist) || (err == nil && !fi.IsDir()) {
		tpl, err := template.New("site").Funcs(funcMap).Parse(defaultTemplate)
		if err != nil {
			return false, fmt.Errorf("loadTemplates: %w", err)
		}
		vfs.tpl = tpl
		return false, nil
	}
	// use custom templates
	tpl, err := template.New("site").Funcs(funcMap).ParseFS(vfs.fs, "template/*.html")
	if err != nil {
		return true, fmt.Errorf("loadTemplates: %w", err)
	}
	vfs.tpl = tpl
	return true, nil
}
