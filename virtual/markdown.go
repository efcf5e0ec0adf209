package virtual

import (
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"path"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// parseMarkdown splits a Markdown page into its front matter and rendered HTML.
func parseMarkdown(b []byte) (FrontMatter, template.HTML, error) {
	var front FrontMatter
	fm, r := extractFrontMatter(b)
	if len(fm) > 0 {
		err := toml.Unmarshal(fm, &front)
		if err != nil {
			return FrontMatter{}, "", fmt.Errorf("parseMarkdown: %w", err)
		}
	}
	return front, renderMarkdownBytes(r), nil
}

// markdownSource maps a page name as written in a template ("/notes/",
// "notes/a.html", "notes/a") to the Markdown file behind it.
func markdownSource(name string) string {
	if strings.HasSuffix(name, "/") {
		name += "index.md"
	}
	name = strings.TrimPrefix(path.Clean("/"+name), "/")
	if ext := path.Ext(name); ext == "" || ext == ".html" {
		name = strings.TrimSuffix(name, ext) + ".md"
	}
	return name
}

// readMarkdown reads and parses the Markdown behind the named page.
func (vfs *FS) readMarkdown(name string) (FrontMatter, template.HTML, error) {
	b, err := fs.ReadFile(vfs.fs, markdownSource(name))
	if err != nil {
		return FrontMatter{}, "", fmt.Errorf("readMarkdown: %w", err)
	}
	return parseMarkdown(b)
}

// md renders another page's Markdown and is used in templates.
func (vfs *FS) md(name string) template.HTML {
	_, content, err := vfs.readMarkdown(name)
	if err != nil {
		log.Printf("markdown: %s", err)
	}
	return content
}

// fm returns another page's front matter and is used in templates.
func (vfs *FS) fm(name string) *FrontMatter {
	front, _, err := vfs.readMarkdown(name)
	if err != nil {
		log.Printf("frontmatter: %s", err)
		return nil
	}
	return &front
}
