package virtual

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"log"
	"path"
	"strings"
	texttemplate "text/template"
	"time"

	"github.com/russross/blackfriday/v2"

	"github.com/obscurehobo/hobosite/site"
)

// renderFile is an in-memory file holding rendered output.
type renderFile struct {
	info   renderFileInfo
	reader *bytes.Reader // Main Reader to use
}

// Stat returns a FileInfo describing the file.
func (f *renderFile) Stat() (fs.FileInfo, error) {
	return f.info, nil
}

// Read reads up to len(b) bytes from the File. It returns the number of bytes read
// and any error encountered. At end of file, Read returns 0, io.EOF.
func (f *renderFile) Read(b []byte) (int, error) {
	return f.reader.Read(b)
}

// Seek sets the offset for the next Read or Write to offset, interpreted according
// to whence: io.SeekStart means relative to the start of the file, io.SeekCurrent
// means relative to the current offset, and io.SeekEnd means relative to the end.
func (f *renderFile) Seek(offset int64, whence int) (int64, error) {
	return f.reader.Seek(offset, whence)
}

// Close does nothing; the rendered data is in memory.
func (f *renderFile) Close() error {
	return nil
}

// renderFileInfo holds the metadata about the source file and allows you
// to customize the name and size, which is important for reporting the
// length of the rendered data.
type renderFileInfo struct {
	fs.FileInfo

	name string // Virtual name of the file
	size int64  // Size of file data
}

// Name returns the base name of the file.
func (rfi renderFileInfo) Name() string {
	return rfi.name
}

// Size reports the length of the file.
func (rfi renderFileInfo) Size() int64 {
	return rfi.size
}

// newRenderFile wraps rendered bytes as a file named after pathname,
// taking the remaining metadata from the source file src.
func newRenderFile(src fs.File, pathname string, b []byte) (fs.File, error) {
	fi, err := src.Stat()
	if err != nil {
		return nil, fmt.Errorf("newRenderFile: %w", err)
	}
	return &renderFile{
		info: renderFileInfo{
			FileInfo: fi,
			name:     path.Base(pathname),
			size:     int64(len(b)),
		},
		reader: bytes.NewReader(b),
	}, nil
}

// renderMarkdownBytes renders Markdown to HTML with the extensions used across the site.
func renderMarkdownBytes(b []byte) template.HTML {
	return template.HTML(blackfriday.Run(b, blackfriday.WithExtensions(blackfriday.CommonExtensions|blackfriday.Footnotes)))
}

// pageData prepares the template data for the page at pathname.
func (vfs *FS) pageData(pathname string, front FrontMatter, content template.HTML) data {
	p, bn := path.Split(pathname)
	return data{
		FrontMatter: front,
		Page: PageInfo{
			Path:     p,
			Filename: bn,
		},
		Content:  content,
		Site:     vfs.cfg.Site,
		articles: vfs.cfg.Articles,
	}
}

// execute runs the named template, logging failures the way a broken page
// should still be served.
func (vfs *FS) execute(name string, d data) []byte {
	tpl := vfs.getTemplates()
	var wtr bytes.Buffer
	err := tpl.ExecuteTemplate(&wtr, name, d)
	if err != nil {
		log.Printf("Error executing template: %s", err)
	}
	return wtr.Bytes()
}

// newMarkdownFile reads the underlying markdown file, extracts the front matter,
// renders the markdown, and executes the specified template, returning the
// resulting renderFile.
func (vfs *FS) newMarkdownFile(f fs.File, pathname string) (fs.File, error) {
	b, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("newMarkdownFile: %w", err)
	}
	front, content, err := parseMarkdown(b)
	if err != nil {
		return nil, fmt.Errorf("newMarkdownFile: %w", err)
	}

	// Render the HTML template
	templateName := "default"
	if front.Template != "" {
		templateName = front.Template
	}
	out := vfs.execute(templateName, vfs.pageData(pathname, front, content))
	return newRenderFile(f, pathname, out)
}

// newImageFile creates front matter for the underlying image file
// and executes the "image" template, returning the resulting
// renderFile.
func (vfs *FS) newImageFile(f fs.File, pathname, original string) (fs.File, error) {
	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}

	front := FrontMatter{
		Title:        strings.TrimSuffix(path.Base(pathname), path.Ext(pathname)),
		Date:         fi.ModTime(),
		OriginalFile: original,
	}
	out := vfs.execute("image", vfs.pageData(pathname, front, ""))
	return newRenderFile(f, pathname, out)
}

// newSitemapFile parses the underlying text file as a template, lists the
// pages of the site, and executes the template, returning the resulting
// renderFile.
func (vfs *FS) newSitemapFile(f fs.File, pathname string) (fs.File, error) {
	b, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("newSitemapFile: %w", err)
	}
	tpl, err := texttemplate.New("sitemap").Funcs(texttemplate.FuncMap{
		"absoluteurl": func(p string) string { return site.AbsoluteURL(vfs.cfg.Site.Host, p) },
		"now":         time.Now,
	}).Parse(string(b))
	if err != nil {
		return nil, fmt.Errorf("newSitemapFile: %w", err)
	}
	pages, err := vfs.sitemapPages()
	if err != nil {
		return nil, fmt.Errorf("newSitemapFile: %w", err)
	}
	var wtr bytes.Buffer
	err = tpl.Execute(&wtr, pages)
	if err != nil {
		log.Printf("Error executing sitemap: %s", err)
	}
	return newRenderFile(f, pathname, wtr.Bytes())
}

// sitemapPages returns the URL paths of the pages on the site.
func (vfs *FS) sitemapPages() ([]string, error) {
	var pages []string
	err := fs.WalkDir(vfs, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Ext(p) != ".html" {
			return nil
		}
		dir, bn := path.Split(p)
		if dir == "" && (bn == "404.html" || bn == "500.html") {
			return nil
		}
		pages = append(pages, PageInfo{Path: dir, Filename: bn}.URLPath())
		return nil
	})
	return pages, err
}
