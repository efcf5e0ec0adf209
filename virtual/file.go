package virtual

import (
	"errors"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// virtualDir is a directory whose listing shows rendered pages in place
// of their sources and leaves out hidden files.
type virtualDir struct {
	fs.File

	path    string        // Name the directory was opened with
	entries []fs.DirEntry // Listing, read on first use
	loaded  bool
	pos     int
}

// ReadDir reads the contents of the directory and returns
// a slice of up to n DirEntry values in directory order.
// Subsequent calls on the same file will yield further DirEntry values.
func (d *virtualDir) ReadDir(n int) ([]fs.DirEntry, error) {
	if !d.loaded {
		rdf, ok := d.File.(fs.ReadDirFile)
		if !ok {
			return nil, &fs.PathError{Op: "readdir", Path: d.path, Err: errors.New("not a directory")}
		}
		entries, err := rdf.ReadDir(-1)
		if err != nil {
			return nil, err
		}
		d.entries = d.present(entries)
		d.loaded = true
	}
	rest := d.entries[d.pos:]
	if n <= 0 {
		d.pos = len(d.entries)
		return rest, nil
	}
	if len(rest) == 0 {
		return nil, io.EOF
	}
	if n > len(rest) {
		n = len(rest)
	}
	d.pos += n
	return rest[:n], nil
}

// present converts the underlying entries into what the virtual file system shows.
func (d *virtualDir) present(entries []fs.DirEntry) []fs.DirEntry {
	r := make([]fs.DirEntry, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") || (d.path == "." && isHiddenFile(name)) {
			continue
		}
		if entry.IsDir() {
			r = append(r, entry)
			continue
		}
		full := path.Join(d.path, name)
		switch {
		case path.Ext(name) == ".md":
			if de, ok := renamedEntry(entry, strings.TrimSuffix(name, ".md")+".html"); ok {
				r = append(r, de)
			}
		case hasImageFolderPrefix(full) && hasImageExtension(name):
			r = append(r, entry)
			if de, ok := renamedEntry(entry, strings.TrimSuffix(name, path.Ext(name))+".html"); ok {
				r = append(r, de)
			}
		default:
			r = append(r, entry)
		}
	}
	sort.Slice(r, func(i, j int) bool { return r[i].Name() < r[j].Name() })
	return r
}

// renamedEntry presents entry under a different name.
func renamedEntry(entry fs.DirEntry, name string) (fs.DirEntry, bool) {
	fi, err := entry.Info()
	if err != nil {
		return nil, false
	}
	return virtualDirEntry{virtualFileInfo{FileInfo: fi, name: name}}, true
}

// virtualFileInfo holds the metadata about a file shown under a virtual name.
type virtualFileInfo struct {
	fs.FileInfo
	name string
}

// Name returns the base name of the file.
func (fi virtualFileInfo) Name() string {
	return fi.name
}

// virtualDirEntry is a special version of fileInfo to represent directory entries.
// It is lightweight in that it isn't as filled out as if you called Stat
// on the file itself.
type virtualDirEntry struct {
	virtualFileInfo
}

// Type returns the type bits for the entry.
// The type bits are a subset of the usual FileMode bits, those returned by the FileMode.Type method.
func (di virtualDirEntry) Type() fs.FileMode {
	return di.virtualFileInfo.Mode().Type()
}

// Info returns the FileInfo for the file or subdirectory described by the entry.
// The returned info is from the time of the directory read.
func (di virtualDirEntry) Info() (fs.FileInfo, error) {
	return di.virtualFileInfo, nil
}
