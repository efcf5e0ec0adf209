/*
Package export writes a rendered site to a directory so it can be hosted by
any static file server.

Every file visible through the given fs.FS is written, so when it is a
virtual.FS the output holds rendered HTML pages rather than Markdown sources.
*/
package export

import (
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// Export writes the files of fsys below dir, creating it if needed, and
// returns the number of files written.
func Export(fsys fs.FS, dir string) (int, error) {
	count := 0
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		dst := filepath.Join(dir, filepath.FromSlash(p))
		if d.IsDir() {
			err = os.MkdirAll(dst, 0o755)
			if err != nil {
				return fmt.Errorf("Export: %w", err)
			}
			return nil
		}
		err = copyFile(fsys, p, dst)
		if err != nil {
			return fmt.Errorf("Export: %w", err)
		}
		count++
		return nil
	})
	if err != nil {
		return count, err
	}
	log.Printf("Exported %d files to %q", count, dir)
	return count, nil
}

// copyFile copies the named file from fsys to dst.
func copyFile(fsys fs.FS, name, dst string) error {
	src, err := fsys.Open(name)
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	_, err = io.Copy(out, src)
	if err != nil {
		out.Close()
		return fmt.Errorf("copy %q: %w", name, err)
	}
	return out.Close()
}
