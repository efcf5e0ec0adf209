package virtual

import (
	"strings"
)

var hiddenFiles = []string{
	"template",
	configFile,
	dataFile,
}

// isHiddenFile returns true if the given file is considered
// hidden from outside view. Anything below a hidden folder is hidden too.
func isHiddenFile(name string) bool {
	first, _, _ := strings.Cut(name, "/")
	for _, s := range hiddenFiles {
		if first == s {
			return true
		}
	}
	return false
}

// containsSpecialFile reports whether name contains a path element starting with a period.
// The name is assumed to be a delimited by forward slashes, as guaranteed by the fs.FS interface.
func containsSpecialFile(name string) bool {
	parts := strings.Split(name, "/")
	for _, part := range parts {
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}

// imageFolders are the top-level folders where images get an HTML page.
var imageFolders = []string{"photos", "images", "pictures", "cartoons", "toons", "sketches", "artwork", "drawings"}

// imageTypes are the extensions treated as images, most common first.
var imageTypes = []string{".png", ".jpg", ".gif", ".webp", ".jpeg"}

// hasImageFolderPrefix checks if the entry is in an image folder.
func hasImageFolderPrefix(s string) bool {
	for _, f := range imageFolders {
		if s == f || strings.HasPrefix(s, f+"/") {
			return true
		}
	}
	return false
}

// hasImageExtension checks if the path ends in an image type.
func hasImageExtension(s string) bool {
	for _, ext := range imageTypes {
		if strings.HasSuffix(s, ext) {
			return true
		}
	}
	return false
}
