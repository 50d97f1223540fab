package fonts

import (
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
)

// Exts are the file extensions considered font files.
var Exts = []string{".ttf", ".otf"}

// BaseDirs returns candidate font directories relative to the working directory, so fonts are
// found whether the binary runs from the repo root or from cmd/solarsim.
func BaseDirs() []string {
	return []string{"assets/fonts", "../../assets/fonts"}
}

// Find returns the path of the first font under dirs, or "" when there is none. Within a
// dir, fonts are ordered by their slash-separated relative path and the extension check
// ignores case. Missing or unreadable dirs are skipped.
func Find(dirs []string) string {
	for _, dir := range dirs {
		var found []string
		dir = filepath.Clean(dir)
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && slices.Contains(Exts, strings.ToLower(filepath.Ext(path))) {
				found = append(found, path)
			}
			return nil
		})
		if err != nil || len(found) == 0 {
			continue
		}
		return slices.MinFunc(found, func(a, b string) int {
			return strings.Compare(filepath.ToSlash(a), filepath.ToSlash(b))
		})
	}
	return ""
}
