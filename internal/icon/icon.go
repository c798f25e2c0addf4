// Package icon resolves configured icon specs to concrete image files.
package icon

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// extensions are probed in order; the first hit wins.
var extensions = []string{".png", ".svg"}

// Resolver locates icon files for bare names across an ordered list of
// search roots. The platform data directories are always consulted last,
// after every configured directory.
type Resolver struct {
	systemDirs []string
}

// NewResolver builds a resolver whose trailing search roots are the XDG data
// directories followed by the XDG data home.
func NewResolver() *Resolver {
	dirs := append([]string(nil), xdg.DataDirs...)
	dirs = append(dirs, xdg.DataHome)
	return &Resolver{systemDirs: dirs}
}

// NewResolverWithSystemDirs builds a resolver with an explicit trailing dir
// list. Tests use this to avoid depending on the host environment.
func NewResolverWithSystemDirs(dirs []string) *Resolver {
	return &Resolver{systemDirs: append([]string(nil), dirs...)}
}

// SearchDirs returns the full lookup order for a menu level: the configured
// dirs in inheritance order, then the system data dirs.
func (r *Resolver) SearchDirs(configured []string) []string {
	out := make([]string, 0, len(configured)+len(r.systemDirs))
	out = append(out, configured...)
	out = append(out, r.systemDirs...)
	return out
}

// Resolve maps an icon spec to an existing file path. Specs that already
// name a file (absolute paths, anything containing a separator, or a path
// that exists as given) are returned unchanged when present on disk. Bare
// names are probed as <dir>/<name>.png then <dir>/<name>.svg in each search
// dir in order. A miss returns ok=false; absent icons are not an error.
func (r *Resolver) Resolve(spec string, configured []string) (string, bool) {
	if spec == "" {
		return "", false
	}
	if filepath.IsAbs(spec) || strings.ContainsRune(spec, os.PathSeparator) {
		if fileExists(spec) {
			return spec, true
		}
		return "", false
	}
	if fileExists(spec) {
		return spec, true
	}
	for _, dir := range r.SearchDirs(configured) {
		for _, ext := range extensions {
			candidate := filepath.Join(dir, spec+ext)
			if fileExists(candidate) {
				return candidate, true
			}
		}
	}
	return "", false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
