package menu

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is the raw parsed config file, before validation.
type Document struct {
	rawMenu
}

type rawMenu struct {
	FuzzelArgs   []string          `yaml:"fuzzel-args"`
	FuzzelConfig map[string]string `yaml:"fuzzel-config"`
	IconDirs     []string          `yaml:"icon-dirs"`
	Items        []rawItem         `yaml:"items"`
}

type rawItem struct {
	Name    string   `yaml:"name"`
	Icon    string   `yaml:"icon"`
	Command []string `yaml:"command"`
	rawMenu `yaml:",inline"`
}

// hasMenuKeys reports whether the item carries any menu-only keys. An item
// with an explicit empty items list still counts as a menu.
func (i *rawItem) hasMenuKeys() bool {
	return i.Items != nil || len(i.FuzzelArgs) > 0 || len(i.FuzzelConfig) > 0 || len(i.IconDirs) > 0
}

// Parse decodes the YAML menu document into its raw form.
func Parse(src []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(src, &doc.rawMenu); err != nil {
		return nil, fmt.Errorf("parse menu document: %w", err)
	}
	return &doc, nil
}

// Load reads, parses, and validates the menu file at path.
func Load(path string) (*Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read menu file: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return Build(doc)
}

func normalizeIconDirs(dirs []string, path []string) ([]string, error) {
	if len(dirs) == 0 {
		return nil, nil
	}
	out := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		expanded, err := expandHome(dir)
		if err != nil {
			return nil, parseErrorf(path, "icon dir %q: %v", dir, err)
		}
		if !filepath.IsAbs(expanded) {
			return nil, parseErrorf(path, "icon dir %q must be absolute", dir)
		}
		out = append(out, expanded)
	}
	return out, nil
}

func expandHome(dir string) (string, error) {
	if dir != "~" && !strings.HasPrefix(dir, "~/") {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(dir, "~")), nil
}
