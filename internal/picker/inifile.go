package picker

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/ini.v1"
)

// writeConfigFile materializes per-menu fuzzel config overrides as an
// ephemeral ini file and returns its path. Dotted keys select a section
// ("colors.background" lands in [colors]); bare keys land in [main], the
// section fuzzel reads top-level options from. The caller removes the file
// once the picker has exited.
func writeConfigFile(overrides map[string]string) (string, error) {
	file := ini.Empty()

	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		section, name := "main", key
		if idx := strings.IndexByte(key, '.'); idx > 0 {
			section, name = key[:idx], key[idx+1:]
		}
		file.Section(section).Key(name).SetValue(overrides[key])
	}

	tmp, err := os.CreateTemp("", "uff-fuzzel-*.ini")
	if err != nil {
		return "", fmt.Errorf("create picker config file: %w", err)
	}
	if _, err := file.WriteTo(tmp); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write picker config file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("close picker config file: %w", err)
	}
	return tmp.Name(), nil
}
