package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
	"time"
)

//go:embed *.yaml
var PrefabsFS embed.FS

// Load reads a prefab from prefabs/ on disk when present, falling back to
// the embedded copy. The disk path is what makes hot reload useful.
func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

// ModTime reports when the disk copy of a prefab last changed. Embedded-only
// prefabs report false.
func ModTime(name string) (time.Time, bool) {
	clean := cleanPrefabPath(name)
	info, err := os.Stat(diskPrefabPath(clean))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

// BaseName maps a watched file path back to the prefab name Load expects.
func BaseName(path string) string {
	return filepath.Base(filepath.FromSlash(path))
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		return after
	}
	return s
}

func diskPrefabPath(clean string) string {
	return filepath.Join("prefabs", filepath.FromSlash(clean))
}

// ReloadFilter drops watcher events for prefabs whose disk copy has not
// changed since the last accepted event. Editors often emit several writes
// per save.
type ReloadFilter struct {
	seen map[string]time.Time
}

// Changed reports whether name has a newer modification time than the last
// time Changed accepted it. A prefab with no disk copy is never changed.
func (f *ReloadFilter) Changed(name string) bool {
	clean := cleanPrefabPath(name)
	mod, ok := ModTime(clean)
	if !ok {
		return false
	}
	if f.seen == nil {
		f.seen = make(map[string]time.Time)
	}
	if last, ok := f.seen[clean]; ok && !mod.After(last) {
		return false
	}
	f.seen[clean] = mod
	return true
}
