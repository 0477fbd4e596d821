// Package naming derives filesystem-safe, collision-free output file stems.
package naming

import (
	"path/filepath"
	"strconv"
	"strings"
)

// unsafeChars are replaced by '_' in derived stems.
const unsafeChars = `<>:"/\|?*`

var sanitizer = strings.NewReplacer(
	"<", "_", ">", "_", ":", "_", `"`, "_",
	"/", "_", `\`, "_", "|", "_", "?", "_", "*", "_",
)

// Sanitize replaces every character of <>:"/\|?* with '_'. Case and
// whitespace are preserved.
func Sanitize(name string) string {
	return sanitizer.Replace(name)
}

// IsSafe reports whether name contains none of the unsafe characters.
func IsSafe(name string) bool {
	return !strings.ContainsAny(name, unsafeChars)
}

// ExistsFunc reports whether a path is already taken on disk.
type ExistsFunc func(path string) (bool, error)

// Namer hands out unique stems for one export run.
//
// A stem is unique when no earlier call of the same Namer returned it and,
// if an ExistsFunc is set, no file <dir>/<stem><ext> exists yet. Collisions
// get a numeric suffix: Item, Item_1, Item_2, ...
type Namer struct {
	dir    string
	ext    string
	exists ExistsFunc
	used   map[string]struct{}
}

// NewNamer returns a Namer for files with extension ext inside dir.
// exists may be nil to track only stems handed out by this Namer.
func NewNamer(dir, ext string, exists ExistsFunc) *Namer {
	return &Namer{
		dir:    dir,
		ext:    ext,
		exists: exists,
		used:   make(map[string]struct{}),
	}
}

// Next sanitizes raw and returns the first free stem derived from it.
func (n *Namer) Next(raw string) (string, error) {
	base := Sanitize(raw)
	stem := base
	for counter := 1; ; counter++ {
		taken, err := n.taken(stem)
		if err != nil {
			return "", err
		}
		if !taken {
			break
		}
		stem = base + "_" + strconv.Itoa(counter)
	}
	n.used[stem] = struct{}{}
	return stem, nil
}

// Path returns the output path for stem.
func (n *Namer) Path(stem string) string {
	return filepath.Join(n.dir, stem+n.ext)
}

// Used returns how many stems this Namer handed out.
func (n *Namer) Used() int {
	return len(n.used)
}

func (n *Namer) taken(stem string) (bool, error) {
	if _, ok := n.used[stem]; ok {
		return true, nil
	}
	if n.exists == nil {
		return false, nil
	}
	return n.exists(n.Path(stem))
}
