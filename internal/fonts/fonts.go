// Package fonts lists the font families installed on the host.
package fonts

import (
	"errors"
	"os"
	"sort"
	"strings"

	"github.com/atomicstack/text-style-control/internal/logging"
	"github.com/atomicstack/text-style-control/internal/logging/events"
	"github.com/go-text/typesetting/fontscan"
)

// ErrUnavailable is returned when no font source could be read.
var ErrUnavailable = errors.New("font enumeration unavailable")

// Enumerator reports installed font family names. Order is the source's
// encounter order; callers must not assume it is sorted.
type Enumerator interface {
	ListInstalledFontFamilies() ([]string, error)
}

// System scans the platform font directories using fontscan. The scan index
// is cached under CacheDir so repeated calls are cheap.
type System struct {
	CacheDir string
}

// NewSystem returns a System enumerator caching under the user cache dir.
func NewSystem() System {
	dir, err := os.UserCacheDir()
	if err != nil {
		logging.Error(err)
		dir = os.TempDir()
	}
	return System{CacheDir: dir}
}

func (s System) ListInstalledFontFamilies() ([]string, error) {
	footprints, err := fontscan.SystemFonts(logging.PrintfLogger{}, s.CacheDir)
	if err != nil {
		events.Font.Scan("system", 0, err)
		return nil, errors.Join(ErrUnavailable, err)
	}
	families := make([]string, 0, len(footprints))
	for _, fp := range footprints {
		families = append(families, fp.Family)
	}
	families = Unique(families)
	events.Font.Scan("system", len(families), nil)
	return families, nil
}

// Static is a fixed list of families, used for configuration overrides and tests.
type Static []string

func (s Static) ListInstalledFontFamilies() ([]string, error) {
	families := Unique(s)
	events.Font.Scan("static", len(families), nil)
	return families, nil
}

// Failing always reports err. It stands in for hosts without font access.
type Failing struct{ Err error }

func (f Failing) ListInstalledFontFamilies() ([]string, error) {
	err := f.Err
	if err == nil {
		err = ErrUnavailable
	}
	events.Font.Scan("failing", 0, err)
	return nil, err
}

// Unique drops blank names and duplicates, keeping first-seen order.
// Duplicates are detected case-insensitively since font directories often
// carry the same family in several files with different capitalisation.
func Unique(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, trimmed)
	}
	return out
}

// Sorted returns a case-insensitively sorted copy of names.
func Sorted(names []string) []string {
	out := append([]string(nil), names...)
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i]) < strings.ToLower(out[j])
	})
	return out
}
