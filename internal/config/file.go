package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/atomicstack/text-style-control/internal/style"
)

// File is the optional TOML configuration. Every field is optional; absent
// values keep the built-in defaults.
type File struct {
	Style StyleSection `toml:"style"`
	Fonts FontsSection `toml:"fonts"`
}

type StyleSection struct {
	Text       *string  `toml:"text"`
	Font       *string  `toml:"font"`
	Size       *int     `toml:"size"`
	Color      *string  `toml:"color"`
	LineHeight *float64 `toml:"line_height"`
	Justify    *string  `toml:"justify"`
	Bold       *bool    `toml:"bold"`
	Italic     *bool    `toml:"italic"`
}

type FontsSection struct {
	Families     []string `toml:"families"`
	PollInterval string   `toml:"poll_interval"`
	WatchDirs    []string `toml:"watch_dirs"`
}

// ReadFile decodes path. An empty path yields an empty File.
func ReadFile(path string) (File, error) {
	var f File
	if strings.TrimSpace(path) == "" {
		return f, nil
	}
	meta, err := toml.DecodeFile(path, &f)
	if err != nil {
		return File{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return File{}, fmt.Errorf("%w: %s: unknown keys %s", ErrInvalidConfig, path, strings.Join(keys, ", "))
	}
	return f, nil
}

// apply overlays the section onto base using the model's validating setters.
func (s StyleSection) apply(base style.Snapshot) (style.Snapshot, error) {
	m, err := style.FromSnapshot(base)
	if err != nil {
		return base, err
	}
	if s.Text != nil {
		if err := m.SetText(*s.Text); err != nil {
			return base, fmt.Errorf("style.text: %w", err)
		}
	}
	if s.Font != nil {
		m.SetFontFamily(strings.TrimSpace(*s.Font))
	}
	if s.Size != nil {
		if err := m.SetFontSize(*s.Size); err != nil {
			return base, fmt.Errorf("style.size: %w", err)
		}
	}
	if s.Color != nil {
		c, err := style.ParseColor(*s.Color)
		if err != nil {
			return base, fmt.Errorf("style.color: %w", err)
		}
		m.SetColor(c)
	}
	if s.LineHeight != nil {
		if err := m.SetLineHeight(*s.LineHeight); err != nil {
			return base, fmt.Errorf("style.line_height: %w", err)
		}
	}
	if s.Justify != nil {
		j, err := style.ParseJustification(*s.Justify)
		if err != nil {
			return base, fmt.Errorf("style.justify: %w", err)
		}
		m.SetJustification(j)
	}
	if s.Bold != nil {
		m.SetBold(*s.Bold)
	}
	if s.Italic != nil {
		m.SetItalic(*s.Italic)
	}
	return m.Snapshot(), nil
}

func (s FontsSection) pollInterval() (time.Duration, error) {
	if strings.TrimSpace(s.PollInterval) == "" {
		return DefaultFontPoll, nil
	}
	d, err := time.ParseDuration(s.PollInterval)
	if err != nil {
		return 0, fmt.Errorf("fonts.poll_interval: %v", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("fonts.poll_interval must be >= 0 (got %s)", d)
	}
	return d, nil
}

// DefaultWatchDirs returns the existing per-platform font directories.
func DefaultWatchDirs() []string {
	home, _ := os.UserHomeDir()
	var candidates []string
	switch runtime.GOOS {
	case "darwin":
		candidates = []string{"/Library/Fonts", "/System/Library/Fonts", filepath.Join(home, "Library", "Fonts")}
	case "windows":
		candidates = []string{filepath.Join(os.Getenv("WINDIR"), "Fonts")}
	default:
		candidates = []string{"/usr/share/fonts", "/usr/local/share/fonts", filepath.Join(home, ".fonts"), filepath.Join(home, ".local", "share", "fonts")}
	}
	dirs := make([]string, 0, len(candidates))
	for _, dir := range candidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}
