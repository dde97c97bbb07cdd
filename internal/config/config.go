package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/text-style-control/internal/app"
	"github.com/atomicstack/text-style-control/internal/style"
	"github.com/spf13/pflag"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	File    string
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
	Verbose  bool
}

const (
	envWidth      = "TEXT_STYLE_CONTROL_WIDTH"
	envHeight     = "TEXT_STYLE_CONTROL_HEIGHT"
	envShowFooter = "TEXT_STYLE_CONTROL_FOOTER"
	envVerbose    = "TEXT_STYLE_CONTROL_VERBOSE"
	envTrace      = "TEXT_STYLE_CONTROL_TRACE"
	envLogFile    = "TEXT_STYLE_CONTROL_LOG_FILE"
	envRootMenu   = "TEXT_STYLE_CONTROL_ROOT_MENU"
	envConfig     = "TEXT_STYLE_CONTROL_CONFIG"
	envExport     = "TEXT_STYLE_CONTROL_EXPORT"
	envFontPoll   = "TEXT_STYLE_CONTROL_FONT_POLL"
)

const (
	DefaultExportPath = "text-style.png"
	DefaultFontPoll   = 30 * time.Second
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

var rootMenus = map[string]struct{}{"": {}, "font": {}, "justify": {}}

// Options holds parsed flag values until Resolve merges them with the
// optional config file.
type Options struct {
	width    int
	height   int
	footer   bool
	trace    bool
	verbose  bool
	logFile  string
	rootMenu string
	file     string
	export   string
	fontPoll time.Duration
}

// RegisterFlags adds the application flags to fs. Defaults come from the
// TEXT_STYLE_CONTROL_* variables in environ.
func RegisterFlags(fs *pflag.FlagSet, environ []string) *Options {
	env := parseEnv(environ)
	o := &Options{}
	fs.IntVar(&o.width, "width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	fs.IntVar(&o.height, "height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	fs.BoolVar(&o.footer, "footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	fs.BoolVar(&o.trace, "trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	fs.BoolVarP(&o.verbose, "verbose", "v", envOrBool(env, envVerbose, false), "print success messages for actions")
	fs.StringVar(&o.logFile, "log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	fs.StringVar(&o.rootMenu, "root-menu", envOrDefault(env, envRootMenu, ""), "open a submenu directly (font, justify)")
	fs.StringVarP(&o.file, "config", "c", envOrDefault(env, envConfig, ""), "path to a TOML file with initial style and font settings")
	fs.StringVar(&o.export, "export", envOrDefault(env, envExport, DefaultExportPath), "default path for PNG export")
	fs.DurationVar(&o.fontPoll, "font-poll", envOrDuration(env, envFontPoll, 0), "font rescan interval (0 uses the config file or 30s)")
	return o
}

// Resolve validates the parsed flags, loads the config file and builds the
// runtime configuration.
func (o *Options) Resolve(args []string) (Config, error) {
	if o.width < 0 {
		return Config{}, fmt.Errorf("%w: width must be >= 0 (got %d)", ErrInvalidConfig, o.width)
	}
	if o.height < 0 {
		return Config{}, fmt.Errorf("%w: height must be >= 0 (got %d)", ErrInvalidConfig, o.height)
	}
	if o.fontPoll < 0 {
		return Config{}, fmt.Errorf("%w: font-poll must be >= 0 (got %s)", ErrInvalidConfig, o.fontPoll)
	}

	file, err := ReadFile(o.file)
	if err != nil {
		return Config{}, err
	}
	snapshot, err := file.Style.apply(style.New().Snapshot())
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, o.file, err)
	}
	poll, err := file.Fonts.pollInterval()
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, o.file, err)
	}
	if o.fontPoll > 0 {
		poll = o.fontPoll
	}
	watchDirs := file.Fonts.WatchDirs
	if watchDirs == nil {
		watchDirs = DefaultWatchDirs()
	}

	cfg := Config{
		App: app.Config{
			Width:      o.width,
			Height:     o.height,
			ShowFooter: o.footer,
			Verbose:    o.verbose,
			RootMenu:   strings.TrimSpace(o.rootMenu),
			ExportPath: o.export,
			Style:      snapshot,
			Families:   append([]string(nil), file.Fonts.Families...),
			FontPoll:   poll,
			WatchDirs:  append([]string(nil), watchDirs...),
		},
		Logging: Logging{
			FilePath: o.logFile,
			Trace:    o.trace,
			Verbose:  o.verbose,
		},
		File: o.file,
		Flags: map[string]string{
			"width":    strconv.Itoa(o.width),
			"height":   strconv.Itoa(o.height),
			"footer":   strconv.FormatBool(o.footer),
			"trace":    strconv.FormatBool(o.trace),
			"verbose":  strconv.FormatBool(o.verbose),
			"logFile":  o.logFile,
			"rootMenu": o.rootMenu,
			"config":   o.file,
			"export":   o.export,
			"fontPoll": poll.String(),
		},
		Args: append([]string(nil), args...),
	}
	return cfg, nil
}

// Validate checks rules that span several settings.
func Validate(cfg Config) error {
	if _, ok := rootMenus[cfg.App.RootMenu]; !ok {
		return fmt.Errorf("%w: unknown root menu %q (want font or justify)", ErrInvalidConfig, cfg.App.RootMenu)
	}
	if strings.TrimSpace(cfg.App.ExportPath) == "" {
		return fmt.Errorf("%w: export path must not be empty", ErrInvalidConfig)
	}
	if ext := strings.ToLower(filepath.Ext(cfg.App.ExportPath)); ext != ".png" {
		return fmt.Errorf("%w: export path %q must end in .png", ErrInvalidConfig, cfg.App.ExportPath)
	}
	return nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}
