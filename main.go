package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/atomicstack/text-style-control/internal/app"
	"github.com/atomicstack/text-style-control/internal/config"
	"github.com/atomicstack/text-style-control/internal/fontgroup"
	"github.com/atomicstack/text-style-control/internal/fonts"
	"github.com/atomicstack/text-style-control/internal/format/table"
	"github.com/atomicstack/text-style-control/internal/logging"
	"github.com/atomicstack/text-style-control/internal/logging/events"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCommand(os.Environ()).ExecuteContext(ctx); err != nil {
		if errors.Is(err, config.ErrInvalidConfig) {
			fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand(environ []string) *cobra.Command {
	root := &cobra.Command{
		Use:           "text-style-control",
		Short:         "Edit the style of a text element from the terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	opts := config.RegisterFlags(root.PersistentFlags(), environ)

	root.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(opts, os.Args[1:])
		if err != nil {
			return err
		}
		traceStartup(cfg)
		if err := app.Run(cmd.Context(), cfg.App); err != nil {
			logging.Error(err)
			return err
		}
		return nil
	}
	root.AddCommand(newFontsCommand(opts))
	return root
}

// loadConfig resolves flags and the config file, then applies the logging
// settings.
func loadConfig(opts *config.Options, args []string) (config.Config, error) {
	cfg, err := opts.Resolve(args)
	if err != nil {
		return config.Config{}, err
	}
	if err := config.Validate(cfg); err != nil {
		return config.Config{}, err
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)
	logging.SetVerbose(cfg.Logging.Verbose)
	events.App.Config(cfg.File, cfg.File != "")
	return cfg, nil
}

func newFontsCommand(opts *config.Options) *cobra.Command {
	var flat bool
	cmd := &cobra.Command{
		Use:   "fonts",
		Short: "List installed font families as the font menu groups them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts, os.Args[1:])
			if err != nil {
				return err
			}
			families, err := cfg.App.Enumerator().ListInstalledFontFamilies()
			if err != nil {
				return err
			}
			return writeFonts(cmd.OutOrStdout(), families, flat)
		},
	}
	cmd.Flags().BoolVar(&flat, "flat", false, "print one family per line without grouping")
	return cmd
}

// writeFonts prints families either sorted one per line or as the group
// table shown by the font menu.
func writeFonts(w io.Writer, families []string, flat bool) error {
	if flat {
		for _, family := range fonts.Sorted(families) {
			if _, err := fmt.Fprintln(w, family); err != nil {
				return err
			}
		}
		return nil
	}
	groups := fontgroup.Partition(families)
	rows := make([][]string, 0, len(groups)+1)
	rows = append(rows, []string{"GROUP", "COUNT", "FIRST", "LAST"})
	for _, g := range groups {
		first, last := g.Members[0], g.Members[len(g.Members)-1]
		rows = append(rows, []string{g.Label, strconv.Itoa(len(g.Members)), first, last})
	}
	for _, line := range table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignRight}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = collectTTYDetails()
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected `json:"detected,omitempty"`
	Checks   []ttyCheck   `json:"checks"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyCheck struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails inspects standard descriptors for terminal support and dimensions.
func collectTTYDetails() ttyDetails {
	streams := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	results := make([]ttyCheck, 0, len(streams))
	var detected *ttyDetected
	for _, stream := range streams {
		entry := ttyCheck{Name: stream.name}
		fd := int(stream.fd)
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width = width
				entry.Height = height
				if detected == nil {
					detected = &ttyDetected{Source: stream.name, Width: width, Height: height}
				}
			} else {
				entry.Error = err.Error()
			}
		} else {
			entry.IsTerminal = false
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Checks: results}
}
