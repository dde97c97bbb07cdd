package main

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/atomicstack/text-style-control/internal/app"
	"github.com/atomicstack/text-style-control/internal/config"
	"github.com/atomicstack/text-style-control/internal/testutil"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Checks) != 3 {
		t.Fatalf("expected 3 check entries, got %d", len(info.Checks))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Checks[i].Name != name {
			t.Fatalf("expected check %d name %q, got %q", i, name, info.Checks[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			Width:      80,
			Height:     24,
			ShowFooter: true,
			Verbose:    true,
			ExportPath: "out.png",
			Families:   []string{"Alpha"},
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"export":  "out.png",
			"width":   "80",
			"height":  "24",
			"footer":  "true",
			"verbose": "true",
		},
		Args: []string{"--export", "out.png"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["export"] != "out.png" {
		t.Fatalf("expected export flag %q, got %v", "out.png", flagsValue["export"])
	}
	if flagsValue["width"] != "80" {
		t.Fatalf("expected width 80, got %v", flagsValue["width"])
	}
	if flagsValue["height"] != "24" {
		t.Fatalf("expected height 24, got %v", flagsValue["height"])
	}
	if flagsValue["footer"] != "true" {
		t.Fatalf("expected footer flag true, got %v", flagsValue["footer"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["verbose"] != "true" {
		t.Fatalf("expected verbose flag true, got %v", flagsValue["verbose"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}

	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if !reflect.DeepEqual(cfgValue.App, cfg.App) {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}

func TestWriteFontsGroupsLongLists(t *testing.T) {
	families := make([]string, 0, 30)
	for _, initial := range "ABCDEFGHIJKLMNO" {
		families = append(families, string(initial)+" Sans", string(initial)+" Serif")
	}
	var out bytes.Buffer
	if err := writeFonts(&out, families, false); err != nil {
		t.Fatalf("writeFonts: %v", err)
	}
	testutil.AssertGolden(t, "fonts_grouped.golden", out.String())
}

func TestWriteFontsFlatSorts(t *testing.T) {
	var out bytes.Buffer
	if err := writeFonts(&out, []string{"beta", "Alpha", "gamma"}, true); err != nil {
		t.Fatalf("writeFonts: %v", err)
	}
	if got := out.String(); got != "Alpha\nbeta\ngamma\n" {
		t.Fatalf("unexpected flat output %q", got)
	}
}

func TestRootCommandRegistersFlags(t *testing.T) {
	cmd := newRootCommand(nil)
	for _, name := range []string{"width", "height", "footer", "trace", "verbose", "log-file", "root-menu", "config", "export", "font-poll"} {
		if cmd.PersistentFlags().Lookup(name) == nil {
			t.Fatalf("expected flag %q", name)
		}
	}
	fontsCmd, _, err := cmd.Find([]string{"fonts"})
	if err != nil || fontsCmd.Name() != "fonts" {
		t.Fatalf("expected fonts subcommand, got %v", err)
	}
	if fontsCmd.Flags().Lookup("flat") == nil {
		t.Fatalf("expected --flat on fonts")
	}
}
