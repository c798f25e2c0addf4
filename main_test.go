package main

import (
	"testing"

	"github.com/Gingeh/uff/internal/app"
	"github.com/Gingeh/uff/internal/config"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			ConfigPath: "/home/me/.config/uff/config.yaml",
			FuzzelPath: "/usr/bin/fuzzel",
			Verbose:    true,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"config": "/home/me/.config/uff/config.yaml",
			"fuzzel": "/usr/bin/fuzzel",
			"trace":  "true",
		},
		Args: []string{"-config", "/home/me/.config/uff/config.yaml"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["config"] != "/home/me/.config/uff/config.yaml" {
		t.Fatalf("expected config flag recorded, got %#v", flagsValue)
	}
	argv, ok := payload["argv"].([]string)
	if !ok || len(argv) != 2 {
		t.Fatalf("expected argv captured, got %#v", payload["argv"])
	}
	if _, ok := payload["tty"]; !ok {
		t.Fatal("expected tty details in payload")
	}
}
