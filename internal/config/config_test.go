package config

import "testing"

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.App.ConfigPath != "" || cfg.App.FuzzelPath != "" {
		t.Fatalf("expected empty path defaults, got %#v", cfg.App)
	}
	if cfg.App.Verbose || cfg.Logging.Trace {
		t.Fatalf("expected booleans off by default, got %#v", cfg)
	}
}

func TestLoadArgsFlagsWin(t *testing.T) {
	cfg, err := LoadArgs(
		[]string{"-config", "/tmp/menu.yaml", "-fuzzel", "/usr/bin/fuzzel", "-trace", "-verbose", "-log-file", "/tmp/uff.log"},
		[]string{"UFF_CONFIG=/ignored.yaml"},
	)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.App.ConfigPath != "/tmp/menu.yaml" {
		t.Fatalf("expected flag to beat env, got %q", cfg.App.ConfigPath)
	}
	if cfg.App.FuzzelPath != "/usr/bin/fuzzel" || !cfg.App.Verbose {
		t.Fatalf("unexpected app config %#v", cfg.App)
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "/tmp/uff.log" {
		t.Fatalf("unexpected logging config %#v", cfg.Logging)
	}
}

func TestLoadArgsEnvFallback(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{
		"UFF_CONFIG=/home/me/.config/uff/config.yaml",
		"UFF_TRACE=1",
		"UFF_VERBOSE=true",
	})
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.App.ConfigPath != "/home/me/.config/uff/config.yaml" {
		t.Fatalf("expected env config path, got %q", cfg.App.ConfigPath)
	}
	if !cfg.Logging.Trace || !cfg.App.Verbose {
		t.Fatalf("expected env booleans honored, got %#v", cfg)
	}
}

func TestLoadArgsRejectsPositionalArguments(t *testing.T) {
	if _, err := LoadArgs([]string{"extra"}, nil); err == nil {
		t.Fatal("expected error for positional argument")
	}
}

func TestLoadArgsRecordsFlagsForTracing(t *testing.T) {
	cfg, err := LoadArgs([]string{"-trace"}, nil)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Flags["trace"] != "true" {
		t.Fatalf("expected trace flag recorded, got %#v", cfg.Flags)
	}
	if len(cfg.Args) != 1 || cfg.Args[0] != "-trace" {
		t.Fatalf("expected argv captured, got %#v", cfg.Args)
	}
}

func TestValidateMissingMenuFile(t *testing.T) {
	cfg := Config{}
	cfg.App.ConfigPath = "/nonexistent/menu.yaml"
	if err := Validate(cfg); err == nil {
		t.Fatal("expected validation error for missing menu file")
	}
	if err := Validate(Config{}); err != nil {
		t.Fatalf("expected empty path to defer to the default, got %v", err)
	}
}
