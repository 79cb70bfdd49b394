// internal/genefetchcli/options_test.go
package genefetchcli

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newFS() *flag.FlagSet { return flag.NewFlagSet("test", flag.ContinueOnError) }

func TestParseDefaults(t *testing.T) {
	o, err := ParseArgs(newFS(), []string{
		"--organism", "Escherichia coli",
		"--email", "me@example.org",
		"--out", "genes.txt",
	})
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if o.BatchSize != 500 || o.RetMax != 10000 {
		t.Errorf("defaults wrong: %+v", o)
	}
	if o.Interval != 340*time.Millisecond {
		t.Errorf("interval = %v", o.Interval)
	}
}

func TestErrorMissingRequired(t *testing.T) {
	cases := [][]string{
		{"--email", "e@x.org", "--out", "g.txt"},
		{"--organism", "E. coli", "--out", "g.txt"},
		{"--organism", "E. coli", "--email", "e@x.org"},
	}
	for _, argv := range cases {
		if _, err := ParseArgs(newFS(), argv); err == nil {
			t.Errorf("ParseArgs(%v): want error", argv)
		}
	}
}

func TestErrorBadTunables(t *testing.T) {
	base := []string{"--organism", "x", "--email", "e@x.org", "--out", "g.txt"}
	for _, extra := range [][]string{
		{"--batch-size", "0"},
		{"--retmax", "-5"},
	} {
		if _, err := ParseArgs(newFS(), append(append([]string{}, base...), extra...)); err == nil {
			t.Errorf("extra %v: want error", extra)
		}
	}
}

func TestConfigFileFillsDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "harvest.yaml")
	data := "email: cfg@example.org\nbatch_size: 50\nretmax: 200\ninterval: 1ms\n"
	if err := os.WriteFile(cfg, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	o, err := ParseArgs(newFS(), []string{
		"--organism", "Escherichia coli",
		"--out", "genes.txt",
		"--config", "harvest",
		"--workspace", dir,
	})
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if o.Email != "cfg@example.org" || o.BatchSize != 50 || o.RetMax != 200 {
		t.Errorf("config not merged: %+v", o)
	}
	if o.Interval != time.Millisecond {
		t.Errorf("interval = %v", o.Interval)
	}
}

func TestFlagsBeatConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "harvest.yaml")
	if err := os.WriteFile(cfg, []byte("email: cfg@example.org\nbatch_size: 50\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	o, err := ParseArgs(newFS(), []string{
		"--organism", "Escherichia coli",
		"--email", "cli@example.org",
		"--out", "genes.txt",
		"--batch-size", "25",
		"--config", "harvest",
		"--workspace", dir,
	})
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if o.Email != "cli@example.org" || o.BatchSize != 25 {
		t.Errorf("flags should win over config: %+v", o)
	}
}

func TestMissingConfigFileErrors(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{
		"--organism", "x", "--email", "e@x.org", "--out", "g.txt",
		"--config", "nope", "--workspace", t.TempDir(),
	})
	if err == nil {
		t.Fatal("want error for unreadable config")
	}
}
