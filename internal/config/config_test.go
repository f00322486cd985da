package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	in := &Global{
		OutputDir:   "reports",
		ReportTitle: "Quarterly Numbers",
		PageSize:    "Letter",
		MaxRows:     5000,
		TopN:        7,
	}
	if err := Save(in, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out.OutputDir != "reports" || out.ReportTitle != "Quarterly Numbers" {
		t.Fatalf("loaded = %+v", out)
	}
	if out.PageSize != "Letter" || out.MaxRows != 5000 || out.TopN != 7 {
		t.Fatalf("loaded = %+v", out)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("report_title: Custom\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.ReportTitle != "Custom" {
		t.Fatalf("title = %q", c.ReportTitle)
	}
	if c.MaxRows != 100000 || c.TopN != 10 {
		t.Fatalf("defaults not kept: %+v", c)
	}
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.PageSize != "A4" || c.MaxRows != 100000 || c.HistogramBins != 20 {
		t.Fatalf("defaults = %+v", c)
	}
}
