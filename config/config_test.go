package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Screen.Width != 1280 || cfg.Screen.Height != 720 {
		t.Errorf("screen = %dx%d, want 1280x720", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Arm.L1 != 40 || cfg.Arm.L2 != 70 || cfg.Arm.L3 != 50 {
		t.Errorf("links = %v/%v/%v, want 40/70/50", cfg.Arm.L1, cfg.Arm.L2, cfg.Arm.L3)
	}
	if cfg.Animation.SegmentSeconds != 4 {
		t.Errorf("segment = %v, want 4", cfg.Animation.SegmentSeconds)
	}
	if cfg.Derived.ScreenW32 != 1280 {
		t.Errorf("derived width = %v, want 1280", cfg.Derived.ScreenW32)
	}
}

func TestLoadOverridesMergeWithDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("arm:\n  l2: 90\nanimation:\n  segment_seconds: 2\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Arm.L2 != 90 {
		t.Errorf("l2 = %v, want override 90", cfg.Arm.L2)
	}
	if cfg.Arm.L1 != 40 {
		t.Errorf("l1 = %v, want default 40", cfg.Arm.L1)
	}
	if cfg.Animation.SegmentSeconds != 2 {
		t.Errorf("segment = %v, want override 2", cfg.Animation.SegmentSeconds)
	}
}

func TestComputeDerivedFillsZeroFields(t *testing.T) {
	cfg := &Config{}
	cfg.computeDerived()

	if cfg.Arm.Scale != 2 {
		t.Errorf("scale = %v, want fallback 2", cfg.Arm.Scale)
	}
	if cfg.Animation.SegmentSeconds != 4 {
		t.Errorf("segment = %v, want fallback 4", cfg.Animation.SegmentSeconds)
	}
	if cfg.Telemetry.PerfWindow != 120 {
		t.Errorf("perf window = %v, want fallback 120", cfg.Telemetry.PerfWindow)
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}

	back, err := Load(path)
	if err != nil {
		t.Fatalf("Load written config: %v", err)
	}
	if back.Arm != cfg.Arm || back.Screen != cfg.Screen {
		t.Errorf("round trip mismatch: %+v vs %+v", back, cfg)
	}
}
