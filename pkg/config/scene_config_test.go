package config

import (
	"strings"
	"testing"
)

const validSceneYAML = `
fuse:
  start: [80, 520]
  segments:
    - control1: [220, 560]
      control2: [280, 360]
      end: [420, 340]
    - control1: [560, 320]
      control2: [600, 220]
      end: [640, 150]
rocket:
  x: 660
  y: 110
  width: 48
  height: 64
spark:
  radius: 7
`

func TestParseSceneConfig_Valid(t *testing.T) {
	cfg, err := ParseSceneConfig([]byte(validSceneYAML))
	if err != nil {
		t.Fatalf("ParseSceneConfig returned error: %v", err)
	}

	if cfg.Fuse.Start != [2]float64{80, 520} {
		t.Errorf("Fuse.Start = %v, want [80 520]", cfg.Fuse.Start)
	}
	if len(cfg.Fuse.Segments) != 2 {
		t.Fatalf("len(Fuse.Segments) = %d, want 2", len(cfg.Fuse.Segments))
	}
	if cfg.Fuse.Segments[1].End != [2]float64{640, 150} {
		t.Errorf("Segments[1].End = %v, want [640 150]", cfg.Fuse.Segments[1].End)
	}
	if cfg.Rocket.X != 660 || cfg.Rocket.Y != 110 {
		t.Errorf("Rocket center = (%v, %v), want (660, 110)", cfg.Rocket.X, cfg.Rocket.Y)
	}
	if cfg.Spark.Radius != 7 {
		t.Errorf("Spark.Radius = %v, want 7", cfg.Spark.Radius)
	}
}

func TestParseSceneConfig_EmptyFuseRejected(t *testing.T) {
	yaml := `
fuse:
  start: [0, 0]
  segments: []
rocket:
  x: 100
  y: 100
`
	_, err := ParseSceneConfig([]byte(yaml))
	if err == nil {
		t.Fatal("ParseSceneConfig should reject a fuse without segments")
	}
	if !strings.Contains(err.Error(), "fuse.segments") {
		t.Errorf("error should mention fuse.segments, got: %v", err)
	}
}

func TestParseSceneConfig_MissingRocketGeometryDegrades(t *testing.T) {
	// 火箭几何缺失不是错误：尺寸按 0 处理，接近判定恒为 false
	yaml := `
fuse:
  start: [0, 0]
  segments:
    - control1: [10, 0]
      control2: [20, 0]
      end: [30, 0]
rocket:
  x: 100
  y: 100
`
	cfg, err := ParseSceneConfig([]byte(yaml))
	if err != nil {
		t.Fatalf("ParseSceneConfig returned error: %v", err)
	}
	if cfg.Rocket.Width != 0 || cfg.Rocket.Height != 0 {
		t.Errorf("missing rocket size should stay zero, got %vx%v", cfg.Rocket.Width, cfg.Rocket.Height)
	}
}

func TestParseSceneConfig_NegativeSizeNormalizedToZero(t *testing.T) {
	yaml := `
fuse:
  start: [0, 0]
  segments:
    - control1: [10, 0]
      control2: [20, 0]
      end: [30, 0]
rocket:
  x: 100
  y: 100
  width: -5
  height: -5
`
	cfg, err := ParseSceneConfig([]byte(yaml))
	if err != nil {
		t.Fatalf("ParseSceneConfig returned error: %v", err)
	}
	if cfg.Rocket.Width != 0 || cfg.Rocket.Height != 0 {
		t.Errorf("negative rocket size should normalize to zero, got %vx%v", cfg.Rocket.Width, cfg.Rocket.Height)
	}
}

func TestParseSceneConfig_SparkRadiusDefault(t *testing.T) {
	yaml := `
fuse:
  start: [0, 0]
  segments:
    - control1: [10, 0]
      control2: [20, 0]
      end: [30, 0]
`
	cfg, err := ParseSceneConfig([]byte(yaml))
	if err != nil {
		t.Fatalf("ParseSceneConfig returned error: %v", err)
	}
	if cfg.Spark.Radius != DefaultSparkRadius {
		t.Errorf("Spark.Radius default = %v, want %v", cfg.Spark.Radius, DefaultSparkRadius)
	}
}

func TestParseSceneConfig_MalformedYAML(t *testing.T) {
	_, err := ParseSceneConfig([]byte("fuse: [not a mapping"))
	if err == nil {
		t.Fatal("ParseSceneConfig should fail on malformed YAML")
	}
}
