package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SceneConfig 场景配置
// 描述设计坐标系中的引线曲线、火箭位置和火花外观，
// 从 YAML 加载（assets/config/scene.yaml），缺省时使用内嵌默认值
type SceneConfig struct {
	Fuse   FuseConfig   `yaml:"fuse"`   // 引线曲线
	Rocket RocketConfig `yaml:"rocket"` // 目标火箭
	Spark  SparkConfig  `yaml:"spark"`  // 火花标记
}

// FuseConfig 引线曲线定义：起点 + 三次贝塞尔段链
// 形状上等价于 SVG 的 "M start C c1 c2 end ..." 路径
type FuseConfig struct {
	Start    [2]float64      `yaml:"start"`    // 起点 [x, y]
	Segments []SegmentConfig `yaml:"segments"` // 至少一段
}

// SegmentConfig 一段三次贝塞尔曲线
type SegmentConfig struct {
	Control1 [2]float64 `yaml:"control1"` // 第一控制点 [x, y]
	Control2 [2]float64 `yaml:"control2"` // 第二控制点 [x, y]
	End      [2]float64 `yaml:"end"`      // 锚点 [x, y]
}

// RocketConfig 目标火箭的位置和包围盒尺寸（设计坐标）
// 宽高缺失或非法时按 0 处理：零尺寸目标的接近判定恒为 false，
// 系统退化为"永远点不着"而不是崩溃
type RocketConfig struct {
	X      float64 `yaml:"x"`      // 中心X
	Y      float64 `yaml:"y"`      // 中心Y
	Width  float64 `yaml:"width"`  // 包围盒宽度
	Height float64 `yaml:"height"` // 包围盒高度
}

// SparkConfig 火花标记外观
type SparkConfig struct {
	Radius float64 `yaml:"radius"` // 渲染半径（像素），缺省 7
}

// DefaultSparkRadius 火花半径缺省值
const DefaultSparkRadius = 7.0

// LoadSceneConfig 从 YAML 文件加载场景配置
func LoadSceneConfig(filePath string) (*SceneConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene config file: %w", err)
	}
	return ParseSceneConfig(data)
}

// ParseSceneConfig 从 YAML 字节流解析场景配置（内嵌默认配置走这里）
func ParseSceneConfig(data []byte) (*SceneConfig, error) {
	var cfg SceneConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene config YAML: %w", err)
	}

	if err := validateSceneConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid scene config: %w", err)
	}

	normalizeSceneConfig(&cfg)
	return &cfg, nil
}

// validateSceneConfig 验证配置的有效性
// 只有引线是硬性要求：没有曲线就没有可约束的路径；
// 火箭几何缺失属于可降级的软错误，不在这里拦截
func validateSceneConfig(cfg *SceneConfig) error {
	if len(cfg.Fuse.Segments) == 0 {
		return fmt.Errorf("fuse.segments cannot be empty")
	}
	return nil
}

// normalizeSceneConfig 归一化可降级的字段
func normalizeSceneConfig(cfg *SceneConfig) {
	// 负尺寸视为几何缺失
	if cfg.Rocket.Width < 0 {
		cfg.Rocket.Width = 0
	}
	if cfg.Rocket.Height < 0 {
		cfg.Rocket.Height = 0
	}
	if cfg.Spark.Radius <= 0 {
		cfg.Spark.Radius = DefaultSparkRadius
	}
}
