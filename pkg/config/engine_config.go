package config

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"

	"github.com/decker502/sparkfx/pkg/embedded"
)

// ErrInvalidEngineConfig is wrapped by every engine config validation failure.
var ErrInvalidEngineConfig = errors.New("invalid engine config")

// Vec YAML 友好的二维向量
type Vec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Vec2 converts to mgl64.
func (v Vec) Vec2() mgl64.Vec2 {
	return mgl64.Vec2{v.X, v.Y}
}

// Bounds 世界边界（轴对齐矩形）
//
// A zero-area rectangle disables bounds collision.
type Bounds struct {
	MinX float64 `yaml:"minX"`
	MinY float64 `yaml:"minY"`
	MaxX float64 `yaml:"maxX"`
	MaxY float64 `yaml:"maxY"`
}

// Enabled reports whether the rectangle has positive area.
func (b Bounds) Enabled() bool {
	return b.MaxX > b.MinX && b.MaxY > b.MinY
}

// EngineConfig 粒子引擎配置
//
// 配置文件位置: data/engine.yaml
type EngineConfig struct {
	// PoolSize 粒子池容量（启动时一次性分配，运行期间不扩容）
	PoolSize int `yaml:"poolSize"`

	// MaxParticles 同时存活的粒子上限，实际上限为 min(MaxParticles, PoolSize)。
	// 0 (未填写) 表示与 PoolSize 相同
	MaxParticles int `yaml:"maxParticles"`

	// BatchSize 每帧最多积分的粒子数量，0 表示不限制
	BatchSize int `yaml:"batchSize"`

	// Bounds 世界边界，面积为零时不做碰撞
	Bounds Bounds `yaml:"bounds"`

	// Gravity / Wind 全局力 (px/s²)
	Gravity Vec `yaml:"gravity"`
	Wind    Vec `yaml:"wind"`

	// ReapFinishedEmitters 自动移除已停止且没有存活粒子的发射器
	ReapFinishedEmitters bool `yaml:"reapFinishedEmitters"`

	// Seed 随机种子，0 表示使用当前时间
	Seed int64 `yaml:"seed"`
}

// DefaultEngineConfig returns the configuration used when no file is given.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		PoolSize:     4096,
		MaxParticles: 4096,
		BatchSize:    0,
		Gravity:      Vec{X: 0, Y: 300},
	}
}

// LoadEngineConfig 加载引擎配置
//
// Missing keys keep the values from DefaultEngineConfig.
func LoadEngineConfig(path string) (*EngineConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read engine config: %w", err)
	}

	cfg := DefaultEngineConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse engine config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate 验证配置有效性
func (c *EngineConfig) Validate() error {
	if c.PoolSize <= 0 {
		return fmt.Errorf("%w: poolSize must be positive, got %d", ErrInvalidEngineConfig, c.PoolSize)
	}
	if c.MaxParticles < 0 {
		return fmt.Errorf("%w: maxParticles must not be negative, got %d", ErrInvalidEngineConfig, c.MaxParticles)
	}
	if c.BatchSize < 0 {
		return fmt.Errorf("%w: batchSize must not be negative, got %d", ErrInvalidEngineConfig, c.BatchSize)
	}
	b := c.Bounds
	if (b != Bounds{}) && !b.Enabled() {
		return fmt.Errorf("%w: bounds invalid: min(%.1f, %.1f) >= max(%.1f, %.1f)",
			ErrInvalidEngineConfig, b.MinX, b.MinY, b.MaxX, b.MaxY)
	}
	return nil
}
