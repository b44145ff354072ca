package game

import (
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/decker502/sparkfx/pkg/config"
)

// SandboxSettings 沙盒设置
// 演示程序在两次运行之间保留的参数
type SandboxSettings struct {
	Gravity      float64 `yaml:"gravity"`      // 竖直重力 (px/s²)
	Wind         float64 `yaml:"wind"`         // 水平风力 (px/s²)
	MaxParticles int     `yaml:"maxParticles"` // 粒子上限
	Template     string  `yaml:"template"`     // 当前选中的模板
	ShowHUD      bool    `yaml:"showHUD"`      // 是否显示统计信息
}

// DefaultSettings 返回默认设置
func DefaultSettings() *SandboxSettings {
	return &SandboxSettings{
		Gravity:      300,
		Wind:         0,
		MaxParticles: 3000,
		Template:     config.TemplateExplosion,
		ShowHUD:      true,
	}
}

// SettingsManager 设置管理器
// 负责沙盒设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager   // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *SandboxSettings // 当前设置
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "sandbox"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 加载失败不是致命错误，会回退到默认设置。
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	// 以默认值为底，缺失的字段保持默认
	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if loaded.MaxParticles < 0 {
		loaded.MaxParticles = 0
	}

	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *SandboxSettings {
	return sm.settings
}

// SetGravity 设置竖直重力
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetGravity(g float64) {
	sm.settings.Gravity = g
}

// SetWind 设置水平风力
func (sm *SettingsManager) SetWind(w float64) {
	sm.settings.Wind = w
}

// SetMaxParticles 设置粒子上限，负值按 0 处理
func (sm *SettingsManager) SetMaxParticles(n int) {
	if n < 0 {
		n = 0
	}
	sm.settings.MaxParticles = n
}

// SetTemplate 设置当前模板
func (sm *SettingsManager) SetTemplate(name string) {
	sm.settings.Template = name
}

// ToggleHUD 切换统计信息显示
func (sm *SettingsManager) ToggleHUD() bool {
	sm.settings.ShowHUD = !sm.settings.ShowHUD
	return sm.settings.ShowHUD
}

// ApplyTo pushes the forces and particle cap to engine.
func (sm *SettingsManager) ApplyTo(engine *ParticleEngine) error {
	s := sm.settings
	engine.SetGlobalForces(mgl64.Vec2{0, s.Gravity}, mgl64.Vec2{s.Wind, 0})
	return engine.SetMaxParticles(s.MaxParticles)
}
