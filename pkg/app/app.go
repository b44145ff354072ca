// Package app 提供粒子沙盒的核心包装器
//
// 该包将沙盒初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/sparkfx/pkg/config"
	"github.com/decker502/sparkfx/pkg/game"
	"github.com/decker502/sparkfx/pkg/render"
)

const (
	// ScreenWidth / ScreenHeight 逻辑屏幕尺寸
	ScreenWidth  = 960
	ScreenHeight = 640

	forceStep     = 50.0
	impulseRadius = 160.0
	impulseForce  = 600.0
)

// ErrQuit is returned from Update when the user asks to quit.
var ErrQuit = errors.New("quit requested")

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// EnginePath 引擎配置文件，为空则使用默认配置
	EnginePath string
	// TemplatesPath 额外的模板文件，为空则只使用内置模板
	TemplatesPath string
	// AppName gdata 存储目录名，为空则不保存设置
	AppName string
}

// App 是沙盒应用的核心包装器，实现 ebiten.Game 接口
//
// Controls:
//
//	Left click        - Spawn the selected template at the cursor
//	Right click       - Push nearby particles away
//	Tab / Shift+Tab   - Select next/previous template
//	F                 - Toggle a fire emitter that follows the cursor
//	Left/Right Arrow  - Decrease/increase wind
//	Up/Down Arrow     - Decrease/increase gravity
//	H                 - Toggle HUD
//	C                 - Clear particles and emitters
//	F11               - Toggle fullscreen
//	Escape            - Save settings and quit
type App struct {
	engine   *game.ParticleEngine
	backend  *render.EbitenBackend
	settings *game.SettingsManager

	templates []string
	current   int

	fire    game.EmitterID
	hasFire bool

	status string
}

// NewApp 创建并初始化沙盒应用
//
// 调用此函数前，如需读取嵌入的 data/ 文件，必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	engineCfg := config.DefaultEngineConfig()
	engineCfg.Bounds = config.Bounds{MaxX: ScreenWidth, MaxY: ScreenHeight}
	if cfg.EnginePath != "" {
		loaded, err := config.LoadEngineConfig(cfg.EnginePath)
		if err != nil {
			return nil, fmt.Errorf("引擎配置加载失败: %w", err)
		}
		engineCfg = *loaded
	}

	engine, err := game.NewParticleEngine(engineCfg)
	if err != nil {
		return nil, err
	}
	if cfg.TemplatesPath != "" {
		n, err := engine.LoadTemplates(cfg.TemplatesPath)
		if err != nil {
			return nil, fmt.Errorf("模板加载失败: %w", err)
		}
		log.Printf("[App] Loaded %d templates from %s", n, cfg.TemplatesPath)
	}

	// gdata 不可用时以降级模式运行（不保存设置）
	var gm *gdata.Manager
	if cfg.AppName != "" {
		m, err := gdata.Open(gdata.Config{AppName: cfg.AppName})
		if err != nil {
			log.Printf("[App] Warning: settings storage unavailable: %v", err)
		} else {
			gm = m
		}
	}
	settings := game.NewSettingsManager(gm)
	if err := settings.Load(); err != nil {
		log.Printf("[App] Warning: failed to load settings: %v", err)
	}
	if err := settings.ApplyTo(engine); err != nil {
		log.Printf("[App] Warning: failed to apply settings: %v", err)
	}

	a := &App{
		engine:    engine,
		backend:   render.NewEbitenBackend(),
		settings:  settings,
		templates: engine.Templates(),
	}
	for i, name := range a.templates {
		if name == settings.GetSettings().Template {
			a.current = i
		}
	}
	a.status = "Selected: " + a.templateName()
	return a, nil
}

// Engine returns the particle engine driven by the app.
func (a *App) Engine() *game.ParticleEngine {
	return a.engine
}

// Close saves settings and destroys the engine.
func (a *App) Close() {
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
	a.engine.Destroy()
}

func (a *App) templateName() string {
	if len(a.templates) == 0 {
		return ""
	}
	return a.templates[a.current]
}

func (a *App) selectTemplate(delta int) {
	n := len(a.templates)
	if n == 0 {
		return
	}
	a.current = ((a.current+delta)%n + n) % n
	a.settings.SetTemplate(a.templateName())
	a.status = "Selected: " + a.templateName()
}

func (a *App) nudgeForces(dGravity, dWind float64) {
	st := a.settings.GetSettings()
	a.settings.SetGravity(st.Gravity + dGravity)
	a.settings.SetWind(st.Wind + dWind)
	a.engine.SetGlobalForces(mgl64.Vec2{0, st.Gravity}, mgl64.Vec2{st.Wind, 0})
	a.status = fmt.Sprintf("Gravity %.0f  Wind %.0f", st.Gravity, st.Wind)
}

func (a *App) toggleFire(x, y float64) {
	if a.hasFire {
		a.engine.StopEmitter(a.fire)
		a.hasFire = false
		a.status = "Fire off"
		return
	}
	id, err := a.engine.CreateFire(x, y, 1)
	if err != nil {
		a.status = fmt.Sprintf("Error: %v", err)
		return
	}
	a.fire, a.hasFire = id, true
	a.status = "Fire on"
}

// Update 更新沙盒逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ErrQuit
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx), float64(cy)

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			a.selectTemplate(-1)
		} else {
			a.selectTemplate(1)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		a.nudgeForces(0, -forceStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		a.nudgeForces(0, forceStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		a.nudgeForces(-forceStep, 0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		a.nudgeForces(forceStep, 0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		a.settings.ToggleHUD()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		a.engine.ClearAll()
		a.hasFire = false
		a.status = "Cleared"
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		a.toggleFire(x, y)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if _, err := a.engine.CreateEmitter(a.templateName(), x, y); err != nil {
			a.status = fmt.Sprintf("Error: %v", err)
		}
	}
	// 移动端：每次新触摸都生成当前模板
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		tx, ty := ebiten.TouchPosition(id)
		if _, err := a.engine.CreateEmitter(a.templateName(), float64(tx), float64(ty)); err != nil {
			a.status = fmt.Sprintf("Error: %v", err)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		n := a.engine.ApplyImpulse(x, y, impulseRadius, impulseForce)
		a.status = fmt.Sprintf("Pushed %d particles", n)
	}

	if a.hasFire && !a.engine.MoveEmitter(a.fire, x, y) {
		a.hasFire = false
	}

	a.engine.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

// Draw 绘制粒子和统计信息
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{20, 20, 30, 255})

	a.backend.Begin(screen)
	a.engine.Render(a.backend)
	a.backend.End()

	if !a.settings.GetSettings().ShowHUD {
		return
	}
	st := a.engine.Stats()
	lines := []string{
		fmt.Sprintf("FPS %.0f  TPS %.0f", ebiten.ActualFPS(), ebiten.ActualTPS()),
		fmt.Sprintf("Template: %s (%d/%d)", a.templateName(), a.current+1, len(a.templates)),
		fmt.Sprintf("Particles: %d/%d  pooled %d", st.ActiveParticles, st.MaxParticles, st.PooledParticles),
		fmt.Sprintf("Emitters: %d active / %d  dropped %d", st.ActiveEmitters, st.Emitters, st.DroppedEmissions),
		fmt.Sprintf("Update %v  draw calls %d", st.LastFrameCost, a.backend.DrawCalls()),
		a.status,
	}
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, 10, 10+i*16)
	}
	ebitenutil.DebugPrintAt(screen,
		"Click = Spawn  Right = Push  Tab = Template  F = Fire  Arrows = Forces  H = HUD  C = Clear  Esc = Quit",
		10, ScreenHeight-24)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}
