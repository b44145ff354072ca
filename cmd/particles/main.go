// Package main provides a template viewer for testing and tuning emitter
// templates.
//
// Usage:
//
//	go run ./cmd/particles [flags]
//
// Flags:
//
//	--templates <file>    Extra template file (default data/emitters.yaml)
//	--filter <keyword>    Initial filter by name (e.g., --filter=fire)
//	--effect <name>       Start with specific template (e.g., --effect=sparks)
//	--auto-play           Automatically cycle through templates every 3 seconds
//
// Controls:
//
//	Mouse Click       - Spawn template at cursor position
//	Left/Right Arrow  - Switch to previous/next template
//	Home/End          - Jump to first/last template
//	1-9               - Quick jump to template by index
//	Space             - Spawn template at screen center
//	P                 - Toggle pause (freeze the simulation)
//	F or /            - Enter search mode
//	R                 - Clear all particles and emitters
//	[ / ]             - Decrease/increase direction offset by 15°
//	\                 - Reset direction offset to 0°
//	Q/Escape          - Quit
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/sparkfx/pkg/config"
	"github.com/decker502/sparkfx/pkg/embedded"
	"github.com/decker502/sparkfx/pkg/game"
	"github.com/decker502/sparkfx/pkg/render"
)

const (
	screenWidth  = 1024
	screenHeight = 768
)

var (
	templatesFlag = flag.String("templates", "data/emitters.yaml", "Extra template file")
	filterFlag    = flag.String("filter", "", "Initial filter by name keyword")
	effectFlag    = flag.String("effect", "", "Start with specific template name")
	autoPlayFlag  = flag.Bool("auto-play", false, "Auto cycle through templates every 3 seconds")
	verboseFlag   = flag.Bool("verbose", false, "Enable verbose logging (default off)")
)

var errQuit = errors.New("quit requested")

// ViewerGame implements ebiten.Game for the template viewer.
type ViewerGame struct {
	engine  *game.ParticleEngine
	backend *render.EbitenBackend

	allNames      []string
	filteredNames []string
	currentIndex  int

	searchMode  bool
	searchQuery string

	autoPlay      bool
	lastSpawnTime time.Time
	paused        bool

	// 方向偏移，用于检查模板的发射方向
	angleOffset float64

	statusMessage string
}

// NewViewerGame creates the viewer with the built-in and file templates.
func NewViewerGame() (*ViewerGame, error) {
	cfg := config.DefaultEngineConfig()
	cfg.Bounds = config.Bounds{MaxX: screenWidth, MaxY: screenHeight}
	engine, err := game.NewParticleEngine(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}
	if *templatesFlag != "" && embedded.Exists(*templatesFlag) {
		if _, err := engine.LoadTemplates(*templatesFlag); err != nil {
			log.Printf("Warning: Failed to load %s: %v (continuing with built-ins)", *templatesFlag, err)
		}
	}

	allNames := engine.Templates()
	if len(allNames) == 0 {
		return nil, fmt.Errorf("no templates found")
	}

	initialQuery := *filterFlag
	filtered := filterNames(allNames, initialQuery)
	if len(filtered) == 0 {
		log.Printf("Warning: No templates match initial filter %q, showing all", initialQuery)
		filtered = allNames
		initialQuery = ""
	}

	startIndex := 0
	for i, name := range filtered {
		if name == *effectFlag {
			startIndex = i
			break
		}
	}

	g := &ViewerGame{
		engine:        engine,
		backend:       render.NewEbitenBackend(),
		allNames:      allNames,
		filteredNames: filtered,
		currentIndex:  startIndex,
		searchQuery:   initialQuery,
		autoPlay:      *autoPlayFlag,
		lastSpawnTime: time.Now(),
	}
	g.updateStatusMessage()
	log.Printf("Viewer initialized: %d templates, %d after filter", len(allNames), len(filtered))

	// 启动时在屏幕中心生成当前模板，避免空白屏幕
	g.spawnCurrent(screenWidth/2, screenHeight/2)
	return g, nil
}

// filterNames returns names containing query, case-insensitively.
func filterNames(all []string, query string) []string {
	if query == "" {
		return all
	}
	q := strings.ToLower(query)
	filtered := make([]string, 0)
	for _, name := range all {
		if strings.Contains(strings.ToLower(name), q) {
			filtered = append(filtered, name)
		}
	}
	return filtered
}

// Update updates the viewer state
func (g *ViewerGame) Update() error {
	if g.searchMode {
		g.updateSearchMode()
		return nil
	}
	return g.updateNormalMode()
}

func (g *ViewerGame) updateSearchMode() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.searchMode = false
		g.statusMessage = fmt.Sprintf("Search: %q (%d results)", g.searchQuery, len(g.filteredNames))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		if len(g.searchQuery) > 0 {
			g.searchQuery = g.searchQuery[:len(g.searchQuery)-1]
			g.applySearch()
		}
		return
	}
	runes := ebiten.AppendInputChars(nil)
	if len(runes) == 0 {
		return
	}
	for _, r := range runes {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' || r == '-' {
			g.searchQuery += string(r)
		}
	}
	g.applySearch()
}

func (g *ViewerGame) applySearch() {
	g.filteredNames = filterNames(g.allNames, g.searchQuery)
	g.currentIndex = 0
	log.Printf("Search query: %q, Results: %d", g.searchQuery, len(g.filteredNames))
}

func (g *ViewerGame) updateNormalMode() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return errQuit
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) || inpututil.IsKeyJustPressed(ebiten.KeySlash) {
		g.searchMode = true
		g.statusMessage = "Search mode: Type to filter templates..."
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
		if g.paused {
			g.statusMessage = "PAUSED - Press P to resume"
		} else {
			g.statusMessage = "Resumed"
		}
	}

	for i := 1; i <= 9; i++ {
		if inpututil.IsKeyJustPressed(ebiten.Key(int(ebiten.Key0) + i)) {
			g.jumpTo(i - 1)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		g.jumpTo(g.currentIndex - 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		g.jumpTo(g.currentIndex + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		g.jumpTo(0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnd) {
		g.jumpTo(len(g.filteredNames) - 1)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.engine.ClearAll()
		g.statusMessage = "Cleared all particles"
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		g.angleOffset -= 15
		g.statusMessage = fmt.Sprintf("Angle offset: %.0f°", g.angleOffset)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.angleOffset += 15
		g.statusMessage = fmt.Sprintf("Angle offset: %.0f°", g.angleOffset)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackslash) {
		g.angleOffset = 0
		g.statusMessage = "Angle offset reset to 0°"
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.spawnCurrent(screenWidth/2, screenHeight/2)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.spawnCurrent(float64(x), float64(y))
	}

	if g.autoPlay && !g.paused && time.Since(g.lastSpawnTime) > 3*time.Second {
		g.jumpTo(g.currentIndex + 1)
		g.lastSpawnTime = time.Now()
	}

	if !g.paused {
		g.engine.Update(1.0 / 60.0)
	}
	return nil
}

// jumpTo selects index i (wrapping) and spawns it at the center.
func (g *ViewerGame) jumpTo(i int) {
	n := len(g.filteredNames)
	if n == 0 {
		return
	}
	g.currentIndex = (i%n + n) % n
	g.updateStatusMessage()
	g.spawnCurrent(screenWidth/2, screenHeight/2)
}

// spawnCurrent spawns the selected template with the current angle offset.
func (g *ViewerGame) spawnCurrent(x, y float64) {
	if len(g.filteredNames) == 0 {
		g.statusMessage = "No templates to spawn"
		return
	}
	name := g.filteredNames[g.currentIndex]
	var overrides []config.Override
	if g.angleOffset != 0 {
		offset := g.angleOffset
		overrides = append(overrides, func(t *config.EmitterTemplate) {
			t.Direction += offset
		})
	}
	if _, err := g.engine.CreateEmitter(name, x, y, overrides...); err != nil {
		log.Printf("Failed to create %s: %v", name, err)
		g.statusMessage = fmt.Sprintf("Error: %v", err)
		return
	}
	g.statusMessage = fmt.Sprintf("Spawned: %s (angle: %.0f°)", name, g.angleOffset)
}

func (g *ViewerGame) updateStatusMessage() {
	if len(g.filteredNames) == 0 {
		g.statusMessage = "No templates available"
		return
	}
	g.statusMessage = "Selected: " + g.filteredNames[g.currentIndex]
}

// Draw renders the viewer
func (g *ViewerGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{25, 25, 38, 255})

	g.backend.Begin(screen)
	g.engine.Render(g.backend)
	g.backend.End()

	g.drawUI(screen)
}

func (g *ViewerGame) drawUI(screen *ebiten.Image) {
	if len(g.filteredNames) == 0 {
		ebitenutil.DebugPrintAt(screen, "No templates match current filter", 10, 10)
		return
	}
	name := g.filteredNames[g.currentIndex]
	st := g.engine.Stats()

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Template Viewer - %d/%d", g.currentIndex+1, len(g.filteredNames)), 10, 10)
	if g.searchQuery != "" {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Filter: %q (%d/%d templates)", g.searchQuery, len(g.filteredNames), len(g.allNames)), 10, 30)
	}
	if tpl, err := g.engine.Template(name); err == nil {
		mode := "burst"
		if tpl.IsContinuous() {
			mode = "continuous"
		} else if !tpl.IsOneShot() {
			mode = fmt.Sprintf("%.1fs", tpl.Duration)
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Template: %s (%s, %s)", name, mode, tpl.Blend), 10, 50)
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Active Particles: %d  Emitters: %d", st.ActiveParticles, st.ActiveEmitters), 10, 70)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Angle Offset: %.0f°", g.angleOffset), 10, 90)

	if g.searchMode {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SEARCH: %s_", g.searchQuery), 10, 130)
	} else if g.statusMessage != "" {
		ebitenutil.DebugPrintAt(screen, g.statusMessage, 10, 130)
	}

	controls := []string{
		"Navigation: <-/-> = Next/Prev  Home/End = First/Last  1-9 = Quick Jump",
		"Actions:    Click/Space = Spawn  R = Clear  P = Pause  F/Slash = Search  Q = Quit",
		"Angle:      [ = -15°  ] = +15°  \\ = Reset to 0°",
	}
	y := screenHeight - len(controls)*20 - 10
	for i, line := range controls {
		ebitenutil.DebugPrintAt(screen, line, 10, y+i*20)
	}
	if g.paused {
		ebitenutil.DebugPrintAt(screen, "PAUSED (Press P to resume)", screenWidth-220, 10)
	} else if g.autoPlay {
		ebitenutil.DebugPrintAt(screen, "AUTO-PLAY MODE", screenWidth-150, 10)
	}
}

// Layout returns the viewer's logical screen size
func (g *ViewerGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	flag.Parse()

	// 默认静音运行；如需详细调试，传入 --verbose
	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	g, err := NewViewerGame()
	if err != nil {
		log.Fatal("Failed to initialize viewer:", err)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("sparkfx Template Viewer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, errQuit) {
		log.Fatal(err)
	}
}
