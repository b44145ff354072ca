// Command particles-tty runs the particle engine in a terminal.
//
// Controls:
//
//	Mouse Click   - Spawn the selected template at the cursor
//	Space         - Spawn at the center
//	Tab           - Next template
//	w             - Toggle wind
//	c             - Clear
//	q / Escape    - Quit
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/decker502/sparkfx/pkg/config"
	"github.com/decker502/sparkfx/pkg/game"
	"github.com/decker502/sparkfx/pkg/terminal"
)

const (
	cellWidth     = 8.0
	cellHeight    = 16.0
	frameDuration = time.Second / 30
	windForce     = 120.0
)

var (
	effectFlag  = flag.String("effect", config.TemplateFire, "Template to start with")
	verboseFlag = flag.Bool("verbose", false, "Log to stderr")
)

type app struct {
	screen  tcell.Screen
	engine  *game.ParticleEngine
	backend *terminal.Backend

	templates []string
	current   int
	wind      bool
	lastFrame time.Time
}

func newApp(screen tcell.Screen) (*app, error) {
	cfg := config.DefaultEngineConfig()
	cfg.PoolSize = 2048
	cfg.MaxParticles = 2048
	engine, err := game.NewParticleEngine(cfg)
	if err != nil {
		return nil, err
	}
	a := &app{
		screen:    screen,
		engine:    engine,
		backend:   terminal.NewBackend(screen, cellWidth, cellHeight),
		templates: engine.Templates(),
		lastFrame: time.Now(),
	}
	for i, name := range a.templates {
		if name == *effectFlag {
			a.current = i
		}
	}
	a.resize()
	return a, nil
}

// resize keeps the engine bounds equal to the visible area.
func (a *app) resize() {
	w, h := a.screen.Size()
	a.engine.SetBounds(config.Bounds{MaxX: float64(w) * cellWidth, MaxY: float64(h) * cellHeight})
}

func (a *app) spawn(x, y float64) {
	if _, err := a.engine.CreateEmitter(a.templates[a.current], x, y); err != nil {
		log.Printf("[TTY] spawn failed: %v", err)
	}
}

func (a *app) spawnCenter() {
	w, h := a.screen.Size()
	a.spawn(float64(w)*cellWidth/2, float64(h)*cellHeight/2)
}

// handle returns false when the app should quit.
func (a *app) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyTab:
			a.current = (a.current + 1) % len(a.templates)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				a.spawnCenter()
			case 'c':
				a.engine.ClearAll()
			case 'w':
				a.wind = !a.wind
				gravity, _ := a.engine.GlobalForces()
				wind := mgl64.Vec2{}
				if a.wind {
					wind = mgl64.Vec2{windForce, 0}
				}
				a.engine.SetGlobalForces(gravity, wind)
			}
		}
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			x, y := ev.Position()
			a.spawn((float64(x)+0.5)*cellWidth, (float64(y)+0.5)*cellHeight)
		}
	case *tcell.EventResize:
		a.screen.Sync()
		a.resize()
	}
	return true
}

func (a *app) draw() {
	a.backend.Begin()
	a.engine.Render(a.backend)

	st := a.engine.Stats()
	status := fmt.Sprintf(" %s | particles %d | emitters %d | wind %v ",
		a.templates[a.current], st.ActiveParticles, st.ActiveEmitters, a.wind)
	style := tcell.StyleDefault.Foreground(tcell.ColorLightGray)
	for i, r := range status {
		a.screen.SetContent(i, 0, r, nil, style)
	}
	a.backend.Show()
}

func (a *app) run() {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameDuration)
	defer ticker.Stop()

	a.spawnCenter()
	for {
		select {
		case ev, ok := <-events:
			if !ok || !a.handle(ev) {
				return
			}
		case now := <-ticker.C:
			dt := now.Sub(a.lastFrame).Seconds()
			a.lastFrame = now
			a.engine.Update(dt)
			a.draw()
		}
	}
}

func main() {
	flag.Parse()
	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	a, err := newApp(screen)
	if err != nil {
		screen.Fini()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer a.engine.Destroy()
	a.run()
}
