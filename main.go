// Command sparkfx is an interactive particle sandbox. See package app for
// the controls.
package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/sparkfx/pkg/app"
	"github.com/decker502/sparkfx/pkg/embedded"
)

var (
	engineFlag    = flag.String("engine", "data/engine.yaml", "Engine config file")
	templatesFlag = flag.String("templates", "data/emitters.yaml", "Extra emitter templates")
	verboseFlag   = flag.Bool("verbose", false, "Enable verbose logging (default off)")
)

func main() {
	flag.Parse()

	// 必须在加载任何配置之前初始化嵌入资源
	embedded.Init(dataFS)

	sandbox, err := app.NewApp(app.Config{
		Verbose:       *verboseFlag,
		EnginePath:    *engineFlag,
		TemplatesPath: *templatesFlag,
		AppName:       "sparkfx",
	})
	if err != nil {
		log.Fatal("Failed to initialize sandbox:", err)
	}
	defer sandbox.Close()

	ebiten.SetWindowSize(app.ScreenWidth, app.ScreenHeight)
	ebiten.SetWindowTitle("sparkfx particle sandbox")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(sandbox); err != nil && !errors.Is(err, app.ErrQuit) {
		log.Fatal(err)
	}
}
