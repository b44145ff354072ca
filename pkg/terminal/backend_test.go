package terminal

import (
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/sparkfx/pkg/config"
	"github.com/decker502/sparkfx/pkg/systems"
)

var _ systems.DrawBackend = (*Backend)(nil)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func TestBackendDrawsCells(t *testing.T) {
	screen := newTestScreen(t, 20, 10)
	b := NewBackend(screen, 10, 20)
	b.Begin()

	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	b.SetBlendMode(config.BlendNormal)
	b.DrawParticle(systems.DrawPrimitive{X: 15, Y: 45, Size: 2, Color: white, Alpha: 1})
	b.DrawParticle(systems.DrawPrimitive{X: 55, Y: 5, Size: 12, Color: white, Alpha: 1})
	b.DrawParticle(systems.DrawPrimitive{X: 75, Y: 5, Size: 4, Color: white, Alpha: 1, Trail: true})

	assert.Equal(t, 3, b.Drawn())

	r, _, _, _ := screen.GetContent(1, 2)
	assert.Equal(t, '.', r)
	r, _, _, _ = screen.GetContent(5, 0)
	assert.Equal(t, '@', r)
	r, _, _, _ = screen.GetContent(7, 0)
	assert.Equal(t, '·', r)
}

func TestBackendSkipsOffscreenAndInvisible(t *testing.T) {
	screen := newTestScreen(t, 10, 5)
	b := NewBackend(screen, 10, 20)
	b.Begin()

	c := color.NRGBA{R: 255, A: 255}
	b.DrawParticle(systems.DrawPrimitive{X: -1, Y: 10, Size: 4, Color: c, Alpha: 1})
	b.DrawParticle(systems.DrawPrimitive{X: 10, Y: 500, Size: 4, Color: c, Alpha: 1})
	b.DrawParticle(systems.DrawPrimitive{X: 1000, Y: 10, Size: 4, Color: c, Alpha: 1})
	b.DrawParticle(systems.DrawPrimitive{X: 10, Y: 10, Size: 4, Color: c, Alpha: 0})

	assert.Zero(t, b.Drawn())
}

func TestCompose(t *testing.T) {
	black := colorful.Color{}
	red := colorful.Color{R: 1}

	got := compose(black, red, 0.5, config.BlendAdditive)
	assert.InDelta(t, 0.5, got.R, 1e-9)

	// 叠加后截断到 1
	got = compose(colorful.Color{R: 0.8}, red, 1, config.BlendAdditive)
	assert.InDelta(t, 1.0, got.R, 1e-9)

	got = compose(colorful.Color{R: 0.5}, red, 0.5, config.BlendScreen)
	assert.InDelta(t, 0.75, got.R, 1e-9)

	got = compose(black, red, 1, config.BlendNormal)
	assert.InDelta(t, 1.0, got.R, 1e-3)
	got = compose(black, red, 0, config.BlendNormal)
	assert.InDelta(t, 0.0, got.R, 1e-3)
}

func TestGlyphBySize(t *testing.T) {
	assert.Equal(t, '.', glyph(systems.DrawPrimitive{Size: 1}))
	assert.Equal(t, '*', glyph(systems.DrawPrimitive{Size: 4}))
	assert.Equal(t, 'o', glyph(systems.DrawPrimitive{Size: 8}))
	assert.Equal(t, '@', glyph(systems.DrawPrimitive{Size: 20}))
	assert.Equal(t, '·', glyph(systems.DrawPrimitive{Size: 20, Trail: true}))
}
