// Package terminal draws particle primitives into a tcell screen, one
// character cell per particle.
package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/decker502/sparkfx/pkg/config"
	"github.com/decker502/sparkfx/pkg/systems"
)

// Backend implements systems.DrawBackend on a tcell.Screen.
//
// World coordinates are divided by the cell size to pick a cell. Colors are
// composed against Background using the current blend mode, because a
// terminal cell has no alpha.
type Backend struct {
	screen tcell.Screen

	// CellWidth and CellHeight are world pixels per terminal cell.
	CellWidth, CellHeight float64
	Background            colorful.Color

	blend config.BlendMode
	drawn int
}

// NewBackend creates a backend for screen with the given cell size in
// world pixels.
func NewBackend(screen tcell.Screen, cellWidth, cellHeight float64) *Backend {
	if cellWidth <= 0 {
		cellWidth = 8
	}
	if cellHeight <= 0 {
		cellHeight = 16
	}
	return &Backend{
		screen:     screen,
		CellWidth:  cellWidth,
		CellHeight: cellHeight,
		Background: colorful.Color{R: 0, G: 0, B: 0},
	}
}

// Begin clears the screen and resets the draw counter.
func (b *Backend) Begin() {
	b.screen.Clear()
	b.drawn = 0
	b.blend = config.BlendNormal
}

// Drawn returns the number of cells written since Begin.
func (b *Backend) Drawn() int {
	return b.drawn
}

// SetBlendMode selects how later primitives are composed.
func (b *Backend) SetBlendMode(mode config.BlendMode) {
	b.blend = mode
}

// DrawParticle writes one cell. Primitives outside the screen are skipped.
func (b *Backend) DrawParticle(p systems.DrawPrimitive) {
	if p.Alpha <= 0 {
		return
	}
	cx := int(math.Floor(p.X / b.CellWidth))
	cy := int(math.Floor(p.Y / b.CellHeight))
	w, h := b.screen.Size()
	if cx < 0 || cy < 0 || cx >= w || cy >= h {
		return
	}

	alpha := p.Alpha * float64(p.Color.A) / 255
	src := colorful.Color{
		R: float64(p.Color.R) / 255,
		G: float64(p.Color.G) / 255,
		B: float64(p.Color.B) / 255,
	}
	fg := compose(b.Background, src, alpha, b.blend)
	r, g, bl := fg.RGB255()

	style := tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(bl))).
		Background(b.backgroundColor())
	if p.Glow > 0 {
		style = style.Bold(true)
	}
	b.screen.SetContent(cx, cy, glyph(p), nil, style)
	b.drawn++
}

// Show flushes the frame to the terminal.
func (b *Backend) Show() {
	b.screen.Show()
}

func (b *Backend) backgroundColor() tcell.Color {
	r, g, bl := b.Background.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(bl))
}

// glyph picks a character from the particle size.
func glyph(p systems.DrawPrimitive) rune {
	if p.Trail {
		return '·'
	}
	switch {
	case p.Size < 3:
		return '.'
	case p.Size < 6:
		return '*'
	case p.Size < 10:
		return 'o'
	default:
		return '@'
	}
}

// compose mixes src with alpha over dst.
func compose(dst, src colorful.Color, alpha float64, mode config.BlendMode) colorful.Color {
	alpha = math.Max(0, math.Min(1, alpha))
	switch mode {
	case config.BlendAdditive:
		return colorful.Color{
			R: dst.R + src.R*alpha,
			G: dst.G + src.G*alpha,
			B: dst.B + src.B*alpha,
		}.Clamped()
	case config.BlendScreen:
		return colorful.Color{
			R: 1 - (1-dst.R)*(1-src.R*alpha),
			G: 1 - (1-dst.G)*(1-src.G*alpha),
			B: 1 - (1-dst.B)*(1-src.B*alpha),
		}.Clamped()
	default:
		return dst.BlendLab(src, alpha).Clamped()
	}
}
