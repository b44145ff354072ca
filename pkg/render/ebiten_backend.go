// Package render draws particle primitives with ebiten.
package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/sparkfx/pkg/config"
	"github.com/decker502/sparkfx/pkg/systems"
)

const (
	// dotSize is the side of the generated soft-dot texture in pixels.
	dotSize = 32

	// maxQuadsPerBatch keeps vertex indices within uint16.
	maxQuadsPerBatch = 16000

	// glowAlpha scales the alpha of the halo drawn under glowing particles.
	glowAlpha = 0.35
)

// BlendScreen is 1-(1-src)(1-dst) for premultiplied colors.
var BlendScreen = ebiten.Blend{
	BlendFactorSourceRGB:        ebiten.BlendFactorOne,
	BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceColor,
	BlendOperationRGB:           ebiten.BlendOperationAdd,
	BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
	BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
	BlendOperationAlpha:         ebiten.BlendOperationAdd,
}

// EbitenBlend maps a particle blend mode to an ebiten blend.
func EbitenBlend(mode config.BlendMode) ebiten.Blend {
	switch mode {
	case config.BlendAdditive:
		return ebiten.BlendLighter
	case config.BlendScreen:
		return BlendScreen
	default:
		return ebiten.BlendSourceOver
	}
}

// EbitenBackend implements systems.DrawBackend on an ebiten image.
//
// Primitives are collected into one vertex batch per blend group and drawn
// with a single DrawTriangles call when the blend mode changes or End is
// called. Vertex and index buffers are reused across frames.
//
//	backend.Begin(screen)
//	engine.Render(backend)
//	backend.End()
type EbitenBackend struct {
	// Offset is subtracted from every particle position (camera scroll).
	Offset mgl64.Vec2

	target *ebiten.Image
	dot    *ebiten.Image
	blend  config.BlendMode

	vertices []ebiten.Vertex
	indices  []uint16
	op       ebiten.DrawTrianglesOptions

	drawCalls int
}

// NewEbitenBackend creates a backend. The dot texture is created on the
// first Begin, once ebiten is running.
func NewEbitenBackend() *EbitenBackend {
	return &EbitenBackend{
		vertices: make([]ebiten.Vertex, 0, 4*1024),
		indices:  make([]uint16, 0, 6*1024),
	}
}

// Begin starts a frame drawing onto target.
func (b *EbitenBackend) Begin(target *ebiten.Image) {
	if b.dot == nil {
		b.dot = newDotImage(dotSize)
	}
	b.target = target
	b.blend = config.BlendNormal
	b.drawCalls = 0
	b.vertices = b.vertices[:0]
	b.indices = b.indices[:0]
}

// SetBlendMode flushes the pending batch and switches blend mode.
func (b *EbitenBackend) SetBlendMode(mode config.BlendMode) {
	b.flush()
	b.blend = mode
}

// DrawParticle queues one particle quad, plus a halo quad when it glows.
func (b *EbitenBackend) DrawParticle(p systems.DrawPrimitive) {
	if b.target == nil || p.Alpha <= 0 || p.Size <= 0 {
		return
	}
	x, y := p.X-b.Offset.X(), p.Y-b.Offset.Y()
	if p.Glow > 0 {
		b.queue(x, y, p.Glow*2, 0, p.Color, p.Alpha*glowAlpha)
	}
	b.queue(x, y, p.Size, p.Rotation, p.Color, p.Alpha)
}

// End draws whatever is still queued and releases the target.
func (b *EbitenBackend) End() {
	b.flush()
	b.target = nil
}

// DrawCalls returns the number of DrawTriangles calls issued since Begin.
func (b *EbitenBackend) DrawCalls() int {
	return b.drawCalls
}

func (b *EbitenBackend) queue(x, y, size, rotation float64, c colorNRGBA, alpha float64) {
	if len(b.vertices)/4 >= maxQuadsPerBatch {
		b.flush()
	}
	b.vertices, b.indices = appendQuad(b.vertices, b.indices, x, y, size, rotation, c, alpha)
}

func (b *EbitenBackend) flush() {
	if len(b.vertices) == 0 || b.target == nil {
		b.vertices = b.vertices[:0]
		b.indices = b.indices[:0]
		return
	}
	b.op.Blend = EbitenBlend(b.blend)
	b.op.AntiAlias = true
	b.target.DrawTriangles(b.vertices, b.indices, b.dot, &b.op)
	b.drawCalls++
	b.vertices = b.vertices[:0]
	b.indices = b.indices[:0]
}

// appendQuad appends a rotated, centered square of side size that samples
// the whole dot texture.
func appendQuad(vs []ebiten.Vertex, is []uint16, x, y, size, rotation float64, c colorNRGBA, alpha float64) ([]ebiten.Vertex, []uint16) {
	h := size / 2
	rad := rotation * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)

	// 左上、右上、左下、右下
	corners := [4][2]float64{{-h, -h}, {h, -h}, {-h, h}, {h, h}}
	src := [4][2]float32{{0, 0}, {dotSize, 0}, {0, dotSize}, {dotSize, dotSize}}

	r := float32(c.R) / 255
	g := float32(c.G) / 255
	bl := float32(c.B) / 255
	a := float32(alpha * float64(c.A) / 255)

	base := uint16(len(vs))
	for i, corner := range corners {
		vs = append(vs, ebiten.Vertex{
			DstX:   float32(x + corner[0]*cos - corner[1]*sin),
			DstY:   float32(y + corner[0]*sin + corner[1]*cos),
			SrcX:   src[i][0],
			SrcY:   src[i][1],
			ColorR: r,
			ColorG: g,
			ColorB: bl,
			ColorA: a,
		})
	}
	is = append(is,
		base+0, base+1, base+2,
		base+1, base+3, base+2,
	)
	return vs, is
}
