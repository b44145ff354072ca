package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

type colorNRGBA = color.NRGBA

// dotPixels returns premultiplied RGBA bytes of a white disc whose alpha
// falls off smoothly from the center to the edge.
func dotPixels(size int) []byte {
	pix := make([]byte, size*size*4)
	c := float64(size-1) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)-c, float64(y)-c) / (c + 0.5)
			a := 0.0
			if d < 1 {
				a = 1 - d*d
				a *= a
			}
			v := byte(math.Round(a * 255))
			i := (y*size + x) * 4
			pix[i], pix[i+1], pix[i+2], pix[i+3] = v, v, v, v
		}
	}
	return pix
}

func newDotImage(size int) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	img.WritePixels(dotPixels(size))
	return img
}
