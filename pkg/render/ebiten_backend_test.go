package render

import (
	"image/color"
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/sparkfx/pkg/config"
	"github.com/decker502/sparkfx/pkg/systems"
)

var _ systems.DrawBackend = (*EbitenBackend)(nil)

func TestEbitenBlend(t *testing.T) {
	tests := []struct {
		mode config.BlendMode
		want ebiten.Blend
	}{
		{config.BlendNormal, ebiten.BlendSourceOver},
		{config.BlendAdditive, ebiten.BlendLighter},
		{config.BlendScreen, BlendScreen},
	}
	for _, tt := range tests {
		if got := EbitenBlend(tt.mode); got != tt.want {
			t.Errorf("EbitenBlend(%v) = %+v, want %+v", tt.mode, got, tt.want)
		}
	}
}

func TestAppendQuad(t *testing.T) {
	c := color.NRGBA{R: 255, G: 128, B: 0, A: 255}
	vs, is := appendQuad(nil, nil, 100, 50, 10, 0, c, 0.5)
	if len(vs) != 4 || len(is) != 6 {
		t.Fatalf("got %d vertices / %d indices, want 4 / 6", len(vs), len(is))
	}
	if vs[0].DstX != 95 || vs[0].DstY != 45 || vs[3].DstX != 105 || vs[3].DstY != 55 {
		t.Errorf("unrotated corners wrong: %+v %+v", vs[0], vs[3])
	}
	if vs[0].ColorA != 0.5 || vs[0].ColorR != 1 {
		t.Errorf("vertex color wrong: %+v", vs[0])
	}

	// 第二个四边形的索引从 4 开始
	vs, is = appendQuad(vs, is, 0, 0, 10, 90, c, 1)
	if is[6] != 4 || is[11] != 6 {
		t.Errorf("second quad indices = %v", is[6:])
	}
	// 旋转 90° 后左上角移到右上
	if math.Abs(float64(vs[4].DstX)-5) > 1e-4 || math.Abs(float64(vs[4].DstY)+5) > 1e-4 {
		t.Errorf("rotated corner = (%v, %v), want (5, -5)", vs[4].DstX, vs[4].DstY)
	}
}

func TestDotPixels(t *testing.T) {
	const size = 16
	pix := dotPixels(size)
	center := ((size/2)*size + size/2) * 4
	if pix[center+3] < 200 {
		t.Errorf("center alpha = %d, want nearly opaque", pix[center+3])
	}
	if pix[3] != 0 {
		t.Errorf("corner alpha = %d, want 0", pix[3])
	}
	for i := 0; i < len(pix); i += 4 {
		if pix[i] > pix[i+3] {
			t.Fatalf("pixel %d not premultiplied", i/4)
		}
	}
}
