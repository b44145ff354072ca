package utils

import "math"

// Easing curves used by particle animation curves.
//
// Every curve maps progress t ∈ [0, 1] to [0, 1] with f(0)=0 and f(1)=1.
// Inputs outside the unit interval are clamped first, so a particle that
// overshoots its lifetime by a fraction of a frame never extrapolates.

// Clamp01 limits t to [0, 1].
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// EaseLinear 线性缓动（无缓动）
func EaseLinear(t float64) float64 {
	return Clamp01(t)
}

// EaseInQuad 二次方缓入：开始慢，结束快
// f(t) = t²
func EaseInQuad(t float64) float64 {
	t = Clamp01(t)
	return t * t
}

// EaseOutQuad 二次方缓出：开始快，结束慢
// f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	t = Clamp01(t)
	return 1 - (1-t)*(1-t)
}

// EaseInOutCubic 三次方缓入缓出
//
//	t < 0.5:  f(t) = 4t³
//	t >= 0.5: f(t) = 1 - (-2t + 2)³ / 2
func EaseInOutCubic(t float64) float64 {
	t = Clamp01(t)
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b；t 不做裁剪
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
