package config

import (
	"fmt"
	"strings"
)

// BlendMode 粒子混合模式
//
// A closed set: renderers switch over it exhaustively.
type BlendMode uint8

const (
	// BlendNormal source-over alpha blending
	BlendNormal BlendMode = iota
	// BlendAdditive adds source color to the destination (fire, sparks, glows)
	BlendAdditive
	// BlendScreen 1-(1-src)(1-dst), brightens without blowing out to white as fast
	BlendScreen

	// BlendModeCount is the number of blend modes.
	BlendModeCount = 3
)

var blendModeNames = [BlendModeCount]string{"normal", "additive", "screen"}

// String returns the YAML name of the blend mode.
func (b BlendMode) String() string {
	if int(b) < len(blendModeNames) {
		return blendModeNames[b]
	}
	return fmt.Sprintf("BlendMode(%d)", uint8(b))
}

// Valid reports whether b is one of the defined modes.
func (b BlendMode) Valid() bool {
	return b < BlendModeCount
}

// ParseBlendMode parses a blend mode name. An empty string means BlendNormal.
func ParseBlendMode(s string) (BlendMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "normal":
		return BlendNormal, nil
	case "additive", "add", "lighter":
		return BlendAdditive, nil
	case "screen":
		return BlendScreen, nil
	}
	return BlendNormal, fmt.Errorf("unknown blend mode %q", s)
}

// Ease 动画曲线缓动类型
type Ease uint8

const (
	EaseLinear Ease = iota
	EaseIn
	EaseOut
	EaseInOut

	easeCount = 4
)

var easeNames = [easeCount]string{"linear", "ease-in", "ease-out", "ease-in-out"}

func (e Ease) String() string {
	if int(e) < len(easeNames) {
		return easeNames[e]
	}
	return fmt.Sprintf("Ease(%d)", uint8(e))
}

// Valid reports whether e is one of the defined easings.
func (e Ease) Valid() bool {
	return e < easeCount
}

// ParseEase parses an easing name. An empty string means EaseLinear.
func ParseEase(s string) (Ease, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "linear":
		return EaseLinear, nil
	case "ease-in", "in":
		return EaseIn, nil
	case "ease-out", "out":
		return EaseOut, nil
	case "ease-in-out", "in-out":
		return EaseInOut, nil
	}
	return EaseLinear, fmt.Errorf("unknown ease %q", s)
}
