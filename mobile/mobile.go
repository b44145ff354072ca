//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译。移动端只使用内置模板和默认引擎
// 配置，不需要额外的资源文件。
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.sparkfx -o build/android/sparkfx.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/SparkFX.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/sparkfx/pkg/app"
)

func init() {
	sandbox, err := app.NewApp(app.Config{
		Verbose: true,
		AppName: "sparkfx",
	})
	if err != nil {
		log.Fatalf("沙盒初始化失败: %v", err)
	}

	// 注册到 ebitenmobile
	mobile.SetGame(sandbox)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
