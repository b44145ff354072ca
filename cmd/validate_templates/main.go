// Command validate_templates checks emitter template files.
//
// Usage:
//
//	go run ./cmd/validate_templates [file ...]
//
// With no arguments every data/emitters*.yaml file is checked. Exit status is 1 when any
// file fails to parse or holds an invalid template.
package main

import (
	"fmt"
	"os"

	"github.com/decker502/sparkfx/pkg/config"
	"github.com/decker502/sparkfx/pkg/embedded"
)

func main() {
	files := os.Args[1:]
	if len(files) == 0 {
		matches, err := embedded.Glob("data/emitters*.yaml")
		if err != nil {
			fmt.Printf("❌ 查找模板文件失败: %v\n", err)
			os.Exit(1)
		}
		files = matches
	}
	if len(files) == 0 {
		fmt.Printf("❌ 没有找到模板文件\n")
		os.Exit(1)
	}

	failed := 0
	for _, path := range files {
		templates, err := config.LoadEmitterTemplates(path)
		if err != nil {
			fmt.Printf("❌ %s: %v\n", path, err)
			failed++
			continue
		}
		fmt.Printf("✅ %s: %d 个模板\n", path, len(templates))
		for _, t := range templates {
			var mode string
			switch {
			case t.IsContinuous():
				mode = fmt.Sprintf("continuous %.0f/s", t.Rate)
			case !t.IsOneShot():
				mode = fmt.Sprintf("%.1fs @ %.0f/s", t.Duration, t.Rate)
			default:
				mode = fmt.Sprintf("burst %d", t.BurstCount)
			}
			fmt.Printf("   - %-12s %-22s blend=%s\n", t.Name, mode, t.Blend)
		}
	}

	if failed > 0 {
		fmt.Printf("❌ 有 %d 个文件未通过校验\n", failed)
		os.Exit(1)
	}
}
