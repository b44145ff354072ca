// Package embedded 提供嵌入资源的统一访问接口
//
// The //go:embed directive can only reach files below the declaring package,
// so the data FS is declared in the repository root (embed.go) and handed to
// this package with Init. Until Init is called, or when a path is missing from
// the bundled FS, reads fall back to the operating system's file system. That
// keeps tools and package tests working from a source checkout.
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var (
	dataFS      fs.FS
	initialized bool
)

// Init 初始化嵌入的 data/ 文件系统
// 必须在 main() 开始时、任何配置加载之前调用
func Init(data fs.FS) {
	dataFS = data
	initialized = data != nil
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// normalize converts path separators and strips a leading "./".
func normalize(path string) string {
	path = filepath.ToSlash(path)
	return strings.TrimPrefix(path, "./")
}

// ReadFile reads path from the bundled data FS when the path lives under
// "data/" and the FS is initialised, otherwise from disk.
func ReadFile(path string) ([]byte, error) {
	path = normalize(path)

	if initialized && strings.HasPrefix(path, "data/") {
		data, err := fs.ReadFile(dataFS, path)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read embedded file %s: %w", path, err)
		}
	}

	data, err := os.ReadFile(filepath.FromSlash(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return data, nil
}

// Exists 检查文件是否存在（嵌入 FS 或磁盘）
func Exists(path string) bool {
	path = normalize(path)
	if initialized && strings.HasPrefix(path, "data/") {
		if _, err := fs.Stat(dataFS, path); err == nil {
			return true
		}
	}
	_, err := os.Stat(filepath.FromSlash(path))
	return err == nil
}

// Glob matches pattern against the bundled FS when initialised, otherwise
// against the disk.
func Glob(pattern string) ([]string, error) {
	pattern = normalize(pattern)
	if initialized && strings.HasPrefix(pattern, "data/") {
		return fs.Glob(dataFS, pattern)
	}
	matches, err := filepath.Glob(filepath.FromSlash(pattern))
	if err != nil {
		return nil, err
	}
	for i := range matches {
		matches[i] = filepath.ToSlash(matches[i])
	}
	return matches, nil
}
