// prepare_mobile 把 assets/ 和 data/ 复制到 mobile/ 目录
//
// mobile 包用 go:embed 嵌入资源，而 go:embed 不能引用包目录之外的文件，
// 所以构建移动端之前需要先复制一份。目标目录中的旧文件会被清除。
//
// 用法（通常由 mobile 包的 go:generate 调用）：
//
//	go run ./cmd/prepare_mobile [-root .] [-out mobile]
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// embeddedDirs mobile 包嵌入的目录，与根目录 embed.go 一致
var embeddedDirs = []string{"assets", "data"}

var (
	root    = flag.String("root", ".", "项目根目录（包含 assets/ 和 data/）")
	out     = flag.String("out", "mobile", "mobile 包目录")
	verbose = flag.Bool("verbose", false, "显示复制的目录")
)

func main() {
	flag.Parse()
	log.SetFlags(0)
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	if err := prepare(*root, *out); err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ 资源已复制到 %s\n", *out)
}

// prepare 用 root 下的资源目录替换 out 下的同名目录
func prepare(root, out string) error {
	for _, dir := range embeddedDirs {
		src := filepath.Join(root, dir)
		info, err := os.Stat(src)
		if err != nil {
			return fmt.Errorf("source %s: %w", dir, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("source %s is not a directory", src)
		}

		dst := filepath.Join(out, dir)
		if err := os.RemoveAll(dst); err != nil {
			return fmt.Errorf("failed to clean %s: %w", dst, err)
		}
		if err := os.CopyFS(dst, os.DirFS(src)); err != nil {
			return fmt.Errorf("failed to copy %s: %w", dir, err)
		}
		log.Printf("[PrepareMobile] %s -> %s", src, dst)
	}
	return nil
}
