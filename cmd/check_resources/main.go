// check_resources 校验资源配置和气球配置
//
// 检查内容：
//   - assets/config/resources.yaml 中每个资源文件存在，图片可以解码
//   - 场景需要的全部资源ID（部件、气球主体、字母标签、音频）都已配置
//   - data/balloon.yaml 可以解析并通过校验
//
// 用法：
//
//	go run ./cmd/check_resources [-root .] [-verbose]
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/decker502/balloonpump/pkg/config"
	"github.com/decker502/balloonpump/pkg/entities"
	"github.com/decker502/balloonpump/pkg/game"
)

var (
	root    = flag.String("root", ".", "项目根目录（包含 assets/ 和 data/）")
	verbose = flag.Bool("verbose", false, "显示每个资源的检查结果")
)

func main() {
	flag.Parse()

	problems := 0
	report := func(format string, args ...interface{}) {
		problems++
		fmt.Printf("❌ "+format+"\n", args...)
	}

	cfg, err := config.LoadBalloonConfig(filepath.Join(*root, config.BalloonConfigPath))
	if err != nil {
		report("气球配置: %v", err)
		cfg = config.DefaultBalloonConfig()
	} else {
		fmt.Printf("✅ 气球配置: 阈值=%d, 主体 %d 种, 字母 %d 种\n",
			cfg.ReleaseThreshold, cfg.Spawn.BodyVariants, cfg.Spawn.LabelVariants)
	}

	rm := game.NewResourceManager(nil)
	rm.SetRootDir(*root)
	if err := rm.LoadResourceConfig(game.ResourceConfigPath); err != nil {
		fmt.Printf("❌ 资源配置: %v\n", err)
		os.Exit(1)
	}

	total := 0
	for _, name := range rm.GroupNames() {
		group, _ := rm.Group(name)
		for _, id := range group.IDs() {
			total++
			path, _ := rm.ResourcePath(id)
			if msg := checkFile(filepath.Join(*root, path)); msg != "" {
				report("%s (%s): %s", id, path, msg)
			} else if *verbose {
				fmt.Printf("  %-24s %s\n", id, path)
			}
		}
	}
	fmt.Printf("✅ 检查了 %d 个分组, %d 个资源文件\n", len(rm.GroupNames()), total)

	for _, id := range entities.RequiredResourceIDs(cfg) {
		if _, ok := rm.ResourcePath(id); !ok {
			report("场景需要的资源未配置: %s", id)
		}
	}

	if problems > 0 {
		fmt.Printf("\n共 %d 个问题\n", problems)
		os.Exit(1)
	}
	fmt.Println("✅ 所有资源检查通过")
}

// checkFile 检查文件存在；PNG 图片还要能解码出尺寸
func checkFile(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return "文件不存在"
	}
	defer f.Close()

	if !strings.EqualFold(filepath.Ext(path), ".png") {
		return ""
	}
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return fmt.Sprintf("图片解码失败: %v", err)
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return "图片尺寸为 0"
	}
	return ""
}
