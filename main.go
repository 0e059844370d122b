package main

import (
	"flag"
	"log"

	"github.com/decker502/balloonpump/pkg/app"
	"github.com/decker502/balloonpump/pkg/config"
	"github.com/decker502/balloonpump/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose = flag.Bool("verbose", false, "显示详细调试信息")
	width   = flag.Int("width", 0, "世界宽度（默认使用显示器宽度）")
	height  = flag.Int("height", 0, "世界高度（默认使用显示器高度）")
	seed    = flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
)

// worldSize 返回世界尺寸：命令行参数 > 显示器尺寸 > 默认值
func worldSize() (int, int) {
	if *width > 0 && *height > 0 {
		return *width, *height
	}
	if monitor := ebiten.Monitor(); monitor != nil {
		if w, h := monitor.Size(); w > 0 && h > 0 {
			return w, h
		}
	}
	return config.DefaultWorldWidth, config.DefaultWorldHeight
}

func main() {
	flag.Parse()

	// 初始化嵌入资源（assetsFS 和 dataFS 在 embed.go 中声明）
	embedded.Init(assetsFS, dataFS)

	w, h := worldSize()
	gameApp, err := app.NewApp(app.Config{
		Verbose: *verbose,
		Width:   w,
		Height:  h,
		Seed:    *seed,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}
	defer gameApp.Shutdown()

	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Balloon Pump")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(gameApp.GetSettingsManager().GetSettings().Fullscreen)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Printf("游戏退出: %v", err)
	}
}
