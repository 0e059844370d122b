//go:build mobile

package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/balloonpump/pkg/app"
	"github.com/decker502/balloonpump/pkg/embedded"
)

// init 由 ebitenmobile 在加载绑定库时调用
func init() {
	embedded.Init(assetsFS, dataFS)

	// 移动端没有窗口，屏幕尺寸在第一次 Layout 时才知道
	gameApp, err := app.NewApp(app.Config{
		Verbose:        true,
		SizeFromLayout: true,
	})
	if err != nil {
		log.Fatalf("[Mobile] 游戏初始化失败: %v", err)
	}

	mobile.SetGame(gameApp)
}

// Dummy 导出一个符号，ebitenmobile 绑定时要求包至少有一个导出函数
func Dummy() {}
