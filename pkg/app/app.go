// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/balloonpump/pkg/config"
	"github.com/decker502/balloonpump/pkg/game"
	"github.com/decker502/balloonpump/pkg/scenes"
	"github.com/decker502/balloonpump/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// SampleRate 音频上下文采样率
const SampleRate = 48000

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Width / Height 世界尺寸（逻辑屏幕尺寸），<= 0 时使用默认值
	Width  int
	Height int
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
	// SizeFromLayout 世界尺寸取第一次 Layout 传入的外部尺寸（移动端的屏幕尺寸），
	// 场景延迟到那时创建；Width/Height 为正时忽略
	SizeFromLayout bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	audioManager    *game.AudioManager

	width   int
	height  int
	verbose bool
	mobile  bool

	// newScene 按世界尺寸创建场景；尺寸未知时场景延迟到第一次 Layout 创建
	newScene  func(width, height int) (game.Scene, error)
	sceneErr  error
	sceneLive bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	deferSize := cfg.SizeFromLayout && (cfg.Width <= 0 || cfg.Height <= 0)
	if !deferSize && (cfg.Width <= 0 || cfg.Height <= 0) {
		cfg.Width, cfg.Height = config.DefaultWorldWidth, config.DefaultWorldHeight
	}

	// 初始化音频上下文
	audioContext := audio.NewContext(SampleRate)

	// 创建资源管理器
	resourceManager := game.NewResourceManager(audioContext)

	// 加载资源配置
	if err := resourceManager.LoadResourceConfig(game.ResourceConfigPath); err != nil {
		return nil, fmt.Errorf("资源配置加载失败: %w", err)
	}

	// 加载气球玩法配置
	balloonConfig, err := config.LoadBalloonConfig(config.BalloonConfigPath)
	if err != nil {
		return nil, fmt.Errorf("气球配置加载失败: %w", err)
	}
	log.Printf("[Config] 加载气球配置: 阈值=%d, 缩放 %.2f→%.2f", balloonConfig.ReleaseThreshold,
		balloonConfig.Scale.Initial, balloonConfig.Scale.Max)

	// 用户设置（存储不可用时只保存在内存中）
	settingsManager, err := game.NewSettingsManager(game.OpenSettingsStorage())
	if err != nil {
		return nil, fmt.Errorf("设置初始化失败: %w", err)
	}

	audioManager := game.NewAudioManager(resourceManager, settingsManager)
	log.Printf("[App] AudioManager initialized")

	rng := utils.NewRand(cfg.Seed)
	a := &App{
		sceneManager:    game.NewSceneManager(),
		settingsManager: settingsManager,
		audioManager:    audioManager,
		verbose:         cfg.Verbose,
		mobile:          utils.IsMobile(),
		newScene: func(width, height int) (game.Scene, error) {
			scene, err := scenes.NewBalloonScene(scenes.BalloonSceneOptions{
				ResourceManager: resourceManager,
				AudioManager:    audioManager,
				SettingsManager: settingsManager,
				Config:          balloonConfig,
				WorldWidth:      width,
				WorldHeight:     height,
				Rand:            rng,
			})
			if err != nil {
				return nil, err
			}
			return scene, nil
		},
	}

	if deferSize {
		log.Printf("[App] World size deferred until first Layout")
		return a, nil
	}
	if err := a.startScene(cfg.Width, cfg.Height); err != nil {
		return nil, err
	}
	return a, nil
}

// startScene 以给定世界尺寸创建并切换到气球场景
func (a *App) startScene(width, height int) error {
	a.width, a.height = width, height
	a.sceneLive = true

	scene, err := a.newScene(width, height)
	if err != nil {
		a.sceneErr = fmt.Errorf("场景初始化失败: %w", err)
		return a.sceneErr
	}
	a.sceneManager.SwitchTo(scene)
	log.Printf("[App] World size %dx%d", width, height)
	return nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if a.sceneErr != nil {
		return a.sceneErr
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.width, a.height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.width, a.height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏（移动端没有窗口）
	if !a.mobile && inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	if !fullscreen {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}

	a.settingsManager.SetFullscreen(fullscreen)
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: 保存设置失败: %v", err)
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时两边为黑色）
	screen.Fill(color.Black)
	// 使用线性滤波绘制游戏画面，提高缩放质量
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸（即世界尺寸）
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放。
// 世界尺寸延迟确定时，第一次有效的外部尺寸成为世界尺寸并创建场景，之后保持不变。
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if !a.sceneLive && outsideWidth > 0 && outsideHeight > 0 {
		if err := a.startScene(outsideWidth, outsideHeight); err != nil {
			log.Printf("[App] 错误: %v", err)
		}
	}
	if a.width <= 0 || a.height <= 0 {
		return config.DefaultWorldWidth, config.DefaultWorldHeight
	}
	return a.width, a.height
}

// Shutdown 退出前释放场景并保存设置
func (a *App) Shutdown() {
	a.sceneManager.Close()
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: 保存设置失败: %v", err)
	}
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// GetSettingsManager 返回设置管理器
func (a *App) GetSettingsManager() *game.SettingsManager {
	return a.settingsManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
