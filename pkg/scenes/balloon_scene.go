package scenes

import (
	"log"
	"math/rand"

	"github.com/decker502/balloonpump/pkg/config"
	"github.com/decker502/balloonpump/pkg/ecs"
	"github.com/decker502/balloonpump/pkg/entities"
	"github.com/decker502/balloonpump/pkg/game"
	"github.com/decker502/balloonpump/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// KeySource 返回某个按键本帧是否刚被按下
type KeySource func(key ebiten.Key) bool

// BalloonSceneOptions 气球场景的依赖
type BalloonSceneOptions struct {
	ResourceManager *game.ResourceManager // 必须已加载资源配置
	AudioManager    *game.AudioManager    // 可为 nil（静音）
	SettingsManager *game.SettingsManager // 可为 nil（音乐/音效开关不持久化）
	Config          *config.BalloonConfig // nil 时使用默认配置

	WorldWidth  int
	WorldHeight int

	// Rand 随机数生成器，nil 时自动创建
	Rand *rand.Rand
	// Pointer 指针输入源，nil 时使用鼠标/触摸
	Pointer systems.PointerSource
	// Keys 键盘输入源，nil 时使用 inpututil
	Keys KeySource
}

// BalloonScene 打气球场景
//
// 生命周期：
//  1. setup：加载 init 资源组，任何资源缺失都会导致场景创建失败
//  2. init：创建背景、打气筒和控制器，开始播放背景音乐
//  3. 每帧：只驱动引擎系统（输入、补间、物理、生命周期），控制器本身没有逐帧逻辑
type BalloonScene struct {
	resourceManager *game.ResourceManager
	audioManager    *game.AudioManager
	settingsManager *game.SettingsManager
	cfg             *config.BalloonConfig
	keys            KeySource

	worldWidth  int
	worldHeight int

	entityManager  *ecs.EntityManager
	tweenSystem    *systems.TweenSystem
	physicsSystem  *systems.PhysicsSystem
	inputSystem    *systems.InputSystem
	lifetimeSystem *systems.LifetimeSystem
	renderSystem   *systems.RenderSystem

	controller  *systems.BalloonLifecycleController
	pumpRig     *systems.PumpRig
	rigEntities *entities.PumpRigEntities
	background  ecs.EntityID

	showDebug bool
	debugFace *text.GoTextFace
}

// NewBalloonScene 创建并初始化打气球场景
//
// 返回：
//   - error: 资源加载失败或实体创建失败
func NewBalloonScene(opts BalloonSceneOptions) (*BalloonScene, error) {
	if opts.Config == nil {
		opts.Config = config.DefaultBalloonConfig()
	}
	if opts.WorldWidth <= 0 || opts.WorldHeight <= 0 {
		opts.WorldWidth, opts.WorldHeight = config.DefaultWorldWidth, config.DefaultWorldHeight
	}
	if opts.Keys == nil {
		opts.Keys = inpututil.IsKeyJustPressed
	}

	s := &BalloonScene{
		resourceManager: opts.ResourceManager,
		audioManager:    opts.AudioManager,
		settingsManager: opts.SettingsManager,
		cfg:             opts.Config,
		keys:            opts.Keys,
		worldWidth:      opts.WorldWidth,
		worldHeight:     opts.WorldHeight,
	}

	if err := s.setup(); err != nil {
		return nil, err
	}
	if err := s.init(opts); err != nil {
		return nil, err
	}

	log.Printf("[BalloonScene] 场景初始化完成 (世界尺寸 %dx%d)", s.worldWidth, s.worldHeight)
	return s, nil
}

// Update 推进一帧
func (s *BalloonScene) Update(deltaTime float64) {
	s.handleKeys()

	s.inputSystem.Update(deltaTime)
	s.tweenSystem.Update(deltaTime)
	s.physicsSystem.Update(deltaTime)
	s.lifetimeSystem.Update(deltaTime)

	s.entityManager.RemoveMarkedEntities()
}

// Draw 绘制场景
func (s *BalloonScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen)

	if s.showDebug {
		s.drawDebug(screen)
	}
}

// Dispose 停止背景音乐
func (s *BalloonScene) Dispose() {
	if s.audioManager != nil {
		s.audioManager.StopMusic()
	}
	log.Printf("[BalloonScene] 场景已释放")
}

// handleKeys 处理场景快捷键
//   - F3: 调试信息
//   - M: 音乐开关
//   - N: 音效开关
func (s *BalloonScene) handleKeys() {
	if s.keys(ebiten.KeyF3) {
		s.showDebug = !s.showDebug
		log.Printf("[BalloonScene] 调试信息: %v", s.showDebug)
	}

	if s.audioManager == nil {
		return
	}
	changed := false
	if s.keys(ebiten.KeyM) {
		if s.audioManager.ToggleMusic() {
			// 第一次启用时音乐可能还没创建
			s.audioManager.PlayMusic(s.cfg.Audio.Music, s.cfg.Audio.MusicVolume)
		}
		changed = true
	}
	if s.keys(ebiten.KeyN) {
		s.audioManager.ToggleSound()
		changed = true
	}
	if changed && s.settingsManager != nil {
		if err := s.settingsManager.Save(); err != nil {
			log.Printf("[BalloonScene] Warning: 保存设置失败: %v", err)
		}
	}
}

// Controller 返回气球生命周期控制器
func (s *BalloonScene) Controller() *systems.BalloonLifecycleController {
	return s.controller
}

// PumpRig 返回打气筒交互
func (s *BalloonScene) PumpRig() *systems.PumpRig {
	return s.pumpRig
}

// EntityManager 返回场景的实体管理器
func (s *BalloonScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// IsDebugVisible 调试信息是否显示
func (s *BalloonScene) IsDebugVisible() bool {
	return s.showDebug
}
