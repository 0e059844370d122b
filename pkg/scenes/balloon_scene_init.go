package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/balloonpump/pkg/ecs"
	"github.com/decker502/balloonpump/pkg/entities"
	"github.com/decker502/balloonpump/pkg/systems"
	"github.com/decker502/balloonpump/pkg/utils"
)

// initResourceGroup 场景需要的资源组
const initResourceGroup = "init"

// setup 加载场景资源
// 资源必须全部就绪，缺失任何一个都会让场景创建失败
func (s *BalloonScene) setup() error {
	if s.resourceManager == nil {
		return fmt.Errorf("resource manager cannot be nil")
	}
	if err := s.resourceManager.LoadResourceGroup(initResourceGroup); err != nil {
		return fmt.Errorf("场景资源加载失败: %w", err)
	}
	return nil
}

// init 创建系统、实体和控制器，开始播放背景音乐
func (s *BalloonScene) init(opts BalloonSceneOptions) error {
	em := ecs.NewEntityManager()
	s.entityManager = em

	s.tweenSystem = systems.NewTweenSystem(em)
	s.physicsSystem = systems.NewPhysicsSystem(em, float64(s.worldWidth), float64(s.worldHeight))
	s.lifetimeSystem = systems.NewLifetimeSystem(em)
	s.renderSystem = systems.NewRenderSystem(em)
	if opts.Pointer != nil {
		s.inputSystem = systems.NewInputSystemWithSource(em, opts.Pointer)
	} else {
		s.inputSystem = systems.NewInputSystem(em)
	}

	background, err := entities.NewBackgroundEntity(em, s.resourceManager, s.worldWidth, s.worldHeight)
	if err != nil {
		return fmt.Errorf("创建背景失败: %w", err)
	}
	s.background = background

	rig, err := entities.NewPumpRigEntities(em, s.resourceManager)
	if err != nil {
		return fmt.Errorf("创建打气筒失败: %w", err)
	}
	s.rigEntities = rig

	rng := opts.Rand
	if rng == nil {
		rng = utils.NewRand(0)
	}

	// 音频管理器为 nil 时不能直接赋给接口，否则控制器会调用空指针
	var sounds systems.SoundPlayer
	if s.audioManager != nil {
		sounds = s.audioManager
	}

	s.controller = systems.NewBalloonLifecycleController(em, s.tweenSystem, s.resourceManager, sounds, s.cfg, rng)
	s.pumpRig = systems.NewPumpRig(em, s.tweenSystem, rig, s.controller.OnPumpTriggered)

	if s.audioManager != nil {
		s.audioManager.PlayMusic(s.cfg.Audio.Music, s.cfg.Audio.MusicVolume)
	}

	if face, err := s.resourceManager.DebugFont(16); err == nil {
		s.debugFace = face
	} else {
		log.Printf("[BalloonScene] Warning: 调试字体加载失败: %v", err)
	}

	return nil
}
