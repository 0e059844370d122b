package systems

import (
	"github.com/decker502/balloonpump/pkg/components"
	"github.com/decker502/balloonpump/pkg/config"
	"github.com/decker502/balloonpump/pkg/ecs"
	"github.com/decker502/balloonpump/pkg/utils"
)

// testFrame 测试中使用的帧时长（60 FPS）
const testFrame = 1.0 / 60.0

// recordingSoundPlayer 记录播放请求的音效播放器
type recordingSoundPlayer struct {
	played []string
}

func (r *recordingSoundPlayer) PlaySound(soundID string) bool {
	r.played = append(r.played, soundID)
	return true
}

// balloonTestWorld 气球控制器测试环境（无图片、固定随机种子）
type balloonTestWorld struct {
	em         *ecs.EntityManager
	tweens     *TweenSystem
	physics    *PhysicsSystem
	lifetime   *LifetimeSystem
	sounds     *recordingSoundPlayer
	cfg        *config.BalloonConfig
	controller *BalloonLifecycleController
}

func newBalloonTestWorld(seed int64) *balloonTestWorld {
	em := ecs.NewEntityManager()
	tweens := NewTweenSystem(em)
	sounds := &recordingSoundPlayer{}
	cfg := config.DefaultBalloonConfig()
	return &balloonTestWorld{
		em:         em,
		tweens:     tweens,
		physics:    NewPhysicsSystem(em, config.DefaultWorldWidth, config.DefaultWorldHeight),
		lifetime:   NewLifetimeSystem(em),
		sounds:     sounds,
		cfg:        cfg,
		controller: NewBalloonLifecycleController(em, tweens, nil, sounds, cfg, utils.NewRand(seed)),
	}
}

// advance 按场景的更新顺序推进若干秒
func (w *balloonTestWorld) advance(seconds float64) {
	for elapsed := 0.0; elapsed < seconds; elapsed += testFrame {
		w.tweens.Update(testFrame)
		w.physics.Update(testFrame)
		w.lifetime.Update(testFrame)
		w.em.RemoveMarkedEntities()
	}
}

func (w *balloonTestWorld) balloon(id ecs.EntityID) *components.BalloonComponent {
	b, _ := ecs.GetComponent[*components.BalloonComponent](w.em, id)
	return b
}

func (w *balloonTestWorld) balloonCount() int {
	return len(ecs.GetEntitiesWith1[*components.BalloonComponent](w.em))
}
