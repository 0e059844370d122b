package systems

import (
	"log"
	"math"
	"math/rand"

	"github.com/decker502/balloonpump/pkg/components"
	"github.com/decker502/balloonpump/pkg/config"
	"github.com/decker502/balloonpump/pkg/ecs"
	"github.com/decker502/balloonpump/pkg/entities"
	"github.com/decker502/balloonpump/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// SoundPlayer 播放一次性音效
// game.AudioManager 实现此接口；允许同一音效重叠播放
type SoundPlayer interface {
	PlaySound(soundID string) bool
}

// BalloonLifecycleController 管理打气计数和所有活动气球
//
// 职责：
//   - 响应打气事件：第一次打气时创建气球，每次打气让充气中的气球变大并轻微抖动
//   - 打气次数达到阈值时重置计数，放飞所有充气中的气球
//   - 响应气球点击：播放爆炸音效和放大动画，动画结束后删除实体
//
// 所有方法都在主循环中同步调用，不需要加锁。
type BalloonLifecycleController struct {
	em     *ecs.EntityManager
	tweens *TweenSystem
	images entities.ImageSource
	sounds SoundPlayer
	cfg    *config.BalloonConfig
	rng    *rand.Rand

	pumpCount int
	// active 活动气球（按创建顺序）
	active []ecs.EntityID

	spawned int
	burst   int
}

// NewBalloonLifecycleController 创建气球生命周期控制器
//
// 参数：
//   - em: 实体管理器
//   - tweens: 补间系统（充气、入场、爆炸动画）
//   - images: 图片来源（可为 nil，气球将不绘制图片）
//   - sounds: 音效播放器（可为 nil，静音）
//   - cfg: 气球配置，nil 时使用默认配置
//   - rng: 随机数生成器，nil 时自动创建
func NewBalloonLifecycleController(
	em *ecs.EntityManager,
	tweens *TweenSystem,
	images entities.ImageSource,
	sounds SoundPlayer,
	cfg *config.BalloonConfig,
	rng *rand.Rand,
) *BalloonLifecycleController {
	if cfg == nil {
		cfg = config.DefaultBalloonConfig()
	}
	if rng == nil {
		rng = utils.NewRand(0)
	}
	return &BalloonLifecycleController{
		em:     em,
		tweens: tweens,
		images: images,
		sounds: sounds,
		cfg:    cfg,
		rng:    rng,
	}
}

// OnPumpTriggered 处理一次打气
//
// 流程：
//  1. 计数加一；计数从 0 变为 1 时创建新气球
//  2. 所有充气中的气球：叠加随机速度抖动，逻辑缩放增加一步（不超过上限）
//  3. 计数达到阈值时归零，放飞所有充气中的气球
func (c *BalloonLifecycleController) OnPumpTriggered() {
	c.pumpCount++
	if c.pumpCount == 1 {
		c.spawnBalloon()
	}

	for _, id := range c.balloonsIn(components.BalloonInflating) {
		c.inflate(id)
	}

	if c.pumpCount >= c.cfg.ReleaseThreshold {
		c.pumpCount = 0
		c.releaseAllInflating()
	}
}

// inflate 对一个充气中的气球执行一次充气步进
func (c *BalloonLifecycleController) inflate(id ecs.EntityID) {
	balloon, ok := ecs.GetComponent[*components.BalloonComponent](c.em, id)
	if !ok {
		return
	}

	if vel, ok := ecs.GetComponent[*components.VelocityComponent](c.em, id); ok {
		vel.VX += float64(utils.Between(c.rng, c.cfg.Jitter.X.Min, c.cfg.Jitter.X.Max))
		vel.VY += float64(utils.Between(c.rng, c.cfg.Jitter.Y.Min, c.cfg.Jitter.Y.Max))
	}

	balloon.Scale = math.Min(balloon.Scale+c.cfg.Scale.Step, c.cfg.Scale.Max)
	balloon.InflateSteps++

	c.tweens.Add(id, &components.Tween{
		Property: components.TweenScale,
		To:       balloon.Scale,
		Duration: c.cfg.Timing.Inflate,
		Ease:     utils.EaseInOutSine,
	})
}

// spawnBalloon 在出生点创建一个新气球
// 主体和标签图片各自均匀随机选择
func (c *BalloonLifecycleController) spawnBalloon() ecs.EntityID {
	body := c.rng.Intn(c.cfg.Spawn.BodyVariants)
	label := c.rng.Intn(c.cfg.Spawn.LabelVariants)

	id, err := entities.NewBalloonEntity(c.em, c.images, c.cfg, body, label)
	if err != nil {
		log.Printf("[BalloonController] 错误: 创建气球失败: %v", err)
		return 0
	}

	if clickable, ok := ecs.GetComponent[*components.ClickableComponent](c.em, id); ok {
		clickable.OnPointerDown = func() {
			c.Burst(id)
		}
	}

	// 入场动画：从出生缩放鼓到初始缩放
	c.tweens.Add(id, &components.Tween{
		Property: components.TweenScale,
		To:       c.cfg.Scale.Initial,
		Duration: c.cfg.Timing.Entrance,
		Ease:     utils.EaseInOutSine,
	})

	c.active = append(c.active, id)
	c.spawned++
	log.Printf("[BalloonController] 创建气球 #%d (实体 %d): 主体=%d 字母=%s",
		c.spawned, id, body, entities.LabelLetter(label))
	return id
}

// releaseAllInflating 放飞所有充气中的气球
// 赋予随机发射速度（向上），保持可点击和边界碰撞，切换为完全弹性反弹
func (c *BalloonLifecycleController) releaseAllInflating() {
	for _, id := range c.balloonsIn(components.BalloonInflating) {
		balloon, _ := ecs.GetComponent[*components.BalloonComponent](c.em, id)
		balloon.State = components.BalloonReleased

		if vel, ok := ecs.GetComponent[*components.VelocityComponent](c.em, id); ok {
			vel.VX = float64(utils.Between(c.rng, c.cfg.Launch.X.Min, c.cfg.Launch.X.Max))
			vel.VY = float64(utils.Between(c.rng, c.cfg.Launch.Y.Min, c.cfg.Launch.Y.Max))
		}
		if clickable, ok := ecs.GetComponent[*components.ClickableComponent](c.em, id); ok {
			clickable.IsEnabled = true
		}
		if body, ok := ecs.GetComponent[*components.PhysicsBodyComponent](c.em, id); ok {
			body.CollideWorldBounds = true
			body.Bounce = c.cfg.Bounce.Released
		}

		log.Printf("[BalloonController] 放飞气球 (实体 %d)", id)
	}
}

// Burst 点破气球
//
// 只有充气中或已放飞的气球可以被点破；对正在爆炸或已删除的气球调用是静默的空操作。
// 爆炸动画一旦开始必定播放完成，结束时删除实体。
//
// 返回：
//   - bool: 是否开始了爆炸
func (c *BalloonLifecycleController) Burst(id ecs.EntityID) bool {
	balloon, ok := ecs.GetComponent[*components.BalloonComponent](c.em, id)
	if !ok || !balloon.State.CanBurst() {
		return false
	}

	balloon.State = components.BalloonBursting
	if clickable, ok := ecs.GetComponent[*components.ClickableComponent](c.em, id); ok {
		clickable.IsEnabled = false
	}

	if c.sounds != nil {
		c.sounds.PlaySound(c.cfg.Audio.Burst)
	}

	if pos, ok := ecs.GetComponent[*components.PositionComponent](c.em, id); ok {
		img := imageForFragments(c.images, balloon.BodyVariant)
		if _, err := entities.NewPopFragments(c.em, img, pos.X, pos.Y, c.cfg.Fragments, c.rng); err != nil {
			log.Printf("[BalloonController] Warning: 创建爆炸碎片失败: %v", err)
		}
	}

	c.tweens.Add(id, &components.Tween{
		Property: components.TweenScale,
		To:       c.cfg.Scale.Burst,
		Duration: c.cfg.Timing.Burst,
		Ease:     utils.EaseByName(c.cfg.Timing.BurstEase),
		OnComplete: func() {
			c.finishBurst(id)
		},
	})

	c.burst++
	log.Printf("[BalloonController] 点破气球 (实体 %d)", id)
	return true
}

// finishBurst 爆炸动画完成：进入终态并从活动集合和世界中移除
func (c *BalloonLifecycleController) finishBurst(id ecs.EntityID) {
	if balloon, ok := ecs.GetComponent[*components.BalloonComponent](c.em, id); ok {
		balloon.State = components.BalloonDestroyed
	}

	for i, activeID := range c.active {
		if activeID == id {
			c.active = append(c.active[:i], c.active[i+1:]...)
			break
		}
	}
	c.em.DestroyEntity(id)
}

// balloonsIn 返回处于指定状态的活动气球
func (c *BalloonLifecycleController) balloonsIn(state components.BalloonState) []ecs.EntityID {
	result := make([]ecs.EntityID, 0, len(c.active))
	for _, id := range c.active {
		balloon, ok := ecs.GetComponent[*components.BalloonComponent](c.em, id)
		if ok && balloon.State == state {
			result = append(result, id)
		}
	}
	return result
}

// PumpCount 返回当前打气计数（0 到 阈值-1）
func (c *BalloonLifecycleController) PumpCount() int {
	return c.pumpCount
}

// ActiveBalloons 返回活动气球ID（按创建顺序，副本）
func (c *BalloonLifecycleController) ActiveBalloons() []ecs.EntityID {
	return append([]ecs.EntityID(nil), c.active...)
}

// State 返回气球状态
// 不在活动集合中的气球视为已删除，第二个返回值为 false
func (c *BalloonLifecycleController) State(id ecs.EntityID) (components.BalloonState, bool) {
	for _, activeID := range c.active {
		if activeID == id {
			balloon, ok := ecs.GetComponent[*components.BalloonComponent](c.em, id)
			if !ok {
				break
			}
			return balloon.State, true
		}
	}
	return components.BalloonDestroyed, false
}

// SpawnedCount 返回累计创建的气球数量
func (c *BalloonLifecycleController) SpawnedCount() int {
	return c.spawned
}

// BurstCount 返回累计点破的气球数量
func (c *BalloonLifecycleController) BurstCount() int {
	return c.burst
}

// imageForFragments 爆炸碎片使用被点破气球的主体图片
func imageForFragments(images entities.ImageSource, bodyVariant int) *ebiten.Image {
	if images == nil {
		return nil
	}
	return images.GetImageByID(entities.BalloonImageID(bodyVariant))
}
