package entities

import (
	"fmt"

	"github.com/decker502/balloonpump/pkg/components"
	"github.com/decker502/balloonpump/pkg/config"
	"github.com/decker502/balloonpump/pkg/ecs"
)

// NewBalloonEntity 创建气球组合实体
//
// 气球由三个部件组成（主体、字母标签、细线），共享同一位置和缩放，作为刚性整体移动。
// 点击区域是固定半径的圆，与图片包围盒无关。
// 刚体开启世界边界碰撞，使用充气阶段的反弹系数。
//
// 实体创建后处于 Inflating 状态，渲染缩放为 cfg.Scale.Spawn，
// 逻辑缩放为 cfg.Scale.Initial（入场动画的目标值，由调用方播放）。
// 点击回调由调用方设置。
//
// 参数:
//   - em: 实体管理器
//   - images: 图片来源
//   - cfg: 气球配置
//   - bodyVariant: 主体图片编号 [0, cfg.Spawn.BodyVariants)
//   - labelVariant: 标签图片编号 [0, cfg.Spawn.LabelVariants)
//
// 返回:
//   - ecs.EntityID: 创建的气球实体ID
//   - error: 参数无效时返回错误
func NewBalloonEntity(em *ecs.EntityManager, images ImageSource, cfg *config.BalloonConfig, bodyVariant, labelVariant int) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("balloon config cannot be nil")
	}
	if bodyVariant < 0 || bodyVariant >= cfg.Spawn.BodyVariants {
		return 0, fmt.Errorf("body variant %d out of range [0, %d)", bodyVariant, cfg.Spawn.BodyVariants)
	}
	if labelVariant < 0 || labelVariant >= cfg.Spawn.LabelVariants {
		return 0, fmt.Errorf("label variant %d out of range [0, %d)", labelVariant, cfg.Spawn.LabelVariants)
	}

	parts := cfg.Parts
	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{
		X: cfg.Spawn.AnchorX,
		Y: cfg.Spawn.AnchorY,
	})
	em.AddComponent(id, &components.VelocityComponent{})
	em.AddComponent(id, components.NewUniformScale(cfg.Scale.Spawn))

	// 绘制顺序：主体在下，标签在上，细线最后（从主体底部垂下）
	em.AddComponent(id, &components.SpriteComponent{
		Parts: []components.SpritePart{
			components.NewCenteredPart(imageOf(images, BalloonImageID(bodyVariant)), parts.Body.OffsetX, parts.Body.OffsetY, parts.Body.Scale),
			components.NewCenteredPart(imageOf(images, LabelImageID(labelVariant)), parts.Label.OffsetX, parts.Label.OffsetY, parts.Label.Scale),
			components.NewCenteredPart(imageOf(images, ImageThread), parts.Thread.OffsetX, parts.Thread.OffsetY, parts.Thread.Scale),
		},
		Depth:   cfg.Spawn.Depth,
		Visible: true,
	})

	em.AddComponent(id, &components.PhysicsBodyComponent{
		Radius:             cfg.Spawn.HitRadius,
		Bounce:             cfg.Bounce.Inflating,
		CollideWorldBounds: true,
	})

	em.AddComponent(id, &components.ClickableComponent{
		Shape:     components.HitCircle,
		Radius:    cfg.Spawn.HitRadius,
		IsEnabled: true,
	})

	em.AddComponent(id, &components.BalloonComponent{
		State:        components.BalloonInflating,
		BodyVariant:  bodyVariant,
		LabelVariant: labelVariant,
		Scale:        cfg.Scale.Initial,
	})

	return id, nil
}
