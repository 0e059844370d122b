package entities

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/decker502/balloonpump/pkg/components"
	"github.com/decker502/balloonpump/pkg/config"
	"github.com/decker502/balloonpump/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// fragmentScale 碎片相对于气球主体图片的缩放
const fragmentScale = 0.06

// NewPopFragments 在 (x, y) 处创建一圈向外飞散的爆炸碎片
//
// 碎片复用气球主体图片（缩小后呈彩色圆点），无碰撞、不可点击，
// 由 LifetimeSystem 在 cfg.Lifetime 秒后清理，期间逐渐缩小。
//
// 参数:
//   - img: 碎片图片（通常为被点破气球的主体图片，可为 nil）
//   - rng: 随机数生成器（用于扰动飞散角度）
func NewPopFragments(em *ecs.EntityManager, img *ebiten.Image, x, y float64, cfg config.FragmentsConfig, rng *rand.Rand) ([]ecs.EntityID, error) {
	if em == nil {
		return nil, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg.Count <= 0 {
		return nil, nil
	}

	ids := make([]ecs.EntityID, 0, cfg.Count)
	step := 2 * math.Pi / float64(cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		angle := float64(i) * step
		if rng != nil {
			angle += (rng.Float64() - 0.5) * step * 0.5
		}

		id := em.CreateEntity()
		em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
		em.AddComponent(id, &components.VelocityComponent{
			VX: math.Cos(angle) * cfg.Speed,
			VY: math.Sin(angle) * cfg.Speed,
		})
		em.AddComponent(id, components.NewUniformScale(fragmentScale))
		em.AddComponent(id, &components.SpriteComponent{
			Parts:   []components.SpritePart{components.NewCenteredPart(img, 0, 0, 1)},
			Depth:   config.DepthFragments,
			Visible: true,
		})
		em.AddComponent(id, &components.LifetimeComponent{
			MaxLifetime: cfg.Lifetime,
			ShrinkOut:   true,
		})
		ids = append(ids, id)
	}
	return ids, nil
}
