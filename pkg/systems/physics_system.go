package systems

import (
	"math"

	"github.com/decker502/balloonpump/pkg/components"
	"github.com/decker502/balloonpump/pkg/ecs"
)

// PhysicsSystem 处理游戏物理逻辑
// 无重力世界：积分速度，并处理刚体与世界边界的碰撞反弹
type PhysicsSystem struct {
	em *ecs.EntityManager

	worldWidth  float64
	worldHeight float64
}

// NewPhysicsSystem 创建物理系统
//
// 参数:
//   - em: 实体管理器，用于查询和操作实体组件
//   - worldWidth, worldHeight: 世界边界尺寸（像素），原点在左上角
//
// 返回:
//   - *PhysicsSystem: 物理系统实例
func NewPhysicsSystem(em *ecs.EntityManager, worldWidth, worldHeight float64) *PhysicsSystem {
	return &PhysicsSystem{
		em:          em,
		worldWidth:  worldWidth,
		worldHeight: worldHeight,
	}
}

// SetWorldBounds 更新世界边界
func (ps *PhysicsSystem) SetWorldBounds(width, height float64) {
	ps.worldWidth = width
	ps.worldHeight = height
}

// WorldBounds 返回世界边界尺寸
func (ps *PhysicsSystem) WorldBounds() (float64, float64) {
	return ps.worldWidth, ps.worldHeight
}

// Update 更新物理系统
//
// 参数:
//   - deltaTime: 自上一帧以来经过的时间（秒）
func (ps *PhysicsSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[*components.PositionComponent, *components.VelocityComponent](ps.em)

	for _, id := range entities {
		pos, _ := ecs.GetComponent[*components.PositionComponent](ps.em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](ps.em, id)

		pos.X += vel.VX * deltaTime
		pos.Y += vel.VY * deltaTime

		body, ok := ecs.GetComponent[*components.PhysicsBodyComponent](ps.em, id)
		if !ok || !body.CollideWorldBounds {
			continue
		}

		radius := body.Radius * ps.entityScale(id)
		ps.collideWorldBounds(pos, vel, radius, body.Bounce)
	}
}

// entityScale 返回实体的刚体缩放（取两轴较大值）
func (ps *PhysicsSystem) entityScale(id ecs.EntityID) float64 {
	scale, ok := ecs.GetComponent[*components.ScaleComponent](ps.em, id)
	if !ok {
		return 1.0
	}
	return math.Max(math.Abs(scale.ScaleX), math.Abs(scale.ScaleY))
}

// collideWorldBounds 将圆形刚体限制在世界边界内
// 碰到边界时把位置推回边界内，并按反弹系数反转该轴速度
func (ps *PhysicsSystem) collideWorldBounds(pos *components.PositionComponent, vel *components.VelocityComponent, radius, bounce float64) {
	// 刚体比世界还大时，只把中心限制在世界内
	rx := math.Min(radius, ps.worldWidth/2)
	ry := math.Min(radius, ps.worldHeight/2)

	if pos.X-rx < 0 {
		pos.X = rx
		if vel.VX < 0 {
			vel.VX = -vel.VX * bounce
		}
	} else if pos.X+rx > ps.worldWidth {
		pos.X = ps.worldWidth - rx
		if vel.VX > 0 {
			vel.VX = -vel.VX * bounce
		}
	}

	if pos.Y-ry < 0 {
		pos.Y = ry
		if vel.VY < 0 {
			vel.VY = -vel.VY * bounce
		}
	} else if pos.Y+ry > ps.worldHeight {
		pos.Y = ps.worldHeight - ry
		if vel.VY > 0 {
			vel.VY = -vel.VY * bounce
		}
	}
}
