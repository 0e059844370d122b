package systems

import (
	"github.com/decker502/balloonpump/pkg/components"
	"github.com/decker502/balloonpump/pkg/ecs"
)

// LifetimeSystem 管理实体的生命周期
// 过期实体被标记删除；设置了 ShrinkOut 的实体在生命末段按剩余比例缩小
type LifetimeSystem struct {
	entityManager *ecs.EntityManager
}

// NewLifetimeSystem 创建一个新的生命周期系统
func NewLifetimeSystem(em *ecs.EntityManager) *LifetimeSystem {
	return &LifetimeSystem{
		entityManager: em,
	}
}

// Update 更新所有拥有生命周期组件的实体
func (s *LifetimeSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith1[*components.LifetimeComponent](s.entityManager)

	for _, id := range entities {
		lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
		if !ok {
			continue
		}

		lifetime.CurrentLifetime += deltaTime

		if lifetime.CurrentLifetime >= lifetime.MaxLifetime {
			lifetime.IsExpired = true
		}

		if lifetime.IsExpired {
			s.entityManager.DestroyEntity(id)
			continue
		}

		if lifetime.ShrinkOut && lifetime.MaxLifetime > 0 {
			if scale, ok := ecs.GetComponent[*components.ScaleComponent](s.entityManager, id); ok {
				if lifetime.BaseScale == 0 {
					lifetime.BaseScale = scale.ScaleX
				}
				remaining := 1 - lifetime.CurrentLifetime/lifetime.MaxLifetime
				scale.ScaleX = lifetime.BaseScale * remaining
				scale.ScaleY = lifetime.BaseScale * remaining
			}
		}
	}
}
