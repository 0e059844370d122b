package systems

import (
	"github.com/decker502/balloonpump/pkg/components"
	"github.com/decker502/balloonpump/pkg/ecs"
)

// TweenSystem 补间动画系统
// 驱动实体上的 TweenComponent，按时间插值位置和缩放，并在主循环中同步调用开始/完成回调
//
// 规则：
//   - 同一实体同一属性上只保留最新添加的补间，被替换的补间不会触发 OnComplete
//   - 已标记删除的实体上的补间被静默丢弃
type TweenSystem struct {
	entityManager *ecs.EntityManager
}

// NewTweenSystem 创建补间动画系统
func NewTweenSystem(em *ecs.EntityManager) *TweenSystem {
	return &TweenSystem{
		entityManager: em,
	}
}

// Add 为实体添加补间动画
//
// 参数：
//   - id: 目标实体
//   - tween: 补间定义（From/Elapsed 等运行时字段由系统维护）
//
// 返回：
//   - bool: 实体不存在或已标记删除时返回 false
func (s *TweenSystem) Add(id ecs.EntityID, tween *components.Tween) bool {
	em := s.entityManager
	if !em.IsAlive(id) || em.IsMarkedForDestroy(id) {
		return false
	}

	tc, ok := ecs.GetComponent[*components.TweenComponent](em, id)
	if !ok {
		tc = &components.TweenComponent{}
		ecs.AddComponent(em, id, tc)
	}

	// 替换同一属性上正在运行的补间
	kept := tc.Tweens[:0]
	for _, existing := range tc.Tweens {
		if existing.Property.Overlaps(tween.Property) {
			existing.Finished = true
			continue
		}
		kept = append(kept, existing)
	}
	tc.Tweens = append(kept, tween)
	return true
}

// IsTweening 检查实体的某个属性是否有正在运行的补间
func (s *TweenSystem) IsTweening(id ecs.EntityID, property components.TweenProperty) bool {
	tc, ok := ecs.GetComponent[*components.TweenComponent](s.entityManager, id)
	if !ok {
		return false
	}
	for _, tw := range tc.Tweens {
		if !tw.Finished && tw.Property.Overlaps(property) {
			return true
		}
	}
	return false
}

// Update 推进所有补间动画
//
// 参数:
//   - deltaTime: 自上一帧以来经过的时间（秒）
func (s *TweenSystem) Update(deltaTime float64) {
	em := s.entityManager
	entities := ecs.GetEntitiesWith1[*components.TweenComponent](em)

	for _, id := range entities {
		if em.IsMarkedForDestroy(id) {
			continue
		}
		tc, ok := ecs.GetComponent[*components.TweenComponent](em, id)
		if !ok {
			continue
		}

		// 回调中可能向同一实体添加新的补间，遍历快照
		snapshot := append([]*components.Tween(nil), tc.Tweens...)
		for _, tw := range snapshot {
			if tw.Finished {
				continue
			}
			s.step(id, tw, deltaTime)
		}

		remaining := tc.Tweens[:0]
		for _, tw := range tc.Tweens {
			if !tw.Finished {
				remaining = append(remaining, tw)
			}
		}
		tc.Tweens = remaining
	}
}

// step 推进单个补间
func (s *TweenSystem) step(id ecs.EntityID, tw *components.Tween, deltaTime float64) {
	if !tw.Started {
		from, ok := s.getProperty(id, tw.Property)
		if !ok {
			// 实体缺少对应组件，直接视为完成
			tw.Started = true
			s.finish(tw)
			return
		}
		tw.From = from
		tw.Started = true
		if tw.OnStart != nil {
			tw.OnStart()
		}
		// OnStart 中可能替换了自己
		if tw.Finished {
			return
		}
	}

	tw.Elapsed += deltaTime
	s.setProperty(id, tw.Property, tw.Value())

	if tw.Elapsed >= tw.TotalDuration() {
		if tw.Yoyo {
			s.setProperty(id, tw.Property, tw.From)
		} else {
			s.setProperty(id, tw.Property, tw.To)
		}
		s.finish(tw)
	}
}

func (s *TweenSystem) finish(tw *components.Tween) {
	tw.Finished = true
	if tw.OnComplete != nil {
		tw.OnComplete()
	}
}

func (s *TweenSystem) getProperty(id ecs.EntityID, property components.TweenProperty) (float64, bool) {
	em := s.entityManager
	switch property {
	case components.TweenX, components.TweenY:
		pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
		if !ok {
			return 0, false
		}
		if property == components.TweenX {
			return pos.X, true
		}
		return pos.Y, true
	case components.TweenScaleX, components.TweenScale:
		scale, ok := ecs.GetComponent[*components.ScaleComponent](em, id)
		if !ok {
			return 0, false
		}
		return scale.ScaleX, true
	case components.TweenScaleY:
		scale, ok := ecs.GetComponent[*components.ScaleComponent](em, id)
		if !ok {
			return 0, false
		}
		return scale.ScaleY, true
	}
	return 0, false
}

func (s *TweenSystem) setProperty(id ecs.EntityID, property components.TweenProperty, value float64) {
	em := s.entityManager
	switch property {
	case components.TweenX, components.TweenY:
		pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
		if !ok {
			return
		}
		if property == components.TweenX {
			pos.X = value
		} else {
			pos.Y = value
		}
	case components.TweenScaleX, components.TweenScaleY, components.TweenScale:
		scale, ok := ecs.GetComponent[*components.ScaleComponent](em, id)
		if !ok {
			return
		}
		if property != components.TweenScaleY {
			scale.ScaleX = value
		}
		if property != components.TweenScaleX {
			scale.ScaleY = value
		}
	}
}
