package systems

import (
	"github.com/decker502/balloonpump/pkg/components"
	"github.com/decker502/balloonpump/pkg/ecs"
	"github.com/decker502/balloonpump/pkg/utils"
)

// PointerSource 返回本帧是否有指针按下事件及其位置
type PointerSource func() (pressed bool, x, y int)

// InputSystem 处理指针输入
// 每帧最多分发一次按下事件：从最上层开始命中测试，只调用第一个命中实体的回调
type InputSystem struct {
	entityManager *ecs.EntityManager
	pointer       PointerSource
}

// NewInputSystem 创建输入系统，使用鼠标/触摸作为输入源
func NewInputSystem(em *ecs.EntityManager) *InputSystem {
	return NewInputSystemWithSource(em, utils.IsJustTouchedOrClicked)
}

// NewInputSystemWithSource 使用自定义输入源创建输入系统（用于测试和回放）
func NewInputSystemWithSource(em *ecs.EntityManager, source PointerSource) *InputSystem {
	return &InputSystem{
		entityManager: em,
		pointer:       source,
	}
}

// Update 读取输入并分发
func (s *InputSystem) Update(deltaTime float64) {
	pressed, x, y := s.pointer()
	if !pressed {
		return
	}
	s.HandlePointerDown(float64(x), float64(y))
}

// HandlePointerDown 在世界坐标 (x, y) 处分发一次指针按下事件
//
// 返回：
//   - ecs.EntityID: 被点击的实体
//   - bool: 是否命中
func (s *InputSystem) HandlePointerDown(x, y float64) (ecs.EntityID, bool) {
	id, ok := s.HitTest(x, y)
	if !ok {
		return 0, false
	}

	clickable, _ := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id)
	if clickable.OnPointerDown != nil {
		clickable.OnPointerDown()
	}
	return id, true
}

// HitTest 返回 (x, y) 处最上层的可点击实体
func (s *InputSystem) HitTest(x, y float64) (ecs.EntityID, bool) {
	em := s.entityManager
	entities := ecs.GetEntitiesWith2[*components.ClickableComponent, *components.PositionComponent](em)

	// 从最上层开始检查
	ordered := sortByDepth(em, entities)
	for i := len(ordered) - 1; i >= 0; i-- {
		id := ordered[i]
		if em.IsMarkedForDestroy(id) {
			continue
		}
		clickable, _ := ecs.GetComponent[*components.ClickableComponent](em, id)
		if !clickable.IsEnabled {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)

		sx, sy := 1.0, 1.0
		if scale, ok := ecs.GetComponent[*components.ScaleComponent](em, id); ok {
			sx, sy = scale.ScaleX, scale.ScaleY
		}

		if containsPoint(clickable, pos, sx, sy, x, y) {
			return id, true
		}
	}
	return 0, false
}

// containsPoint 将世界坐标转换到实体本地坐标后检测是否落在点击区域内
func containsPoint(c *components.ClickableComponent, pos *components.PositionComponent, sx, sy, x, y float64) bool {
	if sx == 0 || sy == 0 {
		return false
	}
	lx := (x - pos.X) / sx
	ly := (y - pos.Y) / sy

	switch c.Shape {
	case components.HitCircle:
		return lx*lx+ly*ly <= c.Radius*c.Radius
	default:
		return lx >= -c.Width/2 && lx <= c.Width/2 && ly >= -c.Height/2 && ly <= c.Height/2
	}
}
