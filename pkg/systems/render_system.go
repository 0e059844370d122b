package systems

import (
	"sort"

	"github.com/decker502/balloonpump/pkg/components"
	"github.com/decker502/balloonpump/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// RenderSystem 绘制所有精灵实体
// 按层级从低到高绘制；同层级按实体ID（创建顺序）绘制
type RenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
	}
}

// Draw 绘制到屏幕
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	em := s.entityManager
	entities := ecs.GetEntitiesWith2[*components.SpriteComponent, *components.PositionComponent](em)

	for _, id := range sortByDepth(em, entities) {
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
		if !sprite.Visible {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)

		sx, sy := 1.0, 1.0
		if scale, ok := ecs.GetComponent[*components.ScaleComponent](em, id); ok {
			sx, sy = scale.ScaleX, scale.ScaleY
		}

		for i := range sprite.Parts {
			part := &sprite.Parts[i]
			if part.Image == nil {
				continue
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM = PartGeoM(part, pos.X, pos.Y, sx, sy)
			op.Filter = ebiten.FilterLinear
			screen.DrawImage(part.Image, op)
		}
	}
}

// PartGeoM 计算部件的变换矩阵
// 顺序：锚点 -> 部件缩放 -> 部件偏移 -> 实体缩放 -> 实体位置
func PartGeoM(part *components.SpritePart, x, y, sx, sy float64) ebiten.GeoM {
	var geoM ebiten.GeoM
	if part.Image != nil {
		b := part.Image.Bounds()
		geoM.Translate(-part.AnchorX*float64(b.Dx()), -part.AnchorY*float64(b.Dy()))
	}
	geoM.Scale(part.ScaleX, part.ScaleY)
	geoM.Translate(part.OffsetX, part.OffsetY)
	geoM.Scale(sx, sy)
	geoM.Translate(x, y)
	return geoM
}

// sortByDepth 按渲染层级升序排序（同层级按ID升序）
// 没有 SpriteComponent 的实体视为层级 0
func sortByDepth(em *ecs.EntityManager, ids []ecs.EntityID) []ecs.EntityID {
	depth := func(id ecs.EntityID) int {
		if sprite, ok := ecs.GetComponent[*components.SpriteComponent](em, id); ok {
			return sprite.Depth
		}
		return 0
	}

	sorted := append([]ecs.EntityID(nil), ids...)
	sort.SliceStable(sorted, func(i, j int) bool {
		di, dj := depth(sorted[i]), depth(sorted[j])
		if di != dj {
			return di < dj
		}
		return sorted[i] < sorted[j]
	})
	return sorted
}
