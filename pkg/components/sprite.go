package components

import "github.com/hajimehoshi/ebiten/v2"

// SpritePart 组合实体中的一个图像部件
// 偏移和缩放都在实体的本地坐标系中（即会再乘以实体的 ScaleComponent）
type SpritePart struct {
	Image *ebiten.Image

	OffsetX float64 // 相对实体原点的X偏移（本地坐标）
	OffsetY float64 // 相对实体原点的Y偏移（本地坐标）

	ScaleX float64
	ScaleY float64

	// AnchorX / AnchorY 图像锚点（0,0 = 左上角，0.5,0.5 = 中心）
	AnchorX float64
	AnchorY float64
}

// NewCenteredPart 创建以中心为锚点的部件
func NewCenteredPart(img *ebiten.Image, offsetX, offsetY, scale float64) SpritePart {
	return SpritePart{
		Image:   img,
		OffsetX: offsetX,
		OffsetY: offsetY,
		ScaleX:  scale,
		ScaleY:  scale,
		AnchorX: 0.5,
		AnchorY: 0.5,
	}
}

// SpriteComponent 存储实体的视觉表现
// 多个部件共享同一个位置和缩放，作为一个刚性整体移动
type SpriteComponent struct {
	Parts   []SpritePart
	Depth   int  // 渲染层级，数值越大越靠前
	Visible bool // 是否绘制
}
