package components

// ScaleComponent 存储实体级别的缩放因子
// 作用于 SpriteComponent 的所有部件，使组合实体作为一个整体缩放
//
// 最终缩放 = SpritePart.ScaleX * ScaleComponent.ScaleX
type ScaleComponent struct {
	// ScaleX X轴缩放因子（1.0 = 原始大小，0.5 = 50%，2.0 = 200%）
	ScaleX float64

	// ScaleY Y轴缩放因子（1.0 = 原始大小，0.5 = 50%，2.0 = 200%）
	ScaleY float64
}

// NewUniformScale 创建等比缩放组件
func NewUniformScale(s float64) *ScaleComponent {
	return &ScaleComponent{ScaleX: s, ScaleY: s}
}
