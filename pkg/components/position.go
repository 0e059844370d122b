package components

// PositionComponent 存储实体的世界坐标（像素）
// 对组合实体而言，这是所有部件共同的原点
type PositionComponent struct {
	X float64
	Y float64
}
