package components

// PhysicsBodyComponent 物理刚体参数
// 世界无重力；刚体以圆形近似，半径随实体缩放变化
type PhysicsBodyComponent struct {
	// Radius 刚体半径（本地坐标，乘以 ScaleComponent 得到世界半径）
	Radius float64

	// Bounce 碰撞世界边界时的反弹系数（0 = 不反弹，1 = 完全弹性）
	Bounce float64

	// CollideWorldBounds 是否与世界边界碰撞
	CollideWorldBounds bool
}
