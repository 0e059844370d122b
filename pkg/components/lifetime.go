package components

// LifetimeComponent 管理实体的生命周期
// 用于自动清理存在时间超过上限的实体(如气球爆炸碎片)
type LifetimeComponent struct {
	MaxLifetime     float64 // 最大生命周期(秒)
	CurrentLifetime float64 // 当前已存在时间(秒)
	IsExpired       bool    // 是否已过期

	ShrinkOut bool    // 是否随剩余寿命等比缩小
	BaseScale float64 // 缩小的基准缩放（首次更新时记录）
}
