package components

// BalloonState 气球生命周期状态
//
// 状态转换：
//
//	Inflating -> Released  （打气次数达到阈值）
//	Inflating -> Bursting  （充气中被点破）
//	Released  -> Bursting  （飞行中被点破）
//	Bursting  -> Destroyed （爆炸动画结束，终态）
type BalloonState int

const (
	BalloonInflating BalloonState = iota
	BalloonReleased
	BalloonBursting
	BalloonDestroyed
)

// String 返回状态名称
func (s BalloonState) String() string {
	switch s {
	case BalloonInflating:
		return "Inflating"
	case BalloonReleased:
		return "Released"
	case BalloonBursting:
		return "Bursting"
	case BalloonDestroyed:
		return "Destroyed"
	default:
		return "Unknown"
	}
}

// CanBurst 是否可以被点破
func (s BalloonState) CanBurst() bool {
	return s == BalloonInflating || s == BalloonReleased
}

// BalloonComponent 气球数据
type BalloonComponent struct {
	State BalloonState

	// BodyVariant 气球主体图片编号（0 起）
	BodyVariant int
	// LabelVariant 字母标签图片编号（0 起，0 = A）
	LabelVariant int

	// Scale 逻辑缩放（充气步进的目标值）
	// ScaleComponent 是渲染用的当前值，会经由补间动画逐渐追上此值
	Scale float64

	// InflateSteps 已经历的充气次数
	InflateSteps int
}

// PumpHandleComponent 打气筒手柄
// 按压动画播放期间忽略新的点击
type PumpHandleComponent struct {
	IsAnimating bool
	Presses     int // 累计有效按压次数
}
