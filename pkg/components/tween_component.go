package components

// TweenProperty 补间动画作用的属性
type TweenProperty int

const (
	TweenX      TweenProperty = iota // PositionComponent.X
	TweenY                           // PositionComponent.Y
	TweenScaleX                      // ScaleComponent.ScaleX
	TweenScaleY                      // ScaleComponent.ScaleY
	TweenScale                       // ScaleComponent.ScaleX 与 ScaleY 同时
)

// String 返回属性名称（用于日志）
func (p TweenProperty) String() string {
	switch p {
	case TweenX:
		return "x"
	case TweenY:
		return "y"
	case TweenScaleX:
		return "scaleX"
	case TweenScaleY:
		return "scaleY"
	case TweenScale:
		return "scale"
	default:
		return "unknown"
	}
}

// Overlaps 判断两个属性是否作用于同一个值
// TweenScale 与 TweenScaleX / TweenScaleY 互相覆盖
func (p TweenProperty) Overlaps(other TweenProperty) bool {
	if p == other {
		return true
	}
	isScale := func(q TweenProperty) bool {
		return q == TweenScale || q == TweenScaleX || q == TweenScaleY
	}
	return (p == TweenScale && isScale(other)) || (other == TweenScale && isScale(p))
}

// EaseFunc 缓动函数，输入输出都在 [0, 1]
type EaseFunc func(t float64) float64

// Tween 单个补间动画
//
// 工作流程：
//  1. TweenSystem.Add 添加到实体，替换同一属性上正在运行的补间
//  2. 第一次更新时记录起始值 From，并调用 OnStart
//  3. 每帧根据 Elapsed/Duration 和缓动函数计算属性值
//  4. Yoyo 为 true 时到达目标后原路返回，总时长为 2*Duration
//  5. 结束时调用一次 OnComplete，然后从组件中移除
type Tween struct {
	Property TweenProperty
	To       float64
	Duration float64 // 单程时长（秒）
	Ease     EaseFunc
	Yoyo     bool

	OnStart    func()
	OnComplete func()

	From     float64 // 起始值（开始时自动记录）
	Elapsed  float64 // 已播放时间（秒）
	Started  bool
	Finished bool
}

// TotalDuration 返回补间的总时长（含往返）
func (t *Tween) TotalDuration() float64 {
	if t.Yoyo {
		return t.Duration * 2
	}
	return t.Duration
}

// Progress 返回当前插值进度（0 = 起始值，1 = 目标值），已应用缓动
func (t *Tween) Progress() float64 {
	if t.Duration <= 0 {
		if t.Yoyo {
			return 0
		}
		return 1
	}

	p := t.Elapsed / t.Duration
	if t.Yoyo {
		if p > 2 {
			p = 2
		}
		if p > 1 {
			p = 2 - p
		}
	} else if p > 1 {
		p = 1
	}
	if p < 0 {
		p = 0
	}

	if t.Ease != nil {
		return t.Ease(p)
	}
	return p
}

// Value 返回当前属性值
func (t *Tween) Value() float64 {
	return t.From + (t.To-t.From)*t.Progress()
}

// TweenComponent 实体上正在运行的补间动画列表
type TweenComponent struct {
	Tweens []*Tween
}
