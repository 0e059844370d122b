package utils

import (
	"math"
	"strings"

	"github.com/decker502/balloonpump/pkg/components"
)

// Easing Functions (缓动函数)
//
// 缓动函数用于控制动画的速度曲线，使动画看起来更自然。
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
//
// 参考：https://easings.net/

// EaseLinear 线性缓动（无缓动）
func EaseLinear(t float64) float64 {
	return t
}

// EaseInOutSine 正弦缓入缓出
// 打气筒按压、气球充气都使用此曲线
// 公式：f(t) = -(cos(πt) - 1) / 2
func EaseInOutSine(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}

// EaseOutCubic 三次方缓出
// 特点：开始快，结束慢
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseOutBack 回弹缓出，略微越过终点再回落
// 用于气球入场的"鼓起"效果
func EaseOutBack(t float64) float64 {
	const c1 = 1.70158
	const c3 = c1 + 1
	return 1 + c3*math.Pow(t-1, 3) + c1*math.Pow(t-1, 2)
}

// DefaultEase 未知缓动名称时使用的默认曲线
var DefaultEase components.EaseFunc = EaseInOutSine

var easeByName = map[string]components.EaseFunc{
	"linear":         EaseLinear,
	"sine.easeinout": EaseInOutSine,
	"cubic.easeout":  EaseOutCubic,
	"back.easeout":   EaseOutBack,
}

// EaseByName 按名称查找缓动函数（不区分大小写，如 "Sine.easeInOut"）
// 名称无法识别时返回 DefaultEase
func EaseByName(name string) components.EaseFunc {
	if fn, ok := easeByName[strings.ToLower(name)]; ok {
		return fn
	}
	return DefaultEase
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
