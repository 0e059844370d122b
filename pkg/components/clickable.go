package components

// HitShape 点击区域形状
type HitShape int

const (
	// HitRect 以实体原点为中心的矩形
	HitRect HitShape = iota
	// HitCircle 以实体原点为中心的圆形
	HitCircle
)

// ClickableComponent 标记实体可以被指针（鼠标/触摸）点击
//
// 点击区域定义在实体本地坐标系中，命中测试时乘以实体缩放，
// 与图像的包围盒无关。
type ClickableComponent struct {
	Shape HitShape

	Radius float64 // 圆形区域半径（本地坐标）
	Width  float64 // 矩形区域宽度（本地坐标）
	Height float64 // 矩形区域高度（本地坐标）

	IsEnabled bool // 是否可以被点击(用于禁用正在爆炸的气球)

	// OnPointerDown 指针按下时的回调，在主循环中同步调用
	OnPointerDown func()
}
