package config

// 布局配置常量
// 本文件定义了场景中的布局参数，所有坐标使用世界坐标（像素，Y轴向下）

// 设计分辨率：背景图片按 世界尺寸/设计分辨率 缩放铺满屏幕
const (
	DesignWidth  = 800.0
	DesignHeight = 600.0
)

// 世界尺寸默认值
// 启动时优先使用显示器尺寸，无法获取时使用此值
const (
	DefaultWorldWidth  = 1366
	DefaultWorldHeight = 768
)

// Pump Rig Configuration (打气筒配置)
const (
	// RigScale 打气筒三个部件的统一缩放
	RigScale = 0.4

	// HandleX / HandleY 手柄位置
	HandleX = 1235.0
	HandleY = 384.0

	// HandlePressY 手柄按下时的Y坐标（往返动画目标）
	HandlePressY = 450.0

	// PumpX / PumpY 筒身位置
	PumpX = 1235.0
	PumpY = 520.0

	// PumpPressScaleY 按压时筒身的Y轴缩放（往返动画目标）
	PumpPressScaleY = 0.35

	// BlowerX / BlowerY 出气口位置
	BlowerX = 1124.0
	BlowerY = 506.0

	// BlowerPressY 按压时出气口的Y坐标（往返动画目标）
	BlowerPressY = 516.0

	// PressDuration 按压动画单程时长（秒）
	PressDuration = 0.25

	// HandleFallbackWidth / HandleFallbackHeight 手柄图片缺失时的点击区域（未缩放）
	HandleFallbackWidth  = 260.0
	HandleFallbackHeight = 320.0
)

// 渲染层级，数值越大越靠前
const (
	DepthBackground = -1
	DepthHandle     = 0
	DepthPump       = 1
	DepthFragments  = 5
)

// BackgroundScale 计算背景铺满世界所需的缩放
func BackgroundScale(worldWidth, worldHeight int) (scaleX, scaleY float64) {
	return float64(worldWidth) / DesignWidth, float64(worldHeight) / DesignHeight
}
