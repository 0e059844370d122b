package config

import (
	"fmt"
	"os"

	"github.com/decker502/balloonpump/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// BalloonConfigPath 气球玩法配置文件路径
const BalloonConfigPath = "data/balloon.yaml"

// BalloonConfig 气球玩法配置
//
// 包含打气阈值、缩放曲线、随机速度范围、反弹系数、部件偏移和动画时长。
// 充气阶段与放飞阶段的反弹系数分别配置（阻尼反弹 vs 完全弹性）。
//
// 配置文件位置: data/balloon.yaml
type BalloonConfig struct {
	// ReleaseThreshold 打气次数达到此值时放飞所有充气中的气球
	ReleaseThreshold int `yaml:"releaseThreshold"`

	Spawn     SpawnConfig     `yaml:"spawn"`
	Scale     ScaleConfig     `yaml:"scale"`
	Jitter    VelocityRange   `yaml:"inflateJitter"`
	Launch    VelocityRange   `yaml:"launch"`
	Bounce    BounceConfig    `yaml:"bounce"`
	Parts     PartsConfig     `yaml:"parts"`
	Timing    TimingConfig    `yaml:"timing"`
	Audio     AudioConfig     `yaml:"audio"`
	Fragments FragmentsConfig `yaml:"fragments"`
}

// SpawnConfig 气球出生配置
type SpawnConfig struct {
	AnchorX       float64 `yaml:"anchorX"`       // 出生点X（世界坐标）
	AnchorY       float64 `yaml:"anchorY"`       // 出生点Y（世界坐标）
	HitRadius     float64 `yaml:"hitRadius"`     // 圆形点击区域半径（未缩放的本地坐标）
	BodyVariants  int     `yaml:"bodyVariants"`  // 气球主体图片种类数
	LabelVariants int     `yaml:"labelVariants"` // 字母标签图片种类数
	Depth         int     `yaml:"depth"`         // 渲染层级
}

// ScaleConfig 气球缩放配置
type ScaleConfig struct {
	Spawn   float64 `yaml:"spawn"`
	Initial float64 `yaml:"initial"`
	Step    float64 `yaml:"step"`
	Max     float64 `yaml:"max"`
	Burst   float64 `yaml:"burst"`
}

// IntRange 整数闭区间 [Min, Max]
type IntRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// VelocityRange 二维随机速度范围
type VelocityRange struct {
	X IntRange `yaml:"x"`
	Y IntRange `yaml:"y"`
}

// BounceConfig 反弹系数
type BounceConfig struct {
	Inflating float64 `yaml:"inflating"`
	Released  float64 `yaml:"released"`
}

// PartConfig 单个部件相对于组合实体原点的偏移和缩放
type PartConfig struct {
	OffsetX float64 `yaml:"offsetX"`
	OffsetY float64 `yaml:"offsetY"`
	Scale   float64 `yaml:"scale"`
}

// PartsConfig 气球的三个部件
type PartsConfig struct {
	Body   PartConfig `yaml:"body"`
	Label  PartConfig `yaml:"label"`
	Thread PartConfig `yaml:"thread"`
}

// TimingConfig 动画时长（秒）
type TimingConfig struct {
	Entrance float64 `yaml:"entrance"`
	Inflate  float64 `yaml:"inflate"`
	Burst    float64 `yaml:"burst"`
	// BurstEase 爆炸动画缓动名称（如 "Sine.easeInOut"），无法识别时使用默认曲线
	BurstEase string `yaml:"burstEase"`
}

// AudioConfig 音频资源ID
type AudioConfig struct {
	Music       string  `yaml:"music"`
	MusicVolume float64 `yaml:"musicVolume"`
	Burst       string  `yaml:"burst"`
}

// FragmentsConfig 爆炸碎片配置
type FragmentsConfig struct {
	Count    int     `yaml:"count"`
	Speed    float64 `yaml:"speed"`
	Lifetime float64 `yaml:"lifetime"`
}

// DefaultBalloonConfig 返回默认配置（与 data/balloon.yaml 一致）
func DefaultBalloonConfig() *BalloonConfig {
	return &BalloonConfig{
		ReleaseThreshold: 3,
		Spawn: SpawnConfig{
			AnchorX:       1074,
			AnchorY:       433,
			HitRadius:     100,
			BodyVariants:  10,
			LabelVariants: 26,
			Depth:         3,
		},
		Scale: ScaleConfig{
			Spawn:   0.1,
			Initial: 0.2,
			Step:    0.05,
			Max:     0.5,
			Burst:   0.8,
		},
		Jitter: VelocityRange{
			X: IntRange{Min: -40, Max: 2},
			Y: IntRange{Min: -1, Max: 1},
		},
		Launch: VelocityRange{
			X: IntRange{Min: -50, Max: 50},
			Y: IntRange{Min: -150, Max: -75},
		},
		Bounce: BounceConfig{
			Inflating: 0.8,
			Released:  1.0,
		},
		Parts: PartsConfig{
			Body:   PartConfig{OffsetX: 0, OffsetY: 0, Scale: 0.5},
			Label:  PartConfig{OffsetX: 0, OffsetY: -6, Scale: 0.3},
			Thread: PartConfig{OffsetX: 6, OffsetY: 146, Scale: 0.5},
		},
		Timing: TimingConfig{
			Entrance:  0.25,
			Inflate:   0.25,
			Burst:     0.15,
			BurstEase: "Sine.easeInOut",
		},
		Audio: AudioConfig{
			Music:       "SOUND_BGMUSIC",
			MusicVolume: 0.5,
			Burst:       "SOUND_BURST",
		},
		Fragments: FragmentsConfig{
			Count:    8,
			Speed:    160,
			Lifetime: 0.35,
		},
	}
}

// LoadBalloonConfig 加载气球玩法配置
//
// 优先从嵌入资源读取，embedded 未初始化时（测试、工具）回退到文件系统。
//
// 参数:
//   - path: 配置文件路径（如 "data/balloon.yaml"）
//
// 返回:
//   - *BalloonConfig: 加载成功后的配置结构
//   - error: 读取、解析或验证失败时返回错误
func LoadBalloonConfig(path string) (*BalloonConfig, error) {
	var data []byte
	var err error
	if embedded.IsInitialized() {
		data, err = embedded.ReadFile(path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read balloon config: %w", err)
	}
	return ParseBalloonConfig(data)
}

// ParseBalloonConfig 从 YAML 数据解析配置
// 文件中未出现的字段保留默认值
func ParseBalloonConfig(data []byte) (*BalloonConfig, error) {
	cfg := DefaultBalloonConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse balloon config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid balloon config: %w", err)
	}

	return cfg, nil
}

// Validate 验证配置有效性
func (c *BalloonConfig) Validate() error {
	if c.ReleaseThreshold < 1 {
		return fmt.Errorf("releaseThreshold must be >= 1, got %d", c.ReleaseThreshold)
	}

	if c.Spawn.BodyVariants < 1 || c.Spawn.LabelVariants < 1 {
		return fmt.Errorf("variant counts must be positive: body=%d label=%d",
			c.Spawn.BodyVariants, c.Spawn.LabelVariants)
	}
	if c.Spawn.HitRadius <= 0 {
		return fmt.Errorf("hitRadius must be positive, got %.2f", c.Spawn.HitRadius)
	}

	s := c.Scale
	if s.Spawn <= 0 || s.Spawn > s.Initial || s.Initial > s.Max {
		return fmt.Errorf("scale must satisfy 0 < spawn(%.2f) <= initial(%.2f) <= max(%.2f)",
			s.Spawn, s.Initial, s.Max)
	}
	if s.Step <= 0 {
		return fmt.Errorf("scale step must be positive, got %.2f", s.Step)
	}
	if s.Burst <= 0 {
		return fmt.Errorf("burst scale must be positive, got %.2f", s.Burst)
	}

	ranges := map[string]IntRange{
		"inflateJitter.x": c.Jitter.X,
		"inflateJitter.y": c.Jitter.Y,
		"launch.x":        c.Launch.X,
		"launch.y":        c.Launch.Y,
	}
	for name, r := range ranges {
		if r.Min > r.Max {
			return fmt.Errorf("%s range invalid: min(%d) > max(%d)", name, r.Min, r.Max)
		}
	}

	if c.Bounce.Inflating < 0 || c.Bounce.Inflating > 1 || c.Bounce.Released < 0 || c.Bounce.Released > 1 {
		return fmt.Errorf("bounce must be within [0, 1]: inflating=%.2f released=%.2f",
			c.Bounce.Inflating, c.Bounce.Released)
	}

	if c.Timing.Entrance <= 0 || c.Timing.Inflate <= 0 || c.Timing.Burst <= 0 {
		return fmt.Errorf("animation durations must be positive")
	}

	f := c.Fragments
	if f.Count < 0 {
		return fmt.Errorf("fragments count must be >= 0, got %d", f.Count)
	}
	if f.Speed < 0 || f.Lifetime <= 0 {
		return fmt.Errorf("fragments need speed >= 0 and lifetime > 0: speed=%.2f lifetime=%.2f",
			f.Speed, f.Lifetime)
	}

	return nil
}
