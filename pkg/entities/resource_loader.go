package entities

import (
	"fmt"

	"github.com/decker502/balloonpump/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// ImageSource 按资源ID获取已加载的图片
// game.ResourceManager 实现此接口；测试中可用 map 模拟
// 返回 nil 表示图片未加载，实体仍会创建但该部件不绘制
type ImageSource interface {
	GetImageByID(resourceID string) *ebiten.Image
}

// 资源ID
const (
	ImageBackground = "IMAGE_BACKGROUND"
	ImagePump       = "IMAGE_PUMP"
	ImageHandle     = "IMAGE_HANDLE"
	ImageBlower     = "IMAGE_BLOWER"
	ImageThread     = "IMAGE_THREAD"
)

// BalloonImageID 返回气球主体图片ID（variant 从 0 开始）
func BalloonImageID(variant int) string {
	return fmt.Sprintf("IMAGE_BALLOON_%d", 100001+variant)
}

// LabelImageID 返回字母标签图片ID（variant 0 = A）
func LabelImageID(variant int) string {
	return fmt.Sprintf("IMAGE_ALPHABET_%d", 10001+variant)
}

// LabelLetter 返回标签对应的字母
func LabelLetter(variant int) string {
	if variant < 0 || variant >= 26 {
		return "?"
	}
	return string(rune('A' + variant))
}

func imageOf(images ImageSource, id string) *ebiten.Image {
	if images == nil {
		return nil
	}
	return images.GetImageByID(id)
}

// RequiredResourceIDs 返回场景用到的全部资源ID：固定部件、所有气球主体和字母标签、音频
func RequiredResourceIDs(cfg *config.BalloonConfig) []string {
	ids := []string{ImageBackground, ImagePump, ImageHandle, ImageBlower, ImageThread}
	for v := 0; v < cfg.Spawn.BodyVariants; v++ {
		ids = append(ids, BalloonImageID(v))
	}
	for v := 0; v < cfg.Spawn.LabelVariants; v++ {
		ids = append(ids, LabelImageID(v))
	}
	return append(ids, cfg.Audio.Music, cfg.Audio.Burst)
}
