package entities

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// mapImageSource 用 map 模拟已加载的图片
type mapImageSource map[string]*ebiten.Image

func (m mapImageSource) GetImageByID(resourceID string) *ebiten.Image {
	return m[resourceID]
}

// newMapImageSource 为给定ID各创建一张 w×h 的图片
func newMapImageSource(w, h int, ids ...string) mapImageSource {
	m := make(mapImageSource, len(ids))
	for _, id := range ids {
		m[id] = ebiten.NewImage(w, h)
	}
	return m
}
