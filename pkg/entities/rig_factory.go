package entities

import (
	"fmt"

	"github.com/decker502/balloonpump/pkg/components"
	"github.com/decker502/balloonpump/pkg/config"
	"github.com/decker502/balloonpump/pkg/ecs"
)

// PumpRigEntities 打气筒的三个部件实体
type PumpRigEntities struct {
	Handle ecs.EntityID
	Pump   ecs.EntityID
	Blower ecs.EntityID
}

// NewBackgroundEntity 创建铺满世界的背景实体（左上角锚点）
func NewBackgroundEntity(em *ecs.EntityManager, images ImageSource, worldWidth, worldHeight int) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	sx, sy := config.BackgroundScale(worldWidth, worldHeight)
	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: 0, Y: 0})
	em.AddComponent(id, &components.ScaleComponent{ScaleX: sx, ScaleY: sy})
	em.AddComponent(id, &components.SpriteComponent{
		Parts: []components.SpritePart{{
			Image:  imageOf(images, ImageBackground),
			ScaleX: 1,
			ScaleY: 1,
		}},
		Depth:   config.DepthBackground,
		Visible: true,
	})
	return id, nil
}

// NewPumpRigEntities 创建打气筒：手柄（可点击）、筒身、出气口
//
// 手柄的点击区域取手柄图片尺寸；图片缺失时使用默认尺寸。
// 点击回调由调用方设置（通常指向 PumpRig.Press）。
func NewPumpRigEntities(em *ecs.EntityManager, images ImageSource) (*PumpRigEntities, error) {
	if em == nil {
		return nil, fmt.Errorf("entity manager cannot be nil")
	}

	newPart := func(imageID string, x, y float64, depth int) ecs.EntityID {
		id := em.CreateEntity()
		em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
		em.AddComponent(id, components.NewUniformScale(config.RigScale))
		em.AddComponent(id, &components.SpriteComponent{
			Parts:   []components.SpritePart{components.NewCenteredPart(imageOf(images, imageID), 0, 0, 1)},
			Depth:   depth,
			Visible: true,
		})
		return id
	}

	rig := &PumpRigEntities{
		Handle: newPart(ImageHandle, config.HandleX, config.HandleY, config.DepthHandle),
		Pump:   newPart(ImagePump, config.PumpX, config.PumpY, config.DepthPump),
		Blower: newPart(ImageBlower, config.BlowerX, config.BlowerY, config.DepthPump),
	}

	width, height := config.HandleFallbackWidth, config.HandleFallbackHeight
	if img := imageOf(images, ImageHandle); img != nil {
		b := img.Bounds()
		width, height = float64(b.Dx()), float64(b.Dy())
	}
	em.AddComponent(rig.Handle, &components.ClickableComponent{
		Shape:     components.HitRect,
		Width:     width,
		Height:    height,
		IsEnabled: true,
	})
	em.AddComponent(rig.Handle, &components.PumpHandleComponent{})

	return rig, nil
}
