package scenes

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/decker502/balloonpump/pkg/components"
	"github.com/decker502/balloonpump/pkg/ecs"
	"github.com/decker502/balloonpump/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	debugHitColor    = color.RGBA{R: 255, G: 255, B: 0, A: 200}
	debugBodyColor   = color.RGBA{R: 0, G: 255, B: 255, A: 160}
	debugHandleColor = color.RGBA{R: 255, G: 0, B: 255, A: 200}
)

// drawDebug 绘制点击区域、刚体和控制器状态（F3 切换）
func (s *BalloonScene) drawDebug(screen *ebiten.Image) {
	em := s.entityManager

	for _, id := range ecs.GetEntitiesWith2[*components.ClickableComponent, *components.PositionComponent](em) {
		clickable, _ := ecs.GetComponent[*components.ClickableComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		sx, sy := 1.0, 1.0
		if scale, ok := ecs.GetComponent[*components.ScaleComponent](em, id); ok {
			sx, sy = scale.ScaleX, scale.ScaleY
		}

		switch clickable.Shape {
		case components.HitCircle:
			vector.StrokeCircle(screen, float32(pos.X), float32(pos.Y), float32(clickable.Radius*sx), 1, debugHitColor, true)
		default:
			w, h := clickable.Width*sx, clickable.Height*sy
			vector.StrokeRect(screen, float32(pos.X-w/2), float32(pos.Y-h/2), float32(w), float32(h), 1, debugHandleColor, true)
		}
	}

	for _, id := range ecs.GetEntitiesWith2[*components.PhysicsBodyComponent, *components.PositionComponent](em) {
		body, _ := ecs.GetComponent[*components.PhysicsBodyComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		r := body.Radius
		if scale, ok := ecs.GetComponent[*components.ScaleComponent](em, id); ok {
			r *= max(scale.ScaleX, scale.ScaleY)
		}
		vector.StrokeCircle(screen, float32(pos.X), float32(pos.Y), float32(r), 2, debugBodyColor, true)
	}

	// 字体加载失败时退回到内置调试字体
	if s.debugFace == nil {
		ebitenutil.DebugPrintAt(screen, s.debugText(), 10, 10)
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(10, 10)
	op.ColorScale.ScaleWithColor(color.White)
	op.LineSpacing = s.debugFace.Size * 1.4
	text.Draw(screen, s.debugText(), s.debugFace, op)
}

// debugText 控制器状态摘要
func (s *BalloonScene) debugText() string {
	counts := make(map[components.BalloonState]int)
	for _, id := range s.controller.ActiveBalloons() {
		if state, ok := s.controller.State(id); ok {
			counts[state]++
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "pump: %d/%d\n", s.controller.PumpCount(), s.cfg.ReleaseThreshold)
	fmt.Fprintf(&b, "balloons: %d (inflating %d, released %d, bursting %d)\n",
		len(s.controller.ActiveBalloons()),
		counts[components.BalloonInflating],
		counts[components.BalloonReleased],
		counts[components.BalloonBursting])
	fmt.Fprintf(&b, "spawned: %d  burst: %d\n", s.controller.SpawnedCount(), s.controller.BurstCount())
	px, py := utils.GetPointerPosition()
	fmt.Fprintf(&b, "pointer: (%d, %d)\n", px, py)
	fmt.Fprintf(&b, "entities: %d  TPS: %.0f", s.entityManager.EntityCount(), ebiten.ActualTPS())
	return b.String()
}
