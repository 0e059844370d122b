package systems

import (
	"log"

	"github.com/decker502/balloonpump/pkg/components"
	"github.com/decker502/balloonpump/pkg/config"
	"github.com/decker502/balloonpump/pkg/ecs"
	"github.com/decker502/balloonpump/pkg/entities"
	"github.com/decker502/balloonpump/pkg/utils"
)

// PumpRig 打气筒交互
// 点击手柄时播放按压动画（手柄下压、筒身压扁、出气口下沉，往返一次），
// 动画开始时通知打气回调。动画进行中的点击被忽略。
type PumpRig struct {
	em       *ecs.EntityManager
	tweens   *TweenSystem
	entities *entities.PumpRigEntities
	onPump   func()
}

// NewPumpRig 创建打气筒交互，并把手柄的点击回调指向 Press
//
// 参数：
//   - rig: 打气筒部件实体
//   - onPump: 每次有效按压时调用（通常为 BalloonLifecycleController.OnPumpTriggered）
func NewPumpRig(em *ecs.EntityManager, tweens *TweenSystem, rig *entities.PumpRigEntities, onPump func()) *PumpRig {
	p := &PumpRig{
		em:       em,
		tweens:   tweens,
		entities: rig,
		onPump:   onPump,
	}
	if clickable, ok := ecs.GetComponent[*components.ClickableComponent](em, rig.Handle); ok {
		clickable.OnPointerDown = func() {
			p.Press()
		}
	}
	return p
}

// Press 按下手柄
//
// 返回：
//   - bool: 动画进行中时返回 false（本次按压被忽略）
func (p *PumpRig) Press() bool {
	handle, ok := ecs.GetComponent[*components.PumpHandleComponent](p.em, p.entities.Handle)
	if !ok || handle.IsAnimating {
		return false
	}
	handle.IsAnimating = true
	handle.Presses++

	p.tweens.Add(p.entities.Handle, &components.Tween{
		Property: components.TweenY,
		To:       config.HandlePressY,
		Duration: config.PressDuration,
		Ease:     utils.EaseInOutSine,
		Yoyo:     true,
		OnStart: func() {
			if p.onPump != nil {
				p.onPump()
			}
		},
		OnComplete: func() {
			handle.IsAnimating = false
		},
	})
	p.tweens.Add(p.entities.Pump, &components.Tween{
		Property: components.TweenScaleY,
		To:       config.PumpPressScaleY,
		Duration: config.PressDuration,
		Ease:     utils.EaseInOutSine,
		Yoyo:     true,
	})
	p.tweens.Add(p.entities.Blower, &components.Tween{
		Property: components.TweenY,
		To:       config.BlowerPressY,
		Duration: config.PressDuration,
		Ease:     utils.EaseInOutSine,
		Yoyo:     true,
	})

	log.Printf("[PumpRig] 按压手柄 #%d", handle.Presses)
	return true
}

// IsAnimating 手柄是否正在播放按压动画
func (p *PumpRig) IsAnimating() bool {
	handle, ok := ecs.GetComponent[*components.PumpHandleComponent](p.em, p.entities.Handle)
	return ok && handle.IsAnimating
}

// Presses 返回有效按压次数
func (p *PumpRig) Presses() int {
	handle, ok := ecs.GetComponent[*components.PumpHandleComponent](p.em, p.entities.Handle)
	if !ok {
		return 0
	}
	return handle.Presses
}
