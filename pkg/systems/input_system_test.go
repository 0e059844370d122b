package systems

import (
	"testing"

	"github.com/decker502/balloonpump/pkg/components"
	"github.com/decker502/balloonpump/pkg/ecs"
)

func newClickable(em *ecs.EntityManager, x, y float64, depth int, clickable *components.ClickableComponent) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.SpriteComponent{Depth: depth, Visible: true})
	em.AddComponent(id, clickable)
	return id
}

func TestInputSystem_HitShapes(t *testing.T) {
	em := ecs.NewEntityManager()
	is := NewInputSystemWithSource(em, nil)

	circle := newClickable(em, 100, 100, 0, &components.ClickableComponent{Shape: components.HitCircle, Radius: 20, IsEnabled: true})
	rect := newClickable(em, 300, 100, 0, &components.ClickableComponent{Shape: components.HitRect, Width: 40, Height: 80, IsEnabled: true})

	tests := []struct {
		name   string
		x, y   float64
		wantID ecs.EntityID
		wantOK bool
	}{
		{name: "circle center", x: 100, y: 100, wantID: circle, wantOK: true},
		{name: "circle edge", x: 120, y: 100, wantID: circle, wantOK: true},
		{name: "circle corner miss", x: 117, y: 117, wantOK: false},
		{name: "rect inside", x: 315, y: 135, wantID: rect, wantOK: true},
		{name: "rect outside", x: 325, y: 100, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := is.HitTest(tt.x, tt.y)
			if ok != tt.wantOK || (ok && id != tt.wantID) {
				t.Errorf("HitTest(%.0f, %.0f) = (%d, %v), want (%d, %v)", tt.x, tt.y, id, ok, tt.wantID, tt.wantOK)
			}
		})
	}
}

func TestInputSystem_ScaleAffectsHitArea(t *testing.T) {
	em := ecs.NewEntityManager()
	is := NewInputSystemWithSource(em, nil)

	id := newClickable(em, 0, 0, 0, &components.ClickableComponent{Shape: components.HitCircle, Radius: 100, IsEnabled: true})
	em.AddComponent(id, components.NewUniformScale(0.25))

	if _, ok := is.HitTest(20, 0); !ok {
		t.Error("point inside scaled radius (25) should hit")
	}
	if _, ok := is.HitTest(30, 0); ok {
		t.Error("point outside scaled radius (25) should miss")
	}
}

func TestInputSystem_TopMostWins(t *testing.T) {
	em := ecs.NewEntityManager()
	is := NewInputSystemWithSource(em, nil)

	var calls []string
	newClickable(em, 100, 100, 3, &components.ClickableComponent{
		Shape: components.HitCircle, Radius: 50, IsEnabled: true,
		OnPointerDown: func() { calls = append(calls, "top") },
	})
	newClickable(em, 100, 100, 0, &components.ClickableComponent{
		Shape: components.HitCircle, Radius: 50, IsEnabled: true,
		OnPointerDown: func() { calls = append(calls, "bottom") },
	})

	is.HandlePointerDown(100, 100)

	if len(calls) != 1 || calls[0] != "top" {
		t.Errorf("expected only the top-most entity to receive the event, got %v", calls)
	}
}

func TestInputSystem_SkipsDisabledAndDestroyed(t *testing.T) {
	em := ecs.NewEntityManager()
	is := NewInputSystemWithSource(em, nil)

	below := newClickable(em, 0, 0, 0, &components.ClickableComponent{Shape: components.HitCircle, Radius: 10, IsEnabled: true})
	newClickable(em, 0, 0, 2, &components.ClickableComponent{Shape: components.HitCircle, Radius: 10, IsEnabled: false})
	marked := newClickable(em, 0, 0, 4, &components.ClickableComponent{Shape: components.HitCircle, Radius: 10, IsEnabled: true})
	em.DestroyEntity(marked)

	id, ok := is.HitTest(0, 0)
	if !ok || id != below {
		t.Errorf("expected hit to fall through to entity %d, got %d (ok=%v)", below, id, ok)
	}
}

func TestInputSystem_UpdateUsesPointerSource(t *testing.T) {
	em := ecs.NewEntityManager()

	pressed := false
	clicks := 0
	is := NewInputSystemWithSource(em, func() (bool, int, int) { return pressed, 50, 50 })
	newClickable(em, 50, 50, 0, &components.ClickableComponent{
		Shape: components.HitCircle, Radius: 5, IsEnabled: true,
		OnPointerDown: func() { clicks++ },
	})

	is.Update(testFrame)
	if clicks != 0 {
		t.Fatalf("no press: expected 0 clicks, got %d", clicks)
	}

	pressed = true
	is.Update(testFrame)
	if clicks != 1 {
		t.Errorf("press: expected 1 click, got %d", clicks)
	}
}
