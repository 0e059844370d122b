package systems

import (
	"testing"

	"github.com/decker502/balloonpump/pkg/components"
	"github.com/decker502/balloonpump/pkg/ecs"
)

func newPhysicsTestEntity(em *ecs.EntityManager, x, y, vx, vy float64, body *components.PhysicsBodyComponent) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.VelocityComponent{VX: vx, VY: vy})
	if body != nil {
		em.AddComponent(id, body)
	}
	return id
}

func TestPhysicsSystem_Integrates(t *testing.T) {
	em := ecs.NewEntityManager()
	ps := NewPhysicsSystem(em, 800, 600)
	id := newPhysicsTestEntity(em, 100, 100, 50, -20, nil)

	ps.Update(0.5)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X != 125 || pos.Y != 90 {
		t.Errorf("expected (125, 90), got (%.1f, %.1f)", pos.X, pos.Y)
	}
}

func TestPhysicsSystem_NoGravity(t *testing.T) {
	em := ecs.NewEntityManager()
	ps := NewPhysicsSystem(em, 800, 600)
	id := newPhysicsTestEntity(em, 400, 300, 0, 0, &components.PhysicsBodyComponent{Radius: 10, Bounce: 1, CollideWorldBounds: true})

	for i := 0; i < 120; i++ {
		ps.Update(testFrame)
	}

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X != 400 || pos.Y != 300 {
		t.Errorf("resting body should not move, got (%.1f, %.1f)", pos.X, pos.Y)
	}
}

func TestPhysicsSystem_WorldBounds(t *testing.T) {
	tests := []struct {
		name           string
		x, y, vx, vy   float64
		bounce         float64
		wantX, wantY   float64
		wantVX, wantVY float64
	}{
		{name: "left wall elastic", x: 15, y: 300, vx: -100, bounce: 1, wantX: 10, wantY: 300, wantVX: 100},
		{name: "right wall damped", x: 785, y: 300, vx: 100, bounce: 0.8, wantX: 790, wantY: 300, wantVX: -80},
		{name: "ceiling", x: 400, y: 15, vy: -100, bounce: 1, wantX: 400, wantY: 10, wantVY: 100},
		{name: "floor damped", x: 400, y: 585, vy: 100, bounce: 0.5, wantX: 400, wantY: 590, wantVY: -50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			ps := NewPhysicsSystem(em, 800, 600)
			id := newPhysicsTestEntity(em, tt.x, tt.y, tt.vx, tt.vy,
				&components.PhysicsBodyComponent{Radius: 10, Bounce: tt.bounce, CollideWorldBounds: true})

			ps.Update(0.1)

			pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
			vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
			if !almostEqual(pos.X, tt.wantX) || !almostEqual(pos.Y, tt.wantY) {
				t.Errorf("position = (%.2f, %.2f), want (%.2f, %.2f)", pos.X, pos.Y, tt.wantX, tt.wantY)
			}
			if !almostEqual(vel.VX, tt.wantVX) || !almostEqual(vel.VY, tt.wantVY) {
				t.Errorf("velocity = (%.2f, %.2f), want (%.2f, %.2f)", vel.VX, vel.VY, tt.wantVX, tt.wantVY)
			}
		})
	}
}

func TestPhysicsSystem_RadiusFollowsScale(t *testing.T) {
	em := ecs.NewEntityManager()
	ps := NewPhysicsSystem(em, 800, 600)
	id := newPhysicsTestEntity(em, 30, 300, 0, 0, &components.PhysicsBodyComponent{Radius: 100, Bounce: 1, CollideWorldBounds: true})
	em.AddComponent(id, components.NewUniformScale(0.5))

	ps.Update(testFrame)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X != 50 {
		t.Errorf("expected body pushed to X=50 (radius 100 * scale 0.5), got %.2f", pos.X)
	}
}

func TestPhysicsSystem_CollisionDisabled(t *testing.T) {
	em := ecs.NewEntityManager()
	ps := NewPhysicsSystem(em, 800, 600)
	id := newPhysicsTestEntity(em, 5, 300, -100, 0, &components.PhysicsBodyComponent{Radius: 10, Bounce: 1})

	ps.Update(0.1)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X != -5 {
		t.Errorf("body without world-bounds collision should pass through, got X=%.2f", pos.X)
	}
}

func TestPhysicsSystem_SetWorldBounds(t *testing.T) {
	ps := NewPhysicsSystem(ecs.NewEntityManager(), 800, 600)
	ps.SetWorldBounds(1366, 768)
	if w, h := ps.WorldBounds(); w != 1366 || h != 768 {
		t.Errorf("expected bounds 1366x768, got %.0fx%.0f", w, h)
	}
}
