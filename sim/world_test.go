package sim

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func newTestWorld() *World {
	return NewWorld(mgl64.Vec2{0, 9.81})
}

func TestWorldAddBody(t *testing.T) {
	w := newTestWorld()

	b, err := w.AddBody(BodyDesc{
		Name:     "ball",
		Shape:    Ball(0.5),
		Position: Translation(1, -2),
	})
	if err != nil {
		t.Fatalf("AddBody: %v", err)
	}

	if b.Handle().IsZero() {
		t.Error("body handle is zero")
	}
	if b.Name() != "ball" {
		t.Errorf("Name = %q, want ball", b.Name())
	}
	if b.Margin() != DefaultMargin {
		t.Errorf("Margin = %g, want %g", b.Margin(), DefaultMargin)
	}
	if !b.CanMove() {
		t.Error("dynamic body reports CanMove false")
	}
	if !b.IsActive() {
		t.Error("fresh body reports inactive")
	}
	p := b.Position()
	if !near(p.X, 1) || !near(p.Y, -2) {
		t.Errorf("Position = %+v, want (1, -2)", p)
	}

	got, ok := w.Body(b.Handle())
	if !ok || got != b {
		t.Error("Body(handle) did not resolve to the created body")
	}
}

func TestWorldMarginOverride(t *testing.T) {
	w := newTestWorld()
	none, err := w.AddBody(BodyDesc{Shape: Ball(1), Margin: -1})
	if err != nil {
		t.Fatal(err)
	}
	if none.Margin() != 0 {
		t.Errorf("negative margin gave %g, want 0", none.Margin())
	}
	custom, err := w.AddBody(BodyDesc{Shape: Ball(1), Margin: 0.1})
	if err != nil {
		t.Fatal(err)
	}
	if custom.Margin() != 0.1 {
		t.Errorf("Margin = %g, want 0.1", custom.Margin())
	}
}

func TestWorldRejectsDynamicPlane(t *testing.T) {
	w := newTestWorld()
	_, err := w.AddBody(BodyDesc{Shape: Plane(0, -1)})
	if !errors.Is(err, ErrStaticOnly) {
		t.Fatalf("AddBody(dynamic plane) error = %v, want ErrStaticOnly", err)
	}
	if w.Len() != 0 {
		t.Errorf("failed add left %d bodies", w.Len())
	}
}

func TestWorldRejectsInvalidShape(t *testing.T) {
	w := newTestWorld()
	_, err := w.AddBody(BodyDesc{Shape: Ball(0)})
	if !errors.Is(err, ErrInvalidShape) {
		t.Fatalf("error = %v, want ErrInvalidShape", err)
	}
}

func TestWorldBodiesOrderAndRemove(t *testing.T) {
	w := newTestWorld()
	var handles []Handle
	for i := 0; i < 3; i++ {
		b, err := w.AddBody(BodyDesc{Shape: Ball(0.5), Position: Translation(float64(i)*3, 0)})
		if err != nil {
			t.Fatal(err)
		}
		handles = append(handles, b.Handle())
	}

	if !w.RemoveBody(handles[1]) {
		t.Fatal("RemoveBody failed")
	}
	if w.RemoveBody(handles[1]) {
		t.Error("second RemoveBody succeeded")
	}
	if _, ok := w.Body(handles[1]); ok {
		t.Error("removed handle still resolves")
	}

	bodies := w.Bodies()
	if len(bodies) != 2 {
		t.Fatalf("Bodies len = %d, want 2", len(bodies))
	}
	if bodies[0].Handle() != handles[0] || bodies[1].Handle() != handles[2] {
		t.Error("Bodies lost creation order after removal")
	}
}

func TestWorldStepAppliesGravity(t *testing.T) {
	w := newTestWorld()
	b, err := w.AddBody(BodyDesc{Shape: Ball(0.5)})
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 10; i++ {
		w.Step(0.016)
	}
	if w.Steps() != 10 {
		t.Errorf("Steps = %d, want 10", w.Steps())
	}
	if y := b.Position().Y; y <= 0 {
		t.Errorf("ball did not fall with +y gravity, y = %g", y)
	}
}

func TestWorldStaticPlane(t *testing.T) {
	w := newTestWorld()
	plane, err := w.AddBody(BodyDesc{
		Shape:    Plane(-1, -1),
		Static:   true,
		Position: Translation(0, 10),
	})
	if err != nil {
		t.Fatalf("AddBody(static plane): %v", err)
	}
	if plane.CanMove() {
		t.Error("static body reports CanMove")
	}
	w.Step(0.016)
	if p := plane.Position(); !near(p.Y, 10) {
		t.Errorf("static plane moved to %+v", p)
	}
}

func TestWorldRestingBodyFallsAsleep(t *testing.T) {
	w := newTestWorld()
	if w.space.SleepTimeThreshold != SleepTimeThreshold {
		t.Fatalf("space sleep threshold = %g, want %g", w.space.SleepTimeThreshold, SleepTimeThreshold)
	}
	if _, err := w.AddBody(BodyDesc{
		Shape:    Plane(0, -1),
		Static:   true,
		Position: Translation(0, 5),
	}); err != nil {
		t.Fatalf("AddBody(ground): %v", err)
	}
	ball, err := w.AddBody(BodyDesc{Shape: Ball(0.5), Position: Translation(0, 4.4)})
	if err != nil {
		t.Fatalf("AddBody(ball): %v", err)
	}

	for i := 0; i < 1000; i++ {
		w.Step(0.016)
	}
	if ball.IsActive() {
		t.Errorf("ball resting on the ground still active at y = %g", ball.Position().Y)
	}
}

func TestWorldCompoundMass(t *testing.T) {
	w := newTestWorld()
	_, err := w.AddBody(BodyDesc{Shape: Compound(
		Part{Delta: Translation(-1, 0), Shape: Ball(0.5)},
		Part{Delta: Translation(1, 0), Shape: Cuboid(0.5, 0.5)},
	)})
	if err != nil {
		t.Fatalf("AddBody(compound): %v", err)
	}

	_, err = w.AddBody(BodyDesc{Shape: Compound(
		Part{Delta: Pose{Angle: 0.3}, Shape: Cuboid(0.5, 0.5)},
	)})
	if !errors.Is(err, ErrInvalidShape) {
		t.Errorf("rotated cuboid part error = %v, want ErrInvalidShape", err)
	}
}
