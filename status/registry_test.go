package status

import (
	"strings"
	"sync"
	"testing"
)

func TestRegistryCachedPointers(t *testing.T) {
	r := NewRegistry()
	a := r.Int(Frames)
	b := r.Int(Frames)
	if a != b {
		t.Fatal("expected the same counter pointer for one key")
	}
	a.Add(3)
	if got := r.Int(Frames).Load(); got != 3 {
		t.Errorf("expected 3 frames, got %d", got)
	}

	r.Float(VelocityY).Set(-0.25)
	if got := r.Float(VelocityY).Get(); got != -0.25 {
		t.Errorf("expected -0.25, got %f", got)
	}
	if r.Count() != 2 {
		t.Errorf("expected 2 metrics, got %d", r.Count())
	}
}

func TestRegistrySummarySorted(t *testing.T) {
	r := NewRegistry()
	r.Int(PointerMoves).Store(7)
	r.Int(Frames).Store(2)
	r.Float(VelocityZ).Set(0.5)

	s := r.Summary()
	want := "input.pointer_moves=7 render.frames=2 velocity.vz=0.50000"
	if s != want {
		t.Errorf("summary mismatch\n got: %s\nwant: %s", s, want)
	}
}

func TestRegistryConcurrentRegistration(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.Int(DecayTicks).Add(1)
			}
		}()
	}
	wg.Wait()
	if got := r.Int(DecayTicks).Load(); got != 1600 {
		t.Errorf("expected 1600 ticks, got %d", got)
	}
	if !strings.Contains(r.Summary(), DecayTicks) {
		t.Error("summary missing decay ticks")
	}
}
