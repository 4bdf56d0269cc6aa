package game

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
)

type fakeSurface struct {
	closeAfter int
	polls      int
	renders    []Snapshot
	onPoll     func(s *Session)
}

func (f *fakeSurface) ShouldClose() bool {
	return f.closeAfter > 0 && len(f.renders) >= f.closeAfter
}

func (f *fakeSurface) FrameTime() float32 {
	return 1.0 / 60
}

func (f *fakeSurface) PollInput(s *Session) {
	f.polls++
	if f.onPoll != nil {
		f.onPoll(s)
	}
}

func (f *fakeSurface) Render(snap Snapshot) {
	f.renders = append(f.renders, snap)
}

func TestDriverRunsUntilClose(t *testing.T) {
	s := newTestSession(t, testConfig())
	surface := &fakeSurface{closeAfter: 3}
	d := NewDriver(s, surface, zap.NewNop())

	if err := d.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(surface.renders) != 3 || surface.polls != 3 {
		t.Errorf("Expected 3 frames, got %d renders and %d polls", len(surface.renders), surface.polls)
	}
	if s.Frames() != 3 {
		t.Errorf("Expected 3 steps, got %d", s.Frames())
	}
	for i, snap := range surface.renders {
		if snap.Frame != uint64(i+1) {
			t.Errorf("Render %d: expected frame %d, got %d", i, i+1, snap.Frame)
		}
	}
}

func TestDriverInputAppliedSameFrame(t *testing.T) {
	s := newTestSession(t, testConfig())
	surface := &fakeSurface{closeAfter: 1}
	surface.onPoll = func(s *Session) {
		s.Input.KeyDown("W")
	}
	d := NewDriver(s, surface, zap.NewNop())

	if err := d.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if surface.renders[0].Player.Position.Z() >= 0 {
		t.Errorf("Expected the first frame to move forward, got %v", surface.renders[0].Player.Position)
	}
}

func TestDriverStop(t *testing.T) {
	s := newTestSession(t, testConfig())
	surface := &fakeSurface{}
	d := NewDriver(s, surface, zap.NewNop())
	surface.onPoll = func(s *Session) {
		if s.Frames() == 4 {
			d.Stop()
		}
	}

	if err := d.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if s.Frames() != 5 {
		t.Errorf("Expected the stop to land after frame 5, got %d", s.Frames())
	}
}

func TestDriverContextCanceled(t *testing.T) {
	s := newTestSession(t, testConfig())
	ctx, cancel := context.WithCancel(context.Background())
	surface := &fakeSurface{}
	surface.onPoll = func(s *Session) {
		if s.Frames() == 2 {
			cancel()
		}
	}
	d := NewDriver(s, surface, zap.NewNop())

	err := d.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
	if s.Frames() != 3 {
		t.Errorf("Expected 3 frames before the cancel was seen, got %d", s.Frames())
	}
}
