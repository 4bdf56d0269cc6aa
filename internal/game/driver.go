package game

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"
)

// Surface is the window the session is shown on. The driver calls it once
// per frame, always from the goroutine running Run.
type Surface interface {
	ShouldClose() bool
	FrameTime() float32
	PollInput(s *Session)
	Render(snap Snapshot)
}

// Driver runs the frame loop: input, step, render.
type Driver struct {
	session *Session
	surface Surface
	log     *zap.Logger
	stopped atomic.Bool
}

func NewDriver(s *Session, surface Surface, log *zap.Logger) *Driver {
	return &Driver{
		session: s,
		surface: surface,
		log:     log,
	}
}

// Run loops until Stop is called, the surface asks to close, or ctx is
// done. Only the context case returns an error.
func (d *Driver) Run(ctx context.Context) error {
	d.log.Info("Frame loop started")
	defer func() {
		d.log.Info("Frame loop stopped",
			zap.Uint64("frames", d.session.Frames()),
			zap.Int("score", d.session.World.Score.Points),
		)
	}()

	for {
		if d.stopped.Load() {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if d.surface.ShouldClose() {
			return nil
		}

		d.surface.PollInput(d.session)
		d.session.Step(d.surface.FrameTime())
		d.surface.Render(d.session.Snapshot())
	}
}

// Stop ends Run after the current frame. Safe from any goroutine.
func (d *Driver) Stop() {
	d.stopped.Store(true)
}
