package world

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
)

// World holds everything in the scene that is not the player or the camera.
type World struct {
	Field *Field
	Grass *Grass
	Score Score
}

// New generates the grass field and spawns the collectibles. Both are
// derived from seed, so equal seeds give equal worlds.
func New(ctx context.Context, field FieldConfig, grass GrassConfig, seed int64) (*World, error) {
	g, err := GenerateGrass(ctx, grass, seed)
	if err != nil {
		return nil, fmt.Errorf("generate grass: %w", err)
	}

	return &World{
		Field: NewField(field, rand.New(rand.NewSource(seed))),
		Grass: g,
	}, nil
}

// Collect runs collision detection against the player position and
// updates the score.
func (w *World) Collect(pos mgl32.Vec3) []Pickup {
	return w.Field.CheckCollisions(pos, &w.Score)
}

// VisibleClumps appends to dst the index of every clump that lies within
// drawDistance of center and intersects the frustum.
func (w *World) VisibleClumps(f *Frustum, center mgl32.Vec3, drawDistance float32, dst []int) []int {
	for i := range w.Grass.Clumps {
		c := &w.Grass.Clumps[i]
		if drawDistance > 0 {
			dx := c.Center.X() - center.X()
			dz := c.Center.Z() - center.Z()
			reach := drawDistance + c.Radius
			if dx*dx+dz*dz > reach*reach {
				continue
			}
		}
		if f != nil && !f.ContainsSphere(c.Center, c.Radius) {
			continue
		}
		dst = append(dst, i)
	}
	return dst
}

// VisibleCollectibles appends to dst every cube of edge size centered in
// positions that intersects the frustum.
func VisibleCollectibles(f *Frustum, positions []mgl32.Vec3, size float32, dst []mgl32.Vec3) []mgl32.Vec3 {
	radius := size * float32(math.Sqrt(3)) / 2
	for _, p := range positions {
		if f != nil && !f.ContainsSphere(p, radius) {
			continue
		}
		dst = append(dst, p)
	}
	return dst
}
