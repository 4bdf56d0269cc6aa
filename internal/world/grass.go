package world

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"sync"

	"cheesefield/internal/engine"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/panjf2000/ants/v2"
)

// GrassConfig describes the decorative grass field.
type GrassConfig struct {
	Clumps         int     `yaml:"clumps"`
	BladesPerClump int     `yaml:"blades_per_clump"`
	Range          float32 `yaml:"range"`      // side of the square holding clump centers
	ClumpSize      float32 `yaml:"clump_size"` // side of the square around each center
	Height         float32 `yaml:"height"`
	MinScale       float32 `yaml:"min_scale"`
	MaxScale       float32 `yaml:"max_scale"`
	Workers        int     `yaml:"workers"`    // 0 means GOMAXPROCS
	BatchSize      int     `yaml:"batch_size"` // clumps per pool task
}

func DefaultGrassConfig() GrassConfig {
	return GrassConfig{
		Clumps:         20000,
		BladesPerClump: 50,
		Range:          1000,
		ClumpSize:      5,
		Height:         0.25,
		MinScale:       0.5,
		MaxScale:       1.0,
		BatchSize:      500,
	}
}

// Clump is a group of blades around a shared center. Blades aliases the
// backing array of Grass.
type Clump struct {
	Center mgl32.Vec3
	Radius float32
	Blades []engine.Transform
}

// Grass is the write-once decorative field. Nothing reads it except the
// renderer.
type Grass struct {
	Clumps []Clump
	blades []engine.Transform
}

// Blades returns every blade in clump order.
func (g *Grass) Blades() []engine.Transform {
	return g.blades
}

func (g *Grass) Len() int {
	return len(g.blades)
}

// GenerateGrass lays out the grass field. Clumps are split into batches that
// run on an ants pool; each batch owns its own rand source derived from seed,
// so the result does not depend on scheduling.
func GenerateGrass(ctx context.Context, cfg GrassConfig, seed int64) (*Grass, error) {
	g := &Grass{
		Clumps: make([]Clump, cfg.Clumps),
		blades: make([]engine.Transform, cfg.Clumps*cfg.BladesPerClump),
	}
	if cfg.Clumps == 0 {
		return g, nil
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	batch := cfg.BatchSize
	if batch <= 0 {
		batch = cfg.Clumps
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("create grass pool: %w", err)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for b, lo := 0, 0; lo < cfg.Clumps; b, lo = b+1, lo+batch {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, err
		}
		hi := min(lo+batch, cfg.Clumps)
		rng := rand.New(rand.NewSource(seed*1_000_003 + int64(b)))

		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			g.fill(cfg, rng, lo, hi)
		})
		if err != nil {
			wg.Done()
			wg.Wait()
			return nil, fmt.Errorf("submit grass batch %d: %w", b, err)
		}
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return g, nil
}

// fill writes clumps [lo, hi) and their blades. Batches touch disjoint ranges.
func (g *Grass) fill(cfg GrassConfig, rng *rand.Rand, lo, hi int) {
	half := cfg.Range / 2
	// Blades sit within a ClumpSize square, so the half diagonal bounds them.
	radius := cfg.ClumpSize/2*math.Sqrt2 + cfg.MaxScale

	for i := lo; i < hi; i++ {
		cx := rng.Float32()*cfg.Range - half
		cz := rng.Float32()*cfg.Range - half

		blades := g.blades[i*cfg.BladesPerClump : (i+1)*cfg.BladesPerClump]
		for j := range blades {
			blades[j] = engine.Transform{
				Position: mgl32.Vec3{
					cx + (rng.Float32()-0.5)*cfg.ClumpSize,
					cfg.Height,
					cz + (rng.Float32()-0.5)*cfg.ClumpSize,
				},
				Yaw:   rng.Float32() * math.Pi,
				Scale: cfg.MinScale + rng.Float32()*(cfg.MaxScale-cfg.MinScale),
			}
		}

		g.Clumps[i] = Clump{
			Center: mgl32.Vec3{cx, cfg.Height, cz},
			Radius: radius,
			Blades: blades,
		}
	}
}
