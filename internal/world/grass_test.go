package world

import (
	"context"
	"errors"
	"testing"
)

func smallGrassConfig() GrassConfig {
	cfg := DefaultGrassConfig()
	cfg.Clumps = 200
	cfg.BladesPerClump = 10
	cfg.Range = 100
	cfg.BatchSize = 32
	cfg.Workers = 4
	return cfg
}

func TestGenerateGrassCounts(t *testing.T) {
	cfg := smallGrassConfig()
	g, err := GenerateGrass(context.Background(), cfg, 7)
	if err != nil {
		t.Fatalf("GenerateGrass failed: %v", err)
	}

	if len(g.Clumps) != cfg.Clumps {
		t.Errorf("Expected %d clumps, got %d", cfg.Clumps, len(g.Clumps))
	}
	if g.Len() != cfg.Clumps*cfg.BladesPerClump {
		t.Errorf("Expected %d blades, got %d", cfg.Clumps*cfg.BladesPerClump, g.Len())
	}
	for i, c := range g.Clumps {
		if len(c.Blades) != cfg.BladesPerClump {
			t.Fatalf("Clump %d: expected %d blades, got %d", i, cfg.BladesPerClump, len(c.Blades))
		}
	}
}

func TestGenerateGrassBounds(t *testing.T) {
	cfg := smallGrassConfig()
	g, err := GenerateGrass(context.Background(), cfg, 7)
	if err != nil {
		t.Fatalf("GenerateGrass failed: %v", err)
	}

	half := cfg.Range / 2
	for _, c := range g.Clumps {
		if c.Center.X() < -half || c.Center.X() > half || c.Center.Z() < -half || c.Center.Z() > half {
			t.Errorf("Clump center outside range: %v", c.Center)
		}
		for _, b := range c.Blades {
			if b.Position.Y() != cfg.Height {
				t.Errorf("Expected blade height %f, got %f", cfg.Height, b.Position.Y())
			}
			if d := b.Position.Sub(c.Center).Len(); d > c.Radius {
				t.Errorf("Blade %v is %f from center, radius %f", b.Position, d, c.Radius)
			}
			if b.Yaw < 0 || b.Yaw >= 3.1416 {
				t.Errorf("Yaw out of range: %f", b.Yaw)
			}
			if b.Scale < cfg.MinScale || b.Scale > cfg.MaxScale {
				t.Errorf("Scale out of range: %f", b.Scale)
			}
		}
	}
}

func TestGenerateGrassDeterministic(t *testing.T) {
	cfg := smallGrassConfig()

	a, err := GenerateGrass(context.Background(), cfg, 99)
	if err != nil {
		t.Fatalf("GenerateGrass failed: %v", err)
	}
	cfg.Workers = 1
	b, err := GenerateGrass(context.Background(), cfg, 99)
	if err != nil {
		t.Fatalf("GenerateGrass failed: %v", err)
	}

	for i := range a.Blades() {
		if a.Blades()[i] != b.Blades()[i] {
			t.Fatalf("Blade %d differs: %v vs %v", i, a.Blades()[i], b.Blades()[i])
		}
	}

	c, err := GenerateGrass(context.Background(), cfg, 100)
	if err != nil {
		t.Fatalf("GenerateGrass failed: %v", err)
	}
	if c.Blades()[0] == a.Blades()[0] {
		t.Error("Different seeds should produce different grass")
	}
}

func TestGenerateGrassEmpty(t *testing.T) {
	cfg := smallGrassConfig()
	cfg.Clumps = 0

	g, err := GenerateGrass(context.Background(), cfg, 1)
	if err != nil {
		t.Fatalf("GenerateGrass failed: %v", err)
	}
	if g.Len() != 0 || len(g.Clumps) != 0 {
		t.Errorf("Expected empty grass, got %d blades", g.Len())
	}
}

func TestGenerateGrassCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := GenerateGrass(ctx, smallGrassConfig(), 1)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}
