package world

import "testing"

func TestScoreAward(t *testing.T) {
	var s Score

	s.Award(10, 0.5)
	s.Award(10, 0.5)

	if s.Points != 20 {
		t.Errorf("Expected 20 points, got %d", s.Points)
	}
	if s.SpeedBonus != 1.0 {
		t.Errorf("Expected bonus 1.0, got %f", s.SpeedBonus)
	}
	if s.Pickups != 2 {
		t.Errorf("Expected 2 pickups, got %d", s.Pickups)
	}
}
