package world

// Score is the session's pickup tally. It only ever grows.
type Score struct {
	Points     int
	SpeedBonus float32
	Pickups    int
}

// Award records one pickup.
func (s *Score) Award(points int, speedBonus float32) {
	s.Points += points
	s.SpeedBonus += speedBonus
	s.Pickups++
}
