package starfield

import (
	"math"
	"math/rand"
)

// star is one drifting point in the field. Depth drives both parallax speed
// and apparent size: stars fly outward from the center and respawn deep.
type star struct {
	// angle and dist are polar coordinates around the field center.
	angle float64
	dist  float64

	// depth in (0, 1]: 1 is closest. Shallow stars move slowly.
	depth float64

	speed float64
	size  float64
}

// respawn re-initializes a star (new or recycled) near the origin depth.
func (s *star) respawn(rng *rand.Rand) {
	s.angle = rng.Float64() * 2 * math.Pi
	s.dist = rng.Float64() * 40
	s.depth = 0.05 + rng.Float64()*0.15
	s.speed = 0.5 + rng.Float64()*1.5
	s.size = 0.5 + rng.Float64()
}

// advance moves the star outward and reports whether it left the visible
// bounds and needs recycling.
func (s *star) advance(dt, speedScale, maxDist float64) bool {
	s.dist += s.speed * s.depth * speedScale * dt * 60
	s.depth = math.Min(1, s.depth+0.08*dt)
	return s.dist > maxDist
}

// position returns the star's offset from the field center.
func (s *star) position() (x, y float64) {
	return math.Cos(s.angle) * s.dist, math.Sin(s.angle) * s.dist
}
