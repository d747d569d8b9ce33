package game

import (
	"math"
	"math/rand"
)

// MovementPattern selects one of the four scripted enemy flight paths.
type MovementPattern int

const (
	PatternSine MovementPattern = iota // Horizontal sine weave while descending
	PatternCosine                      // Offset cosine weave while descending
	PatternBob                         // Vertical bobbing with slow descent
	PatternDive                        // Steers toward the player's position
	patternCount
)

// RandomPattern picks one of the movement patterns.
func RandomPattern(rng *rand.Rand) MovementPattern {
	return MovementPattern(rng.Intn(int(patternCount)))
}

// Enemy is a hostile ship descending from the top of the canvas.
//
// Kill policy: the first hit provokes the enemy into StateAggressive, faster
// and shooting more often, without removing it; the second hit starts the
// explosion animation, and the enemy is removed only once the animation's
// frame counter runs out.
type Enemy struct {
	X, Y float64
	W, H float64

	State   EntityState
	Pattern MovementPattern

	// Hits counts projectile hits taken.
	Hits int

	// KilledByShot marks an explosion that should award score on removal.
	KilledByShot bool

	// ExplosionTick counts up while the explosion animation plays.
	ExplosionTick int

	// SpriteFrame alternates between the two wing animation frames.
	SpriteFrame int
	frameTick   int

	// Trail holds the fire particles emitted while aggressive.
	Trail []FireParticle

	baseX        float64
	phase        float64
	speed        float64
	fireCooldown int

	rng *rand.Rand
}

// NewEnemy spawns an enemy above the top edge at the given column.
func NewEnemy(x float64, pattern MovementPattern, rng *rand.Rand) *Enemy {
	return &Enemy{
		X:            x,
		Y:            -40,
		W:            40,
		H:            40,
		State:        StateActive,
		Pattern:      pattern,
		baseX:        x,
		phase:        rng.Float64() * 2 * math.Pi,
		speed:        1.0 + rng.Float64()*0.6,
		fireCooldown: 120 + rng.Intn(120),
		rng:          rng,
	}
}

// Hit applies one projectile hit and advances the kill policy.
func (e *Enemy) Hit() {
	if !e.State.Alive() {
		return
	}
	e.Hits++
	switch {
	case e.Hits == 1:
		e.State = StateAggressive
	case e.Hits >= 2:
		e.KilledByShot = true
		e.startExplosion()
	}
}

// StartCrashExplosion blows the enemy up without awarding score, used when it
// rams the player.
func (e *Enemy) StartCrashExplosion() {
	if e.State.Alive() {
		e.startExplosion()
	}
}

func (e *Enemy) startExplosion() {
	e.State = StateExploding
	e.ExplosionTick = 0
}

// Update advances the enemy one tick. gameSpeed is the global difficulty
// multiplier; px, py is the player's center, used by the dive pattern.
func (e *Enemy) Update(cfg Config, gameSpeed, px, py float64) {
	switch e.State {
	case StateExploding:
		e.ExplosionTick++
		if e.ExplosionTick >= cfg.ExplosionFrames {
			e.State = StateDead
		}
		e.updateTrail()
		return
	case StateDead:
		return
	}

	speed := e.speed * gameSpeed
	aggressive := e.State == StateAggressive
	if aggressive {
		speed *= 1.5
	}

	e.phase += 0.04 * gameSpeed

	switch e.Pattern {
	case PatternSine:
		e.Y += speed
		e.X = e.baseX + math.Sin(e.phase)*60
	case PatternCosine:
		e.Y += speed
		e.X = e.baseX + math.Cos(e.phase)*80
	case PatternBob:
		e.Y += speed * 0.4
		e.Y += math.Sin(e.phase*2) * 1.5
	case PatternDive:
		e.Y += speed
		dx := px - (e.X + e.W/2)
		if math.Abs(dx) > 1 {
			step := math.Copysign(speed*0.8, dx)
			e.X += step
		}
	}

	// Provoked enemies jitter unpredictably.
	if aggressive {
		e.X += (e.rng.Float64() - 0.5) * 3
		e.emitTrail()
	}
	e.updateTrail()

	// Wing flap animation.
	e.frameTick++
	if e.frameTick >= 10 {
		e.frameTick = 0
		e.SpriteFrame = (e.SpriteFrame + 1) % 2
	}

	if e.fireCooldown > 0 {
		e.fireCooldown--
	}

	// Enemies that leave the canvas are culled without reward.
	if e.Y > float64(cfg.ScreenHeight)+60 {
		e.State = StateDead
	}
}

// TryFire reports whether the enemy shoots this tick and returns the shot's
// origin. Aggressive enemies reload roughly twice as fast.
func (e *Enemy) TryFire() (x, y float64, ok bool) {
	if !e.State.Alive() || e.fireCooldown > 0 {
		return 0, 0, false
	}
	cooldown := 180 + e.rng.Intn(120)
	if e.State == StateAggressive {
		cooldown /= 2
	}
	e.fireCooldown = cooldown
	return e.X + e.W/2, e.Y + e.H, true
}

func (e *Enemy) emitTrail() {
	if len(e.Trail) >= 24 {
		return
	}
	e.Trail = append(e.Trail, NewFireParticle(
		e.X+e.W/2+(e.rng.Float64()-0.5)*e.W*0.5,
		e.Y+e.H*0.3,
		e.rng,
	))
}

func (e *Enemy) updateTrail() {
	kept := e.Trail[:0]
	for i := range e.Trail {
		e.Trail[i].Update()
		if e.Trail[i].Life > 0 {
			kept = append(kept, e.Trail[i])
		}
	}
	e.Trail = kept
}

// Bounds returns the enemy's collision rectangle.
func (e *Enemy) Bounds() Shape {
	return RectShape(e.X, e.Y, e.W, e.H)
}
