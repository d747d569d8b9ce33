package game

// Player is Vela's ship. Created once per round and mutated every tick by
// input and collisions; it is never removed from the simulation until the
// round is reset.
type Player struct {
	X, Y float64
	W, H float64

	State EntityState

	// SpriteFrame alternates between the two thruster animation frames.
	SpriteFrame int
	frameTick   int

	// ExplosionTick counts up while the death animation plays.
	ExplosionTick int

	// InvulnerableTicks is the remaining post-hit grace period.
	InvulnerableTicks int

	fireCooldown int
}

// NewPlayer places the ship at the bottom center of the canvas.
func NewPlayer(cfg Config) *Player {
	size := cfg.PlayerSize
	return &Player{
		X:     float64(cfg.ScreenWidth)/2 - size/2,
		Y:     float64(cfg.ScreenHeight) - size*1.5,
		W:     size,
		H:     size,
		State: StateActive,
	}
}

// Update advances the ship one tick: movement from input, sprite animation,
// grace-period countdown, and the explosion state machine.
func (p *Player) Update(in InputState, cfg Config) {
	switch p.State {
	case StateExploding:
		p.ExplosionTick++
		if p.ExplosionTick >= cfg.ExplosionFrames {
			p.State = StateDead
		}
		return
	case StateDead:
		return
	}

	if in.Left {
		p.X -= cfg.PlayerSpeed
	}
	if in.Right {
		p.X += cfg.PlayerSpeed
	}
	if in.Up {
		p.Y -= cfg.PlayerSpeed
	}
	if in.Down {
		p.Y += cfg.PlayerSpeed
	}

	// Keep the ship on the canvas.
	p.X = clampf(p.X, 0, float64(cfg.ScreenWidth)-p.W)
	p.Y = clampf(p.Y, 0, float64(cfg.ScreenHeight)-p.H)

	// Thruster animation: swap frames every 6 ticks.
	p.frameTick++
	if p.frameTick >= 6 {
		p.frameTick = 0
		p.SpriteFrame = (p.SpriteFrame + 1) % 2
	}

	if p.InvulnerableTicks > 0 {
		p.InvulnerableTicks--
	}
	if p.fireCooldown > 0 {
		p.fireCooldown--
	}
}

// TryFire reports whether the ship may fire this tick and, if so, starts the
// cooldown and returns the muzzle position.
func (p *Player) TryFire(cfg Config) (x, y float64, ok bool) {
	if !p.State.Alive() || p.fireCooldown > 0 {
		return 0, 0, false
	}
	p.fireCooldown = cfg.FireCooldown
	return p.X + p.W/2, p.Y, true
}

// Hit applies one hit to the ship and starts the grace period. It returns
// false when the ship is currently invulnerable or already dying.
func (p *Player) Hit(cfg Config) bool {
	if !p.State.Alive() || p.InvulnerableTicks > 0 {
		return false
	}
	p.InvulnerableTicks = cfg.InvulnerableFrames
	return true
}

// StartExplosion switches the ship into its death animation.
func (p *Player) StartExplosion() {
	if p.State.Alive() {
		p.State = StateExploding
		p.ExplosionTick = 0
	}
}

// Bounds returns the ship's collision rectangle.
func (p *Player) Bounds() Shape {
	return RectShape(p.X, p.Y, p.W, p.H)
}
