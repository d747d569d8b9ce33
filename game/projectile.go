package game

// ProjectileOwner distinguishes player shots from enemy shots.
type ProjectileOwner int

const (
	OwnerPlayer ProjectileOwner = iota
	OwnerEnemy
)

// Projectile is a bolt in flight. Player shots travel straight up; enemy
// shots are the animated variant, cycling through sprite frames as they fall.
type Projectile struct {
	X, Y   float64
	VX, VY float64
	W, H   float64

	Owner ProjectileOwner
	State EntityState

	// SpriteFrame cycles for the animated enemy variant.
	SpriteFrame int
	Animated    bool
	frameTick   int
}

// NewPlayerShot creates a bolt moving straight up from the muzzle position.
func NewPlayerShot(x, y float64) *Projectile {
	return &Projectile{
		X:     x - 3,
		Y:     y - 12,
		VY:    -8,
		W:     6,
		H:     14,
		Owner: OwnerPlayer,
		State: StateActive,
	}
}

// NewEnemyShot creates an animated bolt with the given velocity.
func NewEnemyShot(x, y, vx, vy float64) *Projectile {
	return &Projectile{
		X:        x - 4,
		Y:        y,
		VX:       vx,
		VY:       vy,
		W:        8,
		H:        14,
		Owner:    OwnerEnemy,
		State:    StateActive,
		Animated: true,
	}
}

// Update moves the projectile one tick and culls it once off-canvas.
func (p *Projectile) Update(cfg Config, gameSpeed float64) {
	if p.State == StateDead {
		return
	}

	speed := gameSpeed
	if p.Owner == OwnerPlayer {
		// Player shots keep a fixed speed so the ramp never works against
		// the player's own fire.
		speed = 1.0
	}
	p.X += p.VX * speed
	p.Y += p.VY * speed

	if p.Animated {
		p.frameTick++
		if p.frameTick >= 5 {
			p.frameTick = 0
			p.SpriteFrame = (p.SpriteFrame + 1) % 2
		}
	}

	if p.Y < -p.H || p.Y > float64(cfg.ScreenHeight)+p.H ||
		p.X < -p.W || p.X > float64(cfg.ScreenWidth)+p.W {
		p.State = StateDead
	}
}

// Bounds returns the projectile's collision rectangle.
func (p *Projectile) Bounds() Shape {
	return RectShape(p.X, p.Y, p.W, p.H)
}
