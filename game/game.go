package game

import (
	"image/color"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Sounds is the effect surface the simulation triggers. The host wires it to
// the audio engine; a nil Sounds silences the game.
type Sounds interface {
	Laser()
	Hit()
	Explosion()
	GameOver()
}

// Game owns one round of the mini-game: the entity lists, the shared state
// counters, and the environmental layers. It deliberately keeps every mutable
// counter inside State rather than in package-level bindings.
type Game struct {
	cfg   Config
	state *State

	sky      *Sky
	backdrop *Backdrop
	city     *City

	player      *Player
	enemies     []*Enemy
	playerShots []*Projectile
	enemyShots  []*Projectile
	debris      []Particle

	atlas *Atlas
	hud   *HUD

	sounds Sounds
	rng    *rand.Rand

	gameOverWait int
	gameOverSent bool
}

// New builds the simulation. Rendering assets are loaded separately by
// LoadAssets so headless tests can drive the loop without a display.
func New(cfg Config, sounds Sounds, rng *rand.Rand) *Game {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	g := &Game{
		cfg:      cfg,
		state:    NewState(cfg),
		sky:      NewSky(rng),
		backdrop: NewBackdrop(cfg, rng),
		city:     NewCity(cfg, rng),
		player:   NewPlayer(cfg),
		sounds:   sounds,
		rng:      rng,
	}
	return g
}

// LoadAssets builds the sprite atlas, the skyline raster, and the HUD faces.
// Failures are logged and swallowed: the game proceeds with flat-shape
// fallbacks, matching the original's tolerant preload path.
func (g *Game) LoadAssets() {
	atlas, err := BuildAtlas()
	if err != nil {
		log.Printf("sprite atlas unavailable: %v", err)
	} else {
		g.atlas = atlas
	}

	if err := g.city.BuildSilhouette(g.cfg); err != nil {
		log.Printf("skyline unavailable: %v", err)
	}

	hud, err := NewHUD()
	if err != nil {
		log.Printf("hud font unavailable: %v", err)
	} else {
		g.hud = hud
	}
}

// State exposes the shared counters, mainly for the host shell and tests.
func (g *Game) State() *State {
	return g.state
}

// Player exposes the player entity for tests.
func (g *Game) Player() *Player {
	return g.player
}

// Enemies exposes the live enemy list for tests.
func (g *Game) Enemies() []*Enemy {
	return g.enemies
}

// Start resets the round counters and entity lists and begins play.
func (g *Game) Start() {
	g.Reset()
	g.state.Mode = ModePlaying
}

// Reset zeroes all counters and empties all entity lists, returning the game
// to its title-screen condition.
func (g *Game) Reset() {
	g.state.Reset(g.cfg)
	g.player = NewPlayer(g.cfg)
	g.enemies = g.enemies[:0]
	g.playerShots = g.playerShots[:0]
	g.enemyShots = g.enemyShots[:0]
	g.debris = g.debris[:0]
	g.gameOverWait = 0
	g.gameOverSent = false
}

// Update advances the round one tick. The returned flag is true when the
// player left the game-over screen and the host should fall back to the
// attract mode.
func (g *Game) Update(in InputState) (exitToTitle bool) {
	switch g.state.Mode {
	case ModePaused:
		if in.PauseToggle {
			g.state.Mode = ModePlaying
		}
		return false
	case ModeGameOver:
		if in.Start {
			g.Reset()
			return true
		}
		return false
	case ModeTitle:
		return false
	}

	if in.PauseToggle {
		g.state.Mode = ModePaused
		return false
	}

	g.state.Frame++

	// Environment first, entities second, collisions third: the fixed order
	// the draw pass depends on.
	g.sky.Update(g.cfg)
	g.backdrop.Update(g.cfg, g.state.GameSpeed)
	g.city.Update()

	g.updatePlayer(in)
	g.spawnEnemies()
	g.updateEnemies()
	g.updateProjectiles()
	g.checkCollisions()
	g.updateDebris()
	g.compact()

	g.state.ApplyDifficultyRamp(g.cfg)

	g.checkGameOver()
	return false
}

func (g *Game) updatePlayer(in InputState) {
	g.player.Update(in, g.cfg)

	if in.Fire {
		if x, y, ok := g.player.TryFire(g.cfg); ok {
			g.playerShots = append(g.playerShots, NewPlayerShot(x, y))
			g.playSound(func(s Sounds) { s.Laser() })
		}
	}
}

func (g *Game) spawnEnemies() {
	if g.cfg.EnemySpawnInterval <= 0 || g.state.Frame%g.cfg.EnemySpawnInterval != 0 {
		return
	}
	x := 40 + g.rng.Float64()*(float64(g.cfg.ScreenWidth)-120)
	g.enemies = append(g.enemies, NewEnemy(x, RandomPattern(g.rng), g.rng))
}

func (g *Game) updateEnemies() {
	px := g.player.X + g.player.W/2
	py := g.player.Y + g.player.H/2
	for _, e := range g.enemies {
		e.Update(g.cfg, g.state.GameSpeed, px, py)

		if x, y, ok := e.TryFire(); ok {
			// Aim loosely at the player.
			vx := (px - x) / 120
			vx = clampf(vx, -2, 2)
			g.enemyShots = append(g.enemyShots, NewEnemyShot(x, y, vx, 3.5))
		}
	}
}

func (g *Game) updateProjectiles() {
	for _, p := range g.playerShots {
		p.Update(g.cfg, g.state.GameSpeed)
	}
	for _, p := range g.enemyShots {
		p.Update(g.cfg, g.state.GameSpeed)
	}
}

func (g *Game) checkCollisions() {
	// Player shots vs enemies.
	for _, shot := range g.playerShots {
		if shot.State == StateDead {
			continue
		}
		for _, e := range g.enemies {
			if !e.State.Alive() {
				continue
			}
			if !Intersects(shot.Bounds(), e.Bounds()) {
				continue
			}
			shot.State = StateDead
			wasAlive := e.State.Alive()
			e.Hit()
			if wasAlive && e.State == StateExploding {
				g.debris = append(g.debris, NewExplosionBurst(e.X+e.W/2, e.Y+e.H/2, 14, g.rng)...)
				g.playSound(func(s Sounds) { s.Explosion() })
			}
			break
		}
	}

	if !g.player.State.Alive() {
		return
	}
	playerBounds := g.player.Bounds()

	// Enemy shots vs player.
	for _, shot := range g.enemyShots {
		if shot.State == StateDead || shot.Owner != OwnerEnemy {
			continue
		}
		if Intersects(shot.Bounds(), playerBounds) {
			shot.State = StateDead
			g.damagePlayer()
		}
	}

	// Enemies ramming the player.
	for _, e := range g.enemies {
		if !e.State.Alive() {
			continue
		}
		if Intersects(e.Bounds(), playerBounds) {
			e.StartCrashExplosion()
			g.debris = append(g.debris, NewExplosionBurst(e.X+e.W/2, e.Y+e.H/2, 10, g.rng)...)
			g.damagePlayer()
		}
	}
}

func (g *Game) damagePlayer() {
	if !g.player.Hit(g.cfg) {
		return
	}
	g.state.Lives--
	g.playSound(func(s Sounds) { s.Hit() })
	g.debris = append(g.debris, NewExplosionBurst(g.player.X+g.player.W/2, g.player.Y+g.player.H/2, 8, g.rng)...)

	if g.state.Lives <= 0 {
		g.player.StartExplosion()
		g.playSound(func(s Sounds) { s.Explosion() })
	}
}

func (g *Game) updateDebris() {
	for i := range g.debris {
		g.debris[i].Update()
	}
}

// compact removes every dead entity from its owning list in the same pass
// that killed it. Score for a shot-down enemy is awarded here, once its
// explosion animation has fully played out.
func (g *Game) compact() {
	keptE := g.enemies[:0]
	for _, e := range g.enemies {
		if e.State == StateDead {
			if e.KilledByShot {
				g.state.Score += g.cfg.EnemyReward
			}
			continue
		}
		keptE = append(keptE, e)
	}
	g.enemies = keptE

	g.playerShots = compactProjectiles(g.playerShots)
	g.enemyShots = compactProjectiles(g.enemyShots)

	keptD := g.debris[:0]
	for i := range g.debris {
		if g.debris[i].Life > 0 {
			keptD = append(keptD, g.debris[i])
		}
	}
	g.debris = keptD
}

func compactProjectiles(list []*Projectile) []*Projectile {
	kept := list[:0]
	for _, p := range list {
		if p.State != StateDead {
			kept = append(kept, p)
		}
	}
	return kept
}

// checkGameOver waits out the death animation plus a short delay so the
// explosion stays visible, then shows the game-over screen.
func (g *Game) checkGameOver() {
	if g.player.State != StateDead {
		return
	}
	g.gameOverWait++
	if g.gameOverWait >= g.cfg.GameOverDelay && g.state.Mode == ModePlaying {
		g.state.Mode = ModeGameOver
		if !g.gameOverSent {
			g.gameOverSent = true
			g.playSound(func(s Sounds) { s.GameOver() })
		}
	}
}

func (g *Game) playSound(fn func(Sounds)) {
	if g.sounds != nil {
		fn(g.sounds)
	}
}

// Draw renders one frame in the fixed order: sky, backdrop, city, entities,
// debris, HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.sky.Draw(screen, g.cfg)
	g.backdrop.Draw(screen)
	g.city.Draw(screen, g.cfg)

	for _, p := range g.playerShots {
		g.drawProjectile(screen, p)
	}
	for _, p := range g.enemyShots {
		g.drawProjectile(screen, p)
	}
	for _, e := range g.enemies {
		g.drawEnemy(screen, e)
	}
	g.drawPlayer(screen)

	for i := range g.debris {
		g.debris[i].Draw(screen)
	}

	switch g.state.Mode {
	case ModePlaying:
		g.hud.DrawHUD(screen, g.state)
	case ModePaused:
		g.hud.DrawHUD(screen, g.state)
		g.hud.DrawPaused(screen, g.cfg)
	case ModeGameOver:
		g.hud.DrawGameOver(screen, g.cfg, g.state.Score)
	}
}

// DrawTitle renders the attract-screen title block over the host's backdrop.
func (g *Game) DrawTitle(screen *ebiten.Image) {
	g.hud.DrawTitle(screen, g.cfg)
}

func (g *Game) drawPlayer(screen *ebiten.Image) {
	p := g.player
	switch p.State {
	case StateDead:
		return
	case StateExploding:
		drawExplosionRing(screen, p.X+p.W/2, p.Y+p.H/2, p.ExplosionTick, g.cfg.ExplosionFrames)
		return
	}

	// Flicker through the post-hit grace period.
	if p.InvulnerableTicks > 0 && p.InvulnerableTicks%6 < 3 {
		return
	}

	if g.atlas != nil {
		sprite := g.atlas.Player[p.SpriteFrame]
		op := &ebiten.DrawImageOptions{}
		sw, sh := sprite.Bounds().Dx(), sprite.Bounds().Dy()
		op.GeoM.Scale(p.W/float64(sw), p.H/float64(sh))
		op.GeoM.Translate(p.X, p.Y)
		screen.DrawImage(sprite, op)
		return
	}
	vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(p.W), float32(p.H),
		color.NRGBA{R: 60, G: 190, B: 180, A: 255}, false)
}

func (g *Game) drawEnemy(screen *ebiten.Image, e *Enemy) {
	for i := range e.Trail {
		e.Trail[i].Draw(screen)
	}

	switch e.State {
	case StateDead:
		return
	case StateExploding:
		drawExplosionRing(screen, e.X+e.W/2, e.Y+e.H/2, e.ExplosionTick, g.cfg.ExplosionFrames)
		return
	}

	if g.atlas != nil {
		sprite := g.atlas.Enemy[e.SpriteFrame]
		op := &ebiten.DrawImageOptions{}
		sw, sh := sprite.Bounds().Dx(), sprite.Bounds().Dy()
		op.GeoM.Scale(e.W/float64(sw), e.H/float64(sh))
		op.GeoM.Translate(e.X, e.Y)
		screen.DrawImage(sprite, op)
		return
	}
	vector.DrawFilledRect(screen, float32(e.X), float32(e.Y), float32(e.W), float32(e.H),
		color.NRGBA{R: 190, G: 70, B: 80, A: 255}, false)
}

func (g *Game) drawProjectile(screen *ebiten.Image, p *Projectile) {
	if p.State == StateDead {
		return
	}

	if g.atlas != nil {
		var sprite *ebiten.Image
		if p.Owner == OwnerPlayer {
			sprite = g.atlas.Shot
		} else {
			sprite = g.atlas.EnemyShot[p.SpriteFrame]
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(p.X, p.Y)
		screen.DrawImage(sprite, op)
		return
	}

	clr := color.NRGBA{R: 120, G: 230, B: 255, A: 255}
	if p.Owner == OwnerEnemy {
		clr = color.NRGBA{R: 255, G: 90, B: 60, A: 255}
	}
	vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(p.W), float32(p.H), clr, false)
}

// drawExplosionRing draws the expanding fading ring of an explosion
// animation at its current frame.
func drawExplosionRing(screen *ebiten.Image, cx, cy float64, tick, frames int) {
	if frames <= 0 {
		return
	}
	t := float64(tick) / float64(frames)
	radius := 6 + t*30
	alpha := uint8(255 * (1 - t))
	vector.StrokeCircle(screen, float32(cx), float32(cy), float32(radius), 3,
		color.NRGBA{R: 255, G: 180, B: 60, A: alpha}, true)
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(radius*0.4),
		color.NRGBA{R: 255, G: 240, B: 200, A: alpha}, true)
}
