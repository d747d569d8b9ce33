// Package starfield is the decorative background animation shown while the
// game is idle: a parallax field of drifting stars that adapts its density
// and effects to the host device's measured capability.
package starfield

import (
	"image/color"
	"log"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

// Event is a lifecycle notification emitted to the host's listener.
type Event int

const (
	EventInitialized Event = iota
	EventError
	EventResized
	EventTierChanged
	EventDestroyed
)

// Listener receives lifecycle notifications. err is non-nil only for
// EventError.
type Listener func(ev Event, err error)

// Config tunes the field before tier adaptation is applied.
type Config struct {
	// StarCount is the target number of stars on a high-tier device.
	StarCount int

	// BaseSpeed scales the drift speed.
	BaseSpeed float64

	// BoostFactor multiplies the speed while boosted.
	BoostFactor float64

	// Glow draws a soft halo around each star (disabled on low tier).
	Glow bool

	// ThrottleHz caps low-tier update frequency; 0 disables throttling.
	ThrottleHz float64
}

// DefaultConfig returns the standard field tuning.
func DefaultConfig() Config {
	return Config{
		StarCount:   200,
		BaseSpeed:   1.0,
		BoostFactor: 3.0,
		Glow:        true,
		ThrottleHz:  30,
	}
}

// Manager owns the star field and its lifecycle. All methods are safe to
// call on a disabled manager; they simply do nothing, so a failed
// initialization never takes the host page down with it.
type Manager struct {
	cfg  Config
	tier Tier

	width, height float64
	stars         []*star
	free          []*star

	running bool
	paused  bool
	boosted bool
	done    bool

	disabled bool
	limiter  *rate.Limiter
	listener Listener
	rng      *rand.Rand

	// frame-rate measurement for downgrade-on-sustained-slowness
	fpsWindow   float64
	fpsFrames   int
	slowStrikes int
}

// New creates a manager for a host surface of the given size. A degenerate
// surface disables the manager rather than failing: the rest of the host
// stays usable, and the listener hears about it.
func New(width, height float64, cfg Config, listener Listener, rng *rand.Rand) *Manager {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	m := &Manager{
		cfg:      cfg,
		width:    width,
		height:   height,
		listener: listener,
		rng:      rng,
	}

	if width <= 0 || height <= 0 {
		err := errors.Errorf("starfield: unusable surface %.0fx%.0f", width, height)
		log.Print(err)
		m.disabled = true
		m.emit(EventError, err)
		return m
	}

	m.tier = ClassifyTier(CurrentProbe())
	m.applyTier()
	m.fill()
	m.emit(EventInitialized, nil)
	return m
}

// applyTier adjusts density and effects for the detected class.
func (m *Manager) applyTier() {
	switch m.tier {
	case TierLow:
		m.cfg.StarCount /= 3
		m.cfg.Glow = false
		if m.cfg.ThrottleHz > 0 {
			m.limiter = rate.NewLimiter(rate.Limit(m.cfg.ThrottleHz), 1)
		}
	case TierMedium:
		m.cfg.StarCount = m.cfg.StarCount * 2 / 3
		m.limiter = nil
	default:
		m.limiter = nil
	}
}

// fill brings the field up to the configured count, reusing pooled stars
// before allocating.
func (m *Manager) fill() {
	for len(m.stars) < m.cfg.StarCount {
		s := m.acquire()
		s.respawn(m.rng)
		// Scatter initial distance so the field doesn't start as a point.
		s.dist = m.rng.Float64() * m.maxDist()
		m.stars = append(m.stars, s)
	}
	for len(m.stars) > m.cfg.StarCount {
		last := len(m.stars) - 1
		m.release(m.stars[last])
		m.stars = m.stars[:last]
	}
}

func (m *Manager) acquire() *star {
	if n := len(m.free); n > 0 {
		s := m.free[n-1]
		m.free = m.free[:n-1]
		return s
	}
	return &star{}
}

func (m *Manager) release(s *star) {
	m.free = append(m.free, s)
}

func (m *Manager) maxDist() float64 {
	return math.Hypot(m.width, m.height) / 2
}

func (m *Manager) emit(ev Event, err error) {
	if m.listener != nil {
		m.listener(ev, err)
	}
}

// Start begins (or restarts) the animation.
func (m *Manager) Start() {
	if m.disabled || m.done {
		return
	}
	m.running = true
	m.paused = false
}

// Stop halts the animation entirely; Start is required to resume.
func (m *Manager) Stop() {
	m.running = false
}

// Pause freezes the field in place.
func (m *Manager) Pause() {
	m.paused = true
}

// Resume continues after a pause.
func (m *Manager) Resume() {
	m.paused = false
}

// Boost temporarily raises the drift speed (warp effect).
func (m *Manager) Boost() {
	m.boosted = true
}

// Unboost restores the normal drift speed.
func (m *Manager) Unboost() {
	m.boosted = false
}

// Running reports whether Step currently advances the field.
func (m *Manager) Running() bool {
	return m.running && !m.paused && !m.disabled && !m.done
}

// Boosted reports whether the warp speed multiplier is active.
func (m *Manager) Boosted() bool {
	return m.boosted
}

// Tier returns the active performance class.
func (m *Manager) Tier() Tier {
	return m.tier
}

// StarCount returns the live field size.
func (m *Manager) StarCount() int {
	return len(m.stars)
}

// Resize adapts the field to a new surface size.
func (m *Manager) Resize(width, height float64) {
	if m.disabled || m.done {
		return
	}
	if width <= 0 || height <= 0 {
		return
	}
	if width == m.width && height == m.height {
		return
	}
	m.width = width
	m.height = height
	m.emit(EventResized, nil)
}

// Destroy releases the field and emits the final notification. The manager
// is inert afterwards.
func (m *Manager) Destroy() {
	if m.done {
		return
	}
	m.done = true
	m.running = false
	m.stars = nil
	m.free = nil
	m.emit(EventDestroyed, nil)
}

// SpeedScale returns the effective speed multiplier for this step.
func (m *Manager) SpeedScale() float64 {
	scale := m.cfg.BaseSpeed
	if m.boosted {
		scale *= m.cfg.BoostFactor
	}
	return scale
}

// Step advances the field by dt seconds. A stopped, paused, disabled, or
// destroyed manager ignores the call; on a throttled low-tier device steps
// beyond the budget are skipped.
func (m *Manager) Step(dt float64) {
	if !m.Running() {
		return
	}
	if m.limiter != nil && !m.limiter.Allow() {
		return
	}

	m.measure(dt)

	maxDist := m.maxDist()
	scale := m.SpeedScale()
	for _, s := range m.stars {
		if s.advance(dt, scale, maxDist) {
			// Out of bounds: recycle in place back to the origin depth.
			s.respawn(m.rng)
		}
	}
}

// measure watches the observed frame rate and downgrades the tier after
// sustained slowness. Only one downgrade step per strike window.
func (m *Manager) measure(dt float64) {
	if m.tier == TierLow || dt <= 0 {
		return
	}
	m.fpsWindow += dt
	m.fpsFrames++
	if m.fpsWindow < 2.0 {
		return
	}

	fps := float64(m.fpsFrames) / m.fpsWindow
	m.fpsWindow = 0
	m.fpsFrames = 0

	if fps < 30 {
		m.slowStrikes++
	} else {
		m.slowStrikes = 0
	}
	if m.slowStrikes >= 2 {
		m.slowStrikes = 0
		m.tier--
		m.applyTier()
		m.fill()
		log.Printf("starfield: downgraded to %s tier (%.0f fps)", m.tier, fps)
		m.emit(EventTierChanged, nil)
	}
}

// Draw renders the field centered on the surface.
func (m *Manager) Draw(screen *ebiten.Image) {
	if m.disabled || m.done {
		return
	}

	cx := m.width / 2
	cy := m.height / 2
	for _, s := range m.stars {
		x, y := s.position()
		sx := float32(cx + x)
		sy := float32(cy + y)
		size := float32(s.size * (0.5 + s.depth*2))
		alpha := uint8(80 + 175*s.depth)

		if m.cfg.Glow {
			vector.DrawFilledCircle(screen, sx, sy, size*2.5,
				color.NRGBA{R: 140, G: 170, B: 255, A: alpha / 5}, true)
		}
		vector.DrawFilledCircle(screen, sx, sy, size,
			color.NRGBA{R: 230, G: 235, B: 255, A: alpha}, true)

		// Boosted stars streak toward the edge.
		if m.boosted && s.dist > 20 {
			tx := float32(cx + x*0.92)
			ty := float32(cy + y*0.92)
			vector.StrokeLine(screen, tx, ty, sx, sy, size,
				color.NRGBA{R: 200, G: 215, B: 255, A: alpha / 2}, true)
		}
	}
}
