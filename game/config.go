package game

import (
	"os"
	"strconv"
)

// Config holds the tunable constants for a game session.
type Config struct {
	// ScreenWidth is the logical canvas width in pixels
	ScreenWidth int

	// ScreenHeight is the logical canvas height in pixels
	ScreenHeight int

	// InitialLives is the number of lives at the start of a round
	InitialLives int

	// BaseGameSpeed is the global speed multiplier at score 0
	BaseGameSpeed float64

	// SpeedIncrement is added to the game speed at each difficulty threshold
	SpeedIncrement float64

	// DifficultyThreshold is the first score at which the speed ramps up
	DifficultyThreshold int

	// ThresholdStep is added to the threshold after each ramp
	ThresholdStep int

	// EnemySpawnInterval is the number of ticks between enemy spawns
	EnemySpawnInterval int

	// EnemyReward is the score awarded for destroying an enemy
	EnemyReward int

	// ExplosionFrames is how many ticks an explosion animation lasts
	ExplosionFrames int

	// PlayerSize is the player's square sprite size in pixels
	PlayerSize float64

	// PlayerSpeed is the player's movement speed in pixels per tick
	PlayerSpeed float64

	// FireCooldown is the minimum number of ticks between player shots
	FireCooldown int

	// InvulnerableFrames is the post-hit grace period in ticks
	InvulnerableFrames int

	// GameOverDelay is the pause between the death animation finishing
	// and the game-over screen, in ticks
	GameOverDelay int

	// DayNightSpeed is the per-tick increment of the sky cycle angle in degrees
	DayNightSpeed float64

	// FlashChance is the per-tick probability of a full-screen sky flash
	FlashChance float64

	// FlashFrames is how long a sky flash takes to decay, in ticks
	FlashFrames int

	// SmokePoolSize is the initial size of the smoke particle pool.
	// The pool may lazily grow up to twice this size.
	SmokePoolSize int

	// BackdropStars is the number of decorative background stars
	BackdropStars int

	// ShootingStarInterval is the number of ticks between shooting stars
	ShootingStarInterval int
}

// DefaultConfig returns the standard configuration. The values follow the
// legacy standalone build of the game: 800x600 canvas, 3 lives, 48px ship.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:          800,
		ScreenHeight:         600,
		InitialLives:         3,
		BaseGameSpeed:        1.0,
		SpeedIncrement:       0.2,
		DifficultyThreshold:  50,
		ThresholdStep:        50,
		EnemySpawnInterval:   90,
		EnemyReward:          10,
		ExplosionFrames:      30,
		PlayerSize:           48,
		PlayerSpeed:          4.0,
		FireCooldown:         12,
		InvulnerableFrames:   60,
		GameOverDelay:        60,
		DayNightSpeed:        0.05,
		FlashChance:          0.0005,
		FlashFrames:          20,
		SmokePoolSize:        50,
		BackdropStars:        80,
		ShootingStarInterval: 240,
	}
}

// ConfigFromEnv returns the default configuration with environment variable
// overrides applied. Environment variables take precedence over defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if w := getEnvInt("LUMARA_WIDTH", 0); w > 0 {
		cfg.ScreenWidth = w
	}
	if h := getEnvInt("LUMARA_HEIGHT", 0); h > 0 {
		cfg.ScreenHeight = h
	}
	if lives := getEnvInt("LUMARA_LIVES", 0); lives > 0 {
		cfg.InitialLives = lives
	}
	if stars := getEnvInt("LUMARA_BACKDROP_STARS", 0); stars > 0 {
		cfg.BackdropStars = stars
	}
	if pool := getEnvInt("LUMARA_SMOKE_POOL", 0); pool > 0 {
		cfg.SmokePoolSize = pool
	}
	if speed := getEnvFloat("LUMARA_GAME_SPEED", 0); speed > 0 {
		cfg.BaseGameSpeed = speed
	}

	return cfg
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
