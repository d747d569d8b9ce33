package game

// Mode represents the current phase of a game session.
type Mode int

const (
	ModeTitle    Mode = iota // Title screen, simulation idle
	ModePlaying              // Active gameplay
	ModePaused               // Frozen mid-round
	ModeGameOver             // Round ended, show restart prompt
)

// State holds the shared mutable counters for a round. It is the single
// owner of score, lives, and the difficulty ramp; update code reads and
// writes it through this struct instead of scattered module-level bindings.
type State struct {
	Mode  Mode
	Score int
	Lives int
	Frame int

	// GameSpeed is the global speed multiplier applied to enemy and
	// projectile movement. Ramped up by the difficulty thresholds.
	GameSpeed float64

	// NextThreshold is the score at which the next speed ramp fires.
	NextThreshold int
}

// NewState creates the counters for a fresh session.
func NewState(cfg Config) *State {
	s := &State{}
	s.Reset(cfg)
	s.Mode = ModeTitle
	return s
}

// Reset zeroes all counters, returning the state to its title-screen values.
func (s *State) Reset(cfg Config) {
	s.Mode = ModeTitle
	s.Score = 0
	s.Lives = cfg.InitialLives
	s.Frame = 0
	s.GameSpeed = cfg.BaseGameSpeed
	s.NextThreshold = cfg.DifficultyThreshold
}

// ApplyDifficultyRamp increases the game speed once for every threshold the
// score has crossed and advances the threshold by the configured step. The
// trigger is monotonic: a given threshold fires exactly once.
func (s *State) ApplyDifficultyRamp(cfg Config) bool {
	ramped := false
	for s.Score >= s.NextThreshold {
		s.GameSpeed += cfg.SpeedIncrement
		s.NextThreshold += cfg.ThresholdStep
		ramped = true
	}
	return ramped
}
