package game

// EntityState is the lifecycle state shared by all simulated entities.
// Transition logic lives in each entity's Update method; the per-frame
// compaction passes only look at StateDead.
type EntityState int

const (
	StateSpawning   EntityState = iota // Just created, not yet interactive
	StateActive                        // Normal behavior
	StateAggressive                    // Enemy only: provoked after the first hit
	StateExploding                     // Playing the explosion animation
	StateDead                          // Finished, remove from the owning list
)

// String returns a short name for debugging output.
func (s EntityState) String() string {
	switch s {
	case StateSpawning:
		return "spawning"
	case StateActive:
		return "active"
	case StateAggressive:
		return "aggressive"
	case StateExploding:
		return "exploding"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Alive reports whether the entity still participates in collisions.
func (s EntityState) Alive() bool {
	return s == StateActive || s == StateAggressive
}
