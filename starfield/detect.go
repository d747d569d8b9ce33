package starfield

import (
	"os"
	"runtime"
)

// Tier is the detected device performance class. It decides the star count,
// whether glow is drawn, and whether updates are throttled.
type Tier int

const (
	TierLow Tier = iota
	TierMedium
	TierHigh
)

// String returns a short name for logging.
func (t Tier) String() string {
	switch t {
	case TierLow:
		return "low"
	case TierMedium:
		return "medium"
	default:
		return "high"
	}
}

// Probe carries the raw capability signals fed to the classifier. Keeping it
// a plain struct lets tests classify synthetic devices.
type Probe struct {
	// Cores is the logical CPU count.
	Cores int

	// RefreshRate is the display refresh rate in Hz; 0 means unknown.
	RefreshRate float64

	// Override is the LUMARA_STARFIELD_TIER value, if set.
	Override string
}

// CurrentProbe samples the running machine.
func CurrentProbe() Probe {
	return Probe{
		Cores:    runtime.NumCPU(),
		Override: os.Getenv("LUMARA_STARFIELD_TIER"),
	}
}

// ClassifyTier maps a probe to a tier. The override wins; otherwise few
// cores or a slow display push the device down a class.
func ClassifyTier(p Probe) Tier {
	switch p.Override {
	case "low":
		return TierLow
	case "medium":
		return TierMedium
	case "high":
		return TierHigh
	}

	if p.Cores > 0 && p.Cores <= 2 {
		return TierLow
	}
	if p.RefreshRate > 0 && p.RefreshRate < 50 {
		return TierLow
	}
	if p.Cores > 0 && p.Cores <= 4 {
		return TierMedium
	}
	return TierHigh
}
