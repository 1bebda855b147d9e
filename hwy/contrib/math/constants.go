package math

// =============================================================================
// Constants for pi-scaled trigonometry
// =============================================================================

const (
	// piIntegral is the magnitude above which every float64 is an integer.
	piIntegral_f64 = 1 << 52

	// piQuarter splits the reduced argument between the sine and cosine
	// kernels, keeping each evaluation within [0, π/4].
	piQuarter_f64 = 0.25
	piHalf_f64    = 0.5
)
