package estimate

import "math"

// computeM1 derives Algorithm S's burn-in iteration count from network
// density, clamped to at least 1.
func computeM1(cfg Config, density float64, n int) int {
	raw := cfg.M1Steps * density * (1 - density) * float64(n*n) / float64(cfg.SamplerM)
	return clampAtLeastOne(round(raw))
}

// computeM derives Algorithm EE's inner iteration count from network
// density, clamped to at least 1.
func computeM(cfg Config, density float64, n int) int {
	raw := cfg.MSteps * density * (1 - density) * float64(n*n) / float64(cfg.SamplerM)
	return clampAtLeastOne(round(raw))
}

func round(x float64) int {
	return int(math.Round(x))
}

func clampAtLeastOne(x int) int {
	if x < 1 {
		return 1
	}
	return x
}
