package heightmap

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes the brightness distribution of a height map.
type Stats struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Summarize computes brightness statistics. An empty map yields zero stats.
func (h *HeightMap) Summarize() Stats {
	if len(h.Samples) == 0 {
		return Stats{}
	}
	values := make([]float64, len(h.Samples))
	for i, s := range h.Samples {
		values[i] = float64(s)
	}
	mean, std := stat.MeanStdDev(values, nil)
	if len(values) == 1 {
		std = 0
	}
	return Stats{
		Mean:   mean,
		StdDev: std,
		Min:    floats.Min(values),
		Max:    floats.Max(values),
	}
}
