// Package heightmap resamples source images into grayscale brightness grids.
package heightmap

// HeightMap is a row-major grid of brightness samples (0 = black, 255 = white).
type HeightMap struct {
	Width   int
	Height  int
	Samples []uint8 // len = Width*Height
}

// New creates a height map filled with black.
func New(width, height int) *HeightMap {
	return &HeightMap{
		Width:   width,
		Height:  height,
		Samples: make([]uint8, width*height),
	}
}

// Uniform creates a height map with every sample set to v.
func Uniform(width, height int, v uint8) *HeightMap {
	h := New(width, height)
	for i := range h.Samples {
		h.Samples[i] = v
	}
	return h
}

// At returns the sample at column x, row y.
func (h *HeightMap) At(x, y int) uint8 {
	return h.Samples[y*h.Width+x]
}

// Set stores the sample at column x, row y.
func (h *HeightMap) Set(x, y int, v uint8) {
	h.Samples[y*h.Width+x] = v
}

// Valid reports whether the sample buffer matches the dimensions.
func (h *HeightMap) Valid() bool {
	return h != nil && h.Width > 0 && h.Height > 0 && len(h.Samples) == h.Width*h.Height
}
