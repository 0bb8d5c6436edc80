package heightmap

import (
	"fmt"
	"strings"
)

// AdjustmentMode controls how a source image is fitted onto the target raster.
type AdjustmentMode int

const (
	// Stretch scales the image to the target size, ignoring aspect ratio.
	Stretch AdjustmentMode = iota
	// Fit keeps the whole image visible and pads the remainder with white.
	Fit
	// Cover crops the image to the target aspect ratio, centered.
	Cover
	// Tile repeats the image at native scale from the top-left corner.
	Tile
)

var modeNames = [...]string{
	Stretch: "stretch",
	Fit:     "fit",
	Cover:   "cover",
	Tile:    "tile",
}

// String returns the lowercase mode name.
func (m AdjustmentMode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("AdjustmentMode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode parses a mode name case-insensitively.
func ParseMode(s string) (AdjustmentMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range modeNames {
		if name == s {
			return AdjustmentMode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown adjustment mode %q (want stretch, fit, cover or tile)", s)
}
