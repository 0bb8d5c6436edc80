package mesh

// Thickness maps a brightness sample to wall thickness.
// Black (0) yields maxThickness and white (255) yields minThickness; values in
// between interpolate linearly and never increase with brightness.
func Thickness(brightness uint8, minThickness, maxThickness float64) float64 {
	switch brightness {
	case 0:
		return maxThickness
	case 255:
		return minThickness
	}
	normalized := float64(brightness) / 255
	return minThickness + (1-normalized)*(maxThickness-minThickness)
}
