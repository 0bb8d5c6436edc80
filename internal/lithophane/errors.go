package lithophane

import (
	"errors"

	"github.com/Faultbox/lithophane/internal/heightmap"
	"github.com/Faultbox/lithophane/internal/mesh"
)

// Generation errors. All are input validation failures; none are retryable.
var (
	ErrInvalidShapeType   = errors.New("invalid shape type")
	ErrInsufficientImages = errors.New("insufficient images")
	ErrInvalidDimensions  = mesh.ErrInvalidDimensions
	ErrInvalidResolution  = heightmap.ErrInvalidResolution
)
