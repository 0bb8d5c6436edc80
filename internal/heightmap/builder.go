package heightmap

import (
	"errors"
	"fmt"
	"image"
	gomath "math"

	"golang.org/x/image/draw"
)

// Builder errors.
var (
	ErrInvalidResolution = errors.New("invalid resolution")
	ErrNilImage          = errors.New("nil or empty image")
)

// Luminance weights (ITU-R BT.601).
const (
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114
)

// Build resamples img onto a targetWidth x targetHeight canvas under mode and
// converts it to luminance. Canvas area the image does not cover stays white,
// which maps to the thinnest wall.
func Build(img image.Image, targetWidth, targetHeight int, mode AdjustmentMode) (*HeightMap, error) {
	if targetWidth < 1 || targetHeight < 1 {
		return nil, fmt.Errorf("%w: target raster %dx%d must be at least 1x1", ErrInvalidResolution, targetWidth, targetHeight)
	}
	if img == nil || img.Bounds().Empty() {
		return nil, ErrNilImage
	}

	canvas := image.NewRGBA(image.Rect(0, 0, targetWidth, targetHeight))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)

	switch mode {
	case Stretch:
		draw.BiLinear.Scale(canvas, canvas.Bounds(), img, img.Bounds(), draw.Over, nil)
	case Fit:
		draw.BiLinear.Scale(canvas, fitRect(img.Bounds(), targetWidth, targetHeight), img, img.Bounds(), draw.Over, nil)
	case Cover:
		draw.BiLinear.Scale(canvas, canvas.Bounds(), img, coverRect(img.Bounds(), targetWidth, targetHeight), draw.Over, nil)
	case Tile:
		tile(canvas, img)
	default:
		return nil, fmt.Errorf("unsupported adjustment mode %v", mode)
	}

	return luminance(canvas), nil
}

// fitRect returns the letterboxed destination rectangle that keeps the source
// aspect ratio with the image fully visible.
func fitRect(src image.Rectangle, tw, th int) image.Rectangle {
	imgRatio := float64(src.Dx()) / float64(src.Dy())
	targetRatio := float64(tw) / float64(th)

	if imgRatio > targetRatio {
		h := max(1, int(gomath.Round(float64(tw)/imgRatio)))
		y := (th - h) / 2
		return image.Rect(0, y, tw, y+h)
	}
	w := max(1, int(gomath.Round(float64(th)*imgRatio)))
	x := (tw - w) / 2
	return image.Rect(x, 0, x+w, th)
}

// coverRect returns the centered source crop matching the target aspect ratio.
func coverRect(src image.Rectangle, tw, th int) image.Rectangle {
	iw, ih := src.Dx(), src.Dy()
	imgRatio := float64(iw) / float64(ih)
	targetRatio := float64(tw) / float64(th)

	if imgRatio > targetRatio {
		cw := max(1, int(gomath.Round(float64(ih)*targetRatio)))
		x := src.Min.X + (iw-cw)/2
		return image.Rect(x, src.Min.Y, x+cw, src.Max.Y)
	}
	ch := max(1, int(gomath.Round(float64(iw)/targetRatio)))
	y := src.Min.Y + (ih-ch)/2
	return image.Rect(src.Min.X, y, src.Max.X, y+ch)
}

// tile repeats img at native scale from the canvas origin, clipped to bounds.
func tile(canvas *image.RGBA, img image.Image) {
	b := img.Bounds()
	iw, ih := b.Dx(), b.Dy()
	cw, ch := canvas.Bounds().Dx(), canvas.Bounds().Dy()
	cols := (cw + iw - 1) / iw
	rows := (ch + ih - 1) / ih

	for ty := 0; ty < rows; ty++ {
		for tx := 0; tx < cols; tx++ {
			r := image.Rect(tx*iw, ty*ih, (tx+1)*iw, (ty+1)*ih)
			draw.Draw(canvas, r, img, b.Min, draw.Over)
		}
	}
}

func luminance(canvas *image.RGBA) *HeightMap {
	w, h := canvas.Bounds().Dx(), canvas.Bounds().Dy()
	hm := New(w, h)
	for y := 0; y < h; y++ {
		off := y * canvas.Stride
		for x := 0; x < w; x++ {
			i := off + x*4
			l := lumaR*float64(canvas.Pix[i]) + lumaG*float64(canvas.Pix[i+1]) + lumaB*float64(canvas.Pix[i+2])
			hm.Samples[y*w+x] = uint8(min(255, gomath.Round(l)))
		}
	}
	return hm
}
