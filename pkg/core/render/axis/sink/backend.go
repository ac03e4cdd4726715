package sink

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/matzehuels/timeaxis/pkg/core/render/axis"
)

// Backend is a drawing surface addressed in integer pixels.
type Backend interface {
	SetPixel(x, y int, c color.RGBA) error
}

// Draw rasterizes the axis onto b: a horizontal line at row y from Lo to Hi
// and a vertical tick of tickLength pixels below it at every tick position.
func Draw(b Backend, l axis.Layout, y, tickLength int, c color.RGBA) error {
	lo, hi := min(l.Lo, l.Hi), max(l.Lo, l.Hi)
	for x := lo; x <= hi; x++ {
		if err := b.SetPixel(x, y, c); err != nil {
			return err
		}
	}
	for _, t := range l.Ticks {
		for dy := 1; dy <= tickLength; dy++ {
			if err := b.SetPixel(t.Pos, y+dy, c); err != nil {
				return err
			}
		}
	}
	return nil
}

// ImageBackend draws onto an in-memory image.
type ImageBackend struct {
	Image *image.RGBA
}

func (b ImageBackend) SetPixel(x, y int, c color.RGBA) error {
	if !(image.Point{X: x, Y: y}).In(b.Image.Bounds()) {
		return fmt.Errorf("pixel (%d, %d) outside %v", x, y, b.Image.Bounds())
	}
	b.Image.SetRGBA(x, y, c)
	return nil
}

// maxRasterPixels bounds the image RenderPNG allocates.
const maxRasterPixels = 64 << 20

// RenderPNG rasterizes the axis without labels, for environments that have
// no SVG converter.
func RenderPNG(l axis.Layout, tickLength int, c color.RGBA) ([]byte, error) {
	lo, hi := min(l.Lo, l.Hi), max(l.Lo, l.Hi)
	for _, t := range l.Ticks {
		lo, hi = min(lo, t.Pos), max(hi, t.Pos)
	}
	w, h := int64(hi)-int64(lo)+1, int64(tickLength)+2
	if tickLength < 0 || w > maxRasterPixels || h > maxRasterPixels || w*h > maxRasterPixels {
		return nil, fmt.Errorf("raster of %dx%d pixels too large", w, h)
	}
	img := image.NewRGBA(image.Rect(lo, 0, hi+1, tickLength+2))
	if err := Draw(ImageBackend{Image: img}, l, 0, tickLength, c); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
