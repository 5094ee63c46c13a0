package domain

import "fmt"

// DefaultWidth is the grid width used when neither dimension is requested.
const DefaultWidth = 32

// MaxPixels caps the pixel count of the grid and of the enlarged output.
const MaxPixels = 1 << 28

// DefaultSuffix is inserted before the extension of a derived output path.
const DefaultSuffix = "_pixelated"

type Dimensions struct {
	Width  int
	Height int
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// Scale returns the dimensions multiplied by factor on both axes.
func (d Dimensions) Scale(factor int) Dimensions {
	return Dimensions{Width: d.Width * factor, Height: d.Height * factor}
}

// Fits reports whether d scaled by factor stays positive and within MaxPixels. The check is done without
// multiplying first, so huge sides or factors cannot wrap around.
func (d Dimensions) Fits(factor int) bool {
	if d.Empty() || factor < 1 {
		return false
	}

	if d.Width > MaxPixels/factor || d.Height > MaxPixels/factor {
		return false
	}

	width, height := d.Width*factor, d.Height*factor
	return width <= MaxPixels/height
}

// Empty reports whether either side is not positive.
func (d Dimensions) Empty() bool {
	return d.Width <= 0 || d.Height <= 0
}

// Request describes one pixelation run. Nil Width/Height and an empty
// OutputPath mean the value is derived.
type Request struct {
	InputPath  string
	OutputPath string
	Width      *int
	Height     *int
	Scale      int
}
