package resampler

import (
	"image"

	"github.com/disintegration/imaging"
)

// Nearest resamples with the nearest-neighbour filter. Each destination pixel samples the source pixel under its
// centre, so integer upscales produce uniform square blocks.
type Nearest struct{}

func NewNearest() *Nearest {
	return &Nearest{}
}

func (n *Nearest) Resample(img image.Image, width, height int) image.Image {
	return imaging.Resize(img, width, height, imaging.NearestNeighbor)
}
