package port

import "image"

type Resampler interface {
	// Resample returns img resized to exactly width x height pixels without interpolation, so every destination
	// pixel is a copy of one source pixel.
	Resample(img image.Image, width, height int) image.Image
}
