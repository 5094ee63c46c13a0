package port

import (
	"context"
	"image"
)

type ImageCodec interface {
	// Load opens and decodes the image stored at path.
	Load(ctx context.Context, path string) (image.Image, error)
	// Save encodes img into the format implied by the extension of path and writes it there.
	Save(ctx context.Context, img image.Image, path string) error
}
