package codec

import (
	"context"
	"fmt"
	"image"

	// Registers the WebP decoder with image.Decode, which imaging.Open relies on.
	_ "golang.org/x/image/webp"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"
)

const DefaultJPEGQuality = 95

type ImagingCodec struct {
	jpegQuality int
	autoOrient  bool
}

type Option func(*ImagingCodec)

// WithJPEGQuality sets the quality used when the output is a JPEG file. Values outside 1-100 are clamped by
// the encoder.
func WithJPEGQuality(quality int) Option {
	return func(c *ImagingCodec) {
		c.jpegQuality = quality
	}
}

// WithAutoOrientation rotates decoded images according to their EXIF orientation tag.
func WithAutoOrientation(enabled bool) Option {
	return func(c *ImagingCodec) {
		c.autoOrient = enabled
	}
}

func NewImagingCodec(opts ...Option) *ImagingCodec {
	c := &ImagingCodec{jpegQuality: DefaultJPEGQuality}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *ImagingCodec) Load(ctx context.Context, path string) (image.Image, error) {
	l := zerolog.Ctx(ctx).With().Str("path", path).Logger()

	img, err := imaging.Open(path, imaging.AutoOrientation(c.autoOrient))
	if err != nil {
		l.Debug().Err(err).Msg("decode failed")
		return nil, err
	}

	l.Debug().Int("width", img.Bounds().Dx()).Int("height", img.Bounds().Dy()).Msg("decoded image")

	return img, nil
}

func (c *ImagingCodec) Save(ctx context.Context, img image.Image, path string) error {
	l := zerolog.Ctx(ctx).With().Str("path", path).Logger()

	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		l.Debug().Err(err).Msg("no encoder for extension")
		return fmt.Errorf("output format: %w", err)
	}

	err = imaging.Save(img, path, imaging.JPEGQuality(c.jpegQuality))
	if err != nil {
		l.Debug().Err(err).Str("format", format.String()).Msg("encode failed")
		return err
	}

	l.Debug().Str("format", format.String()).Msg("encoded image")

	return nil
}
