package service

import (
	"context"
	"errors"
	"fmt"
	"pixelate/internal/core/domain"
	"pixelate/internal/core/port"

	"github.com/rs/zerolog"
)

type Transformer interface {
	Pixelate(ctx context.Context, req domain.Request) (string, error)
}

type Pixelator struct {
	codec        port.ImageCodec
	resampler    port.Resampler
	defaultWidth int
	suffix       string
}

type Option func(*Pixelator)

// WithDefaultWidth overrides the grid width used when no dimension is requested.
func WithDefaultWidth(width int) Option {
	return func(p *Pixelator) {
		p.defaultWidth = width
	}
}

// WithSuffix overrides the token inserted into derived output paths.
func WithSuffix(suffix string) Option {
	return func(p *Pixelator) {
		p.suffix = suffix
	}
}

func NewPixelator(codec port.ImageCodec, resampler port.Resampler, opts ...Option) *Pixelator {
	p := &Pixelator{
		codec:        codec,
		resampler:    resampler,
		defaultWidth: domain.DefaultWidth,
		suffix:       domain.DefaultSuffix,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Pixelate shrinks the input image to a grid of nearest-neighbour samples, enlarges every cell to a
// Scale x Scale block and writes the result. It returns the path that was written.
func (p *Pixelator) Pixelate(ctx context.Context, req domain.Request) (string, error) {
	l := zerolog.Ctx(ctx).With().Str("input", req.InputPath).Logger()

	if err := req.Validate(); err != nil {
		l.Debug().Err(err).Msg("rejected request")
		return "", err
	}

	src, err := p.codec.Load(ctx, req.InputPath)
	if err != nil {
		err = &domain.LoadError{Path: req.InputPath, Err: err}
		l.Debug().Err(err).Send()
		return "", err
	}

	bounds := src.Bounds()
	orig := domain.Dimensions{Width: bounds.Dx(), Height: bounds.Dy()}
	if orig.Empty() {
		err = &domain.LoadError{Path: req.InputPath, Err: errors.New("image has no pixels")}
		l.Debug().Err(err).Send()
		return "", err
	}

	grid := domain.ResolveDimensions(orig, req.Width, req.Height, p.defaultWidth)
	if grid.Empty() {
		err = &domain.ValidationError{
			Field:  "grid size",
			Reason: fmt.Sprintf("resolved to %s for a %s image", grid, orig),
		}
		l.Debug().Err(err).Send()
		return "", err
	}

	if !grid.Fits(req.Scale) {
		err = &domain.ValidationError{
			Field:  "output size",
			Reason: fmt.Sprintf("grid %s at %d pixels per pixel exceeds %d pixels", grid, req.Scale, domain.MaxPixels),
		}
		l.Debug().Err(err).Send()
		return "", err
	}

	outputPath := domain.OutputPath(req.InputPath, req.OutputPath, p.suffix)
	if req.OutputPath == "" && outputPath == req.InputPath {
		err = &domain.ValidationError{Field: "output path", Reason: "derived path would overwrite the input"}
		l.Debug().Err(err).Send()
		return "", err
	}

	l.Debug().Stringer("source", orig).Stringer("grid", grid).Int("scale", req.Scale).Msg("resolved dimensions")

	if err := ctx.Err(); err != nil {
		return "", err
	}

	pixelated := p.resampler.Resample(src, grid.Width, grid.Height)

	final := grid.Scale(req.Scale)
	if req.Scale > 1 {
		pixelated = p.resampler.Resample(pixelated, final.Width, final.Height)
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	err = p.codec.Save(ctx, pixelated, outputPath)
	if err != nil {
		err = &domain.SaveError{Path: outputPath, Err: err}
		l.Debug().Err(err).Send()
		return "", err
	}

	l.Info().Str("output", outputPath).Stringer("size", final).Msg("pixelated image saved")

	return outputPath, nil
}
