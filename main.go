package main

import (
	"context"
	"os"
	"os/signal"
	"pixelate/internal/adapters/codec"
	"pixelate/internal/adapters/handler"
	"pixelate/internal/adapters/resampler"
	"pixelate/internal/core/service"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)

	cli := handler.NewCLI(newTransformer, os.Stdout, os.Stderr)
	code := cli.Run(ctx, os.Args[1:])

	cancel()
	os.Exit(code)
}

func newTransformer(settings handler.Settings) service.Transformer {
	imagingCodec := codec.NewImagingCodec(
		codec.WithJPEGQuality(settings.JPEGQuality),
		codec.WithAutoOrientation(settings.AutoOrient),
	)

	return service.NewPixelator(imagingCodec, resampler.NewNearest(),
		service.WithDefaultWidth(settings.DefaultWidth),
		service.WithSuffix(settings.Suffix))
}
