package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"pixelate/internal/core/domain"
	"pixelate/internal/core/service"
	"strings"

	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

const usage = "usage: pixelate [flags] <input_path>\n\nPixelate an image with customizable dimensions and pixel size.\n\n"

// TransformerFactory builds the pixelation pipeline once the settings are known.
type TransformerFactory func(settings Settings) service.Transformer

type CLI struct {
	newTransformer TransformerFactory
	stdout         io.Writer
	stderr         io.Writer
}

func NewCLI(newTransformer TransformerFactory, stdout, stderr io.Writer) *CLI {
	return &CLI{newTransformer: newTransformer, stdout: stdout, stderr: stderr}
}

// Run executes one invocation with the given arguments, excluding the program name, and returns the exit code.
func (c *CLI) Run(ctx context.Context, args []string) int {
	flags := newFlagSet()

	err := flags.Parse(normalizeArgs(args))
	if errors.Is(err, pflag.ErrHelp) {
		fmt.Fprint(c.stdout, usage)
		fmt.Fprint(c.stdout, flags.FlagUsages())
		return 0
	}
	if err != nil {
		return c.fail(err)
	}

	if flags.NArg() != 1 {
		return c.fail(errors.New("expected exactly one input path"))
	}

	settings, err := loadSettings(flags)
	if err != nil {
		return c.fail(err)
	}

	runID, err := uuid.NewV4()
	if err != nil {
		return c.fail(fmt.Errorf("could not create run id: %w", err))
	}

	l := zerolog.New(zerolog.ConsoleWriter{Out: c.stderr}).
		Level(parseLogLevel(settings.LogLevel)).
		With().
		Timestamp().
		Str("runId", runID.String()).
		Logger()
	ctx = l.WithContext(ctx)

	req, err := buildRequest(flags)
	if err != nil {
		return c.fail(err)
	}

	l.Debug().Interface("settings", settings).Msg("starting")

	outputPath, err := c.newTransformer(settings).Pixelate(ctx, req)
	if err != nil {
		return c.fail(err)
	}

	fmt.Fprintf(c.stdout, "Pixelated image saved to: %s\n", outputPath)

	return 0
}

func (c *CLI) fail(err error) int {
	fmt.Fprintf(c.stderr, "Error: %v\n", err)
	return 1
}

func newFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("pixelate", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.SortFlags = false

	flags.StringP("output", "o", "", "Path to save the output image")
	flags.IntP("width", "w", 0, "Width of pixelated image in big pixels")
	flags.Int("height", 0, "Height of pixelated image in big pixels (short form: -ht)")
	flags.IntP("pixels-per-pixel", "p", 1, "Number of pixels for each big pixel in the output")
	flags.String("config", "", "Path to a TOML config file (default: ./pixelate.toml if present)")
	flags.String("log-level", defaultLogLevel, "Log level: debug, info, warn or error")

	return flags
}

// normalizeArgs rewrites the two letter -ht short form, which pflag cannot express, into --height.
func normalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))

	for i, arg := range args {
		if arg == "--" {
			return append(out, args[i:]...)
		}

		switch {
		case arg == "-ht":
			arg = "--height"
		case strings.HasPrefix(arg, "-ht="):
			arg = "--height=" + strings.TrimPrefix(arg, "-ht=")
		}

		out = append(out, arg)
	}

	return out
}

func buildRequest(flags *pflag.FlagSet) (domain.Request, error) {
	var req domain.Request
	var err error

	req.InputPath = flags.Arg(0)

	req.OutputPath, err = flags.GetString("output")
	if err != nil {
		return req, err
	}

	req.Scale, err = flags.GetInt("pixels-per-pixel")
	if err != nil {
		return req, err
	}

	if flags.Changed("width") {
		width, err := flags.GetInt("width")
		if err != nil {
			return req, err
		}
		req.Width = &width
	}

	if flags.Changed("height") {
		height, err := flags.GetInt("height")
		if err != nil {
			return req, err
		}
		req.Height = &height
	}

	return req, nil
}
