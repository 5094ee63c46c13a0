package handler

import (
	"errors"
	"fmt"
	"pixelate/internal/adapters/codec"
	"pixelate/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Settings holds everything that can be configured outside of the per-image flags.
type Settings struct {
	LogLevel     string
	DefaultWidth int
	Suffix       string
	JPEGQuality  int
	AutoOrient   bool
}

const defaultLogLevel = "warn"

func loadSettings(flags *pflag.FlagSet) (Settings, error) {
	v := viper.New()

	v.SetDefault("log.level", defaultLogLevel)
	v.SetDefault("pixelate.default_width", domain.DefaultWidth)
	v.SetDefault("output.suffix", domain.DefaultSuffix)
	v.SetDefault("output.jpeg_quality", codec.DefaultJPEGQuality)
	v.SetDefault("input.auto_orient", false)

	if err := v.BindPFlag("log.level", flags.Lookup("log-level")); err != nil {
		return Settings{}, fmt.Errorf("could not bind log level flag: %w", err)
	}

	configFile, err := flags.GetString("config")
	if err != nil {
		return Settings{}, err
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("pixelate")
		v.SetConfigType("toml")
	}

	err = v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("could not read config file: %w", err)
		}
	}

	settings := Settings{
		LogLevel:     v.GetString("log.level"),
		DefaultWidth: v.GetInt("pixelate.default_width"),
		Suffix:       v.GetString("output.suffix"),
		JPEGQuality:  v.GetInt("output.jpeg_quality"),
		AutoOrient:   v.GetBool("input.auto_orient"),
	}

	if settings.DefaultWidth < 1 || settings.DefaultWidth > domain.MaxPixels {
		return Settings{}, fmt.Errorf("pixelate.default_width must be between 1 and %d", domain.MaxPixels)
	}

	if settings.Suffix == "" {
		return Settings{}, errors.New("output.suffix must not be empty")
	}

	return settings, nil
}

func parseLogLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}
