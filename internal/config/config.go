package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/koki-develop/imoji/internal/logger"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	terminal "github.com/wayneashleyberry/terminal-dimensions"
)

const EnvPrefix = "IMOJI"

var ErrInvalidBound = errors.New("bound must be a positive integer")

type Config struct {
	Input     string
	MaxWidth  int
	MaxHeight int
	Fit       bool
	Verbose   bool
}

// TermSize reports the terminal size in cells.
type TermSize func() (width, height int, err error)

func TerminalSize() (int, int, error) {
	w, err := terminal.Width()
	if err != nil {
		return 0, 0, err
	}
	h, err := terminal.Height()
	if err != nil {
		return 0, 0, err
	}
	return int(w), int(h), nil
}

// RegisterFlags adds the flags Load reads to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP("input", "i", "", "image file to be emojified (\"-\" for stdin)")
	fs.String("max-width", "", "restrict the output emoji grid to a certain width")
	fs.String("max-height", "", "restrict the output emoji grid to a certain height")
	fs.Bool("fit", false, "fit the output to the terminal size")
	fs.BoolP("verbose", "v", false, "log image dimensions to stderr")
}

// Load resolves the configuration. Positional args take precedence over
// flags, flags over IMOJI_* environment variables, and those over the
// terminal size used when fit is enabled.
func Load(fs *pflag.FlagSet, args []string, termSize TermSize) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	cfg := &Config{
		Input:   v.GetString("input"),
		Fit:     v.GetBool("fit"),
		Verbose: v.GetBool("verbose"),
	}

	bounds := []struct {
		key string
		dst *int
	}{
		{"max-width", &cfg.MaxWidth},
		{"max-height", &cfg.MaxHeight},
	}
	for _, b := range bounds {
		s := v.GetString(b.key)
		if s == "" {
			continue
		}
		n, err := parseBound(s)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", b.key, err)
		}
		*b.dst = n
	}
	for i, arg := range args {
		if i >= len(bounds) {
			return nil, fmt.Errorf("unexpected argument %q", arg)
		}
		n, err := parseBound(arg)
		if err != nil {
			return nil, err
		}
		*bounds[i].dst = n
	}

	if cfg.Input == "" {
		return nil, errors.New("required flag \"input\" not set")
	}

	if cfg.Fit && (cfg.MaxWidth == 0 || cfg.MaxHeight == 0) {
		if termSize == nil {
			termSize = TerminalSize
		}
		w, h, err := termSize()
		if err != nil {
			logger.Warn("failed to get terminal size, ignoring --fit: %v", err)
			return cfg, nil
		}
		// emoji take two cells
		if cfg.MaxWidth == 0 {
			cfg.MaxWidth = max(1, w/2)
		}
		if cfg.MaxHeight == 0 {
			cfg.MaxHeight = max(1, h-1)
		}
	}

	return cfg, nil
}

func parseBound(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidBound)
	}
	return n, nil
}
