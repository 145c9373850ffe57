package main

import (
	"fmt"
	"io"
	"math"
	"time"

	"go-simpler.org/env"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wippyai/webidl-runtime/errors"
)

// config is loaded from the environment.
type config struct {
	LogLevel      string `env:"IDLPROBE_LOG_LEVEL" default:"warn" usage:"zap log level (debug, info, warn, error)"`
	Color         string `env:"IDLPROBE_COLOR" default:"auto" usage:"colour output: auto, always or never"`
	MaxAlloc      int64  `env:"IDLPROBE_MAX_ALLOC" default:"67108864" usage:"largest buffer copy in bytes, 0 for no limit"`
	EvalTimeoutMS int    `env:"IDLPROBE_EVAL_TIMEOUT_MS" default:"2000" usage:"abort script evaluation after this many milliseconds"`
	HexWidth      int    `env:"IDLPROBE_HEX_WIDTH" default:"16" usage:"bytes per hexdump line"`
}

func loadConfig() (*config, error) {
	c := &config{}
	if err := env.Load(c, nil); err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "load environment")
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *config) validate() error {
	if c.MaxAlloc < 0 || c.MaxAlloc > math.MaxUint32 {
		return errors.InvalidInput(errors.PhaseConfig, fmt.Sprintf("IDLPROBE_MAX_ALLOC %d out of range", c.MaxAlloc))
	}
	switch c.Color {
	case "auto", "always", "never":
	default:
		return errors.InvalidInput(errors.PhaseConfig, fmt.Sprintf("IDLPROBE_COLOR %q must be auto, always or never", c.Color))
	}
	if c.HexWidth <= 0 {
		c.HexWidth = 16
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "IDLPROBE_LOG_LEVEL")
	}
	return nil
}

func (c *config) evalTimeout() time.Duration {
	return time.Duration(c.EvalTimeoutMS) * time.Millisecond
}

func (c *config) logger() (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.OutputPaths = []string{"stderr"}
	return zc.Build()
}

func printUsage(c *config, w io.Writer) {
	fmt.Fprintln(w, "\nenvironment variables:")
	env.Usage(c, w, nil)
}
