package host

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every Config validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config controls both host runners.
type Config struct {
	Width  int
	Height int
	Scale  int // window pixels per framebuffer pixel

	Hz    int
	Ticks uint64 // stop after N ticks (0 = run forever)

	Speed     float32 // spin speed in radians per second
	Wireframe bool

	Headless bool
	Out      string // PNG path for the last headless frame
}

// DefaultConfig mirrors the flag defaults.
func DefaultConfig() Config {
	return Config{
		Width:  320,
		Height: 240,
		Scale:  2,
		Hz:     60,
		Speed:  1,
	}
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.Width > 4096 || c.Height > 4096 {
		return fmt.Errorf("%w: size %dx%d exceeds 4096", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("%w: scale %d", ErrInvalidConfig, c.Scale)
	}
	if c.Hz <= 0 {
		return fmt.Errorf("%w: hz %d", ErrInvalidConfig, c.Hz)
	}
	return nil
}
