package host

import (
	"context"
	"fmt"
	"image/png"
	"os"
	"time"
)

// RunHeadless runs the demo without opening a window.
//
// With Ticks > 0 it stops after that many ticks; otherwise it runs until ctx
// is done. If Out is set the last frame is written there as PNG.
func RunHeadless(ctx context.Context, cfg Config, log Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	s := NewScene(cfg)

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("%w: hz %d too high", ErrInvalidConfig, cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	logf(log, "headless %dx%d @%dHz", cfg.Width, cfg.Height, cfg.Hz)
	for {
		select {
		case <-ctx.Done():
			if err := writeFrame(cfg.Out, s, log); err != nil {
				return err
			}
			return ctx.Err()
		case <-t.C:
			if err := s.Step(); err != nil {
				return err
			}
			if cfg.Ticks > 0 && s.Tick() >= cfg.Ticks {
				return writeFrame(cfg.Out, s, log)
			}
		}
	}
}

func writeFrame(path string, s *Scene, log Logger) error {
	if path == "" || s.Tick() == 0 {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create frame: %w", err)
	}
	if err := png.Encode(f, s.Frame()); err != nil {
		f.Close()
		return fmt.Errorf("encode frame: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close frame: %w", err)
	}
	logf(log, "wrote %s (tick %d)", path, s.Tick())
	return nil
}
