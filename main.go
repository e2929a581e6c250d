package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"vecmath/host"
	"vecmath/internal/buildinfo"
)

func main() {
	cfg := host.DefaultConfig()
	var speed float64
	var version bool
	flag.BoolVar(&cfg.Headless, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", cfg.Hz, "Tick rate.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks (0 = run forever).")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "Framebuffer width in pixels.")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "Framebuffer height in pixels.")
	flag.IntVar(&cfg.Scale, "scale", cfg.Scale, "Window pixels per framebuffer pixel.")
	flag.Float64Var(&speed, "speed", float64(cfg.Speed), "Spin speed in radians per second.")
	flag.BoolVar(&cfg.Wireframe, "wireframe", false, "Draw triangle edges only.")
	flag.StringVar(&cfg.Out, "out", "", "Write the last headless frame to this PNG file.")
	flag.BoolVar(&version, "version", false, "Print version and exit.")
	flag.Parse()
	cfg.Speed = float32(speed)

	if version {
		fmt.Println(buildinfo.Long())
		return
	}

	log := host.WriterLogger{W: os.Stderr}

	if cfg.Headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := host.RunHeadless(ctx, cfg, log); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := host.RunWindow(cfg, log); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
