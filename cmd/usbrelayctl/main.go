// Command usbrelayctl exercises a USB relay board from the shell:
// discover candidate ports, identify the board and switch relays.
package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"github.com/hwkit/usbrelay"
)

func main() {
	var (
		scan    = flag.Bool("scan", false, "list candidate serial ports and exit")
		port    = flag.String("port", "/dev/ttyACM0", "serial port of the relay board")
		relays  = flag.Int("relays", 2, "relay count guess used until the board identifies itself")
		mask    = flag.Uint("set", 0, "relay bitmask to apply (bit 0 = relay 1)")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
	slog.SetDefault(logger)

	if *scan {
		for _, name := range usbrelay.Scan() {
			logger.Info("found port", "port", name)
		}
		return
	}

	c := usbrelay.New(*port, *relays)
	if err := c.Open(); err != nil {
		logger.Error("open failed", "port", *port, "err", err)
		os.Exit(1)
	}
	defer func() {
		if err := c.Close(); err != nil {
			logger.Error("close failed", "err", err)
		}
	}()

	variant, err := c.Init()
	if err != nil {
		logger.Error("handshake failed", "err", err)
		os.Exit(1)
	}
	if variant == usbrelay.VariantUnknown {
		logger.Warn("board did not identify itself, keeping relay count guess",
			"relays", c.RelayCount())
	} else {
		logger.Info("board identified", "variant", variant.String())
	}

	if err := c.SetState(byte(*mask)); err != nil {
		logger.Error("set state failed", "err", err)
		os.Exit(1)
	}

	state := c.State()
	bits := usbrelay.Bits(state)
	logger.Info("relay state", "mask", state, "relays", bits[:c.RelayCount()])
}
