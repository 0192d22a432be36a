package main

import (
	"context"
	"flag"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"periph.io/x/conn/v3/physic"

	"github.com/coreman2200/funtimes-ledstar/config"
	"github.com/coreman2200/funtimes-ledstar/preset"
	"github.com/coreman2200/funtimes-ledstar/preview"
	"github.com/coreman2200/funtimes-ledstar/prng"
	"github.com/coreman2200/funtimes-ledstar/spi"
)

func main() {
	// Flags win over config.yaml, but only when given explicitly.
	var (
		configPath  = flag.String("config", "config.yaml", "path to config.yaml")
		driver      = flag.String("driver", "spi", "driver: spi | screen")
		presetName  = flag.String("preset", "classic", "pattern: "+strings.Join(preset.Names(), " | "))
		fps         = flag.Int("fps", spi.DFLT_FPS, "target frames per second")
		brightness  = flag.Int("brightness", 84, "global brightness 0..255")
		seed        = seedFlag(1)
		previewOn   = flag.Bool("preview", false, "serve a websocket frame preview")
		addr        = flag.String("addr", ":8080", "preview listen address")
		writeConfig = flag.Bool("write-config", false, "write the effective config to -config and exit")
		debug       = flag.Bool("debug", false, "debug logging")
	)
	flag.Var(&seed, "seed", "random seed 0..65535")
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	cfg, found, err := config.LoadOrDefault(*configPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *configPath).Msg("config load failed")
	}
	if !found {
		log.Warn().Str("path", *configPath).Msg("no config file; proceeding with defaults and flags")
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "driver":
			cfg.Driver = *driver
		case "preset":
			cfg.Preset = *presetName
		case "fps":
			cfg.FPS = *fps
		case "brightness":
			cfg.Brightness = *brightness
		case "seed":
			cfg.Seed = uint16(seed)
		case "preview":
			cfg.Preview.Enabled = *previewOn
		case "addr":
			cfg.Preview.Addr = *addr
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("bad configuration")
	}

	if *writeConfig {
		if err := config.Save(*configPath, cfg); err != nil {
			log.Fatal().Err(err).Str("path", *configPath).Msg("config save failed")
		}
		log.Info().Str("path", *configPath).Msg("config written")
		return
	}

	s, err := preset.Build(cfg.Preset, preset.FromConfig(cfg), prng.New(cfg.Seed))
	if err != nil {
		log.Fatal().Err(err).Str("preset", cfg.Preset).Msg("pattern build failed")
	}

	var r *spi.LedRenderer
	switch cfg.Driver {
	case "spi":
		r, err = spi.InitLedRenderer(spi.Options{
			Port:     cfg.SPI.Port,
			LEDs:     s.LEDs(),
			Channels: cfg.SPI.Channels,
			Freq:     physic.Frequency(cfg.SPI.FreqKHz) * physic.KiloHertz,
		})
		if err != nil {
			log.Warn().Err(err).
				Str("driver", "spi").
				Str("port", cfg.SPI.Port).
				Int("freq_khz", cfg.SPI.FreqKHz).
				Msg("SPI init failed; printing at the console")
		}
	default:
		r = spi.NewScreen(s.LEDs())
	}
	current := "screen"
	if r.Spi {
		current = "spi"
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	looper := spi.NewLooper(s, r, cfg.FPS, uint8(cfg.Brightness))

	if cfg.Preview.Enabled {
		srv := preview.NewServer(s.LEDs(), cfg.FPS, uint8(cfg.Brightness), current)
		looper.OnFrame(srv.Publish)
		go func() {
			if err := srv.ListenAndServe(ctx, cfg.Preview.Addr); err != nil {
				log.Error().Err(err).Msg("preview server stopped")
			}
		}()
	}

	log.Info().
		Str("preset", cfg.Preset).
		Str("driver", current).
		Int("leds", s.LEDs()).
		Uint16("seed", cfg.Seed).
		Msg("ledstar starting")
	if err := looper.Start(ctx); err != nil {
		log.Error().Err(err).Msg("halt failed")
	}
	log.Info().Uint64("frames", looper.Frames()).Msg("shut down")
}

// seedFlag parses a seed with a 16-bit bound instead of truncating.
type seedFlag uint16

func (f *seedFlag) String() string { return strconv.FormatUint(uint64(*f), 10) }

func (f *seedFlag) Set(s string) error {
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return err
	}
	*f = seedFlag(v)
	return nil
}
