package spi

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/coreman2200/funtimes-ledstar/model"
	"github.com/coreman2200/funtimes-ledstar/star"
)

const DFLT_FPS = 40

// Looper ticks the star, reads one frame and hands it to the driver at a
// fixed rate. It is the only goroutine that touches the pattern tree.
type Looper struct {
	quit       chan struct{}
	once       sync.Once
	c          chan os.Signal
	star       *star.Star
	driver     Driver
	fps        int
	brightness uint8
	frame      []model.HSV
	frames     atomic.Uint64
	failing    bool
	onFrame    func(frame []model.HSV)
}

func NewLooper(s *star.Star, d Driver, fps int, brightness uint8) *Looper {
	if fps <= 0 {
		fps = DFLT_FPS
	}
	return &Looper{
		quit:       make(chan struct{}),
		star:       s,
		driver:     d,
		fps:        fps,
		brightness: brightness,
		frame:      make([]model.HSV, s.LEDs()),
	}
}

// OnFrame registers f to see every frame after it is shown. f must not
// keep the slice.
func (l *Looper) OnFrame(f func(frame []model.HSV)) { l.onFrame = f }

// Frames is the number of frames produced so far.
func (l *Looper) Frames() uint64 { return l.frames.Load() }

func (l *Looper) Brightness() uint8 { return l.brightness }

// Step produces a single frame. Driver errors are reported but the frame
// still counts.
func (l *Looper) Step() error {
	l.star.Tick()
	if _, err := l.star.Fill(l.frame); err != nil {
		return err
	}
	l.frames.Add(1)
	err := l.driver.Show(l.frame, l.brightness)
	if l.onFrame != nil {
		l.onFrame(l.frame)
	}
	return err
}

func (l *Looper) refresh(ctx context.Context) {
	ticker := time.NewTicker(time.Second / time.Duration(l.fps))
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			err := l.Step()
			switch {
			case err != nil && !l.failing:
				log.Error().Err(err).Uint64("frame", l.Frames()).Msg("frame write failed")
				l.failing = true
			case err == nil && l.failing:
				log.Info().Uint64("frame", l.Frames()).Msg("frame writes recovered")
				l.failing = false
			}

		case <-l.quit:
			return

		case sig := <-l.c:
			log.Info().Str("signal", sig.String()).Msg("aborting")
			return

		case <-ctx.Done():
			return
		}
	}
}

// Start runs the loop until ctx is done, Stop is called or the process is
// interrupted, then blanks the strip.
func (l *Looper) Start(ctx context.Context) error {
	l.c = make(chan os.Signal, 1)
	signal.Notify(l.c, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(l.c)

	log.Info().Int("fps", l.fps).Int("leds", l.star.LEDs()).Msg("frame loop starting")
	l.refresh(ctx)
	return l.driver.Halt()
}

// Stop ends a running Start. It is safe to call more than once.
func (l *Looper) Stop() {
	l.once.Do(func() { close(l.quit) })
}
