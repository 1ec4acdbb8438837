package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/digital-rain/audio"
	"github.com/lixenwraith/digital-rain/constants"
	"github.com/lixenwraith/digital-rain/content"
	"github.com/lixenwraith/digital-rain/engine"
	"github.com/lixenwraith/digital-rain/input"
	"github.com/lixenwraith/digital-rain/render"
	"github.com/lixenwraith/digital-rain/systems"
)

const eventBufferSize = 256

type options struct {
	debug bool
	mute  bool
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "digital-rain",
		Short:         "Falling glyph rain with hidden messages",
		Long:          "Renders columns of falling glyphs in the terminal. Every so often a message resolves out of the rain, holds, then dissolves. Press q or Ctrl+C to exit.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "write debug logs to "+logDir+"/"+logFileName)
	cmd.Flags().BoolVar(&opts.mute, "mute", false, "disable audio cues")
	return cmd
}

func run(parent context.Context, opts *options) error {
	logger, logFile, err := setupLogging(opts.debug)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}
	defer logger.Sync()

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "initialize screen")
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic recovery: restore the terminal before reporting
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			logger.Error("panic", zap.Any("recovered", r))
			fmt.Fprintf(os.Stderr, "\n\x1b[31mDIGITAL-RAIN CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	screen.SetStyle(render.StyleBackground)
	screen.HideCursor()
	screen.Clear()

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	events := make(chan tcell.Event, eventBufferSize)
	go pumpEvents(ctx, screen, events)

	var player engine.AudioPlayer
	if !opts.mute {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			logger.Warn("audio unavailable, continuing without sound", zap.Error(err))
		} else {
			player = sm
			defer sm.Cleanup()
		}
	}

	width, height := screen.Size()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	state := engine.NewAnimationState(width, height, content.NewMessageRotation(constants.Messages), rng)
	logger.Info("starting",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Bool("audio", player != nil))

	loop := engine.NewFrameLoop(screen, state, engine.NewMonotonicTimeProvider(), events, input.NewHandler(logger), logger)
	loop.AddSystem(systems.NewRainSystem(content.NewGlyphPool()))
	loop.AddSystem(systems.NewMessageSystem(player, logger))

	err = loop.Run(ctx)
	if errors.Is(err, context.Canceled) {
		logger.Info("shutdown on signal")
		return nil
	}
	return err
}

// pumpEvents forwards blocking PollEvent results to the loop. It ends when the
// screen is finalized (PollEvent returns nil) or ctx is done
func pumpEvents(ctx context.Context, screen tcell.Screen, events chan<- tcell.Event) {
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	for {
		ev := screen.PollEvent()
		if ev == nil {
			close(events)
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}
