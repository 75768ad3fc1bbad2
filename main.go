package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/leonelquinteros/gotext"
	"go.uber.org/zap"

	"habitat/pkg/engine/clock"
	"habitat/pkg/engine/input"
	"habitat/pkg/engine/terminal"
	"habitat/pkg/game/config"
	"habitat/pkg/game/devtools"
	"habitat/pkg/game/gameplay"
	"habitat/pkg/game/renderer"
	"habitat/pkg/game/renderer/tui"
	"habitat/pkg/game/setup"
	"habitat/pkg/game/state"
)

func initGettext(lang string) {
	gotext.Configure("locales", lang, "default")
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

func loadTuning(path string) (config.Tuning, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func main() {
	tuningPath := flag.String("tuning", "", "YAML tuning file (defaults are used for anything it leaves out)")
	seed := flag.Int64("seed", 0, "random seed (0 picks one from the clock)")
	speed := flag.Float64("speed", -1, "starting time scale (overrides the tuning file)")
	colonists := flag.Int("colonists", -1, "starting colonists (overrides the tuning file)")
	ticks := flag.Int("ticks", 0, "run this many frames headless, print the colony and exit")
	dumpPath := flag.String("dump", "", "file for map dumps (default map.txt)")
	lang := flag.String("lang", "en_GB", "locale for labels and messages")
	debug := flag.Bool("debug", false, "development logging at debug level")
	flag.Parse()

	logger, err := newLogger(*debug)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	initGettext(*lang)

	tuning, err := loadTuning(*tuningPath)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if *speed >= 0 {
		tuning.Clock.Scale = *speed
	}
	if *colonists >= 0 {
		tuning.Setup.Colonists = *colonists
	}
	params, err := tuning.Colony()
	if err != nil {
		log.Fatalf("%v", err)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	logger.Info("starting colony", zap.Int64("seed", *seed))
	rng := rand.New(rand.NewSource(*seed))

	colony := state.New(params, rng, logger)
	setup.Build(colony, rng, tuning.Setup)

	clk := clock.New(tuning.Clock, logger.Named("clock"))
	session := gameplay.NewSession(colony, clk, logger.Named("gameplay"))
	session.DumpPath = *dumpPath

	if *ticks > 0 {
		runHeadless(session, *ticks, tuning.Clock.Frame())
		return
	}

	if err := runInteractive(session, tuning.Clock.Frame()); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("%v", err)
	}
}

// runHeadless steps the colony a fixed number of frames at the clock scale
// and prints the final frame
func runHeadless(s *gameplay.Session, frames int, frame time.Duration) {
	for i := 0; i < frames; i++ {
		if dt := s.Clock.Advance(frame); dt > 0 {
			s.Tick(dt)
		}
	}
	r := tui.NewWithWriter(os.Stdout, 24, 40)
	r.Init()
	r.RenderFrame(s.Colony.Snapshot(), s.View(false))

	if s.DumpPath != "" {
		path, err := devtools.DumpToFile(s.DumpPath, s.Colony.Snapshot())
		if err != nil {
			log.Fatalf("%v", err)
		}
		fmt.Println(gotext.Get("Map dumped to %s", path))
	}
}

// runInteractive renders every frame and reads commands from stdin. Intents
// are applied between steps on the clock goroutine.
func runInteractive(s *gameplay.Session, frame time.Duration) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	renderer.SetRenderer(tui.New())
	renderer.Init()

	device := input.DeviceScript
	if terminal.IsInteractive() {
		device = input.DeviceTerminal
	}
	lines := input.ReadLines(ctx, os.Stdin, device)

	onFrame := func() {
		for {
			select {
			case raw, ok := <-lines:
				if !ok {
					stop()
					return
				}
				intent, err := input.MapToIntent(input.NewDebouncedInput(raw))
				if err != nil {
					s.Colony.AddMessage(err.Error())
					continue
				}
				gameplay.ProcessIntent(s, intent)
				if s.Quit {
					fmt.Println(gotext.Get("GOODBYE"))
					stop()
					return
				}
			default:
				renderer.Clear()
				renderer.RenderFrame(s.Colony.Snapshot(), s.View(true))
				return
			}
		}
	}

	return s.Clock.Run(ctx, frame, s, onFrame)
}
