package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/pillar-arena/audio"
	"github.com/lixenwraith/pillar-arena/config"
	"github.com/lixenwraith/pillar-arena/engine"
	"github.com/lixenwraith/pillar-arena/parameter"
	"github.com/lixenwraith/pillar-arena/render"
)

var (
	configFlag     = flag.String("config", "", "TOML tuning file; built-in defaults when empty")
	difficultyFlag = flag.String("difficulty", "", "difficulty preset: easy, normal or hard")
	seedFlag       = flag.Uint64("seed", 0, "world seed; 0 keeps the config seed, or the clock when that is 0 too")
	debugFlag      = flag.Bool("debug", false, "write debug logs to logs/arena.log")
	dumpFlag       = flag.Bool("dump-config", false, "print the effective configuration as TOML and exit")
	muteFlag       = flag.Bool("mute", false, "start with audio muted")
	pathsFlag      = flag.Bool("paths", false, "overlay enemy path segments")
)

const (
	helpText = "arrows/wasd move  space/ijkl fire  p pause  m mute  v paths  r restart  q quit"
)

// loadConfig applies the file, then the difficulty flag, then the seed flag
func loadConfig(path, difficulty string, seed uint64) (*config.Config, error) {
	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if difficulty != "" {
		if !config.Difficulty(difficulty).Apply(cfg) {
			return nil, errors.Errorf("unknown difficulty %q (want one of %v)", difficulty, config.Difficulties())
		}
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newWorld(cfg *config.Config, logger *logrus.Logger) *engine.World {
	return engine.NewWorld(cfg, engine.WithLogger(logger.WithField("component", "world")))
}

func statusLine(paused, muted bool) string {
	s := helpText
	if paused {
		s = "PAUSED  " + s
	}
	if muted {
		s += "  [muted]"
	}
	return s
}

// lowHealth reports whether the warning pulse should play
func lowHealth(w *engine.World) bool {
	p := w.Player()
	if w.Outcome() != engine.OutcomeRunning || p.IsDead() {
		return false
	}
	return float64(p.Health()) <= parameter.AlarmHealthFraction*float64(p.MaxHealth())
}

func main() {
	var screen tcell.Screen

	// Restore the terminal before printing a crash
	defer func() {
		if r := recover(); r != nil {
			if screen != nil {
				screen.Fini()
			}
			fmt.Fprintf(os.Stderr, "\n\x1b[31mARENA-SANDBOX CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	cfg, err := loadConfig(*configFlag, *difficultyFlag, *seedFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "arena-sandbox: %v\n", err)
		os.Exit(1)
	}

	if *dumpFlag {
		if err := cfg.Encode(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "arena-sandbox: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	logger, logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}
	log := logger.WithField("component", "sandbox")

	screen, err = tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.HideCursor()

	// Audio is optional
	cues := audio.NewCuePlayer(cfg.Audio.Volume)
	if cfg.Audio.Enabled {
		if err := cues.Initialize(); err != nil {
			log.WithError(err).Warn("audio unavailable, continuing without sound")
		} else {
			defer cues.Cleanup()
		}
	}
	if *muteFlag {
		cues.ToggleMute()
	}

	world := newWorld(cfg, logger)
	renderer := render.NewRenderer(screen)
	renderer.ShowPaths = *pathsFlag
	ctl := newControls()
	paused := false

	log.WithFields(logrus.Fields{
		"seed":       cfg.Seed,
		"difficulty": cfg.Difficulty,
	}).Info("sandbox started")

	events := make(chan tcell.Event, parameter.InputQueueSize)
	go func() {
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
			// nil after Fini
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				switch ctl.handleKey(ev) {
				case actionQuit:
					log.WithField("time", world.Time()).Info("quit")
					return
				case actionPause:
					paused = !paused
				case actionMute:
					cues.ToggleMute()
				case actionPaths:
					renderer.ShowPaths = !renderer.ShowPaths
				case actionRestart:
					cfg.Seed++
					world = newWorld(cfg, logger)
					ctl.reset()
					paused = false
					cues.SetAlarm(false)
					log.WithField("seed", cfg.Seed).Info("restart")
				}
			}

		case <-ticker.C:
			if !paused {
				dx, dz, fire, firing := ctl.frame()
				if dx != 0 || dz != 0 {
					world.MovePlayer(dx, dz, parameter.SimulationStep)
				}
				if firing {
					world.Fire(fire)
				}
				world.Tick(parameter.SimulationStep)
				cues.HandleEvents(world.Events())
				cues.SetAlarm(lowHealth(world))
			}
			renderer.RenderFrame(world, statusLine(paused, cues.IsMuted()))
		}
	}
}
