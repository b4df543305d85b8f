package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	"github.com/younwookim/starfield/internal/application/game"
	"github.com/younwookim/starfield/internal/application/replay"
	"github.com/younwookim/starfield/internal/application/scene/starfield"
	"github.com/younwookim/starfield/internal/application/system"
	"github.com/younwookim/starfield/internal/infrastructure/audio"
	"github.com/younwookim/starfield/internal/infrastructure/config"
	"github.com/younwookim/starfield/internal/infrastructure/tuning"
)

// options are the command line settings
type options struct {
	configDir  string
	sceneFile  string
	seed       int64
	term       bool
	sound      bool
	tunePath   string
	recordPath string
	replayPath string
	headless   bool
}

func parseFlags(args []string) (options, error) {
	var o options
	fl := flag.NewFlagSet("starfield", flag.ContinueOnError)
	fl.StringVar(&o.configDir, "config", envString("STARFIELD_CONFIG", ""), "Config directory (default: embedded configs)")
	fl.StringVar(&o.sceneFile, "scene", envString("STARFIELD_SCENE", config.DefaultSceneFile), "Scene file (.yaml, .toml or .json)")
	fl.Int64Var(&o.seed, "seed", envInt64("STARFIELD_SEED", 0), "Star field seed (0: time based)")
	fl.BoolVar(&o.term, "term", envBool("STARFIELD_TERM", false), "Render in the terminal")
	fl.BoolVar(&o.sound, "sound", envBool("STARFIELD_SOUND", false), "Play audio cues")
	fl.StringVar(&o.tunePath, "tune", envString("STARFIELD_TUNE", ""), "Watch a tuning file (bloom, fov)")
	fl.StringVar(&o.recordPath, "record", "", "Record input to file (e.g., -record replay.json)")
	fl.StringVar(&o.replayPath, "replay", "", "Replay input from file")
	fl.BoolVar(&o.headless, "headless", false, "With -replay: run without a window and print the end state")
	if err := fl.Parse(args); err != nil {
		return options{}, err
	}
	if o.headless && o.replayPath == "" {
		return options{}, fmt.Errorf("-headless requires -replay")
	}
	if o.seed == 0 {
		o.seed = time.Now().UnixNano()
	}
	return o, nil
}

func loadScene(o options) (*config.SceneConfig, error) {
	var loader *config.Loader
	if o.configDir != "" {
		loader = config.NewLoader(o.configDir)
	} else {
		fsys, err := fs.Sub(configs, "configs")
		if err != nil {
			return nil, fmt.Errorf("failed to get config subfs: %w", err)
		}
		loader = config.NewFSLoader(fsys, "configs")
	}
	return loader.LoadScene(o.sceneFile)
}

func main() {
	// A missing .env is fine; flags and built-in defaults apply
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Failed to load .env: %v", err)
	}

	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("Invalid flags: %v", err)
	}

	var replayer *replay.Replayer
	if opts.replayPath != "" {
		data, err := replay.LoadReplay(opts.replayPath)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		replayer = replay.NewReplayer(*data)
		if name := replayer.Scene(); name != "" {
			opts.sceneFile = name
		}
	}

	cfg, err := loadScene(opts)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if opts.headless {
		res, err := runHeadless(cfg, replayer)
		if err != nil {
			log.Fatalf("Replay failed: %v", err)
		}
		fmt.Println(res)
		return
	}

	var cues starfield.Cues
	if opts.sound {
		player := audio.NewCuePlayer()
		if err := player.Init(); err != nil {
			log.Printf("[audio] disabled: %v", err)
		} else {
			defer player.Close()
			cues = player
		}
	}

	var tune <-chan system.TuneIntent
	if opts.tunePath != "" {
		w, err := tuning.NewWatcher(opts.tunePath)
		if err != nil {
			log.Printf("[tuning] disabled: %v", err)
		} else {
			defer func() { _ = w.Close() }()
			tune = w.Intents()
		}
	}

	s, err := starfield.New(starfield.Options{
		Config:     cfg,
		SceneName:  opts.sceneFile,
		Seed:       opts.seed,
		Cues:       cues,
		Tuning:     tune,
		PollEbiten: !opts.term,
		RecordPath: opts.recordPath,
		Replay:     replayer,
	})
	if err != nil {
		log.Fatalf("Failed to create scene: %v", err)
	}

	if opts.term {
		if err := runTerminal(s, cfg); err != nil {
			log.Fatalf("Terminal mode failed: %v", err)
		}
		return
	}

	d := cfg.Display
	g := game.New(s, d.ScreenWidth, d.ScreenHeight)
	g.SetDT(1.0 / float64(d.Framerate))

	// Set up ebiten
	ebiten.SetWindowSize(d.ScreenWidth*d.Scale, d.ScreenHeight*d.Scale)
	ebiten.SetWindowTitle(d.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(d.Framerate)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
	// Closing the window skips Esc; save the recording here too
	s.OnExit()
}
