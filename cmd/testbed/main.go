package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/testbed2d/config"
	"github.com/lixenwraith/testbed2d/core"
	"github.com/lixenwraith/testbed2d/palette"
	"github.com/lixenwraith/testbed2d/render"
	"github.com/lixenwraith/testbed2d/scenario"
	"github.com/lixenwraith/testbed2d/scene"
	"github.com/lixenwraith/testbed2d/status"
	"github.com/lixenwraith/testbed2d/testbed"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	opts := parseArgs(args[1:])
	if opts.help {
		usage(os.Stdout, filepath.Base(args[0]))
		return nil
	}

	cfg, err := config.Load(config.Path())
	if err != nil {
		return err
	}
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()
	for _, key := range cfg.Unknown {
		log.Warn("unknown config key", zap.String("key", key))
	}

	sc, err := loadScene(cfg.Scene.File)
	if err != nil {
		return err
	}
	world, colors, err := sc.Build()
	if err != nil {
		return fmt.Errorf("build world: %w", err)
	}
	background, err := cfg.View.BackgroundRGB()
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic recovery: restore the terminal before printing the stack
	core.SetCrashScreen(screen)
	defer func() {
		if r := recover(); r != nil {
			log.Error("crashed", zap.Any("panic", r))
			_ = log.Sync()
			core.HandleCrash(r)
		}
	}()

	reg := status.NewRegistry()
	canvas := render.NewCanvas(screen, render.NewCamera(cfg.View.Zoom), background)
	manager := scene.NewManager(palette.NewDefault(), log, reg)
	tb := testbed.New(canvas, manager, reg, log, testbed.Options{
		Paused:    opts.paused,
		StatusBar: cfg.Testbed.StatusBar,
	})

	if err := tb.SetWorld(world); err != nil {
		log.Error("scene construction failed", zap.Error(err))
		return err
	}
	for _, c := range colors {
		tb.SetColor(c.Body, c.Color)
	}
	tb.FrameWorld()
	log.Info("testbed started",
		zap.Int("bodies", world.Len()),
		zap.String("background", background.Hex()),
		zap.Bool("paused", opts.paused))

	src := testbed.NewTcellSource(screen, cfg.Testbed.UpdateInterval, cfg.Testbed.RenderInterval)
	src.Start()
	defer src.Stop()

	if err := tb.Run(src); err != nil {
		return err
	}
	log.Info("exit", zap.Any("metrics", reg.Snapshot()))
	return nil
}

// loadScene reads the configured scene file, or the builtin demo when none is set
func loadScene(path string) (*scenario.Scene, error) {
	if path == "" {
		return scenario.Builtin(), nil
	}
	return scenario.Load(path)
}
