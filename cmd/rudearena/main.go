package main

import (
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rudearena/server/internal/audio"
	"github.com/rudearena/server/internal/config"
	"github.com/rudearena/server/internal/core/event"
	"github.com/rudearena/server/internal/data"
	"github.com/rudearena/server/internal/game"
	"github.com/rudearena/server/internal/input"
	"github.com/rudearena/server/internal/render"
	"github.com/rudearena/server/internal/scripting"
	"github.com/rudearena/server/internal/weapon"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load config
	cfgPath := "config/arena.toml"
	if p := os.Getenv("RUDEARENA_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	// 3. Scripts and data tables
	scripts, err := scripting.NewEngine(cfg.Data.Scripts, log)
	if err != nil {
		return fmt.Errorf("lua engine: %w", err)
	}
	defer scripts.Close()

	arsenal, err := loadArsenal(cfg.Data, scripts)
	if err != nil {
		return err
	}
	log.Info("weapons loaded", zap.Int("count", arsenal.Len()))

	// 4. Game
	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	kb := input.NewKeyboard(input.DefaultHold)
	bus := event.NewBus()
	g := game.New(kb, arsenal, rand.New(rand.NewSource(seed)), bus, log)

	// 5. Audio is optional; a machine without a sound device still plays.
	if cfg.Audio.Enabled {
		rate := beep.SampleRate(cfg.Audio.SampleRate)
		if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
			log.Warn("audio disabled", zap.Error(err))
		} else {
			defer speaker.Close()
			audio.NewEngine(audio.OutputFunc(speaker.Play), rate, cfg.Audio.MasterVolume, log).Subscribe(bus)
		}
	}

	// 6. Data reloads
	var (
		reloads     <-chan string
		watchErrors <-chan error
	)
	if cfg.Data.Watch {
		w, err := data.NewWatcher(watchDirs(cfg.Data)...)
		if err != nil {
			log.Warn("data watch disabled", zap.Error(err))
		} else {
			defer w.Close()
			reloads, watchErrors = w.Events, w.Errors
		}
	}

	// 7. Terminal
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	term := render.NewTerminal(screen)
	g.SetRenderer(term)

	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				continue
			}
			kb.HandleEvent(ev)
		}
	}()

	// 8. Game loop
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(cfg.Game.TickRate)
	defer ticker.Stop()
	log.Info("game loop started", zap.Duration("tick", cfg.Game.TickRate), zap.Int64("seed", seed))

	last := time.Now()
	for {
		select {
		case now := <-ticker.C:
			delta := now.Sub(last)
			last = now
			if delta > cfg.Game.MaxDelta {
				delta = cfg.Game.MaxDelta
			}
			g.Step(delta)
			term.Draw(g.World(), hud(g))
		case path, ok := <-reloads:
			if !ok {
				reloads = nil
				continue
			}
			reload(g, cfg.Data, scripts, path, log)
		case err, ok := <-watchErrors:
			if !ok {
				watchErrors = nil
				continue
			}
			log.Warn("data watch", zap.Error(err))
		case <-kb.Quit():
			log.Info("quit requested", zap.Int("kills", g.World().Kills))
			return nil
		case sig := <-shutdownCh:
			log.Info("received shutdown signal", zap.String("signal", sig.String()))
			return nil
		}
	}
}

func loadArsenal(cfg config.DataConfig, scripts *scripting.Engine) (*weapon.Arsenal, error) {
	tbl, err := data.LoadWeaponTable(cfg.Weapons)
	if err != nil {
		return nil, fmt.Errorf("load weapon table: %w", err)
	}
	lines, err := data.LoadInsults(cfg.Insults)
	if err != nil {
		return nil, fmt.Errorf("load insults: %w", err)
	}
	return weapon.Build(tbl, lines, scripts)
}

// reload applies an edited data or script file between ticks. A broken
// edit is logged and the running set is kept.
func reload(g *game.Game, cfg config.DataConfig, scripts *scripting.Engine, path string, log *zap.Logger) {
	if filepath.Ext(path) == ".lua" {
		if err := scripts.Reload(); err != nil {
			log.Warn("script reload failed", zap.String("path", path), zap.Error(err))
			return
		}
		log.Info("scripts reloaded", zap.String("path", path))
		return
	}
	a, err := loadArsenal(cfg, scripts)
	if err != nil {
		log.Warn("data reload failed", zap.String("path", path), zap.Error(err))
		return
	}
	g.ReplaceWeapons(a)
}

func watchDirs(cfg config.DataConfig) []string {
	seen := make(map[string]bool)
	var dirs []string
	add := func(dir string) {
		if dir == "" || seen[dir] {
			return
		}
		if st, err := os.Stat(dir); err != nil || !st.IsDir() {
			return
		}
		seen[dir] = true
		dirs = append(dirs, dir)
	}
	if cfg.Weapons != "" {
		add(filepath.Dir(cfg.Weapons))
	}
	if cfg.Insults != "" {
		add(filepath.Dir(cfg.Insults))
	}
	if cfg.Scripts != "" {
		add(cfg.Scripts)
		add(filepath.Join(cfg.Scripts, "weapon"))
	}
	return dirs
}

func hud(g *game.Game) render.HUD {
	h := render.HUD{Locked: g.Locked(), Pose: g.WeaponPose()}
	if w := g.Arsenal().Current(); w != nil {
		h.Weapon = w.Name()
	}
	return h
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	if cfg.File != "" {
		zapCfg.OutputPaths = []string{cfg.File}
		zapCfg.ErrorOutputPaths = []string{cfg.File}
	}

	return zapCfg.Build()
}
