package main

import (
	"flag"
	"time"

	"mesh-demo/internal/commands"
	"mesh-demo/internal/config"
	"mesh-demo/internal/debug"
	"mesh-demo/internal/logger"
	"mesh-demo/internal/render"
	"mesh-demo/internal/scene"
)

func registerRun(reg *commands.Registry) {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	cfgPath := fs.String("config", config.DefaultPath, "engine config file (JSON)")
	envPath := fs.String("env", ".env", "environment file loaded before the config")
	reg.Register("run", "open the window and draw the layout", fs, func() error {
		return run(*cfgPath, *envPath)
	})
}

// run loads settings and the layout, then drives the render loop. Configuration
// problems are logged and replaced by defaults; only window setup errors abort.
func run(cfgPath, envPath string) error {
	log := logger.New(logger.LogFilePath)
	start := time.Now()

	if err := config.LoadEnvFile(envPath); err != nil {
		log.Logf("env: %v", err)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Logf("config: %v", err)
	}
	if cfg, err = config.ApplyEnv(cfg); err != nil {
		log.Logf("config: %v", err)
	}
	layout, err := scene.LoadLayout(cfg.Layout)
	if err != nil {
		log.Logf("layout %s: %v (using default layout)", cfg.Layout, err)
	}

	scn := scene.New(layout, cfg.Spawn)
	reg := render.NewRegistry(cfg.MaxTextureSize)
	dbg := debug.New(cfg.Debug)

	setup := func() error {
		dbg.AddTiming("Init", log.Timed("Init", start))

		t := time.Now()
		if err := reg.LoadShaders(); err != nil {
			return err
		}
		dbg.AddTiming("Shader create", log.Timed("Shader create", t))

		t = time.Now()
		if err := reg.LoadMeshes(scn.Objects); err != nil {
			return err
		}
		dbg.AddTiming("Mesh create", log.Timed("Mesh create", t))

		t = time.Now()
		if err := reg.LoadMaterials(scn); err != nil {
			log.Logf("textures: %v", err)
		}
		dbg.AddTiming("Texture load", log.Timed("Texture load", t))
		log.Logf("scene: %d objects, %d materials", len(scn.Objects), len(scn.Materials))
		return nil
	}
	update := func(dt float32) {
		scn.Update(render.PollInput(), dt)
	}
	draw := func() {
		reg.SetView(scn)
		reg.Draw(scn)
		dbg.Draw()
	}

	if err := render.Run(cfg, render.Loop{Setup: setup, Update: update, Draw: draw, Teardown: reg.Close}); err != nil {
		log.Logf("run: %v", err)
		return err
	}
	log.Log("window closed")
	return nil
}
