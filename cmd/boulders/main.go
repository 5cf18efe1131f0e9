package main

import (
	"flag"
	"github.com/hajimehoshi/ebiten"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/boulders/config"
	"github.com/zucenko/boulders/game"
	"github.com/zucenko/boulders/logger"
	"github.com/zucenko/boulders/metrics"
)

const (
	screenWidth  = 1024
	screenHeight = 768
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	levelPath := flag.String("level", "", "level file, overrides the config")
	flag.Parse()

	logger.Init()
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.WithError(err).Fatal("config")
	}
	if *levelPath != "" {
		cfg.Display.LevelPath = *levelPath
	}

	collector, err := metrics.NewCollector(prometheus.NewRegistry())
	if err != nil {
		log.WithError(err).Fatal("metrics")
	}

	data, err := loadLevel(cfg.Display.LevelPath)
	if err != nil {
		log.WithError(err).Fatal("level")
	}
	g := game.New(cfg, collector)
	if err := g.SetLevel(data); err != nil {
		log.WithError(err).Fatal("level")
	}
	defer g.Close()

	d, err := newDriver(g, cfg)
	if err != nil {
		log.WithError(err).Fatal("driver")
	}

	frameMs := cfg.Rules.TickMs / cfg.Display.FramesPerTick
	if frameMs > 0 {
		ebiten.SetMaxTPS(1000 / frameMs)
	}
	if err := ebiten.Run(d.update, screenWidth, screenHeight, 1, "Boulders"); err != nil && err != errQuit {
		log.WithError(err).Error("run")
	}

	log.WithFields(log.Fields{
		"outcome": d.outcome.Name(),
		"ticks":   g.Frame().Tick,
	}).Info("game over")
	if err := collector.WriteTextfile(cfg.Display.MetricsFile); err != nil {
		log.WithError(err).Warn("metrics")
	}
}
