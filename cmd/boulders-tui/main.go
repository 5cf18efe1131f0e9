package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/boulders/config"
	"github.com/zucenko/boulders/game"
	"github.com/zucenko/boulders/level"
	"github.com/zucenko/boulders/logger"
	"github.com/zucenko/boulders/metrics"
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
	if cfg.Display.LevelPath == "" {
		cfg.Display.LevelPath = os.Getenv("BOULDERS_LEVEL")
	}

	data, err := readLevel(cfg.Display.LevelPath)
	if err != nil {
		log.WithError(err).Fatal("level")
	}

	collector, err := metrics.NewCollector(prometheus.NewRegistry())
	if err != nil {
		log.WithError(err).Fatal("metrics")
	}
	g := game.New(cfg, collector)
	defer g.Close()
	if err := g.SetLevel(data); err != nil {
		log.WithError(err).Fatal("level")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.WithError(err).Fatal("screen")
	}
	hold := time.Duration(cfg.Rules.TickMs*2) * time.Millisecond
	term, err := NewTerminal(screen, hold)
	if err != nil {
		log.WithError(err).Fatal("screen")
	}
	// the screen owns the terminal while playing
	restore, err := logger.Redirect(os.Getenv("LOG_FILE"))
	if err != nil {
		term.Close()
		log.WithError(err).Fatal("log")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	outcome, err := g.Play(ctx, term)
	stop()
	term.Close()
	restore()

	if err != nil {
		log.WithError(err).Warn("play")
	}
	log.WithFields(log.Fields{
		"outcome":  outcome.Name(),
		"ticks":    g.Frame().Tick,
		"diamonds": g.Frame().Diamonds,
	}).Info("game over")
	if err := collector.WriteTextfile(cfg.Display.MetricsFile); err != nil {
		log.WithError(err).Warn("metrics")
	}
}

func readLevel(path string) (string, error) {
	if path == "" {
		return game.DefaultLevel, nil
	}
	file, err := os.Open(path)
	if err != nil {
		return "", errors.Wrapf(err, "opening level %s", path)
	}
	defer file.Close()
	return level.ReadString(file)
}
