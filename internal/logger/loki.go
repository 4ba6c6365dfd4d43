package logger

import (
	"context"
	"path/filepath"
	"strconv"

	"github.com/gigmatch/match-engine/internal/config"
	"github.com/gigmatch/match-engine/pkg/loki"
	log "github.com/sirupsen/logrus"
)

var shipper *loki.Shipper

type lokiHook struct {
	shipper  *loki.Shipper
	minLevel log.Level
}

func (h *lokiHook) Fire(entry *log.Entry) error {

	if entry.Data["source"] == "loki" {
		return nil
	}

	caller := ""
	if entry.Caller != nil {
		caller = filepath.Base(entry.Caller.Function) + ":" + strconv.Itoa(entry.Caller.Line)
	}

	h.shipper.Ship(loki.Entry{
		Level:   entry.Level.String(),
		Message: entry.Message,
		Caller:  caller,
	})
	return nil
}

func (h *lokiHook) Levels() []log.Level {
	var levels []log.Level
	for _, level := range log.AllLevels {
		if level <= h.minLevel {
			levels = append(levels, level)
		}
	}
	return levels
}

func addLokiHook(ctx context.Context, cfg config.LoggerConfig, minLevel log.Level) error {

	s, err := loki.NewShipper(ctx, loki.Config{
		URL:      cfg.LokiURL,
		Labels:   map[string]string{"app": cfg.AppName},
		Username: cfg.LokiUser,
		Password: cfg.LokiPassword,
	}, func(err error) {
		log.WithField("source", "loki").Errorf("loki delivery failed: %v", err)
	})
	if err != nil {
		return err
	}

	shipper = s
	log.AddHook(&lokiHook{shipper: s, minLevel: minLevel})
	log.Info("Loki logging enabled")
	return nil
}
