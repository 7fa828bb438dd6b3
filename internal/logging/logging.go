package logging

import (
	"os"

	log "github.com/sirupsen/logrus"

	"lead-service/internal/config"
)

// Setup configures the process-wide logrus logger.
func Setup(cfg config.LogConfig) {
	log.SetOutput(os.Stdout)

	if cfg.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		log.WithField("level", cfg.Level).Warn("unknown log level, falling back to info")
		level = log.InfoLevel
	}
	log.SetLevel(level)
}
