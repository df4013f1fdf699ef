// keymaze connects to a key/door maze puzzle server, solves each maze it
// receives, and sends back the shortest move string until the server
// declares a win.
package main

import (
	"flag"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/lockrow/keymaze/session"
)

func main() {
	configPath := flag.String("config", "keymaze.yaml", "Path to session config YAML file")
	address := flag.String("address", "", "Puzzle endpoint override (host:port or ws:// URL)")
	transport := flag.String("transport", "", "Transport override: tcp or ws")
	flag.Parse()

	cfg, err := session.LoadConfig(*configPath)
	if err != nil {
		log.WithError(err).Fatal("loading config")
	}
	if *address != "" {
		cfg.Address = *address
	}
	if *transport != "" {
		cfg.Transport = *transport
	}

	setupLogging(cfg.Log)

	t, err := dial(cfg)
	if err != nil {
		log.WithError(err).WithField("address", cfg.Address).Fatal("connecting")
	}
	defer t.Close()
	log.WithFields(log.Fields{"address": cfg.Address, "transport": cfg.Transport}).Info("connected")

	if err := session.New(t, cfg).Run(); err != nil {
		log.WithError(err).Fatal("session failed")
	}
}

// dial opens the configured transport.
func dial(cfg session.Config) (session.Transport, error) {
	if cfg.Transport == "ws" {
		return session.DialWebSocket(cfg.Address)
	}
	return session.DialTCP(cfg.Address)
}

// setupLogging configures logrus level and, when a file path is set,
// mirrors output to a rotating log file.
func setupLogging(cfg session.LogConfig) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.FilePath != "" {
		rotating := &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.FileMaxSizeMB,
			MaxBackups: cfg.FileMaxBackups,
		}
		log.SetOutput(io.MultiWriter(os.Stderr, rotating))
	}
}
