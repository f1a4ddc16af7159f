package main

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/petparadise/storefront/internal/backend"
	"github.com/petparadise/storefront/internal/config"
	"github.com/petparadise/storefront/internal/web"
)

func main() {
	_ = godotenv.Load()
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}

	client := backend.NewClient(cfg.BackendURL, cfg.BackendTimeout)
	app := web.New(cfg, client)

	if err := app.Listen(); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
