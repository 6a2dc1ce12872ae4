package main

import (
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"boletoconsulta/impl/core"
	"boletoconsulta/internal/config"
	"boletoconsulta/internal/http-server/api"
	"boletoconsulta/internal/ileva"
	"boletoconsulta/internal/notify"
	"boletoconsulta/lib/logger"
	"boletoconsulta/lib/sl"
)

const logFileName = "boletoconsulta.log"

func main() {
	configPath := flag.String("conf", "config.yml", "path to config file")
	logPath := flag.String("log", "/var/log/", "path to log file directory")
	flag.Parse()

	conf := config.MustLoad(*configPath)
	log := logger.SetupLogger(conf.Env, filepath.Join(*logPath, logFileName))

	if conf.Telegram.Enabled {
		tg, err := notify.New(conf.Telegram.Token, conf.Telegram.ChatId)
		if err != nil {
			log.With(sl.Err(err)).Error("telegram notifications disabled")
		} else {
			log = slog.New(logger.NewTelegramHandler(log.Handler(), tg, slog.LevelError))
		}
	}

	log.Info("starting boletoconsulta",
		slog.String("config", *configPath),
		slog.String("env", conf.Env),
		sl.Secret("access_token", conf.Ileva.AccessToken),
	)

	ilevaClient := ileva.NewClient(ileva.Config(conf.Ileva), log)
	handler := core.New(ilevaClient, log)

	err := api.New(conf, log, handler)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.With(sl.Err(err)).Error("error starting server")
		os.Exit(1)
	}
}
