package logger

import (
	"io"
	"log"
	"log/slog"
	"os"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

// SetupLogger builds the process logger for the given environment.
// Local logs to stdout at debug level; dev and prod append to logPath,
// prod at info level. An unknown environment is fatal.
func SetupLogger(env, logPath string) *slog.Logger {
	var out io.Writer
	level := slog.LevelDebug

	switch env {
	case envLocal:
		out = os.Stdout
	case envDev, envProd:
		logFile, err := os.OpenFile(logPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			log.Fatal("error opening log file: ", err)
		}
		log.Printf("env: %s; log file: %s", env, logPath)
		out = logFile
		if env == envProd {
			level = slog.LevelInfo
		}
	default:
		log.Fatal("invalid environment: ", env)
	}

	return slog.New(
		slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}),
	)
}
