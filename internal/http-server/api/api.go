package api

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"boletoconsulta/internal/config"
	"boletoconsulta/internal/http-server/handlers/boletos"
	"boletoconsulta/internal/http-server/handlers/consulta"
	"boletoconsulta/internal/http-server/handlers/errors"
	"boletoconsulta/internal/http-server/handlers/placas"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"boletoconsulta/internal/http-server/middleware/reqlog"
	"boletoconsulta/internal/http-server/middleware/timeout"
	"boletoconsulta/lib/sl"
)

type Server struct {
	conf       *config.Config
	httpServer *http.Server
	log        *slog.Logger
}

type Handler interface {
	placas.Core
	boletos.Core
	consulta.Core
}

func New(conf *config.Config, log *slog.Logger, handler Handler) error {

	server := Server{
		conf: conf,
		log:  log.With(sl.Module("api.server")),
	}

	router := chi.NewRouter()
	router.Use(timeout.Timeout(5))
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(reqlog.New(log))

	router.NotFound(errors.NotFound(log))
	router.MethodNotAllowed(errors.NotAllowed(log))

	router.Get("/", consulta.Page(log, handler))
	router.Route("/api", func(rootApi chi.Router) {
		rootApi.Use(render.SetContentType(render.ContentTypeJSON))
		rootApi.Get("/placas", placas.Search(log, handler))
		rootApi.Get("/boletos", boletos.List(log, handler))
	})

	httpLog := slog.NewLogLogger(log.Handler(), slog.LevelError)
	server.httpServer = &http.Server{
		Handler:      router,
		ErrorLog:     httpLog,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverAddress := fmt.Sprintf("%s:%s", conf.Listen.BindIp, conf.Listen.Port)
	listener, err := net.Listen("tcp", serverAddress)
	if err != nil {
		return err
	}

	server.log.Info("starting api server", slog.String("address", serverAddress))

	return server.httpServer.Serve(listener)
}
