package boletos

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"boletoconsulta/entity"
	"boletoconsulta/lib/api/response"
	"boletoconsulta/lib/sl"
)

type Core interface {
	BoletosEmAberto(ctx context.Context, cpfAssociado string) ([]byte, error)
}

// List handles GET /api/boletos. On success the upstream body is forwarded
// verbatim. The placa parameter is required and logged but never filtered
// on: upstream only honors pagination and status.
func List(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.boletos")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		cpf := r.URL.Query().Get("cpf")
		placa := r.URL.Query().Get("placa")
		if cpf == "" || placa == "" {
			logger.Warn("missing cpf or placa parameter")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Erro{Error: response.MsgParametrosObrigatorios})
			return
		}
		logger = logger.With(
			slog.String("cpf", cpf),
			slog.String("placa", placa),
		)

		body, err := handler.BoletosEmAberto(r.Context(), cpf)
		if err != nil {
			var upstream *entity.ErroUpstream
			if errors.As(err, &upstream) {
				logger.Error("upstream listing failed", sl.Err(err))
				render.Status(r, upstream.Status)
				render.JSON(w, r, response.Erro{Error: upstream.Message})
				return
			}
			logger.Error("invoice listing failed", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Erro{Error: response.MsgErroInterno})
			return
		}
		logger.Debug("invoice page forwarded")

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	}
}
