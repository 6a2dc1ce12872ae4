package placas

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
	PlacasPorDocumento(ctx context.Context, cpfCnpj string) ([]string, error)
}

// Search handles GET /api/placas: looks up the associate for the cpf_cnpj
// query parameter and returns the plates of its eligible vehicles.
func Search(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.placas")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		cpfCnpj := r.URL.Query().Get("cpf_cnpj")
		if cpfCnpj == "" {
			logger.Warn("missing cpf_cnpj parameter")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.PlacasErro(response.MsgCpfObrigatorio))
			return
		}
		logger = logger.With(slog.String("cpf_cnpj", cpfCnpj))

		placas, err := handler.PlacasPorDocumento(r.Context(), cpfCnpj)
		if err != nil {
			renderErro(w, r, logger, err)
			return
		}
		logger.With(slog.Int("placas", len(placas))).Debug("plates found")

		render.JSON(w, r, response.PlacasOk(placas))
	}
}

func renderErro(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var upstream *entity.ErroUpstream
	switch {
	case errors.Is(err, entity.ErrAssociadoNaoEncontrado):
		logger.Warn("associate not found")
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.PlacasErro(response.MsgAssociadoNaoEncontrado))
	case errors.Is(err, entity.ErrCpfInvalido):
		logger.Warn("document mismatch")
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.PlacasErro(response.MsgCpfInvalido))
	case errors.As(err, &upstream):
		logger.Error("upstream lookup failed", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.PlacasErro(response.MsgErroConsultaApi))
	default:
		logger.Error("plate lookup failed", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.PlacasErro(err.Error()))
	}
}
