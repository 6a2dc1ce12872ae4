package consulta

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"

	"boletoconsulta/entity"
	"boletoconsulta/lib/api/response"
	"boletoconsulta/lib/sl"
)

//go:embed page.html
var pageFS embed.FS

var pageTmpl = template.Must(template.ParseFS(pageFS, "page.html"))

const maxPlacasExibidas = 5

// Fixed workflow messages shown on the page.
const (
	MsgSemPlacas       = "Nenhuma placa encontrada para o CPF informado."
	MsgSemBoletoAberto = "Nenhum boleto em aberto foi encontrado para as placas do CPF informado!"
)

type Core interface {
	Consultar(ctx context.Context, cpfCnpj string) (*entity.Consulta, error)
}

type pageData struct {
	CpfCnpj    string
	ErrorLines []string
	Resultado  *resultado
}

type resultado struct {
	Placas         string
	Vencimento     string
	LinhaDigitavel string
	UrlBoleto      string
	Pix            string
}

// Page handles GET /: the bare form without the cpf_cnpj parameter, the
// full lookup workflow with it. Rendering server-side makes each
// submission an independent request, so a slow lookup can never leak
// stale results into a newer one.
func Page(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.consulta")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		data := pageData{CpfCnpj: r.URL.Query().Get("cpf_cnpj")}
		if _, submitted := r.URL.Query()["cpf_cnpj"]; submitted {
			req := entity.ConsultaRequest{CpfCnpj: data.CpfCnpj}
			if err := req.Bind(r); err != nil {
				data.ErrorLines = []string{response.MsgCpfObrigatorio}
			} else {
				data = consultar(r.Context(), logger, handler, req.CpfCnpj)
			}
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := pageTmpl.Execute(w, data); err != nil {
			logger.Error("render page", sl.Err(err))
		}
	}
}

func consultar(ctx context.Context, logger *slog.Logger, handler Core, cpfCnpj string) pageData {
	data := pageData{CpfCnpj: cpfCnpj}
	logger = logger.With(slog.String("cpf_cnpj", cpfCnpj))

	res, err := handler.Consultar(ctx, cpfCnpj)
	if err != nil {
		logger.Warn("lookup ended without an invoice", sl.Err(err))
		data.ErrorLines = strings.Split(mensagemErro(err), "\n")
		return data
	}
	logger.With(
		slog.Int("placas", len(res.Placas)),
		slog.Int64("cod_boleto", res.Boleto.CodBoleto),
	).Debug("invoice selected")

	data.Resultado = &resultado{
		Placas:         ResumoPlacas(res.Placas),
		Vencimento:     FormatarData(res.Boleto.DtVencimento),
		LinhaDigitavel: res.Boleto.LinhaDigitavel,
		UrlBoleto:      res.Boleto.UrlBoleto,
		Pix:            res.Boleto.Pix,
	}
	return data
}

// mensagemErro maps workflow errors to the fixed page messages.
// Plate-stage failures keep the exact wording /api/placas would answer
// with, so the page and the proxy never disagree about the same failure.
func mensagemErro(err error) string {
	var upstream *entity.ErroUpstream
	switch {
	case errors.Is(err, entity.ErrSemPlacas):
		return MsgSemPlacas
	case errors.Is(err, entity.ErrSemBoletoAberto):
		return MsgSemBoletoAberto
	case errors.Is(err, entity.ErrAssociadoNaoEncontrado):
		return response.MsgAssociadoNaoEncontrado
	case errors.Is(err, entity.ErrCpfInvalido):
		return response.MsgCpfInvalido
	case errors.As(err, &upstream):
		return response.MsgErroConsultaApi
	}
	return err.Error()
}

// FormatarData reorders YYYY-MM-DD into DD/MM/YYYY by literal segment
// swap. It is not calendar-aware: malformed segments come back garbled,
// never as a panic.
func FormatarData(data string) string {
	partes := strings.SplitN(data, "-", 3)
	if len(partes) != 3 {
		return data
	}
	return partes[2] + "/" + partes[1] + "/" + partes[0]
}

// ResumoPlacas joins up to five plates; past five an ellipsis marker is
// appended and the extra plates themselves are never rendered.
func ResumoPlacas(placas []string) string {
	if len(placas) > maxPlacasExibidas {
		return strings.Join(placas[:maxPlacasExibidas], ", ") + "..."
	}
	return strings.Join(placas, ", ")
}
