package consulta_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"boletoconsulta/entity"
	"boletoconsulta/internal/http-server/handlers/consulta"
)

type fakeCore struct {
	res   *entity.Consulta
	err   error
	calls int
}

func (f *fakeCore) Consultar(_ context.Context, _ string) (*entity.Consulta, error) {
	f.calls++
	return f.res, f.err
}

func serve(t *testing.T, core *fakeCore, target string) *httptest.ResponseRecorder {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	consulta.Page(log, core)(rr, req)
	return rr
}

func TestFormatarData(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-07-05", "05/07/2024"},
		{"2024-13-40", "40/13/2024"}, // not calendar-aware
		{"2024-07", "2024-07"},
		{"", ""},
		{"sem-data", "sem-data"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, consulta.FormatarData(tc.in), "input %q", tc.in)
	}
}

func TestResumoPlacas(t *testing.T) {
	assert.Equal(t, "", consulta.ResumoPlacas(nil))
	assert.Equal(t, "AAA0001", consulta.ResumoPlacas([]string{"AAA0001"}))
	assert.Equal(t,
		"AAA0001, BBB0002, CCC0003, DDD0004, EEE0005",
		consulta.ResumoPlacas([]string{"AAA0001", "BBB0002", "CCC0003", "DDD0004", "EEE0005"}))

	resumo := consulta.ResumoPlacas([]string{"AAA0001", "BBB0002", "CCC0003", "DDD0004", "EEE0005", "FFF0006"})
	assert.Equal(t, "AAA0001, BBB0002, CCC0003, DDD0004, EEE0005...", resumo)
	assert.NotContains(t, resumo, "FFF0006")
}

func TestPageSemConsulta(t *testing.T) {
	core := &fakeCore{}
	rr := serve(t, core, "/")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rr.Body.String(), "Consultar Boletos")
	assert.NotContains(t, rr.Body.String(), "Data de Vencimento")
	assert.Zero(t, core.calls)
}

func TestPageCpfEmBranco(t *testing.T) {
	core := &fakeCore{}
	rr := serve(t, core, "/?cpf_cnpj=")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "CPF é obrigatório!")
	assert.Zero(t, core.calls, "blank submission must not reach the core")
}

func TestPageSemBoletoAberto(t *testing.T) {
	rr := serve(t, &fakeCore{err: entity.ErrSemBoletoAberto}, "/?cpf_cnpj=12345678900")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), consulta.MsgSemBoletoAberto)
	assert.NotContains(t, rr.Body.String(), "Data de Vencimento")
}

func TestPageSemPlacas(t *testing.T) {
	rr := serve(t, &fakeCore{err: entity.ErrSemPlacas}, "/?cpf_cnpj=12345678900")

	assert.Contains(t, rr.Body.String(), consulta.MsgSemPlacas)
}

func TestPageErroUpstream(t *testing.T) {
	// same wording /api/placas answers with, the raw upstream text stays hidden
	err := &entity.ErroUpstream{Status: http.StatusServiceUnavailable, Message: "em manutenção"}
	rr := serve(t, &fakeCore{err: err}, "/?cpf_cnpj=12345678900")

	assert.Contains(t, rr.Body.String(), "Erro ao consultar a API.")
	assert.NotContains(t, rr.Body.String(), "em manutenção")
}

func TestPageErroInesperado(t *testing.T) {
	rr := serve(t, &fakeCore{err: errors.New("conexão recusada")}, "/?cpf_cnpj=12345678900")

	assert.Contains(t, rr.Body.String(), "conexão recusada")
}

func TestPageBoletoEncontrado(t *testing.T) {
	rr := serve(t, &fakeCore{res: &entity.Consulta{
		CpfCnpj: "12345678900",
		Placas:  []string{"AAA0001", "BBB0002", "CCC0003", "DDD0004", "EEE0005", "FFF0006"},
		Boleto: &entity.Boleto{
			CodBoleto:      55,
			LinhaDigitavel: "03399.63290 64000.000006 00125.201020 4 56140000017832",
			DtVencimento:   "2024-07-05",
			SituacaoBoleto: entity.SituacaoAberto,
			UrlBoleto:      "https://boletos.example/55.pdf",
			Pix:            "00020126580014br.gov.bcb.pix",
		},
	}}, "/?cpf_cnpj=12345678900")

	body := rr.Body.String()
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, body, "05/07/2024")
	assert.Contains(t, body, "03399.63290 64000.000006 00125.201020 4 56140000017832")
	assert.Contains(t, body, "00020126580014br.gov.bcb.pix")
	assert.Contains(t, body, "EEE0005...")
	assert.NotContains(t, body, "FFF0006", "plates past the fifth are never rendered")
	assert.Contains(t, body, "Abrir PDF")
}
