package core

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"boletoconsulta/entity"
	"boletoconsulta/lib/sl"
)

// IlevaService is the upstream surface the core depends on.
type IlevaService interface {
	BuscarAssociado(ctx context.Context, cpfCnpj string) (*entity.Associado, error)
	BoletosEmAberto(ctx context.Context, cpfAssociado string) ([]byte, error)
}

type Core struct {
	ileva IlevaService
	log   *slog.Logger
}

func New(ileva IlevaService, log *slog.Logger) Core {
	if ileva == nil {
		panic("ileva client is nil")
	}
	return Core{
		ileva: ileva,
		log:   log.With(sl.Module("core")),
	}
}

// PlacasPorDocumento returns the eligible plates registered to a tax id.
// The upstream record is rejected when its cpf does not echo the queried
// document, guarding against fuzzy matching on the Ileva side.
func (c Core) PlacasPorDocumento(ctx context.Context, cpfCnpj string) ([]string, error) {
	associado, err := c.ileva.BuscarAssociado(ctx, cpfCnpj)
	if err != nil {
		return nil, err
	}
	if associado.Cpf != cpfCnpj {
		c.log.With(
			slog.String("cpf_cnpj", cpfCnpj),
			slog.String("retornado", associado.Cpf),
		).Warn("upstream returned a different document")
		return nil, entity.ErrCpfInvalido
	}
	return associado.PlacasElegiveis(), nil
}

// BoletosEmAberto returns the raw upstream page of open invoices.
func (c Core) BoletosEmAberto(ctx context.Context, cpfAssociado string) ([]byte, error) {
	return c.ileva.BoletosEmAberto(ctx, cpfAssociado)
}

// Consultar runs the full page workflow: plates first, then invoices, then
// the first invoice still open. The invoice lookup is never issued when
// the plate lookup fails or comes back empty.
func (c Core) Consultar(ctx context.Context, cpfCnpj string) (*entity.Consulta, error) {
	placas, err := c.PlacasPorDocumento(ctx, cpfCnpj)
	if err != nil {
		return nil, err
	}
	if len(placas) == 0 {
		return nil, entity.ErrSemPlacas
	}

	body, err := c.ileva.BoletosEmAberto(ctx, cpfCnpj)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", entity.ErrSemBoletoAberto, err)
	}
	var lista entity.ListaBoletos
	if err = json.Unmarshal(body, &lista); err != nil {
		return nil, fmt.Errorf("%w: decode: %s", entity.ErrSemBoletoAberto, err)
	}
	boleto := lista.PrimeiroAberto()
	if boleto == nil {
		return nil, entity.ErrSemBoletoAberto
	}

	return &entity.Consulta{
		CpfCnpj: cpfCnpj,
		Placas:  placas,
		Boleto:  boleto,
	}, nil
}
