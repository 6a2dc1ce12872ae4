package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boletoconsulta/entity"
)

func TestListaBoletosPrimeiroAberto(t *testing.T) {
	lista := entity.ListaBoletos{
		Boletos: []entity.Boleto{
			{CodBoleto: 1, SituacaoBoleto: "Pago"},
			{CodBoleto: 2, SituacaoBoleto: entity.SituacaoAberto},
			{CodBoleto: 3, SituacaoBoleto: entity.SituacaoAberto},
		},
	}

	boleto := lista.PrimeiroAberto()
	require.NotNil(t, boleto)
	assert.Equal(t, int64(2), boleto.CodBoleto)
}

func TestListaBoletosPrimeiroAbertoNenhum(t *testing.T) {
	lista := entity.ListaBoletos{
		Boletos: []entity.Boleto{
			{CodBoleto: 1, SituacaoBoleto: "Pago"},
			{CodBoleto: 2, SituacaoBoleto: "Cancelado"},
		},
	}
	assert.Nil(t, lista.PrimeiroAberto())
}

func TestListaBoletosPrimeiroAbertoVazia(t *testing.T) {
	var lista entity.ListaBoletos
	assert.Nil(t, lista.PrimeiroAberto())
}
