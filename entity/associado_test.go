package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"boletoconsulta/entity"
)

func TestVeiculoElegivel(t *testing.T) {
	for _, cod := range []int{1, 2, 5, 7, 10} {
		v := entity.Veiculo{Placa: "ABC1234", CodSituacao: cod}
		assert.True(t, v.Elegivel(), "cod_situacao %d", cod)
	}
	for _, cod := range []int{0, 3, 4, 6, 8, 9, 11, 99, -1} {
		v := entity.Veiculo{Placa: "ABC1234", CodSituacao: cod}
		assert.False(t, v.Elegivel(), "cod_situacao %d", cod)
	}
}

func TestAssociadoPlacasElegiveis(t *testing.T) {
	a := entity.Associado{
		Cpf: "12345678900",
		Veiculos: []entity.Veiculo{
			{Placa: "AAA0001", CodSituacao: entity.SituacaoAtivo},
			{Placa: "BBB0002", CodSituacao: 99},
			{Placa: "CCC0003", CodSituacao: entity.SituacaoInadimplente30},
			{Placa: "DDD0004", CodSituacao: entity.SituacaoInativoMigrado},
		},
	}

	// exact image of the filter, upstream order preserved
	assert.Equal(t, []string{"AAA0001", "CCC0003", "DDD0004"}, a.PlacasElegiveis())
}

func TestAssociadoPlacasElegiveisSemVeiculos(t *testing.T) {
	a := entity.Associado{Cpf: "12345678900"}
	assert.Empty(t, a.PlacasElegiveis())
}
