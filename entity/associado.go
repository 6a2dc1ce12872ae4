package entity

// Vehicle situation codes as returned in cod_situacao by the Ileva API.
// Plates are surfaced to the user only for the codes listed here.
const (
	SituacaoAtivo          = 1
	SituacaoInadimplente   = 2
	SituacaoInadimplente30 = 5
	SituacaoVerificar      = 7
	SituacaoInativoMigrado = 10
)

type Veiculo struct {
	Placa        string `json:"placa"`
	Modelo       string `json:"modelo"`
	CodVeiculo   int    `json:"cod_veiculo"`
	Situacao     string `json:"situacao"`
	SituacaoTipo string `json:"situacao_tipo"`
	CodSituacao  int    `json:"cod_situacao"`
}

// Elegivel reports whether the vehicle's plate may be shown to the user.
func (v Veiculo) Elegivel() bool {
	switch v.CodSituacao {
	case SituacaoAtivo, SituacaoInadimplente, SituacaoInadimplente30,
		SituacaoVerificar, SituacaoInativoMigrado:
		return true
	}
	return false
}

type Associado struct {
	Cpf          string    `json:"cpf"`
	DtNascimento string    `json:"dt_nascimento"`
	Veiculos     []Veiculo `json:"veiculos"`
}

// PlacasElegiveis returns the plates of eligible vehicles, preserving
// upstream order.
func (a *Associado) PlacasElegiveis() []string {
	placas := make([]string, 0, len(a.Veiculos))
	for _, v := range a.Veiculos {
		if v.Elegivel() {
			placas = append(placas, v.Placa)
		}
	}
	return placas
}
