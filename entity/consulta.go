package entity

import (
	"net/http"

	"boletoconsulta/lib/validate"
)

// ConsultaRequest is the workflow page form input.
type ConsultaRequest struct {
	CpfCnpj string `json:"cpf_cnpj" validate:"required"`
}

func (c *ConsultaRequest) Bind(_ *http.Request) error {
	return validate.Struct(c)
}

// Consulta is the workflow result: the eligible plates found for the
// document and the single open invoice selected for display.
type Consulta struct {
	CpfCnpj string
	Placas  []string
	Boleto  *Boleto
}
