package entity

import (
	"errors"
	"fmt"
)

// Lookup failures surfaced to the HTTP boundary. Handlers map these to
// the fixed status codes and messages of the public contract.
var (
	ErrAssociadoNaoEncontrado = errors.New("associado não encontrado")
	ErrCpfInvalido            = errors.New("cpf retornado não confere com o consultado")
	ErrSemPlacas              = errors.New("nenhuma placa elegível para o documento")
	ErrSemBoletoAberto        = errors.New("nenhum boleto em aberto")
)

// ErroUpstream carries the status and message of a failed Ileva call.
type ErroUpstream struct {
	Status  int
	Message string
}

func (e *ErroUpstream) Error() string {
	return fmt.Sprintf("ileva status %d: %s", e.Status, e.Message)
}
