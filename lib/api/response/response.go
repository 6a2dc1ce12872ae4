package response

// Fixed user-facing messages of the public contract.
const (
	MsgCpfObrigatorio         = "CPF é obrigatório!"
	MsgCpfInvalido            = "CPF inválido."
	MsgAssociadoNaoEncontrado = "Associado não encontrado."
	MsgErroConsultaApi        = "Erro ao consultar a API."
	MsgParametrosObrigatorios = "Parâmetros cpf e placa são obrigatórios."
	MsgErroConsultaBoletos    = "Erro ao consultar boletos."
	MsgErroInterno            = "Erro interno ao consultar."
)

// Placas is the /api/placas body. The plate list is always present, empty
// on error; the error key is omitted on success.
type Placas struct {
	Placas []string `json:"placas"`
	Error  string   `json:"error,omitempty"`
}

func PlacasOk(placas []string) Placas {
	if placas == nil {
		placas = []string{}
	}
	return Placas{Placas: placas}
}

func PlacasErro(message string) Placas {
	return Placas{Placas: []string{}, Error: message}
}

// Erro is the error body of /api/boletos and the fallback handlers.
type Erro struct {
	Error string `json:"error"`
}
