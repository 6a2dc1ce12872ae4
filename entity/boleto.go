package entity

// SituacaoAberto is the boleto status that makes an invoice payable.
const SituacaoAberto = "Aberto"

type Boleto struct {
	CodBoleto      int64   `json:"cod_boleto"`
	LinhaDigitavel string  `json:"linha_digitavel"`
	ValorBoleto    float64 `json:"valor_boleto"`
	Referencia     string  `json:"referencia"`
	DtVencimento   string  `json:"dt_vencimento"`
	DtPagamento    string  `json:"dt_pagamento"`
	SituacaoBoleto string  `json:"situacao_boleto"`
	UrlBoleto      string  `json:"url_boleto"`
	Pix            string  `json:"pix"`
}

// ListaBoletos is one upstream page of invoices. Pagination metadata is
// not modeled here: /api/boletos forwards the raw body instead.
type ListaBoletos struct {
	Boletos []Boleto `json:"boletos"`
}

// PrimeiroAberto returns the first invoice still open, in upstream order,
// or nil when none qualifies.
func (l *ListaBoletos) PrimeiroAberto() *Boleto {
	for i := range l.Boletos {
		if l.Boletos[i].SituacaoBoleto == SituacaoAberto {
			return &l.Boletos[i]
		}
	}
	return nil
}
