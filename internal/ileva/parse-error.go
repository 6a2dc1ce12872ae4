package ileva

import (
	"encoding/json"
	"fmt"

	"boletoconsulta/entity"
	"boletoconsulta/lib/api/response"
)

type erroRaw struct {
	Message string `json:"message"`
}

// parseErro turns an error body into *entity.ErroUpstream, keeping the
// upstream message when one can be extracted. A body that is not JSON at
// all comes back as a plain error, so callers treat it as a local failure
// rather than relaying the upstream status.
func parseErro(status int, body []byte) error {
	if !json.Valid(body) {
		return fmt.Errorf("ileva status %d: resposta ilegível", status)
	}

	var raw erroRaw
	// a valid JSON body of another shape just has no message to extract
	_ = json.Unmarshal(body, &raw)

	message := raw.Message
	if message == "" {
		message = response.MsgErroConsultaBoletos
	}
	return &entity.ErroUpstream{Status: status, Message: message}
}
