package metadomain

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrMissingCredential indica que o token de sistema do Meta não foi
// configurado no armazenamento de configuração.
var ErrMissingCredential = errors.New("token de sistema do Meta ausente na configuração")

// ErrorDetails é o envelope de erro da API Graph.
type ErrorDetails struct {
	Message   string `json:"message"`
	Type      string `json:"type,omitempty"`
	Code      int    `json:"code,omitempty"`
	FbTraceID string `json:"fbtrace_id,omitempty"`
}

func (e *ErrorDetails) Error() string {
	return fmt.Sprintf("erro da API do Meta (code %d, type %s): %s", e.Code, e.Type, e.Message)
}
