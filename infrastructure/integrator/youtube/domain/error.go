package ytdomain

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrMissingTokens indica que os tokens OAuth do YouTube não foram
// configurados no armazenamento de configuração.
var ErrMissingTokens = errors.New("tokens OAuth do YouTube ausentes na configuração")

// ErrorDetails é o envelope de erro das APIs do Google.
type ErrorDetails struct {
	Code    int    `json:"code,omitempty"`
	Message string `json:"message"`
	Status  string `json:"status,omitempty"`
}

func (e *ErrorDetails) Error() string {
	return fmt.Sprintf("erro da API do YouTube (code %d, status %s): %s", e.Code, e.Status, e.Message)
}
