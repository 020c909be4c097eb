package authenticating

import "github.com/pkg/errors"

var (
	// ErrInvalidCredentials indica senha de administrador incorreta.
	ErrInvalidCredentials = errors.New("credenciais inválidas")

	// ErrInvalidToken indica token malformado ou com assinatura inválida.
	ErrInvalidToken = errors.New("token inválido")

	// ErrExpiredToken indica token expirado.
	ErrExpiredToken = errors.New("token expirado")

	// ErrPasswordNotConfigured indica que o hash da senha de administrador não
	// foi configurado no ambiente.
	ErrPasswordNotConfigured = errors.New("senha de administrador não configurada")
)
