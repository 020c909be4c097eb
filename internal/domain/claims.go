package domain

import "github.com/golang-jwt/jwt/v5"

// Claims é o conteúdo do token de sessão do modo administrador.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

const RoleAdmin = "admin"
