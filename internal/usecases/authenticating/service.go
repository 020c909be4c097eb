package authenticating

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/vfg2006/earnings-report-api/internal/config"
	"github.com/vfg2006/earnings-report-api/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 12 * time.Hour

// Authenticator valida a senha de administrador e emite/valida os tokens de
// acesso do painel.
type Authenticator interface {
	Login(password string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type service struct {
	config *config.Config
}

func NewService(cfg *config.Config) Authenticator {
	return &service{config: cfg}
}

// Login compara a senha com o hash configurado e emite um JWT de
// administrador com validade limitada.
func (s *service) Login(password string) (string, error) {
	hash := s.config.Auth.AdminPasswordHash
	if hash == "" {
		return "", ErrPasswordNotConfigured
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	now := time.Now()

	claims := &domain.Claims{
		Role: domain.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.config.Auth.Secret))
	if err != nil {
		return "", errors.Wrap(err, "erro ao assinar token de acesso")
	}

	return signed, nil
}

// ValidateToken verifica assinatura e validade do token e devolve as claims.
func (s *service) ValidateToken(tokenString string) (*domain.Claims, error) {
	claims := &domain.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}

		return []byte(s.config.Auth.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}

		return nil, ErrInvalidToken
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
