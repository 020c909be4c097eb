package youtube

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/earnings-report-api/infrastructure/repository"
	"github.com/vfg2006/earnings-report-api/internal/config"
	"github.com/vfg2006/earnings-report-api/internal/domain"
	"github.com/vfg2006/earnings-report-api/pkg/log"
	"golang.org/x/oauth2"

	ytdomain "github.com/vfg2006/earnings-report-api/infrastructure/integrator/youtube/domain"
)

// TokenProvider entrega um token de acesso válido para as APIs do YouTube,
// renovando-o quando necessário.
type TokenProvider interface {
	GetValidAccessToken(ctx context.Context) (string, error)
}

type tokenProvider struct {
	oauthConfig *oauth2.Config
	store       repository.ConfigStore
}

func NewTokenProvider(cfg *config.Config, store repository.ConfigStore) TokenProvider {
	return &tokenProvider{
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.YouTube.ClientID,
			ClientSecret: cfg.YouTube.ClientSecret,
			Endpoint: oauth2.Endpoint{
				TokenURL: cfg.YouTube.TokenURL,
			},
		},
		store: store,
	}
}

// GetValidAccessToken lê os tokens persistidos, renova pelo refresh token se o
// access token expirou e grava de volta o conjunto rotacionado.
func (p *tokenProvider) GetValidAccessToken(ctx context.Context) (string, error) {
	stored := &domain.YouTubeTokenSet{}

	found, err := p.store.GetInto(domain.KeyYouTubeTokens, stored)
	if err != nil {
		return "", err
	}

	if !found || stored.RefreshToken == "" {
		return "", ytdomain.ErrMissingTokens
	}

	current := &oauth2.Token{
		AccessToken:  stored.AccessToken,
		RefreshToken: stored.RefreshToken,
		Expiry:       stored.Expiry,
	}

	refreshed, err := p.oauthConfig.TokenSource(ctx, current).Token()
	if err != nil {
		return "", errors.Wrap(err, "erro ao renovar token de acesso do YouTube")
	}

	if refreshed.AccessToken != stored.AccessToken {
		rotated := &domain.YouTubeTokenSet{
			AccessToken:  refreshed.AccessToken,
			RefreshToken: refreshed.RefreshToken,
			Expiry:       refreshed.Expiry,
		}

		// O Google pode omitir o refresh token na renovação; mantém o antigo
		if rotated.RefreshToken == "" {
			rotated.RefreshToken = stored.RefreshToken
		}

		if err := p.store.Put(domain.KeyYouTubeTokens, rotated); err != nil {
			log.L.WithError(err).Error("Erro ao persistir tokens renovados do YouTube")
		}
	}

	return refreshed.AccessToken, nil
}
