package reporting

import (
	"time"

	"github.com/vfg2006/earnings-report-api/infrastructure/repository"
	"github.com/vfg2006/earnings-report-api/internal/domain"
)

// Credentials agrupa as credenciais resolvidas uma única vez no início de uma
// execução e repassadas a cada adaptador de plataforma.
type Credentials struct {
	Meta *domain.MetaCredential
}

// LoadCredentials lê as credenciais do config store. Chave ausente resulta em
// credencial nula; cada adaptador decide se consegue trabalhar sem ela.
func LoadCredentials(store repository.ConfigStore) (Credentials, error) {
	credential := &domain.MetaCredential{}

	found, err := store.GetInto(domain.KeyMetaAPIConfig, credential)
	if err != nil {
		return Credentials{}, err
	}

	if !found {
		return Credentials{}, nil
	}

	return Credentials{Meta: credential}, nil
}

// SourceAdapter é um adaptador de plataforma capaz de montar o relatório de
// um período. Falhas internas por entidade são absorvidas pelo adaptador;
// um erro retornado aqui significa que a plataforma inteira falhou.
type SourceAdapter interface {
	Platform() string
	BuildReport(creds Credentials, since, until string, excluded map[string]bool) (*domain.PeriodReport, error)
}

// Reporter monta o relatório combinado das duas plataformas.
type Reporter interface {
	BuildCombinedReport(now time.Time, since, until string, creds Credentials) (*domain.CombinedReport, error)
}
