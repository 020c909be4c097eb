package reporting

import (
	"time"

	"github.com/vfg2006/earnings-report-api/internal/domain"
	"github.com/vfg2006/earnings-report-api/pkg/log"
)

// ExclusionResolver resolve o conjunto de exclusão vigente para o instante da
// execução.
type ExclusionResolver interface {
	CurrentSet(now time.Time) (map[string]bool, error)
}

type service struct {
	facebook   SourceAdapter
	youtube    SourceAdapter
	exclusions ExclusionResolver
}

func NewService(facebook, youtube SourceAdapter, exclusions ExclusionResolver) Reporter {
	return &service{
		facebook:   facebook,
		youtube:    youtube,
		exclusions: exclusions,
	}
}

// BuildCombinedReport resolve as exclusões uma única vez e monta o relatório
// de cada plataforma de forma isolada: a falha completa de uma plataforma
// rende um relatório vazio para ela sem derrubar a outra.
func (s *service) BuildCombinedReport(
	now time.Time,
	since, until string,
	creds Credentials,
) (*domain.CombinedReport, error) {
	excluded, err := s.exclusions.CurrentSet(now)
	if err != nil {
		log.L.WithError(err).Error("Erro ao resolver exclusões, seguindo sem filtro")
		excluded = map[string]bool{}
	}

	return &domain.CombinedReport{
		Facebook: s.runAdapter(s.facebook, creds, since, until, excluded),
		YouTube:  s.runAdapter(s.youtube, creds, since, until, excluded),
	}, nil
}

func (s *service) runAdapter(
	adapter SourceAdapter,
	creds Credentials,
	since, until string,
	excluded map[string]bool,
) *domain.PeriodReport {
	report, err := adapter.BuildReport(creds, since, until, excluded)
	if err != nil {
		log.L.WithFields(log.Fields{
			"platform": adapter.Platform(),
			"since":    since,
			"until":    until,
		}).WithError(err).Error("Erro ao montar relatório da plataforma, usando relatório vazio")

		return domain.EmptyPeriodReport()
	}

	return report
}
