package excluding

import (
	"sort"
	"time"

	"github.com/vfg2006/earnings-report-api/infrastructure/repository"
	"github.com/vfg2006/earnings-report-api/internal/domain"
	"github.com/vfg2006/earnings-report-api/pkg/utils"
)

// Service administra os conjuntos mensais de entidades excluídas dos
// relatórios, persistidos no config store.
type Service interface {
	CurrentSet(now time.Time) (map[string]bool, error)
	ListForPeriod(period string) ([]string, error)
	Toggle(period, entityID string) ([]string, error)
}

type service struct {
	store repository.ConfigStore
}

func NewService(store repository.ConfigStore) Service {
	return &service{store: store}
}

func (s *service) loadConfig() (domain.ExclusionConfig, error) {
	config := domain.ExclusionConfig{}

	if _, err := s.store.GetInto(domain.KeyExcludedPageIDs, &config); err != nil {
		return nil, err
	}

	return config, nil
}

// CurrentSet resolve o conjunto de exclusão do mês corrente como conjunto de
// pertinência. Mês sem configuração resulta em conjunto vazio.
func (s *service) CurrentSet(now time.Time) (map[string]bool, error) {
	config, err := s.loadConfig()
	if err != nil {
		return nil, err
	}

	excluded := make(map[string]bool)

	for _, id := range config[utils.MonthLabel(now)] {
		excluded[id] = true
	}

	return excluded, nil
}

func (s *service) ListForPeriod(period string) ([]string, error) {
	config, err := s.loadConfig()
	if err != nil {
		return nil, err
	}

	ids := config[period]
	if ids == nil {
		ids = make([]string, 0)
	}

	return ids, nil
}

// Toggle alterna a exclusão de uma entidade no período informado. Um período
// ainda sem configuração é semeado com uma cópia do período configurado mais
// recente, para que as exclusões vigentes sigam valendo no mês novo.
func (s *service) Toggle(period, entityID string) ([]string, error) {
	config, err := s.loadConfig()
	if err != nil {
		return nil, err
	}

	ids, ok := config[period]
	if !ok {
		ids = copyMostRecentPeriod(config)
	}

	ids = toggleID(ids, entityID)
	config[period] = ids

	if err := s.store.Put(domain.KeyExcludedPageIDs, config); err != nil {
		return nil, err
	}

	return ids, nil
}

func toggleID(ids []string, entityID string) []string {
	for index, id := range ids {
		if id == entityID {
			return append(ids[:index], ids[index+1:]...)
		}
	}

	return append(ids, entityID)
}

// copyMostRecentPeriod devolve uma cópia dos IDs do período mais recente já
// configurado. Rótulos que não parseiam como mês são ignorados.
func copyMostRecentPeriod(config domain.ExclusionConfig) []string {
	type labeled struct {
		label string
		date  time.Time
	}

	periods := make([]labeled, 0, len(config))

	for label := range config {
		date, err := utils.ParseMonthLabel(label)
		if err != nil {
			continue
		}

		periods = append(periods, labeled{label: label, date: date})
	}

	if len(periods) == 0 {
		return make([]string, 0)
	}

	sort.Slice(periods, func(i, j int) bool {
		return periods[i].date.After(periods[j].date)
	})

	source := config[periods[0].label]
	seeded := make([]string, len(source))
	copy(seeded, source)

	return seeded
}
