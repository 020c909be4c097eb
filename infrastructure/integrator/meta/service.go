package meta

import (
	"time"

	"github.com/vfg2006/earnings-report-api/internal/config"
	"github.com/vfg2006/earnings-report-api/internal/domain"
	"github.com/vfg2006/earnings-report-api/internal/usecases/excluding"
	"github.com/vfg2006/earnings-report-api/internal/usecases/reporting"
	"github.com/vfg2006/earnings-report-api/pkg/log"
	"github.com/vfg2006/earnings-report-api/pkg/utils"

	metadomain "github.com/vfg2006/earnings-report-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/earnings-report-api/infrastructure/integrator/meta/metaclient"
)

const PlatformName = "facebook"

// Integrator monta o relatório de faturamento das páginas do Facebook para
// uma janela de datas.
type Integrator struct {
	client       metaclient.Client
	requestDelay time.Duration
}

func NewIntegrator(cfg *config.Config, client metaclient.Client) *Integrator {
	return &Integrator{
		client:       client,
		requestDelay: time.Duration(cfg.EarningsSync.RequestDelayMs) * time.Millisecond,
	}
}

func (i *Integrator) Platform() string {
	return PlatformName
}

// BuildReport lista as páginas administradas, descarta as excluídas e busca
// sequencialmente as métricas de cada página restante. Falha em uma página
// pula apenas aquela página; o erro só sobe quando a listagem inteira falha
// ou a credencial está ausente.
func (i *Integrator) BuildReport(
	creds reporting.Credentials,
	since, until string,
	excluded map[string]bool,
) (*domain.PeriodReport, error) {
	if creds.Meta == nil || creds.Meta.SystemToken == "" {
		return nil, metadomain.ErrMissingCredential
	}

	pages, err := i.client.ListPages(creds.Meta.SystemToken)
	if err != nil {
		return nil, err
	}

	active := excluding.ActiveEntities(pages, excluded)

	records := make([]domain.EntityRecord, 0, len(active))
	accumulator := reporting.NewDailyAccumulator()

	for index, page := range active {
		if index > 0 {
			time.Sleep(i.requestDelay)
		}

		record, revenueSeries, viewSeries, ok := i.fetchPage(page, since, until)
		if !ok {
			continue
		}

		// Página sem receita e sem visualizações no período fica fora do
		// relatório.
		if record.Revenue == 0 && record.Views == 0 {
			continue
		}

		records = append(records, record)
		accumulator.MergeRevenue(revenueSeries)
		accumulator.MergeViews(viewSeries)
	}

	reporting.SortByRevenue(records)

	return &domain.PeriodReport{
		Entities: records,
		Daily:    accumulator.Totals(),
	}, nil
}

func (i *Integrator) fetchPage(
	page metadomain.Page,
	since, until string,
) (domain.EntityRecord, []domain.DailyPoint, []domain.DailyPoint, bool) {
	logger := log.L.WithFields(log.Fields{
		"platform": PlatformName,
		"pageId":   page.ID,
		"pageName": page.Name,
	})

	revenueSamples, err := i.client.GetPageMetric(page, metadomain.MetricEarnings, since, until)
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar faturamento da página, pulando")
		return domain.EntityRecord{}, nil, nil, false
	}

	time.Sleep(i.requestDelay)

	viewSamples, err := i.client.GetPageMetric(page, metadomain.MetricPageViews, since, until)
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar visualizações da página, pulando")
		return domain.EntityRecord{}, nil, nil, false
	}

	revenue := utils.RoundWithTwoDecimalPlace(reporting.SumPeriod(revenueSamples, true))
	views := int64(reporting.SumPeriod(viewSamples, false))

	rpm := 0.0
	if views > 0 {
		rpm = utils.RoundWithTwoDecimalPlace(revenue / float64(views) * 1000)
	}

	record := domain.EntityRecord{
		ID:          page.ID,
		DisplayName: page.Name,
		Revenue:     revenue,
		Views:       views,
		RPM:         rpm,
	}

	return record,
		reporting.ToDailySeries(revenueSamples, true),
		reporting.ToDailySeries(viewSamples, false),
		true
}
