package youtube

import (
	"context"
	"time"

	"github.com/vfg2006/earnings-report-api/internal/config"
	"github.com/vfg2006/earnings-report-api/internal/domain"
	"github.com/vfg2006/earnings-report-api/internal/usecases/excluding"
	"github.com/vfg2006/earnings-report-api/internal/usecases/reporting"
	"github.com/vfg2006/earnings-report-api/pkg/log"
	"github.com/vfg2006/earnings-report-api/pkg/utils"

	ytdomain "github.com/vfg2006/earnings-report-api/infrastructure/integrator/youtube/domain"
	"github.com/vfg2006/earnings-report-api/infrastructure/integrator/youtube/ytclient"
)

const PlatformName = "youtube"

// Integrator monta o relatório de faturamento dos canais do YouTube para uma
// janela de datas.
type Integrator struct {
	client       ytclient.Client
	tokens       TokenProvider
	requestDelay time.Duration
}

func NewIntegrator(cfg *config.Config, client ytclient.Client, tokens TokenProvider) *Integrator {
	return &Integrator{
		client:       client,
		tokens:       tokens,
		requestDelay: time.Duration(cfg.EarningsSync.RequestDelayMs) * time.Millisecond,
	}
}

func (i *Integrator) Platform() string {
	return PlatformName
}

// BuildReport resolve um token de acesso válido, lista os canais do content
// owner, descarta os excluídos e consulta sequencialmente o relatório diário
// de cada canal restante. Falha em um canal pula apenas aquele canal.
func (i *Integrator) BuildReport(
	_ reporting.Credentials,
	since, until string,
	excluded map[string]bool,
) (*domain.PeriodReport, error) {
	accessToken, err := i.tokens.GetValidAccessToken(context.Background())
	if err != nil {
		return nil, err
	}

	channels, err := i.client.ListChannels(accessToken)
	if err != nil {
		return nil, err
	}

	active := excluding.ActiveEntities(channels, excluded)

	records := make([]domain.EntityRecord, 0, len(active))
	accumulator := reporting.NewDailyAccumulator()

	for index, channel := range active {
		if index > 0 {
			time.Sleep(i.requestDelay)
		}

		rows, err := i.client.QueryChannelReport(accessToken, channel.ID, since, until)
		if err != nil {
			log.L.WithFields(log.Fields{
				"platform":  PlatformName,
				"channelId": channel.ID,
			}).WithError(err).Error("Erro ao buscar relatório do canal, pulando")
			continue
		}

		record := buildChannelRecord(channel, rows)

		// Canal sem receita e sem visualizações no período fica fora do
		// relatório.
		if record.Revenue == 0 && record.Views == 0 {
			continue
		}

		records = append(records, record)
		mergeChannelRows(accumulator, rows)
	}

	reporting.SortByRevenue(records)

	return &domain.PeriodReport{
		Entities: records,
		Daily:    accumulator.Totals(),
	}, nil
}

func buildChannelRecord(channel ytdomain.Channel, rows []ytdomain.ReportRow) domain.EntityRecord {
	var revenue, views, minutes, gained, lost float64

	for _, row := range rows {
		revenue += row.Revenue
		views += row.Views
		minutes += row.MinutesWatched
		gained += row.SubscribersGained
		lost += row.SubscribersLost
	}

	revenue = utils.RoundWithTwoDecimalPlace(revenue)
	totalViews := int64(views)

	rpm := 0.0
	if totalViews > 0 {
		rpm = utils.RoundWithThreeDecimalPlace(revenue / float64(totalViews) * 1000)
	}

	return domain.EntityRecord{
		ID:              channel.ID,
		DisplayName:     channel.Snippet.Title,
		Revenue:         revenue,
		Views:           totalViews,
		RPM:             rpm,
		WatchHours:      utils.RoundWithTwoDecimalPlace(utils.MinutesToHours(minutes)),
		SubscriberDelta: int64(gained) - int64(lost),
	}
}

func mergeChannelRows(accumulator reporting.DailyAccumulator, rows []ytdomain.ReportRow) {
	revenueSeries := make([]domain.DailyPoint, 0, len(rows))
	viewSeries := make([]domain.DailyPoint, 0, len(rows))

	for _, row := range rows {
		revenueSeries = append(revenueSeries, domain.DailyPoint{Date: row.Date, Value: row.Revenue})
		viewSeries = append(viewSeries, domain.DailyPoint{Date: row.Date, Value: row.Views})
	}

	accumulator.MergeRevenue(revenueSeries)
	accumulator.MergeViews(viewSeries)
}
