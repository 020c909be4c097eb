package reporting

import (
	"sort"

	"github.com/vfg2006/earnings-report-api/internal/domain"
	"github.com/vfg2006/earnings-report-api/pkg/utils"
)

// sampleValue resolve o valor canônico de uma amostra: micro-moeda convertida
// para USD quando a métrica é monetária, número puro nos demais casos.
func sampleValue(sample domain.MetricSample, isCurrency bool) float64 {
	if isCurrency && sample.Micro != nil {
		return utils.MicroToUSD(sample.Micro.MicroAmount)
	}

	return sample.Value
}

// SumPeriod soma uma série de amostras diárias no total do período.
// Série vazia soma zero, nunca erro.
func SumPeriod(samples []domain.MetricSample, isCurrency bool) float64 {
	total := 0.0

	for _, sample := range samples {
		total += sampleValue(sample, isCurrency)
	}

	return total
}

// ToDailySeries converte amostras cruas em pontos diários na unidade canônica.
func ToDailySeries(samples []domain.MetricSample, isCurrency bool) []domain.DailyPoint {
	series := make([]domain.DailyPoint, 0, len(samples))

	for _, sample := range samples {
		series = append(series, domain.DailyPoint{
			Date:  sample.Date,
			Value: sampleValue(sample, isCurrency),
		})
	}

	return series
}

// DailyAccumulator acumula séries diárias de várias entidades em totais por
// data. Datas ausentes em uma entidade simplesmente não contribuem.
type DailyAccumulator map[string]*domain.DailyTotal

func NewDailyAccumulator() DailyAccumulator {
	return make(DailyAccumulator)
}

func (acc DailyAccumulator) entry(date string) *domain.DailyTotal {
	total, ok := acc[date]
	if !ok {
		total = &domain.DailyTotal{Date: date}
		acc[date] = total
	}

	return total
}

func (acc DailyAccumulator) MergeRevenue(series []domain.DailyPoint) {
	for _, point := range series {
		acc.entry(point.Date).Revenue += point.Value
	}
}

func (acc DailyAccumulator) MergeViews(series []domain.DailyPoint) {
	for _, point := range series {
		acc.entry(point.Date).Views += int64(point.Value)
	}
}

// Totals materializa o acumulador em ordem cronológica crescente, arredondando
// a receita de cada dia na fronteira de agregação.
func (acc DailyAccumulator) Totals() []domain.DailyTotal {
	totals := make([]domain.DailyTotal, 0, len(acc))

	for _, total := range acc {
		totals = append(totals, domain.DailyTotal{
			Date:    total.Date,
			Revenue: utils.RoundWithTwoDecimalPlace(total.Revenue),
			Views:   total.Views,
		})
	}

	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Date < totals[j].Date
	})

	return totals
}

// SortByRevenue ordena registros por receita decrescente de forma estável:
// entidades com a mesma receita mantêm a ordem de chegada.
func SortByRevenue(records []domain.EntityRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Revenue > records[j].Revenue
	})
}
