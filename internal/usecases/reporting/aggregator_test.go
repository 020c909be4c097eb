package reporting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/earnings-report-api/internal/domain"

	"github.com/vfg2006/earnings-report-api/internal/usecases/reporting"
)

func TestSumPeriodEmpty(t *testing.T) {
	assert.Zero(t, reporting.SumPeriod(nil, true))
	assert.Zero(t, reporting.SumPeriod([]domain.MetricSample{}, false))
}

func TestSumPeriodMicroCurrency(t *testing.T) {
	samples := []domain.MetricSample{
		{Date: "2026-08-01", Micro: &domain.MicroCurrency{CurrencyCode: "USD", MicroAmount: 250_000_000}},
		{Date: "2026-08-02", Micro: &domain.MicroCurrency{CurrencyCode: "USD", MicroAmount: 150_000_000}},
	}

	assert.InDelta(t, 4.0, reporting.SumPeriod(samples, true), 1e-9)
}

func TestSumPeriodPlainValues(t *testing.T) {
	samples := []domain.MetricSample{
		{Date: "2026-08-01", Value: 1200},
		{Date: "2026-08-02", Value: 800},
	}

	assert.InDelta(t, 2000.0, reporting.SumPeriod(samples, false), 1e-9)
}

func TestDailyAccumulatorMergesAcrossEntities(t *testing.T) {
	accumulator := reporting.NewDailyAccumulator()

	accumulator.MergeRevenue([]domain.DailyPoint{
		{Date: "2026-08-02", Value: 1.5},
		{Date: "2026-08-01", Value: 2.0},
	})
	accumulator.MergeRevenue([]domain.DailyPoint{
		{Date: "2026-08-01", Value: 0.504},
	})
	accumulator.MergeViews([]domain.DailyPoint{
		{Date: "2026-08-01", Value: 100},
		{Date: "2026-08-02", Value: 200},
	})
	accumulator.MergeViews([]domain.DailyPoint{
		{Date: "2026-08-03", Value: 50},
	})

	totals := accumulator.Totals()
	require.Len(t, totals, 3)

	// Ordenação cronológica crescente e receita arredondada na agregação
	assert.Equal(t, "2026-08-01", totals[0].Date)
	assert.InDelta(t, 2.5, totals[0].Revenue, 1e-9)
	assert.Equal(t, int64(100), totals[0].Views)

	assert.Equal(t, "2026-08-02", totals[1].Date)
	assert.InDelta(t, 1.5, totals[1].Revenue, 1e-9)
	assert.Equal(t, int64(200), totals[1].Views)

	// Data presente só em uma métrica ainda aparece
	assert.Equal(t, "2026-08-03", totals[2].Date)
	assert.Zero(t, totals[2].Revenue)
	assert.Equal(t, int64(50), totals[2].Views)
}

func TestSortByRevenueStable(t *testing.T) {
	records := []domain.EntityRecord{
		{ID: "a", Revenue: 5},
		{ID: "b", Revenue: 10},
		{ID: "c", Revenue: 5},
		{ID: "d", Revenue: 20},
	}

	reporting.SortByRevenue(records)

	// Empate de receita preserva a ordem de chegada (a antes de c)
	assert.Equal(t, "d", records[0].ID)
	assert.Equal(t, "b", records[1].ID)
	assert.Equal(t, "a", records[2].ID)
	assert.Equal(t, "c", records[3].ID)
}
