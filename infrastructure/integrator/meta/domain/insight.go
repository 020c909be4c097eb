package metadomain

import (
	"github.com/vfg2006/earnings-report-api/internal/domain"
	"github.com/vfg2006/earnings-report-api/pkg/utils"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Métricas diárias consultadas por página.
const (
	MetricEarnings  = "content_monetization_earnings"
	MetricPageViews = "page_views_total"

	PeriodDay = "day"
)

// InsightValue é um ponto diário de uma métrica. O campo value muda de forma
// conforme a métrica: número simples para contagens e objeto de micro-moeda
// para faturamento, por isso é mantido cru até a conversão.
type InsightValue struct {
	EndTime string              `json:"end_time"`
	Value   jsoniter.RawMessage `json:"value"`
}

// ToSample converte o ponto cru em uma amostra de métrica. Valores ilegíveis
// ou ausentes viram zero em vez de derrubar a série inteira.
func (v InsightValue) ToSample() domain.MetricSample {
	sample := domain.MetricSample{Date: extractDate(v.EndTime)}

	if len(v.Value) == 0 {
		return sample
	}

	var plain float64
	if err := json.Unmarshal(v.Value, &plain); err == nil {
		sample.Value = plain
		return sample
	}

	var micro domain.MicroCurrency
	if err := json.Unmarshal(v.Value, &micro); err == nil {
		sample.Micro = &micro
		sample.Value = utils.MicroToUSD(micro.MicroAmount)
	}

	return sample
}

// extractDate reduz o end_time da API Graph (RFC3339 com offset) à data civil
// usada como chave das séries diárias.
func extractDate(endTime string) string {
	if len(endTime) >= 10 {
		return endTime[:10]
	}

	return endTime
}

// Insight é uma métrica de página com sua série diária de valores.
type Insight struct {
	Name   string         `json:"name"`
	Period string         `json:"period"`
	Values []InsightValue `json:"values"`
}

// InsightsResponse é a resposta da consulta de métricas de uma página.
type InsightsResponse struct {
	Data  []Insight     `json:"data"`
	Error *ErrorDetails `json:"error,omitempty"`
}

// Samples achata a resposta na série diária da primeira métrica retornada.
func (r InsightsResponse) Samples() []domain.MetricSample {
	samples := make([]domain.MetricSample, 0)

	for _, insight := range r.Data {
		for _, value := range insight.Values {
			samples = append(samples, value.ToSample())
		}
	}

	return samples
}
