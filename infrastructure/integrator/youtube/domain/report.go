package ytdomain

import (
	jsoniter "github.com/json-iterator/go"
)

// Métricas diárias consultadas por canal, na ordem posicional das linhas.
const ReportMetrics = "estimatedRevenue,views,estimatedMinutesWatched,subscribersGained,subscribersLost"

const DimensionDay = "day"

// Índices posicionais das colunas do relatório analítico.
const (
	colDate = iota
	colRevenue
	colViews
	colMinutes
	colSubscribersGained
	colSubscribersLost
	reportColumns
)

// ReportRow é uma linha diária já tipada do relatório analítico de um canal.
type ReportRow struct {
	Date              string
	Revenue           float64
	Views             float64
	MinutesWatched    float64
	SubscribersGained float64
	SubscribersLost   float64
}

// ReportResponse é a resposta crua do relatório analítico. As linhas chegam
// como tuplas posicionais heterogêneas (data string seguida de números).
type ReportResponse struct {
	Rows  [][]jsoniter.RawMessage `json:"rows"`
	Error *ErrorDetails           `json:"error,omitempty"`
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// TypedRows converte as tuplas cruas em linhas tipadas. Linhas curtas ou com
// células ilegíveis são descartadas em vez de abortar o relatório.
func (r ReportResponse) TypedRows() []ReportRow {
	rows := make([]ReportRow, 0, len(r.Rows))

	for _, raw := range r.Rows {
		if len(raw) < reportColumns {
			continue
		}

		var date string
		if err := json.Unmarshal(raw[colDate], &date); err != nil {
			continue
		}

		rows = append(rows, ReportRow{
			Date:              date,
			Revenue:           asFloat(raw[colRevenue]),
			Views:             asFloat(raw[colViews]),
			MinutesWatched:    asFloat(raw[colMinutes]),
			SubscribersGained: asFloat(raw[colSubscribersGained]),
			SubscribersLost:   asFloat(raw[colSubscribersLost]),
		})
	}

	return rows
}

func asFloat(raw jsoniter.RawMessage) float64 {
	var value float64
	if err := json.Unmarshal(raw, &value); err != nil {
		return 0
	}

	return value
}
