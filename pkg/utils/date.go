package utils

import "time"

// MonthLabel retorna o rótulo humano do mês usado como chave dos períodos
// de relatório (ex: "January 2026").
func MonthLabel(t time.Time) string {
	return t.Format("January 2006")
}

// ParseMonthLabel converte um rótulo de período ("January 2026") para o
// primeiro dia do mês correspondente.
func ParseMonthLabel(label string) (time.Time, error) {
	return time.Parse("January 2006", label)
}

func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(time.DateOnly, dateStr)
}
