package utils

import "math"

// Fator de escala usado pela API de insights sociais para valores monetários.
// O valor canônico em USD é microAmount / 100_000_000.
const microsPerUSD = 100_000_000

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

func RoundWithThreeDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*1000) / 1000
}

// MicroToUSD converte um valor inteiro em micro-moeda para USD.
// Nenhum arredondamento é aplicado aqui; o arredondamento acontece
// apenas nas fronteiras de agregação.
func MicroToUSD(microAmount int64) float64 {
	return float64(microAmount) / microsPerUSD
}

// MinutesToHours converte minutos assistidos para horas.
func MinutesToHours(minutes float64) float64 {
	return minutes / 60
}
