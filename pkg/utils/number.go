package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// MicrosToCurrency converte valores monetários em micros (formato da API do
// Google Ads) para a unidade da moeda, com duas casas decimais.
func MicrosToCurrency(micros int64) float64 {
	return RoundWithTwoDecimalPlace(float64(micros) / 1_000_000)
}
