package utils

import (
	"math"
	"strconv"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatUnits formata o total de vendas no formato exibido no painel,
// sem decimais desnecessários ("35 units", "35.5 units")
func FormatUnits(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64) + " units"
}
