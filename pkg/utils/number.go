package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// ClampNonNegative trunca para inteiro não-negativo (valores de orçamento)
func ClampNonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
