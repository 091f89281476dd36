package utils

import (
	"math"
	"strconv"
)

// RoundFloat rounds a float64 to a specified number of decimal places.
func RoundFloat(val float64, precision uint) float64 {
	ratio := math.Pow(10, float64(precision))
	return math.Round(val*ratio) / ratio
}

// Round2 rounds to 2 decimals, the precision of every total handed to the
// presentation layer.
func Round2(val float64) float64 {
	return RoundFloat(val, 2)
}

// FormatFixed renders a float with a fixed number of decimals ("0.00" style).
func FormatFixed(val float64, decimals int) string {
	return strconv.FormatFloat(val, 'f', decimals, 64)
}
