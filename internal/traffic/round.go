package traffic

import "math"

const bytesPerGiB = 1024 * 1024 * 1024

// RoundTo rounds x to precision decimal places, ties away from zero.
func RoundTo(x float64, precision int) float64 {
	p := math.Pow10(precision)
	return math.Round(x*p) / p
}

// GiB converts a byte count to gibibytes rounded to three decimals.
func GiB(bytes uint64) float64 {
	return RoundTo(float64(bytes)/bytesPerGiB, 3)
}
