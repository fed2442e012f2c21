package utils

import "math"

func Average(xs []float64) float64 {
	if len(xs) == 0 {
		return 0.0
	}

	total := 0.0
	for _, v := range xs {
		total += v
	}
	return total / float64(len(xs))
}

// RMS is the square root of the mean of squared values.
func RMS(xs []float64) float64 {
	if len(xs) == 0 {
		return 0.0
	}

	squares := make([]float64, len(xs))
	for i, v := range xs {
		squares[i] = v * v
	}

	return math.Sqrt(Average(squares))
}
