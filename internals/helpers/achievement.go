package helper

import "math"

// Achievement = round(count / target × 100); target ≤ 0 selalu 0.
func Achievement(count int64, target int) int {
	if target <= 0 || count <= 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(target) * 100))
}

// PotensiSuara: estimasi suara dari jumlah relawan (1 relawan ≈ 5 suara).
func PotensiSuara(relawan int64) int64 {
	return relawan * 5
}
