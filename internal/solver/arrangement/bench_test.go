package arrangement

import (
	"testing"

	"github.com/napolitain/ageofwar/internal/models"
)

// BenchmarkExhaustiveSearch measures the worst case: all 120 orderings lose
func BenchmarkExhaustiveSearch(b *testing.B) {
	user := side(b, p(models.Militia, 1), p(models.Spearmen, 1), p(models.LightCavalry, 1), p(models.HeavyCavalry, 1), p(models.FootArcher, 1))
	enemy := side(b, p(models.Militia, 1000), p(models.Spearmen, 1000), p(models.LightCavalry, 1000), p(models.HeavyCavalry, 1000), p(models.CavalryArcher, 1000))
	solver := NewSolver()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		solver.FindWinningArrangement(user, enemy)
	}
}

func BenchmarkPermutations(b *testing.B) {
	user := userSide(b)
	for i := 0; i < b.N; i++ {
		for range Permutations(user) {
		}
	}
}
