package arrangement

import (
	"iter"
	"slices"

	"github.com/napolitain/ageofwar/internal/models"
)

// Permutations yields every ordering of side in lexicographic order of the
// input positions. The first ordering is side itself.
func Permutations(side models.Side) iter.Seq[models.Side] {
	return func(yield func(models.Side) bool) {
		var idx [models.SideSize]int
		for i := range idx {
			idx[i] = i
		}
		for {
			var perm models.Side
			for i, j := range idx {
				perm[i] = side[j]
			}
			if !yield(perm) {
				return
			}
			if !nextPermutation(idx[:]) {
				return
			}
		}
	}
}

// nextPermutation rearranges p into the next lexicographic permutation.
// Returns false once p is the last (descending) permutation.
func nextPermutation(p []int) bool {
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	slices.Reverse(p[i+1:])
	return true
}
