// Package arrangement searches the orderings of a side for one that wins the war.
package arrangement

import (
	"iter"

	"go.uber.org/zap"

	"github.com/napolitain/ageofwar/internal/combat"
	"github.com/napolitain/ageofwar/internal/models"
)

// MaxPermutations is the size of the search space (5!)
const MaxPermutations = 120

// Solution is a winning ordering of the user's side and its battle log
type Solution struct {
	Arrangement       models.Side
	Report            combat.Report
	PermutationsTried int // orderings evaluated up to and including this one
}

// Solver finds winning arrangements
type Solver struct {
	logger *zap.Logger
}

// Option configures a Solver
type Option func(*Solver)

// WithLogger attaches a logger for search diagnostics
func WithLogger(logger *zap.Logger) Option {
	return func(s *Solver) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSolver creates a new arrangement solver
func NewSolver(opts ...Option) *Solver {
	s := &Solver{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FindWinningArrangement returns the first ordering of user, in permutation
// order, that wins at least three engagements against enemy. The second
// result is false when no ordering does.
func (s *Solver) FindWinningArrangement(user, enemy models.Side) (*Solution, bool) {
	for sol := range s.WinningArrangements(user, enemy) {
		s.logger.Debug("winning arrangement found",
			zap.Stringer("arrangement", sol.Arrangement),
			zap.Int("wins", sol.Report.Wins),
			zap.Int("permutations_tried", sol.PermutationsTried))
		return sol, true
	}
	s.logger.Debug("no winning arrangement",
		zap.Stringer("user", user),
		zap.Stringer("enemy", enemy),
		zap.Int("permutations_tried", MaxPermutations))
	return nil, false
}

// WinningArrangements yields every winning ordering of user in permutation
// order. The first one yielded is what FindWinningArrangement returns.
func (s *Solver) WinningArrangements(user, enemy models.Side) iter.Seq[*Solution] {
	return func(yield func(*Solution) bool) {
		tried := 0
		for perm := range Permutations(user) {
			tried++
			if combat.CountWins(perm, enemy) < combat.WinsForVictory {
				continue
			}
			sol := &Solution{
				Arrangement:       perm,
				Report:            combat.Fight(perm, enemy),
				PermutationsTried: tried,
			}
			if !yield(sol) {
				return
			}
		}
	}
}

// FindWinningArrangement runs the search with a default solver
func FindWinningArrangement(user, enemy models.Side) (*Solution, bool) {
	return NewSolver().FindWinningArrangement(user, enemy)
}
