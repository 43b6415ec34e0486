package converter

import (
	"fmt"

	"github.com/napolitain/ageofwar/internal/api"
	"github.com/napolitain/ageofwar/internal/models"
	"github.com/napolitain/ageofwar/internal/solver/arrangement"
)

// Side names used in error replies
const (
	SideYou   = "you"
	SideEnemy = "enemy"
)

// SideError attributes an input error to one of the two armies
type SideError struct {
	Side string
	Err  error
}

func (e *SideError) Error() string {
	return fmt.Sprintf("%s: %v", e.Side, e.Err)
}

func (e *SideError) Unwrap() error {
	return e.Err
}

// RequestToArmies converts a BattleRequest into both armies
func RequestToArmies(req *api.BattleRequest) (you, enemy models.Army, err error) {
	you, err = models.ArmyFromCounts(req.You)
	if err != nil {
		return models.Army{}, models.Army{}, &SideError{Side: SideYou, Err: err}
	}
	enemy, err = models.ArmyFromCounts(req.Enemy)
	if err != nil {
		return models.Army{}, models.Army{}, &SideError{Side: SideEnemy, Err: err}
	}
	return you, enemy, nil
}

// SolutionToResponse converts a search result into a BattleResponse.
// sol is nil when no winning arrangement exists.
func SolutionToResponse(you, enemy models.Side, sol *arrangement.Solution) api.BattleResponse {
	resp := api.BattleResponse{
		YourSide:  SideToAPI(you),
		EnemySide: SideToAPI(enemy),
	}
	if sol == nil {
		resp.PermutationsTried = arrangement.MaxPermutations
		resp.Message = "There is no chance of winning"
		return resp
	}

	resp.Found = true
	resp.Arrangement = SideToAPI(sol.Arrangement)
	resp.Summary = sol.Arrangement.String()
	resp.Wins = sol.Report.Wins
	resp.Draws = sol.Report.Draws
	resp.Losses = sol.Report.Losses
	resp.PermutationsTried = sol.PermutationsTried
	for _, e := range sol.Report.Engagements {
		resp.Engagements = append(resp.Engagements, EngagementToAPI(e))
	}
	resp.Message = fmt.Sprintf("You won the war! (Total Wins: %d)", sol.Report.Wins)
	return resp
}
