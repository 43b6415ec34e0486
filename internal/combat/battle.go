package combat

import (
	"fmt"

	"github.com/napolitain/ageofwar/internal/models"
)

// WinsForVictory is the number of won engagements needed to win the war
const WinsForVictory = 3

// Outcome is the result of one engagement from the ally's perspective
type Outcome int

const (
	Loss Outcome = iota
	Draw
	Win
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "WIN"
	case Draw:
		return "DRAW"
	case Loss:
		return "LOSS"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Engagement is one position-wise fight between an ally and an enemy platoon
type Engagement struct {
	Position      int // 1-based
	Ally          models.Platoon
	Enemy         models.Platoon
	AllyStrength  int
	EnemyStrength int
	Outcome       Outcome
}

// Engage computes both strengths and the outcome for a single position
func Engage(position int, ally, enemy models.Platoon) Engagement {
	e := Engagement{
		Position:      position,
		Ally:          ally,
		Enemy:         enemy,
		AllyStrength:  EffectiveStrength(ally, enemy),
		EnemyStrength: EffectiveStrength(enemy, ally),
	}
	switch {
	case e.AllyStrength > e.EnemyStrength:
		e.Outcome = Win
	case e.AllyStrength == e.EnemyStrength:
		e.Outcome = Draw
	default:
		e.Outcome = Loss
	}
	return e
}

// String renders the engagement as a battle log line
func (e Engagement) String() string {
	return fmt.Sprintf("Battle %d: %s vs %s => %s (You: %d vs Enemy: %d)",
		e.Position, e.Ally, e.Enemy, e.Outcome, e.AllyStrength, e.EnemyStrength)
}

// Report is the full battle log of two sides fighting position by position
type Report struct {
	Engagements [models.SideSize]Engagement
	Wins        int
	Draws       int
	Losses      int
}

// Fight pairs ally and enemy position by position and tallies the outcomes
func Fight(ally, enemy models.Side) Report {
	var r Report
	for i := range ally {
		e := Engage(i+1, ally[i], enemy[i])
		r.Engagements[i] = e
		switch e.Outcome {
		case Win:
			r.Wins++
		case Draw:
			r.Draws++
		default:
			r.Losses++
		}
	}
	return r
}

// CountWins returns only the number of won engagements
func CountWins(ally, enemy models.Side) int {
	wins := 0
	for i := range ally {
		if EffectiveStrength(ally[i], enemy[i]) > EffectiveStrength(enemy[i], ally[i]) {
			wins++
		}
	}
	return wins
}

// Victory reports whether the ally won enough engagements to win the war
func (r Report) Victory() bool {
	return r.Wins >= WinsForVictory
}
