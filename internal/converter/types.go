// Package converter provides conversions between API wire types and models
package converter

import (
	"github.com/napolitain/ageofwar/internal/api"
	"github.com/napolitain/ageofwar/internal/combat"
	"github.com/napolitain/ageofwar/internal/models"
)

// PlatoonToAPI converts a model Platoon to its wire form
func PlatoonToAPI(p models.Platoon) api.Platoon {
	return api.Platoon{Type: string(p.Type), Soldiers: p.Soldiers}
}

// SideToAPI converts a model Side to an ordered list of wire platoons
func SideToAPI(s models.Side) []api.Platoon {
	platoons := make([]api.Platoon, len(s))
	for i, p := range s {
		platoons[i] = PlatoonToAPI(p)
	}
	return platoons
}

// EngagementToAPI converts one battle log entry
func EngagementToAPI(e combat.Engagement) api.Engagement {
	return api.Engagement{
		Position:      e.Position,
		You:           PlatoonToAPI(e.Ally),
		Enemy:         PlatoonToAPI(e.Enemy),
		YourStrength:  e.AllyStrength,
		EnemyStrength: e.EnemyStrength,
		Outcome:       e.Outcome.String(),
		Log:           e.String(),
	}
}

// AdvantagesToAPI converts the fixed advantage table
func AdvantagesToAPI() api.AdvantagesResponse {
	resp := api.AdvantagesResponse{Multiplier: combat.AdvantageMultiplier}
	for _, ut := range models.AllUnitTypes() {
		beats := []string{}
		for _, b := range combat.Beats(ut) {
			beats = append(beats, string(b))
		}
		resp.Advantages = append(resp.Advantages, api.Advantage{
			Type:        string(ut),
			DisplayName: ut.DisplayName(),
			Beats:       beats,
		})
	}
	return resp
}
