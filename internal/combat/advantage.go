// Package combat resolves head-to-head fights between platoons.
package combat

import "github.com/napolitain/ageofwar/internal/models"

// AdvantageMultiplier is applied to a platoon's soldiers when it counters its opponent
const AdvantageMultiplier = 2

// classAdvantage maps each unit type to the types it beats.
// Built once at init and never mutated.
var classAdvantage = buildTable(map[models.UnitType][]models.UnitType{
	models.Militia:       {models.Spearmen, models.LightCavalry},
	models.Spearmen:      {models.LightCavalry, models.HeavyCavalry},
	models.LightCavalry:  {models.FootArcher, models.CavalryArcher},
	models.HeavyCavalry:  {models.Militia, models.FootArcher, models.LightCavalry},
	models.CavalryArcher: {models.Spearmen, models.HeavyCavalry},
	models.FootArcher:    {models.Militia, models.CavalryArcher},
})

func buildTable(src map[models.UnitType][]models.UnitType) map[models.UnitType]map[models.UnitType]bool {
	table := make(map[models.UnitType]map[models.UnitType]bool, len(src))
	for attacker, beaten := range src {
		set := make(map[models.UnitType]bool, len(beaten))
		for _, ut := range beaten {
			set[ut] = true
		}
		table[attacker] = set
	}
	return table
}

// Counters reports whether attacker's unit type beats defender's. Lookup only.
func Counters(attacker, defender models.UnitType) bool {
	return classAdvantage[attacker][defender]
}

// HasAdvantage reports whether a holds the tactical advantage over b
func HasAdvantage(a, b models.Platoon) bool {
	return Counters(a.Type, b.Type)
}

// EffectiveStrength returns a's soldiers, doubled if a has the advantage over b.
// a.Soldiers must not exceed models.MaxSoldiers.
func EffectiveStrength(a, b models.Platoon) int {
	if HasAdvantage(a, b) {
		return a.Soldiers * AdvantageMultiplier
	}
	return a.Soldiers
}

// Beats returns the unit types ut beats, in canonical order
func Beats(ut models.UnitType) []models.UnitType {
	var beaten []models.UnitType
	for _, other := range models.AllUnitTypes() {
		if Counters(ut, other) {
			beaten = append(beaten, other)
		}
	}
	return beaten
}
