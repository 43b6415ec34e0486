package models

import (
	"errors"
	"fmt"
	"math"
)

// MaxSoldiers is the largest platoon size whose doubled strength still fits in an int
const MaxSoldiers = math.MaxInt / 2

var (
	// ErrTooManySoldiers is returned for a count above MaxSoldiers
	ErrTooManySoldiers = errors.New("soldier count too large")
	// ErrDuplicateUnit is returned when two names resolve to the same unit type
	ErrDuplicateUnit = errors.New("unit type given more than once")
)

// Army holds the raw soldier count for every unit type (no maps)
type Army struct {
	Militia       int
	Spearmen      int
	LightCavalry  int
	HeavyCavalry  int
	CavalryArcher int
	FootArcher    int
}

// ArmyFromCounts builds an army from a name -> count mapping.
// Names are resolved with ParseUnitType; missing types count as zero.
func ArmyFromCounts(counts map[string]int) (Army, error) {
	var a Army
	seen := make(map[UnitType]string, len(counts))
	for name, count := range counts {
		ut, err := ParseUnitType(name)
		if err != nil {
			return Army{}, err
		}
		if prev, ok := seen[ut]; ok {
			return Army{}, fmt.Errorf("%w: %q and %q are both %s", ErrDuplicateUnit, prev, name, ut)
		}
		seen[ut] = name
		if count < 0 {
			return Army{}, fmt.Errorf("%s: negative soldier count %d", ut, count)
		}
		if count > MaxSoldiers {
			return Army{}, fmt.Errorf("%s: %w (%d, max %d)", ut, ErrTooManySoldiers, count, MaxSoldiers)
		}
		a.Set(ut, count)
	}
	return a, nil
}

// Get returns count for a unit type
func (a *Army) Get(ut UnitType) int {
	switch ut {
	case Militia:
		return a.Militia
	case Spearmen:
		return a.Spearmen
	case LightCavalry:
		return a.LightCavalry
	case HeavyCavalry:
		return a.HeavyCavalry
	case CavalryArcher:
		return a.CavalryArcher
	case FootArcher:
		return a.FootArcher
	}
	return 0
}

// Set sets count for a unit type
func (a *Army) Set(ut UnitType, count int) {
	switch ut {
	case Militia:
		a.Militia = count
	case Spearmen:
		a.Spearmen = count
	case LightCavalry:
		a.LightCavalry = count
	case HeavyCavalry:
		a.HeavyCavalry = count
	case CavalryArcher:
		a.CavalryArcher = count
	case FootArcher:
		a.FootArcher = count
	}
}

// Add adds soldiers to a unit type
func (a *Army) Add(ut UnitType, count int) {
	a.Set(ut, a.Get(ut)+count)
}

// Platoons returns one platoon per unit type in canonical order, zero counts included
func (a *Army) Platoons() []Platoon {
	platoons := make([]Platoon, 0, len(AllUnitTypes()))
	for _, ut := range AllUnitTypes() {
		platoons = append(platoons, Platoon{Type: ut, Soldiers: a.Get(ut)})
	}
	return platoons
}
