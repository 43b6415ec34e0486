package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownUnitType is returned when a name does not match any unit type
var ErrUnknownUnitType = errors.New("unknown unit type")

// UnitType represents the different platoon classes in the game
type UnitType string

const (
	Militia       UnitType = "Militia"
	Spearmen      UnitType = "Spearmen"
	LightCavalry  UnitType = "LightCavalry"
	HeavyCavalry  UnitType = "HeavyCavalry"
	CavalryArcher UnitType = "CavalryArcher"
	FootArcher    UnitType = "FootArcher"
)

// AllUnitTypes returns all unit types in deterministic order
func AllUnitTypes() []UnitType {
	return []UnitType{
		Militia, Spearmen, LightCavalry,
		HeavyCavalry, CavalryArcher, FootArcher,
	}
}

var displayNames = map[UnitType]string{
	Militia:       "🛡️ Militia",
	Spearmen:      "⚔️ Spearmen",
	LightCavalry:  "🐎 Light Cavalry",
	HeavyCavalry:  "🐴 Heavy Cavalry",
	CavalryArcher: "🏹 Cavalry Archer",
	FootArcher:    "🏹 Foot Archer",
}

// DisplayName returns the label shown in forms and tables
func (ut UnitType) DisplayName() string {
	if name, ok := displayNames[ut]; ok {
		return name
	}
	return string(ut)
}

// Valid reports whether ut is one of the six unit types
func (ut UnitType) Valid() bool {
	_, ok := displayNames[ut]
	return ok
}

// ParseUnitType resolves a user-supplied name. Matching ignores case,
// spaces, dashes and underscores, so "light_cavalry" and "Light Cavalry"
// both resolve to LightCavalry.
func ParseUnitType(name string) (UnitType, error) {
	key := normalizeName(name)
	for _, ut := range AllUnitTypes() {
		if normalizeName(string(ut)) == key {
			return ut, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownUnitType, name)
}

func normalizeName(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}
