// Package muster turns raw army counts into a fighting side.
package muster

import (
	"errors"
	"fmt"
	"slices"

	"github.com/napolitain/ageofwar/internal/models"
)

var (
	// ErrTooFewPlatoons is returned when fewer than five unit types have soldiers
	ErrTooFewPlatoons = errors.New("assign non-zero soldiers to at least 5 platoon types")
	// ErrNegativeCount is returned when a unit type has a negative soldier count
	ErrNegativeCount = errors.New("soldier count must not be negative")
)

// Muster drops empty platoons and keeps the five largest, biggest first.
// Negative counts and counts above models.MaxSoldiers are rejected.
// Equal counts keep canonical unit type order.
func Muster(army models.Army) (models.Side, error) {
	var active []models.Platoon
	for _, p := range army.Platoons() {
		if p.Soldiers < 0 {
			return models.Side{}, fmt.Errorf("%s: %w (got %d)", p.Type, ErrNegativeCount, p.Soldiers)
		}
		if p.Soldiers > models.MaxSoldiers {
			return models.Side{}, fmt.Errorf("%s: %w (got %d, max %d)", p.Type, models.ErrTooManySoldiers, p.Soldiers, models.MaxSoldiers)
		}
		if p.Soldiers > 0 {
			active = append(active, p)
		}
	}

	if len(active) < models.SideSize {
		return models.Side{}, fmt.Errorf("%w: only %d provided", ErrTooFewPlatoons, len(active))
	}

	slices.SortStableFunc(active, func(a, b models.Platoon) int {
		return b.Soldiers - a.Soldiers
	})

	return models.NewSide(active[:models.SideSize])
}

// Dropped returns the non-empty platoons Muster leaves out, if any
func Dropped(army models.Army) []models.Platoon {
	side, err := Muster(army)
	if err != nil {
		return nil
	}
	kept := make(map[models.UnitType]bool, models.SideSize)
	for _, p := range side {
		kept[p.Type] = true
	}
	var dropped []models.Platoon
	for _, p := range army.Platoons() {
		if p.Soldiers > 0 && !kept[p.Type] {
			dropped = append(dropped, p)
		}
	}
	return dropped
}
