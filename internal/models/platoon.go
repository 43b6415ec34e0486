package models

import (
	"errors"
	"fmt"
	"strings"
)

// SideSize is the number of platoons that fight in a battle
const SideSize = 5

// ErrSideSize is returned when a side is built from the wrong number of platoons
var ErrSideSize = errors.New("side must have exactly 5 platoons")

// Platoon is a group of soldiers of one type
type Platoon struct {
	Type     UnitType
	Soldiers int
}

// String renders the platoon as Type#count
func (p Platoon) String() string {
	return fmt.Sprintf("%s#%d", p.Type, p.Soldiers)
}

// Side is one army's fighting order; position i fights position i of the opponent
type Side [SideSize]Platoon

// NewSide copies platoons into a Side, rejecting any other length
func NewSide(platoons []Platoon) (Side, error) {
	var s Side
	if len(platoons) != SideSize {
		return s, fmt.Errorf("%w, got %d", ErrSideSize, len(platoons))
	}
	copy(s[:], platoons)
	return s, nil
}

// String renders the side as platoons joined by ';'
func (s Side) String() string {
	parts := make([]string, len(s))
	for i, p := range s {
		parts[i] = p.String()
	}
	return strings.Join(parts, ";")
}
