/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package norms

import "fmt"

// Length units accepted by the engine.
const (
	UnitCM = "cm"
	UnitMM = "mm"
)

// ToMM converts a length to millimeters. Only "cm" and "mm" are accepted.
func ToMM(value float64, unit string) (float64, error) {
	switch unit {
	case UnitCM:
		return value * 10, nil
	case UnitMM:
		return value, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidUnit, unit)
	}
}

// FromMM converts a canonical millimeter length back to the given display
// unit.
func FromMM(mm float64, unit string) (float64, error) {
	switch unit {
	case UnitCM:
		return mm / 10, nil
	case UnitMM:
		return mm, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidUnit, unit)
	}
}
