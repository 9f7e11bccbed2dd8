/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package norms

import (
	"fmt"
	"math"
)

// BSA returns the Mosteller body surface area in square meters. Zero or
// negative height or weight yields zero rather than an error, matching the
// form behavior of leaving the fields empty.
func BSA(heightCM, weightKG float64) float64 {
	if heightCM <= 0 || weightKG <= 0 {
		return 0
	}

	return math.Sqrt(heightCM * weightKG / 3600)
}

// HeightToCM converts a height to centimeters. Accepted units: "cm", "m".
func HeightToCM(value float64, unit string) (float64, error) {
	switch unit {
	case "cm":
		return value, nil
	case "m":
		return value * 100, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidUnit, unit)
	}
}

// WeightToKG converts a weight to kilograms. Accepted units: "kg", "g".
func WeightToKG(value float64, unit string) (float64, error) {
	switch unit {
	case "kg":
		return value, nil
	case "g":
		return value / 1000, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidUnit, unit)
	}
}
