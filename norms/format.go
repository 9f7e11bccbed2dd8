/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package norms

import "fmt"

// FormatAgeRange renders a band's bounds in human units: bands starting at
// two years or later are shown in years to one decimal place ("15.0–16.7
// yrs"), younger bands in whole months truncated, not rounded ("1–3 mo").
func FormatAgeRange(minMo, maxMo float64) string {
	if minMo >= 24 {
		return fmt.Sprintf("%.1f–%.1f yrs", minMo/12, maxMo/12)
	}

	return fmt.Sprintf("%d–%d mo", int(minMo), int(maxMo))
}
