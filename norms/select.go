/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package norms

// Select finds the band covering ageMonths. Band boundaries are inclusive
// and the first matching row wins. When no band covers the age, the nearest
// boundary band is returned instead: the first row for ages below every
// band, the last row otherwise (including gaps between bands), with
// inRange false.
//
// Tables are a handful of rows, so a linear scan is fine.
func (t Table) Select(ageMonths float64) (row Row, inRange bool) {
	for _, row := range t.Rows {
		if row.AgeMinMonths <= ageMonths && ageMonths <= row.AgeMaxMonths {
			return row, true
		}
	}

	if ageMonths < t.Rows[0].AgeMinMonths {
		return t.Rows[0], false
	}

	return t.Rows[len(t.Rows)-1], false
}
