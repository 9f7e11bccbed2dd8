/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package norms

import (
	"strconv"
	"strings"
)

// ParseAge parses a free-form age expression into months. Accepted forms
// are "<years>y<months>m", "<years>y", "<months>m" and a bare number of
// months; fractional values are allowed ("1.5y" is 18 months).
//
// ParseAge is total: malformed fragments never fail, they contribute zero.
// The exact return value reports whether anything degraded that way, so
// callers can warn that a typo may have been scored as age zero.
func ParseAge(text string) (months float64, exact bool) {
	s := strings.ToLower(strings.TrimSpace(text))
	exact = s != ""

	var years, monthPart float64

	if i := strings.Index(s, "y"); i >= 0 {
		value, err := strconv.ParseFloat(strings.TrimSpace(s[:i]), 64)
		if err != nil {
			exact = false
		} else {
			years = value
		}

		s = s[i+1:]
	}

	if i := strings.Index(s, "m"); i >= 0 {
		value, err := strconv.ParseFloat(strings.TrimSpace(s[:i]), 64)
		if err != nil {
			exact = false
		} else {
			monthPart = value
		}
	}

	// No nonzero marker value found: treat the whole remainder as months.
	if years == 0 && monthPart == 0 {
		value, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			exact = false
		} else {
			monthPart = value
		}
	}

	return years*12 + monthPart, exact
}

// ParseAgeToMonths is ParseAge without the confidence flag.
func ParseAgeToMonths(text string) float64 {
	months, _ := ParseAge(text)
	return months
}
