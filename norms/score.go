/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package norms

// Score computes the z-score of a canonical measurement against a band and
// classifies it against the band's suggested limits.
//
// The verdict is range-based: strictly below LowerMM is too small, strictly
// above UpperMM is too large, the boundaries themselves are within normal
// limits. The z-score is returned alongside for callers that want to apply
// their own cutoffs; it never drives the verdict.
func Score(measMM float64, row Row) (z float64, verdict Verdict) {
	z = (measMM - row.MeanMM) / row.SDMM

	switch {
	case measMM < row.LowerMM:
		verdict = VerdictTooSmall
	case measMM > row.UpperMM:
		verdict = VerdictTooLarge
	default:
		verdict = VerdictWithinNormalLimits
	}

	return z, verdict
}
