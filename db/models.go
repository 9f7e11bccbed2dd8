/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/nkhalidi/organz/norms"
)

// NormativeRow is one stored age band of an organ's reference table.
// Lengths are millimeters, ages months, mirroring the engine's canonical
// units.
type NormativeRow struct {
	ID           uuid.UUID `db:"id"`
	Organ        string    `db:"organ"`
	AgeMinMonths float64   `db:"age_min_months"`
	AgeMaxMonths float64   `db:"age_max_months"`
	MeanMM       float64   `db:"mean_mm"`
	SDMM         float64   `db:"sd_mm"`
	LowerMM      float64   `db:"lower_mm"`
	UpperMM      float64   `db:"upper_mm"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// EngineRow converts a stored row to the engine's representation.
func (r *NormativeRow) EngineRow() norms.Row {
	return norms.Row{
		AgeMinMonths: r.AgeMinMonths,
		AgeMaxMonths: r.AgeMaxMonths,
		MeanMM:       r.MeanMM,
		SDMM:         r.SDMM,
		LowerMM:      r.LowerMM,
		UpperMM:      r.UpperMM,
	}
}
