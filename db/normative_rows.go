/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"context"
	"fmt"

	"github.com/nkhalidi/organz/norms"
)

// NormativeRowDefinition represents one age band to be synced to the database
type NormativeRowDefinition struct {
	Organ        string
	AgeMinMonths float64
	AgeMaxMonths float64
	MeanMM       float64
	SDMM         float64
	LowerMM      float64
	UpperMM      float64
}

// GetNormativeRowDefinitions returns all normative age bands to be synced to
// the database. This is the authoritative source of truth for the reference
// tables; normative data from Konus OL et al. AJR 1998;171(6):984-991.
func GetNormativeRowDefinitions() []NormativeRowDefinition {
	return []NormativeRowDefinition{
		// ===== LIVER, RIGHT LOBE LENGTH (mm) =====
		{Organ: "right_lobe_liver_length", AgeMinMonths: 0, AgeMaxMonths: 3, MeanMM: 64, SDMM: 7, LowerMM: 50, UpperMM: 78},
		{Organ: "right_lobe_liver_length", AgeMinMonths: 3, AgeMaxMonths: 6, MeanMM: 73, SDMM: 8, LowerMM: 57, UpperMM: 89},
		{Organ: "right_lobe_liver_length", AgeMinMonths: 6, AgeMaxMonths: 12, MeanMM: 79, SDMM: 8, LowerMM: 63, UpperMM: 95},
		{Organ: "right_lobe_liver_length", AgeMinMonths: 12, AgeMaxMonths: 24, MeanMM: 85, SDMM: 9, LowerMM: 67, UpperMM: 103},
		{Organ: "right_lobe_liver_length", AgeMinMonths: 24, AgeMaxMonths: 60, MeanMM: 95, SDMM: 10, LowerMM: 75, UpperMM: 115},
		{Organ: "right_lobe_liver_length", AgeMinMonths: 60, AgeMaxMonths: 96, MeanMM: 105, SDMM: 10, LowerMM: 85, UpperMM: 125},
		{Organ: "right_lobe_liver_length", AgeMinMonths: 96, AgeMaxMonths: 132, MeanMM: 115, SDMM: 11, LowerMM: 93, UpperMM: 137},
		{Organ: "right_lobe_liver_length", AgeMinMonths: 132, AgeMaxMonths: 180, MeanMM: 126, SDMM: 12, LowerMM: 102, UpperMM: 150},
		{Organ: "right_lobe_liver_length", AgeMinMonths: 180, AgeMaxMonths: 200, MeanMM: 140, SDMM: 13, LowerMM: 114, UpperMM: 166},

		// ===== SPLEEN LENGTH (mm) =====
		{Organ: "spleen_length", AgeMinMonths: 0, AgeMaxMonths: 3, MeanMM: 45, SDMM: 5, LowerMM: 35, UpperMM: 55},
		{Organ: "spleen_length", AgeMinMonths: 3, AgeMaxMonths: 6, MeanMM: 53, SDMM: 6, LowerMM: 41, UpperMM: 65},
		{Organ: "spleen_length", AgeMinMonths: 6, AgeMaxMonths: 12, MeanMM: 60, SDMM: 6, LowerMM: 48, UpperMM: 72},
		{Organ: "spleen_length", AgeMinMonths: 12, AgeMaxMonths: 24, MeanMM: 65, SDMM: 6, LowerMM: 53, UpperMM: 77},
		{Organ: "spleen_length", AgeMinMonths: 24, AgeMaxMonths: 60, MeanMM: 72, SDMM: 7, LowerMM: 58, UpperMM: 86},
		{Organ: "spleen_length", AgeMinMonths: 60, AgeMaxMonths: 96, MeanMM: 81, SDMM: 8, LowerMM: 65, UpperMM: 97},
		{Organ: "spleen_length", AgeMinMonths: 96, AgeMaxMonths: 132, MeanMM: 89, SDMM: 8, LowerMM: 73, UpperMM: 105},
		{Organ: "spleen_length", AgeMinMonths: 132, AgeMaxMonths: 180, MeanMM: 98, SDMM: 9, LowerMM: 80, UpperMM: 116},
		{Organ: "spleen_length", AgeMinMonths: 180, AgeMaxMonths: 200, MeanMM: 105, SDMM: 10, LowerMM: 85, UpperMM: 125},

		// ===== RIGHT KIDNEY LENGTH (mm) =====
		{Organ: "right_kidney_length", AgeMinMonths: 0, AgeMaxMonths: 3, MeanMM: 45, SDMM: 4, LowerMM: 37, UpperMM: 53},
		{Organ: "right_kidney_length", AgeMinMonths: 3, AgeMaxMonths: 6, MeanMM: 51, SDMM: 5, LowerMM: 41, UpperMM: 61},
		{Organ: "right_kidney_length", AgeMinMonths: 6, AgeMaxMonths: 12, MeanMM: 56, SDMM: 5, LowerMM: 46, UpperMM: 66},
		{Organ: "right_kidney_length", AgeMinMonths: 12, AgeMaxMonths: 24, MeanMM: 62, SDMM: 5, LowerMM: 52, UpperMM: 72},
		{Organ: "right_kidney_length", AgeMinMonths: 24, AgeMaxMonths: 60, MeanMM: 70, SDMM: 6, LowerMM: 58, UpperMM: 82},
		{Organ: "right_kidney_length", AgeMinMonths: 60, AgeMaxMonths: 96, MeanMM: 77, SDMM: 6, LowerMM: 65, UpperMM: 89},
		{Organ: "right_kidney_length", AgeMinMonths: 96, AgeMaxMonths: 132, MeanMM: 85, SDMM: 7, LowerMM: 71, UpperMM: 99},
		{Organ: "right_kidney_length", AgeMinMonths: 132, AgeMaxMonths: 180, MeanMM: 93, SDMM: 7, LowerMM: 79, UpperMM: 107},
		{Organ: "right_kidney_length", AgeMinMonths: 180, AgeMaxMonths: 200, MeanMM: 100, SDMM: 8, LowerMM: 84, UpperMM: 116},

		// ===== LEFT KIDNEY LENGTH (mm) =====
		// The left kidney runs slightly longer than the right at every age.
		{Organ: "left_kidney_length", AgeMinMonths: 0, AgeMaxMonths: 3, MeanMM: 46, SDMM: 4, LowerMM: 38, UpperMM: 54},
		{Organ: "left_kidney_length", AgeMinMonths: 3, AgeMaxMonths: 6, MeanMM: 52, SDMM: 5, LowerMM: 42, UpperMM: 62},
		{Organ: "left_kidney_length", AgeMinMonths: 6, AgeMaxMonths: 12, MeanMM: 57, SDMM: 5, LowerMM: 47, UpperMM: 67},
		{Organ: "left_kidney_length", AgeMinMonths: 12, AgeMaxMonths: 24, MeanMM: 63, SDMM: 5, LowerMM: 53, UpperMM: 73},
		{Organ: "left_kidney_length", AgeMinMonths: 24, AgeMaxMonths: 60, MeanMM: 71, SDMM: 6, LowerMM: 59, UpperMM: 83},
		{Organ: "left_kidney_length", AgeMinMonths: 60, AgeMaxMonths: 96, MeanMM: 79, SDMM: 6, LowerMM: 67, UpperMM: 91},
		{Organ: "left_kidney_length", AgeMinMonths: 96, AgeMaxMonths: 132, MeanMM: 86, SDMM: 7, LowerMM: 72, UpperMM: 100},
		{Organ: "left_kidney_length", AgeMinMonths: 132, AgeMaxMonths: 180, MeanMM: 94, SDMM: 7, LowerMM: 80, UpperMM: 108},
		{Organ: "left_kidney_length", AgeMinMonths: 180, AgeMaxMonths: 200, MeanMM: 101, SDMM: 8, LowerMM: 85, UpperMM: 117},
	}
}

// SyncNormativeRows synchronizes the normative tables from Go code to the
// database. This is called on application startup to ensure the database has
// the latest reference data. Definitions are validated through the engine
// first: invalid reference data must abort startup, not surface per-request.
func SyncNormativeRows(ctx context.Context) error {
	if pool == nil {
		return ErrDatabaseConnectionNotInitialized
	}

	definitions := GetNormativeRowDefinitions()

	if _, err := catalogFromDefinitions(definitions); err != nil {
		return fmt.Errorf("normative row definitions are invalid: %w", err)
	}

	logger.Infof("Syncing %d normative rows to database...", len(definitions))

	// Use UPSERT (INSERT ... ON CONFLICT DO UPDATE) for each band
	query := `
		INSERT INTO normative_rows (organ, age_min_months, age_max_months, mean_mm, sd_mm, lower_mm, upper_mm)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (organ, age_min_months)
		DO UPDATE SET
			age_max_months = EXCLUDED.age_max_months,
			mean_mm = EXCLUDED.mean_mm,
			sd_mm = EXCLUDED.sd_mm,
			lower_mm = EXCLUDED.lower_mm,
			upper_mm = EXCLUDED.upper_mm,
			updated_at = now()
	`

	syncCount := 0

	for _, def := range definitions {
		_, err := pool.Exec(ctx, query,
			def.Organ, def.AgeMinMonths, def.AgeMaxMonths,
			def.MeanMM, def.SDMM, def.LowerMM, def.UpperMM,
		)
		if err != nil {
			return fmt.Errorf("failed to sync normative row for %s [%g, %g]: %w",
				def.Organ, def.AgeMinMonths, def.AgeMaxMonths, err)
		}

		syncCount++
	}

	logger.Infof("Successfully synced %d normative rows", syncCount)

	return nil
}

// GetNormativeRows returns the stored age bands for one organ, ordered by
// age_min_months ascending.
func GetNormativeRows(ctx context.Context, organ string) ([]NormativeRow, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	query := `
		SELECT id, organ, age_min_months, age_max_months, mean_mm, sd_mm, lower_mm, upper_mm, created_at, updated_at
		FROM normative_rows
		WHERE organ = $1
		ORDER BY age_min_months
	`

	rows, err := pool.Query(ctx, query, organ)
	if err != nil {
		return nil, fmt.Errorf("failed to query normative rows: %w", err)
	}
	defer rows.Close()

	var result []NormativeRow

	for rows.Next() {
		var row NormativeRow

		err := rows.Scan(
			&row.ID, &row.Organ, &row.AgeMinMonths, &row.AgeMaxMonths,
			&row.MeanMM, &row.SDMM, &row.LowerMM, &row.UpperMM,
			&row.CreatedAt, &row.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan normative row: %w", err)
		}

		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read normative rows: %w", err)
	}

	return result, nil
}

// LoadOrganCatalog reads every stored normative row and builds the engine's
// validated catalog. It is called once at startup; the returned catalog is
// read-only and shared by all requests.
func LoadOrganCatalog(ctx context.Context) (*norms.Catalog, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	query := `
		SELECT organ, age_min_months, age_max_months, mean_mm, sd_mm, lower_mm, upper_mm
		FROM normative_rows
		ORDER BY organ, age_min_months
	`

	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query normative rows: %w", err)
	}
	defer rows.Close()

	tables := make(map[string][]norms.Row)

	for rows.Next() {
		var organ string

		var row norms.Row

		err := rows.Scan(&organ, &row.AgeMinMonths, &row.AgeMaxMonths,
			&row.MeanMM, &row.SDMM, &row.LowerMM, &row.UpperMM)
		if err != nil {
			return nil, fmt.Errorf("failed to scan normative row: %w", err)
		}

		tables[organ] = append(tables[organ], row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read normative rows: %w", err)
	}

	catalog, err := norms.NewCatalog(tables)
	if err != nil {
		return nil, fmt.Errorf("stored normative rows are invalid: %w", err)
	}

	return catalog, nil
}

// catalogFromDefinitions builds an engine catalog straight from the in-code
// definitions, used to validate them before syncing.
func catalogFromDefinitions(definitions []NormativeRowDefinition) (*norms.Catalog, error) {
	tables := make(map[string][]norms.Row)

	for _, def := range definitions {
		tables[def.Organ] = append(tables[def.Organ], norms.Row{
			AgeMinMonths: def.AgeMinMonths,
			AgeMaxMonths: def.AgeMaxMonths,
			MeanMM:       def.MeanMM,
			SDMM:         def.SDMM,
			LowerMM:      def.LowerMM,
			UpperMM:      def.UpperMM,
		})
	}

	return norms.NewCatalog(tables)
}
