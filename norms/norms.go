/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */

// Package norms implements the normative lookup and scoring engine for
// pediatric organ-size measurements. Given an organ, a patient age and a
// measurement, it selects the matching age band from the organ's reference
// table, computes a z-score and classifies the measurement against the
// band's suggested limits.
//
// All operations are pure and stateless; a Catalog is built once at startup
// and is safe for concurrent readers.
package norms

import (
	"errors"
	"fmt"
	"sort"
)

// Sex represents the optional patient sex carried through a score request.
// It is not used by scoring in this version.
type Sex string

// Sex values accepted in a score request.
const (
	SexUnknown Sex = "Unknown"
	SexMale    Sex = "Male"
	SexFemale  Sex = "Female"
)

// Verdict classifies a measurement against a band's suggested limits.
type Verdict string

// Verdict values, in the wording shown to users.
const (
	VerdictTooSmall           Verdict = "Too small"
	VerdictTooLarge           Verdict = "Too large"
	VerdictWithinNormalLimits Verdict = "Within normal limits"
)

// Per-request errors returned by Evaluate. Configuration problems are
// reported at catalog construction instead.
var (
	ErrUnknownOrgan        = errors.New("unknown organ")
	ErrInvalidUnit         = errors.New("invalid unit")
	ErrNegativeMeasurement = errors.New("measurement must not be negative")
)

// Row is one age band of an organ's reference table. All lengths are in
// millimeters and ages in months.
type Row struct {
	AgeMinMonths float64
	AgeMaxMonths float64
	MeanMM       float64
	SDMM         float64
	LowerMM      float64
	UpperMM      float64
}

// Table is the ordered sequence of age bands for a single organ, sorted by
// AgeMinMonths ascending.
type Table struct {
	Organ string
	Rows  []Row
}

// NewTable validates the rows for one organ and returns an immutable table.
// Validation failures are configuration errors: the caller must not serve
// requests with a table that fails here.
func NewTable(organ string, rows []Row) (Table, error) {
	if len(rows) == 0 {
		return Table{}, errors.New("table has no rows")
	}

	for i, row := range rows {
		if row.SDMM <= 0 {
			return Table{}, fmt.Errorf("row %d: sd must be positive, got %g", i, row.SDMM)
		}

		if row.AgeMinMonths > row.AgeMaxMonths {
			return Table{}, fmt.Errorf("row %d: age band %g-%g is inverted", i, row.AgeMinMonths, row.AgeMaxMonths)
		}

		if row.LowerMM > row.UpperMM {
			return Table{}, fmt.Errorf("row %d: limits %g-%g are inverted", i, row.LowerMM, row.UpperMM)
		}

		if i > 0 && row.AgeMinMonths < rows[i-1].AgeMinMonths {
			return Table{}, fmt.Errorf("row %d: bands are not sorted by age_min_months", i)
		}
	}

	copied := make([]Row, len(rows))
	copy(copied, rows)

	return Table{Organ: organ, Rows: copied}, nil
}

// Catalog maps organ keys to their reference tables. It is built once at
// process start and never mutated afterwards.
type Catalog struct {
	tables map[string]Table
}

// NewCatalog validates every organ's rows and builds the catalog.
func NewCatalog(tables map[string][]Row) (*Catalog, error) {
	if len(tables) == 0 {
		return nil, errors.New("catalog has no organs")
	}

	built := make(map[string]Table, len(tables))

	for organ, rows := range tables {
		table, err := NewTable(organ, rows)
		if err != nil {
			return nil, fmt.Errorf("organ %q: %w", organ, err)
		}

		built[organ] = table
	}

	return &Catalog{tables: built}, nil
}

// Table returns the reference table for an organ key.
func (c *Catalog) Table(organ string) (Table, bool) {
	table, ok := c.tables[organ]
	return table, ok
}

// Organs returns the catalog's organ keys in sorted order.
func (c *Catalog) Organs() []string {
	organs := make([]string, 0, len(c.tables))
	for organ := range c.tables {
		organs = append(organs, organ)
	}

	sort.Strings(organs)

	return organs
}

// Request is one scoring invocation.
type Request struct {
	// Organ is the stable organ key, e.g. "right_kidney_length".
	Organ string
	// AgeText is the free-form age expression, e.g. "2y3m", "27m", "1.5y".
	AgeText string
	// Value is the measured dimension in Unit.
	Value float64
	// Unit is "cm" or "mm".
	Unit string
	// Sex is optional and carried through unused.
	Sex Sex
}

// Result is the outcome of one scoring invocation.
type Result struct {
	// AgeMonths is the canonical age parsed from the request.
	AgeMonths float64
	// AgeExact reports whether the age text parsed without any fragment
	// silently degrading to zero.
	AgeExact bool
	// MeasurementMM is the canonical measurement.
	MeasurementMM float64
	// Row is the band actually used for scoring.
	Row Row
	// InRange is false when the age fell outside every band and a boundary
	// band was used instead.
	InRange bool
	ZScore  float64
	Verdict Verdict
	// AgeRangeLabel is the human rendering of Row's age band.
	AgeRangeLabel string
	Sex           Sex
}

// Evaluate runs the full engine for one request. Out-of-range ages are not
// errors: the nearest boundary band is used and Result.InRange is false.
func (c *Catalog) Evaluate(req Request) (*Result, error) {
	table, ok := c.tables[req.Organ]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOrgan, req.Organ)
	}

	if req.Value < 0 {
		return nil, fmt.Errorf("%w: %g", ErrNegativeMeasurement, req.Value)
	}

	measMM, err := ToMM(req.Value, req.Unit)
	if err != nil {
		return nil, err
	}

	ageMonths, exact := ParseAge(req.AgeText)
	row, inRange := table.Select(ageMonths)
	z, verdict := Score(measMM, row)

	sex := req.Sex
	if sex == "" {
		sex = SexUnknown
	}

	return &Result{
		AgeMonths:     ageMonths,
		AgeExact:      exact,
		MeasurementMM: measMM,
		Row:           row,
		InRange:       inRange,
		ZScore:        z,
		Verdict:       verdict,
		AgeRangeLabel: FormatAgeRange(row.AgeMinMonths, row.AgeMaxMonths),
		Sex:           sex,
	}, nil
}
