/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/flamego/flamego"

	"github.com/nkhalidi/organz/norms"
)

// apiRow mirrors norms.Row for JSON output.
type apiRow struct {
	AgeMinMonths float64 `json:"age_min_months"`
	AgeMaxMonths float64 `json:"age_max_months"`
	MeanMM       float64 `json:"mean_mm"`
	SDMM         float64 `json:"sd_mm"`
	LowerMM      float64 `json:"lower_mm"`
	UpperMM      float64 `json:"upper_mm"`
}

// apiScoreResponse is the JSON body of a successful score lookup.
type apiScoreResponse struct {
	Organ             string  `json:"organ"`
	AgeMonths         float64 `json:"age_months"`
	AgeExact          bool    `json:"age_exact"`
	MeasurementMM     float64 `json:"measurement_mm"`
	MatchedInRange    bool    `json:"matched_in_range"`
	Row               apiRow  `json:"row"`
	ZScore            float64 `json:"z_score"`
	Verdict           string  `json:"verdict"`
	DisplayedAgeRange string  `json:"displayed_age_range"`
}

type apiError struct {
	Error string `json:"error"`
}

// APIScore evaluates a score request supplied as query parameters:
// organ, age, value, unit and optionally sex.
func APIScore(c flamego.Context, catalog *norms.Catalog) {
	w := c.ResponseWriter()
	query := c.Request().URL.Query()

	valueStr := strings.TrimSpace(query.Get("value"))

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "value must be a number")
		return
	}

	req := norms.Request{
		Organ:   strings.TrimSpace(query.Get("organ")),
		AgeText: query.Get("age"),
		Value:   value,
		Unit:    strings.TrimSpace(query.Get("unit")),
		Sex:     norms.Sex(strings.TrimSpace(query.Get("sex"))),
	}

	if req.Unit == "" {
		req.Unit = norms.UnitMM
	}

	result, err := catalog.Evaluate(req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, norms.ErrUnknownOrgan) || errors.Is(err, norms.ErrInvalidUnit) || errors.Is(err, norms.ErrNegativeMeasurement) {
			status = http.StatusBadRequest
		}

		writeAPIError(w, status, err.Error())

		return
	}

	writeAPIJSON(w, http.StatusOK, apiScoreResponse{
		Organ:          req.Organ,
		AgeMonths:      result.AgeMonths,
		AgeExact:       result.AgeExact,
		MeasurementMM:  result.MeasurementMM,
		MatchedInRange: result.InRange,
		Row: apiRow{
			AgeMinMonths: result.Row.AgeMinMonths,
			AgeMaxMonths: result.Row.AgeMaxMonths,
			MeanMM:       result.Row.MeanMM,
			SDMM:         result.Row.SDMM,
			LowerMM:      result.Row.LowerMM,
			UpperMM:      result.Row.UpperMM,
		},
		ZScore:            result.ZScore,
		Verdict:           string(result.Verdict),
		DisplayedAgeRange: result.AgeRangeLabel,
	})
}

// APIOrgans lists the organ keys the catalog can score, with display labels.
func APIOrgans(c flamego.Context, catalog *norms.Catalog) {
	type organEntry struct {
		Key   string `json:"key"`
		Label string `json:"label"`
	}

	entries := make([]organEntry, 0, len(catalog.Organs()))
	for _, organ := range catalog.Organs() {
		entries = append(entries, organEntry{Key: organ, Label: OrganLabel(organ)})
	}

	writeAPIJSON(c.ResponseWriter(), http.StatusOK, entries)
}

func writeAPIJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		webLogger.Error("Failed to encode JSON response", "error", err)
	}
}

func writeAPIError(w http.ResponseWriter, status int, message string) {
	writeAPIJSON(w, status, apiError{Error: message})
}
