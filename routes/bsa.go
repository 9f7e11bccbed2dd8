/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/flamego/flamego"
	"github.com/flamego/template"

	"github.com/nkhalidi/organz/norms"
)

// ComputeBSA handles the optional body-surface-area form. The result is the
// Mosteller BSA in square meters, rendered on the calculator page.
func ComputeBSA(c flamego.Context, t template.Template, data template.Data) {
	fillCalculatorData(data, DefaultOrgan(), norms.UnitCM)

	if err := c.Request().ParseForm(); err != nil {
		log.Printf("Error parsing BSA form: %v", err)
		data["Error"] = "Failed to parse form"
		t.HTML(http.StatusOK, "calculator")

		return
	}

	heightCM, weightKG, err := parseBSAForm(c.Request().Form)
	if err != nil {
		data["Error"] = err.Error()
		t.HTML(http.StatusOK, "calculator")

		return
	}

	if bsa := norms.BSA(heightCM, weightKG); bsa > 0 {
		data["BSA"] = fmt.Sprintf("%.2f", bsa)
	}

	t.HTML(http.StatusOK, "calculator")
}

// parseBSAForm reads height and weight with their unit radios and converts
// to centimeters and kilograms. Empty fields are zero, which BSA treats as
// "no result" rather than an error.
func parseBSAForm(form url.Values) (heightCM, weightKG float64, err error) {
	height, err := parseOptionalFloat(form.Get("height"))
	if err != nil {
		return 0, 0, errInvalidHeight
	}

	weight, err := parseOptionalFloat(form.Get("weight"))
	if err != nil {
		return 0, 0, errInvalidWeight
	}

	heightUnit := strings.TrimSpace(form.Get("height_unit"))
	if heightUnit == "" {
		heightUnit = "cm"
	}

	weightUnit := strings.TrimSpace(form.Get("weight_unit"))
	if weightUnit == "" {
		weightUnit = "kg"
	}

	heightCM, err = norms.HeightToCM(height, heightUnit)
	if err != nil {
		return 0, 0, err
	}

	weightKG, err = norms.WeightToKG(weight, weightUnit)
	if err != nil {
		return 0, 0, err
	}

	return heightCM, weightKG, nil
}

func parseOptionalFloat(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value < 0 {
		return 0, fmt.Errorf("invalid number %q", raw)
	}

	return value, nil
}
