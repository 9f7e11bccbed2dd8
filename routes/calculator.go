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

// ScoreView is the rendered outcome of one scoring request, with reference
// statistics converted back to the unit the form was submitted in.
type ScoreView struct {
	OrganLabel    string
	AgeText       string
	AgeMonths     float64
	AgeExact      bool
	InRange       bool
	AgeRangeLabel string
	ZScore        string
	Verdict       string
	Unit          string
	Mean          string
	SD            string
	Lower         string
	Upper         string
}

// Calculator renders the score form.
func Calculator(t template.Template, data template.Data) {
	fillCalculatorData(data, DefaultOrgan(), norms.UnitCM)
	t.HTML(http.StatusOK, "calculator")
}

// ComputeScore handles the score form submission and renders the z-score,
// verdict and reference statistics for the matched age band.
func ComputeScore(c flamego.Context, t template.Template, data template.Data, catalog *norms.Catalog) {
	if err := c.Request().ParseForm(); err != nil {
		log.Printf("Error parsing score form: %v", err)
		fillCalculatorData(data, DefaultOrgan(), norms.UnitCM)
		data["Error"] = "Failed to parse form"
		t.HTML(http.StatusOK, "calculator")

		return
	}

	req, err := parseScoreForm(c.Request().Form)

	fillCalculatorData(data, req.Organ, req.Unit)
	data["AgeText"] = req.AgeText
	data["Value"] = c.Request().Form.Get("value")
	data["Sex"] = string(req.Sex)

	if err != nil {
		data["Error"] = err.Error()
		t.HTML(http.StatusOK, "calculator")

		return
	}

	result, err := catalog.Evaluate(req)
	if err != nil {
		log.Printf("Error evaluating score request: %v", err)
		data["Error"] = err.Error()
		t.HTML(http.StatusOK, "calculator")

		return
	}

	view, err := newScoreView(req, result)
	if err != nil {
		log.Printf("Error building score view: %v", err)
		data["Error"] = err.Error()
		t.HTML(http.StatusOK, "calculator")

		return
	}

	data["Result"] = view

	if !result.InRange {
		data["Warning"] = fmt.Sprintf("Age (%s) out of range. Using data for %s.", req.AgeText, result.AgeRangeLabel)
	} else if !result.AgeExact {
		data["Warning"] = fmt.Sprintf("Could not fully parse age %q; scored as %g months.", req.AgeText, result.AgeMonths)
	}

	t.HTML(http.StatusOK, "calculator")
}

// fillCalculatorData sets the template fields every calculator render needs.
func fillCalculatorData(data template.Data, organ, unit string) {
	// Seed the form fields so templates never compare against a missing key.
	data["AgeText"] = ""
	data["Value"] = ""
	data["Sex"] = string(norms.SexUnknown)
	data["Organs"] = OrganOptions()
	data["SelectedOrgan"] = organ
	data["SelectedLabel"] = OrganLabel(organ)
	data["Unit"] = unit
	data["Citation"] = Citation
	data["CitationURL"] = CitationURL
}

// parseScoreForm turns the submitted form into an engine request. The age
// text is passed through untouched: the engine's parser owns its permissive
// semantics.
func parseScoreForm(form url.Values) (norms.Request, error) {
	req := norms.Request{
		Organ:   strings.TrimSpace(form.Get("organ")),
		AgeText: form.Get("age"),
		Unit:    strings.TrimSpace(form.Get("unit")),
		Sex:     norms.Sex(strings.TrimSpace(form.Get("sex"))),
	}

	if req.Unit == "" {
		req.Unit = norms.UnitCM
	}

	if req.Sex == "" {
		req.Sex = norms.SexUnknown
	}

	if req.Organ == "" {
		return req, errMissingOrgan
	}

	valueStr := strings.TrimSpace(form.Get("value"))

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil || value < 0 {
		return req, errInvalidMeasurement
	}

	req.Value = value

	return req, nil
}

// newScoreView converts a result's reference statistics into the submitted
// unit for display.
func newScoreView(req norms.Request, result *norms.Result) (ScoreView, error) {
	view := ScoreView{
		OrganLabel:    OrganLabel(req.Organ),
		AgeText:       req.AgeText,
		AgeMonths:     result.AgeMonths,
		AgeExact:      result.AgeExact,
		InRange:       result.InRange,
		AgeRangeLabel: result.AgeRangeLabel,
		ZScore:        fmt.Sprintf("%.2f", result.ZScore),
		Verdict:       string(result.Verdict),
		Unit:          req.Unit,
	}

	for _, field := range []struct {
		mm  float64
		out *string
	}{
		{result.Row.MeanMM, &view.Mean},
		{result.Row.SDMM, &view.SD},
		{result.Row.LowerMM, &view.Lower},
		{result.Row.UpperMM, &view.Upper},
	} {
		converted, err := norms.FromMM(field.mm, req.Unit)
		if err != nil {
			return ScoreView{}, err
		}

		*field.out = fmt.Sprintf("%.2f", converted)
	}

	return view, nil
}
