// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package routes

import (
	"errors"
	"net/url"
	"testing"

	"github.com/nkhalidi/organz/norms"
)

func TestParseScoreForm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		form    url.Values
		want    norms.Request
		wantErr error
	}{
		{
			name: "full form",
			form: url.Values{
				"organ": {"right_kidney_length"},
				"age":   {"2y3m"},
				"value": {"6.5"},
				"unit":  {"cm"},
				"sex":   {"Female"},
			},
			want: norms.Request{
				Organ:   "right_kidney_length",
				AgeText: "2y3m",
				Value:   6.5,
				Unit:    "cm",
				Sex:     norms.SexFemale,
			},
		},
		{
			name: "defaults applied",
			form: url.Values{
				"organ": {"spleen_length"},
				"age":   {"6m"},
				"value": {"52"},
			},
			want: norms.Request{
				Organ:   "spleen_length",
				AgeText: "6m",
				Value:   52,
				Unit:    norms.UnitCM,
				Sex:     norms.SexUnknown,
			},
		},
		{
			name: "missing organ",
			form: url.Values{
				"age":   {"6m"},
				"value": {"52"},
			},
			wantErr: errMissingOrgan,
		},
		{
			name: "non-numeric value",
			form: url.Values{
				"organ": {"spleen_length"},
				"value": {"big"},
			},
			wantErr: errInvalidMeasurement,
		},
		{
			name: "negative value",
			form: url.Values{
				"organ": {"spleen_length"},
				"value": {"-3"},
			},
			wantErr: errInvalidMeasurement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseScoreForm(tt.form)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("parseScoreForm() error = %v, want %v", err, tt.wantErr)
				}

				return
			}

			if err != nil {
				t.Fatalf("parseScoreForm() unexpected error: %v", err)
			}

			if got != tt.want {
				t.Fatalf("parseScoreForm() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNewScoreView(t *testing.T) {
	t.Parallel()

	req := norms.Request{
		Organ:   "right_kidney_length",
		AgeText: "18m",
		Value:   4.5,
		Unit:    norms.UnitCM,
		Sex:     norms.SexUnknown,
	}
	result := &norms.Result{
		AgeMonths:     18,
		AgeExact:      true,
		MeasurementMM: 45,
		Row: norms.Row{
			AgeMinMonths: 12,
			AgeMaxMonths: 24,
			MeanMM:       62,
			SDMM:         5,
			LowerMM:      52,
			UpperMM:      72,
		},
		InRange:       true,
		ZScore:        -3.4,
		Verdict:       norms.VerdictTooSmall,
		AgeRangeLabel: "12–24 mo",
		Sex:           norms.SexUnknown,
	}

	view, err := newScoreView(req, result)
	if err != nil {
		t.Fatalf("newScoreView() unexpected error: %v", err)
	}

	if view.OrganLabel != "Right Kidney" {
		t.Errorf("OrganLabel = %q, want %q", view.OrganLabel, "Right Kidney")
	}

	if view.ZScore != "-3.40" {
		t.Errorf("ZScore = %q, want %q", view.ZScore, "-3.40")
	}

	// Reference stats come back in the submitted unit, centimeters here.
	if view.Mean != "6.20" || view.SD != "0.50" || view.Lower != "5.20" || view.Upper != "7.20" {
		t.Errorf("reference stats = %q/%q/%q/%q, want cm values", view.Mean, view.SD, view.Lower, view.Upper)
	}

	if view.Verdict != string(norms.VerdictTooSmall) {
		t.Errorf("Verdict = %q, want %q", view.Verdict, norms.VerdictTooSmall)
	}
}

func TestNewScoreViewBadUnit(t *testing.T) {
	t.Parallel()

	req := norms.Request{Organ: "spleen_length", Unit: "in"}

	if _, err := newScoreView(req, &norms.Result{}); !errors.Is(err, norms.ErrInvalidUnit) {
		t.Fatalf("newScoreView() error = %v, want %v", err, norms.ErrInvalidUnit)
	}
}
