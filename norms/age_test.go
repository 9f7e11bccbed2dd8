// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package norms

import "testing"

func TestParseAge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		text      string
		want      float64
		wantExact bool
	}{
		{name: "years and months", text: "2y3m", want: 27, wantExact: true},
		{name: "months only", text: "27m", want: 27, wantExact: true},
		{name: "fractional years", text: "1.5y", want: 18, wantExact: true},
		{name: "years only", text: "2y", want: 24, wantExact: true},
		{name: "bare number is months", text: "18", want: 18, wantExact: true},
		{name: "fractional bare number", text: "4.5", want: 4.5, wantExact: true},
		{name: "uppercase and spaces", text: " 2Y 3M ", want: 27, wantExact: true},
		{name: "empty", text: "", want: 0, wantExact: false},
		{name: "garbage", text: "garbage", want: 0, wantExact: false},
		{name: "bad years fragment keeps months", text: "xy3m", want: 3, wantExact: false},
		{name: "bad months fragment keeps years", text: "2yzm", want: 24, wantExact: false},
		{name: "zero months degrades quietly", text: "0m", want: 0, wantExact: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			months, exact := ParseAge(tt.text)
			if months != tt.want {
				t.Fatalf("ParseAge(%q) = %g months, want %g", tt.text, months, tt.want)
			}

			if exact != tt.wantExact {
				t.Fatalf("ParseAge(%q) exact = %v, want %v", tt.text, exact, tt.wantExact)
			}
		})
	}
}

func TestParseAgeToMonthsMatchesParseAge(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"2y3m", "27m", "1.5y", "", "garbage"} {
		months, _ := ParseAge(text)
		if got := ParseAgeToMonths(text); got != months {
			t.Fatalf("ParseAgeToMonths(%q) = %g, ParseAge gave %g", text, got, months)
		}
	}
}
