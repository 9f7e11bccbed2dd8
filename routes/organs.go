/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

// OrganOption is one entry of the organ picker, in display order.
type OrganOption struct {
	Key   string
	Label string
}

// organOptions fixes the picker order and the short labels shown under each
// organ. Keys must match the catalog's organ identifiers.
var organOptions = []OrganOption{
	{Key: "right_lobe_liver_length", Label: "Liver"},
	{Key: "spleen_length", Label: "Spleen"},
	{Key: "right_kidney_length", Label: "Right Kidney"},
	{Key: "left_kidney_length", Label: "Left Kidney"},
}

// Citation is the source study reference shown in the page footer.
const Citation = "Normative data from Konus OL et al. AJR. 1998;171(6):984–991."

// CitationURL links the citation to the article.
const CitationURL = "https://ajronline.org/doi/10.2214/ajr.171.6.9843315"

// OrganOptions returns the organ picker entries in display order.
func OrganOptions() []OrganOption {
	options := make([]OrganOption, len(organOptions))
	copy(options, organOptions)

	return options
}

// OrganLabel returns the display label for an organ key, falling back to the
// key itself for organs without one.
func OrganLabel(key string) string {
	for _, option := range organOptions {
		if option.Key == key {
			return option.Label
		}
	}

	return key
}

// DefaultOrgan is the organ selected before the user picks one.
func DefaultOrgan() string {
	return organOptions[0].Key
}
