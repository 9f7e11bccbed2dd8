/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import "errors"

var (
	errMissingOrgan       = errors.New("missing organ")
	errInvalidMeasurement = errors.New("invalid measurement value")
	errInvalidHeight      = errors.New("invalid height value")
	errInvalidWeight      = errors.New("invalid weight value")
)
