/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import "github.com/nkhalidi/organz/logging"

var appLogger = logging.Logger(logging.SourceApp)
