/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package logging

import "errors"

// ErrUnknownFormat is returned for an unsupported --log-format value.
var ErrUnknownFormat = errors.New("unknown log format (expected logfmt, json or text)")
