/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package templates

import "embed"

// Templates holds the page templates and the header/footer partials they
// include. Names are file names without the extension.
//
//go:embed *.html
var Templates embed.FS
