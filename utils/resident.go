/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const nikLength = 16

// NormalizeName collapses whitespace and title-cases a resident name.
func NormalizeName(name string) (string, error) {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "", errEmptyName
	}

	// Casers keep state and must not be shared between goroutines.
	return cases.Title(language.Indonesian).String(strings.Join(fields, " ")), nil
}

// NormalizeNIK strips spaces and dots from an Indonesian national identity
// number and checks that 16 digits remain.
func NormalizeNIK(nik string) (string, error) {
	var b strings.Builder

	for _, r := range nik {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '.' || r == '-':
		default:
			return "", errInvalidNIK
		}
	}

	if b.Len() != nikLength {
		return "", errInvalidNIK
	}

	return b.String(), nil
}
