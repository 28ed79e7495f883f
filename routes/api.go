/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/flamego/flamego"

	"github.com/humaidq/posyandu/scoring"
)

const maxAnalyzeBody = 64 << 10

type analyzeRequest struct {
	AgeMonths int    `json:"age_months"`
	Sex       string `json:"sex"`

	scoring.Measurements
}

type analyzeResponse struct {
	Category scoring.Category `json:"category"`

	scoring.Result
}

// AnalyzeAPI scores a set of measurements without storing them.
func AnalyzeAPI(c flamego.Context, engine *scoring.Engine) {
	category, err := scoring.ParseCategory(c.Param("category"))
	if err != nil {
		writeJSONError(c, http.StatusNotFound, errInvalidCategory.Error())
		return
	}

	req, err := decodeAnalyzeRequest(c.Request().Body().ReadCloser())
	if err != nil {
		writeJSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	var sex scoring.Sex
	if strings.TrimSpace(req.Sex) != "" {
		sex, err = scoring.ParseSex(req.Sex)
		if err != nil {
			writeJSONError(c, http.StatusBadRequest, err.Error())
			return
		}
	}

	result, err := engine.Analyze(category, req.Measurements, scoring.Context{AgeMonths: req.AgeMonths, Sex: sex})
	if err != nil {
		if errors.Is(err, scoring.ErrUnknownCategory) {
			writeJSONError(c, http.StatusNotFound, errInvalidCategory.Error())
			return
		}

		logger.Error("Failed to analyze", "category", category, "error", err)
		writeJSONError(c, http.StatusInternalServerError, "analysis failed")

		return
	}

	writeJSON(c, http.StatusOK, analyzeResponse{Category: category, Result: result})
}

func decodeAnalyzeRequest(body io.Reader) (analyzeRequest, error) {
	var req analyzeRequest

	decoder := json.NewDecoder(io.LimitReader(body, maxAnalyzeBody))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return analyzeRequest{}, errEmptyRequest
		}

		return analyzeRequest{}, err
	}

	if req.AgeMonths < 0 {
		return analyzeRequest{}, errNegativeAge
	}

	return req, nil
}

func writeJSON(c flamego.Context, status int, v interface{}) {
	c.ResponseWriter().Header().Set("Content-Type", "application/json")
	c.ResponseWriter().WriteHeader(status)

	if err := json.NewEncoder(c.ResponseWriter()).Encode(v); err != nil {
		logger.Warn("Failed to encode JSON response", "error", err)
	}
}

func writeJSONError(c flamego.Context, status int, message string) {
	writeJSON(c, status, map[string]string{"error": message})
}
