/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package scoring

import "strings"

// RecommendationSeparator joins recommendation fragments.
const RecommendationSeparator = ". "

// Result is the outcome of one analysis.
type Result struct {
	Severity       Severity `json:"severity"`
	Conditions     []string `json:"conditions"`
	Recommendation string   `json:"recommendation"`
	// NutritionalStatus is only set for infants.
	NutritionalStatus string `json:"nutritional_status,omitempty"`
}

// HasCondition reports whether the result lists the condition.
func (r Result) HasCondition(condition string) bool {
	for _, c := range r.Conditions {
		if c == condition {
			return true
		}
	}

	return false
}

// report accumulates rule outcomes for a single analysis.
type report struct {
	severity        Severity
	conditions      []string
	recommendations []string
}

// flag records a triggered rule.
func (r *report) flag(severity Severity, condition string, recommendations ...string) {
	r.severity = Combine(r.severity, severity)
	r.conditions = append(r.conditions, condition)
	r.recommendations = append(r.recommendations, recommendations...)
}

func (r *report) advise(recommendation string) {
	r.recommendations = append(r.recommendations, recommendation)
}

// resultOr is result with fallback as the recommendation when no fragment
// was recorded.
func (r *report) resultOr(fallback string) Result {
	result := r.result()
	if result.Recommendation == "" {
		result.Recommendation = fallback
	}

	return result
}

func (r *report) triggered() bool {
	return len(r.conditions) > 0
}

func (r *report) result() Result {
	return Result{
		Severity:       r.severity,
		Conditions:     Dedupe(r.conditions),
		Recommendation: JoinRecommendations(r.recommendations),
	}
}

// Dedupe drops repeated items, keeping the first occurrence of each. The
// result is never nil.
func Dedupe(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))

	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}

		seen[item] = struct{}{}
		out = append(out, item)
	}

	return out
}

// JoinRecommendations deduplicates fragments and joins them for display.
func JoinRecommendations(fragments []string) string {
	return strings.Join(Dedupe(fragments), RecommendationSeparator)
}
