package quiz

import (
	"strconv"
	"strings"
)

// Tolerances for the equivalence branches. Percentage and fraction
// comparisons are strict; the relative numeric bound is inclusive so an
// answer exactly 1% off still counts.
const (
	percentTolerance  = 0.1
	fractionTolerance = 0.001
	relativeTolerance = 0.01
	absoluteTolerance = 0.1
)

// Validate reports whether userAnswer is an accepted spelling of any of the
// question's acceptable answers. It is a pure predicate: malformed input
// never errors, it simply fails to match.
//
// Each acceptable answer is compared in order using, in turn: exact
// case-insensitive match, percentage equivalence ("15" vs "15%" vs "0.15"),
// fraction equivalence ("2/4" vs "1/2"), and numeric comparison with
// relative tolerance for large values and absolute tolerance for small ones.
func Validate(userAnswer string, q Question) bool {
	userAnswer = strings.TrimSpace(userAnswer)
	if userAnswer == "" {
		return false
	}

	for _, acceptable := range q.AcceptableAnswers {
		if answersMatch(userAnswer, strings.TrimSpace(acceptable)) {
			return true
		}
	}
	return false
}

func answersMatch(user, correct string) bool {
	if strings.EqualFold(user, correct) {
		return true
	}

	// Percentage forms. When both sides read as percentages the comparison
	// is final: "14.8" vs "15" is a near-miss percentage, not a candidate
	// for the looser numeric branch below.
	userPct, userOK := extractPercentage(user)
	correctPct, correctOK := extractPercentage(correct)
	if userOK && correctOK {
		return abs(userPct-correctPct) < percentTolerance
	}

	// Fraction forms.
	if strings.Contains(user, "/") && strings.Contains(correct, "/") {
		userFrac, uok := parseFractionRatio(user)
		correctFrac, cok := parseFractionRatio(correct)
		if uok && cok {
			return abs(userFrac-correctFrac) < fractionTolerance
		}
	}

	// Plain numbers, with thousands separators stripped.
	userNum, err1 := strconv.ParseFloat(strings.ReplaceAll(user, ",", ""), 64)
	correctNum, err2 := strconv.ParseFloat(strings.ReplaceAll(correct, ",", ""), 64)
	if err1 == nil && err2 == nil {
		if abs(correctNum) > 10 {
			return abs(userNum-correctNum)/abs(correctNum) <= relativeTolerance
		}
		return abs(userNum-correctNum) < absoluteTolerance
	}

	return false
}

// extractPercentage reads a percentage value out of text. A trailing "%" is
// stripped and the remainder parsed directly. A bare number v is read as
// v*100 when it looks like a decimal share (0 ≤ v ≤ 1), as v itself when it
// is in plausible percent range (-100 ≤ v ≤ 100), and rejected otherwise.
func extractPercentage(text string) (float64, bool) {
	if strings.HasSuffix(text, "%") {
		v, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(text, "%")), 64)
		if err != nil {
			return 0, false
		}
		return v, true
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false
	}
	switch {
	case v >= 0 && v <= 1:
		return v * 100, true
	case v >= -100 && v <= 100:
		return v, true
	}
	return 0, false
}

// parseFractionRatio parses "a/b" into the ratio a/b. Exactly two numeric
// parts and a non-zero denominator are required.
func parseFractionRatio(text string) (float64, bool) {
	parts := strings.Split(text, "/")
	if len(parts) != 2 {
		return 0, false
	}
	num, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, false
	}
	den, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil || den == 0 {
		return 0, false
	}
	return num / den, true
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
