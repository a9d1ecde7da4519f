package report

import (
	"fmt"
	"strconv"
	"strings"

	"InvestorClassifier/internal/model"
)

// FormatResult renders a classification as a plain-text report.
func FormatResult(res *model.ClassificationResult) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Profile: %s\n", res.Profile))
	b.WriteString(fmt.Sprintf("Score: %s / 100\n", Number(res.Score)))
	b.WriteString(fmt.Sprintf("Recommendation: %s\n\n", res.Recommendation))

	b.WriteString("Factor breakdown:\n")
	var advisory []model.Factor
	for _, f := range res.Factors {
		if f.Advisory() {
			advisory = append(advisory, f)
			continue
		}
		b.WriteString("  " + FactorLine(f) + "\n")
	}
	b.WriteString("  ─────────────────\n")
	b.WriteString(fmt.Sprintf("  composite: %s\n", Number(res.Score)))

	if len(advisory) > 0 {
		b.WriteString("\nAdvisory (not scored):\n")
		for _, f := range advisory {
			b.WriteString("  " + FactorLine(f) + "\n")
		}
	}

	return b.String()
}

// FactorLine renders one factor as "name: subscore (weight w, weighted x)",
// or "name: subscore (advisory)" when it carries no weight.
func FactorLine(f model.Factor) string {
	if f.Advisory() {
		return fmt.Sprintf("%s: %s (advisory)", f.Name, Number(f.Subscore))
	}
	weighted := 0.0
	if f.Weighted != nil {
		weighted = *f.Weighted
	}
	return fmt.Sprintf("%s: %s (weight %s, weighted %s)",
		f.Name, Number(f.Subscore), Number(*f.Weight), Number(weighted))
}

// Number formats v with the fewest digits that represent it exactly.
func Number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
