package summary

import (
	"github.com/shopspring/decimal"
)

// Severity grades an advisory message.
type Severity string

const (
	SeverityUrgent Severity = "urgent"
	SeverityWarn   Severity = "warn"
	SeverityInfo   Severity = "info"
)

// Advisory is a single derived message about the state of the collection.
type Advisory struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Report is the secondary summary view: totals plus the savings rate and
// advisory messages derived from them.
type Report struct {
	Summary     Summary         `json:"summary"`
	SavingsRate decimal.Decimal `json:"savingsRate"`
	Advisories  []Advisory      `json:"advisories"`
}

// lowSavingsThreshold is the savings rate below which the warn advisory
// fires, given positive income.
var lowSavingsThreshold = decimal.RequireFromString("0.10")

// BuildReport derives the savings rate and advisories from a summary.
// SavingsRate is net/income when income is positive, zero otherwise. The
// advisory rules are evaluated independently; only the "on track" fallback
// is exclusive, firing when no other rule fired.
func BuildReport(s Summary) Report {
	report := Report{Summary: s, SavingsRate: decimal.Zero}

	if s.Income.IsPositive() {
		report.SavingsRate = s.Net.Div(s.Income)
	}

	if s.Net.IsNegative() {
		report.Advisories = append(report.Advisories, Advisory{
			Severity: SeverityUrgent,
			Message:  "spending exceeds income",
		})
	}
	if s.Income.IsPositive() && report.SavingsRate.LessThan(lowSavingsThreshold) {
		report.Advisories = append(report.Advisories, Advisory{
			Severity: SeverityWarn,
			Message:  "low savings rate",
		})
	}
	if len(report.Advisories) == 0 {
		report.Advisories = append(report.Advisories, Advisory{
			Severity: SeverityInfo,
			Message:  "on track",
		})
	}

	return report
}
