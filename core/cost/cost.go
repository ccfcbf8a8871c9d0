package cost

import (
	"fmt"
	"strings"
)

// ToolMetrics represents the cost and quality characteristics of a single
// tool execution. The cost can be expressed as a fixed amount per call, and
// the optional quality metrics let callers compare tools that differ in
// accuracy or latency.
//
// Example usage:
//
//	metrics := cost.ToolMetrics{
//	    Amount:                  0.001,
//	    Currency:                "USD",
//	    CostDescription:         "per API call",
//	    Accuracy:                0.95, // 95% accuracy
//	    AverageDurationInMillis: 600,
//	}
type ToolMetrics struct {
	// Amount is the cost value for executing this tool once
	Amount float64 `json:"amount"`

	// Currency is the currency or unit for the cost (e.g., "USD", "EUR", "credits").
	// Defaults to "USD" when empty.
	Currency string `json:"currency,omitempty"`

	// CostDescription explains how the cost accrues (e.g., "per API call",
	// "free tier", "local execution")
	CostDescription string `json:"cost_description,omitempty"`

	// Accuracy is the expected result quality in the range 0.0 to 1.0
	Accuracy float64 `json:"accuracy,omitempty"`

	// AverageDurationInMillis is the typical wall-clock execution time
	AverageDurationInMillis int64 `json:"average_duration_in_millis,omitempty"`
}

// String returns a human-readable representation of the cost portion of the
// metrics, e.g. "0.001000 USD (per API call)".
func (t ToolMetrics) String() string {
	currency := t.Currency
	if currency == "" {
		currency = "USD"
	}

	result := fmt.Sprintf("%.6f %s", t.Amount, currency)
	if t.CostDescription != "" {
		result += fmt.Sprintf(" (%s)", t.CostDescription)
	}
	return result
}

// MetricsString returns a human-readable representation of the quality
// metrics, e.g. "Accuracy: 95.0%, Avg Duration: 600ms". Returns an empty
// string when no quality metrics are set.
func (t ToolMetrics) MetricsString() string {
	parts := make([]string, 0, 2)

	if t.Accuracy > 0 {
		parts = append(parts, fmt.Sprintf("Accuracy: %.1f%%", t.Accuracy*100))
	}
	if t.AverageDurationInMillis > 0 {
		parts = append(parts, fmt.Sprintf("Avg Duration: %dms", t.AverageDurationInMillis))
	}

	return strings.Join(parts, ", ")
}

// CostEffectivenessScore returns the accuracy-to-cost ratio, used to rank
// tools by value for money. Returns 0 when either the cost or the accuracy is
// zero, since the ratio is meaningless in both cases.
func (t ToolMetrics) CostEffectivenessScore() float64 {
	if t.Amount == 0 || t.Accuracy == 0 {
		return 0
	}
	return t.Accuracy / t.Amount
}
