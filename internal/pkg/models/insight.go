package models

// InsightStatus tags the outcome of parsing an AI insight reply.
type InsightStatus string

const (
	// InsightStatusOK means the reply parsed into a structured report.
	InsightStatusOK InsightStatus = "ok"
	// InsightStatusDegraded means the remote call succeeded but the reply
	// was not valid JSON; the raw text is preserved.
	InsightStatusDegraded InsightStatus = "degraded"
	// InsightStatusError means the remote call itself failed.
	InsightStatusError InsightStatus = "error"
)

// FinancialScore is the 0-100 health score inside an insight report.
type FinancialScore struct {
	Score  int    `json:"score"`
	Status string `json:"status"`
}

// InsightReport is the structured analysis requested from the
// text-generation service.
type InsightReport struct {
	Overview       string         `json:"overview"`
	FinancialScore FinancialScore `json:"financial_score"`
	QuickTips      []string       `json:"quick_tips"`
	Warnings       []string       `json:"warnings"`
	GoodHabits     []string       `json:"good_habits"`
}

// InsightResult is the tagged outcome of an insight request. Exactly one of
// the three states applies: a parsed report, a degraded raw-text fallback,
// or a structured remote failure. It never surfaces as an HTTP error.
type InsightResult struct {
	Status  InsightStatus
	Report  *InsightReport
	RawText string
	Reason  string
}

// Payload maps the result onto its wire shape. Every state produces a
// well-formed JSON document.
func (r *InsightResult) Payload() interface{} {
	switch r.Status {
	case InsightStatusOK:
		return r.Report
	case InsightStatusDegraded:
		return map[string]string{
			"analysis": r.RawText,
			"error":    "could not parse as JSON",
		}
	default:
		return map[string]string{
			"error": r.Reason,
		}
	}
}
