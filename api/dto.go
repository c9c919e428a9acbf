/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  JSON structures for the API surface. These decouple the engine's
  decimal-based domain model from the wire format: amounts cross the wire
  as plain numbers rounded to cents, which is display precision — the
  engine itself never rounds.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

SEE ALSO:
  - handlers.go: builds these from tax.Breakdown
*/
package api

import (
	"github.com/shopspring/decimal"

	"github.com/warp/salary-engine/tax"
)

// Target modes for a calculation request. When the target is not gross,
// the handler inverts first and always re-runs the forward rule with the
// resolved gross, so breakdown figures are internally consistent.
const (
	TargetGross     = "gross"
	TargetNet       = "net"
	TargetTotalCost = "total_cost"
)

// JurisdictionDTO describes one supported jurisdiction.
type JurisdictionDTO struct {
	ID                     string `json:"id"`
	Label                  string `json:"label"`
	DefaultPaymentsPerYear int    `json:"default_payments_per_year"`
}

// ProfileDTO describes one employment profile.
type ProfileDTO struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// CalculateRequest is the body of POST /api/calculate. Amount is
// interpreted per Target: the gross itself, the desired net, or the
// desired total employer cost.
type CalculateRequest struct {
	Jurisdiction    string  `json:"jurisdiction"`
	Profile         string  `json:"profile,omitempty"`
	Target          string  `json:"target,omitempty"`
	Amount          float64 `json:"amount"`
	Expenses        float64 `json:"expenses,omitempty"`
	PaymentsPerYear int     `json:"payments_per_year,omitempty"`
}

// LineItemDTO is one named figure of the breakdown, in display order.
type LineItemDTO struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// CalculationDTO is the full result of a calculation.
type CalculationDTO struct {
	ID           string        `json:"id"`
	Jurisdiction string        `json:"jurisdiction"`
	Profile      string        `json:"profile"`
	GrossMonthly float64       `json:"gross_monthly"`
	TotalTax     float64       `json:"total_tax"`
	Net          float64       `json:"net"`
	TotalCost    float64       `json:"total_cost"`
	Items        []LineItemDTO `json:"items"`

	// Warning is set when an inversion only approximated its target.
	Warning string `json:"warning,omitempty"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// cents rounds an engine amount to wire precision.
func cents(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func lineItemDTO(it tax.LineItem) LineItemDTO {
	return LineItemDTO{Label: it.Label, Amount: cents(it.Amount)}
}
