/*
handlers.go - HTTP handlers over the tax engine

PURPOSE:
  Implements the API endpoints. Each handler follows the same sequence:
  decode, validate, call the pure engine, serialize. The engine holds no
  state, so handlers need no coordination and the Handler struct carries
  no dependencies.

CONTROL FLOW FOR TARGETED CALCULATIONS:
  A request targeting net or total cost first resolves gross through the
  inversion layer, then ALWAYS re-runs the forward calculation with that
  gross. The returned breakdown is therefore internally consistent with
  the forward model even when the inversion only approximated; the
  approximation is surfaced in the response's warning field.

ERROR HANDLING:
  - 400: invalid input, unknown target mode, unsupported combination
  - 500: anything else (should not happen; the engine is total on its
         validated domain)

SEE ALSO:
  - dto.go: request/response shapes
  - server.go: routing
*/
package api

import (
	"errors"
	"fmt"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/warp/salary-engine/tax"
)

// Handler groups the API endpoints. The engine is pure and package-level,
// so there are no dependencies to inject.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// =============================================================================
// REFERENCE DATA
// =============================================================================

// ListJurisdictions returns the supported jurisdictions in display order.
func (h *Handler) ListJurisdictions(w http.ResponseWriter, r *http.Request) {
	dtos := lo.Map(tax.Jurisdictions(), func(j tax.Jurisdiction, _ int) JurisdictionDTO {
		return JurisdictionDTO{
			ID:                     string(j),
			Label:                  j.Label(),
			DefaultPaymentsPerYear: tax.DefaultPaymentsPerYear(j),
		}
	})
	writeJSON(w, http.StatusOK, dtos)
}

// ListProfiles returns the supported employment profiles in display order.
func (h *Handler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	dtos := lo.Map(tax.Profiles(), func(p tax.Profile, _ int) ProfileDTO {
		return ProfileDTO{ID: string(p), Label: p.Label()}
	})
	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// CALCULATION
// =============================================================================

// Calculate resolves the requested target to a gross salary and returns
// the full forward breakdown for it.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	jurisdiction := tax.Jurisdiction(req.Jurisdiction)
	profile := tax.Profile(req.Profile)
	if req.Profile == "" {
		profile = tax.Employee
	}
	amount := decimal.NewFromFloat(req.Amount)

	gross, warning, err := resolveGross(jurisdiction, req.Target, amount, req.PaymentsPerYear)
	if err != nil {
		status := http.StatusInternalServerError
		if tax.IsClientError(err) {
			status = http.StatusBadRequest
		}
		writeError(w, status, "could not resolve gross salary", err)
		return
	}

	breakdown, err := tax.Calculate(jurisdiction, profile, tax.Input{
		GrossMonthly:    gross,
		Expenses:        decimal.NewFromFloat(req.Expenses),
		PaymentsPerYear: req.PaymentsPerYear,
	})
	if err != nil {
		status := http.StatusInternalServerError
		if tax.IsClientError(err) {
			status = http.StatusBadRequest
		}
		writeError(w, status, "calculation failed", err)
		return
	}

	writeJSON(w, http.StatusOK, CalculationDTO{
		ID:           uuid.NewString(),
		Jurisdiction: string(jurisdiction),
		Profile:      string(profile),
		GrossMonthly: cents(gross),
		TotalTax:     cents(breakdown.TotalTax),
		Net:          cents(breakdown.Net),
		TotalCost:    cents(breakdown.TotalCost),
		Items:        lo.Map(breakdown.Items, func(it tax.LineItem, _ int) LineItemDTO { return lineItemDTO(it) }),
		Warning:      warning,
	})
}

// resolveGross maps the request's target mode to a gross salary,
// inverting where needed. The warning is non-empty when the inversion
// stopped at a best-effort approximation.
func resolveGross(j tax.Jurisdiction, target string, amount decimal.Decimal, paymentsPerYear int) (decimal.Decimal, string, error) {
	switch target {
	case "", TargetGross:
		return amount, "", nil

	case TargetNet:
		gross, err := tax.GrossForNet(j, amount, paymentsPerYear)
		return grossOrWarning(gross, err)

	case TargetTotalCost:
		gross, err := tax.GrossForTotalCost(j, amount, paymentsPerYear)
		return grossOrWarning(gross, err)
	}
	return decimal.Zero, "", &tax.InvalidInputError{Field: "target", Reason: fmt.Sprintf("unknown mode %q", target)}
}

// grossOrWarning downgrades numeric divergence to a warning: the value is
// still usable and the forward pass that follows keeps the breakdown
// consistent with whatever gross we settled on.
func grossOrWarning(gross decimal.Decimal, err error) (decimal.Decimal, string, error) {
	if err == nil {
		return gross, "", nil
	}
	if errors.Is(err, tax.ErrNumericDivergence) {
		return gross, "target could only be matched approximately", nil
	}
	return decimal.Zero, "", err
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	if err != nil {
		message = message + ": " + err.Error()
	}
	writeJSON(w, status, ErrorResponse{Status: status, Message: message})
}
