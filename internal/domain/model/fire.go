//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import "encoding/json"

// FireRequest carries the simulation parameters forwarded to the FIRE
// engine. The gateway treats the body as opaque: the engine owns the
// parameter schema and its validation.
type FireRequest struct {
	Payload json.RawMessage
}

// FireResult is the engine's analysis response. Every field is optional:
// the engine omits fields that do not apply to a given scenario, and the
// gateway relays whatever subset it received without filling defaults.
type FireResult struct {
	YearsToReachGoal    *float64 `json:"years_to_reach_goal,omitempty"`
	Shortfall           *float64 `json:"shortfall,omitempty"`
	Reached             *bool    `json:"reached,omitempty"`
	FinalValue          *float64 `json:"final_value,omitempty"`
	CurrentVal          *float64 `json:"current_val,omitempty"`
	FireTarget          *float64 `json:"fire_target,omitempty"`
	FinalEstimatedValue *float64 `json:"final_estimated_value,omitempty"`
	YearsSimulated      *int     `json:"years_simulated,omitempty"`
	MonthlySavings      *float64 `json:"monthly_savings,omitempty"`
	ConfidenceScore     *float64 `json:"confidence_score,omitempty"`
}

// SafeFinalValue returns the projected final portfolio value, falling
// back to the estimate when the exact value is absent. Returns 0 when
// the engine supplied neither.
func (r *FireResult) SafeFinalValue() float64 {
	if r == nil {
		return 0
	}
	if r.FinalValue != nil {
		return *r.FinalValue
	}
	if r.FinalEstimatedValue != nil {
		return *r.FinalEstimatedValue
	}
	return 0
}
